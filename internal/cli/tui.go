package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/gallery"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

var familyDescriptions = map[string]string{
	gallery.Flowchart:    "nodes, shapes and links",
	gallery.ER:           "entities, attributes and relations",
	gallery.Sequence:     "actors exchanging messages",
	gallery.State:        "states and transitions",
	gallery.Mindmap:      "a tree of ideas",
	gallery.Pie:          "labeled slices",
	gallery.Timeline:     "dated events",
	gallery.UserJourney:  "scored tasks per section",
	gallery.Requirements: "requirements and their links",
}

// FamilyListModel is the bubbletea model for picking a diagram family.
type FamilyListModel struct {
	Families []string
	Cursor   int
	Selected string
}

// NewFamilyListModel lists every gallery family.
func NewFamilyListModel() FamilyListModel {
	return FamilyListModel{Families: gallery.Families()}
}

func (m FamilyListModel) Init() tea.Cmd {
	return nil
}

func (m FamilyListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Families)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = m.Families[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m FamilyListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Diagram Family"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, f := range m.Families {
		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}
		line := fmt.Sprintf("%s%-14s", cursor, f)
		b.WriteString(style.Render(line))
		b.WriteString(listDimStyle.Render(familyDescriptions[f]))
		b.WriteString("\n")
	}
	return b.String()
}

// resolveFamily returns args[0], or asks interactively when no family was
// given and stdin and stderr are terminals.
func resolveFamily(ctx context.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return "", errors.New(errors.ErrCodeInvalidInput,
			"diagram family required, one of: %s", strings.Join(gallery.Families(), ", "))
	}

	p := tea.NewProgram(NewFamilyListModel(), tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "family picker")
	}
	m, ok := final.(FamilyListModel)
	if !ok || m.Selected == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "no diagram family selected")
	}
	return m.Selected, nil
}
