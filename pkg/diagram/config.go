package diagram

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

// Theme selects one of Mermaid's built-in themes.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeForest  Theme = "forest"
	ThemeDark    Theme = "dark"
	ThemeNeutral Theme = "neutral"
	ThemeBase    Theme = "base"
)

var themes = map[Theme]bool{
	ThemeDefault: true,
	ThemeForest:  true,
	ThemeDark:    true,
	ThemeNeutral: true,
	ThemeBase:    true,
}

// ParseTheme converts a theme name into a [Theme].
// An empty name yields [ThemeDefault].
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return ThemeDefault, nil
	}
	if !themes[t] {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown theme %q", s)
	}
	return t, nil
}

// Config is the init directive placed between the front matter and the
// diagram keyword. Only the color variables that are set are emitted.
type Config struct {
	Theme              Theme
	PrimaryColor       string
	PrimaryTextColor   string
	PrimaryBorderColor string
	LineColor          string
	SecondaryColor     string
	TertiaryColor      string
}

// String renders the %%{ init: ... }%% block, ending with a newline.
func (c *Config) String() string {
	theme := c.Theme
	if theme == "" {
		theme = ThemeDefault
	}

	var vars []string
	for _, kv := range [...]struct{ key, value string }{
		{"primaryColor", c.PrimaryColor},
		{"primaryTextColor", c.PrimaryTextColor},
		{"primaryBorderColor", c.PrimaryBorderColor},
		{"lineColor", c.LineColor},
		{"secondaryColor", c.SecondaryColor},
		{"tertiaryColor", c.TertiaryColor},
	} {
		if kv.value != "" {
			vars = append(vars, fmt.Sprintf("\t\t\t\"%s\": \"%s\"", kv.key, kv.value))
		}
	}

	var b strings.Builder
	b.WriteString("%%{\n\tinit: {\n")
	fmt.Fprintf(&b, "\t\t\"theme\": \"%s\",\n", theme)
	b.WriteString("\t\t\"themeVariables\": {\n")
	if len(vars) > 0 {
		b.WriteString(strings.Join(vars, ",\n"))
		b.WriteString("\n")
	}
	b.WriteString("\t\t}\n\t}\n}%%\n")
	return b.String()
}
