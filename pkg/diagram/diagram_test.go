package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/errors"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"First Node", "first_node"},
		{"My.Thing-1", "my.thing-1"},
		{"snake_case", "snake_case"},
		{"", ""},
		{"!@# ", "____"},
		{"കേരളം", "_____"},
		{"A(B)", "a_b_"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeID(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeID(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeID(got); again != got {
				t.Errorf("NormalizeID not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestStyleString(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		want  string
	}{
		{"name only", Style{Name: "s"}, "classDef s "},
		{"fill and color", Style{Name: "s", Fill: "red", Color: "white"}, "classDef s fill:red,color:white"},
		{"other only", Style{Name: "style1", Other: "fill:blue,stroke:yellow"}, "classDef style1 fill:blue,stroke:yellow"},
		{
			"defined and other",
			Style{Name: "style1", Fill: "red", Other: "stroke:#333,stroke-width:4px"},
			"classDef style1 fill:red,stroke:#333,stroke-width:4px",
		},
		{
			"all fields ordered",
			Style{Name: "s", Stroke: "k", StrokeWidth: "2px", FontWeight: "bold", Color: "c", Fill: "f"},
			"classDef s fill:f,color:c,font-weight:bold,stroke-width:2px,stroke:k",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqueStyles(t *testing.T) {
	a := Style{Name: "a", Fill: "red"}
	b := Style{Name: "b", Stroke: "green"}
	a2 := Style{Name: "a", Fill: "blue"}

	got := UniqueStyles([]Style{b, a}, []Style{a2, b}, nil)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "b" || got[1].Name != "a" {
		t.Errorf("order = %s,%s, want b,a", got[0].Name, got[1].Name)
	}
	if got[1].Fill != "red" {
		t.Errorf("kept %q, want first seen (red)", got[1].Fill)
	}
}

func TestConfigString(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		want := "%%{\n\tinit: {\n\t\t\"theme\": \"default\",\n\t\t\"themeVariables\": {\n\t\t}\n\t}\n}%%\n"
		if got := (&Config{}).String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("primary color", func(t *testing.T) {
		want := "%%{\n\tinit: {\n\t\t\"theme\": \"default\",\n\t\t\"themeVariables\": {\n" +
			"\t\t\t\"primaryColor\": \"red\"\n\t\t}\n\t}\n}%%\n"
		if got := (&Config{PrimaryColor: "red"}).String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("all colors", func(t *testing.T) {
		c := &Config{
			Theme:              ThemeForest,
			PrimaryColor:       "red",
			PrimaryTextColor:   "red",
			PrimaryBorderColor: "red",
			LineColor:          "red",
			SecondaryColor:     "red",
			TertiaryColor:      "red",
		}
		want := "%%{\n\tinit: {\n\t\t\"theme\": \"forest\",\n\t\t\"themeVariables\": {\n" +
			"\t\t\t\"primaryColor\": \"red\",\n" +
			"\t\t\t\"primaryTextColor\": \"red\",\n" +
			"\t\t\t\"primaryBorderColor\": \"red\",\n" +
			"\t\t\t\"lineColor\": \"red\",\n" +
			"\t\t\t\"secondaryColor\": \"red\",\n" +
			"\t\t\t\"tertiaryColor\": \"red\"\n" +
			"\t\t}\n\t}\n}%%\n"
		if got := c.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})
}

func TestParseTheme(t *testing.T) {
	for _, in := range []string{"default", "Forest", " dark ", "neutral", "base"} {
		if _, err := ParseTheme(in); err != nil {
			t.Errorf("ParseTheme(%q) error = %v", in, err)
		}
	}
	if got, _ := ParseTheme(""); got != ThemeDefault {
		t.Errorf("ParseTheme(\"\") = %q, want default", got)
	}
	if _, err := ParseTheme("pink"); !errors.IsValidation(err) {
		t.Errorf("ParseTheme(pink) error = %v, want validation", err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"LR", LeftToRight},
		{"rl", RightToLeft},
		{"TD", TopToBottom},
		{"bottom-to-top", BottomToTop},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(up) should fail")
	}
}

func TestIconString(t *testing.T) {
	tests := []struct {
		icon Icon
		want string
	}{
		{Icon{Name: "icon", Type: "fa"}, "fa icon"},
		{Icon{Name: "icon", Type: "fa", Version: "v1"}, "fa icon"},
		{Icon{Name: "icon", Type: "fa", Version: "v2"}, "fa:icon"},
		{Icon{Name: "icon", Type: "fa", Version: "v3"}, " fa:icon "},
	}
	for _, tt := range tests {
		if got := tt.icon.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.icon, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	if got := Indent("a\nb", "\t"); got != "\ta\n\tb" {
		t.Errorf("Indent = %q", got)
	}
	if got := Indent("a", "\t"); got != "\ta" {
		t.Errorf("Indent = %q", got)
	}
}

func TestGraphSetBody(t *testing.T) {
	g := &Graph{Title: "simple"}
	g.SetBody("pie\n")
	if want := "---\ntitle: simple\n---\npie\n"; g.Script != want {
		t.Errorf("Script = %q, want %q", g.Script, want)
	}

	g.Config = &Config{PrimaryColor: "red"}
	g.SetBody("pie\n")
	if !strings.HasPrefix(g.Script, "---\ntitle: simple\n---\n%%{") {
		t.Errorf("config block missing: %q", g.Script)
	}
	if !strings.HasSuffix(g.Script, "}%%\n\npie\n") {
		t.Errorf("config block not separated by a blank line: %q", g.Script)
	}

	first := g.String()
	if second := g.String(); first != second {
		t.Error("String() not stable")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my diagram.mmd")

	g := NewGraph("my diagram", "graph TD\n\tA --> B\n")
	if err := g.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Title != "my diagram" {
		t.Errorf("Title = %q, want %q", loaded.Title, "my diagram")
	}
	if loaded.Script != g.Script {
		t.Errorf("Script = %q, want %q", loaded.Script, g.Script)
	}

	// Overwrite
	g.Script = "pie\n"
	if err := g.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "pie\n" {
		t.Errorf("file = %q, want overwrite", data)
	}
}

func TestSaveDefaultPath(t *testing.T) {
	t.Chdir(t.TempDir())

	g := NewGraph("untitled", "pie\n")
	if err := g.Save(""); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat("untitled.mmd"); err != nil {
		t.Errorf("default file not written: %v", err)
	}
}

func TestSaveInvalidExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagram.txt")

	err := NewGraph("diagram", "pie\n").Save(path)
	if !errors.IsInvalidExtension(err) {
		t.Fatalf("Save() error = %v, want %s", err, errors.ErrCodeInvalidExtension)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Save() wrote a file despite the invalid extension")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.mmd"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
