package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/gallery"
)

// env is an isolated configuration: its own cache and store directories
// and a render server that answers every request.
type env struct {
	dir      string
	config   string
	requests atomic.Int32
}

func newEnv(t *testing.T) *env {
	t.Helper()
	t.Setenv("MERMAID_INK_SERVER", "")
	e := &env{dir: t.TempDir()}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		e.requests.Add(1)
		if strings.HasPrefix(r.URL.Path, "/img/") {
			w.Write([]byte("\x89PNG"))
			return
		}
		w.Write([]byte("<svg/>"))
	}))
	t.Cleanup(srv.Close)

	e.config = filepath.Join(e.dir, "config.toml")
	body := fmt.Sprintf(`
[render]
server = %q
attempts = 1

[cache]
backend = "file"
dir = %q

[store]
backend = "file"
dir = %q
`, srv.URL, filepath.Join(e.dir, "cache"), filepath.Join(e.dir, "store"))
	if err := os.WriteFile(e.config, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return e
}

// run executes the command line and returns stdout.
func (e *env) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", e.config}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestExamplePrintsScript(t *testing.T) {
	e := newEnv(t)
	for _, family := range gallery.Families() {
		out, err := e.run(t, "example", family)
		if err != nil {
			t.Fatalf("example %s: %v", family, err)
		}
		d, _ := gallery.Build(family)
		if out != d.String() {
			t.Errorf("example %s output = %q, want %q", family, out, d.String())
		}
	}
}

func TestExampleUnknownFamily(t *testing.T) {
	e := newEnv(t)
	if _, err := e.run(t, "example", "gantt"); !errors.IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestExampleSaveAndRender(t *testing.T) {
	e := newEnv(t)
	path := filepath.Join(e.dir, "pie.mmd")

	if _, err := e.run(t, "example", "piechart", "-o", path); err != nil {
		t.Fatal(err)
	}
	if data, err := os.ReadFile(path); err != nil || !strings.Contains(string(data), "pie") {
		t.Errorf("saved file = %q, %v", data, err)
	}

	base := filepath.Join(e.dir, "out", "pie")
	out, err := e.run(t, "example", "piechart", "--render", "-f", "svg,png", "-o", base)
	if err != nil {
		t.Fatal(err)
	}
	for _, ext := range []string{".svg", ".png"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("missing %s: %v", ext, err)
		}
		if !strings.Contains(out, base+ext) {
			t.Errorf("output does not list %s:\n%s", base+ext, out)
		}
	}
}

func TestExampleLocalRejectsNonFlowchart(t *testing.T) {
	e := newEnv(t)
	if _, err := e.run(t, "example", "mindmap", "--local"); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want UNSUPPORTED", err)
	}
}

func TestNewCommand(t *testing.T) {
	e := newEnv(t)
	chdir(t, e.dir)

	out, err := e.run(t, "new", "timeline")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "timeline.mmd") {
		t.Errorf("output = %q", out)
	}
	if _, err := e.run(t, "new", "timeline"); !errors.IsValidation(err) {
		t.Errorf("second new error = %v, want validation", err)
	}
	if _, err := e.run(t, "new", "timeline", "--force"); err != nil {
		t.Errorf("new --force: %v", err)
	}
}

func TestRenderCommand(t *testing.T) {
	e := newEnv(t)
	src := filepath.Join(e.dir, "flow.mmd")
	os.WriteFile(src, []byte("flowchart TB\n\ta --> b\n"), 0o644)

	if _, err := e.run(t, "render", src, "--position", "center"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(filepath.Join(e.dir, "flow.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `<div style="text-align:center"><svg/></div>` {
		t.Errorf("html = %q", data)
	}

	// The second render of the same script is served from the file cache.
	before := e.requests.Load()
	if _, err := e.run(t, "render", src); err != nil {
		t.Fatal(err)
	}
	if e.requests.Load() != before {
		t.Errorf("expected a cache hit, server saw %d new requests", e.requests.Load()-before)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	e := newEnv(t)
	src := filepath.Join(e.dir, "flow.mmd")
	os.WriteFile(src, []byte("flowchart TB\n"), 0o644)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"extension", []string{"render", filepath.Join(e.dir, "flow.txt")}, errors.ErrCodeInvalidExtension},
		{"missing", []string{"render", filepath.Join(e.dir, "nope.mmd")}, errors.ErrCodeFileNotFound},
		{"format", []string{"render", src, "-f", "pdf"}, errors.ErrCodeInvalidFormat},
		{"scale", []string{"render", src, "--scale", "2"}, errors.ErrCodeInvalidInput},
		{"position", []string{"render", src, "--position", "top"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.run(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

var idRe = regexp.MustCompile(`[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

func TestStoreCommands(t *testing.T) {
	e := newEnv(t)
	src := filepath.Join(e.dir, "journey.mmd")
	os.WriteFile(src, []byte("journey\n"), 0o644)

	out, err := e.run(t, "store", "push", src, "--title", "my journey")
	if err != nil {
		t.Fatal(err)
	}
	id := idRe.FindString(out)
	if id == "" {
		t.Fatalf("push output has no id: %q", out)
	}

	if out, err = e.run(t, "store", "get", id); err != nil || out != "journey\n" {
		t.Errorf("get = %q, %v", out, err)
	}
	if out, err = e.run(t, "store", "list"); err != nil || !strings.Contains(out, "my journey") || !strings.Contains(out, id) {
		t.Errorf("list = %q, %v", out, err)
	}

	bundle := filepath.Join(e.dir, "bundle.json")
	if _, err := e.run(t, "store", "export", bundle, "--scripts", filepath.Join(e.dir, "scripts")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(e.dir, "scripts", "my journey.mmd")); err != nil {
		t.Errorf("script not exported: %v", err)
	}

	if _, err := e.run(t, "store", "delete", id); err != nil {
		t.Fatal(err)
	}
	if _, err := e.run(t, "store", "get", id); !errors.IsNotFound(err) {
		t.Errorf("get after delete error = %v", err)
	}
	if out, _ = e.run(t, "store", "list"); !strings.Contains(out, "No saved diagrams") {
		t.Errorf("empty list = %q", out)
	}

	if _, err := e.run(t, "store", "import", bundle); err != nil {
		t.Fatal(err)
	}
	if out, err = e.run(t, "store", "get", id); err != nil || out != "journey\n" {
		t.Errorf("get after import = %q, %v", out, err)
	}
}

func TestConfigAndCacheCommands(t *testing.T) {
	e := newEnv(t)

	out, err := e.run(t, "config", "show")
	if err != nil || !strings.Contains(out, "attempts = 1") {
		t.Errorf("config show = %q, %v", out, err)
	}
	if out, err = e.run(t, "config", "show", "--format", "yaml"); err != nil || !strings.Contains(out, "attempts: 1") {
		t.Errorf("config show yaml = %q, %v", out, err)
	}
	if out, _ = e.run(t, "config", "path"); strings.TrimSpace(out) != e.config {
		t.Errorf("config path = %q", out)
	}
	if out, _ = e.run(t, "cache", "path"); strings.TrimSpace(out) != filepath.Join(e.dir, "cache") {
		t.Errorf("cache path = %q", out)
	}
	if out, err = e.run(t, "cache", "clear"); err != nil || !strings.Contains(out, "Cleared 0 cached renders") {
		t.Errorf("cache clear = %q, %v", out, err)
	}
}

func TestVersionAndCompletion(t *testing.T) {
	e := newEnv(t)
	if out, err := e.run(t, "version"); err != nil || !strings.Contains(out, "version: ") {
		t.Errorf("version = %q, %v", out, err)
	}
	if out, err := e.run(t, "completion", "bash"); err != nil || !strings.Contains(out, "mermaidkit") {
		t.Errorf("completion bash: %v", err)
	}
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 files"},
		{1, "1 file"},
		{3, "3 files"},
	}
	for _, tt := range tests {
		if got := plural(tt.n, "file"); got != tt.want {
			t.Errorf("plural(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
