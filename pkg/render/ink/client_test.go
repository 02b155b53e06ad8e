package ink

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/mermaidkit/pkg/cache"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/httputil"
)

const script = "---\ntitle: t\n---\nflowchart TB\n\ta[\"A\"]\n"

var fastRetry = httputil.Policy{Attempts: 3, Delay: time.Millisecond}

func newTestClient(t *testing.T, h http.HandlerFunc, c cache.Cache) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client, err := New(Config{Server: srv.URL, HTTPClient: srv.Client(), Cache: c, Retry: fastRetry})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewServer(t *testing.T) {
	t.Setenv(EnvServer, "")
	c, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Server() != DefaultServer {
		t.Errorf("Server() = %q, want %q", c.Server(), DefaultServer)
	}

	t.Setenv(EnvServer, "http://localhost:3000/")
	c, err = New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Server() != "http://localhost:3000" {
		t.Errorf("Server() = %q, want env value without trailing slash", c.Server())
	}

	if _, err := New(Config{Server: "ftp://example.com"}); !errors.IsValidation(err) {
		t.Errorf("New(ftp) error = %v, want validation", err)
	}
}

func TestURL(t *testing.T) {
	c, err := New(Config{Server: "https://mermaid.ink"})
	if err != nil {
		t.Fatal(err)
	}
	enc := Encode(script)

	tests := []struct {
		format Format
		opts   Options
		want   string
	}{
		{FormatSVG, Options{}, "https://mermaid.ink/svg/" + enc},
		{FormatSVG, Options{Width: 800}, "https://mermaid.ink/svg/" + enc + "?width=800"},
		{FormatPNG, Options{}, "https://mermaid.ink/img/" + enc + "?type=png"},
		{FormatPNG, Options{Height: 300, Scale: 2}, "https://mermaid.ink/img/" + enc + "?height=300&scale=2&type=png"},
	}
	for _, tt := range tests {
		if got := c.URL(script, tt.format, tt.opts); got != tt.want {
			t.Errorf("URL(%s, %+v) = %q, want %q", tt.format, tt.opts, got, tt.want)
		}
	}
}

func TestSVGAndPNG(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/svg/"):
			if r.URL.Query().Get("width") != "640" {
				t.Errorf("svg width = %q", r.URL.Query().Get("width"))
			}
			w.Write([]byte("<svg>ok</svg>"))
		case strings.HasPrefix(r.URL.Path, "/img/"):
			if r.URL.Query().Get("type") != "png" {
				t.Errorf("png type = %q", r.URL.Query().Get("type"))
			}
			w.Write([]byte("\x89PNG"))
		default:
			http.NotFound(w, r)
		}
	}, nil)

	res, err := client.Render(context.Background(), script, Options{Width: 640})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.SVG != "<svg>ok</svg>" {
		t.Errorf("SVG = %q", res.SVG)
	}
	if string(res.PNG) != "\x89PNG" {
		t.Errorf("PNG = %q", res.PNG)
	}
}

func TestInvalidOptionsSkipRequest(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, nil)

	_, err := client.SVG(context.Background(), script, Options{Scale: 2})
	if !errors.IsValidation(err) {
		t.Errorf("SVG error = %v, want validation", err)
	}
	if calls.Load() != 0 {
		t.Errorf("server called %d times for invalid options", calls.Load())
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   errors.Code
		calls  int32
	}{
		{"bad request", http.StatusBadRequest, errors.ErrCodeInvalidInput, 1},
		{"not found", http.StatusNotFound, errors.ErrCodeNotFound, 1},
		{"rate limited", http.StatusTooManyRequests, errors.ErrCodeRateLimited, 1},
		{"server error", http.StatusBadGateway, errors.ErrCodeNetwork, 3},
		{"teapot", http.StatusTeapot, errors.ErrCodeNetwork, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Retry-After", "30")
				w.WriteHeader(tt.status)
			}, nil)

			_, err := client.SVG(context.Background(), script, Options{})
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v (err %v)", got, tt.code, err)
			}
			if calls.Load() != tt.calls {
				t.Errorf("calls = %d, want %d", calls.Load(), tt.calls)
			}
		})
	}
}

func TestRateLimitedRetryAfter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "12")
		w.WriteHeader(http.StatusTooManyRequests)
	}, nil)

	_, err := client.PNG(context.Background(), script, Options{})
	var rl *errors.RateLimitedError
	var e *errors.Error
	if !stderrors.As(err, &e) || !stderrors.As(e.Cause, &rl) {
		t.Fatalf("err = %v, want wrapped RateLimitedError", err)
	}
	if rl.RetryAfter != 12 {
		t.Errorf("RetryAfter = %d, want 12", rl.RetryAfter)
	}
}

func TestRetryRecovers(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("<svg/>"))
	}, nil)

	svg, err := client.SVG(context.Background(), script, Options{})
	if err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if svg != "<svg/>" || calls.Load() != 2 {
		t.Errorf("svg = %q after %d calls", svg, calls.Load())
	}
}

func TestCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("<svg/>"))
	}, fc)

	ctx := context.Background()
	for range 3 {
		if _, err := client.SVG(ctx, script, Options{}); err != nil {
			t.Fatal(err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("server called %d times, want 1", calls.Load())
	}

	if _, err := client.SVG(ctx, script, Options{Width: 100}); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("different options should miss the cache, calls = %d", calls.Load())
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()

	if err := WriteSVG(filepath.Join(dir, "out", "d.svg"), "<svg/>", PositionNone); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if err := WriteSVG(filepath.Join(dir, "d.html"), "<svg/>", PositionCenter); err != nil {
		t.Fatalf("WriteSVG html: %v", err)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "d.html"))
	if string(data) != `<div style="text-align:center"><svg/></div>` {
		t.Errorf("html = %q", data)
	}

	if err := WriteSVG(filepath.Join(dir, "d.html"), "<svg/>", PositionNone); !errors.IsInvalidExtension(err) {
		t.Errorf("WriteSVG(.html, none) error = %v", err)
	}
	if err := WritePNG(filepath.Join(dir, "d.jpg"), nil); !errors.IsInvalidExtension(err) {
		t.Errorf("WritePNG(.jpg) error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "d.jpg")); !os.IsNotExist(err) {
		t.Error("rejected write created a file")
	}
}
