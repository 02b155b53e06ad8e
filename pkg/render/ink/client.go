package ink

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaidkit/pkg/cache"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/httputil"
	"github.com/matzehuels/mermaidkit/pkg/observability"
)

// DefaultServer is used when neither the config nor the environment names
// a server.
const DefaultServer = "https://mermaid.ink"

// EnvServer overrides the default server.
const EnvServer = "MERMAID_INK_SERVER"

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// ServerFromEnv returns $MERMAID_INK_SERVER or [DefaultServer].
func ServerFromEnv() string {
	if s := strings.TrimSpace(os.Getenv(EnvServer)); s != "" {
		return s
	}
	return DefaultServer
}

// Config configures a [Client]. Every field is optional.
type Config struct {
	Server     string
	HTTPClient *http.Client
	Cache      cache.Cache
	Keyer      cache.Keyer
	TTL        time.Duration
	Retry      httputil.Policy
	Logger     *log.Logger
}

// Client renders scripts through a render server.
type Client struct {
	server string
	http   *http.Client
	cache  cache.Cache
	keyer  cache.Keyer
	ttl    time.Duration
	retry  httputil.Policy
	logger *log.Logger
}

// New creates a client. The server URL is validated here so a bad
// configuration fails before the first render.
func New(cfg Config) (*Client, error) {
	server := cfg.Server
	if server == "" {
		server = ServerFromEnv()
	}
	server = strings.TrimRight(server, "/")
	if err := errors.ValidateServerURL(server); err != nil {
		return nil, err
	}

	c := &Client{
		server: server,
		http:   cfg.HTTPClient,
		cache:  cfg.Cache,
		keyer:  cfg.Keyer,
		ttl:    cfg.TTL,
		retry:  cfg.Retry,
		logger: cfg.Logger,
	}
	if c.http == nil {
		c.http = httputil.NewHTTPClient(0)
	}
	if c.cache == nil {
		c.cache = cache.NewNullCache()
	}
	if c.keyer == nil {
		c.keyer = cache.NewDefaultKeyer()
	}
	if c.ttl == 0 {
		c.ttl = DefaultTTL
	}
	if c.retry.Attempts == 0 {
		c.retry = httputil.DefaultPolicy
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c, nil
}

// Server returns the base URL requests go to.
func (c *Client) Server() string { return c.server }

// URL returns the request URL for script in format.
func (c *Client) URL(script string, format Format, opts Options) string {
	q := opts.Query()
	var path string
	switch format {
	case FormatPNG:
		path = "/img/" + Encode(script)
		q.Set("type", "png")
	default:
		path = "/svg/" + Encode(script)
	}
	u := c.server + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// SVG renders script as SVG markup.
func (c *Client) SVG(ctx context.Context, script string, opts Options) (string, error) {
	data, err := c.fetch(ctx, script, FormatSVG, opts)
	return string(data), err
}

// PNG renders script as a PNG image.
func (c *Client) PNG(ctx context.Context, script string, opts Options) ([]byte, error) {
	return c.fetch(ctx, script, FormatPNG, opts)
}

// Fetch renders script in format.
func (c *Client) Fetch(ctx context.Context, script string, format Format, opts Options) ([]byte, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	return c.fetch(ctx, script, format, opts)
}

// Result holds both renderings of a script.
type Result struct {
	SVG string
	PNG []byte
}

// Render fetches the SVG and the PNG of script.
func (c *Client) Render(ctx context.Context, script string, opts Options) (*Result, error) {
	svg, err := c.SVG(ctx, script, opts)
	if err != nil {
		return nil, err
	}
	png, err := c.PNG(ctx, script, opts)
	if err != nil {
		return nil, err
	}
	return &Result{SVG: svg, PNG: png}, nil
}

func (c *Client) fetch(ctx context.Context, script string, format Format, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	key := c.keyer.ArtifactKey(cache.Hash([]byte(script)), cache.ArtifactKeyOpts{
		Format: string(format),
		Width:  opts.Width,
		Height: opts.Height,
		Scale:  opts.Scale,
		Server: c.server,
	})
	if data, ok, err := c.cache.Get(ctx, key); err != nil {
		c.logger.Warn("cache read failed", "err", err)
	} else if ok {
		observability.Cache().OnCacheHit(ctx, string(format))
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, string(format))

	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(format), len(script))

	var data []byte
	err := c.retry.Do(ctx, func() error {
		var err error
		data, err = c.get(ctx, c.URL(script, format, opts))
		if err != nil && httputil.IsRetryable(err) {
			c.logger.Debug("retrying render", "format", format, "err", err)
		}
		return err
	})
	observability.Render().OnRenderComplete(ctx, string(format), len(data), time.Since(start), err)
	if err != nil {
		return nil, unwrapRetryable(err)
	}
	c.logger.Debug("rendered", "format", format, "bytes", len(data), "duration", time.Since(start))

	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, string(format), len(data))
	}
	return data, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request")
	}
	host, path := req.URL.Host, shortPath(req.URL)
	observability.HTTP().OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "render request cancelled")
		}
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "render request failed"))
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "read render response"))
	}
	return data, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return errors.New(errors.ErrCodeInvalidInput, "render server rejected the diagram: %s", snippet(resp.Body))
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "render endpoint not found")
	case code == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return errors.Wrap(errors.ErrCodeRateLimited, &errors.RateLimitedError{RetryAfter: retryAfter}, "render server")
	case code >= 500:
		return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "render server returned status %d", code))
	default:
		return errors.New(errors.ErrCodeNetwork, "render server returned status %d", code)
	}
}

func snippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}

// shortPath drops the encoded script so hooks see a bounded label.
func shortPath(u *url.URL) string {
	if len(u.Path) < 2 {
		return u.Path
	}
	if i := strings.Index(u.Path[1:], "/"); i >= 0 {
		return u.Path[:i+1]
	}
	return u.Path
}

func unwrapRetryable(err error) error {
	if re, ok := err.(*httputil.RetryableError); ok {
		return re.Err
	}
	return err
}

// String describes the client for logs.
func (c *Client) String() string {
	return fmt.Sprintf("ink client (%s)", c.server)
}
