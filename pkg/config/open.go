package config

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mermaidkit/pkg/cache"
	"github.com/matzehuels/mermaidkit/pkg/errors"
	"github.com/matzehuels/mermaidkit/pkg/httputil"
	"github.com/matzehuels/mermaidkit/pkg/render/ink"
	"github.com/matzehuels/mermaidkit/pkg/store"
)

// OpenCache returns the configured artifact cache.
func (c *Config) OpenCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.Cache.Redis.Addr,
			Password: c.Cache.Redis.Password,
			DB:       c.Cache.Redis.DB,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connect to redis at %s", c.Cache.Redis.Addr)
		}
		return rc, nil
	default:
		dir := c.Cache.Dir
		if dir == "" {
			d, err := cache.DefaultDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open cache dir %s", dir)
		}
		return fc, nil
	}
}

// OpenStore returns the configured document store.
func (c *Config) OpenStore(ctx context.Context) (store.Store, error) {
	if c.Store.Backend == BackendMongo {
		ms, err := store.NewMongoStore(ctx, store.MongoOptions{
			URI:        c.Store.Mongo.URI,
			Database:   c.Store.Mongo.Database,
			Collection: c.Store.Mongo.Collection,
		})
		if err != nil {
			return nil, err
		}
		return ms, nil
	}
	fs, err := store.NewFileStore(c.Store.Dir)
	if err != nil {
		return nil, err
	}
	return fs, nil
}

// InkConfig returns the render client configuration using cc as cache.
func (c *Config) InkConfig(cc cache.Cache, logger *log.Logger) ink.Config {
	var keyer cache.Keyer
	if c.Cache.Prefix != "" {
		keyer = cache.NewScopedKeyer(nil, c.Cache.Prefix)
	}
	return ink.Config{
		Server:     c.Render.Server,
		HTTPClient: httputil.NewHTTPClient(time.Duration(c.Render.Timeout)),
		Cache:      cc,
		Keyer:      keyer,
		TTL:        time.Duration(c.Render.TTL),
		Retry:      httputil.Policy{Attempts: c.Render.Attempts, Delay: httputil.DefaultPolicy.Delay},
		Logger:     logger,
	}
}
