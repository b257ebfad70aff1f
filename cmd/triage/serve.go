package main

import (
	"fmt"

	"github.com/pwielgus/triage"
	"github.com/pwielgus/triage/fs"
	"github.com/pwielgus/triage/fsnotify"
	triagehttp "github.com/pwielgus/triage/http"
	triageslog "github.com/pwielgus/triage/slog"
	"github.com/pwielgus/triage/yaml"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	cfg, err := c.resolveConfig()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", triage.ErrorMessage(err))
		return err
	}

	logger := deps.Logger

	store := triageslog.NewLoggingGuideStore(fs.NewGuideStore(cfg.GuidePath), logger)
	cache := triage.NewCache(store)

	srv := triagehttp.NewServer()
	srv.Addr = cfg.Addr
	srv.Title = cfg.Title
	srv.Store = store
	srv.Sections = triageslog.NewLoggingSectionSource(cache, logger)
	srv.Logger = logger

	if err := srv.Open(); err != nil {
		return fmt.Errorf("failed to listen on %q: %w", cfg.Addr, err)
	}

	g, ctx := errgroup.WithContext(deps.Ctx)

	// The watcher is best-effort: without it the cache still notices
	// changes through the modification time on the next request.
	watcher, err := fsnotify.NewWatcher(cfg.GuidePath, cache.Invalidate)
	if err != nil {
		logger.Warn("file watcher unavailable", "err", err)
	} else {
		defer watcher.Close()
		g.Go(func() error { return watcher.Run(ctx) })
	}

	fmt.Fprintf(deps.Stdout, "Serving %s on %s\n", cfg.GuidePath, srv.URL())
	fmt.Fprintf(deps.Stdout, "Editor: %s/editor\n", srv.URL())

	g.Go(func() error { return srv.Serve(ctx) })
	return g.Wait()
}

// resolveConfig layers defaults, the optional config file, and flags.
func (c *ServeCmd) resolveConfig() (triage.Config, error) {
	cfg := triage.DefaultConfig()

	if c.Config != "" {
		loaded, err := yaml.LoadConfig(c.Config, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.Addr != "" {
		cfg.Addr = c.Addr
	}
	if c.Guide != "" {
		cfg.GuidePath = c.Guide
	}
	if c.Title != "" {
		cfg.Title = c.Title
	}

	return cfg, cfg.Validate()
}
