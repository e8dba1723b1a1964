package generator

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/vkext/core"
)

const settle = 250 * time.Millisecond

// Watch regenerates whenever the registry or the configuration file changes,
// until ctx is done. Directories are watched rather than files so that
// editors replacing a file on save are still noticed.
func (g *Generator) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	watched := map[string]bool{}
	watch := func(path string) error {
		dir := filepath.Dir(path)
		if watched[dir] {
			return nil
		}
		if err := w.Add(dir); err != nil {
			return err
		}
		watched[dir] = true
		return nil
	}
	for _, path := range []string{g.config.Generator.Registry, g.configPath} {
		if err := watch(path); err != nil {
			return err
		}
	}

	if err := g.Generate(); err != nil {
		core.LogWarn("waiting for a fix: %s", err)
	}

	var pending <-chan time.Time
	configChanged := false
	for {
		select {
		case e, ok := <-w.Events:
			if !ok {
				return nil
			}
			if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			switch filepath.Clean(e.Name) {
			case filepath.Clean(g.configPath):
				configChanged = true
			case filepath.Clean(g.config.Generator.Registry):
			default:
				continue
			}
			core.LogDebug("%s changed", e.Name)
			pending = time.After(settle)

		case <-pending:
			pending = nil
			if configChanged {
				configChanged = false
				if err := g.reload(); err != nil {
					core.LogError("reloading %s: %s", g.configPath, err)
					continue
				}
				if err := watch(g.config.Generator.Registry); err != nil {
					core.LogError("watching %s: %s", g.config.Generator.Registry, err)
				}
			}
			if err := g.Generate(); err != nil {
				core.LogWarn("waiting for a fix: %s", err)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			core.LogError("watcher: %s", err)

		case <-ctx.Done():
			return nil
		}
	}
}
