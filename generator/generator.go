// Package generator turns the Vulkan XML registry into the extension loader
// packages under extensions/ and the shared types of package vk.
package generator

import (
	"fmt"
	"os"

	"github.com/spaghettifunk/vkext/core"
)

type Generator struct {
	configPath string
	config     *core.Config
}

// New loads the configuration at configPath. A missing file selects the
// defaults.
func New(configPath string) (*Generator, error) {
	g := &Generator{configPath: configPath}
	if err := g.reload(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) Config() *core.Config {
	return g.config
}

func (g *Generator) reload() error {
	cfg, err := core.LoadConfig(g.configPath)
	if err != nil {
		return err
	}
	if cfg.Log.Level != "" {
		if err := core.SetLogLevel(cfg.Log.Level); err != nil {
			core.LogWarn("ignoring log level %q: %s", cfg.Log.Level, err)
		}
	}
	g.config = cfg
	return nil
}

// Render parses the registry and renders every file without writing them.
func (g *Generator) Render() ([]File, error) {
	gc := g.config.Generator
	f, err := os.Open(gc.Registry)
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	reg, err := ParseRegistry(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gc.Registry, err)
	}
	model, err := Build(reg, gc)
	if err != nil {
		return nil, err
	}
	core.LogDebug("registry %s: %d extensions, %d types, %d commands", gc.Registry, len(model.Extensions), len(reg.Types), len(reg.Commands))
	return Emit(model, gc.Module)
}

// Generate renders the loaders and writes them under the configured output.
func (g *Generator) Generate() error {
	clock := core.NewClock()
	clock.Start()

	files, err := g.Render()
	if err != nil {
		core.LogError("generation failed: %s", err)
		return err
	}
	if err := Write(g.config.Generator.Output, files); err != nil {
		core.LogError("writing generated files: %s", err)
		return err
	}

	clock.Stop()
	core.LogInfo("generated %d files in %s", len(files), clock.Elapsed())
	return nil
}
