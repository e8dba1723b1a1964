// Command vkgen regenerates the extension loaders from the Vulkan registry.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/generator"
)

func main() {
	configPath := flag.String("config", core.DefaultConfigPath, "path to the TOML configuration")
	watch := flag.Bool("watch", false, "regenerate whenever the registry or the configuration changes")
	flag.Parse()

	g, err := generator.New(*configPath)
	if err != nil {
		core.LogFatal("loading configuration: %s", err)
	}

	if !*watch {
		if err := g.Generate(); err != nil {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	core.LogInfo("watching %s and %s", g.Config().Generator.Registry, *configPath)
	if err := g.Watch(ctx); err != nil {
		core.LogFatal("watch: %s", err)
	}
}
