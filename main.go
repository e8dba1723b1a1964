/*
vkext probe: creates a Vulkan instance and a device per GPU with every
extension the driver offers, loads the generated extension tables and
reports which commands resolved.
*/
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/probe"
)

func main() {
	configPath := flag.String("config", core.DefaultConfigPath, "path to the TOML configuration")
	output := flag.String("o", "", "report path, overrides probe.report; stdout when both are empty")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("loading configuration: %s", err)
	}
	if err := core.SetLogLevel(cfg.Log.Level); err != nil {
		core.LogWarn("ignoring log level %q: %s", cfg.Log.Level, err)
	}
	if *output != "" {
		cfg.Probe.Report = *output
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// stop probing after the current device
	go func() {
		<-sigCh
		core.LogWarn("interrupted, finishing the current device")
		cancel()
	}()

	rep, err := probe.New(cfg.Probe).Run(ctx)
	if rep == nil {
		core.LogFatal("probe failed: %s", err)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		core.LogError("probe incomplete: %s", err)
	}

	if err := rep.Save(cfg.Probe.Report); err != nil {
		core.LogFatal("writing report: %s", err)
	}
	loaded, missing := rep.Summary()
	core.LogInfo("%d devices probed, %d commands loaded, %d missing", len(rep.Devices), loaded, missing)
}
