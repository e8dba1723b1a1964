// Package probe creates a real Vulkan instance and devices and reports which
// commands of every known extension the driver resolves.
package probe

import (
	"context"
	"slices"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/extensions"
	"github.com/spaghettifunk/vkext/proc"
	"github.com/spaghettifunk/vkext/report"
)

type Probe struct {
	config core.ProbeConfig
}

func New(cfg core.ProbeConfig) *Probe {
	return &Probe{config: cfg}
}

// Run probes every physical device. It stops between devices once ctx is
// done and returns what it has gathered so far along with ctx.Err().
func (p *Probe) Run(ctx context.Context) (*report.Report, error) {
	platform, err := Startup(p.config.Library)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := platform.Shutdown(); err != nil {
			core.LogWarn("shutting down: %s", err)
		}
	}()

	instance, err := createInstance(p.config, platform.getInstanceProcAddr)
	if err != nil {
		return nil, err
	}
	defer instance.Destroy()

	entry := platform.Entry()
	instanceResolver := entry.InstanceResolver(instance.Raw())
	instanceEnabled := func(name string) bool {
		_, ok := instance.Available[name]
		return ok
	}

	rep := report.New(platform.Loader())
	rep.Instance = report.Instance{
		APIVersion: instance.APIVersion.String(),
		Layers:     instance.Layers,
		Extensions: report.LoadAll(instance.Available, extensions.Instance, instanceResolver, nil, instanceEnabled),
	}

	physicalDevices, err := enumeratePhysicalDevices(instance.Handle)
	if err != nil {
		return rep, err
	}
	for _, pd := range physicalDevices {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		d, err := p.probeDevice(entry, instance, instanceResolver, pd)
		if err != nil {
			core.LogError("%s: %s", pd.Name(), err)
			continue
		}
		rep.Devices = append(rep.Devices, d)
	}
	return rep, nil
}

func (p *Probe) probeDevice(entry *proc.Entry, instance *Instance, instanceResolver proc.Resolver, pd *PhysicalDevice) (report.Device, error) {
	device, err := pd.createDevice()
	if err != nil {
		return report.Device{}, err
	}
	defer device.Destroy()

	deviceResolver, err := entry.DeviceResolver(instance.Raw(), device.Raw())
	if err != nil {
		return report.Device{}, err
	}
	enabled := func(name string) bool {
		return slices.Contains(device.Enabled, name)
	}

	exts := report.LoadAll(pd.Available, extensions.Device, instanceResolver, deviceResolver, enabled)
	// Device-level commands of instance extensions, such as the debug
	// utils labels, dispatch through the device.
	for _, ext := range report.LoadAll(instance.Available, extensions.Instance, nil, deviceResolver, func(string) bool { return true }) {
		if len(ext.Loaded)+len(ext.Missing) > 0 {
			exts = append(exts, ext)
		}
	}

	d := report.Device{
		Name:          pd.Name(),
		Type:          pd.Type(),
		UUID:          report.DeviceUUID(pd.Properties.PipelineCacheUUID),
		APIVersion:    pd.APIVersion().String(),
		DriverVersion: pd.DriverVersion().String(),
		Extensions:    exts,
	}
	loaded, missing := 0, 0
	for _, e := range exts {
		loaded += len(e.Loaded)
		missing += len(e.Missing)
	}
	core.LogInfo("%s: %d extensions, %d commands loaded, %d missing", d.Name, len(exts), loaded, missing)
	return d, nil
}
