package report

import (
	"github.com/spaghettifunk/vkext/extensions"
	"github.com/spaghettifunk/vkext/proc"
)

// LoadExtension loads the commands of d through the given resolvers and
// sorts them into loaded and missing. A nil resolver skips that level.
func LoadExtension(d extensions.Descriptor, instance, device proc.Resolver) Extension {
	ext := Extension{Name: d.String(), RegistryVersion: d.SpecVersion}
	var procs []proc.Proc
	if d.LoadInstance != nil && instance != nil {
		procs = append(procs, d.LoadInstance(instance)...)
	}
	if d.LoadDevice != nil && device != nil {
		procs = append(procs, d.LoadDevice(device)...)
	}
	for _, p := range procs {
		if p.Loaded() {
			ext.Loaded = append(ext.Loaded, p.Name())
		} else {
			ext.Missing = append(ext.Missing, p.Name())
		}
	}
	return ext
}

// LoadAll loads every known extension in available, keyed by name without
// NUL with the driver's spec version as value, in registry order. Names the
// catalog does not know are skipped.
func LoadAll(available map[string]uint32, kind extensions.Kind, instance, device proc.Resolver, enabled func(string) bool) []Extension {
	var out []Extension
	for _, d := range extensions.All() {
		version, ok := available[d.String()]
		if !ok || d.Kind != kind {
			continue
		}
		ext := LoadExtension(d, instance, device)
		ext.DriverVersion = version
		ext.Enabled = enabled(d.String())
		out = append(out, ext)
	}
	return out
}
