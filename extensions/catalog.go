// Package extensions lists every generated extension loader.
//
// The loaders themselves live in one package per vendor tag
// (extensions/khr, extensions/ext, ...). This package gives a uniform view
// over them, so a caller can load an extension it only knows by name.
package extensions

import (
	"slices"
	"strings"

	"github.com/spaghettifunk/vkext/proc"
)

// Kind is the registry type of an extension.
type Kind int

const (
	Instance Kind = iota
	Device
)

func (k Kind) String() string {
	if k == Device {
		return "device"
	}
	return "instance"
}

// Descriptor describes one extension and how to load its commands.
type Descriptor struct {
	// Name is the extension name, NUL-terminated.
	Name        string
	SpecVersion uint32
	Number      int
	Vendor      string
	Kind        Kind
	Platform    string
	Depends     string

	InstanceCommands []string
	DeviceCommands   []string

	// LoadInstance and LoadDevice are nil when the extension has no
	// commands at that level.
	LoadInstance func(proc.Resolver) []proc.Proc
	LoadDevice   func(proc.Resolver) []proc.Proc
}

// String returns the extension name without the NUL.
func (d Descriptor) String() string {
	return strings.TrimSuffix(d.Name, "\x00")
}

// HasCommands reports whether the extension declares any command.
func (d Descriptor) HasCommands() bool {
	return d.LoadInstance != nil || d.LoadDevice != nil
}

type table interface {
	Procs() []proc.Proc
}

func loader[T table](load func(proc.Resolver) T) func(proc.Resolver) []proc.Proc {
	return func(resolve proc.Resolver) []proc.Proc {
		return load(resolve).Procs()
	}
}

// All returns every descriptor in registry order. The slice is a copy.
func All() []Descriptor {
	return slices.Clone(registry)
}

// Lookup finds an extension by name, with or without the trailing NUL.
func Lookup(name string) (Descriptor, bool) {
	name = strings.TrimSuffix(name, "\x00")
	for _, d := range registry {
		if d.String() == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Vendors returns the vendor tags that have at least one extension, sorted.
func Vendors() []string {
	var vendors []string
	for _, d := range registry {
		if !slices.Contains(vendors, d.Vendor) {
			vendors = append(vendors, d.Vendor)
		}
	}
	slices.Sort(vendors)
	return vendors
}
