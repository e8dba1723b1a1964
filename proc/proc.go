// Package proc resolves Vulkan command addresses and calls them without cgo.
//
// A Resolver turns a NUL-terminated command name into an address, usually by
// calling vkGetInstanceProcAddr or vkGetDeviceProcAddr bound to one handle.
// Generated loaders call it exactly once per command and keep the result in a
// Proc, which panics on use when the driver returned no address.
package proc

import (
	"strings"
)

// Resolver returns the address of the command called name, or 0 when it is
// not available. name always ends with a NUL byte.
type Resolver func(name string) uintptr

// Proc is one resolved command. The zero address marks a command the
// resolver did not provide.
type Proc struct {
	name string
	addr uintptr
}

// Load resolves a single command. name must carry its trailing NUL.
func Load(resolve Resolver, name string) Proc {
	return Proc{name: name, addr: resolve(name)}
}

// Name returns the command name without the trailing NUL.
func (p Proc) Name() string {
	return strings.TrimSuffix(p.name, "\x00")
}

// Loaded reports whether the resolver returned an address.
func (p Proc) Loaded() bool {
	return p.addr != 0
}

// Addr returns the resolved address. It panics with a *MissingCommandError
// when the command was not loaded.
func (p Proc) Addr() uintptr {
	if p.addr == 0 {
		panic(&MissingCommandError{Command: p.Name()})
	}
	return p.addr
}
