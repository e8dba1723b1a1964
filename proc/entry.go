package proc

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"unsafe"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/vk"
)

const (
	getInstanceProcAddrName = "vkGetInstanceProcAddr\x00"
	getDeviceProcAddrName   = "vkGetDeviceProcAddr\x00"
)

// Entry wraps the loader's vkGetInstanceProcAddr and hands out resolvers
// bound to an instance or a device.
type Entry struct {
	getInstanceProcAddr Proc
}

// canCall is false where foreign calls are unavailable. Resolvers then return
// 0 for every name, so loading succeeds and every command reports missing.
var (
	canCall         = callSupported
	warnUnsupported sync.Once
)

func unsupported() error {
	return fmt.Errorf("%s/%s: %w", runtime.GOOS, runtime.GOARCH, core.ErrUnsupportedPlatform)
}

// NewEntry wraps an existing vkGetInstanceProcAddr, such as the one returned
// by glfw or found in the loader library. On platforms without foreign call
// support the resolvers of the entry resolve nothing.
func NewEntry(getInstanceProcAddr uintptr) *Entry {
	return &Entry{getInstanceProcAddr: Proc{name: getInstanceProcAddrName, addr: getInstanceProcAddr}}
}

// Addr returns the address of the wrapped vkGetInstanceProcAddr.
func (e *Entry) Addr() uintptr {
	return e.getInstanceProcAddr.Addr()
}

// StaticResolver looks command names up in a fixed table. Missing names
// resolve to 0.
func StaticResolver(addrs map[string]uintptr) Resolver {
	return func(name string) uintptr {
		return addrs[strings.TrimSuffix(name, "\x00")]
	}
}

// InstanceResolver resolves commands through vkGetInstanceProcAddr for
// instance. A zero instance resolves global commands.
func (e *Entry) InstanceResolver(instance vk.Instance) Resolver {
	if !canCall {
		warnUnsupported.Do(func() { core.LogWarn("resolving commands: %s", unsupported()) })
		return func(string) uintptr { return 0 }
	}
	return func(name string) uintptr {
		name = terminate(name)
		return Call(e.getInstanceProcAddr, uintptr(instance), uintptr(unsafe.Pointer(unsafe.StringData(name))))
	}
}

// DeviceResolver resolves vkGetDeviceProcAddr once through instance and
// returns a resolver bound to device.
func (e *Entry) DeviceResolver(instance vk.Instance, device vk.Device) (Resolver, error) {
	if !canCall {
		return nil, unsupported()
	}
	addr := e.InstanceResolver(instance)(getDeviceProcAddrName)
	if addr == 0 {
		return nil, fmt.Errorf("vkGetDeviceProcAddr: %w", core.ErrSymbolNotFound)
	}
	getDeviceProcAddr := Proc{name: getDeviceProcAddrName, addr: addr}
	return func(name string) uintptr {
		name = terminate(name)
		return Call(getDeviceProcAddr, uintptr(device), uintptr(unsafe.Pointer(unsafe.StringData(name))))
	}, nil
}

func terminate(name string) string {
	if strings.HasSuffix(name, "\x00") {
		return name
	}
	return name + "\x00"
}
