//go:build (darwin || linux) && (amd64 || arm64)

package proc

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/spaghettifunk/vkext/vk"
)

func TestCallThroughCallback(t *testing.T) {
	add := purego.NewCallback(func(a, b, c uintptr) uintptr {
		return a + b*c
	})
	p := Proc{name: "vkTestAdd\x00", addr: add}

	if got := Call(p, 1, 2, 3); got != 7 {
		t.Errorf("Call(1, 2, 3) = %d, want 7", got)
	}
}

func TestInstanceResolverPassesHandleAndName(t *testing.T) {
	var gotInstance uintptr
	var gotName string
	getInstanceProcAddr := purego.NewCallback(func(instance, name uintptr) uintptr {
		gotInstance = instance
		gotName = goString(name)
		if gotName == "vkGetDeviceProcAddr" {
			return 0
		}
		return 0x1000
	})
	entry := NewEntry(getInstanceProcAddr)

	addr := entry.InstanceResolver(vk.Instance(0xabc))("vkCreateDebugUtilsMessengerEXT\x00")
	if addr != 0x1000 {
		t.Errorf("resolved address = %#x, want 0x1000", addr)
	}
	if gotInstance != 0xabc {
		t.Errorf("instance = %#x, want 0xabc", gotInstance)
	}
	if gotName != "vkCreateDebugUtilsMessengerEXT" {
		t.Errorf("name = %q, want %q", gotName, "vkCreateDebugUtilsMessengerEXT")
	}

	if _, err := entry.DeviceResolver(vk.Instance(0xabc), vk.Device(0xdef)); err == nil {
		t.Errorf("DeviceResolver() without vkGetDeviceProcAddr returned no error")
	}
}

func goString(p uintptr) string {
	var b []byte
	for {
		c := *(*byte)(unsafe.Pointer(p))
		if c == 0 {
			return string(b)
		}
		b = append(b, c)
		p++
	}
}
