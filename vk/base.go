// Package vk holds the Vulkan scalar, flag and handle types shared by the
// generated extension loaders. Dispatchable handles are pointers owned by the
// Vulkan loader and are carried as uintptr; every other handle is a 64-bit
// integer.
package vk

import "fmt"

type (
	Flags         uint32
	Flags64       uint64
	Bool32        uint32
	DeviceSize    uint64
	DeviceAddress uint64
	SampleMask    uint32
)

const (
	False Bool32 = 0
	True  Bool32 = 1
)

type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// NullHandle is the value of an unset non-dispatchable handle.
const NullHandle = 0

// Version is a packed Vulkan API or driver version.
type Version uint32

func MakeAPIVersion(variant, major, minor, patch uint32) Version {
	return Version(variant<<29 | major<<22 | minor<<12 | patch)
}

func (v Version) Variant() uint32 { return uint32(v) >> 29 }
func (v Version) Major() uint32   { return uint32(v) >> 22 & 0x7f }
func (v Version) Minor() uint32   { return uint32(v) >> 12 & 0x3ff }
func (v Version) Patch() uint32   { return uint32(v) & 0xfff }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// Bool converts a Vulkan boolean.
func (b Bool32) Bool() bool {
	return b != False
}
