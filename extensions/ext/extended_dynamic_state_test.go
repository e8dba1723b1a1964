package ext

import (
	"errors"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/proc"
	"github.com/spaghettifunk/vkext/vk"
)

// onlyCullMode resolves vkCmdSetCullModeEXT and nothing else.
func onlyCullMode(name string) uintptr {
	if name == "vkCmdSetCullModeEXT\x00" {
		return 0x1000
	}
	return 0
}

func TestExtendedDynamicStateNames(t *testing.T) {
	if ExtendedDynamicStateExtensionName != "VK_EXT_extended_dynamic_state\x00" {
		t.Errorf("ExtensionName = %q", ExtendedDynamicStateExtensionName)
	}
	if ExtendedDynamicStateSpecVersion != 1 {
		t.Errorf("SpecVersion = %d, want 1", ExtendedDynamicStateSpecVersion)
	}
}

func TestExtendedDynamicStatePartialLoad(t *testing.T) {
	var calls []string
	fn := LoadExtendedDynamicStateDeviceFn(func(name string) uintptr {
		calls = append(calls, name)
		return onlyCullMode(name)
	})

	if len(calls) != 12 {
		t.Fatalf("resolver called %d times, want 12", len(calls))
	}
	if calls[0] != "vkCmdSetCullModeEXT\x00" || calls[11] != "vkCmdSetStencilOpEXT\x00" {
		t.Errorf("resolver order = %q", calls)
	}
	if got := fn.CmdSetCullModeEXT.Addr(); got != 0x1000 {
		t.Errorf("CmdSetCullModeEXT address = %#x, want 0x1000", got)
	}

	siblings := []struct {
		field string
		call  func()
	}{
		{"CmdSetFrontFaceEXT", func() { fn.CmdSetFrontFaceEXT.Call(vk.CommandBuffer(1), vk.FrontFace(0)) }},
		{"CmdSetPrimitiveTopologyEXT", func() { fn.CmdSetPrimitiveTopologyEXT.Call(vk.CommandBuffer(1), vk.PrimitiveTopology(3)) }},
		{"CmdSetDepthTestEnableEXT", func() { fn.CmdSetDepthTestEnableEXT.Call(vk.CommandBuffer(1), vk.True) }},
		{"CmdSetStencilOpEXT", func() { fn.CmdSetStencilOpEXT.Call(vk.CommandBuffer(1), 0, 0, 0, 0, 0) }},
		{"CmdSetViewportWithCountEXT", func() { fn.CmdSetViewportWithCountEXT.Addr() }},
	}
	for _, s := range siblings {
		t.Run(s.field, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(*proc.MissingCommandError)
				if !ok {
					t.Fatalf("recovered %v (%T), want *proc.MissingCommandError", r, r)
				}
				if !strings.Contains(err.Error(), s.field) {
					t.Errorf("panic %q does not name %s", err.Error(), s.field)
				}
			}()
			s.call()
		})
	}

	err := fn.Check()
	var missing *proc.MissingCommandsError
	if !errors.As(err, &missing) {
		t.Fatalf("Check() = %v, want *proc.MissingCommandsError", err)
	}
	if missing.Extension != "VK_EXT_extended_dynamic_state" || len(missing.Commands) != 11 {
		t.Errorf("Check() = %v", err)
	}
	if missing.Commands[0] != "vkCmdSetFrontFaceEXT" {
		t.Errorf("first missing command = %s, want vkCmdSetFrontFaceEXT", missing.Commands[0])
	}
	if !errors.Is(err, core.ErrMissingCommands) {
		t.Errorf("errors.Is(Check(), ErrMissingCommands) = false")
	}
}

func TestExtendedDynamicStateDeterministic(t *testing.T) {
	a := LoadExtendedDynamicStateDeviceFn(onlyCullMode)
	b := LoadExtendedDynamicStateDeviceFn(onlyCullMode)
	if a != b {
		t.Errorf("two loads with the same resolver differ")
	}
}

func TestExtendedDynamicStateWrapper(t *testing.T) {
	d := NewExtendedDynamicStateDevice(onlyCullMode, vk.Device(0xbeef))
	if d.Handle != vk.Device(0xbeef) {
		t.Errorf("Handle = %#x, want 0xbeef", d.Handle)
	}
	if d.ExtendedDynamicStateDeviceFn != LoadExtendedDynamicStateDeviceFn(onlyCullMode) {
		t.Errorf("wrapper table differs from a direct load")
	}
	if len(d.Procs()) != 12 {
		t.Errorf("len(Procs()) = %d, want 12", len(d.Procs()))
	}
}
