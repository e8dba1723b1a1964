//go:build (darwin || linux) && (amd64 || arm64)

package ext

import (
	"testing"

	"github.com/ebitengine/purego"

	"github.com/spaghettifunk/vkext/vk"
)

func TestCmdSetCullModeCallsThrough(t *testing.T) {
	var gotBuffer, gotMode uintptr
	cullMode := purego.NewCallback(func(commandBuffer, mode uintptr) uintptr {
		gotBuffer, gotMode = commandBuffer, mode
		return 0
	})
	fn := LoadExtendedDynamicStateDeviceFn(func(name string) uintptr {
		if name == "vkCmdSetCullModeEXT\x00" {
			return cullMode
		}
		return 0
	})

	fn.CmdSetCullModeEXT.Call(vk.CommandBuffer(0x42), vk.CullModeFlags(3))
	if gotBuffer != 0x42 || gotMode != 3 {
		t.Errorf("callback got (%#x, %d), want (0x42, 3)", gotBuffer, gotMode)
	}
}
