package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkext/core"
)

func commandNames(cmds []*Command) []string {
	var names []string
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return names
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuild(t *testing.T) {
	m := buildTestModel(t)

	var got []string
	for _, e := range m.Extensions {
		got = append(got, e.Name)
	}
	want := []string{"VK_KHR_surface", "VK_NV_4bit_names", "VK_EXT_test_state"}
	if !equalStrings(got, want) {
		t.Fatalf("extensions = %q, want %q", got, want)
	}

	ext := m.Extensions[2]
	if ext.Vendor != "EXT" || ext.Kind != "device" || ext.SpecVersion != 2 || ext.Number != 9 || ext.Depends != "VK_KHR_surface" {
		t.Errorf("VK_EXT_test_state = %+v", ext)
	}
	if got := commandNames(ext.InstanceCommands); !equalStrings(got, []string{"vkGetDrmDisplayEXT"}) {
		t.Errorf("instance commands = %q", got)
	}
	wantDevice := []string{"vkCmdSetCullModeEXT", "vkCmdSetFrontFaceEXT", "vkCmdSetLineWidthEXT", "vkCmdSetExtentEXT"}
	if got := commandNames(ext.DeviceCommands); !equalStrings(got, wantDevice) {
		t.Errorf("device commands = %q, want %q", got, wantDevice)
	}

	cull := ext.DeviceCommands[0]
	if cull.Return != "void" || len(cull.Params) != 2 || cull.Params[1].Type != "VkCullModeFlags" {
		t.Errorf("alias vkCmdSetCullModeEXT did not take the signature of vkCmdSetCullMode: %+v", cull)
	}

	if m.Extensions[1].Platform != "xlib" {
		t.Errorf("Platform = %q, want xlib", m.Extensions[1].Platform)
	}
	if got := m.Vendors(); !equalStrings(got, []string{"EXT", "KHR", "NV"}) {
		t.Errorf("Vendors() = %q", got)
	}
	if got := m.ByVendor("KHR"); len(got) != 1 || got[0].Name != "VK_KHR_surface" {
		t.Errorf("ByVendor(KHR) = %v", got)
	}
}

func TestBuildFilters(t *testing.T) {
	cfg := core.DefaultConfig().Generator
	cfg.Vendors = []string{"KHR", "NV"}
	cfg.Exclude = []string{"VK_NV_4bit_names"}

	m, err := Build(parseTestRegistry(t), cfg)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if len(m.Extensions) != 1 || m.Extensions[0].Name != "VK_KHR_surface" {
		t.Errorf("filtered extensions = %v", m.Extensions)
	}
}

const scRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <types>
        <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkPhysicalDevice</name>)</type>
        <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkDevice</name>)</type>
        <type category="handle" parent="VkDevice"><type>VK_DEFINE_NON_DISPATCHABLE_HANDLE</type>(<name>VkFence</name>)</type>
        <type category="enum" name="VkResult"/>
        <type category="struct" name="VkFenceGetSciSyncInfoNV"/>
        <type category="struct" name="VkSciSyncAttributesInfoNV"/>
        <type requires="nvscisync.h" name="NvSciSyncAttrList"/>
    </types>
    <commands>
        <command api="vulkansc">
            <proto><type>VkResult</type> <name>vkGetFenceSciSyncFenceNV</name></proto>
            <param><type>VkDevice</type> <name>device</name></param>
            <param>const <type>VkFenceGetSciSyncInfoNV</type>* <name>pGetSciSyncHandleInfo</name></param>
            <param><type>void</type>* <name>pHandle</name></param>
        </command>
        <command api="vulkansc">
            <proto><type>VkResult</type> <name>vkGetPhysicalDeviceSciSyncAttributesNV</name></proto>
            <param><type>VkPhysicalDevice</type> <name>physicalDevice</name></param>
            <param>const <type>VkSciSyncAttributesInfoNV</type>* <name>pSciSyncAttributesInfo</name></param>
            <param><type>NvSciSyncAttrList</type> <name>pAttributes</name></param>
        </command>
        <command api="vulkan">
            <proto><type>VkResult</type> <name>vkGetFenceStatusNV</name></proto>
            <param><type>VkDevice</type> <name>device</name></param>
            <param api="vulkansc"><type>NvSciSyncAttrList</type> <name>attributes</name></param>
            <param><type>VkFence</type> <name>fence</name></param>
        </command>
        <command api="vulkansc">
            <proto><type>VkResult</type> <name>vkGetFenceStatusNV</name></proto>
            <param><type>VkPhysicalDevice</type> <name>physicalDevice</name></param>
        </command>
    </commands>
    <extensions>
        <extension name="VK_NV_external_sci_sync" number="374" type="device" platform="sci" supported="vulkansc">
            <require>
                <enum value="2" name="VK_NV_EXTERNAL_SCI_SYNC_SPEC_VERSION"/>
                <enum value="&quot;VK_NV_external_sci_sync&quot;" name="VK_NV_EXTERNAL_SCI_SYNC_EXTENSION_NAME"/>
                <command name="vkGetFenceSciSyncFenceNV"/>
                <command name="vkGetPhysicalDeviceSciSyncAttributesNV"/>
            </require>
        </extension>
        <extension name="VK_NV_fence_status" number="900" type="device" supported="vulkan,vulkansc">
            <require>
                <enum value="1" name="VK_NV_FENCE_STATUS_SPEC_VERSION"/>
                <enum value="&quot;VK_NV_fence_status&quot;" name="VK_NV_FENCE_STATUS_EXTENSION_NAME"/>
                <command name="vkGetFenceStatusNV"/>
            </require>
            <require api="vulkansc">
                <command name="vkGetFenceSciSyncFenceNV"/>
            </require>
        </extension>
    </extensions>
</registry>
`

func TestBuildSkipsOtherAPIs(t *testing.T) {
	reg, err := ParseRegistry(strings.NewReader(scRegistry))
	if err != nil {
		t.Fatalf("ParseRegistry() = %v", err)
	}
	m, err := Build(reg, core.DefaultConfig().Generator)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if len(m.Extensions) != 1 || m.Extensions[0].Name != "VK_NV_fence_status" {
		t.Fatalf("extensions = %v, want only VK_NV_fence_status", m.Extensions)
	}
	ext := m.Extensions[0]
	if got := commandNames(ext.DeviceCommands); !equalStrings(got, []string{"vkGetFenceStatusNV"}) {
		t.Errorf("device commands = %q", got)
	}
	if len(ext.InstanceCommands) != 0 {
		t.Errorf("instance commands = %q", commandNames(ext.InstanceCommands))
	}
	status := ext.DeviceCommands[0]
	if len(status.Params) != 2 || status.Params[0].Type != "VkDevice" || status.Params[1].Type != "VkFence" {
		t.Errorf("vkGetFenceStatusNV params = %+v, want device and fence", status.Params)
	}

	// NvSciSyncAttrList has no platform mapping; emitting succeeds only if
	// nothing from the vulkansc side reached the model.
	if _, err := Emit(m, testModule); err != nil {
		t.Errorf("Emit() = %v", err)
	}
}

func TestForVulkan(t *testing.T) {
	tests := []struct {
		api  string
		want bool
	}{
		{"", true},
		{"vulkan", true},
		{"vulkansc", false},
		{"vulkan,vulkansc", true},
		{"vulkansc,vulkan", true},
		{"disabled", false},
	}
	for _, tt := range tests {
		if got := forVulkan(tt.api); got != tt.want {
			t.Errorf("forVulkan(%q) = %v, want %v", tt.api, got, tt.want)
		}
		re := RegistryExtension{Supported: tt.api}
		if tt.api != "" && re.supportedByVulkan() != tt.want {
			t.Errorf("supportedByVulkan(%q) = %v, want %v", tt.api, !tt.want, tt.want)
		}
	}
	if (RegistryExtension{}).supportedByVulkan() {
		t.Errorf("an extension without a supported attribute was treated as supported")
	}
}

func TestResolveCommandErrors(t *testing.T) {
	commands := map[string]RegistryCommand{
		"vkA": {Name: "vkA", Alias: "vkB"},
		"vkB": {Name: "vkB", Alias: "vkA"},
		"vkC": {Name: "vkC", Alias: "vkMissing"},
	}
	for _, name := range []string{"vkA", "vkC", "vkUnknown"} {
		if _, err := resolveCommand(commands, name); !errors.Is(err, core.ErrRegistry) {
			t.Errorf("resolveCommand(%s) = %v, want ErrRegistry", name, err)
		}
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		name, first string
		want        Level
	}{
		{"vkCreateDebugUtilsMessengerEXT", "VkInstance", InstanceLevel},
		{"vkGetPhysicalDeviceSurfaceSupportKHR", "VkPhysicalDevice", InstanceLevel},
		{"vkCreateSwapchainKHR", "VkDevice", DeviceLevel},
		{"vkQueuePresentKHR", "VkQueue", DeviceLevel},
		{"vkCmdSetCullModeEXT", "VkCommandBuffer", DeviceLevel},
		{"vkGetDeviceProcAddr", "VkDevice", InstanceLevel},
		{"vkCreateInstance", "VkInstanceCreateInfo", InstanceLevel},
	}
	for _, tt := range tests {
		if got := levelOf(tt.name, tt.first); got != tt.want {
			t.Errorf("levelOf(%s, %s) = %d, want %d", tt.name, tt.first, got, tt.want)
		}
	}
}

func TestExtensionNames(t *testing.T) {
	tests := []struct {
		name, vendor, base, file string
	}{
		{"VK_KHR_surface", "KHR", "Surface", "surface.gen.go"},
		{"VK_EXT_extended_dynamic_state", "EXT", "ExtendedDynamicState", "extended_dynamic_state.gen.go"},
		{"VK_KHR_16bit_storage", "KHR", "Khr16bitStorage", "16bit_storage.gen.go"},
		{"VK_NVX_binary_import", "NVX", "BinaryImport", "binary_import.gen.go"},
		{"VK_KHR_get_physical_device_properties2", "KHR", "GetPhysicalDeviceProperties2", "get_physical_device_properties2.gen.go"},
	}
	for _, tt := range tests {
		e := &Extension{Name: tt.name, Vendor: vendorOf(tt.name)}
		if e.Vendor != tt.vendor {
			t.Errorf("vendorOf(%s) = %s, want %s", tt.name, e.Vendor, tt.vendor)
		}
		if got := e.BaseName(); got != tt.base {
			t.Errorf("BaseName(%s) = %s, want %s", tt.name, got, tt.base)
		}
		if got := e.FileName(); got != tt.file {
			t.Errorf("FileName(%s) = %s, want %s", tt.name, got, tt.file)
		}
	}
}
