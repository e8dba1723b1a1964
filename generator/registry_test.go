package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkext/core"
)

const testRegistry = `<?xml version="1.0" encoding="UTF-8"?>
<registry>
    <types>
        <type category="basetype">typedef <type>uint32_t</type> <name>VkFlags</name>;</type>
        <type category="basetype">typedef <type>uint64_t</type> <name>VkFlags64</name>;</type>
        <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkInstance</name>)</type>
        <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkPhysicalDevice</name>)</type>
        <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkDevice</name>)</type>
        <type category="handle"><type>VK_DEFINE_HANDLE</type>(<name>VkCommandBuffer</name>)</type>
        <type category="handle"><type>VK_DEFINE_NON_DISPATCHABLE_HANDLE</type>(<name>VkSurfaceKHR</name>)</type>
        <type category="enum" name="VkResult"/>
        <type category="enum" name="VkFrontFace"/>
        <type category="enum" name="VkCullModeFlagBits"/>
        <type requires="VkCullModeFlagBits" category="bitmask">typedef <type>VkFlags</type> <name>VkCullModeFlags</name>;</type>
        <type category="bitmask">typedef <type>VkFlags64</type> <name>VkPipelineStageFlags2</name>;</type>
        <type category="bitmask" name="VkPipelineStageFlags2KHR" alias="VkPipelineStageFlags2"/>
        <type category="struct" name="VkAllocationCallbacks"/>
        <type category="struct" name="VkExtent2D"/>
        <type requires="X11/Xlib.h" name="Display"/>
    </types>
    <commands>
        <command>
            <proto><type>void</type> <name>vkDestroySurfaceKHR</name></proto>
            <param><type>VkInstance</type> <name>instance</name></param>
            <param><type>VkSurfaceKHR</type> <name>surface</name></param>
            <param>const <type>VkAllocationCallbacks</type>* <name>pAllocator</name></param>
        </command>
        <command>
            <proto><type>void</type> <name>vkCmdSetCullMode</name></proto>
            <param><type>VkCommandBuffer</type> <name>commandBuffer</name></param>
            <param><type>VkCullModeFlags</type> <name>cullMode</name></param>
        </command>
        <command name="vkCmdSetCullModeEXT" alias="vkCmdSetCullMode"/>
        <command>
            <proto><type>void</type> <name>vkCmdSetFrontFaceEXT</name></proto>
            <param><type>VkCommandBuffer</type> <name>commandBuffer</name></param>
            <param><type>VkFrontFace</type> <name>frontFace</name></param>
        </command>
        <command>
            <proto><type>void</type> <name>vkCmdSetLineWidthEXT</name></proto>
            <param><type>VkCommandBuffer</type> <name>commandBuffer</name></param>
            <param><type>float</type> <name>lineWidth</name></param>
        </command>
        <command>
            <proto><type>void</type> <name>vkCmdSetExtentEXT</name></proto>
            <param><type>VkCommandBuffer</type> <name>commandBuffer</name></param>
            <param><type>VkExtent2D</type> <name>extent</name></param>
        </command>
        <command>
            <proto><type>VkResult</type> <name>vkGetDrmDisplayEXT</name></proto>
            <param><type>VkPhysicalDevice</type> <name>physicalDevice</name></param>
            <param><type>int32_t</type> <name>drmFd</name></param>
            <param><type>uint32_t</type>* <name>pCount</name></param>
            <param>const <type>VkPipelineStageFlags2KHR</type>* <name>pStages</name></param>
            <param><type>Display</type>* <name>dpy</name></param>
            <param>const <type>VkFrontFace</type> <name>faces</name>[2]</param>
            <param><type>uint32_t</type> <name>type</name></param>
        </command>
    </commands>
    <extensions>
        <extension name="VK_KHR_surface" number="1" type="instance" supported="vulkan">
            <require>
                <enum value="25" name="VK_KHR_SURFACE_SPEC_VERSION"/>
                <enum value="&quot;VK_KHR_surface&quot;" name="VK_KHR_SURFACE_EXTENSION_NAME"/>
                <command name="vkDestroySurfaceKHR"/>
            </require>
        </extension>
        <extension name="VK_EXT_test_state" number="9" type="device" depends="VK_KHR_surface" supported="vulkan">
            <require>
                <enum value="2" name="VK_EXT_TEST_STATE_SPEC_VERSION"/>
                <enum value="&quot;VK_EXT_test_state&quot;" name="VK_EXT_TEST_STATE_EXTENSION_NAME"/>
                <command name="vkCmdSetCullModeEXT"/>
                <command name="vkGetDrmDisplayEXT"/>
                <command name="vkCmdSetFrontFaceEXT"/>
                <command name="vkCmdSetLineWidthEXT"/>
                <command name="vkCmdSetExtentEXT"/>
            </require>
        </extension>
        <extension name="VK_KHR_extension_3" number="3" supported="disabled">
            <require>
                <enum value="0" name="VK_KHR_EXTENSION_3_SPEC_VERSION"/>
                <enum value="&quot;VK_KHR_extension_3&quot;" name="VK_KHR_EXTENSION_3_EXTENSION_NAME"/>
            </require>
        </extension>
        <extension name="VK_NV_4bit_names" number="2" type="device" platform="xlib" supported="vulkan">
            <require>
                <enum value="1" name="VK_NV_4BIT_NAMES_SPEC_VERSION"/>
                <enum value="&quot;VK_NV_4bit_names&quot;" name="VK_NV_4BIT_NAMES_EXTENSION_NAME"/>
            </require>
        </extension>
    </extensions>
</registry>
`

func parseTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := ParseRegistry(strings.NewReader(testRegistry))
	if err != nil {
		t.Fatalf("ParseRegistry() = %v", err)
	}
	return reg
}

func buildTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := Build(parseTestRegistry(t), core.DefaultConfig().Generator)
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	return m
}

func TestParseRegistry(t *testing.T) {
	reg := parseTestRegistry(t)
	if len(reg.Types) != 16 || len(reg.Commands) != 7 || len(reg.Extensions) != 4 {
		t.Fatalf("parsed %d types, %d commands, %d extensions", len(reg.Types), len(reg.Commands), len(reg.Extensions))
	}

	names := map[string]bool{}
	for _, typ := range reg.Types {
		names[typ.TypeName()] = true
	}
	for _, want := range []string{"VkFlags", "VkDevice", "VkResult", "VkCullModeFlags", "Display"} {
		if !names[want] {
			t.Errorf("type %s not parsed", want)
		}
	}

	alias := reg.Commands[2]
	if alias.CommandName() != "vkCmdSetCullModeEXT" || alias.Alias != "vkCmdSetCullMode" {
		t.Errorf("alias command = %s -> %s", alias.CommandName(), alias.Alias)
	}
	if reg.Commands[0].CommandName() != "vkDestroySurfaceKHR" {
		t.Errorf("CommandName() = %s, want vkDestroySurfaceKHR", reg.Commands[0].CommandName())
	}
}

func TestRegistryParamDeclarations(t *testing.T) {
	reg := parseTestRegistry(t)
	var params []RegistryParam
	for _, c := range reg.Commands {
		if c.CommandName() == "vkGetDrmDisplayEXT" {
			params = c.Params
		}
	}
	tests := []struct {
		name     string
		typ      string
		pointers int
		array    int
		isConst  bool
	}{
		{"physicalDevice", "VkPhysicalDevice", 0, 0, false},
		{"drmFd", "int32_t", 0, 0, false},
		{"pCount", "uint32_t", 1, 0, false},
		{"pStages", "VkPipelineStageFlags2KHR", 1, 0, true},
		{"dpy", "Display", 1, 0, false},
		{"faces", "VkFrontFace", 0, 2, true},
		{"type", "uint32_t", 0, 0, false},
	}
	if len(params) != len(tests) {
		t.Fatalf("vkGetDrmDisplayEXT has %d params, want %d", len(params), len(tests))
	}
	for i, tt := range tests {
		p := params[i]
		if p.Name != tt.name || p.Type != tt.typ {
			t.Errorf("param %d = %s %s, want %s %s", i, p.Type, p.Name, tt.typ, tt.name)
		}
		if got := p.Pointers(); got != tt.pointers {
			t.Errorf("%s: Pointers() = %d, want %d", tt.name, got, tt.pointers)
		}
		if got := p.ArrayLen(); got != tt.array {
			t.Errorf("%s: ArrayLen() = %d, want %d", tt.name, got, tt.array)
		}
		if got := p.Const(); got != tt.isConst {
			t.Errorf("%s: Const() = %v, want %v", tt.name, got, tt.isConst)
		}
	}
}

func TestRegistryExtensionEnums(t *testing.T) {
	reg := parseTestRegistry(t)
	ext := reg.Extensions[1]

	name, err := ext.extensionName()
	if err != nil || name != "VK_EXT_test_state" {
		t.Errorf("extensionName() = %q, %v", name, err)
	}
	version, err := ext.specVersion()
	if err != nil || version != 2 {
		t.Errorf("specVersion() = %d, %v", version, err)
	}
	if got := strings.Join(ext.commands(), ","); got != "vkCmdSetCullModeEXT,vkGetDrmDisplayEXT,vkCmdSetFrontFaceEXT,vkCmdSetLineWidthEXT,vkCmdSetExtentEXT" {
		t.Errorf("commands() = %s", got)
	}

	if _, err := (RegistryExtension{Name: "VK_EXT_empty"}).specVersion(); !errors.Is(err, core.ErrRegistry) {
		t.Errorf("specVersion() on an empty extension = %v, want ErrRegistry", err)
	}
}

func TestParseRegistryMalformed(t *testing.T) {
	_, err := ParseRegistry(strings.NewReader("<registry><types>"))
	if !errors.Is(err, core.ErrRegistry) {
		t.Errorf("ParseRegistry() = %v, want ErrRegistry", err)
	}
}
