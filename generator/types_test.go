package generator

import (
	"testing"

	"github.com/spaghettifunk/vkext/core"
)

func TestParamType(t *testing.T) {
	reg := parseTestRegistry(t)
	tm := NewTypeMap(reg, core.DefaultConfig().Generator)

	tests := []struct {
		param   RegistryParam
		want    string
		integer bool
	}{
		{RegistryParam{Type: "VkDevice", Inner: "<type>VkDevice</type> <name>device</name>"}, "vk.Device", true},
		{RegistryParam{Type: "VkSurfaceKHR", Inner: "<type>VkSurfaceKHR</type> <name>surface</name>"}, "vk.SurfaceKHR", true},
		{RegistryParam{Type: "uint32_t", Inner: "<type>uint32_t</type> <name>n</name>"}, "uint32", true},
		{RegistryParam{Type: "float", Inner: "<type>float</type> <name>f</name>"}, "float32", false},
		{RegistryParam{Type: "VkExtent2D", Inner: "<type>VkExtent2D</type> <name>extent</name>"}, "unsafe.Pointer", false},
		{RegistryParam{Type: "VkExtent2D", Inner: "const <type>VkExtent2D</type>* <name>pExtent</name>"}, "unsafe.Pointer", true},
		{RegistryParam{Type: "uint32_t", Inner: "<type>uint32_t</type>* <name>pCount</name>"}, "*uint32", true},
		{RegistryParam{Type: "void", Inner: "<type>void</type>* <name>pData</name>"}, "unsafe.Pointer", true},
		{RegistryParam{Type: "char", Inner: "const <type>char</type>* const* <name>ppNames</name>"}, "unsafe.Pointer", true},
		{RegistryParam{Type: "VkCullModeFlags", Inner: "<type>VkCullModeFlags</type>* <name>pMode</name>"}, "*vk.CullModeFlags", true},
		{RegistryParam{Type: "VkFrontFace", Inner: "const <type>VkFrontFace</type> <name>faces</name>[2]"}, "*[2]vk.FrontFace", true},
		{RegistryParam{Type: "Display", Inner: "<type>Display</type>* <name>dpy</name>"}, "unsafe.Pointer", true},
		{RegistryParam{Type: "HWND", Inner: "<type>HWND</type> <name>hwnd</name>"}, "uintptr", true},
	}
	for _, tt := range tests {
		got, integer, err := tm.ParamType(tt.param)
		if err != nil {
			t.Errorf("ParamType(%s) = %v", tt.param.Inner, err)
			continue
		}
		if got != tt.want || integer != tt.integer {
			t.Errorf("ParamType(%s) = %s, %v, want %s, %v", tt.param.Inner, got, integer, tt.want, tt.integer)
		}
	}

	if _, _, err := tm.ParamType(RegistryParam{Type: "VkNowhere", Inner: "<type>VkNowhere</type> <name>x</name>"}); err == nil {
		t.Errorf("ParamType() of an undeclared type returned no error")
	}
}

func TestReturnType(t *testing.T) {
	tm := NewTypeMap(parseTestRegistry(t), core.DefaultConfig().Generator)
	tests := []struct {
		cname, want string
		integer     bool
	}{
		{"void", "", true},
		{"VkResult", "vk.Result", true},
		{"uint64_t", "uint64", true},
		{"float", "float32", false},
	}
	for _, tt := range tests {
		got, integer, err := tm.ReturnType(tt.cname)
		if err != nil || got != tt.want || integer != tt.integer {
			t.Errorf("ReturnType(%s) = %q, %v, %v, want %q, %v", tt.cname, got, integer, err, tt.want, tt.integer)
		}
	}
}

func TestUsedSkipsHandwrittenAndFollowsAliases(t *testing.T) {
	tm := NewTypeMap(parseTestRegistry(t), core.DefaultConfig().Generator)
	for _, cname := range []string{"VkResult", "VkDevice", "VkPipelineStageFlags2KHR", "VkSurfaceKHR", "VkFrontFace"} {
		if _, _, err := tm.scalar(cname); err != nil {
			t.Fatalf("scalar(%s) = %v", cname, err)
		}
	}

	used, err := tm.Used()
	if err != nil {
		t.Fatalf("Used() = %v", err)
	}
	want := []VkType{
		{CName: "VkFrontFace", GoName: "FrontFace", Category: CategoryEnum, Underlying: "int32"},
		{CName: "VkPipelineStageFlags2", GoName: "PipelineStageFlags2", Category: CategoryBitmask, Underlying: "uint64"},
		{CName: "VkPipelineStageFlags2KHR", GoName: "PipelineStageFlags2KHR", Category: CategoryBitmask, Underlying: "PipelineStageFlags2", Alias: true},
		{CName: "VkSurfaceKHR", GoName: "SurfaceKHR", Category: CategoryHandle, Underlying: "uint64"},
	}
	if len(used) != len(want) {
		t.Fatalf("Used() = %+v, want %+v", used, want)
	}
	for i := range want {
		if used[i] != want[i] {
			t.Errorf("Used()[%d] = %+v, want %+v", i, used[i], want[i])
		}
	}
}
