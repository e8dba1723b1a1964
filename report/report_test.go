package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/spaghettifunk/vkext/extensions"
	"github.com/spaghettifunk/vkext/proc"
)

func TestLoadExtensionPartial(t *testing.T) {
	d, ok := extensions.Lookup("VK_EXT_extended_dynamic_state")
	if !ok {
		t.Fatal("VK_EXT_extended_dynamic_state not in the catalog")
	}
	device := proc.StaticResolver(map[string]uintptr{"vkCmdSetCullModeEXT": 0x10, "vkCmdSetStencilOpEXT": 0x20})

	ext := LoadExtension(d, nil, device)
	if ext.Name != "VK_EXT_extended_dynamic_state" || ext.RegistryVersion != 1 {
		t.Errorf("extension = %s v%d", ext.Name, ext.RegistryVersion)
	}
	if got := strings.Join(ext.Loaded, ","); got != "vkCmdSetCullModeEXT,vkCmdSetStencilOpEXT" {
		t.Errorf("Loaded = %s", got)
	}
	if len(ext.Missing) != 10 || ext.Missing[0] != "vkCmdSetFrontFaceEXT" {
		t.Errorf("Missing = %q", ext.Missing)
	}

	if ext := LoadExtension(d, device, nil); len(ext.Loaded)+len(ext.Missing) != 0 {
		t.Errorf("device commands loaded without a device resolver: %+v", ext)
	}
}

func TestLoadAll(t *testing.T) {
	available := map[string]uint32{
		"VK_KHR_surface":       25,
		"VK_EXT_debug_utils":   2,
		"VK_KHR_swapchain":     70,
		"VK_VENDOR_not_a_real": 1,
	}
	instance := proc.StaticResolver(map[string]uintptr{"vkDestroySurfaceKHR": 1, "vkCreateDebugUtilsMessengerEXT": 2})
	enabled := func(name string) bool { return name == "VK_KHR_surface" }

	exts := LoadAll(available, extensions.Instance, instance, nil, enabled)
	if len(exts) != 2 {
		t.Fatalf("LoadAll() = %+v, want two instance extensions", exts)
	}
	surface, debug := exts[0], exts[1]
	if surface.Name != "VK_KHR_surface" || debug.Name != "VK_EXT_debug_utils" {
		t.Fatalf("LoadAll() order = %s, %s", surface.Name, debug.Name)
	}
	if !surface.Enabled || debug.Enabled {
		t.Errorf("Enabled = %v, %v, want true, false", surface.Enabled, debug.Enabled)
	}
	if surface.DriverVersion != 25 || surface.Loaded[0] != "vkDestroySurfaceKHR" || len(surface.Missing) != 4 {
		t.Errorf("surface = %+v", surface)
	}
	if debug.Loaded[0] != "vkCreateDebugUtilsMessengerEXT" {
		t.Errorf("debug utils = %+v", debug)
	}
}

func TestDeviceUUID(t *testing.T) {
	raw := [16]byte{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	if got := DeviceUUID(raw).String(); got != "12345678-9abc-def0-0123-456789abcdef" {
		t.Errorf("DeviceUUID() = %s", got)
	}
}

func sampleReport() *Report {
	r := New("libvulkan.so.1")
	r.Instance = Instance{
		APIVersion: "1.0.0",
		Extensions: []Extension{{Name: "VK_KHR_surface", RegistryVersion: 25, DriverVersion: 25, Enabled: true, Loaded: []string{"vkDestroySurfaceKHR"}, Missing: []string{"vkGetPhysicalDeviceSurfaceSupportKHR"}}},
	}
	r.Devices = []Device{{
		Name:          "llvmpipe <LLVM 17>",
		Type:          "cpu",
		UUID:          uuid.MustParse("6d6f7661-6c70-6970-6500-000000000000"),
		APIVersion:    "1.3.255",
		DriverVersion: "0.0.1",
		Extensions:    []Extension{{Name: "VK_KHR_swapchain", Loaded: []string{"vkCreateSwapchainKHR", "vkQueuePresentKHR"}}},
	}}
	return r
}

func TestSummary(t *testing.T) {
	loaded, missing := sampleReport().Summary()
	if loaded != 3 || missing != 1 {
		t.Errorf("Summary() = %d, %d, want 3, 1", loaded, missing)
	}
}

func TestWriteRead(t *testing.T) {
	want := sampleReport()
	var buf bytes.Buffer
	if err := want.Write(&buf, true); err != nil {
		t.Fatalf("Write() = %v", err)
	}
	out := buf.String()
	for _, s := range []string{`"uuid": "6d6f7661-6c70-6970-6500-000000000000"`, `"name": "llvmpipe <LLVM 17>"`, "\n  \"loader\""} {
		if !strings.Contains(out, s) {
			t.Errorf("report lacks %q:\n%s", s, out)
		}
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() = %v", err)
	}
	if got.Devices[0].UUID != want.Devices[0].UUID || got.Loader != want.Loader || !got.Generated.Equal(want.Generated) {
		t.Errorf("Read() = %+v, want %+v", got, want)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := sampleReport().Save(path); err != nil {
		t.Fatalf("Save() = %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rep, err := Read(f)
	if err != nil {
		t.Fatalf("Read() = %v", err)
	}
	if len(rep.Devices) != 1 || rep.Devices[0].Type != "cpu" {
		t.Errorf("saved report = %+v", rep)
	}
}
