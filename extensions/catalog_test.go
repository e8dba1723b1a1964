package extensions

import (
	"os"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkext/generator"
	"github.com/spaghettifunk/vkext/proc"
)

func readRegistry(t *testing.T) *generator.Registry {
	t.Helper()
	f, err := os.Open("../registry/vk.xml")
	if err != nil {
		t.Fatalf("opening registry: %v", err)
	}
	defer f.Close()
	reg, err := generator.ParseRegistry(f)
	if err != nil {
		t.Fatalf("ParseRegistry() = %v", err)
	}
	return reg
}

func TestDescriptorsMatchRegistry(t *testing.T) {
	reg := readRegistry(t)

	type entry struct {
		number  int
		kind    string
		version string
	}
	want := map[string]entry{}
	for _, re := range reg.Extensions {
		if !slices.Contains(strings.Split(re.Supported, ","), "vulkan") {
			continue
		}
		e := entry{number: re.Number, kind: re.Type}
		for _, req := range re.Requires {
			for _, en := range req.Enums {
				if strings.HasSuffix(en.Name, "_SPEC_VERSION") && e.version == "" {
					e.version = en.Value
				}
			}
		}
		want[re.Name] = e
	}

	all := All()
	if len(all) != len(want) {
		t.Errorf("len(All()) = %d, want %d supported registry extensions", len(all), len(want))
	}
	for _, d := range all {
		if !strings.HasSuffix(d.Name, "\x00") || strings.Count(d.Name, "\x00") != 1 {
			t.Errorf("%q is not terminated by exactly one NUL", d.Name)
		}
		w, ok := want[d.String()]
		if !ok {
			t.Errorf("%s is not a supported registry extension", d)
			continue
		}
		if d.Number != w.number {
			t.Errorf("%s: Number = %d, want %d", d, d.Number, w.number)
		}
		if d.Kind.String() != w.kind {
			t.Errorf("%s: Kind = %s, want %s", d, d.Kind, w.kind)
		}
		if got := strconv.Itoa(int(d.SpecVersion)); got != w.version {
			t.Errorf("%s: SpecVersion = %s, want %s", d, got, w.version)
		}
		if !strings.HasPrefix(d.String(), "VK_"+d.Vendor+"_") {
			t.Errorf("%s: vendor %q does not match the name", d, d.Vendor)
		}
	}
}

func TestDescriptorsInRegistryOrder(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Number >= all[i].Number {
			t.Fatalf("%s (%d) listed before %s (%d)", all[i-1], all[i-1].Number, all[i], all[i].Number)
		}
	}
}

// recorder resolves every command to a distinct non-zero address and
// remembers the names it was asked for.
type recorder struct {
	names []string
	addrs map[string]uintptr
}

func newRecorder() *recorder {
	return &recorder{addrs: map[string]uintptr{}}
}

func (r *recorder) resolve(name string) uintptr {
	r.names = append(r.names, name)
	if _, ok := r.addrs[name]; !ok {
		r.addrs[name] = uintptr(0x1000 + 8*len(r.addrs))
	}
	return r.addrs[name]
}

func TestLoadersResolveEachCommandOnce(t *testing.T) {
	for _, d := range All() {
		levels := []struct {
			level    string
			commands []string
			load     func(proc.Resolver) []proc.Proc
		}{
			{"instance", d.InstanceCommands, d.LoadInstance},
			{"device", d.DeviceCommands, d.LoadDevice},
		}
		for _, l := range levels {
			if l.load == nil {
				if len(l.commands) > 0 {
					t.Errorf("%s: %d %s commands but no loader", d, len(l.commands), l.level)
				}
				continue
			}
			rec := newRecorder()
			procs := l.load(rec.resolve)

			if len(rec.names) != len(l.commands) {
				t.Errorf("%s: %d %s resolver calls, want %d", d, len(rec.names), l.level, len(l.commands))
				continue
			}
			for i, cmd := range l.commands {
				if rec.names[i] != cmd+"\x00" {
					t.Errorf("%s: resolver call %d = %q, want %q", d, i, rec.names[i], cmd+"\x00")
				}
				if procs[i].Name() != cmd {
					t.Errorf("%s: proc %d = %s, want %s", d, i, procs[i].Name(), cmd)
				}
				if got, want := procs[i].Addr(), rec.addrs[cmd+"\x00"]; got != want {
					t.Errorf("%s: %s address = %#x, want %#x", d, cmd, got, want)
				}
			}

			again := l.load(rec.resolve)
			for i := range procs {
				if procs[i] != again[i] {
					t.Errorf("%s: reloading changed %s", d, procs[i].Name())
				}
			}
		}
	}
}

func TestLoadersNeverPanic(t *testing.T) {
	none := func(string) uintptr { return 0 }
	for _, d := range All() {
		for _, load := range []func(proc.Resolver) []proc.Proc{d.LoadInstance, d.LoadDevice} {
			if load == nil {
				continue
			}
			for _, p := range load(none) {
				if p.Loaded() {
					t.Errorf("%s: %s loaded from an empty resolver", d, p.Name())
				}
			}
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"VK_EXT_extended_dynamic_state", "VK_EXT_extended_dynamic_state\x00"} {
		d, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) found nothing", name)
		}
		if d.Number != 268 || d.Kind != Device || d.Vendor != "EXT" {
			t.Errorf("Lookup(%q) = %s #%d %s %s", name, d, d.Number, d.Kind, d.Vendor)
		}
		if len(d.DeviceCommands) != 12 || d.LoadInstance != nil {
			t.Errorf("Lookup(%q): %d device commands, instance loader %v", name, len(d.DeviceCommands), d.LoadInstance != nil)
		}
	}
	if _, ok := Lookup("VK_KHR_extension_119"); ok {
		t.Errorf("Lookup() found a disabled extension")
	}
	for _, name := range []string{"VK_NV_external_sci_sync", "VK_NV_external_memory_sci_buf", "VK_KHR_object_refresh"} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) found a Vulkan SC only extension", name)
		}
	}
	if _, ok := Lookup("VK_NOPE_nothing"); ok {
		t.Errorf("Lookup() found an unknown extension")
	}
}

func TestVendors(t *testing.T) {
	vendors := Vendors()
	for i := 1; i < len(vendors); i++ {
		if vendors[i-1] >= vendors[i] {
			t.Fatalf("Vendors() not sorted: %q", vendors)
		}
	}
	for _, want := range []string{"AMD", "EXT", "KHR", "NV"} {
		found := false
		for _, v := range vendors {
			found = found || v == want
		}
		if !found {
			t.Errorf("Vendors() = %q, missing %s", vendors, want)
		}
	}
}

func TestAllReturnsACopy(t *testing.T) {
	a := All()
	a[0].Name = "changed"
	if All()[0].Name == "changed" {
		t.Errorf("All() exposes the catalog")
	}
}

// The registry carries every extension supported by Vulkan 1.3.281.
const registryExtensions = 367

func TestCatalogCoversRegistry(t *testing.T) {
	if got := len(All()); got != registryExtensions {
		t.Errorf("len(All()) = %d, want %d", got, registryExtensions)
	}
	for _, name := range []string{
		"VK_KHR_video_queue",
		"VK_KHR_video_decode_queue",
		"VK_KHR_video_encode_queue",
		"VK_KHR_video_decode_h264",
		"VK_KHR_video_encode_h265",
		"VK_EXT_metal_objects",
		"VK_KHR_portability_subset",
		"VK_NV_device_generated_commands_compute",
		"VK_NV_per_stage_descriptor_set",
		"VK_ARM_render_pass_striped",
		"VK_MSFT_layered_driver",
		"VK_QNX_screen_surface",
		"VK_QNX_external_memory_screen_buffer",
		"VK_AMDX_shader_enqueue",
		"VK_NV_cuda_kernel_launch",
	} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("Lookup(%q) found nothing", name)
		}
	}
	d, ok := Lookup("VK_KHR_video_queue")
	if !ok {
		t.Fatal("VK_KHR_video_queue missing")
	}
	if len(d.DeviceCommands) != 10 || len(d.InstanceCommands) != 2 {
		t.Errorf("VK_KHR_video_queue: %d device and %d instance commands, want 10 and 2", len(d.DeviceCommands), len(d.InstanceCommands))
	}
}
