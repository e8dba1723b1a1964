package proc

import (
	"errors"
	"strings"
	"testing"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/vk"
)

func TestLoadPassesNameVerbatim(t *testing.T) {
	var got []string
	p := Load(func(name string) uintptr {
		got = append(got, name)
		return 0xdead
	}, "vkCmdSetCullModeEXT\x00")

	if len(got) != 1 || got[0] != "vkCmdSetCullModeEXT\x00" {
		t.Fatalf("resolver calls = %q, want exactly [\"vkCmdSetCullModeEXT\\x00\"]", got)
	}
	if !p.Loaded() {
		t.Fatalf("Loaded() = false, want true")
	}
	if p.Addr() != 0xdead {
		t.Errorf("Addr() = %#x, want %#x", p.Addr(), 0xdead)
	}
	if p.Name() != "vkCmdSetCullModeEXT" {
		t.Errorf("Name() = %q, want %q", p.Name(), "vkCmdSetCullModeEXT")
	}
}

func TestAddrPanicsWhenMissing(t *testing.T) {
	p := Load(func(string) uintptr { return 0 }, "vkCmdSetFrontFaceEXT\x00")
	if p.Loaded() {
		t.Fatalf("Loaded() = true, want false")
	}

	defer func() {
		r := recover()
		err, ok := r.(*MissingCommandError)
		if !ok {
			t.Fatalf("recovered %v (%T), want *MissingCommandError", r, r)
		}
		if !strings.Contains(err.Error(), "CmdSetFrontFaceEXT") {
			t.Errorf("panic message %q does not name the command", err.Error())
		}
		if !errors.Is(err, core.ErrCommandNotLoaded) {
			t.Errorf("errors.Is(%v, ErrCommandNotLoaded) = false", err)
		}
	}()
	p.Addr()
	t.Fatalf("Addr() returned on a missing command")
}

func TestCallPanicsBeforeInvokingMissingCommand(t *testing.T) {
	defer func() {
		if _, ok := recover().(*MissingCommandError); !ok {
			t.Fatalf("Call on a missing command did not panic with *MissingCommandError")
		}
	}()
	Call(Proc{name: "vkCmdSetDepthTestEnableEXT\x00"}, 1, 2)
}

func TestProcIsComparable(t *testing.T) {
	resolve := StaticResolver(map[string]uintptr{"vkA": 1})
	a := Load(resolve, "vkA\x00")
	b := Load(resolve, "vkA\x00")
	if a != b {
		t.Errorf("two loads with the same resolver differ: %v != %v", a, b)
	}
	if Load(resolve, "vkB\x00") == a {
		t.Errorf("procs with different names compare equal")
	}
}

func TestCheck(t *testing.T) {
	resolve := StaticResolver(map[string]uintptr{"vkA": 1, "vkC": 3})
	procs := []Proc{Load(resolve, "vkA\x00"), Load(resolve, "vkB\x00"), Load(resolve, "vkC\x00"), Load(resolve, "vkD\x00")}

	err := Check("VK_TEST_ext", procs...)
	var missing *MissingCommandsError
	if !errors.As(err, &missing) {
		t.Fatalf("Check() = %v, want *MissingCommandsError", err)
	}
	if missing.Extension != "VK_TEST_ext" {
		t.Errorf("Extension = %q, want %q", missing.Extension, "VK_TEST_ext")
	}
	if got, want := strings.Join(missing.Commands, ","), "vkB,vkD"; got != want {
		t.Errorf("Commands = %q, want %q", got, want)
	}
	if !errors.Is(err, core.ErrMissingCommands) {
		t.Errorf("errors.Is(%v, ErrMissingCommands) = false", err)
	}

	if err := Check("VK_TEST_ext", procs[0], procs[2]); err != nil {
		t.Errorf("Check() on loaded procs = %v, want nil", err)
	}
	if err := Check("VK_TEST_ext"); err != nil {
		t.Errorf("Check() without procs = %v, want nil", err)
	}
}

func TestStaticResolverAcceptsBothForms(t *testing.T) {
	resolve := StaticResolver(map[string]uintptr{"vkX": 42})
	tests := []struct {
		name string
		want uintptr
	}{
		{"vkX\x00", 42},
		{"vkX", 42},
		{"vkY\x00", 0},
	}
	for _, tt := range tests {
		if got := resolve(tt.name); got != tt.want {
			t.Errorf("resolve(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestTerminate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"vkX", "vkX\x00"},
		{"vkX\x00", "vkX\x00"},
		{"", "\x00"},
	}
	for _, tt := range tests {
		if got := terminate(tt.in); got != tt.want {
			t.Errorf("terminate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolversWithoutForeignCalls(t *testing.T) {
	saved := canCall
	canCall = false
	t.Cleanup(func() { canCall = saved })

	// The address is never called: resolving must not reach invoke.
	entry := NewEntry(0x1)
	resolve := entry.InstanceResolver(vk.Instance(0xabc))
	for _, name := range []string{"vkCreateDebugUtilsMessengerEXT\x00", "vkDestroySurfaceKHR"} {
		if addr := resolve(name); addr != 0 {
			t.Errorf("resolve(%q) = %#x, want 0", name, addr)
		}
	}
	p := Load(resolve, "vkDestroySurfaceKHR\x00")
	if p.Loaded() {
		t.Errorf("%s loaded without foreign call support", p.Name())
	}
	if err := Check("VK_KHR_surface", p); err == nil {
		t.Errorf("Check() = nil, want the missing command reported")
	}

	if _, err := entry.DeviceResolver(vk.Instance(0xabc), vk.Device(0xdef)); !errors.Is(err, core.ErrUnsupportedPlatform) {
		t.Errorf("DeviceResolver() = %v, want ErrUnsupportedPlatform", err)
	}
}
