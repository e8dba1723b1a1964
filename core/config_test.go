package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	def := DefaultConfig()
	if cfg.Generator.Registry != def.Generator.Registry || cfg.Generator.Module != def.Generator.Module {
		t.Errorf("LoadConfig() = %+v, want the defaults", cfg.Generator)
	}
	if cfg.Generator.PlatformTypes["HWND"] != "uintptr" {
		t.Errorf("default platform types lost")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vkext.toml")
	data := `
[log]
level = "debug"

[generator]
vendors = ["KHR", "EXT"]
exclude = ["VK_EXT_debug_report"]

[generator.platform_types]
MyHandle = "uint64"

[probe]
report = "report.json"
validation = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if strings.Join(cfg.Generator.Vendors, ",") != "KHR,EXT" {
		t.Errorf("Vendors = %q", cfg.Generator.Vendors)
	}
	if cfg.Generator.Registry != "registry/vk.xml" {
		t.Errorf("Registry = %q, want the default", cfg.Generator.Registry)
	}
	if cfg.Generator.PlatformTypes["MyHandle"] != "uint64" {
		t.Errorf("platform type override lost: %v", cfg.Generator.PlatformTypes)
	}
	if !cfg.Probe.Validation || cfg.Probe.Report != "report.json" || cfg.Probe.Application != "vkext probe" {
		t.Errorf("Probe = %+v", cfg.Probe)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vkext.toml")
	if err := os.WriteFile(path, []byte("[generator\nregistry = "), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("LoadConfig() = %v, want a parse error naming %s", err, path)
	}
}

func TestSetLogLevel(t *testing.T) {
	if err := SetLogLevel("warn"); err != nil {
		t.Errorf("SetLogLevel(warn) = %v", err)
	}
	if err := SetLogLevel("loud"); err == nil {
		t.Errorf("SetLogLevel(loud) returned no error")
	}
	if err := SetLogLevel("info"); err != nil {
		t.Errorf("SetLogLevel(info) = %v", err)
	}
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	if c.Elapsed() != 0 {
		t.Errorf("unstarted clock elapsed %s", c.Elapsed())
	}
	c.Start()
	if !c.Running() {
		t.Fatalf("Running() = false after Start")
	}
	time.Sleep(5 * time.Millisecond)
	c.Stop()
	if c.Running() {
		t.Errorf("Running() = true after Stop")
	}
	stopped := c.Elapsed()
	if stopped < 5*time.Millisecond {
		t.Errorf("Elapsed() = %s, want at least 5ms", stopped)
	}
	time.Sleep(2 * time.Millisecond)
	c.Update()
	if c.Elapsed() != stopped {
		t.Errorf("stopped clock moved from %s to %s", stopped, c.Elapsed())
	}
}
