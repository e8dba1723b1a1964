package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const DefaultConfigPath = "vkext.toml"

type Config struct {
	Log       LogConfig       `toml:"log"`
	Generator GeneratorConfig `toml:"generator"`
	Probe     ProbeConfig     `toml:"probe"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// GeneratorConfig drives vkgen. Output is the module root the vk and
// extensions packages are written under, Module its import path.
type GeneratorConfig struct {
	Registry         string            `toml:"registry"`
	Output           string            `toml:"output"`
	Module           string            `toml:"module"`
	Vendors          []string          `toml:"vendors"`
	Exclude          []string          `toml:"exclude"`
	PlatformTypes    map[string]string `toml:"platform_types"`
	HandwrittenTypes []string          `toml:"handwritten_types"`
}

type ProbeConfig struct {
	Application string `toml:"application"`
	Library     string `toml:"library"`
	Report      string `toml:"report"`
	Validation  bool   `toml:"validation"`
}

func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Generator: GeneratorConfig{
			Registry: "registry/vk.xml",
			Output:   ".",
			Module:   "github.com/spaghettifunk/vkext",
			PlatformTypes: map[string]string{
				"Display":             "uintptr",
				"VisualID":            "uintptr",
				"RROutput":            "uintptr",
				"xcb_connection_t":    "uintptr",
				"xcb_visualid_t":      "uint32",
				"xcb_window_t":        "uint32",
				"wl_display":          "uintptr",
				"wl_surface":          "uintptr",
				"HINSTANCE":           "uintptr",
				"HWND":                "uintptr",
				"HMONITOR":            "uintptr",
				"HANDLE":              "uintptr",
				"SECURITY_ATTRIBUTES": "uintptr",
				"DWORD":               "uint32",
				"LPCWSTR":             "uintptr",
				"zx_handle_t":         "uint32",
				"GgpStreamDescriptor": "uint32",
				"GgpFrameToken":       "uint32",
				"ANativeWindow":       "uintptr",
				"AHardwareBuffer":     "uintptr",
				"CAMetalLayer":        "uintptr",
				"_screen_context":     "uintptr",
				"_screen_window":      "uintptr",
				"_screen_buffer":      "uintptr",
			},
			HandwrittenTypes: []string{
				"VkResult", "VkBool32", "VkFlags", "VkFlags64", "VkDeviceSize", "VkDeviceAddress", "VkSampleMask",
				"VkInstance", "VkPhysicalDevice", "VkDevice", "VkQueue", "VkCommandBuffer",
			},
		},
		Probe: ProbeConfig{
			Application: "vkext probe",
		},
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		LogDebug("config %s not found, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
