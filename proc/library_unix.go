//go:build (darwin || freebsd || linux) && !android && (amd64 || arm64)

package proc

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/ebitengine/purego"
)

func searchPaths() []string {
	names := []string{"libvulkan.so.1", "libvulkan.so"}
	if runtime.GOOS == "darwin" {
		names = []string{"libvulkan.1.dylib", "libvulkan.dylib", "libMoltenVK.dylib"}
	}
	var paths []string
	if sdk := os.Getenv("VULKAN_SDK"); sdk != "" {
		for _, name := range names {
			paths = append(paths, filepath.Join(sdk, "lib", name))
		}
	}
	paths = append(paths, names...)
	if runtime.GOOS == "darwin" {
		paths = append(paths, "/usr/local/lib/libvulkan.1.dylib", "/opt/homebrew/lib/libvulkan.1.dylib")
	}
	return paths
}

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func closeLibrary(handle uintptr) error {
	return purego.Dlclose(handle)
}
