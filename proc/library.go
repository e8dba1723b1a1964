package proc

import (
	"fmt"

	"github.com/spaghettifunk/vkext/core"
)

// Library is an opened Vulkan loader.
type Library struct {
	path   string
	handle uintptr
	entry  *Entry
}

// Open loads the first Vulkan loader library found in paths, or in the
// platform search list when paths is empty, and resolves
// vkGetInstanceProcAddr from it.
func Open(paths ...string) (*Library, error) {
	if len(paths) == 0 {
		paths = searchPaths()
	}
	var lastErr error = core.ErrLibraryNotFound
	for _, path := range paths {
		handle, err := openLibrary(path)
		if err != nil {
			core.LogDebug("vulkan loader not found at %s: %s", path, err)
			lastErr = err
			continue
		}
		sym, err := lookupSymbol(handle, "vkGetInstanceProcAddr")
		if err != nil || sym == 0 {
			_ = closeLibrary(handle)
			return nil, fmt.Errorf("%s: vkGetInstanceProcAddr: %w", path, core.ErrSymbolNotFound)
		}
		core.LogInfo("vulkan loader opened from %s", path)
		return &Library{path: path, handle: handle, entry: NewEntry(sym)}, nil
	}
	return nil, fmt.Errorf("%w: %w", core.ErrLibraryNotFound, lastErr)
}

func (l *Library) Path() string {
	return l.path
}

func (l *Library) Entry() *Entry {
	return l.entry
}

// Close unloads the library. Resolvers and tables built from it must not be
// used afterwards.
func (l *Library) Close() error {
	return closeLibrary(l.handle)
}
