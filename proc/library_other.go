//go:build !((darwin || freebsd || linux) && !android && (amd64 || arm64)) && !windows

package proc

import (
	"fmt"
	"runtime"

	"github.com/spaghettifunk/vkext/core"
)

func searchPaths() []string {
	return nil
}

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("%s: %w", runtime.GOOS, core.ErrUnsupportedPlatform)
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return 0, core.ErrSymbolNotFound
}

func closeLibrary(handle uintptr) error {
	return nil
}
