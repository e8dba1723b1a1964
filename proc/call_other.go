//go:build !((darwin || freebsd || linux || windows) && (amd64 || arm64))

package proc

import (
	"fmt"
	"runtime"

	"github.com/spaghettifunk/vkext/core"
)

const callSupported = false

func invoke(fn uintptr, args ...uintptr) uintptr {
	panic(fmt.Errorf("%s/%s: %w", runtime.GOOS, runtime.GOARCH, core.ErrUnsupportedPlatform))
}
