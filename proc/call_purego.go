//go:build (darwin || freebsd || linux || windows) && (amd64 || arm64)

package proc

import (
	"fmt"

	"github.com/ebitengine/purego"
)

const callSupported = true

//go:uintptrescapes
func invoke(fn uintptr, args ...uintptr) uintptr {
	if len(args) > MaxArgs {
		panic(fmt.Sprintf("proc: %d arguments exceed the limit of %d", len(args), MaxArgs))
	}
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}
