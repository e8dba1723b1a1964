package probe

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spaghettifunk/vkext/core"
	"github.com/spaghettifunk/vkext/proc"
)

func init() {
	// GLFW must be driven from the main OS thread
	runtime.LockOSThread()
}

// Platform owns the Vulkan loader the probe talks to: the one glfw found,
// or an explicitly opened library.
type Platform struct {
	library             *proc.Library
	getInstanceProcAddr unsafe.Pointer
}

func Startup(library string) (*Platform, error) {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return nil, err
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", core.ErrLibraryNotFound)
	}

	p := &Platform{getInstanceProcAddr: glfw.GetVulkanGetInstanceProcAddress()}
	if library != "" {
		lib, err := proc.Open(library)
		if err != nil {
			glfw.Terminate()
			return nil, err
		}
		p.library = lib
		p.getInstanceProcAddr = unsafe.Pointer(lib.Entry().Addr())
	}
	if p.getInstanceProcAddr == nil {
		_ = p.Shutdown()
		return nil, fmt.Errorf("vkGetInstanceProcAddr: %w", core.ErrSymbolNotFound)
	}
	return p, nil
}

// Entry wraps the loader's vkGetInstanceProcAddr for the generated tables.
func (p *Platform) Entry() *proc.Entry {
	if p.library != nil {
		return p.library.Entry()
	}
	return proc.NewEntry(uintptr(p.getInstanceProcAddr))
}

// Loader names the loader in reports.
func (p *Platform) Loader() string {
	if p.library != nil {
		return p.library.Path()
	}
	return "glfw"
}

func (p *Platform) Shutdown() error {
	var err error
	if p.library != nil {
		err = p.library.Close()
	}
	glfw.Terminate()
	return err
}
