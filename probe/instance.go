package probe

import (
	"fmt"
	"runtime"
	"slices"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/vkext/core"
	vkt "github.com/spaghettifunk/vkext/vk"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"

// Instance is a Vulkan instance created with every extension the loader
// offers.
type Instance struct {
	Handle     vk.Instance
	APIVersion vkt.Version
	// Available maps the extension names the loader reports to their spec
	// versions. All of them are enabled.
	Available map[string]uint32
	Layers    []string
}

func createInstance(cfg core.ProbeConfig, getInstanceProcAddr unsafe.Pointer) (*Instance, error) {
	vk.SetGetInstanceProcAddr(getInstanceProcAddr)
	if err := vk.Init(); err != nil {
		core.LogError("failed to initialize vk: %s", err)
		return nil, err
	}

	available, err := instanceExtensions()
	if err != nil {
		return nil, err
	}
	names := sortedNames(available)

	inst := &Instance{
		APIVersion: vkt.MakeAPIVersion(0, 1, 0, 0),
		Available:  available,
	}
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         uint32(inst.APIVersion),
		ApplicationVersion: uint32(vk.MakeVersion(1, 0, 0)),
		PApplicationName:   safeString(cfg.Application),
		PEngineName:        safeString("vkext"),
	}
	createInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(names)),
		PpEnabledExtensionNames: safeStrings(names),
	}
	if runtime.GOOS == "darwin" && slices.Contains(names, "VK_KHR_portability_enumeration") {
		createInfo.Flags = vk.InstanceCreateFlags(vk.InstanceCreateEnumeratePortabilityBit)
	}

	if cfg.Validation {
		layers, err := instanceLayers()
		if err != nil {
			return nil, err
		}
		if slices.Contains(layers, validationLayer) {
			inst.Layers = []string{validationLayer}
			createInfo.EnabledLayerCount = 1
			createInfo.PpEnabledLayerNames = safeStrings([]string{validationLayer})
		} else {
			core.LogWarn("validation requested but %s is not installed", validationLayer)
		}
	}

	core.LogDebug("enabling %d instance extensions", len(names))
	if res := vk.CreateInstance(&createInfo, nil, &inst.Handle); res != vk.Success {
		err := fmt.Errorf("failed in creating the Vulkan Instance with error `%s`", vkt.Result(res).Describe())
		core.LogError("%s", err)
		return nil, err
	}
	if err := vk.InitInstance(inst.Handle); err != nil {
		vk.DestroyInstance(inst.Handle, nil)
		return nil, err
	}
	core.LogInfo("Vulkan instance created with %d extensions", len(names))
	return inst, nil
}

// Raw returns the instance handle as the generated loaders take it.
func (i *Instance) Raw() vkt.Instance {
	return vkt.Instance(uintptr(unsafe.Pointer(i.Handle)))
}

func (i *Instance) Destroy() {
	vk.DestroyInstance(i.Handle, nil)
}

func instanceExtensions() (map[string]uint32, error) {
	var count uint32
	if res := vk.EnumerateInstanceExtensionProperties("", &count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkEnumerateInstanceExtensionProperties: %s", vkt.Result(res))
	}
	props := make([]vk.ExtensionProperties, count)
	if res := vk.EnumerateInstanceExtensionProperties("", &count, props); res != vk.Success {
		return nil, fmt.Errorf("vkEnumerateInstanceExtensionProperties: %s", vkt.Result(res))
	}
	return extensionMap(props[:count]), nil
}

func instanceLayers() ([]string, error) {
	var count uint32
	if res := vk.EnumerateInstanceLayerProperties(&count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkEnumerateInstanceLayerProperties: %s", vkt.Result(res))
	}
	props := make([]vk.LayerProperties, count)
	if res := vk.EnumerateInstanceLayerProperties(&count, props); res != vk.Success {
		return nil, fmt.Errorf("vkEnumerateInstanceLayerProperties: %s", vkt.Result(res))
	}
	layers := make([]string, 0, count)
	for i := range props[:count] {
		props[i].Deref()
		layers = append(layers, vk.ToString(props[i].LayerName[:]))
	}
	return layers, nil
}

func extensionMap(props []vk.ExtensionProperties) map[string]uint32 {
	exts := make(map[string]uint32, len(props))
	for i := range props {
		props[i].Deref()
		exts[vk.ToString(props[i].ExtensionName[:])] = props[i].SpecVersion
	}
	return exts
}
