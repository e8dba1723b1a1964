package probe

import (
	"fmt"
	"unsafe"

	vk "github.com/goki/vulkan"

	"github.com/spaghettifunk/vkext/core"
	vkt "github.com/spaghettifunk/vkext/vk"
)

// PhysicalDevice is one GPU with the device extensions it offers.
type PhysicalDevice struct {
	Handle     vk.PhysicalDevice
	Properties vk.PhysicalDeviceProperties
	Available  map[string]uint32
}

// Device is a logical device and the extensions it was created with.
type Device struct {
	Handle  vk.Device
	Enabled []string
}

func (d *PhysicalDevice) Name() string {
	return vk.ToString(d.Properties.DeviceName[:])
}

func (d *PhysicalDevice) Type() string {
	switch d.Properties.DeviceType {
	case vk.PhysicalDeviceTypeIntegratedGpu:
		return "integrated"
	case vk.PhysicalDeviceTypeDiscreteGpu:
		return "discrete"
	case vk.PhysicalDeviceTypeVirtualGpu:
		return "virtual"
	case vk.PhysicalDeviceTypeCpu:
		return "cpu"
	}
	return "other"
}

func (d *PhysicalDevice) APIVersion() vkt.Version {
	return vkt.Version(d.Properties.ApiVersion)
}

func (d *PhysicalDevice) DriverVersion() vkt.Version {
	return vkt.Version(d.Properties.DriverVersion)
}

func enumeratePhysicalDevices(instance vk.Instance) ([]*PhysicalDevice, error) {
	var count uint32
	if res := vk.EnumeratePhysicalDevices(instance, &count, nil); res != vk.Success {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices: %s", vkt.Result(res))
	}
	if count == 0 {
		core.LogWarn("No devices which support Vulkan were found.")
		return nil, nil
	}
	handles := make([]vk.PhysicalDevice, count)
	if res := vk.EnumeratePhysicalDevices(instance, &count, handles); res != vk.Success {
		return nil, fmt.Errorf("vkEnumeratePhysicalDevices: %s", vkt.Result(res))
	}

	devices := make([]*PhysicalDevice, 0, count)
	for _, h := range handles[:count] {
		d := &PhysicalDevice{Handle: h}
		vk.GetPhysicalDeviceProperties(h, &d.Properties)
		d.Properties.Deref()

		var n uint32
		if res := vk.EnumerateDeviceExtensionProperties(h, "", &n, nil); res != vk.Success {
			return nil, fmt.Errorf("%s: vkEnumerateDeviceExtensionProperties: %s", d.Name(), vkt.Result(res))
		}
		props := make([]vk.ExtensionProperties, n)
		if n > 0 {
			if res := vk.EnumerateDeviceExtensionProperties(h, "", &n, props); res != vk.Success {
				return nil, fmt.Errorf("%s: vkEnumerateDeviceExtensionProperties: %s", d.Name(), vkt.Result(res))
			}
		}
		d.Available = extensionMap(props[:n])
		core.LogInfo("Found device '%s' (%s), Vulkan %s, %d extensions", d.Name(), d.Type(), d.APIVersion(), n)
		devices = append(devices, d)
	}
	return devices, nil
}

// createDevice creates a logical device with a single queue from the first
// family. It enables every available extension and falls back to none when
// the driver refuses the combination.
func (d *PhysicalDevice) createDevice() (*Device, error) {
	names := sortedNames(d.Available)
	dev, err := d.create(names)
	if err == nil {
		return &Device{Handle: dev, Enabled: names}, nil
	}
	core.LogWarn("%s: creating device with all %d extensions failed (%s), retrying with none", d.Name(), len(names), err)
	dev, err = d.create(nil)
	if err != nil {
		return nil, err
	}
	return &Device{Handle: dev}, nil
}

func (d *PhysicalDevice) create(extensions []string) (vk.Device, error) {
	queueCreateInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: 0,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}
	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueCreateInfos)),
		PQueueCreateInfos:       queueCreateInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}

	var device vk.Device
	if res := vk.CreateDevice(d.Handle, &deviceCreateInfo, nil, &device); res != vk.Success {
		return nil, fmt.Errorf("vkCreateDevice: %s", vkt.Result(res))
	}
	return device, nil
}

// Raw returns the device handle as the generated loaders take it.
func (d *Device) Raw() vkt.Device {
	return vkt.Device(uintptr(unsafe.Pointer(d.Handle)))
}

func (d *Device) Destroy() {
	vk.DestroyDevice(d.Handle, nil)
}
