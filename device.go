package vksetup

import "github.com/cockroachdb/errors"

var (
	// ErrLayerUnavailable reports a requested validation layer missing from
	// the loader's layer list.
	ErrLayerUnavailable = errors.New("requested validation layer is not available")

	// ErrNoDevices reports that the instance enumerated zero physical
	// devices.
	ErrNoDevices = errors.New("failed to find GPUs with Vulkan support")

	// ErrNoSuitableDevice reports that no enumerated device passed the
	// suitability checks.
	ErrNoSuitableDevice = errors.New("failed to find a suitable GPU")
)

// PickPhysicalDevice returns the first device, in enumeration order, whose
// queue families are complete for the surface, whose extension list contains
// every required extension, and whose surface support reports at least one
// format and one present mode. Selection is strictly first-fit; devices are
// never ranked.
func PickPhysicalDevice(devices []HostDevice, surface HostSurface, requiredExtensions []string) (HostDevice, error) {
	if len(devices) == 0 {
		return nil, ErrNoDevices
	}

	for _, device := range devices {
		if isDeviceSuitable(device, surface, requiredExtensions) {
			return device, nil
		}
	}

	return nil, ErrNoSuitableDevice
}

func isDeviceSuitable(device HostDevice, surface HostSurface, requiredExtensions []string) bool {
	indices, err := FindQueueFamilies(device, surface)
	if err != nil {
		return false
	}

	extensionsSupported := checkDeviceExtensionSupport(device, requiredExtensions)

	var swapchainAdequate bool
	if extensionsSupported {
		swapchainSupport, err := QuerySwapchainSupport(surface, device)
		if err != nil {
			return false
		}

		swapchainAdequate = len(swapchainSupport.Formats) > 0 && len(swapchainSupport.PresentModes) > 0
	}

	return indices.IsComplete() && extensionsSupported && swapchainAdequate
}

func checkDeviceExtensionSupport(device HostDevice, requiredExtensions []string) bool {
	extensions, _, err := device.EnumerateDeviceExtensionProperties()
	if err != nil {
		return false
	}

	for _, extension := range requiredExtensions {
		_, hasExtension := extensions[extension]
		if !hasExtension {
			return false
		}
	}

	return true
}
