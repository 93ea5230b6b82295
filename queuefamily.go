package vksetup

import "github.com/vkngwrapper/core/v2/core1_0"

// QueueFamilyIndices holds the queue family carrying graphics work and the
// family able to present to the target surface. A nil entry means no family
// with that capability was found. The two indices may name the same family;
// when they differ the swapchain must use concurrent image sharing.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

// IsComplete reports whether both roles were resolved.
func (i *QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// FindQueueFamilies scans the device's queue families in index order and
// records, independently for each role, the first family that supports it.
// The scan stops as soon as both roles are resolved. There is no scoring
// among multiple capable families.
func FindQueueFamilies(device HostDevice, surface HostSurface) (QueueFamilyIndices, error) {
	indices := QueueFamilyIndices{}
	queueFamilies := device.QueueFamilyProperties()

	for queueFamilyIdx, queueFamily := range queueFamilies {
		if indices.GraphicsFamily == nil && (queueFamily.QueueFlags&core1_0.QueueGraphics) != 0 {
			indices.GraphicsFamily = new(int)
			*indices.GraphicsFamily = queueFamilyIdx
		}

		if indices.PresentFamily == nil {
			supported, err := surface.SupportsDevice(device, queueFamilyIdx)
			if err != nil {
				return indices, err
			}

			if supported {
				indices.PresentFamily = new(int)
				*indices.PresentFamily = queueFamilyIdx
			}
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}
