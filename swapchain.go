package vksetup

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// swapchainCreateInfo assembles the creation parameters for a swapchain from
// the resolved configuration. When the graphics and present families differ
// the images are shared concurrently between exactly those two families;
// when they coincide the images stay exclusive to the single family.
// Composite alpha is fixed to opaque, the surface transform is passed through
// unchanged, and no previous swapchain is supplied.
func swapchainCreateInfo(surface khr_surface.Surface, config SwapchainConfig, indices QueueFamilyIndices, capabilities *khr_surface.SurfaceCapabilities) khr_swapchain.SwapchainCreateInfo {
	sharingMode := core1_0.SharingModeExclusive
	var queueFamilyIndices []int

	if *indices.GraphicsFamily != *indices.PresentFamily {
		sharingMode = core1_0.SharingModeConcurrent
		queueFamilyIndices = append(queueFamilyIndices, *indices.GraphicsFamily, *indices.PresentFamily)
	}

	return khr_swapchain.SwapchainCreateInfo{
		Surface: surface,

		MinImageCount:    config.ImageCount,
		ImageFormat:      config.SurfaceFormat.Format,
		ImageColorSpace:  config.SurfaceFormat.ColorSpace,
		ImageExtent:      config.Extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    config.PresentMode,
		Clipped:        true,
	}
}
