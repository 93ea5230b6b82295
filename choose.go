package vksetup

import (
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// SwapchainConfig is the resolved swapchain configuration: one surface
// format, one present mode, the image extent, and the number of images to
// request. ImageCount always lies within the capability bounds.
type SwapchainConfig struct {
	SurfaceFormat khr_surface.SurfaceFormat
	PresentMode   khr_surface.PresentMode
	Extent        core1_0.Extent2D
	ImageCount    int
}

// ConfigureSwapchain applies the format, present-mode, extent and image-count
// rules to a support snapshot. The drawable is consulted only when the
// surface leaves the extent undefined.
func ConfigureSwapchain(details SwapchainSupportDetails, drawable Drawable) SwapchainConfig {
	return SwapchainConfig{
		SurfaceFormat: ChooseSwapSurfaceFormat(details.Formats),
		PresentMode:   ChooseSwapPresentMode(details.PresentModes),
		Extent:        ChooseSwapExtent(details.Capabilities, drawable),
		ImageCount:    chooseImageCount(details.Capabilities),
	}
}

// ChooseSwapSurfaceFormat returns the first available format equal to
// B8G8R8A8 sRGB with the nonlinear sRGB color space. When the preferred pair
// is absent the first available format is used as-is; that fallback is a
// normal outcome, not an error.
func ChooseSwapSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range availableFormats {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return availableFormats[0]
}

// ChooseSwapPresentMode prefers mailbox and otherwise falls back to FIFO,
// which the specification guarantees to be supported.
func ChooseSwapPresentMode(availablePresentModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, presentMode := range availablePresentModes {
		if presentMode == khr_surface.PresentModeMailbox {
			return presentMode
		}
	}

	return khr_surface.PresentModeFIFO
}

// ChooseSwapExtent uses the surface's current extent when the window system
// has fixed it. Otherwise the extent is taken from the drawable's pixel size
// with each dimension clamped independently into the capability bounds.
func ChooseSwapExtent(capabilities *khr_surface.SurfaceCapabilities, drawable Drawable) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	widthInt, heightInt := drawable.VulkanGetDrawableSize()
	width := int(widthInt)
	height := int(heightInt)

	if width < capabilities.MinImageExtent.Width {
		width = capabilities.MinImageExtent.Width
	}
	if width > capabilities.MaxImageExtent.Width {
		width = capabilities.MaxImageExtent.Width
	}
	if height < capabilities.MinImageExtent.Height {
		height = capabilities.MinImageExtent.Height
	}
	if height > capabilities.MaxImageExtent.Height {
		height = capabilities.MaxImageExtent.Height
	}

	return core1_0.Extent2D{Width: width, Height: height}
}

// chooseImageCount requests one image beyond the minimum, clamped down to the
// maximum when that bound is set (zero means unbounded).
func chooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && capabilities.MaxImageCount < imageCount {
		imageCount = capabilities.MaxImageCount
	}

	return imageCount
}
