package vksetup

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// fakeDevice is a synthetic HostDevice described entirely by its fields.
type fakeDevice struct {
	name       string
	families   []*core1_0.QueueFamilyProperties
	extensions map[string]*core1_0.ExtensionProperties
}

func (d *fakeDevice) QueueFamilyProperties() []*core1_0.QueueFamilyProperties {
	return d.families
}

func (d *fakeDevice) EnumerateDeviceExtensionProperties() (map[string]*core1_0.ExtensionProperties, common.VkResult, error) {
	return d.extensions, common.VkResult(0), nil
}

// fakeSurface answers surface queries per device from its maps.
type fakeSurface struct {
	presentFamilies map[HostDevice][]int
	capabilities    map[HostDevice]*khr_surface.SurfaceCapabilities
	formats         map[HostDevice][]khr_surface.SurfaceFormat
	presentModes    map[HostDevice][]khr_surface.PresentMode
}

func (s *fakeSurface) SupportsDevice(device HostDevice, queueFamilyIndex int) (bool, error) {
	for _, family := range s.presentFamilies[device] {
		if family == queueFamilyIndex {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeSurface) Capabilities(device HostDevice) (*khr_surface.SurfaceCapabilities, error) {
	return s.capabilities[device], nil
}

func (s *fakeSurface) Formats(device HostDevice) ([]khr_surface.SurfaceFormat, error) {
	return s.formats[device], nil
}

func (s *fakeSurface) PresentModes(device HostDevice) ([]khr_surface.PresentMode, error) {
	return s.presentModes[device], nil
}

// singleDeviceSurface wires one device up with present support on the given
// families and a workable capability snapshot.
func singleDeviceSurface(device HostDevice, presentFamilies []int) *fakeSurface {
	return &fakeSurface{
		presentFamilies: map[HostDevice][]int{device: presentFamilies},
		capabilities: map[HostDevice]*khr_surface.SurfaceCapabilities{
			device: basicCapabilities(),
		},
		formats: map[HostDevice][]khr_surface.SurfaceFormat{
			device: {preferredFormat()},
		},
		presentModes: map[HostDevice][]khr_surface.PresentMode{
			device: {khr_surface.PresentModeFIFO},
		},
	}
}

func graphicsFamily() *core1_0.QueueFamilyProperties {
	return &core1_0.QueueFamilyProperties{QueueFlags: core1_0.QueueGraphics}
}

func nonGraphicsFamily() *core1_0.QueueFamilyProperties {
	return &core1_0.QueueFamilyProperties{}
}

func preferredFormat() khr_surface.SurfaceFormat {
	return khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
}

// otherFormat is a supported but non-preferred format pair.
func otherFormat() khr_surface.SurfaceFormat {
	return khr_surface.SurfaceFormat{
		Format:     core1_0.FormatB8G8R8A8SRGB + 1,
		ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
	}
}

func basicCapabilities() *khr_surface.SurfaceCapabilities {
	return &khr_surface.SurfaceCapabilities{
		MinImageCount:  2,
		MaxImageCount:  0,
		CurrentExtent:  core1_0.Extent2D{Width: 800, Height: 600},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
	}
}

// fakeDrawable reports a fixed pixel size.
type fakeDrawable struct {
	width  int32
	height int32
}

func (d fakeDrawable) VulkanGetDrawableSize() (int32, int32) {
	return d.width, d.height
}
