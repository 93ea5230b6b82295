package vksetup

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

// HostDevice is the read-only slice of a physical device that the negotiation
// predicates consult. core1_0.PhysicalDevice satisfies it directly.
type HostDevice interface {
	QueueFamilyProperties() []*core1_0.QueueFamilyProperties
	EnumerateDeviceExtensionProperties() (map[string]*core1_0.ExtensionProperties, common.VkResult, error)
}

// HostSurface exposes the khr_surface queries that are relative to both a
// surface and a physical device.
type HostSurface interface {
	SupportsDevice(device HostDevice, queueFamilyIndex int) (bool, error)
	Capabilities(device HostDevice) (*khr_surface.SurfaceCapabilities, error)
	Formats(device HostDevice) ([]khr_surface.SurfaceFormat, error)
	PresentModes(device HostDevice) ([]khr_surface.PresentMode, error)
}

// Drawable reports the pixel size of the drawable backing the surface, used
// only when the surface leaves the extent undefined. *sdl.Window satisfies it.
type Drawable interface {
	VulkanGetDrawableSize() (int32, int32)
}

// WrapSurface adapts a khr_surface.Surface to HostSurface. The devices passed
// to the returned value must be core1_0.PhysicalDevice handles, which is
// always the case for devices obtained from instance enumeration.
func WrapSurface(surface khr_surface.Surface) HostSurface {
	return &hostSurface{surface: surface}
}

type hostSurface struct {
	surface khr_surface.Surface
}

func (s *hostSurface) unwrap(device HostDevice) (core1_0.PhysicalDevice, error) {
	physicalDevice, ok := device.(core1_0.PhysicalDevice)
	if !ok {
		return nil, errors.Newf("device %T is not a vulkan physical device", device)
	}

	return physicalDevice, nil
}

func (s *hostSurface) SupportsDevice(device HostDevice, queueFamilyIndex int) (bool, error) {
	physicalDevice, err := s.unwrap(device)
	if err != nil {
		return false, err
	}

	supported, _, err := s.surface.PhysicalDeviceSurfaceSupport(physicalDevice, queueFamilyIndex)
	return supported, err
}

func (s *hostSurface) Capabilities(device HostDevice) (*khr_surface.SurfaceCapabilities, error) {
	physicalDevice, err := s.unwrap(device)
	if err != nil {
		return nil, err
	}

	capabilities, _, err := s.surface.PhysicalDeviceSurfaceCapabilities(physicalDevice)
	return capabilities, err
}

func (s *hostSurface) Formats(device HostDevice) ([]khr_surface.SurfaceFormat, error) {
	physicalDevice, err := s.unwrap(device)
	if err != nil {
		return nil, err
	}

	formats, _, err := s.surface.PhysicalDeviceSurfaceFormats(physicalDevice)
	return formats, err
}

func (s *hostSurface) PresentModes(device HostDevice) ([]khr_surface.PresentMode, error) {
	physicalDevice, err := s.unwrap(device)
	if err != nil {
		return nil, err
	}

	presentModes, _, err := s.surface.PhysicalDeviceSurfacePresentModes(physicalDevice)
	return presentModes, err
}
