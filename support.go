package vksetup

import "github.com/vkngwrapper/extensions/v2/khr_surface"

// SwapchainSupportDetails is a transient snapshot of what the surface can do
// on one particular device: its capability limits, the supported
// format/color-space pairs, and the supported present modes.
type SwapchainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// QuerySwapchainSupport probes the surface for the given device. Results are
// device-relative and must be re-queried for each device under consideration;
// a snapshot taken for one device is never valid for another.
func QuerySwapchainSupport(surface HostSurface, device HostDevice) (SwapchainSupportDetails, error) {
	var details SwapchainSupportDetails
	var err error

	details.Capabilities, err = surface.Capabilities(device)
	if err != nil {
		return details, err
	}

	details.Formats, err = surface.Formats(device)
	if err != nil {
		return details, err
	}

	details.PresentModes, err = surface.PresentModes(device)
	return details, err
}
