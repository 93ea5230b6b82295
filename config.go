package vksetup

import (
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
)

// Config carries the fixed inputs to the negotiation: the identity reported
// to the driver, the validation layers to request, and the device extensions
// a physical device must offer to be considered. A Config is treated as
// immutable once handed to NewBootstrap.
type Config struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	APIVersion         common.APIVersion

	// EnableValidationLayers gates both the layer request and the debug
	// messenger. When enabled, instance creation fails if any name in
	// ValidationLayers is missing from the loader's layer list.
	EnableValidationLayers bool
	ValidationLayers       []string

	// DeviceExtensions must all be present on a physical device for it to
	// pass suitability.
	DeviceExtensions []string
}

// DefaultConfig requests the Khronos validation layer and the swapchain
// device extension.
func DefaultConfig() Config {
	return Config{
		ApplicationName:    "Hello Triangle",
		ApplicationVersion: common.CreateVersion(1, 0, 1),
		EngineName:         "No Engine",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         common.Vulkan1_2,

		EnableValidationLayers: true,
		ValidationLayers:       []string{"VK_LAYER_KHRONOS_validation"},

		DeviceExtensions: []string{khr_swapchain.ExtensionName},
	}
}
