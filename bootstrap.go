package vksetup

import (
	"log"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
	"github.com/vkngwrapper/extensions/v2/khr_swapchain"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v2"
)

// Phase tracks how far bring-up has progressed. Phases only move forward;
// the single backward transition is Cleanup, which moves any phase to
// PhaseTornDown.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseInstanceReady
	PhaseSurfaceReady
	PhaseDeviceReady
	PhaseSwapchainReady
	PhaseRunning
	PhaseTornDown
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "Uninitialized"
	case PhaseInstanceReady:
		return "InstanceReady"
	case PhaseSurfaceReady:
		return "SurfaceReady"
	case PhaseDeviceReady:
		return "DeviceReady"
	case PhaseSwapchainReady:
		return "SwapchainReady"
	case PhaseRunning:
		return "Running"
	case PhaseTornDown:
		return "TornDown"
	}
	return "Unknown"
}

// DeviceQueueSet holds the queue handles retrieved from the logical device.
// Graphics and Present refer to the same underlying queue when both roles
// resolved to the same family. The queues live and die with the device.
type DeviceQueueSet struct {
	Graphics core1_0.Queue
	Present  core1_0.Queue
}

// Bootstrap owns the instance → surface → logical device → swapchain →
// image-view chain and the ordering guarantees between them. It never
// terminates the process; every fatal condition is returned as an error for
// the caller to act on, and Cleanup releases whatever was acquired up to the
// point of failure.
type Bootstrap struct {
	config Config
	window *sdl.Window
	loader core.Loader

	phase Phase

	instance       core1_0.Instance
	debugMessenger ext_debug_utils.DebugUtilsMessenger
	surface        khr_surface.Surface

	physicalDevice core1_0.PhysicalDevice
	indices        QueueFamilyIndices
	device         core1_0.Device
	queues         DeviceQueueSet

	swapchainExtension  khr_swapchain.Extension
	swapchain           khr_swapchain.Swapchain
	swapchainImages     []core1_0.Image
	swapchainImageViews []core1_0.ImageView
	swapchainConfig     SwapchainConfig
}

// NewBootstrap prepares a Bootstrap over an SDL window that was created with
// the vulkan flag and a loader obtained from that window's proc address.
// Nothing is acquired until Initialize.
func NewBootstrap(config Config, window *sdl.Window, loader core.Loader) *Bootstrap {
	return &Bootstrap{
		config: config,
		window: window,
		loader: loader,
		phase:  PhaseUninitialized,
	}
}

// Initialize runs the full negotiation. On error the Bootstrap is left in
// the phase it reached; calling Cleanup then releases exactly the resources
// acquired so far.
func (b *Bootstrap) Initialize() error {
	err := b.createInstance()
	if err != nil {
		return err
	}

	err = b.setupDebugMessenger()
	if err != nil {
		return err
	}

	err = b.createSurface()
	if err != nil {
		return err
	}

	err = b.pickPhysicalDevice()
	if err != nil {
		return err
	}

	err = b.createLogicalDevice()
	if err != nil {
		return err
	}

	err = b.createSwapchain()
	if err != nil {
		return err
	}

	err = b.createImageViews()
	if err != nil {
		return err
	}

	b.phase = PhaseRunning
	return nil
}

func (b *Bootstrap) createInstance() error {
	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:    b.config.ApplicationName,
		ApplicationVersion: b.config.ApplicationVersion,
		EngineName:         b.config.EngineName,
		EngineVersion:      b.config.EngineVersion,
		APIVersion:         b.config.APIVersion,
	}

	// Add extensions
	sdlExtensions := b.window.VulkanGetInstanceExtensions()
	extensions, _, err := b.loader.AvailableExtensions()
	if err != nil {
		return err
	}

	for _, ext := range sdlExtensions {
		_, hasExt := extensions[ext]
		if !hasExt {
			return errors.Newf("createInstance: window system requires missing extension %s", ext)
		}
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext)
	}

	if b.config.EnableValidationLayers {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, ext_debug_utils.ExtensionName)
	}

	_, enumerationSupported := extensions[khr_portability_enumeration.ExtensionName]
	if enumerationSupported {
		instanceOptions.EnabledExtensionNames = append(instanceOptions.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	// Add layers
	layers, _, err := b.loader.AvailableLayers()
	if err != nil {
		return err
	}

	if b.config.EnableValidationLayers {
		if !CheckLayerSupport(layers, b.config.ValidationLayers) {
			return errors.Wrapf(ErrLayerUnavailable, "requested %v, install the LunarG Vulkan SDK", b.config.ValidationLayers)
		}
		instanceOptions.EnabledLayerNames = append(instanceOptions.EnabledLayerNames, b.config.ValidationLayers...)

		// Add debug messenger
		instanceOptions.Next = b.debugMessengerOptions()
	}

	instance, res, err := b.loader.CreateInstance(nil, instanceOptions)
	if err != nil {
		return errors.Wrapf(err, "vkCreateInstance failed (%d)", res)
	}
	b.instance = instance
	b.phase = PhaseInstanceReady

	return nil
}

func (b *Bootstrap) debugMessengerOptions() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    b.logDebug,
	}
}

func (b *Bootstrap) setupDebugMessenger() error {
	if !b.config.EnableValidationLayers {
		return nil
	}

	var err error
	debugLoader := ext_debug_utils.CreateExtensionFromInstance(b.instance)
	b.debugMessenger, _, err = debugLoader.CreateDebugUtilsMessenger(b.instance, nil, b.debugMessengerOptions())
	if err != nil {
		return err
	}

	return nil
}

func (b *Bootstrap) logDebug(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	log.Printf("[%s %s] - %s", severity, msgType, data.Message)
	return false
}

func (b *Bootstrap) createSurface() error {
	surfaceLoader := khr_surface.CreateExtensionFromInstance(b.instance)

	surface, err := vkng_sdl2.CreateSurface(b.instance, surfaceLoader, b.window)
	if err != nil {
		return errors.Wrap(err, "vkCreateSurfaceKHR failed")
	}

	b.surface = surface
	b.phase = PhaseSurfaceReady
	return nil
}

func (b *Bootstrap) pickPhysicalDevice() error {
	physicalDevices, _, err := b.instance.EnumeratePhysicalDevices()
	if err != nil {
		return err
	}

	devices := make([]HostDevice, 0, len(physicalDevices))
	for _, device := range physicalDevices {
		devices = append(devices, device)
	}

	picked, err := PickPhysicalDevice(devices, WrapSurface(b.surface), b.config.DeviceExtensions)
	if err != nil {
		return err
	}

	b.physicalDevice = picked.(core1_0.PhysicalDevice)
	return nil
}

func (b *Bootstrap) createLogicalDevice() error {
	indices, err := FindQueueFamilies(b.physicalDevice, WrapSurface(b.surface))
	if err != nil {
		return err
	}
	b.indices = indices

	uniqueQueueFamilies := []int{*indices.GraphicsFamily}
	if uniqueQueueFamilies[0] != *indices.PresentFamily {
		uniqueQueueFamilies = append(uniqueQueueFamilies, *indices.PresentFamily)
	}

	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, queueFamily := range uniqueQueueFamilies {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueFamily,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	extensionNames := append([]string{}, b.config.DeviceExtensions...)

	// Makes this compatible with vulkan portability, necessary to run on mobile & mac
	extensions, _, err := b.physicalDevice.EnumerateDeviceExtensionProperties()
	if err != nil {
		return err
	}

	_, supported := extensions[khr_portability_subset.ExtensionName]
	if supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	device, res, err := b.physicalDevice.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return errors.Wrapf(err, "vkCreateDevice failed (%d)", res)
	}
	b.device = device

	b.queues = DeviceQueueSet{
		Graphics: b.device.GetQueue(*indices.GraphicsFamily, 0),
		Present:  b.device.GetQueue(*indices.PresentFamily, 0),
	}
	b.phase = PhaseDeviceReady
	return nil
}

func (b *Bootstrap) createSwapchain() error {
	b.swapchainExtension = khr_swapchain.CreateExtensionFromDevice(b.device)

	// Capabilities are device-relative: the selected device is probed anew
	// here, never served from a snapshot taken while other devices were
	// still under consideration.
	swapchainSupport, err := QuerySwapchainSupport(WrapSurface(b.surface), b.physicalDevice)
	if err != nil {
		return err
	}

	config := ConfigureSwapchain(swapchainSupport, b.window)

	swapchain, res, err := b.swapchainExtension.CreateSwapchain(b.device, nil, swapchainCreateInfo(b.surface, config, b.indices, swapchainSupport.Capabilities))
	if err != nil {
		return errors.Wrapf(err, "vkCreateSwapchainKHR failed (%d)", res)
	}
	b.swapchain = swapchain
	b.swapchainConfig = config

	return nil
}

func (b *Bootstrap) createImageViews() error {
	// The driver may hand back more images than requested, so the count is
	// re-queried rather than assumed.
	images, _, err := b.swapchain.SwapchainImages()
	if err != nil {
		return err
	}
	b.swapchainImages = images

	var imageViews []core1_0.ImageView
	for _, image := range images {
		view, res, err := b.device.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			ViewType: core1_0.ImageViewType2D,
			Image:    image,
			Format:   b.swapchainConfig.SurfaceFormat.Format,
			Components: core1_0.ComponentMapping{
				R: core1_0.ComponentSwizzleIdentity,
				G: core1_0.ComponentSwizzleIdentity,
				B: core1_0.ComponentSwizzleIdentity,
				A: core1_0.ComponentSwizzleIdentity,
			},
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return errors.Wrapf(err, "vkCreateImageView failed (%d)", res)
		}

		imageViews = append(imageViews, view)
	}
	b.swapchainImageViews = imageViews
	b.phase = PhaseSwapchainReady

	return nil
}

// Cleanup destroys every acquired resource in exact reverse acquisition
// order: image views, swapchain, logical device, debug messenger, surface,
// instance. Resources never acquired are not touched, and a second call is a
// no-op. The swapchain images themselves are driver-owned and are not
// destroyed individually.
func (b *Bootstrap) Cleanup() {
	for _, imageView := range b.swapchainImageViews {
		imageView.Destroy(nil)
	}
	b.swapchainImageViews = nil
	b.swapchainImages = nil

	if b.swapchain != nil {
		b.swapchain.Destroy(nil)
		b.swapchain = nil
	}

	if b.device != nil {
		b.device.Destroy(nil)
		b.device = nil
		b.queues = DeviceQueueSet{}
	}

	if b.debugMessenger != nil {
		b.debugMessenger.Destroy(nil)
		b.debugMessenger = nil
	}

	if b.surface != nil {
		b.surface.Destroy(nil)
		b.surface = nil
	}

	if b.instance != nil {
		b.instance.Destroy(nil)
		b.instance = nil
	}

	b.phase = PhaseTornDown
}

// Phase returns the bring-up phase reached so far.
func (b *Bootstrap) Phase() Phase {
	return b.phase
}

// PhysicalDevice returns the selected physical device.
func (b *Bootstrap) PhysicalDevice() core1_0.PhysicalDevice {
	return b.physicalDevice
}

// Device returns the logical device.
func (b *Bootstrap) Device() core1_0.Device {
	return b.device
}

// Queues returns the graphics and present queue handles.
func (b *Bootstrap) Queues() DeviceQueueSet {
	return b.queues
}

// QueueFamilies returns the indices resolved for the selected device.
func (b *Bootstrap) QueueFamilies() QueueFamilyIndices {
	return b.indices
}

// Swapchain returns the created swapchain.
func (b *Bootstrap) Swapchain() khr_swapchain.Swapchain {
	return b.swapchain
}

// SwapchainConfig returns the negotiated format, present mode, extent and
// requested image count.
func (b *Bootstrap) SwapchainConfig() SwapchainConfig {
	return b.swapchainConfig
}

// SwapchainImages returns the driver-owned swapchain images.
func (b *Bootstrap) SwapchainImages() []core1_0.Image {
	return b.swapchainImages
}

// SwapchainImageViews returns one view per swapchain image, owned by the
// Bootstrap until Cleanup.
func (b *Bootstrap) SwapchainImageViews() []core1_0.ImageView {
	return b.swapchainImageViews
}
