/*
Package vksetup negotiates the Vulkan startup configuration for a windowed
application: which physical device to render with, which queue families carry
graphics and presentation work, and how the swapchain presenting to the window
surface should be configured.

The negotiation itself is a fixed sequence of queries and first-fit choices.
An instance is created once the requested validation layers are confirmed
available, the first physical device passing the suitability checks is
selected, a logical device is built over the unique graphics/present queue
families, and the swapchain format, present mode, extent and image count are
resolved from the surface capabilities of the selected device. Bootstrap owns
that sequence and tears everything down in exact reverse order.

The decision logic operates on the small HostDevice and HostSurface interfaces
rather than on vkngwrapper types directly, so every predicate and chooser can
be exercised against synthetic hardware descriptions.
*/
package vksetup
