package vksetup

import (
	"testing"

	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/khr_surface"
)

func TestChooseSwapSurfaceFormatPreferred(t *testing.T) {
	// Preferred pair sits at index 3; scanning must find it, not settle for
	// index 0.
	formats := []khr_surface.SurfaceFormat{
		otherFormat(),
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear + 1},
		otherFormat(),
		preferredFormat(),
	}

	got := ChooseSwapSurfaceFormat(formats)
	if got != preferredFormat() {
		t.Errorf("got %+v, want the preferred format at index 3", got)
	}
}

func TestChooseSwapSurfaceFormatFallback(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		otherFormat(),
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear + 1},
	}

	got := ChooseSwapSurfaceFormat(formats)
	if got != formats[0] {
		t.Errorf("got %+v, want the first entry as fallback", got)
	}
}

func TestChooseSwapPresentModePrefersMailbox(t *testing.T) {
	modes := []khr_surface.PresentMode{
		khr_surface.PresentModeFIFO,
		khr_surface.PresentModeMailbox,
	}

	if got := ChooseSwapPresentMode(modes); got != khr_surface.PresentModeMailbox {
		t.Errorf("got %v, want mailbox", got)
	}
}

func TestChooseSwapPresentModeFallsBackToFIFO(t *testing.T) {
	modes := []khr_surface.PresentMode{khr_surface.PresentModeFIFO}

	if got := ChooseSwapPresentMode(modes); got != khr_surface.PresentModeFIFO {
		t.Errorf("got %v, want FIFO", got)
	}
}

func TestChooseSwapExtentFixedByWindowSystem(t *testing.T) {
	capabilities := basicCapabilities()

	// Drawable is deliberately nil: a fixed extent must be returned without
	// consulting the window at all.
	got := ChooseSwapExtent(capabilities, nil)
	if got != capabilities.CurrentExtent {
		t.Errorf("got %+v, want the surface's current extent", got)
	}
}

func TestChooseSwapExtentClampedToCapabilities(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 1024, Height: 1024},
	}

	got := ChooseSwapExtent(capabilities, fakeDrawable{width: 1920, height: 1080})
	want := core1_0.Extent2D{Width: 1024, Height: 1024}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestChooseSwapExtentClampedUpward(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: -1, Height: -1},
		MinImageExtent: core1_0.Extent2D{Width: 200, Height: 200},
		MaxImageExtent: core1_0.Extent2D{Width: 1024, Height: 1024},
	}

	got := ChooseSwapExtent(capabilities, fakeDrawable{width: 100, height: 600})
	want := core1_0.Extent2D{Width: 200, Height: 600}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestChooseImageCount(t *testing.T) {
	tests := []struct {
		name string
		min  int
		max  int
		want int
	}{
		{"unbounded", 2, 0, 3},
		{"clamped down", 2, 2, 2},
		{"room for one more", 2, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			capabilities := &khr_surface.SurfaceCapabilities{
				MinImageCount: tt.min,
				MaxImageCount: tt.max,
			}
			if got := chooseImageCount(capabilities); got != tt.want {
				t.Errorf("chooseImageCount(min=%d, max=%d) = %d, want %d", tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestConfigureSwapchain(t *testing.T) {
	details := SwapchainSupportDetails{
		Capabilities: &khr_surface.SurfaceCapabilities{
			MinImageCount:  2,
			MaxImageCount:  3,
			CurrentExtent:  core1_0.Extent2D{Width: 800, Height: 600},
			MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
		},
		Formats:      []khr_surface.SurfaceFormat{otherFormat(), preferredFormat()},
		PresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox},
	}

	config := ConfigureSwapchain(details, fakeDrawable{width: 800, height: 600})

	if config.SurfaceFormat != preferredFormat() {
		t.Errorf("surface format %+v, want preferred", config.SurfaceFormat)
	}
	if config.PresentMode != khr_surface.PresentModeMailbox {
		t.Errorf("present mode %v, want mailbox", config.PresentMode)
	}
	if config.Extent != (core1_0.Extent2D{Width: 800, Height: 600}) {
		t.Errorf("extent %+v, want 800x600", config.Extent)
	}
	if config.ImageCount != 3 {
		t.Errorf("image count %d, want 3", config.ImageCount)
	}
}
