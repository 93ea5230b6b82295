package main

import (
	"log"

	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/vksetup"
)

const (
	windowTitle  = "Welcome to Vulkan"
	windowWidth  = 800
	windowHeight = 600
)

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(windowTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, windowWidth, windowHeight, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	loader, err := core.CreateLoaderFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}

	boot := vksetup.NewBootstrap(vksetup.DefaultConfig(), window, loader)
	defer boot.Cleanup()

	start := hrtime.Now()
	if err := boot.Initialize(); err != nil {
		return err
	}
	log.Printf("vulkan bring-up reached %s in %v", boot.Phase(), hrtime.Now()-start)

	indices := boot.QueueFamilies()
	config := boot.SwapchainConfig()
	log.Printf("queue families: graphics %d, present %d", *indices.GraphicsFamily, *indices.PresentFamily)
	log.Printf("surface format %v, color space %v, present mode %v", config.SurfaceFormat.Format, config.SurfaceFormat.ColorSpace, config.PresentMode)
	log.Printf("extent %dx%d, requested %d images, got %d", config.Extent.Width, config.Extent.Height, config.ImageCount, len(boot.SwapchainImages()))

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			}
		}
	}

	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
