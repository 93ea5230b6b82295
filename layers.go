package vksetup

import "github.com/vkngwrapper/core/v2/core1_0"

// CheckLayerSupport reports whether every requested layer name appears in the
// available set enumerated from the loader. Matching is exact and
// case-sensitive; an empty request is always satisfied.
func CheckLayerSupport(available map[string]*core1_0.LayerProperties, requested []string) bool {
	for _, layerName := range requested {
		_, hasLayer := available[layerName]
		if !hasLayer {
			return false
		}
	}

	return true
}
