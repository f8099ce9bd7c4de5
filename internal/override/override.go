// Package override rewrites device display names from user configuration.
package override

import "github.com/FreeMasen/orbi-helpers/internal/model"

// Apply renames entries of devices.Devices in place. Each device is looked
// up first by its MAC and, only when that misses, by its current name.
// Lookups are exact and case-sensitive. Satellites are left alone.
//
// It returns how many devices were renamed.
func Apply(devices *model.AttachedDevices, overrides map[string]string) int {
	if devices == nil || len(overrides) == 0 {
		return 0
	}
	renamed := 0
	for i := range devices.Devices {
		if name, ok := Resolve(&devices.Devices[i], overrides); ok {
			devices.Devices[i].Name = name
			renamed++
		}
	}
	return renamed
}

// Resolve returns the override for d, if any, without modifying d.
func Resolve(d *model.Device, overrides map[string]string) (string, bool) {
	if name, ok := overrides[d.MAC]; ok {
		return name, true
	}
	if name, ok := overrides[d.Name]; ok {
		return name, true
	}
	return "", false
}
