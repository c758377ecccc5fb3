package config

import "sort"

// Presets are named camera viewpoints selectable via the --camera flag and
// the viewpoint key in the terminal shell.
var Presets = map[string]CameraConfig{
	"front": {RotX: 0, RotY: 0, Zoom: 1.0},
	"top":   {RotX: 1.3, RotY: 0, Zoom: 1.0},
	"iso":   {RotX: 0.4, RotY: -0.6, Zoom: 1.0},
	"close": {RotX: 0.4, RotY: -0.6, Zoom: 1.8},
}

func GetPreset(name string) *CameraConfig {
	cam, ok := Presets[name]
	if !ok {
		return nil
	}
	return &cam
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
