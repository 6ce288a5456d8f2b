package config

import "sort"

// Presets are the two reference firings the model was calibrated
// against.
var presets = map[string]func() *Config{
	"long-barrel": Default,
	"short-barrel": func() *Config {
		cfg := Default()
		cfg.Gun.BarrelLengthIn = 40.0
		cfg.Gun.VoidLengthIn = 4.0
		cfg.Gun.FrictionPSI = 0.5
		cfg.Gun.GasVolumeL = 3.36
		cfg.Gun.InjectionMs = 30.0
		cfg.Grid.DurationMs = 40.0
		return cfg
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	fn, ok := presets[name]
	if !ok {
		return nil
	}
	return fn()
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
