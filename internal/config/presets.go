package config

import "sort"

var Presets = map[string]*Config{
	"course": DefaultConfig(),
	"undamped": {
		ParticleMass: 1, InitialOffset: 1, SpringConstant: 1,
		TimeStep: 0.001, TotalTime: 6.283185, Integrator: "verlet",
	},
	"damped": {
		ParticleMass: 2, InitialOffset: 0.5, SpringConstant: 4, DampingCoefficient: 1,
		TimeStep: 0.01, TotalTime: 10, Integrator: "beeman",
	},
	"critical": {
		ParticleMass: 1, InitialOffset: 1, SpringConstant: 1, DampingCoefficient: 2,
		TimeStep: 0.01, TotalTime: 10, Integrator: "gear",
	},
	"overdamped": {
		ParticleMass: 1, InitialOffset: 1, SpringConstant: 1, DampingCoefficient: 5,
		TimeStep: 0.01, TotalTime: 10, Integrator: "gear",
	},
	"stiff": {
		ParticleMass: 1, InitialOffset: 1, SpringConstant: 100,
		TimeStep: 1, TotalTime: 10000, Integrator: "verlet",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
