package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/oscillator/internal/integrators"
	"github.com/san-kum/oscillator/internal/physics"
)

const (
	DefaultMass          = 70.0
	DefaultInitialOffset = 1.0
	DefaultSpring        = 1e4
	DefaultDamping       = 100.0
	DefaultTimeStep      = 1e-4
	DefaultTotalTime     = 5.0
	DefaultIntegrator    = "verlet"
	DefaultOutputDir     = ".oscillator"
)

type Config struct {
	ParticleMass       float64      `yaml:"particle_mass"`
	InitialOffset      float64      `yaml:"initial_offset"`
	SpringConstant     float64      `yaml:"spring_constant"`
	DampingCoefficient float64      `yaml:"damping_coefficient"`
	TimeStep           float64      `yaml:"time_step"`
	TotalTime          float64      `yaml:"total_time"`
	Integrator         string       `yaml:"integrator"`
	Output             OutputConfig `yaml:"output"`
}

// OutputConfig names the files written after a run. Empty paths are
// skipped.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Ovito    string `yaml:"ovito"`
	Movement string `yaml:"movement"`
}

func DefaultConfig() *Config {
	return &Config{
		ParticleMass:       DefaultMass,
		InitialOffset:      DefaultInitialOffset,
		SpringConstant:     DefaultSpring,
		DampingCoefficient: DefaultDamping,
		TimeStep:           DefaultTimeStep,
		TotalTime:          DefaultTotalTime,
		Integrator:         DefaultIntegrator,
		Output: OutputConfig{
			Dir: DefaultOutputDir,
		},
	}
}

// Load reads a YAML file on top of the defaults, so omitted keys keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the configuration into oscillator parameters. Only the
// integrator name is checked here; physics.New validates the numbers. On
// error the numeric fields are still filled in.
func (c *Config) Params() (physics.Params, error) {
	p := physics.Params{
		Mass:          c.ParticleMass,
		InitialOffset: c.InitialOffset,
		Spring:        c.SpringConstant,
		Damping:       c.DampingCoefficient,
		TimeStep:      c.TimeStep,
		TotalTime:     c.TotalTime,
	}
	method, err := integrators.ParseMethod(c.Integrator)
	if err != nil {
		return p, err
	}
	p.Method = method
	return p, nil
}

// Validate reports the first problem with the configuration, numeric
// bounds before the integrator name.
func (c *Config) Validate() error {
	p, err := c.Params()
	if err != nil {
		p.Method = integrators.MethodVerlet
		if nerr := p.Validate(); nerr != nil {
			return nerr
		}
		return err
	}
	return p.Validate()
}
