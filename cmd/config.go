package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/pdevs/devs/trace"
)

// RunConfig is the YAML configuration for `pdevs run`.
// Zero-valued fields are filled by ApplyDefaults.
type RunConfig struct {
	Horizon    int64            `yaml:"horizon"`
	LogLevel   string           `yaml:"log_level"`
	TraceLevel string           `yaml:"trace_level"`
	MaxCycles  int              `yaml:"max_cycles"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Processor  ProcessorConfig  `yaml:"processor"`
	Transducer TransducerConfig `yaml:"transducer"`
	Inputs     []InputConfig    `yaml:"inputs"`
}

// GeneratorConfig configures the job generator.
type GeneratorConfig struct {
	Period   int64 `yaml:"period"`
	FirstJob int64 `yaml:"first_job"`
	MaxJobs  int   `yaml:"max_jobs"`
}

// ProcessorConfig configures the processor.
type ProcessorConfig struct {
	ServiceTime int64 `yaml:"service_time"`
}

// TransducerConfig configures the observation window.
type TransducerConfig struct {
	ObservationTime int64 `yaml:"observation_time"`
}

// InputConfig is an extra job injected on efp.in at Time.
type InputConfig struct {
	Time int64 `yaml:"time"`
	ID   int   `yaml:"id"`
}

// DefaultRunConfig returns the configuration used when no file is given.
func DefaultRunConfig() RunConfig {
	cfg := RunConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *RunConfig) ApplyDefaults() {
	if c.Horizon == 0 {
		c.Horizon = 1000
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.TraceLevel == "" {
		c.TraceLevel = string(trace.TraceLevelNone)
	}
	if c.Generator.Period == 0 {
		c.Generator.Period = 10
	}
	if c.Processor.ServiceTime == 0 {
		c.Processor.ServiceTime = 5
	}
	if c.Transducer.ObservationTime == 0 {
		c.Transducer.ObservationTime = 100
	}
}

// LoadRunConfig reads a YAML run configuration. Unknown fields are errors.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var cfg RunConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// envOverrides lists the settings that may come from PDEVS_* environment
// variables. A nil field means the variable is unset.
type envOverrides struct {
	Horizon         *int64  `env:"HORIZON"`
	LogLevel        *string `env:"LOG_LEVEL"`
	TraceLevel      *string `env:"TRACE_LEVEL"`
	MaxCycles       *int    `env:"MAX_CYCLES"`
	Period          *int64  `env:"PERIOD"`
	FirstJob        *int64  `env:"FIRST_JOB"`
	MaxJobs         *int    `env:"MAX_JOBS"`
	ServiceTime     *int64  `env:"SERVICE_TIME"`
	ObservationTime *int64  `env:"OBSERVATION_TIME"`
}

// ApplyEnv overlays PDEVS_* environment variables on cfg. They take
// precedence over the config file and are themselves overridden by flags.
func ApplyEnv(cfg *RunConfig) error {
	var ov envOverrides
	if err := env.ParseWithOptions(&ov, env.Options{Prefix: "PDEVS_"}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	setIf(&cfg.Horizon, ov.Horizon)
	setIf(&cfg.LogLevel, ov.LogLevel)
	setIf(&cfg.TraceLevel, ov.TraceLevel)
	setIf(&cfg.MaxCycles, ov.MaxCycles)
	setIf(&cfg.Generator.Period, ov.Period)
	setIf(&cfg.Generator.FirstJob, ov.FirstJob)
	setIf(&cfg.Generator.MaxJobs, ov.MaxJobs)
	setIf(&cfg.Processor.ServiceTime, ov.ServiceTime)
	setIf(&cfg.Transducer.ObservationTime, ov.ObservationTime)
	return nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks parameter ranges.
func (c *RunConfig) Validate() error {
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be >= 0, got %d", c.Horizon)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	if c.Generator.Period <= 0 {
		return fmt.Errorf("generator period must be > 0, got %d", c.Generator.Period)
	}
	if c.Generator.FirstJob < 0 {
		return fmt.Errorf("generator first_job must be >= 0, got %d", c.Generator.FirstJob)
	}
	if c.Generator.MaxJobs < 0 {
		return fmt.Errorf("generator max_jobs must be >= 0, got %d", c.Generator.MaxJobs)
	}
	if c.Processor.ServiceTime <= 0 {
		return fmt.Errorf("processor service_time must be > 0, got %d", c.Processor.ServiceTime)
	}
	if c.Transducer.ObservationTime <= 0 {
		return fmt.Errorf("transducer observation_time must be > 0, got %d", c.Transducer.ObservationTime)
	}
	for i, in := range c.Inputs {
		if in.Time < 0 {
			return fmt.Errorf("inputs[%d]: time must be >= 0, got %d", i, in.Time)
		}
	}
	return nil
}
