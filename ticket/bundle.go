package ticket

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TicketConfig is the YAML-loadable description of one scheduling run:
// the step definitions plus the run parameters (project name, vehicle
// count, grid step, wait policy) needed to schedule and export it.
type TicketConfig struct {
	Project    string    `yaml:"project"`
	Cars       int       `yaml:"cars"`
	GridStep   float64   `yaml:"grid_step"`
	WaitPolicy string    `yaml:"wait_policy"`
	Steps      []StepDef `yaml:"steps"`
}

// LoadTicketConfig reads and strictly parses a YAML ticket configuration
// file — unrecognized keys (typos) are rejected rather than silently
// ignored.
func LoadTicketConfig(path string) (*TicketConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ticket config: %w", err)
	}
	var cfg TicketConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing ticket config: %w", err)
	}
	for _, s := range cfg.Steps {
		if len(s.Durations) > 0 && !(s.Durations[0] > 0) {
			return nil, &DurationParseError{
				Display: s.Display,
				Raw:     fmt.Sprintf("%v", s.Durations[0]),
				Cause:   fmt.Errorf("duration must be a positive number"),
			}
		}
	}
	return &cfg, nil
}

// Validate checks the run parameters (not the step definitions themselves
// — those are validated by Normalize) and coerces GridStep/WaitPolicy to
// their defaults when left unset or invalid.
func (c *TicketConfig) Validate() error {
	if c.Cars < 1 {
		return &InvalidCountError{Cars: c.Cars}
	}
	if c.GridStep <= 0 {
		c.GridStep = 1.0
	}
	c.WaitPolicy = string(NormalizeWaitPolicy(c.WaitPolicy))
	return nil
}
