package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the workload parameters of one benchmark run. The defaults
// reproduce the reference testbench exactly; a YAML file can override them.
type Config struct {
	SeedA uint32 `yaml:"seedA"`
	SeedB uint32 `yaml:"seedB"`
	SeedX uint32 `yaml:"seedX"`
	SeedY uint32 `yaml:"seedY"`

	Alpha     int32 `yaml:"alpha"`
	VecLen    int   `yaml:"vecLen"`
	Tolerance int   `yaml:"tolerance"`
}

// DefaultConfig returns the reference workload parameters.
func DefaultConfig() Config {
	return Config{
		SeedA:     0x5678,
		SeedB:     0x9ABC,
		SeedX:     0xABCD,
		SeedY:     0x1234,
		Alpha:     3,
		VecLen:    256,
		Tolerance: 1,
	}
}

// LoadConfig reads a YAML workload file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading benchmark config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing benchmark config: %w", err)
	}

	if cfg.VecLen <= 0 {
		return cfg, fmt.Errorf("vecLen must be positive, got %d", cfg.VecLen)
	}
	if cfg.Tolerance < 0 {
		return cfg, fmt.Errorf("tolerance must be non-negative, got %d",
			cfg.Tolerance)
	}

	return cfg, nil
}
