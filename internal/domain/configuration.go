package domain

import (
	"fmt"
	"strings"
)

// EmptyWindowPolicy selects the average wage used when the projection has no records.
type EmptyWindowPolicy string

const (
	// EmptyWindowLastWage averages over the current insured wage.
	EmptyWindowLastWage EmptyWindowPolicy = "last_wage"
	// EmptyWindowZero treats the average wage as zero.
	EmptyWindowZero EmptyWindowPolicy = "zero"
	// EmptyWindowError rejects the estimate.
	EmptyWindowError EmptyWindowPolicy = "error"
)

// ParseEmptyWindowPolicy accepts the policy names case-insensitively; "" yields the default.
func ParseEmptyWindowPolicy(s string) (EmptyWindowPolicy, error) {
	switch EmptyWindowPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", EmptyWindowLastWage:
		return EmptyWindowLastWage, nil
	case EmptyWindowZero:
		return EmptyWindowZero, nil
	case EmptyWindowError:
		return EmptyWindowError, nil
	default:
		return "", fmt.Errorf("unknown empty window policy %q (want last_wage, zero or error)", s)
	}
}

// OutputSettings holds presentation preferences read from the scenario file.
type OutputSettings struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty" toml:"format,omitempty"`
	Path   string `yaml:"path,omitempty" json:"path,omitempty" toml:"path,omitempty"`
}

// Configuration is the scenario file model.
type Configuration struct {
	Name        string            `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Parameters  Parameters        `yaml:"parameters" json:"parameters" toml:"parameters"`
	Formula     AccrualFormula    `yaml:"formula,omitempty" json:"formula,omitempty" toml:"formula,omitempty"`
	EmptyWindow EmptyWindowPolicy `yaml:"empty_window,omitempty" json:"empty_window,omitempty" toml:"empty_window,omitempty"`
	Output      OutputSettings    `yaml:"output,omitempty" json:"output,omitempty" toml:"output,omitempty"`
}

// DefaultConfiguration returns default parameters and formula.
func DefaultConfiguration() Configuration {
	return Configuration{
		Name:        "default",
		Parameters:  DefaultParameters(),
		Formula:     DefaultAccrualFormula(),
		EmptyWindow: EmptyWindowLastWage,
	}
}
