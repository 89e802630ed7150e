package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/pension-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML, JSON or TOML file. The format is
// chosen by extension; anything other than .toml is read as YAML, which also
// accepts JSON.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		return ip.ParseTOML(data)
	}
	return ip.ParseYAML(data)
}

// ParseYAML decodes, completes and validates a YAML or JSON scenario.
func (ip *InputParser) ParseYAML(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return ip.finish(&config)
}

// ParseTOML decodes, completes and validates a TOML scenario.
func (ip *InputParser) ParseTOML(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return ip.finish(&config)
}

func (ip *InputParser) finish(config *domain.Configuration) (*domain.Configuration, error) {
	ApplyDefaults(config)
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// ApplyDefaults fills the optional parts of a scenario. The increase schedule
// starts at the start age unless the file says otherwise.
func ApplyDefaults(config *domain.Configuration) {
	if config.Name == "" {
		config.Name = "scenario"
	}
	if config.Parameters.IncStartAge == 0 {
		config.Parameters.IncStartAge = config.Parameters.StartAge
	}
	if config.Formula.IsZero() {
		config.Formula = domain.DefaultAccrualFormula()
	}
	if config.EmptyWindow == "" {
		config.EmptyWindow = domain.EmptyWindowLastWage
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateParameters(&config.Parameters); err != nil {
		return fmt.Errorf("parameters: %w", err)
	}

	if err := ip.validateFormula(&config.Formula); err != nil {
		return fmt.Errorf("formula: %w", err)
	}

	policy, err := domain.ParseEmptyWindowPolicy(string(config.EmptyWindow))
	if err != nil {
		return err
	}
	config.EmptyWindow = policy

	return nil
}

// validateParameters rejects inputs the core cannot compute. Range limits
// are the input collector's job (domain.ClampParameters), not checked here.
func (ip *InputParser) validateParameters(p *domain.Parameters) error {
	if p.StartAge <= 0 {
		return fmt.Errorf("start age must be positive")
	}
	if p.RetireAge <= 0 {
		return fmt.Errorf("retire age must be positive")
	}
	if p.ExistingMonths < 0 {
		return fmt.Errorf("existing months cannot be negative")
	}
	if p.LastWage.IsNegative() {
		return fmt.Errorf("last wage cannot be negative")
	}
	if p.Ceiling.IsNegative() {
		return fmt.Errorf("wage ceiling cannot be negative")
	}
	if p.ContribRate.IsNegative() || p.ContribRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("contribution rate must be between 0 and 1")
	}
	if p.IncPct.IsNegative() {
		return fmt.Errorf("wage increase percent cannot be negative")
	}
	if p.IncEvery <= 0 {
		return fmt.Errorf("increase interval must be at least one year")
	}
	return nil
}

func (ip *InputParser) validateFormula(f *domain.AccrualFormula) error {
	if f.BracketLimit.IsNegative() {
		return fmt.Errorf("bracket limit cannot be negative")
	}
	if f.LowerRate.IsNegative() || f.UpperRate.IsNegative() {
		return fmt.Errorf("accrual rates cannot be negative")
	}
	return nil
}

// SaveConfiguration writes a scenario back out as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
