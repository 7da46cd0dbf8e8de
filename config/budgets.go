package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed budgets.yaml
var defaultBudgetsYAML []byte

// BudgetDefault describes one default budget envelope.
type BudgetDefault struct {
	Name       string          `yaml:"name"`
	Limit      decimal.Decimal `yaml:"limit"`
	Categories []string        `yaml:"categories"`
}

// BudgetDefaults is the parsed budgets.yaml document.
type BudgetDefaults struct {
	Budgets []BudgetDefault `yaml:"budgets"`
}

// Find returns the default envelope with the given name.
func (d *BudgetDefaults) Find(name string) (BudgetDefault, bool) {
	for _, b := range d.Budgets {
		if b.Name == name {
			return b, true
		}
	}
	return BudgetDefault{}, false
}

// LoadBudgetDefaults reads the budget envelope defaults from path,
// or from the embedded budgets.yaml when path is empty.
func LoadBudgetDefaults(path string) (*BudgetDefaults, error) {
	data := defaultBudgetsYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read budget defaults file: %w", err)
		}
		data = fileData
	}

	return ParseBudgetDefaults(data)
}

// ParseBudgetDefaults parses a budgets.yaml document.
func ParseBudgetDefaults(data []byte) (*BudgetDefaults, error) {
	var defaults BudgetDefaults
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	seen := make(map[string]bool, len(defaults.Budgets))
	for _, b := range defaults.Budgets {
		if b.Name == "" {
			return nil, fmt.Errorf("budget default without name")
		}
		if seen[b.Name] {
			return nil, fmt.Errorf("duplicate budget default %q", b.Name)
		}
		if b.Limit.IsNegative() {
			return nil, fmt.Errorf("budget default %q has a negative limit", b.Name)
		}
		seen[b.Name] = true
	}

	return &defaults, nil
}
