package config

import "github.com/nl2tl/scenario-registry/pkg/domain"

// Config represents the top-level configuration loaded from scenarios.yaml.
// Scenarios keep the order in which they are declared in the file.
type Config struct {
	Scenarios []*domain.Scenario
}

// Scenario returns the scenario with the given name, or nil if it is not
// declared.
func (c *Config) Scenario(name string) *domain.Scenario {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Names returns all scenario names in declaration order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Scenarios))
	for i, s := range c.Scenarios {
		names[i] = s.Name
	}
	return names
}
