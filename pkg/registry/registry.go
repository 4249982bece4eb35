package registry

import "github.com/nl2tl/scenario-registry/pkg/domain"

// Registry provides O(1) in-memory lookups for scenario definitions.
// It is built once at generator startup from the scenarios.yaml config file
// and is immutable afterwards: all lookups are read-only and the registry may
// be shared across any number of goroutines without locking.
type Registry interface {
	// Get retrieves a scenario by name.
	// Returns a SCENARIO_NOT_FOUND error if the name is not registered.
	// Time complexity: O(1)
	Get(name string) (*domain.Scenario, error)

	// Names returns all scenario names in the order they appear in the
	// config file.
	Names() []string

	// Scenarios returns all scenario definitions in declaration order.
	Scenarios() []*domain.Scenario

	// Validate runs the non-fatal referential check on one scenario:
	// unresolved target-class references in roles and params are returned as
	// warnings. Returns a SCENARIO_NOT_FOUND error if the name is not
	// registered.
	Validate(name string) ([]domain.ValidationIssue, error)
}
