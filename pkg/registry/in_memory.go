package registry

import (
	"log/slog"

	"github.com/nl2tl/scenario-registry/pkg/config"
	"github.com/nl2tl/scenario-registry/pkg/domain"
	apperrors "github.com/nl2tl/scenario-registry/pkg/errors"
)

// InMemoryRegistry provides O(1) in-memory lookups for scenario definitions.
// The name index is built at construction and never mutated afterwards, so
// no lock is needed for concurrent readers. There is deliberately no reload:
// the generator's contract is one synchronous load at process start.
type InMemoryRegistry struct {
	byName    map[string]*domain.Scenario // "scenario-name" -> Scenario
	scenarios []*domain.Scenario          // All scenarios (ordered)
	validator *config.Validator
	logger    *slog.Logger
}

// New creates a registry from a validated configuration. The registry is
// immediately built and ready for lookups. It is an explicit, passed-by-
// reference object: tests load their own fixtures in isolation instead of
// sharing ambient global state.
//
// Parameters:
//   - cfg: Validated configuration containing scenario definitions
//   - logger: Structured logger for operational logging
func New(cfg *config.Config, logger *slog.Logger) *InMemoryRegistry {
	r := &InMemoryRegistry{
		byName:    make(map[string]*domain.Scenario, len(cfg.Scenarios)),
		scenarios: make([]*domain.Scenario, 0, len(cfg.Scenarios)),
		validator: config.NewValidator(),
		logger:    logger,
	}

	totalActions := 0
	for _, scenario := range cfg.Scenarios {
		r.byName[scenario.Name] = scenario
		r.scenarios = append(r.scenarios, scenario)
		totalActions += len(scenario.Actions)
	}

	logger.Info("Scenario registry built",
		"scenarios", len(r.scenarios),
		"total_actions", totalActions,
	)

	return r
}

// Load is the startup convenience path: it reads and validates the config
// file, builds the registry, and hands back the unresolved-reference
// warnings accumulated during the load so the caller decides tolerance.
func Load(configPath string, logger *slog.Logger) (*InMemoryRegistry, []domain.ValidationIssue, error) {
	cfg, issues, err := config.NewLoader(configPath, logger).Load()
	if err != nil {
		return nil, nil, err
	}
	return New(cfg, logger), issues, nil
}

// Get retrieves a scenario by name.
// Returns a SCENARIO_NOT_FOUND error if the name is not registered.
// Time complexity: O(1)
func (r *InMemoryRegistry) Get(name string) (*domain.Scenario, error) {
	scenario, ok := r.byName[name]
	if !ok {
		return nil, apperrors.ErrScenarioNotFound(name)
	}
	return scenario, nil
}

// Names returns all scenario names in the order they appear in the config
// file.
func (r *InMemoryRegistry) Names() []string {
	names := make([]string, len(r.scenarios))
	for i, s := range r.scenarios {
		names[i] = s.Name
	}
	return names
}

// Scenarios returns all scenario definitions in declaration order.
func (r *InMemoryRegistry) Scenarios() []*domain.Scenario {
	out := make([]*domain.Scenario, len(r.scenarios))
	copy(out, r.scenarios)
	return out
}

// Validate runs the non-fatal referential check on one scenario.
// Returns a SCENARIO_NOT_FOUND error if the name is not registered.
func (r *InMemoryRegistry) Validate(name string) ([]domain.ValidationIssue, error) {
	scenario, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return r.validator.CheckReferences(scenario), nil
}
