package config

import (
	"log/slog"
	"os"

	"github.com/nl2tl/scenario-registry/pkg/domain"
	apperrors "github.com/nl2tl/scenario-registry/pkg/errors"
)

// Loader loads and validates scenario configuration from a YAML file.
// It performs file reading, order-preserving YAML parsing, and validation.
type Loader struct {
	configPath string
	validator  *Validator
	strict     bool
	logger     *slog.Logger
}

// NewLoader creates a new Loader instance. Unresolved target-class
// references are reported as warnings alongside the loaded configuration.
//
// Parameters:
//   - configPath: Path to the scenarios.yaml file
//   - logger: Structured logger for operational logging
func NewLoader(configPath string, logger *slog.Logger) *Loader {
	return &Loader{
		configPath: configPath,
		validator:  NewValidator(),
		logger:     logger,
	}
}

// NewStrictLoader creates a Loader that promotes unresolved target-class
// references to fatal load errors instead of warnings.
func NewStrictLoader(configPath string, logger *slog.Logger) *Loader {
	l := NewLoader(configPath, logger)
	l.strict = true
	return l
}

// Load loads the configuration file and returns a validated Config.
// This method performs four steps:
// 1. Read the config file from disk
// 2. Parse YAML into the Scenario model, preserving declaration order
// 3. Validate structural rules (fail fast; invalid config aborts startup)
// 4. Collect unresolved target-class references as warnings
//
// The warnings are returned alongside the config so callers decide their own
// tolerance; under a strict loader the first unresolved reference is fatal.
//
// Returns:
//   - *Config: Valid configuration ready for use
//   - []domain.ValidationIssue: Unresolved-reference warnings, possibly empty
//   - error: Descriptive error if loading or validation fails
func (l *Loader) Load() (*Config, []domain.ValidationIssue, error) {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, nil, apperrors.ErrConfigNotFound(l.configPath, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}

	if err := l.validator.Validate(cfg); err != nil {
		return nil, nil, err
	}

	var issues []domain.ValidationIssue
	for _, scenario := range cfg.Scenarios {
		issues = append(issues, l.validator.CheckReferences(scenario)...)
	}
	if l.strict && len(issues) > 0 {
		first := issues[0]
		return nil, nil, apperrors.ErrValidationFailed(first.Scenario, first.String())
	}

	for _, issue := range issues {
		l.logger.Warn("Unresolved target-class reference",
			"scenario", issue.Scenario,
			"action", issue.Action,
			"field", issue.Field,
			"ref", issue.Ref,
		)
	}

	l.logger.Info("Config loaded successfully",
		"scenarios", len(cfg.Scenarios),
		"total_actions", l.countActions(cfg),
		"warnings", len(issues),
		"config_path", l.configPath,
	)

	return cfg, issues, nil
}

// countActions counts the total number of actions across all scenarios.
func (l *Loader) countActions(cfg *Config) int {
	count := 0
	for _, scenario := range cfg.Scenarios {
		count += len(scenario.Actions)
	}
	return count
}
