package config

import (
	"fmt"

	"github.com/nl2tl/scenario-registry/pkg/common"
	"github.com/nl2tl/scenario-registry/pkg/domain"
	apperrors "github.com/nl2tl/scenario-registry/pkg/errors"
)

// Validator validates parsed scenario configuration.
//
// Validation has two tiers. Validate enforces structural value rules and
// fails fast on the first violation. CheckReferences performs the soft
// referential pass: non-ego roles and target-ref params that name no declared
// target class are collected as warnings, because the sample configuration
// itself relies on conventional class names (sr_target, traffic_target) with
// no matching targets entry.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate performs structural validation of the configuration.
// It checks for:
// - Every name and token is a valid identifier
// - Every scenario has a non-empty locations list with distinct entries
//
// Uniqueness of scenario, action, and target names is already guaranteed by
// Parse, which rejects duplicate mapping keys.
//
// Returns an error describing the first validation failure encountered.
func (v *Validator) Validate(cfg *Config) error {
	for _, scenario := range cfg.Scenarios {
		if err := v.validateScenario(scenario); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateScenario(s *domain.Scenario) error {
	if !common.IsIdentifier(s.Name) {
		return apperrors.ErrSchemaInvalid(s.Name, "name", "not a valid identifier token")
	}

	if len(s.Locations) == 0 {
		return apperrors.ErrSchemaInvalid(s.Name, "locations", "must not be empty")
	}
	seen := make(map[string]bool)
	for _, loc := range s.Locations {
		if !common.IsIdentifier(loc) {
			return apperrors.ErrSchemaInvalid(s.Name, "locations", fmt.Sprintf("%q is not a valid identifier token", loc))
		}
		if seen[loc] {
			return apperrors.ErrSchemaInvalid(s.Name, "locations", fmt.Sprintf("duplicate entry %q", loc))
		}
		seen[loc] = true
	}

	for _, action := range s.Actions {
		if err := v.validateAction(s.Name, action); err != nil {
			return err
		}
	}

	for _, target := range s.Targets {
		if err := v.validateTarget(s.Name, target); err != nil {
			return err
		}
	}

	return nil
}

func (v *Validator) validateAction(scenario string, a *domain.ActionSpec) error {
	field := "actions." + a.Name
	if !common.IsIdentifier(a.Name) {
		return apperrors.ErrSchemaInvalid(scenario, field, "action name is not a valid identifier token")
	}
	if !common.IsIdentifier(string(a.Role)) {
		return apperrors.ErrSchemaInvalid(scenario, field+".role", fmt.Sprintf("%q is not a valid identifier token", a.Role))
	}
	for i, p := range a.Params {
		if p.Type == domain.KindTargetRef && !common.IsIdentifier(p.Class) {
			return apperrors.ErrSchemaInvalid(scenario, fmt.Sprintf("%s.params[%d]", field, i),
				fmt.Sprintf("%q is not a recognized param kind", p.Class))
		}
	}
	return nil
}

func (v *Validator) validateTarget(scenario string, t *domain.TargetSpec) error {
	field := "targets." + t.Name
	if !common.IsIdentifier(t.Name) {
		return apperrors.ErrSchemaInvalid(scenario, field, "target-class name is not a valid identifier token")
	}
	for _, prop := range t.Properties {
		if !common.IsIdentifier(prop) {
			return apperrors.ErrSchemaInvalid(scenario, field+".properties", fmt.Sprintf("%q is not a valid identifier token", prop))
		}
	}
	return nil
}

// CheckReferences collects unresolved target-class references in a single
// scenario. It never fails: the result is empty when every non-ego role and
// every target-ref param names a declared target class.
func (v *Validator) CheckReferences(s *domain.Scenario) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	declared := make(map[string]bool, len(s.Targets))
	for _, t := range s.Targets {
		declared[t.Name] = true
	}

	for _, action := range s.Actions {
		if class, ok := action.Role.Class(); ok && !declared[class] {
			issues = append(issues, domain.ValidationIssue{
				Scenario: s.Name,
				Action:   action.Name,
				Field:    "role",
				Ref:      class,
			})
		}
		for i, p := range action.Params {
			if p.Type == domain.KindTargetRef && !declared[p.Class] {
				issues = append(issues, domain.ValidationIssue{
					Scenario: s.Name,
					Action:   action.Name,
					Field:    fmt.Sprintf("params[%d]", i),
					Ref:      p.Class,
				})
			}
		}
	}

	return issues
}
