package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes for the scenario registry.
const (
	// Schema errors (structural, fatal at load time)
	ErrCodeSchemaInvalid  = "SCHEMA_INVALID"
	ErrCodeConfigNotFound = "CONFIG_NOT_FOUND"

	// Lookup errors
	ErrCodeScenarioNotFound = "SCENARIO_NOT_FOUND"

	// Referential errors (only fatal when strict checking is enabled)
	ErrCodeValidationFailed = "VALIDATION_FAILED"

	// Lexicon errors
	ErrCodeLexiconInvalid = "LEXICON_INVALID"
)

// ScenarioError represents an error in the scenario registry.
type ScenarioError struct {
	Code    string
	Message string
	Err     error
}

func (e *ScenarioError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// NewScenarioError creates a new ScenarioError.
func NewScenarioError(code, message string, err error) *ScenarioError {
	return &ScenarioError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Domain-specific error constructors

// ErrSchemaInvalid returns a fatal structural error. It always names the
// scenario and the malformed field so a load failure is actionable.
func ErrSchemaInvalid(scenario, field, reason string) *ScenarioError {
	return &ScenarioError{
		Code:    ErrCodeSchemaInvalid,
		Message: fmt.Sprintf("scenario %q: invalid %s: %s", scenario, field, reason),
	}
}

// ErrConfigNotFound wraps a failure to read the configuration source.
func ErrConfigNotFound(path string, err error) *ScenarioError {
	return &ScenarioError{
		Code:    ErrCodeConfigNotFound,
		Message: fmt.Sprintf("cannot read config file: %s", path),
		Err:     err,
	}
}

// ErrScenarioNotFound returns an error when a scenario name is not registered.
func ErrScenarioNotFound(name string) *ScenarioError {
	return &ScenarioError{
		Code:    ErrCodeScenarioNotFound,
		Message: fmt.Sprintf("scenario not found: %s", name),
	}
}

// ErrValidationFailed returns an error for an unresolved reference promoted
// to fatal by strict checking.
func ErrValidationFailed(scenario, detail string) *ScenarioError {
	return &ScenarioError{
		Code:    ErrCodeValidationFailed,
		Message: fmt.Sprintf("scenario %q: %s", scenario, detail),
	}
}

// ErrLexiconInvalid returns an error for a malformed lexicon source.
func ErrLexiconInvalid(path, reason string) *ScenarioError {
	return &ScenarioError{
		Code:    ErrCodeLexiconInvalid,
		Message: fmt.Sprintf("lexicon %s: %s", path, reason),
	}
}

// IsSchemaError reports whether err is (or wraps) a structural schema error.
func IsSchemaError(err error) bool {
	return hasCode(err, ErrCodeSchemaInvalid)
}

// IsNotFound reports whether err is (or wraps) a scenario-not-found error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeScenarioNotFound)
}

func hasCode(err error, code string) bool {
	var se *ScenarioError
	if stderrors.As(err, &se) {
		return se.Code == code
	}
	return false
}
