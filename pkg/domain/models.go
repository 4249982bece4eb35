package domain

import "fmt"

// Scenario is one dataset-generation domain: a named bundle of admissible
// locations, agent actions, and target entity classes. Scenarios are loaded
// once from scenarios.yaml and are read-only afterwards.
//
// Actions and Targets keep their declaration order from the configuration
// file; re-serialization must reproduce the original shape.
type Scenario struct {
	Name      string
	Locations []string
	Actions   []*ActionSpec
	Targets   []*TargetSpec
}

// Action returns the action with the given name, or nil if the scenario
// does not declare it.
func (s *Scenario) Action(name string) *ActionSpec {
	for _, a := range s.Actions {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// Target returns the target class with the given name, or nil if the
// scenario does not declare it.
func (s *Scenario) Target(name string) *TargetSpec {
	for _, t := range s.Targets {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// HasLocation reports whether loc is one of the scenario's declared locations.
func (s *Scenario) HasLocation(loc string) bool {
	for _, l := range s.Locations {
		if l == loc {
			return true
		}
	}
	return false
}

// Role identifies who performs an action: the agent itself (ego) or an
// instance of a target class. Non-ego roles normally name a target class
// declared in the same scenario, but the sample configuration also uses
// conventional class names (sr_target, traffic_target) with no matching
// declaration; those are reported as warnings, not errors.
type Role string

// RoleEgo is the acting agent itself.
const RoleEgo Role = "ego"

// IsEgo reports whether the role is the acting agent.
func (r Role) IsEgo() bool {
	return r == RoleEgo
}

// Class returns the target-class name a non-ego role refers to, and ok=false
// for the ego role.
func (r Role) Class() (string, bool) {
	if r.IsEgo() {
		return "", false
	}
	return string(r), true
}

// ParamKindType discriminates the ParamKind sum type.
type ParamKindType int

const (
	// KindItem is a free-form object name, drawn from the object lexicon.
	KindItem ParamKindType = iota

	// KindLocation is one of the scenario's declared locations.
	KindLocation

	// KindEgo is the agent itself; only meaningful for zero-argument actions.
	KindEgo

	// KindTargetRef references a target class by name. The class should be
	// declared in the scenario's targets, but conventional references to
	// undeclared classes are tolerated (see ValidationIssue).
	KindTargetRef
)

func (t ParamKindType) String() string {
	switch t {
	case KindItem:
		return "item"
	case KindLocation:
		return "location"
	case KindEgo:
		return "ego"
	case KindTargetRef:
		return "target_ref"
	default:
		return fmt.Sprintf("ParamKindType(%d)", int(t))
	}
}

// ParamKind is the semantic type of one action argument slot. It is a sum
// type: Item | Location | EgoSelf | TargetRef(class). The configuration's
// string tokens are resolved into ParamKind values eagerly at load time, so
// consumers never see free-form kind strings.
type ParamKind struct {
	Type ParamKindType

	// Class is the referenced target-class name; set only for KindTargetRef.
	Class string
}

// ItemParam returns the free-form object-name kind.
func ItemParam() ParamKind { return ParamKind{Type: KindItem} }

// LocationParam returns the declared-location kind.
func LocationParam() ParamKind { return ParamKind{Type: KindLocation} }

// EgoParam returns the agent-itself kind.
func EgoParam() ParamKind { return ParamKind{Type: KindEgo} }

// TargetParam returns a target-class reference kind for the given class name.
func TargetParam(class string) ParamKind {
	return ParamKind{Type: KindTargetRef, Class: class}
}

// Token returns the configuration token this kind was parsed from.
func (p ParamKind) Token() string {
	if p.Type == KindTargetRef {
		return p.Class
	}
	return p.Type.String()
}

func (p ParamKind) String() string {
	if p.Type == KindTargetRef {
		return "target_ref(" + p.Class + ")"
	}
	return p.Type.String()
}

// ActionSpec is a verb the agent may perform: an actor role plus an ordered
// parameter-kind signature. The generator consults Params to know which kind
// of value to sample for each argument slot.
type ActionSpec struct {
	Name   string
	Role   Role
	Params []ParamKind
}

// Arity returns the number of argument slots.
func (a *ActionSpec) Arity() int {
	return len(a.Params)
}

// ParamTokens returns the configuration tokens of the parameter signature,
// in order. Useful for logging and re-serialization.
func (a *ActionSpec) ParamTokens() []string {
	tokens := make([]string, len(a.Params))
	for i, p := range a.Params {
		tokens[i] = p.Token()
	}
	return tokens
}

// TargetSpec is a category of entity the agent reasons about. Properties are
// observable state variables; their domains (boolean or enum) are documented
// by comment convention in the configuration file and are not machine
// enforced here.
type TargetSpec struct {
	Name       string
	Properties []string
}

// ValidationIssue is a non-fatal referential warning: a role or parameter
// names a target class that the scenario does not declare. The sample
// configuration itself contains such references (sr_target, traffic_target,
// lane, color), so these never abort a load by default.
type ValidationIssue struct {
	Scenario string
	Action   string
	Field    string // "role" or "params[i]"
	Ref      string // the unresolved target-class name
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("scenario %q action %q: %s references undeclared target class %q",
		i.Scenario, i.Action, i.Field, i.Ref)
}
