package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nl2tl/scenario-registry/pkg/domain"
	apperrors "github.com/nl2tl/scenario-registry/pkg/errors"
)

// Parse decodes scenario definitions from YAML source.
//
// The document is walked node by node instead of being unmarshalled into
// maps: scenarios, actions, and targets are declared as YAML mappings whose
// key order is significant, and stock map decoding would lose it. Comments
// carry no semantic weight and are discarded.
//
// Parse enforces the structural shape only (required keys, node kinds,
// duplicate keys). Value rules live in Validator.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg := &Config{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document: no scenarios.
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		// Comments-only document: no scenarios.
		return cfg, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, apperrors.ErrSchemaInvalid("", "document", "top level must be a mapping of scenario names")
	}

	seen := make(map[string]bool)
	for i := 0; i < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if seen[name] {
			return nil, apperrors.ErrSchemaInvalid(name, "name", "duplicate scenario name")
		}
		seen[name] = true

		scenario, err := parseScenario(name, root.Content[i+1])
		if err != nil {
			return nil, err
		}
		cfg.Scenarios = append(cfg.Scenarios, scenario)
	}

	return cfg, nil
}

func parseScenario(name string, node *yaml.Node) (*domain.Scenario, error) {
	if node.Kind != yaml.MappingNode {
		return nil, apperrors.ErrSchemaInvalid(name, "body", "scenario must be a mapping")
	}

	scenario := &domain.Scenario{Name: name}
	hasLocations := false

	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "locations":
			locs, err := parseStringSeq(name, "locations", value)
			if err != nil {
				return nil, err
			}
			scenario.Locations = locs
			hasLocations = true
		case "actions":
			actions, err := parseActions(name, value)
			if err != nil {
				return nil, err
			}
			scenario.Actions = actions
		case "targets":
			targets, err := parseTargets(name, value)
			if err != nil {
				return nil, err
			}
			scenario.Targets = targets
		default:
			return nil, apperrors.ErrSchemaInvalid(name, key, "unknown scenario key")
		}
	}

	// A scenario with zero actions or zero targets still loads; one with no
	// locations does not.
	if !hasLocations {
		return nil, apperrors.ErrSchemaInvalid(name, "locations", "missing required key")
	}

	return scenario, nil
}

func parseActions(scenario string, node *yaml.Node) ([]*domain.ActionSpec, error) {
	if node.Kind != yaml.MappingNode {
		return nil, apperrors.ErrSchemaInvalid(scenario, "actions", "must be a mapping of action names")
	}

	var actions []*domain.ActionSpec
	seen := make(map[string]bool)
	for i := 0; i < len(node.Content); i += 2 {
		name := node.Content[i].Value
		if seen[name] {
			return nil, apperrors.ErrSchemaInvalid(scenario, "actions."+name, "duplicate action name")
		}
		seen[name] = true

		action, err := parseAction(scenario, name, node.Content[i+1])
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func parseAction(scenario, name string, node *yaml.Node) (*domain.ActionSpec, error) {
	field := "actions." + name
	if node.Kind != yaml.MappingNode {
		return nil, apperrors.ErrSchemaInvalid(scenario, field, "action must be a mapping")
	}

	action := &domain.ActionSpec{Name: name}
	hasRole, hasParams := false, false

	for i := 0; i < len(node.Content); i += 2 {
		key, value := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "role":
			if value.Kind != yaml.ScalarNode || value.Value == "" {
				return nil, apperrors.ErrSchemaInvalid(scenario, field+".role", "must be a non-empty scalar")
			}
			action.Role = domain.Role(value.Value)
			hasRole = true
		case "params":
			tokens, err := parseStringSeq(scenario, field+".params", value)
			if err != nil {
				return nil, err
			}
			action.Params = resolveParams(tokens)
			hasParams = true
		default:
			return nil, apperrors.ErrSchemaInvalid(scenario, field+"."+key, "unknown action key")
		}
	}

	if !hasRole {
		return nil, apperrors.ErrSchemaInvalid(scenario, field+".role", "missing required key")
	}
	if !hasParams {
		return nil, apperrors.ErrSchemaInvalid(scenario, field+".params", "missing required key")
	}

	return action, nil
}

// resolveParams maps wire tokens onto the ParamKind sum type. The builtin
// tokens are fixed; everything else is a target-class reference whose
// resolution is checked later against the scenario's declared targets.
func resolveParams(tokens []string) []domain.ParamKind {
	params := make([]domain.ParamKind, len(tokens))
	for i, tok := range tokens {
		switch tok {
		case "item":
			params[i] = domain.ItemParam()
		case "location":
			params[i] = domain.LocationParam()
		case "ego":
			params[i] = domain.EgoParam()
		default:
			params[i] = domain.TargetParam(tok)
		}
	}
	return params
}

func parseTargets(scenario string, node *yaml.Node) ([]*domain.TargetSpec, error) {
	if node.Kind != yaml.MappingNode {
		return nil, apperrors.ErrSchemaInvalid(scenario, "targets", "must be a mapping of target-class names")
	}

	var targets []*domain.TargetSpec
	seen := make(map[string]bool)
	for i := 0; i < len(node.Content); i += 2 {
		name, value := node.Content[i].Value, node.Content[i+1]
		if seen[name] {
			return nil, apperrors.ErrSchemaInvalid(scenario, "targets."+name, "duplicate target-class name")
		}
		seen[name] = true

		if value.Kind != yaml.MappingNode {
			return nil, apperrors.ErrSchemaInvalid(scenario, "targets."+name, "target class must be a mapping")
		}

		target := &domain.TargetSpec{Name: name}
		hasProperties := false
		for j := 0; j < len(value.Content); j += 2 {
			key := value.Content[j].Value
			if key != "properties" {
				return nil, apperrors.ErrSchemaInvalid(scenario, "targets."+name+"."+key, "unknown target key")
			}
			props, err := parseStringSeq(scenario, "targets."+name+".properties", value.Content[j+1])
			if err != nil {
				return nil, err
			}
			target.Properties = props
			hasProperties = true
		}
		if !hasProperties {
			return nil, apperrors.ErrSchemaInvalid(scenario, "targets."+name+".properties", "missing required key")
		}

		targets = append(targets, target)
	}
	return targets, nil
}

func parseStringSeq(scenario, field string, node *yaml.Node) ([]string, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, apperrors.ErrSchemaInvalid(scenario, field, "must be a sequence")
	}
	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, apperrors.ErrSchemaInvalid(scenario, field, "entries must be scalars")
		}
		out = append(out, item.Value)
	}
	return out, nil
}
