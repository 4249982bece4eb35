package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nl2tl/scenario-registry/pkg/domain"
)

// Marshal re-serializes a configuration to YAML in the same structural shape
// Parse accepts: scenarios, actions, and targets in declaration order, with
// sequences rendered in flow style as in the sample file. Empty actions or
// targets sections are omitted, matching a source that never declared them.
//
// Marshal(Parse(src)) is a structural fixed point: parsing the output yields
// a Config equal to the input.
func Marshal(cfg *Config) ([]byte, error) {
	root := mappingNode()
	for _, scenario := range cfg.Scenarios {
		root.Content = append(root.Content, scalarNode(scenario.Name), scenarioNode(scenario))
	}

	out, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize config: %w", err)
	}
	return out, nil
}

func scenarioNode(s *domain.Scenario) *yaml.Node {
	node := mappingNode()
	node.Content = append(node.Content, scalarNode("locations"), flowSeqNode(s.Locations))

	if len(s.Actions) > 0 {
		actions := mappingNode()
		for _, a := range s.Actions {
			actions.Content = append(actions.Content, scalarNode(a.Name), actionNode(a))
		}
		node.Content = append(node.Content, scalarNode("actions"), actions)
	}

	if len(s.Targets) > 0 {
		targets := mappingNode()
		for _, t := range s.Targets {
			target := mappingNode()
			target.Content = append(target.Content, scalarNode("properties"), flowSeqNode(t.Properties))
			targets.Content = append(targets.Content, scalarNode(t.Name), target)
		}
		node.Content = append(node.Content, scalarNode("targets"), targets)
	}

	return node
}

func actionNode(a *domain.ActionSpec) *yaml.Node {
	node := mappingNode()
	node.Content = append(node.Content,
		scalarNode("role"), scalarNode(string(a.Role)),
		scalarNode("params"), flowSeqNode(a.ParamTokens()),
	)
	return node
}

func mappingNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func flowSeqNode(values []string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range values {
		node.Content = append(node.Content, scalarNode(v))
	}
	return node
}
