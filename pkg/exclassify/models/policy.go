package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// KeywordLabel pairs a keyword with the label assigned when it matches.
type KeywordLabel struct {
	Keyword string `json:"keyword"`
	Label   string `json:"label"`
}

// ColumnRule holds the ordered keywords checked against one column.
type ColumnRule struct {
	Column   string         `json:"column"`
	Keywords []KeywordLabel `json:"keywords"`
}

// Policy is an ordered list of column rules. Rule order and keyword order
// decide which label wins when several keywords match.
type Policy []ColumnRule

// Columns returns the policy's column names in order.
func (p Policy) Columns() []string {
	cols := make([]string, 0, len(p))
	for _, rule := range p {
		cols = append(cols, rule.Column)
	}
	return cols
}

// UnmarshalYAML decodes a column -> keyword -> label mapping while keeping
// the order in which entries appear in the document.
func (p *Policy) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: policy must be a mapping of column to keywords", node.Line)
	}

	policy := make(Policy, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		colNode, kwNode := node.Content[i], node.Content[i+1]
		if colNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: column name must be a scalar", colNode.Line)
		}
		if kwNode.Kind != yaml.MappingNode {
			return fmt.Errorf("line %d: keywords for column %q must be a mapping of keyword to label", kwNode.Line, colNode.Value)
		}

		rule := ColumnRule{Column: colNode.Value}
		for j := 0; j+1 < len(kwNode.Content); j += 2 {
			key, val := kwNode.Content[j], kwNode.Content[j+1]
			if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: keyword and label under column %q must be scalars", key.Line, colNode.Value)
			}
			rule.Keywords = append(rule.Keywords, KeywordLabel{Keyword: key.Value, Label: val.Value})
		}
		policy = append(policy, rule)
	}

	*p = policy
	return nil
}

// MarshalYAML encodes the policy as an ordered mapping.
func (p Policy) MarshalYAML() (interface{}, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, rule := range p {
		kw := &yaml.Node{Kind: yaml.MappingNode}
		for _, pair := range rule.Keywords {
			kw.Content = append(kw.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Keyword},
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: pair.Label},
			)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: rule.Column},
			kw,
		)
	}
	return root, nil
}
