package review

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Description is the pull request description written by the review service.
type Description struct {
	Title       string       `yaml:"title"`
	Type        Types        `yaml:"type"`
	Description string       `yaml:"description"`
	Files       []FileChange `yaml:"pr_files"`
}

// FileChange summarizes the changes to one file.
type FileChange struct {
	Filename       string `yaml:"filename"`
	ChangesTitle   string `yaml:"changes_title"`
	ChangesSummary string `yaml:"changes_summary"`
	Label          string `yaml:"label"`
}

// Types are the kinds of a pull request, e.g. "Bug fix" or "Enhancement". A single type may be
// written as a scalar.
type Types []string

func (t *Types) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Types{node.Value}
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*t = list
	return nil
}

// ParseDescription parses a pull request description. It returns nil without an error for an
// empty description. On error, callers are expected to show the description as raw text.
func ParseDescription(s string) (*Description, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var d Description
	if err := yaml.Unmarshal([]byte(s), &d); err != nil {
		return nil, fmt.Errorf("parsing description: %v", err)
	}
	return &d, nil
}
