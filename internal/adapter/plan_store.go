package adapter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	m "repkg.dev/repkg/internal/model"
)

// PlanStore loads migration plans from disk.
type PlanStore interface {
	LoadPlan(path m.Path) (m.Plan, error)
}

// YAMLPlanStore reads plans from YAML files.
type YAMLPlanStore struct{}

// NewYAMLPlanStore constructs a YAMLPlanStore.
func NewYAMLPlanStore() *YAMLPlanStore {
	return &YAMLPlanStore{}
}

// LoadPlan parses the plan file at path, fills in source-spec defaults and
// validates the tables. A plan that fails validation is rejected whole;
// nothing has touched the tree at this point.
func (s *YAMLPlanStore) LoadPlan(path m.Path) (m.Plan, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Plan{}, fmt.Errorf("read plan: %w", err)
	}

	var plan m.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return m.Plan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}

	applyDefaults(&plan)

	if err := validate(plan); err != nil {
		return m.Plan{}, fmt.Errorf("invalid plan %s: %w", path, err)
	}

	return plan, nil
}

func applyDefaults(plan *m.Plan) {
	if len(plan.Source.Extensions) == 0 {
		plan.Source.Extensions = append([]string(nil), m.DefaultExtensions...)
	}

	if plan.Source.Keyword == "" {
		plan.Source.Keyword = m.DefaultDeclarationKeyword
	}

	if plan.Source.ImportKeyword == "" {
		plan.Source.ImportKeyword = m.DefaultImportKeyword
	}
}

func validate(plan m.Plan) error {
	if strings.TrimSpace(string(plan.Root)) == "" {
		return fmt.Errorf("root is required")
	}

	for i, rule := range plan.Moves {
		if rule.From == "" || rule.To == "" {
			return fmt.Errorf("move rule %d: both from and to are required", i)
		}
	}

	for i, rule := range plan.Imports {
		if err := validateQualifiedName(rule.Old); err != nil {
			return fmt.Errorf("import rule %d: old: %w", i, err)
		}

		if err := validateQualifiedName(rule.New); err != nil {
			return fmt.Errorf("import rule %d: new: %w", i, err)
		}
	}

	return nil
}

// validateQualifiedName requires a dotted name with at least two non-empty
// segments, so that the wildcard form has a parent namespace to rewrite.
func validateQualifiedName(name string) error {
	segments := strings.Split(name, ".")
	if len(segments) < 2 {
		return fmt.Errorf("%q is not a dotted qualified name", name)
	}

	for _, segment := range segments {
		if segment == "" {
			return fmt.Errorf("%q has an empty segment", name)
		}
	}

	return nil
}
