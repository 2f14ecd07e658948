package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AiroGriefwind/ScheduleMaker/pkg/core/model"
)

// AddRole validates and inserts a new role rule into the registry.
// The registry only evolves additively: there is no update or delete.
func AddRole(ctx context.Context, store RuleStore, logger *zap.Logger, roleName string, rule model.RoleRule) error {
	if roleName == "" {
		return fmt.Errorf("role name must not be empty")
	}
	if err := rule.Validate(); err != nil {
		return fmt.Errorf("invalid rule for role %q: %w", roleName, err)
	}

	rules, err := store.LoadRules()
	if err != nil {
		return fmt.Errorf("failed to load role rules: %w", err)
	}

	if _, exists := rules[roleName]; exists {
		return fmt.Errorf("%w: %s", model.ErrDuplicateRole, roleName)
	}

	// synthesized shift slots default to a headcount of 1 when no
	// explicit requirements were configured
	rule.DeriveRequirements()
	rules[roleName] = rule

	if err := store.SaveRules(rules); err != nil {
		return fmt.Errorf("failed to save role rules: %w", err)
	}

	logger.Info("Role added",
		zap.String("role", roleName),
		zap.String("rule_type", string(rule.RuleType)))
	return nil
}
