package mapper

import (
	"fmt"

	"github.com/verdanthealth/trackrules/internal/engine"
	"github.com/verdanthealth/trackrules/internal/types"
	"go.uber.org/zap"
)

/*
 * Rule mapping.
 *
 * A rule maps as a unit: any failure while mapping its action set drops the
 * whole rule. This is a stricter isolation boundary than variables: an
 * action failure is rule-fatal but batch-safe. Batch mapping preserves the
 * relative order of surviving rules.
 */

// MapRules maps every persisted rule, dropping unmappable ones.
func (m *Mapper) MapRules() ([]engine.Rule, error) {
	prs, err := m.rules.AllRules()
	if err != nil {
		return nil, fmt.Errorf("loading program rules: %w", err)
	}
	return m.MapRuleList(prs), nil
}

// MapRulesForProgram maps one program's rules, dropping unmappable ones.
func (m *Mapper) MapRulesForProgram(program types.UID) ([]engine.Rule, error) {
	prs, err := m.rules.RulesForProgram(program)
	if err != nil {
		return nil, fmt.Errorf("loading rules for program %s: %w", program, err)
	}
	return m.MapRuleList(prs), nil
}

// MapRuleList maps the given rules in order, filtering out every rule that
// fails to map. Failures are logged at debug level identifying the rule.
func (m *Mapper) MapRuleList(prs []types.ProgramRule) []engine.Rule {
	out := make([]engine.Rule, 0, len(prs))
	for _, pr := range prs {
		rule, ok := m.MapRule(pr)
		if !ok {
			continue
		}
		out = append(out, rule)
	}
	return out
}

// MapRule maps one rule definition. The second return is false when the
// rule could not be mapped; a false result never affects sibling rules.
func (m *Mapper) MapRule(pr types.ProgramRule) (engine.Rule, bool) {
	actions := make([]engine.Action, 0, len(pr.Actions))
	for _, pra := range pr.Actions {
		action, err := m.mapAction(pra)
		if err != nil {
			zap.L().Debug("invalid action in program rule",
				zap.String("rule", string(pr.UID)), zap.Error(err))
			return engine.Rule{}, false
		}
		actions = append(actions, action)
	}

	stage := ""
	if pr.ProgramStage != nil {
		stage = string(pr.ProgramStage.UID)
	}

	return engine.Rule{
		ProgramStage: stage,
		Priority:     pr.Priority,
		Condition:    pr.Condition,
		Actions:      actions,
		Name:         pr.Name,
	}, true
}
