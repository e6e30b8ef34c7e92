// Package store defines the collaborator persistence contracts the mapping
// service reads from, with a SQL implementation backed by named queries and
// an in-memory implementation for tests and tooling.
package store

import (
	"github.com/verdanthealth/trackrules/internal/types"
)

// RuleStore supplies persisted program rules with their actions attached.
type RuleStore interface {
	AllRules() ([]types.ProgramRule, error)
	RulesForProgram(program types.UID) ([]types.ProgramRule, error)
}

// VariableStore supplies persisted program rule variables.
type VariableStore interface {
	AllVariables() ([]types.ProgramRuleVariable, error)
	VariablesForProgram(program types.UID) ([]types.ProgramRuleVariable, error)
}

// DataElementStore resolves data elements by UID.
type DataElementStore interface {
	DataElementByUID(uid types.UID) (types.DataElement, bool, error)
}

// ConstantStore supplies the constants exposed to rule conditions.
type ConstantStore interface {
	AllConstants() ([]types.Constant, error)
}

// Localizer resolves a description for a fixed environment-variable token.
// Implementations fall back to the token itself for unknown tokens.
type Localizer interface {
	String(token string) string
}
