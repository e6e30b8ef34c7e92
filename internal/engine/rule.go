// Package engine defines the engine-neutral intermediate representation
// consumed by the rule evaluation engine.
//
// Every type here is a closed variant set: one concrete shape per action and
// variable kind, fully populated at construction and never mutated. The
// package depends only on the standard library so the evaluation engine can
// link it without inheriting storage or CLI dependencies.
package engine

// Rule is one evaluatable rule: a condition expression plus the ordered
// actions triggered when it holds. ProgramStage is empty for program-scoped
// rules. Priority is nil when the authoring side left it unset; lower
// priorities evaluate first and tie-breaking is left to the engine.
type Rule struct {
	ProgramStage string   `json:"programStage"`
	Priority     *int     `json:"priority,omitempty"`
	Condition    string   `json:"condition"`
	Actions      []Action `json:"actions"`
	Name         string   `json:"name"`
}
