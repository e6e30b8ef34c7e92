// Package mapper translates persisted program rule definitions into the
// engine-neutral representation in internal/engine, and runtime enrollment
// and event records into the value containers the evaluation engine
// consumes.
//
// The translation boundary is fault-isolating: a malformed rule or variable
// is logged and dropped without affecting its siblings. The one non-local
// failure is a dangling data-element reference
// (types.ErrDataElementNotFound), which indicates data corruption rather
// than an authoring mistake and surfaces to the caller.
package mapper

import (
	"github.com/verdanthealth/trackrules/internal/store"
)

// Mapper is one translation session over the collaborator stores.
//
// A Mapper carries a session-scoped value-type cache with at-most-one
// backing query per data element; create one Mapper per top-level mapping
// call and discard it after. A Mapper is not safe for concurrent use.
type Mapper struct {
	rules      store.RuleStore
	variables  store.VariableStore
	constants  store.ConstantStore
	localizer  store.Localizer
	valueTypes *valueTypeCache
}

// New returns a Mapper reading from the given stores.
func New(rules store.RuleStore, variables store.VariableStore, elements store.DataElementStore,
	constants store.ConstantStore, localizer store.Localizer) *Mapper {
	return &Mapper{
		rules:      rules,
		variables:  variables,
		constants:  constants,
		localizer:  localizer,
		valueTypes: newValueTypeCache(elements),
	}
}
