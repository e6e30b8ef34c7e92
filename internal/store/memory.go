package store

import (
	"sort"

	"github.com/verdanthealth/trackrules/internal/types"
)

// MemoryStore is a map-backed implementation of the collaborator store
// contracts. It backs tests and offline tooling; listing methods return
// deterministic UID order so batch mapping output is reproducible.
type MemoryStore struct {
	rules     map[types.UID]types.ProgramRule
	variables map[types.UID]types.ProgramRuleVariable
	elements  map[types.UID]types.DataElement
	constants map[types.UID]types.Constant
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		rules:     make(map[types.UID]types.ProgramRule),
		variables: make(map[types.UID]types.ProgramRuleVariable),
		elements:  make(map[types.UID]types.DataElement),
		constants: make(map[types.UID]types.Constant),
	}
}

// PutRule stores a rule, assigning a fresh UID when absent.
func (s *MemoryStore) PutRule(rule types.ProgramRule) types.ProgramRule {
	if rule.UID == "" {
		rule.UID = types.NewUID()
	}
	s.rules[rule.UID] = rule
	return rule
}

// PutVariable stores a variable, assigning a fresh UID when absent.
func (s *MemoryStore) PutVariable(v types.ProgramRuleVariable) types.ProgramRuleVariable {
	if v.UID == "" {
		v.UID = types.NewUID()
	}
	s.variables[v.UID] = v
	return v
}

// PutDataElement stores a data element, assigning a fresh UID when absent.
func (s *MemoryStore) PutDataElement(de types.DataElement) types.DataElement {
	if de.UID == "" {
		de.UID = types.NewUID()
	}
	s.elements[de.UID] = de
	return de
}

// PutConstant stores a constant, assigning a fresh UID when absent.
func (s *MemoryStore) PutConstant(c types.Constant) types.Constant {
	if c.UID == "" {
		c.UID = types.NewUID()
	}
	s.constants[c.UID] = c
	return c
}

// AllRules returns every stored rule ordered by UID.
func (s *MemoryStore) AllRules() ([]types.ProgramRule, error) {
	out := make([]types.ProgramRule, 0, len(s.rules))
	for _, r := range s.rules {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

// RulesForProgram returns the stored rules of one program ordered by UID.
func (s *MemoryStore) RulesForProgram(program types.UID) ([]types.ProgramRule, error) {
	out := make([]types.ProgramRule, 0)
	for _, r := range s.rules {
		if r.Program == program {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

// AllVariables returns every stored variable ordered by UID.
func (s *MemoryStore) AllVariables() ([]types.ProgramRuleVariable, error) {
	out := make([]types.ProgramRuleVariable, 0, len(s.variables))
	for _, v := range s.variables {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

// VariablesForProgram returns the stored variables of one program ordered by UID.
func (s *MemoryStore) VariablesForProgram(program types.UID) ([]types.ProgramRuleVariable, error) {
	out := make([]types.ProgramRuleVariable, 0)
	for _, v := range s.variables {
		if v.Program == program {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

// DataElementByUID resolves a stored data element.
func (s *MemoryStore) DataElementByUID(uid types.UID) (types.DataElement, bool, error) {
	de, ok := s.elements[uid]
	return de, ok, nil
}

// AllConstants returns every stored constant ordered by UID.
func (s *MemoryStore) AllConstants() ([]types.Constant, error) {
	out := make([]types.Constant, 0, len(s.constants))
	for _, c := range s.constants {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UID < out[j].UID })
	return out, nil
}

// CatalogLocalizer resolves tokens from a static catalog, falling back to
// the token itself for unknown tokens.
type CatalogLocalizer map[string]string

// String implements Localizer.
func (c CatalogLocalizer) String(token string) string {
	if s, ok := c[token]; ok {
		return s
	}
	return token
}
