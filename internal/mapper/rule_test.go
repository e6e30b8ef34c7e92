package mapper

import (
	"testing"

	"github.com/verdanthealth/trackrules/internal/engine"
	"github.com/verdanthealth/trackrules/internal/store"
	"github.com/verdanthealth/trackrules/internal/types"
)

func TestMapRule(t *testing.T) {
	priority := 5

	m := newTestMapper(store.NewMemoryStore())

	rule, ok := m.MapRule(types.ProgramRule{
		UID:          "r1",
		Name:         "high temperature",
		Priority:     &priority,
		Condition:    "#{temperature} > 40",
		ProgramStage: &types.ProgramStage{UID: "ps1"},
		Actions: []types.ProgramRuleAction{
			{Type: types.ActionTypeShowWarning, Content: "too hot", DataElement: &types.DataElement{UID: "de1"}},
			{Type: types.ActionTypeSetMandatoryField, DataElement: &types.DataElement{UID: "de2"}},
		},
	})
	if !ok {
		t.Fatal("MapRule() = false, want true")
	}

	if rule.Name != "high temperature" {
		t.Errorf("Name = %q", rule.Name)
	}
	if rule.ProgramStage != "ps1" {
		t.Errorf("ProgramStage = %q, want ps1", rule.ProgramStage)
	}
	if rule.Priority == nil || *rule.Priority != 5 {
		t.Errorf("Priority = %v, want 5", rule.Priority)
	}
	if rule.Condition != "#{temperature} > 40" {
		t.Errorf("Condition = %q", rule.Condition)
	}
	if len(rule.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, want 2", len(rule.Actions))
	}
	if rule.Actions[0].Kind() != engine.ActionKindShowWarning {
		t.Errorf("Actions[0].Kind() = %q", rule.Actions[0].Kind())
	}
	if rule.Actions[1].Kind() != engine.ActionKindSetMandatoryField {
		t.Errorf("Actions[1].Kind() = %q", rule.Actions[1].Kind())
	}
}

func TestMapRule_ProgramScoped(t *testing.T) {
	m := newTestMapper(store.NewMemoryStore())

	rule, ok := m.MapRule(types.ProgramRule{UID: "r1", Condition: "true"})
	if !ok {
		t.Fatal("MapRule() = false, want true")
	}
	if rule.ProgramStage != "" {
		t.Errorf("ProgramStage = %q, want empty for program-scoped rule", rule.ProgramStage)
	}
	if rule.Priority != nil {
		t.Errorf("Priority = %v, want nil", rule.Priority)
	}
}

func TestMapRule_ActionFailureDropsRule(t *testing.T) {
	m := newTestMapper(store.NewMemoryStore())

	_, ok := m.MapRule(types.ProgramRule{
		UID: "r1",
		Actions: []types.ProgramRuleAction{
			{Type: types.ActionTypeShowError, Content: "fine"},
			{Type: types.ActionTypeHideProgramStage}, // no stage reference
		},
	})
	if ok {
		t.Fatal("MapRule() = true for rule with invalid action, want false")
	}
}

func TestMapRuleList_FiltersAndPreservesOrder(t *testing.T) {
	m := newTestMapper(store.NewMemoryStore())

	rules := []types.ProgramRule{
		{UID: "r1", Name: "first"},
		{UID: "r2", Name: "broken", Actions: []types.ProgramRuleAction{
			{Type: types.ActionTypeHideSection}, // no section reference
		}},
		{UID: "r3", Name: "third"},
	}

	got := m.MapRuleList(rules)
	if len(got) != 2 {
		t.Fatalf("MapRuleList() returned %d rules, want 2", len(got))
	}
	if got[0].Name != "first" || got[1].Name != "third" {
		t.Errorf("MapRuleList() order not preserved: %q, %q", got[0].Name, got[1].Name)
	}
}

func TestMapRulesForProgram(t *testing.T) {
	ms := store.NewMemoryStore()
	ms.PutRule(types.ProgramRule{Program: "prog1", Name: "mine", Condition: "true"})
	ms.PutRule(types.ProgramRule{Program: "prog2", Name: "other", Condition: "true"})

	m := newTestMapper(ms)
	got, err := m.MapRulesForProgram("prog1")
	if err != nil {
		t.Fatalf("MapRulesForProgram() unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("MapRulesForProgram() returned %d rules, want 1", len(got))
	}
	if got[0].Name != "mine" {
		t.Errorf("MapRulesForProgram() returned wrong rule: %q", got[0].Name)
	}
}

func TestMapRules(t *testing.T) {
	ms := store.NewMemoryStore()
	ms.PutRule(types.ProgramRule{Program: "prog1", Name: "a", Condition: "true"})
	ms.PutRule(types.ProgramRule{Program: "prog2", Name: "b", Condition: "false"})

	m := newTestMapper(ms)
	got, err := m.MapRules()
	if err != nil {
		t.Fatalf("MapRules() unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("MapRules() returned %d rules, want 2", len(got))
	}
}
