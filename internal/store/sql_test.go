package store

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/verdanthealth/trackrules/internal/core/db"
	"github.com/verdanthealth/trackrules/internal/types"
)

func setupTestStore(t *testing.T) (*sqlx.DB, *SQLStore) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store_test.db")
	conn, err := db.Open("sqlite://" + path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.MigrateUp(conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	queries, err := db.LoadQueries(conn)
	if err != nil {
		t.Fatalf("failed to load queries: %v", err)
	}

	return conn, NewSQLStore(queries)
}

func seedMetadata(t *testing.T, conn *sqlx.DB) {
	t.Helper()

	stmts := []struct {
		sql  string
		args []interface{}
	}{
		{"INSERT INTO programs (uid, name) VALUES (?, ?)", []interface{}{"prog1", "Malaria care"}},
		{"INSERT INTO programs (uid, name) VALUES (?, ?)", []interface{}{"prog2", "TB care"}},
		{"INSERT INTO program_stages (uid, program_uid, name) VALUES (?, ?, ?)",
			[]interface{}{"ps1", "prog1", "First visit"}},
		{"INSERT INTO program_stage_sections (uid, program_stage_uid, name) VALUES (?, ?, ?)",
			[]interface{}{"ss1", "ps1", "Vitals"}},
		{"INSERT INTO data_elements (uid, name, form_name, display_form_name, value_type) VALUES (?, ?, ?, ?, ?)",
			[]interface{}{"de1", "weight_raw", "Weight", "Weight (kg)", "NUMBER"}},
		{"INSERT INTO tracked_entity_attributes (uid, name, display_name, display_form_name, value_type) VALUES (?, ?, ?, ?, ?)",
			[]interface{}{"at1", "age_raw", "Age (years)", "Age", "INTEGER"}},
		{"INSERT INTO constants (uid, name, display_name, display_form_name) VALUES (?, ?, ?, ?)",
			[]interface{}{"c1", "pi_raw", "Pi", ""}},

		{"INSERT INTO program_rules (uid, program_uid, program_stage_uid, name, priority, condition) VALUES (?, ?, ?, ?, ?, ?)",
			[]interface{}{"r1", "prog1", "ps1", "high weight", 3, "#{weight} > 100"}},
		{"INSERT INTO program_rules (uid, program_uid, program_stage_uid, name, priority, condition) VALUES (?, ?, NULL, ?, NULL, ?)",
			[]interface{}{"r2", "prog2", "age check", "#{age} < 0"}},

		{"INSERT INTO program_rule_actions (uid, rule_uid, sort_order, action_type, content, data, data_element_uid) VALUES (?, ?, ?, ?, ?, ?, ?)",
			[]interface{}{"a2", "r1", 1, "SHOWWARNING", "too heavy", "", "de1"}},
		{"INSERT INTO program_rule_actions (uid, rule_uid, sort_order, action_type, content, data, section_uid) VALUES (?, ?, ?, ?, ?, ?, ?)",
			[]interface{}{"a1", "r1", 0, "HIDESECTION", "", "", "ss1"}},
		{"INSERT INTO program_rule_actions (uid, rule_uid, sort_order, action_type, content, data, attribute_uid, location, template_uid) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
			[]interface{}{"a3", "r2", 0, "DISPLAYTEXT", "age warning", "#{age}", "at1", "indicators", "tpl1"}},

		{"INSERT INTO program_rule_variables (uid, program_uid, name, display_name, source_type, attribute_uid) VALUES (?, ?, ?, ?, ?, ?)",
			[]interface{}{"v1", "prog1", "age", "Age", "TEI_ATTRIBUTE", "at1"}},
		{"INSERT INTO program_rule_variables (uid, program_uid, name, source_type, data_element_uid) VALUES (?, ?, ?, ?, ?)",
			[]interface{}{"v2", "prog1", "weight", "DATAELEMENT_CURRENT_EVENT", "de1"}},
		{"INSERT INTO program_rule_variables (uid, program_uid, name, source_type, data_element_uid) VALUES (?, ?, ?, ?, ?)",
			[]interface{}{"v3", "prog2", "dangling", "DATAELEMENT_CURRENT_EVENT", "nowhere"}},
	}

	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt.sql, stmt.args...); err != nil {
			t.Fatalf("seed failed: %v\n%s", err, stmt.sql)
		}
	}
}

func TestSQLStore_Rules(t *testing.T) {
	conn, s := setupTestStore(t)
	seedMetadata(t, conn)

	rules, err := s.AllRules()
	if err != nil {
		t.Fatalf("AllRules failed: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("AllRules returned %d rules, want 2", len(rules))
	}

	r1 := rules[0]
	if r1.UID != "r1" || r1.Program != "prog1" || r1.Name != "high weight" {
		t.Errorf("r1 identity = %#v", r1)
	}
	if r1.Priority == nil || *r1.Priority != 3 {
		t.Errorf("r1.Priority = %v, want 3", r1.Priority)
	}
	if r1.ProgramStage == nil || r1.ProgramStage.UID != "ps1" || r1.ProgramStage.Name != "First visit" {
		t.Errorf("r1.ProgramStage = %#v", r1.ProgramStage)
	}
	if len(r1.Actions) != 2 {
		t.Fatalf("r1 has %d actions, want 2", len(r1.Actions))
	}
	// sort_order, not insertion order
	if r1.Actions[0].UID != "a1" || r1.Actions[1].UID != "a2" {
		t.Errorf("r1 action order = %q, %q", r1.Actions[0].UID, r1.Actions[1].UID)
	}
	if r1.Actions[0].Section == nil || r1.Actions[0].Section.UID != "ss1" {
		t.Errorf("a1.Section = %#v", r1.Actions[0].Section)
	}
	if r1.Actions[1].DataElement == nil || r1.Actions[1].DataElement.ValueType != types.ValueTypeNumber {
		t.Errorf("a2.DataElement = %#v", r1.Actions[1].DataElement)
	}

	r2 := rules[1]
	if r2.Priority != nil {
		t.Errorf("r2.Priority = %v, want nil", r2.Priority)
	}
	if r2.ProgramStage != nil {
		t.Errorf("r2.ProgramStage = %#v, want nil", r2.ProgramStage)
	}
	if len(r2.Actions) != 1 {
		t.Fatalf("r2 has %d actions, want 1", len(r2.Actions))
	}
	a3 := r2.Actions[0]
	if a3.Attribute == nil || a3.Attribute.DisplayName != "Age (years)" {
		t.Errorf("a3.Attribute = %#v", a3.Attribute)
	}
	if a3.Location != "indicators" || a3.Template != "tpl1" {
		t.Errorf("a3 location/template = %q / %q", a3.Location, a3.Template)
	}

	forProgram, err := s.RulesForProgram("prog1")
	if err != nil {
		t.Fatalf("RulesForProgram failed: %v", err)
	}
	if len(forProgram) != 1 || forProgram[0].UID != "r1" {
		t.Errorf("RulesForProgram(prog1) = %#v", forProgram)
	}
}

func TestSQLStore_Variables(t *testing.T) {
	conn, s := setupTestStore(t)
	seedMetadata(t, conn)

	variables, err := s.AllVariables()
	if err != nil {
		t.Fatalf("AllVariables failed: %v", err)
	}
	if len(variables) != 3 {
		t.Fatalf("AllVariables returned %d variables, want 3", len(variables))
	}

	v1 := variables[0]
	if v1.UID != "v1" || v1.SourceType != types.SourceTypeAttribute {
		t.Errorf("v1 = %#v", v1)
	}
	if v1.Attribute == nil || v1.Attribute.UID != "at1" {
		t.Errorf("v1.Attribute = %#v", v1.Attribute)
	}

	v2 := variables[1]
	if v2.DataElement == nil || v2.DataElement.UID != "de1" {
		t.Errorf("v2.DataElement = %#v", v2.DataElement)
	}
	if v2.DataElementUID != "de1" {
		t.Errorf("v2.DataElementUID = %q", v2.DataElementUID)
	}

	// Dangling reference survives loading; the mapper decides what to do.
	v3 := variables[2]
	if v3.DataElement != nil {
		t.Errorf("v3.DataElement = %#v, want nil", v3.DataElement)
	}
	if v3.DataElementUID != "nowhere" {
		t.Errorf("v3.DataElementUID = %q, want nowhere", v3.DataElementUID)
	}

	forProgram, err := s.VariablesForProgram("prog1")
	if err != nil {
		t.Fatalf("VariablesForProgram failed: %v", err)
	}
	if len(forProgram) != 2 {
		t.Errorf("VariablesForProgram(prog1) returned %d variables, want 2", len(forProgram))
	}
}

func TestSQLStore_DataElements(t *testing.T) {
	conn, s := setupTestStore(t)
	seedMetadata(t, conn)

	de, found, err := s.DataElementByUID("de1")
	if err != nil {
		t.Fatalf("DataElementByUID failed: %v", err)
	}
	if !found {
		t.Fatal("DataElementByUID(de1) not found")
	}
	if de.Name != "weight_raw" || de.FormName != "Weight" ||
		de.DisplayFormName != "Weight (kg)" || de.ValueType != types.ValueTypeNumber {
		t.Errorf("DataElementByUID(de1) = %#v", de)
	}

	_, found, err = s.DataElementByUID("nowhere")
	if err != nil {
		t.Fatalf("DataElementByUID failed: %v", err)
	}
	if found {
		t.Error("DataElementByUID(nowhere) reported found")
	}
}

func TestSQLStore_Constants(t *testing.T) {
	conn, s := setupTestStore(t)
	seedMetadata(t, conn)

	constants, err := s.AllConstants()
	if err != nil {
		t.Fatalf("AllConstants failed: %v", err)
	}
	if len(constants) != 1 {
		t.Fatalf("AllConstants returned %d constants, want 1", len(constants))
	}
	if constants[0].UID != "c1" || constants[0].DisplayName != "Pi" {
		t.Errorf("constants[0] = %#v", constants[0])
	}
}

func TestSQLStore_Empty(t *testing.T) {
	_, s := setupTestStore(t)

	rules, err := s.AllRules()
	if err != nil {
		t.Fatalf("AllRules failed: %v", err)
	}
	if len(rules) != 0 {
		t.Errorf("AllRules on empty database returned %d rules", len(rules))
	}
}
