package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/verdanthealth/trackrules/internal/core/db"
	"github.com/verdanthealth/trackrules/internal/types"
)

// SQLStore implements the store contracts on top of the named-query layer.
// Optional associations come back from LEFT JOINs as nullable columns and
// are folded into pointers here, so the mapper never sees sql.Null types.
type SQLStore struct {
	queries *db.Queries
}

// NewSQLStore wraps a loaded query set.
func NewSQLStore(queries *db.Queries) *SQLStore {
	return &SQLStore{queries: queries}
}

type ruleRow struct {
	UID       string         `db:"uid"`
	Program   string         `db:"program_uid"`
	Name      string         `db:"name"`
	Priority  sql.NullInt64  `db:"priority"`
	Condition string         `db:"condition"`
	StageUID  sql.NullString `db:"stage_uid"`
	StageName sql.NullString `db:"stage_name"`
}

type actionRow struct {
	UID        string         `db:"uid"`
	Rule       string         `db:"rule_uid"`
	ActionType string         `db:"action_type"`
	Content    string         `db:"content"`
	Data       string         `db:"data"`
	Location   sql.NullString `db:"location"`
	Template   sql.NullString `db:"template_uid"`

	ElementUID             sql.NullString `db:"element_uid"`
	ElementName            sql.NullString `db:"element_name"`
	ElementFormName        sql.NullString `db:"element_form_name"`
	ElementDisplayFormName sql.NullString `db:"element_display_form_name"`
	ElementValueType       sql.NullString `db:"element_value_type"`

	AttributeUID             sql.NullString `db:"attribute_uid"`
	AttributeName            sql.NullString `db:"attribute_name"`
	AttributeDisplayName     sql.NullString `db:"attribute_display_name"`
	AttributeDisplayFormName sql.NullString `db:"attribute_display_form_name"`
	AttributeValueType       sql.NullString `db:"attribute_value_type"`

	StageUID  sql.NullString `db:"stage_uid"`
	StageName sql.NullString `db:"stage_name"`

	SectionUID  sql.NullString `db:"section_uid"`
	SectionName sql.NullString `db:"section_name"`
}

type variableRow struct {
	UID            string         `db:"uid"`
	Program        string         `db:"program_uid"`
	Name           string         `db:"name"`
	DisplayName    sql.NullString `db:"display_name"`
	SourceType     string         `db:"source_type"`
	DataElementUID sql.NullString `db:"data_element_uid"`

	ElementUID             sql.NullString `db:"element_uid"`
	ElementName            sql.NullString `db:"element_name"`
	ElementFormName        sql.NullString `db:"element_form_name"`
	ElementDisplayFormName sql.NullString `db:"element_display_form_name"`
	ElementValueType       sql.NullString `db:"element_value_type"`

	AttributeUID             sql.NullString `db:"attribute_uid"`
	AttributeName            sql.NullString `db:"attribute_name"`
	AttributeDisplayName     sql.NullString `db:"attribute_display_name"`
	AttributeDisplayFormName sql.NullString `db:"attribute_display_form_name"`
	AttributeValueType       sql.NullString `db:"attribute_value_type"`

	StageUID  sql.NullString `db:"stage_uid"`
	StageName sql.NullString `db:"stage_name"`
}

type elementRow struct {
	UID             string `db:"uid"`
	Name            string `db:"name"`
	FormName        string `db:"form_name"`
	DisplayFormName string `db:"display_form_name"`
	ValueType       string `db:"value_type"`
}

type constantRow struct {
	UID             string `db:"uid"`
	Name            string `db:"name"`
	DisplayName     string `db:"display_name"`
	DisplayFormName string `db:"display_form_name"`
}

// AllRules returns every persisted rule with its actions attached, ordered
// by rule UID.
func (s *SQLStore) AllRules() ([]types.ProgramRule, error) {
	return s.loadRules("list-rules", "list-actions")
}

// RulesForProgram returns the rules of a single program with actions
// attached, ordered by rule UID.
func (s *SQLStore) RulesForProgram(program types.UID) ([]types.ProgramRule, error) {
	return s.loadRules("list-rules-for-program", "list-actions-for-program", program)
}

func (s *SQLStore) loadRules(ruleQuery, actionQuery string, args ...interface{}) ([]types.ProgramRule, error) {
	var ruleRows []ruleRow
	if err := s.queries.Select(ruleQuery, &ruleRows, args...); err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	var actionRows []actionRow
	if err := s.queries.Select(actionQuery, &actionRows, args...); err != nil {
		return nil, fmt.Errorf("failed to load rule actions: %w", err)
	}

	actionsByRule := make(map[types.UID][]types.ProgramRuleAction, len(ruleRows))
	for _, row := range actionRows {
		rule := types.UID(row.Rule)
		actionsByRule[rule] = append(actionsByRule[rule], row.toAction())
	}

	rules := make([]types.ProgramRule, 0, len(ruleRows))
	for _, row := range ruleRows {
		rule := types.ProgramRule{
			UID:          types.UID(row.UID),
			Program:      types.UID(row.Program),
			Name:         row.Name,
			Condition:    row.Condition,
			ProgramStage: stageOf(row.StageUID, row.StageName),
			Actions:      actionsByRule[types.UID(row.UID)],
		}
		if row.Priority.Valid {
			priority := int(row.Priority.Int64)
			rule.Priority = &priority
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// AllVariables returns every persisted rule variable, ordered by UID.
func (s *SQLStore) AllVariables() ([]types.ProgramRuleVariable, error) {
	return s.loadVariables("list-variables")
}

// VariablesForProgram returns the rule variables of a single program,
// ordered by UID.
func (s *SQLStore) VariablesForProgram(program types.UID) ([]types.ProgramRuleVariable, error) {
	return s.loadVariables("list-variables-for-program", program)
}

func (s *SQLStore) loadVariables(query string, args ...interface{}) ([]types.ProgramRuleVariable, error) {
	var rows []variableRow
	if err := s.queries.Select(query, &rows, args...); err != nil {
		return nil, fmt.Errorf("failed to load rule variables: %w", err)
	}

	variables := make([]types.ProgramRuleVariable, 0, len(rows))
	for _, row := range rows {
		variables = append(variables, types.ProgramRuleVariable{
			UID:            types.UID(row.UID),
			Program:        types.UID(row.Program),
			Name:           row.Name,
			DisplayName:    row.DisplayName.String,
			SourceType:     types.SourceType(row.SourceType),
			Attribute:      attributeOf(row.AttributeUID, row.AttributeName, row.AttributeDisplayName, row.AttributeDisplayFormName, row.AttributeValueType),
			DataElement:    elementOf(row.ElementUID, row.ElementName, row.ElementFormName, row.ElementDisplayFormName, row.ElementValueType),
			DataElementUID: types.UID(row.DataElementUID.String),
			ProgramStage:   stageOf(row.StageUID, row.StageName),
		})
	}

	return variables, nil
}

// DataElementByUID resolves a single data element. A missing element is not
// an error: the second return value reports presence.
func (s *SQLStore) DataElementByUID(uid types.UID) (types.DataElement, bool, error) {
	var row elementRow
	err := s.queries.Get("get-data-element", &row, string(uid))
	if errors.Is(err, sql.ErrNoRows) {
		return types.DataElement{}, false, nil
	}
	if err != nil {
		return types.DataElement{}, false, fmt.Errorf("failed to load data element %s: %w", uid, err)
	}

	return types.DataElement{
		UID:             types.UID(row.UID),
		Name:            row.Name,
		FormName:        row.FormName,
		DisplayFormName: row.DisplayFormName,
		ValueType:       types.ValueType(row.ValueType),
	}, true, nil
}

// AllConstants returns every persisted constant, ordered by UID.
func (s *SQLStore) AllConstants() ([]types.Constant, error) {
	var rows []constantRow
	if err := s.queries.Select("list-constants", &rows); err != nil {
		return nil, fmt.Errorf("failed to load constants: %w", err)
	}

	constants := make([]types.Constant, 0, len(rows))
	for _, row := range rows {
		constants = append(constants, types.Constant{
			UID:             types.UID(row.UID),
			Name:            row.Name,
			DisplayName:     row.DisplayName,
			DisplayFormName: row.DisplayFormName,
		})
	}

	return constants, nil
}

func (row actionRow) toAction() types.ProgramRuleAction {
	action := types.ProgramRuleAction{
		UID:          types.UID(row.UID),
		Rule:         types.UID(row.Rule),
		Type:         types.ActionType(row.ActionType),
		Content:      row.Content,
		Data:         row.Data,
		DataElement:  elementOf(row.ElementUID, row.ElementName, row.ElementFormName, row.ElementDisplayFormName, row.ElementValueType),
		Attribute:    attributeOf(row.AttributeUID, row.AttributeName, row.AttributeDisplayName, row.AttributeDisplayFormName, row.AttributeValueType),
		ProgramStage: stageOf(row.StageUID, row.StageName),
		Section:      sectionOf(row.SectionUID, row.SectionName),
		Location:     row.Location.String,
	}
	if row.Template.Valid {
		action.Template = types.UID(row.Template.String)
	}
	return action
}

func stageOf(uid, name sql.NullString) *types.ProgramStage {
	if !uid.Valid {
		return nil
	}
	return &types.ProgramStage{
		UID:  types.UID(uid.String),
		Name: name.String,
	}
}

func sectionOf(uid, name sql.NullString) *types.ProgramStageSection {
	if !uid.Valid {
		return nil
	}
	return &types.ProgramStageSection{
		UID:  types.UID(uid.String),
		Name: name.String,
	}
}

func elementOf(uid, name, formName, displayFormName, valueType sql.NullString) *types.DataElement {
	if !uid.Valid {
		return nil
	}
	return &types.DataElement{
		UID:             types.UID(uid.String),
		Name:            name.String,
		FormName:        formName.String,
		DisplayFormName: displayFormName.String,
		ValueType:       types.ValueType(valueType.String),
	}
}

func attributeOf(uid, name, displayName, displayFormName, valueType sql.NullString) *types.TrackedEntityAttribute {
	if !uid.Valid {
		return nil
	}
	return &types.TrackedEntityAttribute{
		UID:             types.UID(uid.String),
		Name:            name.String,
		DisplayName:     displayName.String,
		DisplayFormName: displayFormName.String,
		ValueType:       types.ValueType(valueType.String),
	}
}
