package mapper

import (
	"errors"
	"fmt"

	"github.com/verdanthealth/trackrules/internal/engine"
	"github.com/verdanthealth/trackrules/internal/types"
	"go.uber.org/zap"
)

/*
 * Variable mapping.
 *
 * One engine variable variant per persisted source kind, with the semantic
 * value type resolved from the bound attribute or data element. A variable
 * whose required association is absent is skipped (logged at debug, batch
 * continues); a variable whose data element UID does not exist in the store
 * fails the batch with types.ErrDataElementNotFound.
 */

// MapVariables maps every persisted variable, dropping malformed ones.
func (m *Mapper) MapVariables() ([]engine.Variable, error) {
	prvs, err := m.variables.AllVariables()
	if err != nil {
		return nil, fmt.Errorf("loading program rule variables: %w", err)
	}
	return m.MapVariableList(prvs)
}

// MapVariablesForProgram maps one program's variables, dropping malformed ones.
func (m *Mapper) MapVariablesForProgram(program types.UID) ([]engine.Variable, error) {
	prvs, err := m.variables.VariablesForProgram(program)
	if err != nil {
		return nil, fmt.Errorf("loading variables for program %s: %w", program, err)
	}
	return m.MapVariableList(prvs)
}

// MapVariableList maps the given variables in order. Malformed variables
// are dropped with a debug diagnostic; a dangling data-element reference
// aborts the batch.
func (m *Mapper) MapVariableList(prvs []types.ProgramRuleVariable) ([]engine.Variable, error) {
	out := make([]engine.Variable, 0, len(prvs))
	for _, prv := range prvs {
		v, err := m.mapVariable(prv)
		if err != nil {
			if errors.Is(err, types.ErrDataElementNotFound) {
				return nil, err
			}
			zap.L().Debug("invalid program rule variable",
				zap.String("variable", string(prv.UID)), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// mapVariable builds the engine variant for one variable definition.
func (m *Mapper) mapVariable(prv types.ProgramRuleVariable) (engine.Variable, error) {
	switch prv.SourceType {
	case types.SourceTypeCalculatedValue:
		return engine.VariableCalculatedValue{
			Name:  prv.Name,
			Value: "",
			Type:  engine.ValueTypeText,
		}, nil

	case types.SourceTypeAttribute:
		if prv.Attribute == nil {
			return nil, fmt.Errorf("variable %s has no attribute: %w", prv.UID, types.ErrMissingReference)
		}
		return engine.VariableAttribute{
			Name:      prv.Name,
			Attribute: string(prv.Attribute.UID),
			Type:      semanticValueType(prv.Attribute.ValueType),
		}, nil

	case types.SourceTypeDataElementCurrentEvent:
		uid, vt, err := m.variableElementType(prv)
		if err != nil {
			return nil, err
		}
		return engine.VariableCurrentEvent{Name: prv.Name, DataElement: string(uid), Type: vt}, nil

	case types.SourceTypeDataElementPreviousEvent:
		uid, vt, err := m.variableElementType(prv)
		if err != nil {
			return nil, err
		}
		return engine.VariablePreviousEvent{Name: prv.Name, DataElement: string(uid), Type: vt}, nil

	case types.SourceTypeDataElementNewestProgram:
		uid, vt, err := m.variableElementType(prv)
		if err != nil {
			return nil, err
		}
		return engine.VariableNewestEvent{Name: prv.Name, DataElement: string(uid), Type: vt}, nil

	case types.SourceTypeDataElementNewestStage:
		if prv.ProgramStage == nil {
			return nil, fmt.Errorf("variable %s has no program stage: %w", prv.UID, types.ErrMissingReference)
		}
		uid, vt, err := m.variableElementType(prv)
		if err != nil {
			return nil, err
		}
		return engine.VariableNewestStageEvent{
			Name:         prv.Name,
			DataElement:  string(uid),
			ProgramStage: string(prv.ProgramStage.UID),
			Type:         vt,
		}, nil

	default:
		return nil, fmt.Errorf("variable %s has source type %q: %w",
			prv.UID, prv.SourceType, types.ErrUnknownSourceType)
	}
}

// variableElementType resolves the bound data element UID and its semantic
// value type, going through the value-type cache when the association was
// not loaded with the variable.
func (m *Mapper) variableElementType(prv types.ProgramRuleVariable) (types.UID, engine.ValueType, error) {
	if prv.DataElement != nil {
		return prv.DataElement.UID, semanticValueType(prv.DataElement.ValueType), nil
	}
	if prv.DataElementUID != "" {
		vt, err := m.valueTypes.resolve(prv.DataElementUID)
		if err != nil {
			return "", "", err
		}
		return prv.DataElementUID, semanticValueType(vt), nil
	}
	return "", "", fmt.Errorf("variable %s has no data element: %w", prv.UID, types.ErrMissingReference)
}

// semanticValueType collapses the persisted value-type enumeration to the
// three-way classification the engine uses. Anything neither boolean nor
// numeric, including unknown types, is TEXT.
func semanticValueType(vt types.ValueType) engine.ValueType {
	switch {
	case vt.IsBoolean():
		return engine.ValueTypeBoolean
	case vt.IsNumeric():
		return engine.ValueTypeNumeric
	default:
		return engine.ValueTypeText
	}
}
