package mapper

import (
	"fmt"

	"github.com/verdanthealth/trackrules/internal/types"
	"go.uber.org/zap"
)

// EnvironmentVariables is the fixed set of environment-variable tokens the
// surrounding system injects into rule conditions. The item store publishes
// a localized description for each.
var EnvironmentVariables = []string{
	"current_date",
	"completed_date",
	"due_date",
	"event_count",
	"event_date",
	"event_id",
	"event_status",
	"enrollment_count",
	"enrollment_date",
	"enrollment_id",
	"enrollment_status",
	"environment",
	"incident_date",
	"org_unit",
	"org_unit_code",
	"program_name",
	"program_stage_id",
	"program_stage_name",
	"tei_count",
}

// BuildItemStore assembles the name→description lookup table used by the
// rule authoring UI and condition tooling: one entry per variable, one per
// constant, one per environment-variable token. Within the builder the
// first write for a key wins. Variables whose source kind has no
// description rule, or whose association is absent, produce no entry.
func (m *Mapper) BuildItemStore(prvs []types.ProgramRuleVariable) (map[string]string, error) {
	itemStore := make(map[string]string)

	for _, prv := range prvs {
		description, ok := variableDescription(prv)
		if !ok {
			continue
		}
		put(itemStore, firstNonEmpty(prv.Name, prv.DisplayName), description)
	}

	constants, err := m.constants.AllConstants()
	if err != nil {
		return nil, fmt.Errorf("loading constants: %w", err)
	}
	for _, c := range constants {
		put(itemStore, string(c.UID), firstNonEmpty(c.DisplayName, c.DisplayFormName, c.Name))
	}

	for _, token := range EnvironmentVariables {
		put(itemStore, token, m.localizer.String(token))
	}

	return itemStore, nil
}

// variableDescription resolves the display description for one variable by
// source kind.
func variableDescription(prv types.ProgramRuleVariable) (string, bool) {
	switch prv.SourceType {
	case types.SourceTypeCalculatedValue:
		return firstNonEmpty(prv.DisplayName, prv.Name), true

	case types.SourceTypeAttribute:
		if prv.Attribute == nil {
			zap.L().Debug("variable without attribute omitted from item store",
				zap.String("variable", string(prv.UID)))
			return "", false
		}
		a := prv.Attribute
		return firstNonEmpty(a.DisplayName, a.DisplayFormName, a.Name), true

	case types.SourceTypeDataElementCurrentEvent,
		types.SourceTypeDataElementPreviousEvent,
		types.SourceTypeDataElementNewestProgram,
		types.SourceTypeDataElementNewestStage:
		if prv.DataElement == nil {
			zap.L().Debug("variable without data element omitted from item store",
				zap.String("variable", string(prv.UID)))
			return "", false
		}
		de := prv.DataElement
		return firstNonEmpty(de.DisplayFormName, de.FormName, de.Name), true

	default:
		return "", false
	}
}

func put(itemStore map[string]string, key, value string) {
	if key == "" {
		return
	}
	if _, exists := itemStore[key]; exists {
		return
	}
	itemStore[key] = value
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
