package mapper

import (
	"fmt"

	"github.com/verdanthealth/trackrules/internal/engine"
	"github.com/verdanthealth/trackrules/internal/types"
	"go.uber.org/zap"
)

/*
 * Action mapping.
 *
 * Explicit dispatch over the closed action-kind enumeration. An
 * unrecognized kind falls through to the assign shape so forward-compatible
 * kinds authored by a newer server survive translation. A missing target
 * parameter is non-fatal (empty field, warning logged); a missing stage or
 * section reference on the hide kinds is an error, which the rule mapper
 * treats as rule-fatal.
 */

// mapAction builds the engine variant for one action definition.
func (m *Mapper) mapAction(pra types.ProgramRuleAction) (engine.Action, error) {
	switch pra.Type {
	case types.ActionTypeAssign:
		return engine.ActionAssign{
			Content: pra.Content,
			Data:    pra.Data,
			Field:   assignTargetParameter(pra),
		}, nil

	case types.ActionTypeCreateEvent:
		return engine.ActionCreateEvent{
			Content:  pra.Content,
			Data:     pra.Data,
			Location: pra.Location,
		}, nil

	case types.ActionTypeDisplayKeyValuePair, types.ActionTypeDisplayText:
		return displayAction(pra), nil

	case types.ActionTypeHideField:
		return engine.ActionHideField{
			Content: pra.Content,
			Field:   targetParameter(pra),
		}, nil

	case types.ActionTypeHideProgramStage:
		if pra.ProgramStage == nil {
			return nil, fmt.Errorf("action %s has no program stage: %w", pra.UID, types.ErrMissingReference)
		}
		return engine.ActionHideProgramStage{ProgramStage: string(pra.ProgramStage.UID)}, nil

	case types.ActionTypeHideSection:
		if pra.Section == nil {
			return nil, fmt.Errorf("action %s has no section: %w", pra.UID, types.ErrMissingReference)
		}
		return engine.ActionHideSection{Section: string(pra.Section.UID)}, nil

	case types.ActionTypeShowError:
		return engine.ActionShowError{
			Content: pra.Content,
			Data:    pra.Data,
			Field:   targetParameter(pra),
		}, nil

	case types.ActionTypeShowWarning:
		return engine.ActionShowWarning{
			Content: pra.Content,
			Data:    pra.Data,
			Field:   targetParameter(pra),
		}, nil

	case types.ActionTypeSetMandatoryField:
		return engine.ActionSetMandatoryField{Field: targetParameter(pra)}, nil

	case types.ActionTypeWarningOnComplete:
		return engine.ActionWarningOnCompletion{
			Content: pra.Content,
			Data:    pra.Data,
			Field:   targetParameter(pra),
		}, nil

	case types.ActionTypeErrorOnComplete:
		return engine.ActionErrorOnCompletion{
			Content: pra.Content,
			Data:    pra.Data,
			Field:   targetParameter(pra),
		}, nil

	case types.ActionTypeSendMessage:
		return engine.ActionSendMessage{Template: string(pra.Template), Data: pra.Data}, nil

	case types.ActionTypeScheduleMessage:
		return engine.ActionScheduleMessage{Template: string(pra.Template), Data: pra.Data}, nil

	default:
		// Unknown kinds map to the assign shape instead of failing.
		return engine.ActionAssign{
			Content: pra.Content,
			Data:    pra.Data,
			Field:   targetParameter(pra),
		}, nil
	}
}

// targetParameter resolves where an action's result is written or read:
// the bound data element, else the bound attribute, else the literal
// content. An action with none of the three gets an empty target and a
// warning; the rule still maps.
func targetParameter(pra types.ProgramRuleAction) string {
	if pra.DataElement != nil {
		return string(pra.DataElement.UID)
	}
	if pra.Attribute != nil {
		return string(pra.Attribute.UID)
	}
	if pra.Content != "" {
		return pra.Content
	}

	zap.L().Warn("no target parameter for rule action",
		zap.String("actionType", string(pra.Type)),
		zap.String("rule", string(pra.Rule)))

	return ""
}

// assignTargetParameter is the assign-specific variant of targetParameter:
// an assign action without a structured target is intentionally
// parameterless, so literal content never becomes the target.
func assignTargetParameter(pra types.ProgramRuleAction) string {
	if pra.DataElement != nil {
		return string(pra.DataElement.UID)
	}
	if pra.Attribute != nil {
		return string(pra.Attribute.UID)
	}
	if pra.Content != "" {
		return ""
	}

	zap.L().Warn("no target parameter for rule action",
		zap.String("actionType", string(pra.Type)),
		zap.String("rule", string(pra.Rule)))

	return ""
}

// displayAction branches the two display kinds on the persisted location
// tag. Anything other than "indicators", including an absent tag, renders
// to the feedback surface.
func displayAction(pra types.ProgramRuleAction) engine.Action {
	location := engine.LocationFeedback
	if pra.Location == string(engine.LocationIndicators) {
		location = engine.LocationIndicators
	}

	if pra.Type == types.ActionTypeDisplayText {
		return engine.ActionDisplayText{
			Location: location,
			Content:  pra.Content,
			Data:     pra.Data,
		}
	}
	return engine.ActionDisplayKeyValuePair{
		Location: location,
		Content:  pra.Content,
		Data:     pra.Data,
	}
}
