package mapper

import (
	"errors"
	"fmt"
	"time"

	"github.com/verdanthealth/trackrules/internal/engine"
	"github.com/verdanthealth/trackrules/internal/types"
	"go.uber.org/zap"
)

/*
 * Runtime context mapping.
 *
 * Translates one enrollment and its candidate events into the engine's
 * input bag. Raw values are coerced to display strings by declared value
 * type: a present value passes through unchanged, an absent one becomes
 * "false" for boolean types, "0" for numeric types and "" otherwise.
 *
 * Statuses cross the boundary through explicit tables rather than string
 * identity; a status outside the table fails that item's mapping.
 */

// MapEnrollment maps one enrollment into the engine's runtime container.
// A nil enrollment maps to absent (nil, nil).
func (m *Mapper) MapEnrollment(e *types.Enrollment) (*engine.Enrollment, error) {
	if e == nil {
		return nil, nil
	}

	status, err := enrollmentStatus(e.Status)
	if err != nil {
		return nil, fmt.Errorf("enrollment %s: %w", e.UID, err)
	}

	orgUnit, orgUnitCode := orgUnitFields(e.OrgUnit)

	attributeValues := make([]engine.AttributeValue, 0, len(e.AttributeValues))
	for _, av := range e.AttributeValues {
		if av.Attribute == nil {
			zap.L().Debug("attribute value without attribute",
				zap.String("enrollment", string(e.UID)))
			continue
		}
		attributeValues = append(attributeValues, engine.AttributeValue{
			TrackedEntityAttribute: string(av.Attribute.UID),
			Value:                  coerceValue(av.Value, av.Attribute.ValueType),
		})
	}

	return &engine.Enrollment{
		Enrollment:           string(e.UID),
		IncidentDate:         e.IncidentDate,
		EnrollmentDate:       e.EnrollmentDate,
		Status:               status,
		OrganisationUnit:     orgUnit,
		OrganisationUnitCode: orgUnitCode,
		AttributeValues:      attributeValues,
		ProgramName:          e.ProgramName,
	}, nil
}

// MapEvents maps every candidate event except the one currently being
// evaluated, preserving input order. Self-exclusion keeps a rule from
// seeing the excluded event's not-yet-applied side effects. An event that
// fails to map is dropped with a debug diagnostic, except for dangling
// data-element references, which abort the batch.
func (m *Mapper) MapEvents(events []types.Event, excluding *types.Event) ([]engine.Event, error) {
	out := make([]engine.Event, 0, len(events))
	for i := range events {
		e := &events[i]
		if excluding != nil && e.UID == excluding.UID {
			continue
		}

		mapped, err := m.MapEvent(e)
		if err != nil {
			if errors.Is(err, types.ErrDataElementNotFound) {
				return nil, err
			}
			zap.L().Debug("invalid event", zap.String("event", string(e.UID)), zap.Error(err))
			continue
		}
		out = append(out, *mapped)
	}
	return out, nil
}

// MapEvent maps one event into the engine's runtime container. A nil event
// maps to absent (nil, nil).
func (m *Mapper) MapEvent(e *types.Event) (*engine.Event, error) {
	if e == nil {
		return nil, nil
	}
	if e.ProgramStage == nil {
		return nil, fmt.Errorf("event %s has no program stage: %w", e.UID, types.ErrMissingReference)
	}

	status, err := eventStatus(e.Status)
	if err != nil {
		return nil, fmt.Errorf("event %s: %w", e.UID, err)
	}

	eventDate := effectiveDate(e)
	orgUnit, orgUnitCode := orgUnitFields(e.OrgUnit)

	dataValues := make([]engine.DataValue, 0, len(e.DataValues))
	for _, dv := range e.DataValues {
		vt, err := m.valueTypes.resolve(dv.DataElement)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", e.UID, err)
		}
		dataValues = append(dataValues, engine.DataValue{
			EventDate:    eventDate,
			ProgramStage: string(e.ProgramStage.UID),
			DataElement:  string(dv.DataElement),
			Value:        coerceValue(dv.Value, vt),
		})
	}

	return &engine.Event{
		Event:                string(e.UID),
		ProgramStage:         string(e.ProgramStage.UID),
		Status:               status,
		EventDate:            eventDate,
		DueDate:              e.DueDate,
		OrganisationUnit:     orgUnit,
		OrganisationUnitCode: orgUnitCode,
		DataValues:           dataValues,
		ProgramStageName:     e.ProgramStage.Name,
	}, nil
}

// effectiveDate is the execution date when the event has happened, else
// the due date.
func effectiveDate(e *types.Event) time.Time {
	if e.ExecutionDate != nil {
		return *e.ExecutionDate
	}
	return e.DueDate
}

// orgUnitFields returns the org unit UID and code, empty strings when no
// org unit is attached.
func orgUnitFields(ou *types.OrgUnit) (string, string) {
	if ou == nil {
		return "", ""
	}
	return string(ou.UID), ou.Code
}

// coerceValue applies the default-value policy: a present raw value passes
// through unchanged, an absent one is substituted by declared value type.
func coerceValue(raw *string, vt types.ValueType) string {
	if raw != nil {
		return *raw
	}
	switch {
	case vt.IsBoolean():
		return "false"
	case vt.IsNumeric():
		return "0"
	default:
		return ""
	}
}

// enrollmentStatus maps the persisted enrollment status to its engine
// counterpart. The two enumerations are isomorphic by name today; the
// explicit table keeps a rename on either side from slipping through as
// string identity.
func enrollmentStatus(s types.EnrollmentStatus) (engine.EnrollmentStatus, error) {
	switch s {
	case types.EnrollmentActive:
		return engine.EnrollmentActive, nil
	case types.EnrollmentCompleted:
		return engine.EnrollmentCompleted, nil
	case types.EnrollmentCancelled:
		return engine.EnrollmentCancelled, nil
	default:
		return "", fmt.Errorf("%q: %w", s, types.ErrUnknownEnrollmentStatus)
	}
}

// eventStatus maps the persisted event status to its engine counterpart.
func eventStatus(s types.EventStatus) (engine.EventStatus, error) {
	switch s {
	case types.EventActive:
		return engine.EventActive, nil
	case types.EventCompleted:
		return engine.EventCompleted, nil
	case types.EventVisited:
		return engine.EventVisited, nil
	case types.EventSchedule:
		return engine.EventSchedule, nil
	case types.EventOverdue:
		return engine.EventOverdue, nil
	case types.EventSkipped:
		return engine.EventSkipped, nil
	default:
		return "", fmt.Errorf("%q: %w", s, types.ErrUnknownEventStatus)
	}
}
