package types

import "time"

/*
 * Persisted program rule entities.
 *
 * These structs mirror the relational model owned by the collaborator
 * stores; the mapping service reads them and never mutates them. Optional
 * associations are pointers: a nil pointer means the association is not
 * present in the database, and the mapper decides per call site whether
 * that is a skip, a default, or a hard failure.
 */

// Program is a health data collection program.
type Program struct {
	UID  UID
	Name string
}

// ProgramStage is one stage of data capture within a program.
type ProgramStage struct {
	UID  UID
	Name string
}

// ProgramStageSection is a form section within a program stage.
type ProgramStageSection struct {
	UID  UID
	Name string
}

// OrgUnit is an organisation unit an enrollment or event is registered at.
type OrgUnit struct {
	UID  UID
	Code string
}

// DataElement is a typed data capture field used by events.
type DataElement struct {
	UID             UID
	Name            string
	FormName        string
	DisplayFormName string
	ValueType       ValueType
}

// TrackedEntityAttribute is a typed attribute of a tracked subject.
type TrackedEntityAttribute struct {
	UID             UID
	Name            string
	DisplayName     string
	DisplayFormName string
	ValueType       ValueType
}

// Constant is a named constant usable inside rule conditions.
type Constant struct {
	UID             UID
	Name            string
	DisplayName     string
	DisplayFormName string
}

// ProgramRule is a prioritized condition-and-actions unit attached to a
// program or to one of its stages.
type ProgramRule struct {
	UID          UID
	Program      UID
	Name         string
	Priority     *int
	Condition    string
	ProgramStage *ProgramStage
	Actions      []ProgramRuleAction
}

// ProgramRuleAction is one effect triggered when its rule's condition holds.
// The target references (DataElement, Attribute, ProgramStage, Section) are
// mutually optional; which ones a given action kind requires is decided by
// the mapper.
type ProgramRuleAction struct {
	UID         UID
	Rule        UID
	Type        ActionType
	Content     string
	Data        string
	DataElement *DataElement
	Attribute   *TrackedEntityAttribute
	// ProgramStage is the stage hidden by HIDEPROGRAMSTAGE actions.
	ProgramStage *ProgramStage
	// Section is the form section hidden by HIDESECTION actions.
	Section *ProgramStageSection
	// Location tags the display surface for the two display action kinds.
	Location string
	// Template references the notification template of messaging actions.
	Template UID
}

// ProgramRuleVariable is a named binding resolvable from enrollment or
// event data, usable inside rule conditions and action expressions.
//
// DataElementUID carries the raw reference even when the DataElement
// association was not loaded; the mapper falls back to the value-type
// cache in that case.
type ProgramRuleVariable struct {
	UID            UID
	Program        UID
	Name           string
	DisplayName    string
	SourceType     SourceType
	Attribute      *TrackedEntityAttribute
	DataElement    *DataElement
	DataElementUID UID
	ProgramStage   *ProgramStage
}

// Enrollment is a tracked subject's registration into a program.
type Enrollment struct {
	UID             UID
	ProgramName     string
	Status          EnrollmentStatus
	IncidentDate    time.Time
	EnrollmentDate  time.Time
	OrgUnit         *OrgUnit
	AttributeValues []AttributeValue
}

// AttributeValue is one attribute value captured for a tracked subject.
// Value is nil when no value has been recorded.
type AttributeValue struct {
	Attribute *TrackedEntityAttribute
	Value     *string
}

// Event is one occurrence of data capture within a program stage.
// ExecutionDate is nil for scheduled events that have not happened yet.
type Event struct {
	UID           UID
	ProgramStage  *ProgramStage
	Status        EventStatus
	ExecutionDate *time.Time
	DueDate       time.Time
	OrgUnit       *OrgUnit
	DataValues    []EventDataValue
}

// EventDataValue is one data element value captured on an event. The data
// element is referenced by UID only; its value type is resolved through the
// value-type cache. Value is nil when no value has been recorded.
type EventDataValue struct {
	DataElement UID
	Value       *string
}
