package engine

import "time"

// EnrollmentStatus mirrors the persisted enrollment status by name.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// EventStatus mirrors the persisted event status by name.
type EventStatus string

const (
	EventActive    EventStatus = "ACTIVE"
	EventCompleted EventStatus = "COMPLETED"
	EventVisited   EventStatus = "VISITED"
	EventSchedule  EventStatus = "SCHEDULE"
	EventOverdue   EventStatus = "OVERDUE"
	EventSkipped   EventStatus = "SKIPPED"
)

// Enrollment is the runtime enrollment container the engine evaluates
// against. OrganisationUnit and OrganisationUnitCode are empty strings,
// never absent, when no org unit is attached.
type Enrollment struct {
	Enrollment           string           `json:"enrollment"`
	IncidentDate         time.Time        `json:"incidentDate"`
	EnrollmentDate       time.Time        `json:"enrollmentDate"`
	Status               EnrollmentStatus `json:"status"`
	OrganisationUnit     string           `json:"organisationUnit"`
	OrganisationUnitCode string           `json:"organisationUnitCode"`
	AttributeValues      []AttributeValue `json:"attributeValues"`
	ProgramName          string           `json:"programName"`
}

// AttributeValue carries one attribute value, already coerced to the
// display string the engine consumes.
type AttributeValue struct {
	TrackedEntityAttribute string `json:"trackedEntityAttribute"`
	Value                  string `json:"value"`
}

// Event is the runtime event container the engine evaluates against.
// EventDate is the execution date when present, else the due date.
type Event struct {
	Event                string      `json:"event"`
	ProgramStage         string      `json:"programStage"`
	Status               EventStatus `json:"status"`
	EventDate            time.Time   `json:"eventDate"`
	DueDate              time.Time   `json:"dueDate"`
	OrganisationUnit     string      `json:"organisationUnit"`
	OrganisationUnitCode string      `json:"organisationUnitCode"`
	DataValues           []DataValue `json:"dataValues"`
	ProgramStageName     string      `json:"programStageName"`
}

// DataValue carries one data element value on an event, already coerced to
// the display string the engine consumes. EventDate and ProgramStage repeat
// the owning event's fields so a value remains self-describing when pooled
// across events.
type DataValue struct {
	EventDate    time.Time `json:"eventDate"`
	ProgramStage string    `json:"programStage"`
	DataElement  string    `json:"dataElement"`
	Value        string    `json:"value"`
}
