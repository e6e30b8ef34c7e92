// Package types provides the persisted-side domain model shared across
// trackrules components.
//
// Zero-dependency design: types.go, program.go and errors.go use only the
// standard library so the model can be consumed by the evaluation engine
// without pulling in storage or CLI dependencies. ID utilities in ids.go
// import uuid but are isolated for selective inclusion.
package types

// UID identifies a metadata or data object.
// String alias enables type safety while maintaining JSON string serialization.
type UID string

// ValueType is the declared value type of a data element or tracked entity
// attribute. The rule engine only distinguishes boolean, numeric and text;
// the classification helpers below collapse this enumeration accordingly.
type ValueType string

const (
	ValueTypeText                  ValueType = "TEXT"
	ValueTypeLongText              ValueType = "LONG_TEXT"
	ValueTypeLetter                ValueType = "LETTER"
	ValueTypePhoneNumber           ValueType = "PHONE_NUMBER"
	ValueTypeEmail                 ValueType = "EMAIL"
	ValueTypeUsername              ValueType = "USERNAME"
	ValueTypeURL                   ValueType = "URL"
	ValueTypeBoolean               ValueType = "BOOLEAN"
	ValueTypeTrueOnly              ValueType = "TRUE_ONLY"
	ValueTypeDate                  ValueType = "DATE"
	ValueTypeDateTime              ValueType = "DATETIME"
	ValueTypeTime                  ValueType = "TIME"
	ValueTypeNumber                ValueType = "NUMBER"
	ValueTypeUnitInterval          ValueType = "UNIT_INTERVAL"
	ValueTypePercentage            ValueType = "PERCENTAGE"
	ValueTypeInteger               ValueType = "INTEGER"
	ValueTypeIntegerPositive       ValueType = "INTEGER_POSITIVE"
	ValueTypeIntegerNegative       ValueType = "INTEGER_NEGATIVE"
	ValueTypeIntegerZeroOrPositive ValueType = "INTEGER_ZERO_OR_POSITIVE"
	ValueTypeAge                   ValueType = "AGE"
	ValueTypeOrganisationUnit      ValueType = "ORGANISATION_UNIT"
	ValueTypeCoordinate            ValueType = "COORDINATE"
	ValueTypeFileResource          ValueType = "FILE_RESOURCE"
	ValueTypeImage                 ValueType = "IMAGE"
)

// IsBoolean reports whether values of this type carry boolean semantics.
func (v ValueType) IsBoolean() bool {
	return v == ValueTypeBoolean || v == ValueTypeTrueOnly
}

// IsNumeric reports whether values of this type carry numeric semantics.
func (v ValueType) IsNumeric() bool {
	switch v {
	case ValueTypeNumber, ValueTypeUnitInterval, ValueTypePercentage,
		ValueTypeInteger, ValueTypeIntegerPositive, ValueTypeIntegerNegative,
		ValueTypeIntegerZeroOrPositive:
		return true
	default:
		return false
	}
}

// IsText reports whether values of this type carry plain text semantics.
func (v ValueType) IsText() bool {
	switch v {
	case ValueTypeText, ValueTypeLongText, ValueTypeLetter,
		ValueTypePhoneNumber, ValueTypeEmail, ValueTypeUsername, ValueTypeURL:
		return true
	default:
		return false
	}
}

// ActionType enumerates the persisted program rule action kinds.
type ActionType string

const (
	ActionTypeAssign              ActionType = "ASSIGN"
	ActionTypeCreateEvent         ActionType = "CREATEEVENT"
	ActionTypeDisplayKeyValuePair ActionType = "DISPLAYKEYVALUEPAIR"
	ActionTypeDisplayText         ActionType = "DISPLAYTEXT"
	ActionTypeHideField           ActionType = "HIDEFIELD"
	ActionTypeHideProgramStage    ActionType = "HIDEPROGRAMSTAGE"
	ActionTypeHideSection         ActionType = "HIDESECTION"
	ActionTypeShowError           ActionType = "SHOWERROR"
	ActionTypeShowWarning         ActionType = "SHOWWARNING"
	ActionTypeSetMandatoryField   ActionType = "SETMANDATORYFIELD"
	ActionTypeWarningOnComplete   ActionType = "WARNINGONCOMPLETE"
	ActionTypeErrorOnComplete     ActionType = "ERRORONCOMPLETE"
	ActionTypeSendMessage         ActionType = "SENDMESSAGE"
	ActionTypeScheduleMessage     ActionType = "SCHEDULEMESSAGE"
)

// SourceType enumerates the program rule variable source kinds.
type SourceType string

const (
	SourceTypeCalculatedValue          SourceType = "CALCULATED_VALUE"
	SourceTypeAttribute                SourceType = "TEI_ATTRIBUTE"
	SourceTypeDataElementCurrentEvent  SourceType = "DATAELEMENT_CURRENT_EVENT"
	SourceTypeDataElementPreviousEvent SourceType = "DATAELEMENT_PREVIOUS_EVENT"
	SourceTypeDataElementNewestProgram SourceType = "DATAELEMENT_NEWEST_EVENT_PROGRAM"
	SourceTypeDataElementNewestStage   SourceType = "DATAELEMENT_NEWEST_EVENT_PROGRAM_STAGE"
)

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentCancelled EnrollmentStatus = "CANCELLED"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventActive    EventStatus = "ACTIVE"
	EventCompleted EventStatus = "COMPLETED"
	EventVisited   EventStatus = "VISITED"
	EventSchedule  EventStatus = "SCHEDULE"
	EventOverdue   EventStatus = "OVERDUE"
	EventSkipped   EventStatus = "SKIPPED"
)
