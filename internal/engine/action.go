package engine

// ActionKind discriminates the closed set of action variants.
type ActionKind string

const (
	ActionKindAssign              ActionKind = "ASSIGN"
	ActionKindCreateEvent         ActionKind = "CREATE_EVENT"
	ActionKindDisplayKeyValuePair ActionKind = "DISPLAY_KEY_VALUE_PAIR"
	ActionKindDisplayText         ActionKind = "DISPLAY_TEXT"
	ActionKindHideField           ActionKind = "HIDE_FIELD"
	ActionKindHideProgramStage    ActionKind = "HIDE_PROGRAM_STAGE"
	ActionKindHideSection         ActionKind = "HIDE_SECTION"
	ActionKindShowError           ActionKind = "SHOW_ERROR"
	ActionKindShowWarning         ActionKind = "SHOW_WARNING"
	ActionKindSetMandatoryField   ActionKind = "SET_MANDATORY_FIELD"
	ActionKindWarningOnCompletion ActionKind = "WARNING_ON_COMPLETION"
	ActionKindErrorOnCompletion   ActionKind = "ERROR_ON_COMPLETION"
	ActionKindSendMessage         ActionKind = "SEND_MESSAGE"
	ActionKindScheduleMessage     ActionKind = "SCHEDULE_MESSAGE"
)

// Action is one engine-side rule effect. The Kind method doubles as the
// closed-set marker: only variants in this package implement it.
type Action interface {
	Kind() ActionKind
}

// DisplayLocation selects the surface a display action renders to.
type DisplayLocation string

const (
	LocationFeedback   DisplayLocation = "feedback"
	LocationIndicators DisplayLocation = "indicators"
)

// ActionAssign writes the evaluated Data expression to Field, or binds
// Content as a calculated value when Field is empty.
type ActionAssign struct {
	Content string `json:"content"`
	Data    string `json:"data"`
	Field   string `json:"field"`
}

// ActionCreateEvent schedules creation of a new event.
type ActionCreateEvent struct {
	Content  string `json:"content"`
	Data     string `json:"data"`
	Location string `json:"location"`
}

// ActionDisplayKeyValuePair renders a labeled value on the given surface.
type ActionDisplayKeyValuePair struct {
	Location DisplayLocation `json:"location"`
	Content  string          `json:"content"`
	Data     string          `json:"data"`
}

// ActionDisplayText renders free text on the given surface.
type ActionDisplayText struct {
	Location DisplayLocation `json:"location"`
	Content  string          `json:"content"`
	Data     string          `json:"data"`
}

// ActionHideField hides the form field identified by Field.
type ActionHideField struct {
	Content string `json:"content"`
	Field   string `json:"field"`
}

// ActionHideProgramStage hides an entire program stage.
type ActionHideProgramStage struct {
	ProgramStage string `json:"programStage"`
}

// ActionHideSection hides a program stage section.
type ActionHideSection struct {
	Section string `json:"programStageSection"`
}

// ActionShowError attaches an error message to Field.
type ActionShowError struct {
	Content string `json:"content"`
	Data    string `json:"data"`
	Field   string `json:"field"`
}

// ActionShowWarning attaches a warning message to Field.
type ActionShowWarning struct {
	Content string `json:"content"`
	Data    string `json:"data"`
	Field   string `json:"field"`
}

// ActionSetMandatoryField marks Field as mandatory.
type ActionSetMandatoryField struct {
	Field string `json:"field"`
}

// ActionWarningOnCompletion shows a warning when the event is completed.
type ActionWarningOnCompletion struct {
	Content string `json:"content"`
	Data    string `json:"data"`
	Field   string `json:"field"`
}

// ActionErrorOnCompletion blocks completion of the event with an error.
type ActionErrorOnCompletion struct {
	Content string `json:"content"`
	Data    string `json:"data"`
	Field   string `json:"field"`
}

// ActionSendMessage sends a notification based on Template.
type ActionSendMessage struct {
	Template string `json:"template"`
	Data     string `json:"data"`
}

// ActionScheduleMessage schedules a notification based on Template for the
// date the Data expression evaluates to.
type ActionScheduleMessage struct {
	Template string `json:"template"`
	Data     string `json:"data"`
}

func (ActionAssign) Kind() ActionKind              { return ActionKindAssign }
func (ActionCreateEvent) Kind() ActionKind         { return ActionKindCreateEvent }
func (ActionDisplayKeyValuePair) Kind() ActionKind { return ActionKindDisplayKeyValuePair }
func (ActionDisplayText) Kind() ActionKind         { return ActionKindDisplayText }
func (ActionHideField) Kind() ActionKind           { return ActionKindHideField }
func (ActionHideProgramStage) Kind() ActionKind    { return ActionKindHideProgramStage }
func (ActionHideSection) Kind() ActionKind         { return ActionKindHideSection }
func (ActionShowError) Kind() ActionKind           { return ActionKindShowError }
func (ActionShowWarning) Kind() ActionKind         { return ActionKindShowWarning }
func (ActionSetMandatoryField) Kind() ActionKind   { return ActionKindSetMandatoryField }
func (ActionWarningOnCompletion) Kind() ActionKind { return ActionKindWarningOnCompletion }
func (ActionErrorOnCompletion) Kind() ActionKind   { return ActionKindErrorOnCompletion }
func (ActionSendMessage) Kind() ActionKind         { return ActionKindSendMessage }
func (ActionScheduleMessage) Kind() ActionKind     { return ActionKindScheduleMessage }
