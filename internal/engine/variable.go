package engine

// ValueType is the three-way semantic type classification the evaluation
// engine uses, coarser than the persisted value-type enumeration.
type ValueType string

const (
	ValueTypeBoolean ValueType = "BOOLEAN"
	ValueTypeNumeric ValueType = "NUMERIC"
	ValueTypeText    ValueType = "TEXT"
)

// VariableKind discriminates the closed set of variable variants.
type VariableKind string

const (
	VariableKindCalculatedValue  VariableKind = "CALCULATED_VALUE"
	VariableKindAttribute        VariableKind = "ATTRIBUTE"
	VariableKindCurrentEvent     VariableKind = "CURRENT_EVENT"
	VariableKindPreviousEvent    VariableKind = "PREVIOUS_EVENT"
	VariableKindNewestEvent      VariableKind = "NEWEST_EVENT"
	VariableKindNewestStageEvent VariableKind = "NEWEST_STAGE_EVENT"
)

// Variable is one engine-side variable binding. The Kind method doubles as
// the closed-set marker: only variants in this package implement it.
type Variable interface {
	Kind() VariableKind
}

// VariableCalculatedValue holds a value computed by other rules during
// evaluation; it has no backing attribute or data element.
type VariableCalculatedValue struct {
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Type  ValueType `json:"type"`
}

// VariableAttribute binds a tracked entity attribute value.
type VariableAttribute struct {
	Name      string    `json:"name"`
	Attribute string    `json:"attribute"`
	Type      ValueType `json:"type"`
}

// VariableCurrentEvent binds a data element value from the event under
// evaluation.
type VariableCurrentEvent struct {
	Name        string    `json:"name"`
	DataElement string    `json:"dataElement"`
	Type        ValueType `json:"type"`
}

// VariablePreviousEvent binds a data element value from the event preceding
// the one under evaluation.
type VariablePreviousEvent struct {
	Name        string    `json:"name"`
	DataElement string    `json:"dataElement"`
	Type        ValueType `json:"type"`
}

// VariableNewestEvent binds the newest value of a data element across the
// whole program.
type VariableNewestEvent struct {
	Name        string    `json:"name"`
	DataElement string    `json:"dataElement"`
	Type        ValueType `json:"type"`
}

// VariableNewestStageEvent binds the newest value of a data element within
// one program stage.
type VariableNewestStageEvent struct {
	Name         string    `json:"name"`
	DataElement  string    `json:"dataElement"`
	ProgramStage string    `json:"programStage"`
	Type         ValueType `json:"type"`
}

func (VariableCalculatedValue) Kind() VariableKind  { return VariableKindCalculatedValue }
func (VariableAttribute) Kind() VariableKind        { return VariableKindAttribute }
func (VariableCurrentEvent) Kind() VariableKind     { return VariableKindCurrentEvent }
func (VariablePreviousEvent) Kind() VariableKind    { return VariableKindPreviousEvent }
func (VariableNewestEvent) Kind() VariableKind      { return VariableKindNewestEvent }
func (VariableNewestStageEvent) Kind() VariableKind { return VariableKindNewestStageEvent }
