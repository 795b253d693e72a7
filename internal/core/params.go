package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form parameters such as palette names.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a sketch.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a sketch.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// IntParam builds an integer Parameter.
func IntParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

// Int64Param builds an integer Parameter from an int64.
func Int64Param(key, label string, v int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

// FloatParam builds a floating-point Parameter.
func FloatParam(key, label string, v float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', 4, 64)}
}

// BoolParam builds a boolean Parameter.
func BoolParam(key, label string, v bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(v)}
}

// StringParam builds a free-form Parameter.
func StringParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: v}
}

// Count returns the total number of parameters across all groups.
func (s ParameterSnapshot) Count() int {
	n := 0
	for _, g := range s.Groups {
		n += len(g.Params)
	}
	return n
}
