package stdlib

import (
	"dis/object"
	"math"
)

// math module definition
var mathModule = object.Module{
	// math constants
	"pi": &object.Float{Value: math.Pi},
	"e":  &object.Float{Value: math.E},
	// math functions
	"abs":   funcF64F64("abs", math.Abs),
	"ceil":  funcF64F64("ceil", math.Ceil),
	"floor": funcF64F64("floor", math.Floor),
	"round": funcF64F64("round", math.Round),
	"sqrt":  funcF64F64("sqrt", math.Sqrt),
}
