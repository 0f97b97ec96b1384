// Package half implements the binary16 operations exercised by the vector
// generator.
//
// Operands and results are float16.Float16 values, which are the raw 16-bit
// patterns. Nothing here converts numerically between uint16 and a float; a
// bit pattern is always reinterpreted as is so NaN payloads and signed zeros
// survive unchanged.
package half

import (
	"fmt"

	"github.com/x448/float16"
)

// Op is one of the arithmetic operations of the unit under test.
type Op int

const (
	ADD Op = iota
	SUB
	MUL
	DIV
)

// Ops lists every operation in the order vectors are generated.
var Ops = [...]Op{ADD, SUB, MUL, DIV}

func (o Op) String() string {
	switch o {
	case ADD:
		return "ADD"
	case SUB:
		return "SUB"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	}

	return fmt.Sprintf("Op(%d)", int(o))
}

// Apply computes o(a, b).
func (o Op) Apply(a, b float16.Float16) float16.Float16 {
	switch o {
	case ADD:
		return Add(a, b)
	case SUB:
		return Sub(a, b)
	case MUL:
		return Mul(a, b)
	case DIV:
		return Div(a, b)
	}

	panic(fmt.Sprintf("half: invalid operation %d", int(o)))
}

// The operations below widen to float32, which holds every binary16 value
// exactly and has enough precision (24 >= 2*11+2 bits) that rounding the
// float32 result to binary16 gives the correctly rounded binary16 result.

func Add(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() + b.Float32())
}

func Sub(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() - b.Float32())
}

func Mul(a, b float16.Float16) float16.Float16 {
	return float16.Fromfloat32(a.Float32() * b.Float32())
}

// Div returns a/b, except that any division by a numeric zero of either sign
// yields +0 (0x0000) instead of an infinity or NaN.
func Div(a, b float16.Float16) float16.Float16 {
	if IsZero(b) {
		return float16.Frombits(0)
	}

	return float16.Fromfloat32(a.Float32() / b.Float32())
}

// IsZero reports whether f is +0 or -0.
func IsZero(f float16.Float16) bool {
	return f.Bits()&0x7fff == 0
}
