package vector

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/jmorganca/f16vec/types/half"
)

// Line is one test vector: two operands, the operation applied to them and
// the expected result. Two Lines are equal exactly when their serialized
// forms are equal.
type Line struct {
	In1 float16.Float16
	In2 float16.Float16
	Op  half.Op
	Out float16.Float16
}

// NewLine computes op(in1, in2) and returns the resulting vector.
func NewLine(in1, in2 float16.Float16, op half.Op) Line {
	return Line{In1: in1, In2: in2, Op: op, Out: op.Apply(in1, in2)}
}

// String returns the record without its trailing newline, for example
// "3c00 4000 ADD 4200".
func (l Line) String() string {
	return fmt.Sprintf("%04x %04x %s %04x", l.In1.Bits(), l.In2.Bits(), l.Op, l.Out.Bits())
}
