package half

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestOpString(t *testing.T) {
	for _, tt := range []struct {
		op   Op
		want string
	}{
		{ADD, "ADD"},
		{SUB, "SUB"},
		{MUL, "MUL"},
		{DIV, "DIV"},
		{Op(7), "Op(7)"},
	} {
		assert.Equal(t, tt.want, tt.op.String())
	}
}

func TestOpsOrder(t *testing.T) {
	assert.Equal(t, [...]Op{ADD, SUB, MUL, DIV}, Ops)
}

func TestApplyInvalid(t *testing.T) {
	assert.Panics(t, func() { Op(-1).Apply(0, 0) })
}

func TestApply(t *testing.T) {
	cases := []struct {
		name    string
		op      Op
		a, b, r uint16
	}{
		{"1+2", ADD, 0x3c00, 0x4000, 0x4200},
		{"1+ulp", ADD, 0x3c00, 0x1400, 0x3c01},
		{"1+half ulp ties to even", ADD, 0x3c00, 0x1000, 0x3c00},
		{"odd+half ulp ties to even", ADD, 0x3c01, 0x1000, 0x3c02},
		{"subnormal+subnormal", ADD, 0x0001, 0x0001, 0x0002},
		{"-0+-0", ADD, 0x8000, 0x8000, 0x8000},
		{"1-1", SUB, 0x3c00, 0x3c00, 0x0000},
		{"-0-0", SUB, 0x8000, 0x0000, 0x8000},
		{"max*2 overflows", MUL, 0x7bff, 0x4000, 0x7c00},
		{"-max*2 overflows", MUL, 0xfbff, 0x4000, 0xfc00},
		{"min subnormal*0.5 ties to zero", MUL, 0x0001, 0x3800, 0x0000},
		{"3 ulp*0.5 ties to even", MUL, 0x0003, 0x3800, 0x0002},
		{"1/2", DIV, 0x3c00, 0x4000, 0x3800},
		{"1/1.5 rounds", DIV, 0x3c00, 0x3e00, 0x3955},
		{"1/inf", DIV, 0x3c00, 0x7c00, 0x0000},
		{"-1/inf", DIV, 0xbc00, 0x7c00, 0x8000},
		{"max/min subnormal overflows", DIV, 0x7bff, 0x0001, 0x7c00},
		{"1/+0", DIV, 0x3c00, 0x0000, 0x0000},
		{"1/-0", DIV, 0x3c00, 0x8000, 0x0000},
		{"-1/-0", DIV, 0xbc00, 0x8000, 0x0000},
		{"0/0", DIV, 0x0000, 0x0000, 0x0000},
		{"nan/0", DIV, 0x7e00, 0x0000, 0x0000},
		{"inf/0", DIV, 0x7c00, 0x8000, 0x0000},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op.Apply(float16.Frombits(tt.a), float16.Frombits(tt.b))
			assert.Equalf(t, tt.r, got.Bits(), "%04x %s %04x", tt.a, tt.op, tt.b)
		})
	}
}

func TestApplyNaN(t *testing.T) {
	cases := []struct {
		op   Op
		a, b uint16
	}{
		{ADD, 0x7c00, 0xfc00},
		{SUB, 0x7c00, 0x7c00},
		{MUL, 0x0000, 0x7c00},
		{DIV, 0x7c00, 0xfc00},
		{ADD, 0x7e00, 0x3c00},
		{MUL, 0x3c00, 0xfd01},
		{DIV, 0x3c00, 0x7e00},
	}

	for _, tt := range cases {
		got := tt.op.Apply(float16.Frombits(tt.a), float16.Frombits(tt.b))
		assert.Truef(t, got.IsNaN(), "%04x %s %04x = %04x", tt.a, tt.op, tt.b, got.Bits())
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(float16.Frombits(0x0000)))
	assert.True(t, IsZero(float16.Frombits(0x8000)))
	assert.False(t, IsZero(float16.Frombits(0x0001)))
	assert.False(t, IsZero(float16.Frombits(0x8001)))
	assert.False(t, IsZero(float16.Frombits(0x7e00)))
}

// decode converts binary16 bits to float64 without going through float32.
func decode(u uint16) float64 {
	sign := 1.0
	if u&0x8000 != 0 {
		sign = -1
	}

	exp := int(u>>10) & 0x1f
	frac := float64(u & 0x3ff)
	switch exp {
	case 0x1f:
		if frac != 0 {
			return math.NaN()
		}
		return math.Inf(int(sign))
	case 0:
		return sign * math.Ldexp(frac, -24)
	}

	return sign * math.Ldexp(1024+frac, exp-25)
}

// encode rounds x to the nearest binary16, ties to even.
func encode(x float64) uint16 {
	if math.IsNaN(x) {
		return 0x7e00
	}

	var sign uint16
	if math.Signbit(x) {
		sign = 0x8000
	}

	ax := math.Abs(x)
	if ax >= 65520 {
		return sign | 0x7c00
	}

	if ax < math.Ldexp(1, -14) {
		// at most 1024, which is also the bit pattern of the smallest normal
		return sign | uint16(math.RoundToEven(math.Ldexp(ax, 24)))
	}

	_, e := math.Frexp(ax)
	e--
	mant := math.RoundToEven(math.Ldexp(ax, 10-e))
	if mant == 2048 {
		mant = 1024
		e++
	}

	return sign | uint16(e+15)<<10 | (uint16(mant) - 1024)
}

func reference(op Op, a, b uint16) uint16 {
	x, y := decode(a), decode(b)
	switch op {
	case ADD:
		return encode(x + y)
	case SUB:
		return encode(x - y)
	case MUL:
		return encode(x * y)
	case DIV:
		if y == 0 {
			return 0
		}
		return encode(x / y)
	}

	panic("unreachable")
}

func checkReference(t *testing.T, op Op, a, b uint16) {
	t.Helper()
	want := reference(op, a, b)
	got := op.Apply(float16.Frombits(a), float16.Frombits(b))
	if float16.Frombits(want).IsNaN() {
		if !got.IsNaN() {
			t.Errorf("%04x %s %04x: expected NaN, got %04x", a, op, b, got.Bits())
		}
		return
	}

	if got.Bits() != want {
		t.Errorf("%04x %s %04x: expected %04x, got %04x", a, op, b, want, got.Bits())
	}
}

func TestReference(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200_000 {
		a, b := uint16(r.Uint32()), uint16(r.Uint32())
		for _, op := range Ops {
			checkReference(t, op, a, b)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for u := range 0x10000 {
		bits := uint16(u)
		if float16.Frombits(bits).IsNaN() {
			continue
		}

		require.Equal(t, bits, encode(decode(bits)), "%04x", bits)
		require.Equal(t, float64(float16.Frombits(bits).Float32()), decode(bits), "%04x", bits)
	}
}

func FuzzApply(f *testing.F) {
	f.Add(uint16(0x3c00), uint16(0x4000))
	f.Add(uint16(0x7bff), uint16(0x0001))
	f.Add(uint16(0x8000), uint16(0x0000))

	f.Fuzz(func(t *testing.T, a, b uint16) {
		for _, op := range Ops {
			checkReference(t, op, a, b)
		}
	})
}

func BenchmarkApply(b *testing.B) {
	x, y := float16.Frombits(0x3c00), float16.Frombits(0x4000)
	for _, op := range Ops {
		b.Run(op.String(), func(b *testing.B) {
			for range b.N {
				_ = op.Apply(x, y)
			}
		})
	}
}
