// Package decimal implements the fixed-point decimal type used by the data
// generator. The arithmetic mirrors the reference C generator, including its
// quirks: addition and subtraction do not rescale operands to a common
// precision before combining, multiplication truncates toward zero, and
// division goes through 32-bit floats. Output compatibility depends on
// keeping those behaviors, so do not "fix" them.
package decimal

import (
	"fmt"
	"strconv"
	"strings"
)

// Decimal is an unscaled integer paired with a precision (count of fractional
// digits). The zero value is 0 at precision 0.
type Decimal struct {
	number    int64
	precision int32
}

var (
	Zero        = Decimal{number: 0, precision: 2}
	OneHalf     = Decimal{number: 50, precision: 2}
	NinePercent = Decimal{number: 9, precision: 2}
	One         = Decimal{number: 100, precision: 2}
	OneHundred  = Decimal{number: 10000, precision: 2}
)

// New builds a decimal from an unscaled number and a precision.
func New(number int64, precision int32) (Decimal, error) {
	if precision < 0 {
		return Decimal{}, fmt.Errorf("invalid decimal precision %d: must be >= 0", precision)
	}
	return Decimal{number: number, precision: precision}, nil
}

// MustNew is New for compile-time-constant arguments.
func MustNew(number int64, precision int32) Decimal {
	d, err := New(number, precision)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse reads a decimal string such as "123.45". Precision is taken from the
// number of digits after the point; a string without a point has precision 0.
func Parse(s string) (Decimal, error) {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		fractional := s[i+1:]
		number, err := strconv.ParseInt(s[:i]+fractional, 10, 64)
		if err != nil {
			return Decimal{}, fmt.Errorf("malformed decimal %q: %w", s, err)
		}
		return New(number, int32(len(fractional)))
	}
	number, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("malformed decimal %q: %w", s, err)
	}
	return New(number, 0)
}

// FromInt converts an integer to a precision-0 decimal.
func FromInt(v int32) Decimal {
	return Decimal{number: int64(v), precision: 0}
}

func (d Decimal) Number() int64    { return d.number }
func (d Decimal) Precision() int32 { return d.precision }

// Add sums the unscaled numbers directly; operands of different precision are
// not aligned first.
func Add(a, b Decimal) Decimal {
	return Decimal{number: a.number + b.number, precision: maxPrecision(a, b)}
}

func Subtract(a, b Decimal) Decimal {
	return Decimal{number: a.number - b.number, precision: maxPrecision(a, b)}
}

// Multiply truncates the product back to the larger operand precision one
// digit at a time, rounding toward zero.
func Multiply(a, b Decimal) Decimal {
	precision := maxPrecision(a, b)
	number := a.number * b.number
	for i := precision + 1; i <= a.precision+b.precision; i++ {
		number /= 10
	}
	return Decimal{number: number, precision: precision}
}

// Divide performs the division in float32 space like the reference generator.
func Divide(a, b Decimal) Decimal {
	precision := maxPrecision(a, b)

	f1 := float32(a.number)
	for i := a.precision; i < precision; i++ {
		f1 *= 10
	}
	for i := int32(0); i < precision; i++ {
		f1 *= 10
	}

	f2 := float32(b.number)
	for i := b.precision; i < precision; i++ {
		f2 *= 10
	}

	return Decimal{number: int64(f1 / f2), precision: precision}
}

func Negate(d Decimal) Decimal {
	return Decimal{number: -d.number, precision: d.precision}
}

// String formats with exactly precision fractional digits. The value is
// scaled down through float64, matching the reference formatter.
func (d Decimal) String() string {
	temp := float64(d.number)
	for i := int32(0); i < d.precision; i++ {
		temp /= 10
	}
	return strconv.FormatFloat(temp, 'f', int(d.precision), 64)
}

func maxPrecision(a, b Decimal) int32 {
	if a.precision > b.precision {
		return a.precision
	}
	return b.precision
}
