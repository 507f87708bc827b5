// Package fixed provides a 16.16 signed fixed-point number.
//
// The scaled blit path accumulates source coordinates in this format so that
// stepping across a row gives the same result on every platform, with no
// floating-point drift between the first and the last column.
package fixed

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Shift is the number of fractional bits.
const Shift = 16

// One is the raw representation of 1.0.
const One Fixed = 1 << Shift

// MaxInt is the largest integer FromInt converts without wrapping.
const MaxInt = 1<<(31-Shift) - 1

const fracMask = 1<<Shift - 1

// Parse errors.
var (
	// ErrSyntax is returned when a string is not a decimal number.
	ErrSyntax = errors.New("fixed: invalid syntax")

	// ErrRange is returned when a value does not fit in 16.16.
	ErrRange = errors.New("fixed: value out of range")
)

// Fixed is a signed 32-bit integer encoding value × 65536.
type Fixed int32

// FromInt converts an integer. Values outside ±MaxInt wrap.
func FromInt(i int) Fixed {
	return Fixed(int32(i) << Shift)
}

// FromFloat converts a real number, truncating toward zero. Values outside
// the representable range saturate at the nearest bound; NaN becomes 0.
func FromFloat(f float64) Fixed {
	v := f * float64(One)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt32:
		return Fixed(math.MaxInt32)
	case v <= math.MinInt32:
		return Fixed(math.MinInt32)
	}
	return Fixed(int32(v))
}

// FromRaw wraps an already-scaled raw value.
func FromRaw(raw int32) Fixed {
	return Fixed(raw)
}

// Raw returns the underlying scaled integer.
func (f Fixed) Raw() int32 {
	return int32(f)
}

// Add returns f + g.
func (f Fixed) Add(g Fixed) Fixed {
	return f + g
}

// Sub returns f - g.
func (f Fixed) Sub(g Fixed) Fixed {
	return f - g
}

// Mul returns f × g, computed in 64 bits and truncated back to 16.16.
func (f Fixed) Mul(g Fixed) Fixed {
	return Fixed(int32((int64(f) * int64(g)) >> Shift))
}

// Div returns f / g. The dividend is widened by 16 bits before dividing.
// Like integer division, Div panics when g is zero.
func (f Fixed) Div(g Fixed) Fixed {
	return Fixed(int32((int64(f) << Shift) / int64(g)))
}

// Int truncates to an integer with an arithmetic shift, so negative values
// round toward negative infinity: -0.5 becomes -1.
func (f Fixed) Int() int {
	return int(int32(f) >> Shift)
}

// Float64 returns the value as a float64. Intended for diagnostics.
func (f Fixed) Float64() float64 {
	return float64(f) / float64(One)
}

// String formats the value with four fractional digits.
func (f Fixed) String() string {
	return f.Format(4)
}

// Format formats the value with prec fractional digits. Digits are produced
// by repeated multiplication of the fraction, so the output is truncated,
// never rounded.
func (f Fixed) Format(prec int) string {
	raw := int64(f)
	var sb strings.Builder
	if raw < 0 {
		sb.WriteByte('-')
		raw = -raw
	}
	sb.WriteString(strconv.FormatInt(raw>>Shift, 10))

	if prec > 0 {
		sb.WriteByte('.')
		frac := raw & fracMask
		for range prec {
			frac *= 10
			sb.WriteByte(byte('0' + frac>>Shift))
			frac &= fracMask
		}
	}
	return sb.String()
}

// Parse reads a decimal string such as "1.5", "-3" or "+0.25".
// Exponents, hex and surrounding whitespace are rejected.
func Parse(s string) (Fixed, error) {
	if s == "" {
		return 0, ErrSyntax
	}

	i := 0
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}
	if i >= len(s) || !isDigit(s[i]) {
		return 0, ErrSyntax
	}

	var intPart int64
	for ; i < len(s) && isDigit(s[i]); i++ {
		intPart = intPart*10 + int64(s[i]-'0')
		if intPart > math.MaxInt16+1 {
			return 0, ErrRange
		}
	}

	var fracPart, scale int64 = 0, 1
	if i < len(s) && s[i] == '.' {
		i++
		for ; i < len(s) && isDigit(s[i]); i++ {
			// Digits beyond what 16 fractional bits can resolve are dropped.
			if scale < 1e9 {
				fracPart = fracPart*10 + int64(s[i]-'0')
				scale *= 10
			}
		}
	}
	if i != len(s) {
		return 0, ErrSyntax
	}

	raw := intPart << Shift
	if scale > 1 {
		raw += (fracPart << Shift) / scale
	}
	if neg {
		raw = -raw
	}
	if raw < math.MinInt32 || raw > math.MaxInt32 {
		return 0, ErrRange
	}
	return Fixed(raw), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
