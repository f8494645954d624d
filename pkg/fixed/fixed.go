// Package fixed implements Q15.16 signed fixed-point arithmetic for
// targets without an FPU. Values span roughly ±32768 with a precision
// of 1/65536.
package fixed

import "math"

// Fixed is a Q15.16 fixed-point number stored in an int32.
type Fixed int32

// Bits is the number of fractional bits.
const Bits = 16

const (
	// One is the fixed-point representation of 1.0.
	One Fixed = 1 << Bits
	// Half is the fixed-point representation of 0.5.
	Half Fixed = 1 << (Bits - 1)

	// Pi approximates π with the rational 355/113, accurate to about 3e-7.
	Pi Fixed = (355 << Bits) / 113
	// HalfPi is π/2.
	HalfPi Fixed = Pi >> 1
	// TwoPi is 2π.
	TwoPi Fixed = Pi << 1
)

// piSq is π² in Q15.16, precomputed for the sine approximation.
const piSq Fixed = Fixed((int64(Pi) * int64(Pi)) >> Bits)

// FromInt converts an integer to fixed point.
func FromInt(i int) Fixed {
	return Fixed(int64(i) << Bits)
}

// FromFloat converts a float32 to fixed point, truncating toward zero.
func FromFloat(f float32) Fixed {
	return Fixed(f * float32(One))
}

// Int converts to an integer, truncating the fraction.
func (x Fixed) Int() int {
	return int(x >> Bits)
}

// Float converts to float32.
func (x Fixed) Float() float32 {
	return float32(x) / float32(One)
}

// Mul multiplies two fixed-point values using a 64-bit intermediate.
func (x Fixed) Mul(y Fixed) Fixed {
	return Fixed((int64(x) * int64(y)) >> Bits)
}

// Div divides x by y. Division by zero yields zero.
func (x Fixed) Div(y Fixed) Fixed {
	if y == 0 {
		return 0
	}
	return Fixed((int64(x) << Bits) / int64(y))
}

// Floor rounds toward negative infinity by clearing the fraction bits.
func (x Fixed) Floor() Fixed {
	return x &^ (One - 1)
}

// Abs returns the absolute value. The minimum int32 has no positive
// counterpart and clamps to the maximum.
func (x Fixed) Abs() Fixed {
	if x == math.MinInt32 {
		return math.MaxInt32
	}
	if x < 0 {
		return -x
	}
	return x
}

// Sin computes sine with the Bhaskara I approximation
//
//	sin(x) ≈ 16x(π-x) / (5π² - 4x(π-x))
//
// for x in [0, π], with quadrant reduction for all other angles.
// Maximum error is about 0.3%.
func Sin(x Fixed) Fixed {
	sign := Fixed(1)

	if x < 0 {
		if x == math.MinInt32 {
			x = math.MaxInt32
		} else {
			x = -x
		}
		sign = -sign
	}

	if x >= TwoPi {
		x = Fixed(int64(x) % int64(TwoPi))
	}
	if x > Pi {
		x -= Pi
		sign = -sign
	}

	xp := x.Mul(Pi - x)
	denom := 5*piSq - 4*xp
	if denom == 0 {
		return 0
	}
	return sign * (16 * xp).Div(denom)
}

// Cos computes cosine as sin(x + π/2). The phase shift is done in 64
// bits so angles near the int32 limits do not overflow.
func Cos(x Fixed) Fixed {
	x64 := int64(x) + int64(HalfPi)
	if x64 > math.MaxInt32 {
		x64 %= int64(TwoPi)
	} else if x64 < math.MinInt32 {
		x64 = -((-x64) % int64(TwoPi))
	}
	return Sin(Fixed(x64))
}

// Sincos returns sin(x) and cos(x).
func Sincos(x Fixed) (sin, cos Fixed) {
	return Sin(x), Cos(x)
}

// Sqrt computes the square root with a bit-by-bit integer method.
// Non-positive inputs yield zero. The input is scaled by 2^16 first so
// the result keeps its fraction bits.
func Sqrt(a Fixed) Fixed {
	if a <= 0 {
		return 0
	}

	n := uint64(uint32(a)) << Bits
	var res uint64
	bit := uint64(1) << 62

	for bit > n {
		bit >>= 2
	}
	for bit != 0 {
		if n >= res+bit {
			n -= res + bit
			res = (res >> 1) + bit
		} else {
			res >>= 1
		}
		bit >>= 2
	}

	if res > math.MaxInt32 {
		return math.MaxInt32
	}
	return Fixed(res)
}
