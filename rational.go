package frac

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// RationalLike is any value accepted where a fraction is expected:
// an integer, a float or a Frac.
// The set is closed; use Of to convert arbitrary Go values.
type RationalLike interface {
	// rational returns the value as num/den. The results must not be
	// modified.
	rational() (num, den *big.Int, err error)
	// isZero reports whether the value is numerically zero, without
	// converting it.
	isZero() bool
}

var (
	_ RationalLike = Int(0)
	_ RationalLike = Float(0)
	_ RationalLike = bigInt{}
	_ RationalLike = float32Value(0)
	_ RationalLike = Frac{}
)

// Int is an integer operand.
type Int int64

func (i Int) rational() (*big.Int, *big.Int, error) {
	return big.NewInt(int64(i)), bigOne, nil
}

func (i Int) isZero() bool { return i == 0 }

// Float is a floating-point operand. It converts through its shortest
// plain decimal text: 0.3 is 3/10, not the nearest binary value.
type Float float64

func (x Float) rational() (*big.Int, *big.Int, error) {
	return decimalText(float64(x), 64)
}

func (x Float) isZero() bool { return x == 0 }

type float32Value float32

func (x float32Value) rational() (*big.Int, *big.Int, error) {
	return decimalText(float64(x), 32)
}

func (x float32Value) isZero() bool { return x == 0 }

func (x float32Value) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

type bigInt struct {
	v *big.Int
}

func (b bigInt) rational() (*big.Int, *big.Int, error) {
	if b.v == nil {
		return bigZero, bigOne, nil
	}
	return b.v, bigOne, nil
}

func (b bigInt) isZero() bool { return b.v == nil || b.v.Sign() == 0 }

func (b bigInt) String() string {
	if b.v == nil {
		return "0"
	}
	return b.v.String()
}

func (f Frac) rational() (*big.Int, *big.Int, error) {
	top, bottom := f.parts()
	return top, bottom, nil
}

func (f Frac) isZero() bool { return f.IsZero() }

// valid rejects operands whose methods cannot be called: a nil interface
// or a nil *Frac.
func valid(v RationalLike) error {
	switch x := v.(type) {
	case nil:
		return fmt.Errorf("%w: nil operand", ErrUnsupportedType)
	case *Frac:
		if x == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, x)
		}
	}
	return nil
}

// pair is rational behind the nil checks of valid.
func pair(v RationalLike) (num, den *big.Int, err error) {
	if err := valid(v); err != nil {
		return nil, nil, err
	}
	return v.rational()
}

// Integer returns any Go integer as an operand.
func Integer[T constraints.Integer](v T) RationalLike {
	if v < 0 {
		return Int(int64(v))
	}
	// unsigned values may not fit in int64
	return bigInt{v: new(big.Int).SetUint64(uint64(v))}
}

// Real returns any Go float as an operand. A float32 is formatted at
// 32-bit precision, so float32(0.1) is 1/10.
func Real[T constraints.Float](v T) RationalLike {
	switch x := any(v).(type) {
	case float32:
		return float32Value(x)
	default:
		return Float(float64(v))
	}
}

// BigInt returns v as an operand. v is copied.
func BigInt(v *big.Int) RationalLike {
	if v == nil {
		return bigInt{}
	}
	return bigInt{v: new(big.Int).Set(v)}
}

// Of converts a Go value into an operand. It accepts every integer and
// float kind, *big.Int, *big.Rat, Frac, *Frac and RationalLike values.
// Anything else fails with ErrUnsupportedType.
func Of(v any) (RationalLike, error) {
	switch x := v.(type) {
	case *Frac:
		if x == nil {
			break
		}
		return *x, nil
	case RationalLike:
		return x, nil
	case int:
		return Integer(x), nil
	case int8:
		return Integer(x), nil
	case int16:
		return Integer(x), nil
	case int32:
		return Integer(x), nil
	case int64:
		return Integer(x), nil
	case uint:
		return Integer(x), nil
	case uint8:
		return Integer(x), nil
	case uint16:
		return Integer(x), nil
	case uint32:
		return Integer(x), nil
	case uint64:
		return Integer(x), nil
	case uintptr:
		return Integer(x), nil
	case float32:
		return Real(x), nil
	case float64:
		return Real(x), nil
	case *big.Int:
		if x == nil {
			break
		}
		return BigInt(x), nil
	case *big.Rat:
		if x == nil {
			break
		}
		return approx(new(big.Int).Set(x.Num()), new(big.Int).Set(x.Denom())), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
}

// decimalText converts x using its shortest round-tripping decimal in
// plain notation: k digits after the point give a denominator of 10^k.
func decimalText(x float64, bitSize int) (*big.Int, *big.Int, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, nil, fmt.Errorf("%v: %w", x, ErrNotFinite)
	}

	st := strconv.FormatFloat(x, 'f', -1, bitSize)
	num, den, ok := decimalDigits(st)
	if !ok {
		return nil, nil, fmt.Errorf("float text %q: %w", st, ErrSyntax)
	}
	return num, den, nil
}

// decimalDigits splits a plain decimal such as "-12.50" into the digits
// with the point removed and 10^k, k being the digits after the point.
func decimalDigits(st string) (num, den *big.Int, ok bool) {
	zeros := 0
	if i := strings.IndexByte(st, '.'); i >= 0 {
		zeros = len(st) - i - 1
	}

	num, ok = new(big.Int).SetString(strings.Replace(st, ".", "", 1), 10)
	if !ok {
		return nil, nil, false
	}
	den = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(zeros)), nil)
	return num, den, true
}
