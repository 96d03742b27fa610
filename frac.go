// Package frac implements an exact rational number type.
//
// A Frac is always kept reduced to lowest terms with a positive
// denominator, and zero is always 0/1. Values are immutable: every
// operation returns a new Frac and never touches its operands, so a Frac
// can be copied and shared between goroutines freely.
//
// Operands are passed as RationalLike, a closed set of integer, float and
// Frac values. Floats are converted through their shortest decimal text,
// so 0.1 becomes exactly 1/10.
package frac

import (
	"fmt"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// Frac is a normalized fraction top/bottom.
// The zero value is 0/1.
//
// Frac holds pointers, so == compares identity rather than value. Compare
// with Equal or Cmp.
type Frac struct {
	top    *big.Int
	bottom *big.Int
}

// New returns numerator/denominator.
// It fails with ErrDivisionByZero if denominator is zero, before either
// operand is converted.
func New(numerator, denominator RationalLike) (Frac, error) {
	if err := valid(numerator); err != nil {
		return Frac{}, err
	}
	if err := valid(denominator); err != nil {
		return Frac{}, err
	}
	if denominator.isZero() {
		return Frac{}, fmt.Errorf("new %v/%v: %w", numerator, denominator, ErrDivisionByZero)
	}

	numA, denA, err := numerator.rational()
	if err != nil {
		return Frac{}, err
	}
	numB, denB, err := denominator.rational()
	if err != nil {
		return Frac{}, err
	}

	top := new(big.Int).Mul(numA, denB)
	bottom := new(big.Int).Mul(numB, denA)
	return approx(top, bottom), nil
}

// From returns v as a Frac.
func From(v RationalLike) (Frac, error) {
	return New(v, Int(1))
}

// NewFrac returns top/bottom.
func NewFrac(top, bottom int64) (Frac, error) {
	return New(Int(top), Int(bottom))
}

// Float2Frac converts x through its shortest decimal representation.
func Float2Frac(x float64) (Frac, error) {
	return From(Float(x))
}

// Must panics if err is non-nil.
func Must(f Frac, err error) Frac {
	if err != nil {
		panic(err)
	}
	return f
}

// approx takes ownership of top and bottom. bottom must be non-zero.
func approx(top, bottom *big.Int) Frac { // 約分
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(top), new(big.Int).Abs(bottom))
	if gcd.Cmp(bigOne) != 0 { // gcd != 1
		top.Quo(top, gcd)
		bottom.Quo(bottom, gcd)
	}

	if bottom.Sign() < 0 {
		top.Neg(top)
		bottom.Neg(bottom)
	}

	return Frac{top: top, bottom: bottom}
}

func (f Frac) parts() (top, bottom *big.Int) {
	if f.top == nil || f.bottom == nil {
		return bigZero, bigOne
	}
	return f.top, f.bottom
}

// Numerator returns a copy of the numerator. Its sign is the sign of f.
func (f Frac) Numerator() *big.Int {
	top, _ := f.parts()
	return new(big.Int).Set(top)
}

// Denominator returns a copy of the denominator. It is always positive.
func (f Frac) Denominator() *big.Int {
	_, bottom := f.parts()
	return new(big.Int).Set(bottom)
}

// Num64 returns the numerator as an int64 and whether it fits.
func (f Frac) Num64() (int64, bool) {
	top, _ := f.parts()
	return top.Int64(), top.IsInt64()
}

// Denom64 returns the denominator as an int64 and whether it fits.
func (f Frac) Denom64() (int64, bool) {
	_, bottom := f.parts()
	return bottom.Int64(), bottom.IsInt64()
}

// Inverse returns Bottom/Top.
// Inverting zero fails with ErrDivisionByZero.
func (f Frac) Inverse() (Frac, error) {
	top, bottom := f.parts()
	if top.Sign() == 0 {
		return Frac{}, fmt.Errorf("inverse of %s: %w", f, ErrDivisionByZero)
	}
	return approx(new(big.Int).Set(bottom), new(big.Int).Set(top)), nil
}

// Sign returns -1, 0 or +1.
func (f Frac) Sign() int {
	top, _ := f.parts()
	return top.Sign()
}

func (f Frac) IsZero() bool {
	return f.Sign() == 0
}

func (f Frac) String() string {
	top, bottom := f.parts()
	return fmt.Sprintf("%d/%d", top, bottom)
}

// Float returns the nearest float64. It is a lossy view and is never
// used for comparison.
func (f Frac) Float() float64 {
	v, _ := f.Rat().Float64()
	return v
}

// Rat returns f as a new big.Rat.
func (f Frac) Rat() *big.Rat {
	top, bottom := f.parts()
	return new(big.Rat).SetFrac(top, bottom)
}
