package frac

import (
	"fmt"
	"math/big"
)

// Add returns f + n.
func (f Frac) Add(n RationalLike) (Frac, error) {
	c, d, err := pair(n)
	if err != nil {
		return Frac{}, err
	}
	a, b := f.parts()

	top := new(big.Int).Mul(a, d)
	top.Add(top, new(big.Int).Mul(c, b))

	bottom := new(big.Int).Mul(b, d)
	return approx(top, bottom), nil
}

// Neg returns -f.
func (f Frac) Neg() Frac {
	top, bottom := f.parts()
	return approx(new(big.Int).Neg(top), new(big.Int).Set(bottom))
}

// Abs returns |f|.
func (f Frac) Abs() Frac {
	if f.Sign() < 0 {
		return f.Neg()
	}
	return f
}

// Sub returns f + (-n).
func (f Frac) Sub(n RationalLike) (Frac, error) {
	o, err := From(n)
	if err != nil {
		return Frac{}, err
	}
	return f.Add(o.Neg())
}

// Mul returns f * n.
func (f Frac) Mul(n RationalLike) (Frac, error) {
	c, d, err := pair(n)
	if err != nil {
		return Frac{}, err
	}
	a, b := f.parts()

	top := new(big.Int).Mul(a, c)
	bottom := new(big.Int).Mul(b, d)
	return approx(top, bottom), nil
}

// Div returns f multiplied by the inverse of n.
// Dividing by zero fails with ErrDivisionByZero.
func (f Frac) Div(n RationalLike) (Frac, error) {
	o, err := From(n)
	if err != nil {
		return Frac{}, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return Frac{}, err
	}
	return f.Mul(inv)
}

// Mod returns the remainder of f divided by n. The result lies in
// [0, |n|). Mod by zero fails with ErrDivisionByZero.
func (f Frac) Mod(n RationalLike) (Frac, error) {
	c, d, err := pair(n)
	if err != nil {
		return Frac{}, err
	}
	if c.Sign() == 0 {
		return Frac{}, fmt.Errorf("%s mod %v: %w", f, n, ErrDivisionByZero)
	}
	a, b := f.parts()

	top := new(big.Int).Mul(a, d)
	top.Mod(top, new(big.Int).Mul(b, c))

	bottom := new(big.Int).Mul(b, d)
	return approx(top, bottom), nil
}

// Pow returns f**n. A negative n raises the inverse, so zero to a
// negative power fails with ErrDivisionByZero.
func (f Frac) Pow(n int64) (Frac, error) {
	base := f
	if n < 0 {
		inv, err := f.Inverse()
		if err != nil {
			return Frac{}, err
		}
		base = inv
	}

	exp := new(big.Int).Abs(big.NewInt(n))
	top, bottom := base.parts()
	return approx(new(big.Int).Exp(top, exp, nil), new(big.Int).Exp(bottom, exp, nil)), nil
}

// Equal reports whether f and n normalize to the same fraction.
// A value that cannot be converted, such as NaN, is never equal.
func (f Frac) Equal(n RationalLike) bool {
	o, err := From(n)
	if err != nil {
		return false
	}
	a, b := f.parts()
	c, d := o.parts()
	return a.Cmp(c) == 0 && b.Cmp(d) == 0
}

// Cmp compares f and n by cross multiplication and returns -1, 0 or +1.
func (f Frac) Cmp(n RationalLike) (int, error) {
	c, d, err := pair(n)
	if err != nil {
		return 0, err
	}
	a, b := f.parts()

	// both denominators are positive
	left := new(big.Int).Mul(a, d)
	right := new(big.Int).Mul(c, b)
	return left.Cmp(right), nil
}

// The package level forms take any operand on the left, so 1 - f is
// Sub(Int(1), f).

// Add returns x + y.
func Add(x, y RationalLike) (Frac, error) {
	fx, err := From(x)
	if err != nil {
		return Frac{}, err
	}
	return fx.Add(y)
}

// Sub returns x + (-y).
func Sub(x, y RationalLike) (Frac, error) {
	fx, err := From(x)
	if err != nil {
		return Frac{}, err
	}
	return fx.Sub(y)
}

// Mul returns x * y.
func Mul(x, y RationalLike) (Frac, error) {
	fx, err := From(x)
	if err != nil {
		return Frac{}, err
	}
	return fx.Mul(y)
}

// Div returns the inverse of y multiplied by x.
func Div(x, y RationalLike) (Frac, error) {
	fy, err := From(y)
	if err != nil {
		return Frac{}, err
	}
	inv, err := fy.Inverse()
	if err != nil {
		return Frac{}, err
	}
	return inv.Mul(x)
}

// Equal reports whether x and y normalize to the same fraction.
func Equal(x, y RationalLike) bool {
	fx, err := From(x)
	if err != nil {
		return false
	}
	return fx.Equal(y)
}

// Mod returns the remainder of x divided by y.
func Mod(x, y RationalLike) (Frac, error) {
	fx, err := From(x)
	if err != nil {
		return Frac{}, err
	}
	return fx.Mod(y)
}

// Cmp compares x and y exactly.
func Cmp(x, y RationalLike) (int, error) {
	fx, err := From(x)
	if err != nil {
		return 0, err
	}
	return fx.Cmp(y)
}
