package numtheory

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when a modular inverse is requested for arguments that are not coprime.
var ErrNoInverse = errors.New("no modular inverse")

// EuclidResult holds the gcd and Bézout coefficients with A*X + B*Y = GCD.
type EuclidResult struct {
	GCD int64
	X   int64
	Y   int64
}

// ExtendedGCD returns gcd(a, b) together with coefficients x, y such that a*x + b*y = gcd(a, b).
// The gcd is never negative. ExtendedGCD(0, b) returns (b, 0, 1).
// Arguments must be greater than math.MinInt64, whose gcd of 2^63 cannot be represented.
func ExtendedGCD(a, b int64) EuclidResult {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}

	return EuclidResult{GCD: oldR, X: oldS, Y: oldT}
}

// GCD returns the non-negative greatest common divisor of a and b.
// The domain is the same as for ExtendedGCD.
func GCD(a, b int64) int64 {
	return ExtendedGCD(a, b).GCD
}

// ModInverse returns x in [0, m) with a*x ≡ 1 (mod m).
// It fails with ErrNoInverse when gcd(a, m) != 1 or m < 2.
func ModInverse(a, m int64) (int64, error) {
	if m < 2 {
		return 0, ErrNoInverse
	}

	res := ExtendedGCD(mod(a, m), m)
	if res.GCD != 1 {
		return 0, ErrNoInverse
	}

	return mod(res.X, m), nil
}

// ModInverseBig is the arbitrary-precision counterpart of ModInverse.
// The result is a new value in [0, m).
func ModInverseBig(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(big.NewInt(2)) < 0 {
		return nil, ErrNoInverse
	}

	inv := new(big.Int).ModInverse(a, m)
	if inv == nil {
		return nil, ErrNoInverse
	}

	return inv, nil
}

// mod returns a mod m normalized into [0, m) for m > 0.
func mod(a, m int64) int64 {
	return ((a % m) + m) % m
}
