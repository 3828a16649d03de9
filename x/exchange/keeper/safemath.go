package keeper

import (
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// Overflow-safe arithmetic for settlement math. All pool computations widen
// to big.Int and reject any result at or above 2^256, so reserve updates
// either produce an exact integer or fail the whole operation.

var maxInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: addition result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, fmt.Errorf("underflow: cannot subtract %s from %s", b.String(), a.String())
	}
	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: multiplication result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division by zero checking.
// The quotient is truncated toward zero.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}
	result := new(big.Int).Quo(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv computes floor(a * b / c). The intermediate product is held in
// a big.Int, so a*b may exceed 2^256 as long as the quotient fits.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, fmt.Errorf("division by zero")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := intermediate.Quo(intermediate, c.BigInt())
	if result.Cmp(maxInt) >= 0 {
		return math.Int{}, fmt.Errorf("overflow: mul-div result exceeds maximum value")
	}
	return math.NewIntFromBigInt(result), nil
}

// IntegerSqrt returns floor(sqrt(v)) computed with Newton's method on
// big.Int. Used to mint the initial share supply of a fresh pool.
func IntegerSqrt(v math.Int) (math.Int, error) {
	if v.IsNegative() {
		return math.Int{}, fmt.Errorf("square root of negative value %s", v.String())
	}
	x := v.BigInt()
	if x.Sign() == 0 {
		return math.ZeroInt(), nil
	}

	z := new(big.Int).Rsh(new(big.Int).Add(x, big.NewInt(1)), 1)
	y := new(big.Int).Set(x)
	for z.Cmp(y) < 0 {
		y.Set(z)
		t := new(big.Int).Quo(x, z)
		t.Add(t, z)
		z = new(big.Int).Rsh(t, 1)
	}
	return math.NewIntFromBigInt(y), nil
}
