package value

import "math/big"

var bigOne = big.NewInt(1)

// Modulus returns 2^w.
func Modulus(w int) *big.Int {
	return new(big.Int).Lsh(bigOne, uint(w))
}

// Mask returns 2^w - 1.
func Mask(w int) *big.Int {
	m := Modulus(w)
	return m.Sub(m, bigOne)
}

// Canon returns x mod 2^w as a new non-negative integer.
func Canon(x *big.Int, w int) *big.Int {
	// And on a negative big.Int follows two's complement, which is exactly
	// the residue for a power-of-two modulus.
	return new(big.Int).And(x, Mask(w))
}

// ToSigned reconstructs the two's-complement value of x at width w.
func ToSigned(x *big.Int, w int) *big.Int {
	c := Canon(x, w)
	if c.Bit(w-1) == 1 {
		return c.Sub(c, Modulus(w))
	}
	return c
}

// MinSigned returns -2^(w-1), the value whose negation wraps to itself.
func MinSigned(w int) *big.Int {
	m := new(big.Int).Lsh(bigOne, uint(w-1))
	return m.Neg(m)
}
