package calculadora

import "math/big"

//AddBig returns a+b in a new big.Int. Operands are not modified.
func AddBig(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

//MultiplyBig returns a*b in a new big.Int. Operands are not modified.
func MultiplyBig(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}
