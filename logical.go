package hwbits

import "math/bits"

// Logical operators reduce both operands to a 0/1 truth value and collapse
// the result to width 1. The comparisons look at magnitude only: two
// vectors of different width but equal magnitude compare logically equal.
// Equal and Less are the width-aware counterparts.

// LogicalAnd stores the truth value of b && rhs.
func (b *Bits) LogicalAnd(rhs *Bits) *Bits {
	return b.setBool(b.Bool() && rhs.Bool())
}

// LogicalOr stores the truth value of b || rhs.
func (b *Bits) LogicalOr(rhs *Bits) *Bits {
	return b.setBool(b.Bool() || rhs.Bool())
}

// LogicalNot stores the truth value of !b.
func (b *Bits) LogicalNot() *Bits {
	return b.setBool(!b.Bool())
}

// LogicalEq stores the truth value of b == rhs, comparing magnitudes only.
func (b *Bits) LogicalEq(rhs *Bits) *Bits {
	return b.setBool(b.val.Cmp(&rhs.val) == 0)
}

// LogicalNe stores the truth value of b != rhs.
func (b *Bits) LogicalNe(rhs *Bits) *Bits {
	return b.setBool(b.val.Cmp(&rhs.val) != 0)
}

// LogicalLt stores the truth value of b < rhs.
func (b *Bits) LogicalLt(rhs *Bits) *Bits {
	return b.setBool(b.val.Cmp(&rhs.val) < 0)
}

// LogicalLte stores the truth value of b <= rhs.
func (b *Bits) LogicalLte(rhs *Bits) *Bits {
	return b.setBool(b.val.Cmp(&rhs.val) <= 0)
}

// LogicalGt stores the truth value of b > rhs.
func (b *Bits) LogicalGt(rhs *Bits) *Bits {
	return b.setBool(b.val.Cmp(&rhs.val) > 0)
}

// LogicalGte stores the truth value of b >= rhs.
func (b *Bits) LogicalGte(rhs *Bits) *Bits {
	return b.setBool(b.val.Cmp(&rhs.val) >= 0)
}

// Reduction operators fold all declared bits into a single truth value.
// The magnitude is always pre-masked to the width, so no stray high bits
// can inflate the population count.

// ReduceAnd stores 1 iff every declared bit is set.
func (b *Bits) ReduceAnd() *Bits {
	return b.setBool(b.popCount() == b.width)
}

// ReduceNand stores 1 iff at least one declared bit is clear.
func (b *Bits) ReduceNand() *Bits {
	return b.setBool(b.popCount() != b.width)
}

// ReduceOr stores 1 iff any bit is set.
func (b *Bits) ReduceOr() *Bits {
	return b.setBool(b.val.Sign() != 0)
}

// ReduceNor stores 1 iff no bit is set.
func (b *Bits) ReduceNor() *Bits {
	return b.setBool(b.val.Sign() == 0)
}

// ReduceXor stores the parity of the population count: 1 iff an odd
// number of bits is set.
func (b *Bits) ReduceXor() *Bits {
	return b.setBool(b.popCount()&1 == 1)
}

// ReduceXnor stores 1 iff an even number of bits is set.
func (b *Bits) ReduceXnor() *Bits {
	return b.setBool(b.popCount()&1 == 0)
}

func (b *Bits) popCount() int {
	n := 0
	for _, w := range b.val.Bits() {
		n += bits.OnesCount(uint(w))
	}
	return n
}
