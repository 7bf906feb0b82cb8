package hwbits

// Binary arithmetic computes over the raw magnitudes, sets the result
// width to the max of the operand widths and re-masks. Overflow therefore
// wraps silently, exactly as a fixed-width hardware accumulator would.

// Pos is the unary plus. It does nothing.
func (b *Bits) Pos() *Bits {
	return b
}

// Neg is the unary minus. Two's-complement wraparound falls out of the
// trim: -x masked to width bits is 2^width - x.
func (b *Bits) Neg() *Bits {
	b.val.Neg(&b.val)
	b.trim()
	return b
}

// Add stores b + rhs in b.
func (b *Bits) Add(rhs *Bits) *Bits {
	b.val.Add(&b.val, &rhs.val)
	return b.growTo(rhs.width)
}

// Sub stores b - rhs in b.
func (b *Bits) Sub(rhs *Bits) *Bits {
	b.val.Sub(&b.val, &rhs.val)
	return b.growTo(rhs.width)
}

// Mul stores b * rhs in b.
func (b *Bits) Mul(rhs *Bits) *Bits {
	b.val.Mul(&b.val, &rhs.val)
	return b.growTo(rhs.width)
}

// Div stores b / rhs in b, truncating toward zero. Division by zero
// panics, matching the fatal precondition policy.
func (b *Bits) Div(rhs *Bits) *Bits {
	b.val.Quo(&b.val, &rhs.val)
	return b.growTo(rhs.width)
}

// Mod stores b mod rhs in b. The result is non-negative for non-negative
// operands (Euclidean modulus), which is the convention of the backing
// bignum primitive; both operands are always masked magnitudes here, so
// truncated and Euclidean modulus coincide.
func (b *Bits) Mod(rhs *Bits) *Bits {
	b.val.Mod(&b.val, &rhs.val)
	return b.growTo(rhs.width)
}

// Pow raises b to the value of rhs, which must fit a native integer, then
// re-masks to the unchanged declared width.
func (b *Bits) Pow(rhs *Bits) *Bits {
	b.scratch2.SetUint64(rhs.Uint64())
	b.val.Exp(&b.val, &b.scratch2, nil)
	b.trim()
	return b
}
