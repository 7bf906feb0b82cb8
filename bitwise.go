package hwbits

// Binary bitwise operators take the max of the operand widths. The shorter
// operand zero-extends for free: a magnitude narrower than the result width
// already reads as zero in its high bits.

// And stores b & rhs in b.
func (b *Bits) And(rhs *Bits) *Bits {
	b.val.And(&b.val, &rhs.val)
	return b.Resize(maxWidth(b, rhs))
}

// Or stores b | rhs in b.
func (b *Bits) Or(rhs *Bits) *Bits {
	b.val.Or(&b.val, &rhs.val)
	return b.Resize(maxWidth(b, rhs))
}

// Xor stores b ^ rhs in b.
func (b *Bits) Xor(rhs *Bits) *Bits {
	b.val.Xor(&b.val, &rhs.val)
	return b.Resize(maxWidth(b, rhs))
}

// Xnor stores ~(b ^ rhs) in b.
func (b *Bits) Xnor(rhs *Bits) *Bits {
	return b.Xor(rhs).Not()
}

// Not complements b. The complement of an arbitrary-precision integer
// flips infinitely many high bits; the trim bounds it back to the
// register.
func (b *Bits) Not() *Bits {
	b.val.Not(&b.val)
	b.trim()
	return b
}

// Sll shifts b left by the value of rhs, which must fit a native integer.
// Bits shifted past the declared width are discarded; the width itself is
// unchanged.
func (b *Bits) Sll(rhs *Bits) *Bits {
	b.val.Lsh(&b.val, uint(rhs.Uint64()))
	b.trim()
	return b
}

// Sal is the arithmetic left shift, a synonym for Sll.
func (b *Bits) Sal(rhs *Bits) *Bits {
	return b.Sll(rhs)
}

// Slr shifts b right by the value of rhs, filling vacated high bits with
// zero.
func (b *Bits) Slr(rhs *Bits) *Bits {
	b.val.Rsh(&b.val, uint(rhs.Uint64()))
	return b
}

// Sar shifts b right by the value of rhs, replicating the sign bit that
// sat at position width-1 before the shift. The underlying shift is a
// truncating division that never sign-extends, so when the sign bit was
// set a block of `amount` ones is constructed and ORed into the top of the
// window.
func (b *Bits) Sar(rhs *Bits) *Bits {
	amt := uint(rhs.Uint64())
	b.val.Rsh(&b.val, amt)
	if amt == 0 || amt >= uint(b.width) {
		return b
	}
	if b.val.Bit(b.width-int(amt)-1) == 1 {
		b.scratch1.Lsh(one, amt)
		b.scratch1.Sub(&b.scratch1, one)
		b.scratch1.Lsh(&b.scratch1, uint(b.width)-amt)
		b.val.Or(&b.val, &b.scratch1)
	}
	return b
}
