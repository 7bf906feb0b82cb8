package hwbits

import "fmt"

// Concat places b in the most significant position and rhs below it. The
// new width is the sum of the operand widths.
func (b *Bits) Concat(rhs *Bits) *Bits {
	b.val.Lsh(&b.val, uint(rhs.width))
	b.val.Or(&b.val, &rhs.val)
	b.width += rhs.width
	return b
}

// Slice extracts the single bit at idx as a 1-bit vector. It panics if idx
// is outside the declared width.
func (b *Bits) Slice(idx int) *Bits {
	b.checkIndex(idx)
	b.val.Rsh(&b.val, uint(idx))
	return b.ResizeToBool()
}

// SliceRange extracts the inclusive bit range [lsb, msb] as a vector of
// width msb-lsb+1. It panics unless lsb <= msb < width.
func (b *Bits) SliceRange(msb, lsb int) *Bits {
	b.checkRange(msb, lsb)
	b.val.Rsh(&b.val, uint(lsb))
	return b.Resize(msb - lsb + 1)
}

// EqBit reports whether bit idx of b equals bit 0 of rhs. Bits beyond
// either declared width read as zero.
func (b *Bits) EqBit(rhs *Bits, idx int) bool {
	return b.val.Bit(idx) == rhs.val.Bit(0)
}

// EqRange reports whether the inclusive bit range [lsb, msb] of b equals
// the magnitude of rhs. Only scratch storage is touched; the persistent
// state of both operands is unchanged.
func (b *Bits) EqRange(rhs *Bits, msb, lsb int) bool {
	b.checkRange(msb, lsb)
	b.scratch1.Rsh(&b.val, uint(lsb))
	b.scratch2.Lsh(one, uint(msb-lsb+1))
	b.scratch2.Sub(&b.scratch2, one)
	b.scratch1.And(&b.scratch1, &b.scratch2)
	return b.scratch1.Cmp(&rhs.val) == 0
}

// Flip complements the bit at idx. It panics if idx is outside the
// declared width.
func (b *Bits) Flip(idx int) *Bits {
	b.checkIndex(idx)
	b.val.SetBit(&b.val, idx, b.val.Bit(idx)^1)
	return b
}

// Set assigns the bit at idx. It panics if idx is outside the declared
// width.
func (b *Bits) Set(idx int, v bool) *Bits {
	b.checkIndex(idx)
	if v {
		b.val.SetBit(&b.val, idx, 1)
	} else {
		b.val.SetBit(&b.val, idx, 0)
	}
	return b
}

// Assign replaces the magnitude of b with that of rhs. If rhs is wider
// than b, the value is truncated to b's declared width; the width itself
// never grows. This asymmetry with Resize is intentional: a hardware
// assignment cannot widen the destination register.
func (b *Bits) Assign(rhs *Bits) *Bits {
	b.val.Set(&rhs.val)
	if rhs.width > b.width {
		b.trim()
	}
	return b
}

// AssignBit merges bit 0 of rhs into position idx of b. It panics if idx
// is outside the declared width.
func (b *Bits) AssignBit(idx int, rhs *Bits) *Bits {
	b.checkIndex(idx)
	b.val.SetBit(&b.val, idx, rhs.val.Bit(0))
	return b
}

// AssignRange clears the inclusive window [lsb, msb] in b, masks rhs to
// the window's width, shifts it into position and ORs it in. Bits outside
// the window are untouched.
func (b *Bits) AssignRange(msb, lsb int, rhs *Bits) *Bits {
	if msb == lsb {
		return b.AssignBit(msb, rhs)
	}
	b.checkRange(msb, lsb)

	b.scratch1.Lsh(one, uint(msb-lsb+1))
	b.scratch1.Sub(&b.scratch1, one)

	b.scratch2.Lsh(&b.scratch1, uint(lsb))
	b.scratch2.Not(&b.scratch2)

	b.val.And(&b.val, &b.scratch2)
	b.scratch1.And(&b.scratch1, &rhs.val)
	b.scratch1.Lsh(&b.scratch1, uint(lsb))
	b.val.Or(&b.val, &b.scratch1)

	return b
}

func (b *Bits) checkIndex(idx int) {
	if idx < 0 || idx >= b.width {
		panic(fmt.Sprintf("hwbits: bit index %d out of range for width %d", idx, b.width))
	}
}

func (b *Bits) checkRange(msb, lsb int) {
	if lsb < 0 || msb < lsb || msb >= b.width {
		panic(fmt.Sprintf("hwbits: bit range [%d:%d] out of range for width %d", msb, lsb, b.width))
	}
}
