package hwbits

import (
	"fmt"
	"math/big"
)

// MaxWidth is the largest declared width the wire format can carry.
const MaxWidth = 1<<16 - 1

// one is shared, read-only. It is only ever an operand, never a receiver.
var one = big.NewInt(1)

// Bits is a fixed-width, two-state bit vector backed by an
// arbitrary-precision magnitude.
//
// The magnitude is always kept masked to the low `width` bits between
// operations. The two scratch integers are private workspace reused by
// mask construction and sub-range extraction so that the hot-path
// operators do not allocate; they hold no state between calls.
type Bits struct {
	val   big.Int
	width int

	scratch1 big.Int
	scratch2 big.Int
}

// New creates a vector of the given width holding val truncated to that
// width. It panics if width < 1.
func New(width int, val uint64) *Bits {
	if width < 1 {
		panic(fmt.Sprintf("hwbits: invalid width %d", width))
	}
	b := &Bits{width: width}
	b.val.SetUint64(val)
	b.trim()
	return b
}

// Clone returns a deep copy of b with fresh scratch storage.
func (b *Bits) Clone() *Bits {
	c := &Bits{width: b.width}
	c.val.Set(&b.val)
	return c
}

// Width returns the declared width in bits.
func (b *Bits) Width() int {
	return b.width
}

// Bool reports whether the vector is nonzero.
func (b *Bits) Bool() bool {
	return b.val.Sign() != 0
}

// Uint64 returns the magnitude as a native integer. It panics if the
// declared width exceeds 64 bits; callers use it to extract shift amounts
// and exponents, which must fit a machine word.
func (b *Bits) Uint64() uint64 {
	if b.width > 64 {
		panic(fmt.Sprintf("hwbits: width %d does not fit uint64", b.width))
	}
	return b.val.Uint64()
}

// Bit returns the value of the i-th bit. Bits at or above the declared
// width read as zero.
func (b *Bits) Bit(i int) uint {
	return b.val.Bit(i)
}

// Resize changes the declared width to n. Shrinking re-masks the magnitude
// to its low n bits; widening never changes the magnitude, because bits
// between the old and new width were never held. It panics if n < 1.
func (b *Bits) Resize(n int) *Bits {
	if n < 1 {
		panic(fmt.Sprintf("hwbits: invalid width %d", n))
	}
	if n < b.width {
		b.trimTo(n)
	}
	b.width = n
	return b
}

// ResizeToBool collapses the vector to width 1 holding its current bit 0.
// Every logical, reduction and comparison result funnels through here.
func (b *Bits) ResizeToBool() *Bits {
	b.val.SetUint64(uint64(b.val.Bit(0)))
	b.width = 1
	return b
}

// Equal reports whether b and rhs have the same declared width and the
// same magnitude. This is the built-in equality used for container keys;
// it is deliberately stricter than LogicalEq, which ignores width.
func (b *Bits) Equal(rhs *Bits) bool {
	return b.width == rhs.width && b.val.Cmp(&rhs.val) == 0
}

// Less orders vectors first by declared width, then by magnitude. Together
// with Equal it gives containers a total order distinct from the logical
// comparison operators.
func (b *Bits) Less(rhs *Bits) bool {
	return b.width < rhs.width || b.val.Cmp(&rhs.val) < 0
}

// Swap exchanges the backing magnitude and width of b and rhs in constant
// time. Scratch storage stays with its instance.
func (b *Bits) Swap(rhs *Bits) {
	b.val, rhs.val = rhs.val, b.val
	b.width, rhs.width = rhs.width, b.width
}

// setBool stores a 0/1 truth value at width 1.
func (b *Bits) setBool(v bool) *Bits {
	if v {
		b.val.SetUint64(1)
	} else {
		b.val.SetUint64(0)
	}
	b.width = 1
	return b
}

// trim re-masks the magnitude to the declared width. It is applied after
// any operation whose raw result can exceed the width (multiplication,
// left shift, complement, negation).
func (b *Bits) trim() {
	b.trimTo(b.width)
}

func (b *Bits) trimTo(n int) {
	if n < 1 {
		panic(fmt.Sprintf("hwbits: invalid width %d", n))
	}
	b.scratch1.Lsh(one, uint(n))
	b.scratch1.Sub(&b.scratch1, one)
	b.val.And(&b.val, &b.scratch1)
}

// growTo widens the declared width to n if it is larger, then re-masks.
// Binary operators use it to apply the max-width rule with wraparound:
// even at an unchanged width the raw bignum result may exceed the
// register, so the mask is always reapplied.
func (b *Bits) growTo(n int) *Bits {
	if n > b.width {
		b.width = n
	}
	b.trim()
	return b
}

func maxWidth(a, b *Bits) int {
	if a.width >= b.width {
		return a.width
	}
	return b.width
}
