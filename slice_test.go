package hwbits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcat(t *testing.T) {
	a := New(4, 0xA)
	b := New(8, 0x0F)

	a.Concat(b)
	assert.Equal(t, 12, a.Width())
	assert.Equal(t, uint64(0xA0F), a.Uint64())
}

func TestConcat_Associativity(t *testing.T) {
	mk := func() (*Bits, *Bits, *Bits) {
		return New(4, 0xA), New(8, 0x0F), New(4, 0x3)
	}

	a, b, c := mk()
	left := a.Concat(b).Concat(c)

	a2, b2, c2 := mk()
	right := a2.Concat(b2.Concat(c2))

	require.Equal(t, 16, left.Width())
	assert.True(t, left.Equal(right))
	// a sits at the most significant end.
	assert.Equal(t, uint64(0xA0F3), left.Uint64())
}

func TestSlice(t *testing.T) {
	b := New(8, 0b10110101)
	b.Slice(7)
	assert.Equal(t, 1, b.Width())
	assert.Equal(t, uint64(1), b.Uint64())

	b = New(8, 0b10110101)
	b.Slice(1)
	assert.Equal(t, uint64(0), b.Uint64())

	assert.Panics(t, func() { New(8, 0).Slice(8) })
}

func TestSliceRange(t *testing.T) {
	b := New(8, 0b10110101)
	b.SliceRange(5, 2)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, uint64(0b1101), b.Uint64())

	t.Run("FullRange", func(t *testing.T) {
		b := New(8, 0xA5)
		b.SliceRange(7, 0)
		assert.Equal(t, 8, b.Width())
		assert.Equal(t, uint64(0xA5), b.Uint64())
	})

	t.Run("Bounds", func(t *testing.T) {
		assert.Panics(t, func() { New(8, 0).SliceRange(8, 0) })
		assert.Panics(t, func() { New(8, 0).SliceRange(2, 5) })
	})
}

func TestEqBit(t *testing.T) {
	b := New(8, 0b10110101)
	assert.True(t, b.EqBit(New(1, 1), 0))
	assert.False(t, b.EqBit(New(1, 1), 1))
	assert.True(t, b.EqBit(New(4, 0b1110), 1)) // only bit 0 of rhs counts
}

func TestEqRange(t *testing.T) {
	b := New(8, 0b10110101)

	assert.True(t, b.EqRange(New(4, 0b1101), 5, 2))
	assert.False(t, b.EqRange(New(4, 0b1100), 5, 2))

	// Pure with respect to persistent state.
	assert.Equal(t, uint64(0b10110101), b.Uint64())
	assert.Equal(t, 8, b.Width())
}

func TestFlip(t *testing.T) {
	b := New(8, 0b1000)
	b.Flip(3)
	assert.Equal(t, uint64(0), b.Uint64())
	b.Flip(0)
	assert.Equal(t, uint64(1), b.Uint64())

	assert.Panics(t, func() { New(4, 0).Flip(4) })
}

func TestSet(t *testing.T) {
	b := New(8, 0)
	b.Set(5, true)
	assert.Equal(t, uint64(0b100000), b.Uint64())
	b.Set(5, false)
	assert.Equal(t, uint64(0), b.Uint64())

	assert.Panics(t, func() { New(4, 0).Set(4, true) })
}

func TestAssign(t *testing.T) {
	t.Run("WiderSourceTruncates", func(t *testing.T) {
		dst := New(4, 0)
		dst.Assign(New(8, 0xAB))
		assert.Equal(t, 4, dst.Width())
		assert.Equal(t, uint64(0xB), dst.Uint64())
	})

	t.Run("NarrowerSourceZeroExtends", func(t *testing.T) {
		// The destination's declared width never changes; bits above the
		// source's width read as zero because the source never held them.
		dst := New(8, 0xF0)
		dst.Assign(New(4, 0x3))
		assert.Equal(t, 8, dst.Width())
		assert.Equal(t, uint64(0x03), dst.Uint64())
	})

	t.Run("EqualWidth", func(t *testing.T) {
		dst := New(8, 0)
		dst.Assign(New(8, 0x7F))
		assert.Equal(t, uint64(0x7F), dst.Uint64())
	})
}

func TestAssignBit(t *testing.T) {
	b := New(8, 0)
	b.AssignBit(6, New(4, 0b0001))
	assert.Equal(t, uint64(0b1000000), b.Uint64())
	b.AssignBit(6, New(4, 0b1110)) // bit 0 of rhs is clear
	assert.Equal(t, uint64(0), b.Uint64())

	assert.Panics(t, func() { New(4, 0).AssignBit(4, New(1, 1)) })
}

func TestAssignRange(t *testing.T) {
	t.Run("ReadModifyWrite", func(t *testing.T) {
		b := New(8, 0xFF)
		b.AssignRange(5, 2, New(4, 0b0110))
		assert.Equal(t, uint64(0b11011011), b.Uint64())
	})

	t.Run("SourceMaskedToWindow", func(t *testing.T) {
		b := New(8, 0)
		b.AssignRange(3, 1, New(8, 0xFF)) // window is 3 bits wide
		assert.Equal(t, uint64(0b1110), b.Uint64())
	})

	t.Run("SingleBitWindow", func(t *testing.T) {
		b := New(8, 0)
		b.AssignRange(4, 4, New(1, 1))
		assert.Equal(t, uint64(0b10000), b.Uint64())
	})

	t.Run("OutsideWindowUntouched", func(t *testing.T) {
		b := New(16, 0xFFFF)
		b.AssignRange(11, 4, New(8, 0x00))
		assert.Equal(t, uint64(0xF00F), b.Uint64())
	})
}
