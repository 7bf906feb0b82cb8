package hwbits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWord(t *testing.T) {
	b := New(20, 0xABCDE)

	assert.Equal(t, uint8(0xDE), ReadWord[uint8](b, 0))
	assert.Equal(t, uint8(0xBC), ReadWord[uint8](b, 1))
	// Top word is clamped to 4 declared bits.
	assert.Equal(t, uint8(0x0A), ReadWord[uint8](b, 2))

	assert.Equal(t, uint16(0xBCDE), ReadWord[uint16](b, 0))
	assert.Equal(t, uint16(0x000A), ReadWord[uint16](b, 1))

	assert.Panics(t, func() { ReadWord[uint8](b, 3) })
}

func TestWriteWord(t *testing.T) {
	t.Run("FullWord", func(t *testing.T) {
		b := New(20, 0xABCDE)
		WriteWord[uint8](b, 1, 0x12)
		assert.Equal(t, uint64(0xA12DE), b.Uint64())
	})

	t.Run("ClampedTopWord", func(t *testing.T) {
		b := New(20, 0xABCDE)
		WriteWord[uint8](b, 2, 0xFF) // only 4 bits fit the window
		assert.Equal(t, uint64(0xFBCDE), b.Uint64())
	})

	t.Run("NeighboursUntouched", func(t *testing.T) {
		b := New(24, 0)
		WriteWord[uint8](b, 1, 0xFF)
		assert.Equal(t, uint64(0x00FF00), b.Uint64())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		b := New(16, 0)
		assert.Panics(t, func() { WriteWord[uint8](b, 2, 1) })
	})
}

func TestWordRoundTrip(t *testing.T) {
	// Construct (w, v), read back through the word accessors, recover v.
	tests := []struct {
		width int
		val   uint64
	}{
		{1, 1},
		{8, 0xA5},
		{13, 0x1FFF},
		{16, 0xBEEF},
		{31, 0x7FFF0001},
		{64, ^uint64(0)},
	}

	for _, tt := range tests {
		b := New(tt.width, tt.val)

		var got uint64
		for n := 0; n*16 < tt.width; n++ {
			got |= uint64(ReadWord[uint16](b, n)) << (16 * n)
		}
		require.Equal(t, tt.val, got, "width %d", tt.width)

		// State untouched by reads.
		assert.Equal(t, tt.val, b.Uint64())
	}
}

func TestWordBulkMarshal(t *testing.T) {
	// Wide registers marshal to native words and back without loss.
	src := New(200, 0).Not() // all ones
	src.AssignRange(131, 68, New(64, 0xDEADBEEFCAFEF00D))

	dst := New(200, 0)
	for n := 0; n*64 < 200; n++ {
		WriteWord[uint64](dst, n, ReadWord[uint64](src, n))
	}
	assert.True(t, src.Equal(dst))
}
