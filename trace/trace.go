// Package trace accumulates toggle coverage for registers: which bit
// positions have been observed changing value during a run. Coverage sets
// are backed by Roaring bitmaps, so sparse activity over very wide
// registers stays cheap to track and serialize.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hwbits"
)

// ErrWidthMismatch is returned when merging coverage of different widths.
var ErrWidthMismatch = errors.New("toggle coverage width mismatch")

// Toggle tracks which bit positions of a register have toggled. Toggle is
// not safe for concurrent use.
type Toggle struct {
	width int
	rb    *roaring.Bitmap
	diff  *hwbits.Bits
}

// NewToggle creates coverage tracking for a register of the given width.
// It panics if width < 1.
func NewToggle(width int) *Toggle {
	if width < 1 {
		panic("trace: width must be >= 1")
	}
	return &Toggle{
		width: width,
		rb:    roaring.New(),
	}
}

// Width returns the tracked register width.
func (t *Toggle) Width() int {
	return t.width
}

// Observe compares two consecutive register states and records every bit
// position that changed. Neither argument is modified. Positions at or
// above the tracked width are ignored.
func (t *Toggle) Observe(prev, next *hwbits.Bits) {
	if t.diff == nil {
		t.diff = hwbits.New(t.width, 0)
	}
	t.diff.Assign(prev).Xor(next)

	n := t.diff.Width()
	if n > t.width {
		n = t.width
	}
	for i := 0; i < n; i++ {
		if t.diff.Bit(i) == 1 {
			t.rb.Add(uint32(i))
		}
	}
}

// Record marks a single bit position as toggled. It panics if i is out of
// range.
func (t *Toggle) Record(i int) {
	if i < 0 || i >= t.width {
		panic(fmt.Sprintf("trace: bit index %d out of range [0, %d)", i, t.width))
	}
	t.rb.Add(uint32(i))
}

// Contains reports whether bit position i has toggled.
func (t *Toggle) Contains(i int) bool {
	if i < 0 || i >= t.width {
		return false
	}
	return t.rb.Contains(uint32(i))
}

// Count returns the number of distinct bit positions that have toggled.
func (t *Toggle) Count() int {
	return int(t.rb.GetCardinality())
}

// Coverage returns the fraction of bit positions that have toggled,
// in [0, 1].
func (t *Toggle) Coverage() float64 {
	return float64(t.Count()) / float64(t.width)
}

// Covered reports whether every bit position has toggled at least once.
func (t *Toggle) Covered() bool {
	return t.Count() == t.width
}

// Toggled iterates the toggled bit positions in ascending order.
func (t *Toggle) Toggled() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := t.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// Merge unions another run's coverage into t. Both sides must track the
// same width.
func (t *Toggle) Merge(other *Toggle) error {
	if t.width != other.width {
		return fmt.Errorf("%w: %d vs %d", ErrWidthMismatch, t.width, other.width)
	}
	t.rb.Or(other.rb)
	return nil
}

// Clear resets the coverage.
func (t *Toggle) Clear() {
	t.rb.Clear()
}

// MarshalBinary encodes the coverage as a little-endian uint32 width
// followed by the portable Roaring serialization.
func (t *Toggle) MarshalBinary() ([]byte, error) {
	rbBytes, err := t.rb.ToBytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 4, 4+len(rbBytes))
	binary.LittleEndian.PutUint32(out, uint32(t.width))
	return append(out, rbBytes...), nil
}

// UnmarshalBinary decodes coverage produced by MarshalBinary.
func (t *Toggle) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return errors.New("trace: toggle encoding too short")
	}
	width := int(binary.LittleEndian.Uint32(data))
	if width < 1 {
		return errors.New("trace: invalid toggle width")
	}
	rb := roaring.New()
	if err := rb.UnmarshalBinary(data[4:]); err != nil {
		return err
	}
	t.width = width
	t.rb = rb
	t.diff = nil
	return nil
}
