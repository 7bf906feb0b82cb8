package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hwbits"
)

func TestToggleObserve(t *testing.T) {
	tg := NewToggle(8)

	// 0000_0000 -> 0000_0101: bits 0 and 2 toggle.
	tg.Observe(hwbits.New(8, 0x00), hwbits.New(8, 0x05))
	assert.Equal(t, 2, tg.Count())
	assert.True(t, tg.Contains(0))
	assert.True(t, tg.Contains(2))
	assert.False(t, tg.Contains(1))
	assert.InDelta(t, 0.25, tg.Coverage(), 1e-9)
	assert.False(t, tg.Covered())

	// 0000_0101 -> 1111_1010: all eight bits toggle.
	tg.Observe(hwbits.New(8, 0x05), hwbits.New(8, 0xFA))
	assert.Equal(t, 8, tg.Count())
	assert.True(t, tg.Covered())
	assert.InDelta(t, 1.0, tg.Coverage(), 1e-9)
}

func TestToggleObserveWide(t *testing.T) {
	tg := NewToggle(1000)

	prev := hwbits.New(1000, 0)
	next := hwbits.New(1000, 0)
	next.Set(999, true)
	next.Set(333, true)

	tg.Observe(prev, next)
	assert.Equal(t, 2, tg.Count())
	assert.True(t, tg.Contains(999))
	assert.True(t, tg.Contains(333))

	var got []int
	for i := range tg.Toggled() {
		got = append(got, i)
	}
	assert.Equal(t, []int{333, 999}, got)
}

func TestToggleObserveIgnoresOutOfRange(t *testing.T) {
	tg := NewToggle(4)

	// Bits at positions >= width do not count toward coverage.
	tg.Observe(hwbits.New(8, 0x00), hwbits.New(8, 0xF1))
	assert.Equal(t, 1, tg.Count())
	assert.True(t, tg.Contains(0))
	assert.False(t, tg.Contains(4))
}

func TestToggleRecord(t *testing.T) {
	tg := NewToggle(4)
	tg.Record(3)
	assert.True(t, tg.Contains(3))
	assert.Equal(t, 1, tg.Count())

	assert.Panics(t, func() { tg.Record(4) })
	assert.Panics(t, func() { tg.Record(-1) })

	tg.Clear()
	assert.Equal(t, 0, tg.Count())
}

func TestToggleMerge(t *testing.T) {
	a := NewToggle(8)
	a.Record(0)
	a.Record(1)

	b := NewToggle(8)
	b.Record(1)
	b.Record(7)

	require.NoError(t, a.Merge(b))
	assert.Equal(t, 3, a.Count())
	assert.True(t, a.Contains(7))

	c := NewToggle(16)
	assert.ErrorIs(t, a.Merge(c), ErrWidthMismatch)
}

func TestToggleMarshalRoundtrip(t *testing.T) {
	tg := NewToggle(1000)
	tg.Record(0)
	tg.Record(512)
	tg.Record(999)

	data, err := tg.MarshalBinary()
	require.NoError(t, err)

	got := NewToggle(1)
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, 1000, got.Width())
	assert.Equal(t, 3, got.Count())
	assert.True(t, got.Contains(512))

	t.Run("TooShort", func(t *testing.T) {
		assert.Error(t, NewToggle(1).UnmarshalBinary([]byte{1, 2}))
	})
}
