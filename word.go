package hwbits

import (
	"fmt"
	"unsafe"
)

// Word is the set of native machine types a vector can be marshalled
// through. The word size is the size of the type in bits.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ReadWord extracts the n-th word-sized slice of b. The addressed window
// is [ws*n, min(width, ws*(n+1))) where ws is the bit size of T; a partial
// top word reads with its missing high bits as zero. It panics if the
// window starts at or beyond the declared width.
func ReadWord[T Word](b *Bits, n int) T {
	ws := wordBits[T]()
	lsb, msb := b.wordWindow(ws, n)

	b.scratch1.Rsh(&b.val, uint(lsb))
	b.scratch2.Lsh(one, uint(msb-lsb))
	b.scratch2.Sub(&b.scratch2, one)
	b.scratch1.And(&b.scratch1, &b.scratch2)

	return T(b.scratch1.Uint64())
}

// WriteWord overwrites the n-th word-sized slice of b with v. The window
// is clamped to the declared width, so a partial top word only takes the
// low bits of v; bits outside the window are untouched.
func WriteWord[T Word](b *Bits, n int, v T) {
	ws := wordBits[T]()
	lsb, msb := b.wordWindow(ws, n)

	// Window mask in scratch2, its positioned complement in scratch1.
	b.scratch2.Lsh(one, uint(msb-lsb))
	b.scratch2.Sub(&b.scratch2, one)
	b.scratch1.Lsh(&b.scratch2, uint(lsb))
	b.scratch1.Not(&b.scratch1)
	b.val.And(&b.val, &b.scratch1)

	b.scratch1.SetUint64(uint64(v))
	b.scratch1.And(&b.scratch1, &b.scratch2)
	b.scratch1.Lsh(&b.scratch1, uint(lsb))
	b.val.Or(&b.val, &b.scratch1)
}

// wordWindow resolves the half-open bit window of the n-th word, clamping
// the top to the declared width.
func (b *Bits) wordWindow(ws, n int) (lsb, msb int) {
	lsb = ws * n
	if n < 0 || lsb >= b.width {
		panic(fmt.Sprintf("hwbits: word index %d out of range for width %d", n, b.width))
	}
	msb = ws * (n + 1)
	if msb > b.width {
		msb = b.width
	}
	return lsb, msb
}

func wordBits[T Word]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}
