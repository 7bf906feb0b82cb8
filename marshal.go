package hwbits

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Wire layout of one vector, little-endian native fields:
//
//	width   uint16  declared width
//	length  uint16  byte length of the exported magnitude
//	bytes   []byte  magnitude, most significant byte first
//
// A vector's serialized size is always 2 + 2 + length bytes.

const wireHeaderSize = 4

// WireSize returns the exact number of bytes WriteTo will produce.
func (b *Bits) WireSize() int {
	return wireHeaderSize + len(b.val.Bytes())
}

// WriteTo serializes b to w. It implements io.WriterTo.
func (b *Bits) WriteTo(w io.Writer) (int64, error) {
	if b.width > MaxWidth {
		return 0, fmt.Errorf("%w: %d", ErrWidthOverflow, b.width)
	}
	payload := b.val.Bytes()
	if len(payload) > MaxWidth {
		return 0, fmt.Errorf("%w: %d bytes", ErrMagnitudeOverflow, len(payload))
	}

	var hdr [wireHeaderSize]byte
	binary.LittleEndian.PutUint16(hdr[0:], uint16(b.width))
	binary.LittleEndian.PutUint16(hdr[2:], uint16(len(payload)))

	n, err := w.Write(hdr[:])
	if err != nil {
		return int64(n), err
	}
	m, err := w.Write(payload)
	return int64(n + m), err
}

// ReadFrom deserializes a vector from r, replacing both the width and the
// magnitude of b. It implements io.ReaderFrom and is bit-exact with
// WriteTo.
func (b *Bits) ReadFrom(r io.Reader) (int64, error) {
	var hdr [wireHeaderSize]byte
	n, err := io.ReadFull(r, hdr[:])
	if err != nil {
		return int64(n), &ErrTruncatedStream{Field: "header", cause: err}
	}
	width := int(binary.LittleEndian.Uint16(hdr[0:]))
	length := int(binary.LittleEndian.Uint16(hdr[2:]))
	if width < 1 {
		return int64(n), fmt.Errorf("hwbits: invalid serialized width %d", width)
	}

	payload := make([]byte, length)
	m, err := io.ReadFull(r, payload)
	if err != nil {
		return int64(n + m), &ErrTruncatedStream{Field: "magnitude", cause: err}
	}

	b.val.SetBytes(payload)
	b.width = width
	// The stream is untrusted: a payload can carry bits at or above the
	// decoded width, which would break the always-masked invariant.
	b.trim()
	return int64(n + m), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b *Bits) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(b.WireSize())
	if _, err := b.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Bits) UnmarshalBinary(data []byte) error {
	_, err := b.ReadFrom(bytes.NewReader(data))
	return err
}

// Text renders the magnitude in the given base (2..62), lowercase digits.
func (b *Bits) Text(base int) string {
	return b.val.Text(base)
}

// WriteText writes the textual rendering of b to w.
func (b *Bits) WriteText(w io.Writer, base int) error {
	_, err := io.WriteString(w, b.Text(base))
	return err
}

// String implements fmt.Stringer using Verilog-style sized notation.
func (b *Bits) String() string {
	return fmt.Sprintf("%d'h%s", b.width, b.val.Text(16))
}

// SetText parses s in the given base. Unlike every other mutator, the
// declared width is recomputed as the bit length of the parsed value (a
// zero value yields width 1). Malformed or negative input silently
// degrades to zero rather than raising an error; simulators rely on this
// when folding unparsable literals.
func (b *Bits) SetText(s string, base int) *Bits {
	if _, ok := b.val.SetString(s, base); !ok || b.val.Sign() < 0 {
		b.val.SetUint64(0)
	}
	b.width = b.val.BitLen()
	if b.width == 0 {
		b.width = 1
	}
	return b
}

// ReadText consumes one whitespace-delimited token from r and parses it
// via SetText. A read failure is treated as malformed input.
func (b *Bits) ReadText(r io.Reader, base int) *Bits {
	var s string
	_, _ = fmt.Fscan(r, &s)
	return b.SetText(s, base)
}
