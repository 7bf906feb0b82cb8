package snapshot

import "errors"

const (
	// MagicNumber identifies hwbits snapshot files (ASCII: "HWB0")
	MagicNumber = 0x48574230
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000
)

// Codec selects the block compression applied to the register payload.
type Codec uint8

const (
	// CodecNone stores the payload uncompressed.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast, good for frequent checkpoints).
	CodecLZ4 Codec = 1
	// CodecZSTD uses ZSTD block compression (better ratio, good for archives).
	CodecZSTD Codec = 2
)

func (c Codec) valid() bool {
	return c <= CodecZSTD
}

// String returns a human-readable codec name.
func (c Codec) String() string {
	switch c {
	case CodecNone:
		return "none"
	case CodecLZ4:
		return "lz4"
	case CodecZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrInvalidCodec   = errors.New("invalid codec")
	ErrNameTooLong    = errors.New("register name exceeds 65535 bytes")
)

// FileHeader is the fixed-size header at the start of every snapshot.
// The checksum covers everything after the header (the compressed payload).
type FileHeader struct {
	Magic    uint32 // 0x48574230 ("HWB0")
	Version  uint32 // File format version
	Codec    uint8  // 0=none, 1=lz4, 2=zstd
	Padding  [3]byte
	Count    uint32 // Number of register entries
	Checksum uint32 // CRC32 of the payload section
}
