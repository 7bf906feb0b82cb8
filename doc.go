// Package hwbits provides the fixed-width, two-state bit-vector value type
// used by hardware-description-language compilers and simulators.
//
// A Bits holds a declared width (1..65535 bits) and an arbitrary-precision
// magnitude, and reproduces the semantics of a synthesizable hardware
// register: arithmetic wraps silently at the declared width, shifts discard
// bits pushed past the top, and the arithmetic right shift replicates the
// sign bit at position width-1. Widths are not limited to machine word
// sizes; a 1000-bit register behaves exactly like an 8-bit one.
//
// # Quick Start
//
//	a := hwbits.New(8, 0x80)            // 8'b10000000
//	a.Sar(hwbits.New(8, 1))             // 8'b11000000 (sign-extended)
//
//	sum := hwbits.New(8, 250).Add(hwbits.New(8, 10)) // wraps to 4
//
// Operators mutate the receiver in place and return it, so a sequence of
// primitive operations folds left to right:
//
//	r := hwbits.New(16, 0xBEEF).Not().Xor(mask).ReduceOr()
//
// # Concurrency
//
// A Bits is a single-writer value. It carries private scratch storage that
// is reused across calls, so it must not be mutated from multiple
// goroutines without external locking. Use Clone for an independent copy.
//
// # Failure policy
//
// Precondition violations (bit index beyond the declared width, zero-width
// construction, a shift amount that does not fit a native integer) panic.
// Serialization paths return errors. Malformed textual input does not fail
// at all: it parses as zero, matching simulator source-compatibility rules.
//
// Subpackages provide the supporting infrastructure a simulator needs
// around the value type: snapshot (register-file persistence with
// compression and checksums), blobstore (local/memory/S3-compatible blob
// storage for snapshots) and trace (toggle coverage tracking).
package hwbits
