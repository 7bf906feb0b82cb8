// Package snapshot persists named register states in a compact, checksummed
// binary format with optional block compression.
//
// A snapshot is an ordered set of (name, value) register entries. The file
// layout is a fixed FileHeader followed by a single compressed payload block;
// the payload concatenates each entry as a length-prefixed name and the
// register's wire encoding.
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/hwbits"
)

// Entry is a single named register inside a snapshot.
type Entry struct {
	Name  string
	Value *hwbits.Bits
}

// Snapshot is an ordered collection of named register states. Entries keep
// their insertion order so files round-trip deterministically. Snapshot is
// not safe for concurrent use.
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

// New creates an empty snapshot.
func New() *Snapshot {
	return &Snapshot{
		index: make(map[string]int),
	}
}

// Set records the register's current state under name, replacing any prior
// entry with the same name. The value is cloned so later mutation of v does
// not alter the snapshot.
func (s *Snapshot) Set(name string, v *hwbits.Bits) {
	c := v.Clone()
	if i, ok := s.index[name]; ok {
		s.entries[i].Value = c
		return
	}
	s.index[name] = len(s.entries)
	s.entries = append(s.entries, Entry{Name: name, Value: c})
}

// Get returns the register stored under name. The returned value is the
// snapshot's own copy; clone it before mutating.
func (s *Snapshot) Get(name string) (*hwbits.Bits, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.entries[i].Value, true
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns the entries in insertion order. The slice is shared; do
// not modify it.
func (s *Snapshot) Entries() []Entry {
	return s.entries
}

// Names returns the entry names in insertion order.
func (s *Snapshot) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// encodePayload serializes all entries as
// [nameLen uint16][name][register wire encoding], repeated.
func (s *Snapshot) encodePayload() ([]byte, error) {
	var buf bytes.Buffer
	var hdr [2]byte
	for _, e := range s.entries {
		if len(e.Name) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: %q", ErrNameTooLong, e.Name[:32])
		}
		binary.LittleEndian.PutUint16(hdr[:], uint16(len(e.Name)))
		buf.Write(hdr[:])
		buf.WriteString(e.Name)
		if _, err := e.Value.WriteTo(&buf); err != nil {
			return nil, fmt.Errorf("encode register %q: %w", e.Name, err)
		}
	}
	return buf.Bytes(), nil
}

// decodePayload parses count entries out of the decompressed payload.
func (s *Snapshot) decodePayload(payload []byte, count int) error {
	r := bytes.NewReader(payload)
	var hdr [2]byte
	for i := 0; i < count; i++ {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return fmt.Errorf("read entry %d name length: %w", i, err)
		}
		name := make([]byte, binary.LittleEndian.Uint16(hdr[:]))
		if _, err := io.ReadFull(r, name); err != nil {
			return fmt.Errorf("read entry %d name: %w", i, err)
		}
		v := hwbits.New(1, 0)
		if _, err := v.ReadFrom(r); err != nil {
			return fmt.Errorf("read register %q: %w", name, err)
		}
		s.Set(string(name), v)
	}
	return nil
}

// Write serializes the snapshot to w using the given codec.
func (s *Snapshot) Write(w io.Writer, codec Codec) error {
	if !codec.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCodec, codec)
	}

	payload, err := s.encodePayload()
	if err != nil {
		return err
	}
	block, err := compressPayload(payload, codec)
	if err != nil {
		return err
	}

	header := FileHeader{
		Magic:    MagicNumber,
		Version:  Version,
		Codec:    uint8(codec),
		Count:    uint32(len(s.entries)),
		Checksum: Checksum(block),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err = w.Write(block)
	return err
}

// maxEntrySize bounds one encoded entry: the name length prefix, a maximal
// name, and a maximal register wire encoding (header plus magnitude bytes).
const maxEntrySize = 2 + math.MaxUint16 + 4 + math.MaxUint16

// Read deserializes a snapshot from r, replacing the receiver's entries.
// Corrupted payloads are reported as *ChecksumMismatchError. The header's
// entry count caps how much payload will be read and decompressed, so a
// forged header cannot request an arbitrary allocation.
func (s *Snapshot) Read(r io.Reader) error {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return err
	}
	if header.Magic != MagicNumber {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	codec := Codec(header.Codec)
	if !codec.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidCodec, header.Codec)
	}

	// Stored blocks are the payload plus the block header; compressed
	// blocks are strictly smaller. Anything past the bound is corruption
	// and surfaces as a checksum mismatch.
	maxPayload := uint64(header.Count) * maxEntrySize
	block, err := io.ReadAll(io.LimitReader(r, int64(maxPayload)+blockHeaderSize))
	if err != nil {
		return err
	}
	if actual := Checksum(block); actual != header.Checksum {
		return &ChecksumMismatchError{Expected: header.Checksum, Actual: actual}
	}

	payload, err := decompressPayload(block, codec, maxPayload)
	if err != nil {
		return err
	}

	s.entries = s.entries[:0]
	s.index = make(map[string]int, header.Count)
	return s.decodePayload(payload, int(header.Count))
}
