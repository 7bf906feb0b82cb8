// Package blobstore abstracts where serialized register-file snapshots
// live: a local directory, process memory (tests), or S3-compatible object
// storage. Snapshots are immutable blobs written once and read whole.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Store is an abstraction for accessing immutable snapshot blobs.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Put writes a blob atomically, replacing any previous content.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a snapshot blob.
type Blob interface {
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
	// Reader opens a stream over the full blob contents.
	Reader(ctx context.Context) (io.ReadCloser, error)
}

// Mappable is an optional interface for Blobs that expose their contents
// as a byte slice without copying. The slice is valid until the Blob is
// closed.
type Mappable interface {
	Bytes() ([]byte, error)
}
