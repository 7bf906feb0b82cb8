//go:build !unix

package mmap

import (
	"io"
	"os"
)

// Platforms without a usable mmap read the whole file into memory. The
// caller-visible contract (Bytes valid until Close) is unchanged.
func osMap(f *os.File, size int) ([]byte, error) {
	data := make([]byte, size)
	if _, err := io.ReadFull(f, data); err != nil {
		return nil, err
	}
	return data, nil
}

func osUnmap([]byte) error {
	return nil
}
