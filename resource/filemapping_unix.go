//go:build !windows

package resource

import (
	"fmt"
	"os"
	"syscall"
)

// mapFile maps the whole of a regular file read-only. An empty file
// yields nil data, which callers treat as an empty mapping.
func mapFile(f *os.File) ([]byte, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	switch size := fi.Size(); {
	case !fi.Mode().IsRegular():
		return nil, fmt.Errorf("cannot map %s: not a regular file", fi.Name())
	case size == 0:
		return nil, nil
	case size > maxMappedSize || size != int64(int(size)):
		return nil, fmt.Errorf("cannot map %s: %d bytes exceed the %d bytes limit", fi.Name(), size, maxMappedSize)
	default:
		return syscall.Mmap(int(f.Fd()), 0, int(size), syscall.PROT_READ, syscall.MAP_PRIVATE)
	}
}

func unmapFile(data []byte) error {
	return syscall.Munmap(data)
}
