//go:build windows

package resource

import (
	"errors"
	"os"
)

func mapFile(f *os.File) ([]byte, error) {
	return nil, errors.New("file mapping is not supported on this platform")
}

func unmapFile(data []byte) error {
	return nil
}
