package resource

import (
	"io"
	"io/fs"
	"os"
	"runtime"
)

// maxMappedSize bounds catalogue files mapped into memory. .mo string
// tables use 32 bit offsets, so larger files cannot be valid.
const maxMappedSize = 1<<32 - 1

// fileMapping holds the content of a resource file, either mapped from
// disk or read into memory.
type fileMapping struct {
	data []byte

	isMapped bool
}

func (m *fileMapping) Close() error {
	runtime.SetFinalizer(m, nil)
	if !m.isMapped {
		return nil
	}
	m.isMapped = false
	return unmapFile(m.data)
}

// openMapping maps f into memory when it is backed by a regular file on
// disk, and reads it otherwise.
func openMapping(f fs.File) (*fileMapping, error) {
	if osFile, ok := f.(*os.File); ok {
		if data, err := mapFile(osFile); err == nil {
			m := &fileMapping{data: data, isMapped: data != nil}
			if m.isMapped {
				runtime.SetFinalizer(m, (*fileMapping).Close)
			}
			return m, nil
		}
		// On mapping failure, fall back to reading the file into
		// memory directly.
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &fileMapping{data: data}, nil
}
