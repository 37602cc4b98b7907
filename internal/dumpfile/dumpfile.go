package dumpfile

import (
	"errors"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Write replaces the file at filepath with data, going through a read-write
// memory map of the file. An existing file is truncated first.
func Write(filepath string, data []byte) (err error) {
	file, err := os.Create(filepath)

	if err != nil {
		return
	}

	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	// Zero-length files cannot be mapped.
	if len(data) == 0 {
		return
	}

	if err = file.Truncate(int64(len(data))); err != nil {
		return
	}

	m, err := mmap.Map(file, mmap.RDWR, 0)

	if err != nil {
		return
	}

	if copy(m, data) != len(data) {
		m.Unmap()
		return errors.New("failed to write dump")
	}

	if err = m.Flush(); err != nil {
		m.Unmap()
		return
	}

	return m.Unmap()
}
