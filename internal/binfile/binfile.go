// Package binfile loads files as read-only byte buffers, preferring mmap so
// large files can be inspected without copying them into memory.
package binfile

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// File is a read-only view of a file's contents. Data must not be retained
// or written to after Close.
type File struct {
	Path    string
	Data    []byte
	mmapped bool
}

// Open maps the file read-only. If mmap is unavailable it falls back to
// ReadAt-based loading. The returned file must be closed to release any
// mapping.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, err
	}

	size64 := stat.Size()
	if size64 < 0 || size64 > int64(int(^uint(0)>>1)) {
		// cannot index this file safely as []byte on this architecture.
		return nil, fmt.Errorf("%s: size %d out of range", path, size64)
	}
	size := int(size64)

	if size > 0 {
		data, err := unix.Mmap(
			int(f.Fd()),
			0,
			size,
			unix.PROT_READ,
			unix.MAP_SHARED,
		)
		if err == nil {
			return &File{Path: path, Data: data, mmapped: true}, nil
		}
	}

	// Fallback path that does not require mmap support.
	data, err := readAllAt(f, size)
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Data: data}, nil
}

func readAllAt(r io.ReaderAt, size int) ([]byte, error) {
	if size == 0 {
		return []byte{}, nil
	}
	out := make([]byte, size)
	var off int64
	for off < int64(size) {
		n, err := r.ReadAt(out[off:], off)
		off += int64(n)
		if err == nil {
			continue
		}
		if err == io.EOF && off == int64(size) {
			break
		}
		return nil, err
	}
	return out, nil
}

// Close releases the mapping, if any. The file's Data is nil afterwards.
func (f *File) Close() error {
	if f == nil || f.Data == nil {
		f.reset()
		return nil
	}
	var err error
	if f.mmapped {
		err = unix.Munmap(f.Data)
	}
	f.reset()
	return err
}

func (f *File) reset() {
	if f == nil {
		return
	}
	f.Data = nil
	f.mmapped = false
}
