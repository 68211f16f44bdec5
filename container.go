// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package oforms

import (
	"fmt"
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
)

// Stream is a seekable byte source over one named CFB stream, lent out by
// a Container. It is the minimal surface SiteIterator and the façade need:
// an io.ReaderAt for bounded, random-access reads, plus its total length.
type Stream interface {
	ReadAt(p []byte, off int64) (int, error)
	Len() int64
}

// Container is the external collaborator spec §1 carves CFB access out
// to: "the core consumes read(name) -> bytes and open_stream(name) ->
// seekable byte source." Parsing the compound file binary container
// itself is out of scope for this module; Container is the seam a real
// CFB library plugs into.
type Container interface {
	// ReadStream returns the complete contents of the named stream (used
	// for "f" and "\001CompObj", both read whole before decoding).
	ReadStream(name string) ([]byte, error)

	// OpenStream returns a seekable byte source over the named stream
	// (used for "o", which SiteIterator reads incrementally).
	OpenStream(name string) (Stream, error)
}

// mmapStream adapts mmap.MMap to Stream.
type mmapStream struct {
	data mmap.MMap
}

func (s *mmapStream) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(s.data)) {
		return 0, fmt.Errorf("oforms: read offset %d out of range", off)
	}
	n := copy(p, s.data[off:])
	if n < len(p) {
		return n, fmt.Errorf("oforms: short read at offset %d", off)
	}
	return n, nil
}

func (s *mmapStream) Len() int64 { return int64(len(s.data)) }

// DirContainer is a Container backed by a directory holding one file per
// CFB stream, named after the stream (e.g. "f", "o", "\x01CompObj")
// already extracted by a separate CFB reader. OpenStream memory-maps the
// stream it opens; ReadStream reads the whole file into memory.
type DirContainer struct {
	dir    string
	opened []*mmapStream
}

// NewDirContainer returns a Container rooted at dir.
func NewDirContainer(dir string) *DirContainer {
	return &DirContainer{dir: dir}
}

func (d *DirContainer) streamPath(name string) string {
	return filepath.Join(d.dir, name)
}

// ReadStream reads the named stream's complete contents.
func (d *DirContainer) ReadStream(name string) ([]byte, error) {
	return os.ReadFile(d.streamPath(name))
}

// OpenStream memory-maps the named stream and returns a Stream over it.
// The mapping is released when the Container is closed.
func (d *DirContainer) OpenStream(name string) (Stream, error) {
	f, err := os.Open(d.streamPath(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		// mmap.Map rejects zero-length mappings; an empty stream is a
		// legitimate (if degenerate) "o" stream when a form has no sites.
		return &mmapStream{data: mmap.MMap{}}, nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	ms := &mmapStream{data: data}
	d.opened = append(d.opened, ms)
	return ms, nil
}

// Close unmaps every stream opened via OpenStream.
func (d *DirContainer) Close() error {
	var firstErr error
	for _, ms := range d.opened {
		if len(ms.data) == 0 {
			continue
		}
		if err := ms.data.Unmap(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	d.opened = nil
	return firstErr
}
