// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"io"
)

// headerReader is an implementation of io.Reader that allows the first bytes of
// the reader to be read twice. The header is consumed from the source once during
// construction and replayed in front of the remaining source on Read.
type headerReader struct {
	r      io.Reader
	header []byte
	pos    int // number of header bytes already replayed
}

// newHeaderReader reads at most headerSize bytes from r. A source shorter than
// headerSize is not an error, whatever was read becomes the header. Any other
// error of r is returned as is.
func newHeaderReader(r io.Reader, headerSize int) (*headerReader, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return &headerReader{r: r, header: buf[:n]}, nil
}

func (h *headerReader) Read(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, nil
	}

	// replay header first
	if h.pos < len(h.header) {
		n := copy(b, h.header[h.pos:])
		h.pos += n
		return n, nil
	}

	// then continue reading from the source
	return h.r.Read(b)
}

// PeekHeader returns the header bytes that have not been replayed yet.
func (h *headerReader) PeekHeader() []byte {
	return h.header[h.pos:]
}

// Replayed reports whether the whole header has been handed out.
func (h *headerReader) Replayed() bool {
	return h.pos == len(h.header)
}
