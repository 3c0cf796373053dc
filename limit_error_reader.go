// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"io"
)

// limitErrorReader is a reader that returns an error if the limit is exceeded
// before the underlying reader is fully read.
// If the limit is negative, all data from the original reader is read.
type limitErrorReader struct {
	R   io.Reader // underlying reader
	L   int64     // limit
	N   int64     // number of bytes read
	Err error     // returned once the limit is exceeded
}

// Read reads from the underlying reader and fills up p.
// It returns an error if the limit is exceeded, even if the underlying reader is not fully read.
// A reader that ends exactly at the limit reports io.EOF.
func (l *limitErrorReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	// determine how many bytes to read
	m := l.L - l.N
	if l.L < 0 || m > int64(len(p)) {
		m = int64(len(p))
	}

	// limit reached, probe if the underlying reader has more to offer
	if m == 0 {
		var probe [1]byte
		n, err := l.R.Read(probe[:])
		if n > 0 {
			return 0, l.Err
		}
		return 0, err
	}

	// read from underlying reader and preserve error type
	n, err := l.R.Read(p[:m])
	l.N += int64(n)
	return n, err
}

// ReadBytes returns how many bytes have been read from the underlying reader
func (l *limitErrorReader) ReadBytes() int64 {
	return l.N
}

// newLimitErrorReader returns a new limitErrorReader that reads from r and
// returns err once more than limit bytes are available.
func newLimitErrorReader(r io.Reader, limit int64, err error) *limitErrorReader {
	return &limitErrorReader{R: r, L: limit, N: 0, Err: err}
}
