// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"bytes"
	"io"
)

// Format is the verdict of sniffing a stream. It is fixed once a [Reader] is
// constructed.
type Format int

const (
	// FormatPlainText is any stream that does not start with the gzip magic bytes,
	// including streams shorter than the magic bytes.
	FormatPlainText Format = iota

	// FormatGZip is a stream that starts with the gzip magic bytes.
	FormatGZip
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatGZip:
		return "gzip"
	case FormatPlainText:
		return "plain"
	default:
		return "unknown"
	}
}

// magicBytesGZip are the magic bytes for gzip compressed files (RFC 1952, ID1 and ID2).
var magicBytesGZip = [][]byte{
	{0x1f, 0x8b},
}

// sniffSize is the number of bytes consumed from the source to decide the format.
const sniffSize = 2

// IsGZip checks if the header matches the magic bytes for gzip compressed data.
func IsGZip(header []byte) bool {
	return matchesMagicBytes(header, 0, magicBytesGZip)
}

// matchesMagicBytes checks if the bytes in data at offset match any of the magicBytes.
func matchesMagicBytes(data []byte, offset int, magicBytes [][]byte) bool {
	for _, mb := range magicBytes {
		// check if header is long enough
		if offset+len(mb) > len(data) {
			continue
		}

		if bytes.Equal(mb, data[offset:offset+len(mb)]) {
			return true
		}
	}

	return false
}

// sniff consumes up to sniffSize bytes from r and decides the format. The returned
// headerReader replays the consumed bytes before continuing with r.
func sniff(r io.Reader) (Format, *headerReader, error) {
	hr, err := newHeaderReader(r, sniffSize)
	if err != nil {
		return FormatPlainText, nil, err
	}
	if IsGZip(hr.PeekHeader()) {
		return FormatGZip, hr, nil
	}
	return FormatPlainText, hr, nil
}
