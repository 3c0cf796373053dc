// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	stdgzip "compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Decoder selects the gzip implementation used for compressed streams.
type Decoder string

const (
	// DecoderKlauspost decodes with github.com/klauspost/compress/gzip.
	DecoderKlauspost Decoder = "klauspost"

	// DecoderStandard decodes with the standard library compress/gzip.
	DecoderStandard Decoder = "standard"
)

// ParseDecoder returns the [Decoder] named s.
func ParseDecoder(s string) (Decoder, error) {
	switch d := Decoder(s); d {
	case DecoderKlauspost, DecoderStandard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDecoder, s)
	}
}

// gzipDecoder is the common surface of both gzip implementations.
type gzipDecoder interface {
	io.ReadCloser
	Multistream(enable bool)
}

// decompressionFunc starts a gzip decoder on src. It reads the gzip header.
type decompressionFunc func(src io.Reader) (gzipDecoder, error)

// decompressionFuncFor returns the decompressionFunc for d.
func decompressionFuncFor(d Decoder) (decompressionFunc, error) {
	switch d {
	case DecoderKlauspost:
		return decompressKlauspostStream, nil
	case DecoderStandard:
		return decompressStandardStream, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDecoder, string(d))
	}
}

func decompressKlauspostStream(src io.Reader) (gzipDecoder, error) {
	zr, err := gzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return zr, nil
}

func decompressStandardStream(src io.Reader) (gzipDecoder, error) {
	zr, err := stdgzip.NewReader(src)
	if err != nil {
		return nil, err
	}
	return zr, nil
}
