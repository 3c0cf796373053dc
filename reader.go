// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"context"
	"io"
	"io/fs"
	"time"
)

// Reader reads a stream that is either gzip compressed or plain. The format is
// detected once from the first bytes of the source, afterwards every Read is
// served either by passing the source through or by decompressing it.
//
// A Reader owns its source. Nobody else may read from the source after it has been
// handed to [NewReader], and [Reader.Close] closes the source if it implements
// [io.Closer]. A Reader is not safe for concurrent use.
type Reader struct {
	cfg      *Config
	src      io.ReadCloser
	input    *limitErrorReader // source, limited by MaxInputSize
	output   *limitErrorReader // strategy, limited by MaxOutputSize
	format   Format
	strategy readStrategy
	td       TelemetryData
	start    time.Time
	eof      bool
	closed   bool
}

// NewReader sniffs the format of src and returns a [Reader] delivering the plain
// content of src. The configuration is built from opts, see [NewConfig].
//
// The first bytes of src are consumed during construction. If reading them fails,
// the error of src is returned unchanged and src is not closed.
func NewReader(src io.Reader, opts ...ConfigOption) (*Reader, error) {
	return NewReaderWithConfig(src, NewConfig(opts...))
}

// NewReaderWithConfig is like [NewReader], but takes a prepared [Config].
// A nil cfg is the default configuration.
func NewReaderWithConfig(src io.Reader, cfg *Config) (*Reader, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	start := time.Now()

	newDecoder, err := decompressionFuncFor(cfg.Decoder())
	if err != nil {
		return nil, err
	}

	rc := asReadCloser(src)
	input := newLimitErrorReader(rc, cfg.MaxInputSize(), ErrMaxInputSizeExceeded)

	format, hr, err := sniff(input)
	if err != nil {
		return nil, err
	}
	cfg.Logger().Debug("format detected", "format", format, "header", len(hr.PeekHeader()))

	var strategy readStrategy
	switch format {
	case FormatGZip:
		strategy = &decodeStrategy{src: hr, newDecoder: newDecoder, multistream: cfg.Multistream()}
	default:
		strategy = &passthroughStrategy{src: hr}
	}

	return &Reader{
		cfg:      cfg,
		src:      rc,
		input:    input,
		output:   newLimitErrorReader(strategy, cfg.MaxOutputSize(), ErrMaxOutputSizeExceeded),
		format:   format,
		strategy: strategy,
		td:       TelemetryData{Format: format.String()},
		start:    start,
	}, nil
}

// Format returns the detected format of the stream.
func (r *Reader) Format() Format {
	return r.format
}

// Read reads up to len(p) bytes of plain content into p. At the end of the
// stream Read returns io.EOF, and keeps doing so on every later call. Errors of the
// source and of the gzip decoder are returned unchanged.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, fs.ErrClosed
	}
	if r.eof {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	n, err := r.output.Read(p)
	switch {
	case err == io.EOF:
		r.eof = true
	case err != nil:
		r.td.ReadErrors++
		r.td.LastReadError = err
	}
	return n, err
}

// Close releases the gzip decoder and closes the source. The telemetry hook is
// called once with the final [TelemetryData]. Later calls to Close do nothing,
// later calls to Read return [fs.ErrClosed].
func (r *Reader) Close() error {
	return r.close(context.Background())
}

func (r *Reader) close(ctx context.Context) error {
	if r.closed {
		return nil
	}
	r.closed = true
	captureReadDuration(&r.td, r.start)

	err := r.strategy.Close()
	if cerr := r.src.Close(); err == nil {
		err = cerr
	}

	td := r.TelemetryData()
	r.cfg.Logger().Debug("reader closed", "format", r.format, "input", td.InputSize, "output", td.OutputSize)
	r.cfg.TelemetryHook()(ctx, &td)
	return err
}

// TelemetryData returns a snapshot of the telemetry data collected so far. After
// Close the read duration is the time between construction and close.
func (r *Reader) TelemetryData() TelemetryData {
	td := r.td
	td.InputSize = r.input.ReadBytes()
	td.OutputSize = r.output.ReadBytes()
	if !r.closed {
		captureReadDuration(&td, r.start)
	}
	return td
}

// readStrategy serves the reads of a [Reader] after the format has been decided.
type readStrategy interface {
	io.ReadCloser
}

// passthroughStrategy delivers the sniffed header and then the raw source.
type passthroughStrategy struct {
	src *headerReader
}

func (s *passthroughStrategy) Read(p []byte) (int, error) {
	return s.src.Read(p)
}

func (s *passthroughStrategy) Close() error {
	return nil
}

// decodeStrategy feeds the sniffed header and the remaining source through a gzip
// decoder. The decoder is started on the first Read, so a broken gzip header is
// reported by Read. A failed start is sticky.
type decodeStrategy struct {
	src         *headerReader
	newDecoder  decompressionFunc
	multistream bool
	zr          gzipDecoder
	zerr        error
}

func (s *decodeStrategy) Read(p []byte) (int, error) {
	if s.zerr != nil {
		return 0, s.zerr
	}
	if s.zr == nil {
		zr, err := s.newDecoder(s.src)
		if err != nil {
			s.zerr = err
			return 0, err
		}
		zr.Multistream(s.multistream)
		s.zr = zr
	}
	return s.zr.Read(p)
}

func (s *decodeStrategy) Close() error {
	if s.zr == nil {
		return nil
	}
	return s.zr.Close()
}
