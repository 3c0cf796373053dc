// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"context"
	"io"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The default configuration is fully transparent: no size limits are enforced and
// gzip streams are decoded with the klauspost decoder in multistream mode.
type Config struct {
	// decoder is the gzip implementation used for compressed streams
	decoder Decoder

	// logger stream for the reader
	logger logger

	// maxInputSize is the maximum number of bytes read from the source.
	// Set value to -1 (or any negative value) to disable the check.
	maxInputSize int64

	// maxOutputSize is the maximum number of bytes delivered to the caller.
	// Set value to -1 (or any negative value) to disable the check.
	maxOutputSize int64

	// multistream enables reading concatenated gzip members as one stream
	multistream bool

	// telemetryHook is a function to consume telemetry data after the reader is closed
	// Important: do not adjust this value after reading started
	telemetryHook TelemetryHook
}

// Decoder returns the configured gzip implementation.
func (c *Config) Decoder() Decoder {
	return c.decoder
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxInputSize returns the maximum number of bytes read from the source.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// MaxOutputSize returns the maximum number of bytes delivered to the caller.
func (c *Config) MaxOutputSize() int64 {
	return c.maxOutputSize
}

// Multistream returns true if concatenated gzip members are read as one stream.
func (c *Config) Multistream() bool {
	return c.multistream
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

const (
	defaultDecoder       = DecoderKlauspost // klauspost/compress gzip
	defaultMaxInputSize  = -1               // no limit
	defaultMaxOutputSize = -1               // no limit
	defaultMultistream   = true             // same as compress/gzip
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(ctx context.Context, d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {
	config := &Config{
		decoder:       defaultDecoder,
		logger:        defaultLogger,
		maxInputSize:  defaultMaxInputSize,
		maxOutputSize: defaultMaxOutputSize,
		multistream:   defaultMultistream,
		telemetryHook: defaultTelemetryHook,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithDecoder options pattern function to select the gzip implementation.
func WithDecoder(d Decoder) ConfigOption {
	return func(c *Config) {
		c.decoder = d
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithMaxInputSize options pattern function to set the maximum number of bytes
// read from the source, sniffed bytes included. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithMaxOutputSize options pattern function to set the maximum number of bytes
// delivered to the caller, after decompression. (-1 to disable check)
func WithMaxOutputSize(maxOutputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxOutputSize = maxOutputSize
	}
}

// WithMultistream options pattern function to enable/disable reading concatenated
// gzip members as one stream. If disabled, reading stops after the first member.
func WithMultistream(enable bool) ConfigOption {
	return func(c *Config) {
		c.multistream = enable
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which is
// called once the reader is closed.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
