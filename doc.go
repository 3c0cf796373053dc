// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

// Package anygz provides a reader that delivers the content of a stream
// regardless of whether the stream is gzip compressed or not.
//
// [NewReader] consumes the first two bytes of the source and compares them with
// the gzip magic bytes. Compressed streams are decoded, everything else, including
// streams shorter than the magic bytes, is passed through unmodified. The sniffed
// bytes are replayed, so the caller or the gzip decoder observe the stream exactly
// as it was before sniffing.
//
// Configuration is done using the [Config], which selects the gzip implementation,
// the logger, the telemetry hook and optional input and output size limits.
package anygz
