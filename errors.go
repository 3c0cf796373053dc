// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import "errors"

var (
	// ErrMaxInputSizeExceeded indicates that more bytes than allowed by
	// [WithMaxInputSize] were read from the source.
	ErrMaxInputSizeExceeded = errors.New("maximum input size exceeded")

	// ErrMaxOutputSizeExceeded indicates that more bytes than allowed by
	// [WithMaxOutputSize] would have been delivered to the caller.
	ErrMaxOutputSizeExceeded = errors.New("maximum output size exceeded")

	// ErrUnsupportedDecoder indicates an unknown [Decoder] value.
	ErrUnsupportedDecoder = errors.New("unsupported decoder")
)
