// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import "io"

// noopReaderCloser is a struct that implements the io.ReadCloser interface with a no-op Close method.
type noopReaderCloser struct {
	io.Reader
}

// Close is a no-op method that satisfies the io.Closer interface.
func (n *noopReaderCloser) Close() error {
	return nil
}

// asReadCloser returns r as io.ReadCloser, wrapping it into a noopReaderCloser
// if r cannot be closed.
func asReadCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return &noopReaderCloser{r}
}
