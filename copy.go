// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz

import (
	"context"
	"io"
)

// copyBufferSize is the chunk size of [Copy]. The context is checked between chunks.
const copyBufferSize = 32 * 1024

// Copy writes the plain content of src to dst, decompressing src if it is gzip
// compressed. It returns the number of bytes written.
//
// src is owned by Copy and closed before returning if it implements [io.Closer].
// The telemetry hook of cfg is called with ctx. The copy stops with the context
// error if ctx is canceled.
func Copy(ctx context.Context, dst io.Writer, src io.Reader, cfg *Config) (int64, error) {
	// check if context is canceled
	if err := ctx.Err(); err != nil {
		asReadCloser(src).Close()
		return 0, err
	}

	r, err := NewReaderWithConfig(src, cfg)
	if err != nil {
		asReadCloser(src).Close()
		return 0, err
	}

	written, err := copyContext(ctx, dst, r)
	if cerr := r.close(ctx); err == nil {
		err = cerr
	}
	return written, err
}

func copyContext(ctx context.Context, dst io.Writer, r io.Reader) (int64, error) {
	var written int64
	buf := make([]byte, copyBufferSize)
	for {
		// check if context is canceled
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, rerr := r.Read(buf)
		if n > 0 {
			m, werr := dst.Write(buf[:n])
			written += int64(m)
			if werr != nil {
				return written, werr
			}
			if m != n {
				return written, io.ErrShortWrite
			}
		}
		if rerr == io.EOF {
			return written, nil
		}
		if rerr != nil {
			return written, rerr
		}
	}
}
