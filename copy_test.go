// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package anygz_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"syscall"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hashicorp/go-anygz"
	"github.com/hashicorp/go-anygz/internal/mock"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCopy(t *testing.T) {
	large := randomBytes(100 * 1024)

	tests := []struct {
		name            string
		input           []byte
		want            []byte
		contextCanceled bool
		wantErr         bool
	}{
		{
			name:  "plain",
			input: []byte("Hello!"),
			want:  []byte("Hello!"),
		},
		{
			name:  "gzip",
			input: helloGZip,
			want:  []byte("Hello!"),
		},
		{
			name:  "large gzip",
			input: compressGzip(t, large),
			want:  large,
		},
		{
			name:            "canceled context",
			input:           helloGZip,
			contextCanceled: true,
			wantErr:         true,
		},
		{
			name:    "corrupt gzip",
			input:   []byte("\x1f\x8bnot gzip at all"),
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := context.Background()
			if test.contextCanceled {
				cancelCtx, cancel := context.WithCancel(ctx)
				cancel()
				ctx = cancelCtx
			}

			var hookCtx context.Context
			cfg := anygz.NewConfig(anygz.WithTelemetryHook(func(ctx context.Context, td *anygz.TelemetryData) {
				hookCtx = ctx
			}))

			var out bytes.Buffer
			n, err := anygz.Copy(ctx, &out, bytes.NewReader(test.input), cfg)
			if (err != nil) != test.wantErr {
				t.Fatalf("Copy() error = %v, wantErr %v", err, test.wantErr)
			}
			if test.wantErr {
				return
			}

			if n != int64(len(test.want)) {
				t.Errorf("Copy() = %d, want %d", n, len(test.want))
			}
			if !bytes.Equal(out.Bytes(), test.want) {
				t.Errorf("Copy() content mismatch")
			}
			if hookCtx != ctx {
				t.Errorf("telemetry hook not called with the copy context")
			}
		})
	}
}

func TestCopyWriteError(t *testing.T) {
	_, err := anygz.Copy(context.Background(), failingWriter{}, bytes.NewReader([]byte("Hello!")), nil)
	if err == nil || err.Error() != "disk full" {
		t.Errorf("Copy() error = %v, want disk full", err)
	}
}

func TestCopyClosesSourceOnEarlyError(t *testing.T) {
	t.Run("read error while sniffing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mock.NewMockReadCloser(ctrl)
		gomock.InOrder(
			src.EXPECT().Read(gomock.Any()).Return(0, syscall.EISDIR),
			src.EXPECT().Close().Return(nil).Times(1),
		)

		_, err := anygz.Copy(context.Background(), io.Discard, src, nil)
		if !errors.Is(err, syscall.EISDIR) {
			t.Errorf("Copy() error = %v, want %v", err, syscall.EISDIR)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mock.NewMockReadCloser(ctrl)
		src.EXPECT().Close().Return(nil).Times(1)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := anygz.Copy(ctx, io.Discard, src, nil)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Copy() error = %v, want %v", err, context.Canceled)
		}
	})

	t.Run("unsupported decoder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		src := mock.NewMockReadCloser(ctrl)
		src.EXPECT().Close().Return(nil).Times(1)

		_, err := anygz.Copy(context.Background(), io.Discard, src, anygz.NewConfig(anygz.WithDecoder("lzma")))
		if !errors.Is(err, anygz.ErrUnsupportedDecoder) {
			t.Errorf("Copy() error = %v, want %v", err, anygz.ErrUnsupportedDecoder)
		}
	})
}
