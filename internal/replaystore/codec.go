package replaystore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"path"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/wifescope/wifescope/pkg/chart"
)

// Decode decompresses data if key ends in .zst or .gz and returns it
// unchanged otherwise. A nonzero limit caps the decompressed size; going
// past it fails with ErrTooLarge without decoding the rest.
func Decode(key string, data []byte, limit uint64) ([]byte, error) {
	switch path.Ext(key) {
	case ".zst":
		var opts []zstd.DOption
		if limit > 0 {
			opts = append(opts, zstd.WithDecoderMaxMemory(limit))
		}
		dec, err := zstd.NewReader(nil, opts...)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("zstd decode %s: %w: more than %s", key, ErrTooLarge, chart.FileSize(limit))
		}
		if err != nil {
			return nil, fmt.Errorf("zstd decode %s: %w", key, err)
		}
		return out, nil
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip decode %s: %w", key, err)
		}
		defer zr.Close()
		var r io.Reader = zr
		if limit > 0 {
			r = io.LimitReader(zr, int64(min(limit, math.MaxInt64-1))+1)
		}
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("gzip decode %s: %w", key, err)
		}
		if limit > 0 && uint64(len(out)) > limit {
			return nil, fmt.Errorf("gzip decode %s: %w: more than %s", key, ErrTooLarge, chart.FileSize(limit))
		}
		return out, nil
	default:
		return data, nil
	}
}

// Encode compresses data to match key's extension, the inverse of Decode.
func Encode(key string, data []byte) ([]byte, error) {
	switch path.Ext(key) {
	case ".zst":
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case ".gz":
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("gzip encode %s: %w", key, err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("gzip encode %s: %w", key, err)
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}

// contentType guesses the MIME type stored alongside an uploaded blob.
func contentType(key string) string {
	switch path.Ext(key) {
	case ".zst":
		return "application/zstd"
	case ".gz":
		return "application/gzip"
	case ".json":
		return "application/json"
	case ".msgpack":
		return "application/msgpack"
	default:
		return "text/plain"
	}
}
