// Package recording writes and reads zstd-compressed JSON-lines frame logs
package recording

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/KirkDiggler/disaster-sim/internal/entities/scene"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Extension is the conventional file suffix for recordings
const Extension = ".jsonl.zst"

// Writer appends frames to a compressed stream. It is safe for concurrent use.
type Writer struct {
	mu     sync.Mutex
	closer io.Closer
	enc    *zstd.Encoder
	w      *bufio.Writer
	frames int
}

// NewWriter compresses frames into w. Closing the Writer does not close w.
func NewWriter(w io.Writer) (*Writer, error) {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create encoder")
	}
	return &Writer{
		enc: enc,
		w:   bufio.NewWriterSize(enc, 128*1024),
	}, nil
}

// Create opens path for writing, truncating any existing recording
func Create(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to create %s", path)
	}
	w, err := NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	w.closer = f
	return w, nil
}

// Render appends frame
func (w *Writer) Render(_ context.Context, frame *scene.Frame) error {
	if frame == nil {
		return errors.InvalidArgument("frame is required")
	}

	b, err := json.Marshal(frame)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to encode frame")
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return errors.FailedPrecondition("recording is closed")
	}
	if _, err := w.w.Write(b); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write frame")
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write frame")
	}
	w.frames++
	return nil
}

// Frames returns the number of frames written
func (w *Writer) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

// Close flushes the stream
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}

	var firstErr error
	if err := w.w.Flush(); err != nil {
		firstErr = err
	}
	if err := w.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	w.w = nil
	if firstErr != nil {
		return errors.WrapWithCode(firstErr, errors.CodeUnavailable, "failed to close recording")
	}
	return nil
}

// Reader iterates frames from a compressed stream
type Reader struct {
	closer io.Closer
	dec    *zstd.Decoder
	sc     *bufio.Scanner
	line   int
}

// NewReader decompresses frames from r
func NewReader(r io.Reader) (*Reader, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "not a zstd stream")
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &Reader{dec: dec, sc: sc}, nil
}

// Open opens a recording file
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("recording %s not found", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open %s", path)
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// Next returns the next frame, or io.EOF at the end of the stream
func (r *Reader) Next() (*scene.Frame, error) {
	for r.sc.Scan() {
		r.line++
		line := r.sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var frame scene.Frame
		if err := json.Unmarshal(line, &frame); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "line %d: malformed frame", r.line)
		}
		return &frame, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to read recording")
	}
	return nil, io.EOF
}

// Close releases the decoder and the underlying file
func (r *Reader) Close() error {
	r.dec.Close()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
