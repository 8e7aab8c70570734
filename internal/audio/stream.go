package audio

import (
	"errors"
	"io"
)

// ChunkStream is a finite, single-pass producer of 16-bit mono sample chunks.
// Next returns the next chunk, or io.EOF once the stream is exhausted. A
// stream is not restartable; callers drain it exactly once.
type ChunkStream interface {
	Next() ([]int16, error)
}

// Concat drains a ChunkStream into one continuous sample buffer, preserving
// chunk order. No resampling, no silence insertion. A stream that yields zero
// chunks produces an empty (nil) buffer and no error.
func Concat(s ChunkStream) ([]int16, error) {
	var samples []int16
	for {
		chunk, err := s.Next()
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		if err != nil {
			return nil, err
		}
		samples = append(samples, chunk...)
	}
}

// BufferStream adapts an in-memory chunk slice to ChunkStream. Used by
// providers that receive the full payload in one response, and by tests.
type BufferStream struct {
	chunks [][]int16
	pos    int
}

// NewBufferStream returns a stream yielding the given chunks in order.
func NewBufferStream(chunks ...[]int16) *BufferStream {
	return &BufferStream{chunks: chunks}
}

func (b *BufferStream) Next() ([]int16, error) {
	if b.pos >= len(b.chunks) {
		return nil, io.EOF
	}
	chunk := b.chunks[b.pos]
	b.pos++
	return chunk, nil
}

// DecodePCM16 converts little-endian 16-bit PCM bytes to samples. A trailing
// odd byte is dropped.
func DecodePCM16(raw []byte) []int16 {
	n := len(raw) / 2
	if n == 0 {
		return nil
	}
	samples := make([]int16, n)
	for i := 0; i < n; i++ {
		samples[i] = int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
	}
	return samples
}
