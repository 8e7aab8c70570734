package tts

import (
	"io"

	"github.com/peytondmurray/nebi-video-demo-automation/internal/audio"
)

// readChunkBytes is how much raw PCM each Next call pulls from a streaming
// HTTP body: 4800 samples = 200 ms of audio.
const readChunkBytes = 9600

// pcmBodyStream turns a streaming response body of raw little-endian 16-bit
// PCM into a ChunkStream. The body is closed when the stream is exhausted or
// errors. An odd trailing byte is carried over into the next read so samples
// are never split across chunks.
type pcmBodyStream struct {
	body  io.ReadCloser
	carry []byte
	done  bool
}

func newPCMBodyStream(body io.ReadCloser) *pcmBodyStream {
	return &pcmBodyStream{body: body}
}

func (s *pcmBodyStream) Next() ([]int16, error) {
	if s.done {
		return nil, io.EOF
	}

	buf := make([]byte, readChunkBytes)
	n := copy(buf, s.carry)
	s.carry = nil

	read, err := io.ReadFull(s.body, buf[n:])
	n += read

	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF || err == nil:
		if err != nil {
			s.done = true
			s.body.Close()
		}
	default:
		s.done = true
		s.body.Close()
		return nil, err
	}

	if n == 0 {
		return nil, io.EOF
	}
	if n%2 == 1 {
		s.carry = []byte{buf[n-1]}
		n--
	}
	samples := audio.DecodePCM16(buf[:n])
	if len(samples) == 0 {
		if s.done {
			return nil, io.EOF
		}
		return s.Next()
	}
	return samples, nil
}
