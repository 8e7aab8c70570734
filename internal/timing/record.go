// Package timing tracks per-clip narration durations and persists them for
// the video-assembly step, which uses them to time scene transitions.
package timing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// RecordFile is the name of the duration record inside the output directory.
const RecordFile = "durations.json"

// Record maps clip filenames to integer millisecond durations. Keys keep
// insertion order, which mirrors the narration table order, so the JSON file
// reads naturally top to bottom.
type Record struct {
	order []string
	ms    map[string]int
}

func NewRecord() *Record {
	return &Record{ms: make(map[string]int)}
}

// Set records the duration for a filename. Re-recording a filename updates
// the value in place without disturbing its position.
func (r *Record) Set(filename string, durationMS int) {
	if _, ok := r.ms[filename]; !ok {
		r.order = append(r.order, filename)
	}
	r.ms[filename] = durationMS
}

func (r *Record) Get(filename string) (int, bool) {
	ms, ok := r.ms[filename]
	return ms, ok
}

func (r *Record) Len() int { return len(r.order) }

// Filenames returns the recorded filenames in insertion order.
func (r *Record) Filenames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// MarshalJSON emits a JSON object whose keys appear in insertion order.
// encoding/json would sort map keys, losing the narration ordering.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", r.ms[name])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a record from a JSON object, keeping the key order
// as it appears in the document.
func (r *Record) UnmarshalJSON(data []byte) error {
	r.order = nil
	r.ms = make(map[string]int)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("durations: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var ms int
		if err := dec.Decode(&ms); err != nil {
			return fmt.Errorf("durations: value for %q: %w", key, err)
		}
		r.Set(key, ms)
	}
	_, err = dec.Token() // closing brace
	return err
}

// Save writes the record to path as a pretty-printed JSON object with
// 2-space indentation, in one shot. The record is persisted exactly once per
// run; there are no partial or append writes.
func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal durations: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write durations: %w", err)
	}
	return nil
}

// Load reads a previously saved record.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read durations: %w", err)
	}
	r := NewRecord()
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse durations %s: %w", path, err)
	}
	return r, nil
}
