package script

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Entry is one narration line to be rendered into audio. Filename doubles as
// the scene identifier: "01.wav" pairs with slide "01.png" during video
// assembly, and the numeric order drives video pacing.
type Entry struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// Table is an ordered narration script. Order is semantically meaningful and
// must be preserved all the way into the duration record.
type Table []Entry

var filenamePattern = regexp.MustCompile(`^\d{2}\.wav$`)

// Validate checks that every entry has a unique "NN.wav" filename and
// non-empty text.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("narration table is empty")
	}
	seen := make(map[string]bool, len(t))
	for i, e := range t {
		if !filenamePattern.MatchString(e.Filename) {
			return fmt.Errorf("entry %d: filename %q does not match NN.wav", i, e.Filename)
		}
		if seen[e.Filename] {
			return fmt.Errorf("entry %d: duplicate filename %q", i, e.Filename)
		}
		seen[e.Filename] = true
		if strings.TrimSpace(e.Text) == "" {
			return fmt.Errorf("entry %d (%s): empty narration text", i, e.Filename)
		}
	}
	return nil
}

// Load reads an alternate narration table from a JSON array of entries, so a
// different script can be rendered without editing code.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("script %s: %w", path, err)
	}
	return t, nil
}
