package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultTableIsValid(t *testing.T) {
	table := Default()
	require.NoError(t, table.Validate())
	require.Len(t, table, 16)
	require.Equal(t, "01.wav", table[0].Filename)
	require.Equal(t, "16.wav", table[15].Filename)
}

func TestValidateRejectsBadTables(t *testing.T) {
	cases := []struct {
		name  string
		table Table
	}{
		{"empty table", Table{}},
		{"bad filename", Table{{Filename: "clip1.wav", Text: "hi"}}},
		{"wrong extension", Table{{Filename: "01.mp3", Text: "hi"}}},
		{"duplicate filename", Table{
			{Filename: "01.wav", Text: "a"},
			{Filename: "01.wav", Text: "b"},
		}},
		{"empty text", Table{{Filename: "01.wav", Text: "   "}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Error(t, c.table.Validate())
		})
	}
}

func TestLoadAlternateScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	doc := `[
  {"filename": "01.wav", "text": "First line."},
  {"filename": "02.wav", "text": "Second line."}
]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table, 2)
	require.Equal(t, "Second line.", table[1].Text)
}

func TestLoadRejectsInvalidScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"filename":"x.wav","text":"hi"}]`), 0644))
	_, err := Load(path)
	require.Error(t, err)
}
