package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDeckList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.txt")
	contents := `# my commander deck
Lightning Bolt

Sol Ring
  Counterspell
# sideboard ideas
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	names, err := readDeckList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lightning Bolt", "Sol Ring", "Counterspell"}, names)
}

func TestReadDeckList_MissingFile(t *testing.T) {
	_, err := readDeckList(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestDisplayLegality(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "legal", expected: "legal"},
		{input: "not_legal", expected: "not legal"},
		{input: "", expected: "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, displayLegality(tt.input))
	}
}
