package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Seed  int64   `json:"seed"`
	Money float64 `json:"money"`
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, SaveJSON(path, []report{{Seed: 1, Money: 225.5}, {Seed: 2, Money: 10}}))

	var got []report
	require.NoError(t, LoadJSON(path, &got))
	assert.Equal(t, []report{{Seed: 1, Money: 225.5}, {Seed: 2, Money: 10}}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}

func TestSaveJSON_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, SaveJSON(path, report{Seed: 1}))
	require.NoError(t, SaveJSON(path, report{Seed: 2}))

	var got report
	require.NoError(t, LoadJSON(path, &got))
	assert.Equal(t, int64(2), got.Seed)
}

func TestSaveJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	err := SaveJSON(filepath.Join(dir, "bad.json"), map[string]interface{}{"ch": make(chan int)})
	assert.ErrorContains(t, err, "failed to marshal data")

	err = SaveJSON(filepath.Join(dir, "missing", "out.json"), report{})
	assert.ErrorContains(t, err, "failed to create temp file")
}

func TestLoadJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"malformed", `{"seed": `, "failed to unmarshal JSON"},
		{"unknown field", `{"seed": 1, "legacy": true}`, "unknown field"},
		{"wrong type", `{"seed": "one"}`, "failed to unmarshal JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			var got report
			assert.ErrorContains(t, LoadJSON(path, &got), tt.want)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		var got report
		assert.ErrorContains(t, LoadJSON(filepath.Join(dir, "nope.json"), &got), "failed to read file")
	})
}
