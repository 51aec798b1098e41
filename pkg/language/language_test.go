package language

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrInitCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_config.json")

	table, created, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, table.Languages, 2)

	en, ok := table.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, Language{Code: "en", Name: "English", RTL: false}, en)

	he, ok := table.Lookup("2")
	require.True(t, ok)
	assert.Equal(t, Language{Code: "he", Name: "Hebrew", RTL: true}, he)

	// Second load reads back the identical structure.
	again, created, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, table, again)
}

func TestLoadOrInitKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_config.json")
	custom := `{"languages": {"1": {"code": "ar", "name": "Arabic", "rtl": true}}}`
	require.NoError(t, os.WriteFile(path, []byte(custom), 0644))

	table, created, err := LoadOrInit(path)
	require.NoError(t, err)
	assert.False(t, created)
	require.Len(t, table.Languages, 1)

	ar, ok := table.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "ar", ar.Code)
	assert.True(t, ar.RTL)
}

func TestLoadOrInitRejectsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, _, err := LoadOrInit(path)
	assert.Error(t, err)
}

func TestLoadOrInitRejectsEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "language_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"languages": {}}`), 0644))

	_, _, err := LoadOrInit(path)
	assert.Error(t, err)
}

func TestKeysAreSorted(t *testing.T) {
	table := &Table{Languages: map[string]Language{
		"3": {Code: "ar"},
		"1": {Code: "en"},
		"2": {Code: "he"},
	}}
	assert.Equal(t, []string{"1", "2", "3"}, table.Keys())
}

func TestLookupMiss(t *testing.T) {
	table := Default()
	_, ok := table.Lookup("9")
	assert.False(t, ok)
}
