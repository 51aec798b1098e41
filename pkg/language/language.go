/*
Package language manages the JSON language table used for the selection prompt.

The table maps a short selection key ("1", "2", ...) to a language entry
holding the ISO-style code sent to the autocomplete endpoint, a display
name for the menu, and an RTL flag that drives text reshaping on output.
The file is created with built-in defaults on first use and can be edited
by hand to add more languages.
*/
package language

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/orenagassy/google-autocomplete-scraper/internal/utils"
)

// DefaultPath is the table location relative to the working directory.
const DefaultPath = "language_config.json"

// Language is a single selectable language entry.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	RTL  bool   `json:"rtl"`
}

// Table maps selection keys to language entries.
type Table struct {
	Languages map[string]Language `json:"languages"`
}

// Default returns the built-in two-entry table.
func Default() *Table {
	return &Table{
		Languages: map[string]Language{
			"1": {Code: "en", Name: "English", RTL: false},
			"2": {Code: "he", Name: "Hebrew", RTL: true},
		},
	}
}

// English returns the fallback entry used when the user presses Enter
// at the selection prompt without picking a key.
func English() Language {
	return Language{Code: "en", Name: "English", RTL: false}
}

// LoadOrInit returns the language table at path, writing the built-in
// defaults there first if no file exists. The second return value reports
// whether the defaults were just written. A file that exists but cannot be
// parsed, or that parses to an empty language map, is returned as an error;
// callers treat that as fatal since every later prompt depends on the table.
func LoadOrInit(path string) (*Table, bool, error) {
	if !utils.FileExists(path) {
		table := Default()
		if err := Save(table, path); err != nil {
			return nil, false, fmt.Errorf("writing default language table: %w", err)
		}
		log.Debugf("Created default language table at: %s", path)
		return table, true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading language table %s: %w", path, err)
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, false, fmt.Errorf("parsing language table %s: %w", path, err)
	}
	if len(table.Languages) == 0 {
		return nil, false, fmt.Errorf("language table %s has no languages", path)
	}
	return &table, false, nil
}

// Save writes the table as indented UTF-8 JSON.
func Save(table *Table, path string) error {
	data, err := json.MarshalIndent(table, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Keys returns the selection keys in sorted order for stable menu rendering.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.Languages))
	for key := range t.Languages {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Lookup returns the entry for a selection key.
func (t *Table) Lookup(key string) (Language, bool) {
	lang, ok := t.Languages[key]
	return lang, ok
}
