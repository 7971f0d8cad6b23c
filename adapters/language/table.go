package language

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/satriahrh/fanfic/domain"
)

//go:embed languages.json
var embedded []byte

type tableFile struct {
	Default      string            `json:"default"`
	GenericWords []string          `json:"generic_words"`
	Languages    []domain.Language `json:"languages"`
}

// Load builds the language table from path, or from the embedded table when
// path is empty. defaultName overrides the file's default language when set.
func Load(path, defaultName string) (*domain.LanguageTable, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading language table: %w", err)
		}
		data = b
	}
	return Parse(data, defaultName)
}

// Parse builds a language table from its JSON form.
func Parse(data []byte, defaultName string) (*domain.LanguageTable, error) {
	var f tableFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding language table: %w", err)
	}
	if defaultName == "" {
		defaultName = f.Default
	}
	table, err := domain.NewLanguageTable(f.Languages, defaultName, f.GenericWords)
	if err != nil {
		return nil, fmt.Errorf("building language table: %w", err)
	}
	return table, nil
}

// MustDefault returns the embedded table and panics if it is broken.
func MustDefault() *domain.LanguageTable {
	table, err := Load("", "")
	if err != nil {
		panic(fmt.Errorf("loading embedded language table: %w", err))
	}
	return table
}
