package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Language describes how chapters are labelled in one language.
type Language struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	// Words are the localized words for "chapter" a model may prefix titles with.
	Words []string `json:"words"`
	// Template is the canonical label, with a single %d for the chapter number.
	Template string `json:"template"`
}

// Prefix renders the canonical label for chapter n.
func (l Language) Prefix(n int) string {
	return fmt.Sprintf(l.Template, n)
}

// LanguageTable maps language names to their chapter labels. It is immutable
// after construction and safe for concurrent use.
type LanguageTable struct {
	languages []Language
	index     map[string]int
	def       int
	generic   []string
}

// NewLanguageTable builds a table. defaultName must name one of languages and
// is used whenever a lookup misses. genericWords are section words ("part",
// "volume", ...) recognized as prefixes in every language.
func NewLanguageTable(languages []Language, defaultName string, genericWords []string) (*LanguageTable, error) {
	if len(languages) == 0 {
		return nil, errors.New("language table is empty")
	}

	t := &LanguageTable{
		languages: make([]Language, 0, len(languages)),
		index:     make(map[string]int),
		def:       -1,
	}
	for _, lang := range languages {
		if strings.TrimSpace(lang.Name) == "" {
			return nil, errors.New("language without name")
		}
		if len(lang.Words) == 0 {
			return nil, fmt.Errorf("language %q has no chapter words", lang.Name)
		}
		if strings.Count(lang.Template, "%") != 1 || !strings.Contains(lang.Template, "%d") {
			return nil, fmt.Errorf("language %q: template %q must contain a single %%d", lang.Name, lang.Template)
		}

		pos := len(t.languages)
		t.languages = append(t.languages, cloneLanguage(lang))
		for _, key := range append([]string{lang.Name}, lang.Aliases...) {
			k := LanguageKey(key)
			if k == "" {
				continue
			}
			if prev, ok := t.index[k]; ok && prev != pos {
				return nil, fmt.Errorf("language key %q is used by %q and %q", key, t.languages[prev].Name, lang.Name)
			}
			t.index[k] = pos
		}
	}

	def, ok := t.index[LanguageKey(defaultName)]
	if !ok {
		return nil, fmt.Errorf("default language %q is not in the table", defaultName)
	}
	t.def = def

	for _, w := range genericWords {
		if w = strings.TrimSpace(w); w != "" {
			t.generic = append(t.generic, w)
		}
	}
	return t, nil
}

// Lookup finds a language by name or alias.
func (t *LanguageTable) Lookup(name string) (Language, bool) {
	i, ok := t.index[LanguageKey(name)]
	if !ok {
		return Language{}, false
	}
	return t.languages[i], true
}

// Resolve is Lookup falling back to the default language.
func (t *LanguageTable) Resolve(name string) Language {
	if lang, ok := t.Lookup(name); ok {
		return lang
	}
	return t.languages[t.def]
}

// Default returns the fallback language.
func (t *LanguageTable) Default() Language {
	return t.languages[t.def]
}

// Prefix returns the canonical label of chapter n in the named language.
func (t *LanguageTable) Prefix(name string, n int) string {
	return t.Resolve(name).Prefix(n)
}

// Languages returns the table entries in declaration order.
func (t *LanguageTable) Languages() []Language {
	out := make([]Language, len(t.languages))
	for i, lang := range t.languages {
		out[i] = cloneLanguage(lang)
	}
	return out
}

// Words returns every chapter word of every language, without duplicates, in
// declaration order.
func (t *LanguageTable) Words() []string {
	seen := make(map[string]bool)
	var out []string
	for _, lang := range t.languages {
		for _, w := range lang.Words {
			k := strings.ToLower(norm.NFC.String(w))
			if w == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, w)
		}
	}
	return out
}

// GenericWords returns the section words shared by all languages.
func (t *LanguageTable) GenericWords() []string {
	return append([]string(nil), t.generic...)
}

// LanguageKey folds a language name for lookups: trimmed, lower case, without
// diacritics, so "Inglês", "ingles" and " INGLÊS " are the same key.
func LanguageKey(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	key, _, err := transform.String(fold, name)
	if err != nil {
		return norm.NFC.String(name)
	}
	return key
}

func cloneLanguage(l Language) Language {
	l.Aliases = append([]string(nil), l.Aliases...)
	l.Words = append([]string(nil), l.Words...)
	return l
}
