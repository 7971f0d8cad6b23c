package usecase

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/satriahrh/fanfic/domain"
)

// placeholderTitles are the schema placeholders a model sometimes echoes back
// instead of writing a title.
var placeholderTitles = []string{
	"título do capítulo",
	"titulo do capitulo",
	"título del capítulo",
	"titulo del capitulo",
	"chapter title",
	"title of chapter",
}

// TitleNormalizer rewrites chapter titles to "<label> <n>: <title>", where the
// label comes from the language table and n is the chapter's position.
// Whatever prefix the model produced is discarded first.
type TitleNormalizer struct {
	languages *domain.LanguageTable
	prefixes  []*regexp.Regexp
}

// NewTitleNormalizer compiles one leading-prefix matcher per chapter word and
// generic section word of the table, longest word first.
func NewTitleNormalizer(languages *domain.LanguageTable) *TitleNormalizer {
	type prefixWord struct {
		word    string
		generic bool
	}
	var words []prefixWord
	for _, w := range languages.Words() {
		words = append(words, prefixWord{word: w})
	}
	for _, w := range languages.GenericWords() {
		words = append(words, prefixWord{word: w, generic: true})
	}
	sort.SliceStable(words, func(i, j int) bool {
		return utf8.RuneCountInString(words[i].word) > utf8.RuneCountInString(words[j].word)
	})

	prefixes := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		// A chapter word must be followed by a numeral, punctuation,
		// whitespace or the end of the title, so "Partners" or "章鱼" keep
		// their first letters. Generic words also appear in ordinary titles
		// ("Parte de mim", "Part-time Lover"), so they need a numeral or a
		// separator that ends the word.
		boundary := `(?:\s*\d+\s*[:：.\-–—]?|\s*[:：.\-–—]|\s+|$)`
		if w.generic {
			boundary = `(?:\s*\d+\s*[:：.\-–—]?|\s*[:：.\-–—](?:\s|$))`
		}
		pattern := `^(?i:` + regexp.QuoteMeta(norm.NFC.String(w.word)) + `)` + boundary + `\s*`
		prefixes = append(prefixes, regexp.MustCompile(pattern))
	}
	return &TitleNormalizer{languages: languages, prefixes: prefixes}
}

// NormalizeStory normalizes every chapter title in place, numbering chapters
// by position starting at 1.
func (n *TitleNormalizer) NormalizeStory(story *domain.Story, language string) {
	if story == nil {
		return
	}
	lang := n.languages.Resolve(language)
	for i := range story.Chapters {
		story.Chapters[i].Title = n.compose(lang, i+1, story.Chapters[i].Title)
	}
}

// NormalizeTitle returns the canonical form of a single raw title.
func (n *TitleNormalizer) NormalizeTitle(raw, language string, number int) string {
	return n.compose(n.languages.Resolve(language), number, raw)
}

// CleanTitle strips every recognized chapter prefix from raw and returns what
// is left. Placeholder titles come back empty.
func (n *TitleNormalizer) CleanTitle(raw string) string {
	s := strings.TrimSpace(norm.NFC.String(raw))
	if isPlaceholder(s) {
		return ""
	}
	s = n.stripPrefixes(s)
	if isPlaceholder(s) {
		return ""
	}
	return s
}

func (n *TitleNormalizer) compose(lang domain.Language, number int, raw string) string {
	prefix := lang.Prefix(number)
	title := n.CleanTitle(raw)
	if title == "" {
		return prefix
	}
	return prefix + " " + title
}

func (n *TitleNormalizer) stripPrefixes(s string) string {
	for {
		s = trimLeadingPunct(s)
		stripped := false
		for _, re := range n.prefixes {
			if loc := re.FindStringIndex(s); loc != nil && loc[1] > 0 {
				s = s[loc[1]:]
				stripped = true
				break
			}
		}
		if !stripped {
			return strings.TrimSpace(s)
		}
	}
}

func trimLeadingPunct(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(":：-–—", r)
	})
}

func isPlaceholder(s string) bool {
	lower := strings.ToLower(s)
	for _, p := range placeholderTitles {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}
