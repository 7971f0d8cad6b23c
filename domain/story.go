package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CharacterRole is one character the story must feature.
type CharacterRole struct {
	Name string `json:"nome"`
	Role string `json:"papel,omitempty"`
}

// GenerationRequest is a validated story request. Empty strings mean the
// field was not provided.
type GenerationRequest struct {
	Characters []CharacterRole `json:"personagens"`
	Genre      string          `json:"genero,omitempty"`
	Setting    string          `json:"cenario,omitempty"`
	Language   string          `json:"idioma,omitempty"`
}

// Chapter is a single chapter as returned by the generator. Encoding uses the
// keys the frontend reads; decoding also accepts the English variants models
// sometimes emit.
type Chapter struct {
	Title      string   `json:"titulo"`
	Paragraphs []string `json:"historia"`
}

// Story is the full generated narrative.
type Story struct {
	Title    string    `json:"titulo"`
	Chapters []Chapter `json:"capitulos"`
	// Warning and Error carry the responsible-use notice the model returns
	// when it refuses to write the story.
	Warning string `json:"aviso,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Refusal returns the notice of a story the model declined to write, or ""
// when the story has chapters or no notice.
func (s Story) Refusal() string {
	if len(s.Chapters) > 0 {
		return ""
	}
	if msg := strings.TrimSpace(s.Error); msg != "" {
		return msg
	}
	return strings.TrimSpace(s.Warning)
}

var (
	storyTitleKeys     = []string{"titulo", "título", "title"}
	storyChapterKeys   = []string{"capitulos", "capítulos", "chapters"}
	storyWarningKeys   = []string{"aviso", "alerta", "warning"}
	storyErrorKeys     = []string{"error", "erro"}
	chapterTitleKeys   = []string{"titulo", "título", "title"}
	chapterParagraphKs = []string{"historia", "história", "paragrafos", "parágrafos", "paragraphs"}
)

func (s *Story) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("story is not an object: %w", err)
	}
	if fields == nil {
		return fmt.Errorf("story is null")
	}

	s.Title = looseString(pick(fields, storyTitleKeys))
	s.Warning = looseString(pick(fields, storyWarningKeys))
	s.Error = looseString(pick(fields, storyErrorKeys))
	s.Chapters = nil

	raw := pick(fields, storyChapterKeys)
	if isNull(raw) {
		return nil
	}
	var chapters []Chapter
	if err := json.Unmarshal(raw, &chapters); err != nil {
		return fmt.Errorf("decoding chapters: %w", err)
	}
	s.Chapters = chapters
	return nil
}

// UnmarshalJSON decodes a chapter object. Bare strings and string lists are
// kept as untitled paragraphs; any other non-object becomes an empty chapter.
func (c *Chapter) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*c = Chapter{Paragraphs: looseParagraphs(data)}
		return nil
	}

	c.Title = looseString(pick(fields, chapterTitleKeys))
	c.Paragraphs = nil

	raw := pick(fields, chapterParagraphKs)
	if isNull(raw) {
		return nil
	}

	var paragraphs []string
	if err := json.Unmarshal(raw, &paragraphs); err == nil {
		c.Paragraphs = paragraphs
		return nil
	}
	// a single string instead of a list
	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return fmt.Errorf("decoding paragraphs: %w", err)
	}
	c.Paragraphs = []string{single}
	return nil
}

func looseParagraphs(raw json.RawMessage) []string {
	var paragraphs []string
	if err := json.Unmarshal(raw, &paragraphs); err == nil {
		return paragraphs
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}
	return nil
}

func pick(fields map[string]json.RawMessage, keys []string) json.RawMessage {
	for _, k := range keys {
		if v, ok := fields[k]; ok {
			return v
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// looseString returns raw as a string, or "" when it is absent or not a JSON
// string. Titles are repaired downstream, so a bad one never fails decoding.
func looseString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
