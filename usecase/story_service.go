package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/satriahrh/fanfic/domain"
	"github.com/satriahrh/fanfic/utils/log"
)

// Observer receives the outcome of every generation. outcome is "success" or
// the failing error kind.
type Observer interface {
	ObserveGeneration(outcome string, elapsed time.Duration, chapters int)
}

type nopObserver struct{}

func (nopObserver) ObserveGeneration(string, time.Duration, int) {}

// StoryService turns validated requests into normalized stories.
type StoryService struct {
	llm        domain.Llm
	normalizer *TitleNormalizer
	forbidden  []string
	hasher     domain.Hasher
	observer   Observer
}

// Option configures a StoryService.
type Option func(*StoryService)

// WithHasher fingerprints prompts in the logs.
func WithHasher(h domain.Hasher) Option {
	return func(s *StoryService) { s.hasher = h }
}

// WithObserver reports generation outcomes, typically to metrics.
func WithObserver(o Observer) Option {
	return func(s *StoryService) {
		if o != nil {
			s.observer = o
		}
	}
}

func NewStoryService(gen domain.Llm, languages *domain.LanguageTable, opts ...Option) *StoryService {
	s := &StoryService{
		llm:        gen,
		normalizer: NewTitleNormalizer(languages),
		forbidden:  append(languages.Words(), languages.GenericWords()...),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate writes a story for req. The generator is called exactly once; any
// failure fails the whole request.
func (s *StoryService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.Story, error) {
	start := time.Now()
	story, err := s.generate(ctx, req)

	outcome := "success"
	chapters := 0
	if err != nil {
		outcome = string(domain.KindOf(err))
	} else {
		chapters = len(story.Chapters)
	}
	s.observer.ObserveGeneration(outcome, time.Since(start), chapters)
	return story, err
}

func (s *StoryService) generate(ctx context.Context, req domain.GenerationRequest) (*domain.Story, error) {
	prompt := BuildPrompt(req, s.forbidden)

	logger := log.WithCtx(log.WithLanguage(ctx, req.Language)).With(zap.Int("characters", len(req.Characters)))
	if s.hasher != nil {
		logger = logger.With(zap.String("prompt_sha256", s.hasher.Hash([]byte(prompt))))
	}
	logger.Debug("Generating story", zap.Int("prompt_length", len(prompt)))

	text, err := s.llm.Generate(ctx, prompt, domain.GenerateOptions{JSON: true})
	if err != nil {
		logger.Error("Generation call failed", zap.Error(err))
		return nil, domain.WrapError(domain.KindGenerationCommunicationFailure,
			"Erro ao comunicar com a IA: "+err.Error(), err)
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("Generation returned no text")
		return nil, domain.NewError(domain.KindNoGenerationOutput, "Erro ao receber a resposta da IA.")
	}

	var story domain.Story
	if err := json.Unmarshal([]byte(extractJSON(text)), &story); err != nil {
		logger.Error("Generation returned invalid JSON", zap.Error(err), zap.String("response", text))
		return nil, domain.WrapError(domain.KindMalformedGenerationOutput,
			"Erro ao processar a resposta da IA (JSON inválido).", err)
	}

	if notice := story.Refusal(); notice != "" {
		logger.Info("Generation refused", zap.String("notice", notice))
		return nil, domain.NewError(domain.KindGenerationRefused, notice)
	}

	s.normalizer.NormalizeStory(&story, req.Language)
	fillEmpty(&story)

	logger.Info("Story generated", zap.String("title", story.Title), zap.Int("chapters", len(story.Chapters)))
	return &story, nil
}

// extractJSON drops a Markdown code fence or chatter around the JSON object.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			text = text[nl+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
		text = strings.TrimSpace(text)
	}
	if strings.HasPrefix(text, "{") {
		return text
	}
	open, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
	if open >= 0 && end > open {
		return text[open : end+1]
	}
	return text
}

// fillEmpty replaces nil lists so the response always carries arrays.
func fillEmpty(story *domain.Story) {
	if story.Chapters == nil {
		story.Chapters = []domain.Chapter{}
	}
	for i := range story.Chapters {
		if story.Chapters[i].Paragraphs == nil {
			story.Chapters[i].Paragraphs = []string{}
		}
	}
}
