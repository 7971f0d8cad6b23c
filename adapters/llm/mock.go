package llm

import (
	"context"
	"encoding/json"

	"github.com/satriahrh/fanfic/domain"
)

// MockClient returns a fixed story without calling any model. Useful for
// running the service locally without credentials.
type MockClient struct{}

func NewMockClient() domain.Llm { return MockClient{} }

func (MockClient) Generate(ctx context.Context, prompt string, opts domain.GenerateOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// Titles mimic the prefixes real models tend to add.
	story := domain.Story{
		Title: "Uma Aventura de Teste",
		Chapters: []domain.Chapter{
			{Title: "Capítulo 1: O Encontro", Paragraphs: []string{
				"Os personagens se conhecem em uma manhã tranquila.",
				"Nada indicava o que estava por vir.",
			}},
			{Title: "Chapter 2 - O Desafio", Paragraphs: []string{
				"Um problema inesperado coloca a amizade à prova.",
			}},
			{Title: "A Despedida", Paragraphs: []string{
				"Tudo se resolve e cada um segue seu caminho.",
			}},
		},
	}
	b, err := json.Marshal(story)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
