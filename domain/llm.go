package domain

import "context"

// Llm abstracts any text generation provider.
type Llm interface {
	// Generate sends a single instruction and returns the model's raw text.
	// An empty string means the provider answered without text.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)
}

// GenerateOptions tunes a single Generate call.
type GenerateOptions struct {
	// JSON asks the provider for JSON formatted output.
	JSON bool
}
