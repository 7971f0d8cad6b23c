package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/satriahrh/fanfic/config"
	"github.com/satriahrh/fanfic/domain"
)

func TestNew(t *testing.T) {
	ctx := context.Background()

	gen, err := New(ctx, config.LLMConfig{Provider: config.ProviderMock})
	if err != nil {
		t.Fatalf("mock provider: %v", err)
	}
	if _, ok := gen.(MockClient); !ok {
		t.Errorf("mock provider built %T", gen)
	}

	gen, err = New(ctx, config.LLMConfig{Provider: config.ProviderOpenAI, OpenAIAPIKey: "sk-test"})
	if err != nil {
		t.Fatalf("openai provider: %v", err)
	}
	if _, ok := gen.(*OpenAIClient); !ok {
		t.Errorf("openai provider built %T", gen)
	}

	if _, err := New(ctx, config.LLMConfig{Provider: "llama"}); err == nil {
		t.Error("unknown provider should fail")
	}
}

func TestMockClient(t *testing.T) {
	text, err := NewMockClient().Generate(context.Background(), "prompt", domain.GenerateOptions{JSON: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var story domain.Story
	if err := json.Unmarshal([]byte(text), &story); err != nil {
		t.Fatalf("mock reply is not a story: %v", err)
	}
	if len(story.Chapters) != 3 {
		t.Errorf("got %d chapters", len(story.Chapters))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockClient().Generate(ctx, "prompt", domain.GenerateOptions{}); err == nil {
		t.Error("cancelled context should fail")
	}
}
