package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

type Config struct {
	Port  int
	Debug bool
	LLM   LLMConfig

	// GenerationTimeout bounds a single call to the generator.
	GenerationTimeout time.Duration
	// MaxConcurrent caps in-flight generations; extra requests get 429.
	MaxConcurrent int
	// RateLimit is requests per second allowed per client IP.
	RateLimit   float64
	BodyLimit   string
	CORSOrigins []string

	MinCharacters   int
	DefaultLanguage string
	// LanguagesFile replaces the embedded language table when set.
	LanguagesFile string
}

type LLMConfig struct {
	Provider      string
	GoogleAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
}

func defaults(v *viper.Viper) {
	v.SetDefault("PORT", 5000)
	v.SetDefault("DEBUG", false)
	v.SetDefault("LLM_PROVIDER", ProviderGemini)
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("GENERATION_TIMEOUT", "60s")
	v.SetDefault("MAX_CONCURRENT", 10)
	v.SetDefault("RATE_LIMIT", 20)
	v.SetDefault("BODY_LIMIT", "1M")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("MIN_CHARACTERS", 1)
	v.SetDefault("DEFAULT_LANGUAGE", "Português")
}

// Load reads .env files (missing ones are ignored) and then the environment.
// Variables already set in the environment win over .env entries.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = gotenv.Load(f)
	}

	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:  v.GetInt("PORT"),
		Debug: v.GetBool("DEBUG"),
		LLM: LLMConfig{
			Provider:      strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
			GoogleAPIKey:  v.GetString("GOOGLE_API_KEY"),
			GeminiModel:   v.GetString("GEMINI_MODEL"),
			OpenAIAPIKey:  v.GetString("OPENAI_API_KEY"),
			OpenAIModel:   v.GetString("OPENAI_MODEL"),
			OpenAIBaseURL: v.GetString("OPENAI_BASE_URL"),
		},
		GenerationTimeout: v.GetDuration("GENERATION_TIMEOUT"),
		MaxConcurrent:     v.GetInt("MAX_CONCURRENT"),
		RateLimit:         v.GetFloat64("RATE_LIMIT"),
		BodyLimit:         v.GetString("BODY_LIMIT"),
		CORSOrigins:       splitList(v.GetString("CORS_ORIGINS")),
		MinCharacters:     v.GetInt("MIN_CHARACTERS"),
		DefaultLanguage:   v.GetString("DEFAULT_LANGUAGE"),
		LanguagesFile:     v.GetString("LANGUAGES_FILE"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail late, at the first request.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.LLM.GoogleAPIKey == "" {
			return errors.New("GOOGLE_API_KEY is required for the gemini provider")
		}
	case ProviderOpenAI:
		if c.LLM.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai provider")
		}
	case ProviderMock:
	default:
		return fmt.Errorf("unknown LLM_PROVIDER %q", c.LLM.Provider)
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("invalid GENERATION_TIMEOUT %s", c.GenerationTimeout)
	}
	if c.MaxConcurrent <= 0 {
		return fmt.Errorf("invalid MAX_CONCURRENT %d", c.MaxConcurrent)
	}
	if c.MinCharacters < 1 {
		return fmt.Errorf("invalid MIN_CHARACTERS %d", c.MinCharacters)
	}
	return nil
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
