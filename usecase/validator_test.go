package usecase

import (
	"reflect"
	"testing"

	"github.com/satriahrh/fanfic/domain"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind domain.Kind
		want     domain.GenerationRequest
	}{
		{
			name:     "body is not an object",
			body:     `["Ana"]`,
			wantKind: domain.KindInvalidBody,
		},
		{
			name:     "body is null",
			body:     `null`,
			wantKind: domain.KindInvalidBody,
		},
		{
			name:     "characters is not a list",
			body:     `{"personagens": "Ana"}`,
			wantKind: domain.KindInvalidCharacterList,
		},
		{
			name:     "character is not an object",
			body:     `{"personagens": ["Ana"]}`,
			wantKind: domain.KindMissingCharacterName,
		},
		{
			name:     "character without name",
			body:     `{"personagens": [{"papel": "vilão"}]}`,
			wantKind: domain.KindMissingCharacterName,
		},
		{
			name:     "character with blank name",
			body:     `{"personagens": [{"nome": "  "}]}`,
			wantKind: domain.KindMissingCharacterName,
		},
		{
			name:     "character with non string name",
			body:     `{"personagens": [{"nome": 42}]}`,
			wantKind: domain.KindMissingCharacterName,
		},
		{
			name:     "empty list",
			body:     `{"personagens": []}`,
			wantKind: domain.KindTooFewCharacters,
		},
		{
			name:     "absent list",
			body:     `{"genero": "terror"}`,
			wantKind: domain.KindTooFewCharacters,
		},
		{
			name: "single character",
			body: `{"personagens": [{"nome": "Ana"}]}`,
			want: domain.GenerationRequest{
				Characters: []domain.CharacterRole{{Name: "Ana"}},
			},
		},
		{
			name: "full request",
			body: `{"personagens": [{"nome": " Ana ", "papel": "heroína"}, {"nome": "Bruno", "papel": 3}],
				"genero": "aventura", "cenario": "Marte", "idioma": "Inglês"}`,
			want: domain.GenerationRequest{
				Characters: []domain.CharacterRole{
					{Name: "Ana", Role: "heroína"},
					{Name: "Bruno"},
				},
				Genre:    "aventura",
				Setting:  "Marte",
				Language: "Inglês",
			},
		},
		{
			name: "optional fields of the wrong type are ignored",
			body: `{"personagens": [{"nome": "Ana"}], "genero": 1, "idioma": null}`,
			want: domain.GenerationRequest{
				Characters: []domain.CharacterRole{{Name: "Ana"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBody([]byte(tt.body))
			if err != nil {
				t.Fatalf("DecodeBody: %v", err)
			}
			got, err := ValidateRequest(decoded)
			if tt.wantKind != "" {
				if err == nil {
					t.Fatalf("expected %s, got request %+v", tt.wantKind, got)
				}
				if kind := domain.KindOf(err); kind != tt.wantKind {
					t.Fatalf("kind = %s, want %s (%v)", kind, tt.wantKind, err)
				}
				if !domain.KindOf(err).IsClient() {
					t.Errorf("validation error %s is not a client error", tt.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeBody(t *testing.T) {
	for _, body := range []string{"", "   ", "{not json", `{"a":`} {
		if _, err := DecodeBody([]byte(body)); domain.KindOf(err) != domain.KindInvalidBody {
			t.Errorf("DecodeBody(%q) error = %v, want invalid body", body, err)
		}
	}
}

func TestValidator_MinCharacters(t *testing.T) {
	v := NewValidator(3)
	body := map[string]any{
		"personagens": []any{
			map[string]any{"nome": "Ana"},
			map[string]any{"nome": "Bruno"},
		},
	}
	_, err := v.Validate(body)
	if domain.KindOf(err) != domain.KindTooFewCharacters {
		t.Fatalf("expected too few characters, got %v", err)
	}
	if msg := domain.MessageOf(err); msg != "É necessário pelo menos 3 personagens." {
		t.Errorf("message = %q", msg)
	}

	if NewValidator(0).minCharacters != DefaultMinCharacters {
		t.Error("non positive minimum should fall back to the default")
	}
}
