package usecase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/satriahrh/fanfic/domain"
)

// DefaultMinCharacters is the smallest cast a story can be written for.
const DefaultMinCharacters = 1

// DecodeBody parses a raw request body into a generic JSON value.
func DecodeBody(body []byte) (any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, domain.NewError(domain.KindInvalidBody, "Requisição JSON inválida. Esperava um dicionário.")
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, domain.WrapError(domain.KindInvalidBody, "Requisição JSON inválida. Esperava um dicionário.", err)
	}
	return v, nil
}

// Validator checks decoded request bodies.
type Validator struct {
	minCharacters int
}

// NewValidator returns a validator requiring at least minCharacters
// characters. Values below 1 fall back to DefaultMinCharacters.
func NewValidator(minCharacters int) *Validator {
	if minCharacters < 1 {
		minCharacters = DefaultMinCharacters
	}
	return &Validator{minCharacters: minCharacters}
}

// ValidateRequest checks body with the default minimum cast size.
func ValidateRequest(body any) (domain.GenerationRequest, error) {
	return NewValidator(DefaultMinCharacters).Validate(body)
}

// Validate turns a decoded JSON body into a GenerationRequest.
func (v *Validator) Validate(body any) (domain.GenerationRequest, error) {
	fields, ok := body.(map[string]any)
	if !ok || fields == nil {
		return domain.GenerationRequest{}, domain.NewError(domain.KindInvalidBody,
			"Requisição JSON inválida. Esperava um dicionário.")
	}

	var entries []any
	if raw, present := fields["personagens"]; present && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return domain.GenerationRequest{}, domain.NewError(domain.KindInvalidCharacterList,
				`O campo "personagens" deve ser uma lista.`)
		}
		entries = list
	}

	characters := make([]domain.CharacterRole, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return domain.GenerationRequest{}, missingName()
		}
		name := optionalString(obj["nome"])
		if name == "" {
			return domain.GenerationRequest{}, missingName()
		}
		characters = append(characters, domain.CharacterRole{
			Name: name,
			Role: optionalString(obj["papel"]),
		})
	}

	if len(characters) < v.minCharacters {
		return domain.GenerationRequest{}, domain.NewError(domain.KindTooFewCharacters,
			fmt.Sprintf("É necessário pelo menos %d %s.", v.minCharacters, pluralCharacters(v.minCharacters)))
	}

	return domain.GenerationRequest{
		Characters: characters,
		Genre:      optionalString(fields["genero"]),
		Setting:    optionalString(fields["cenario"]),
		Language:   optionalString(fields["idioma"]),
	}, nil
}

func missingName() error {
	return domain.NewError(domain.KindMissingCharacterName,
		`Cada item na lista de personagens deve ser um dicionário com a chave "nome".`)
}

func optionalString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func pluralCharacters(n int) string {
	if n == 1 {
		return "personagem"
	}
	return "personagens"
}
