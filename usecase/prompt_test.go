package usecase

import (
	"strings"
	"testing"

	"github.com/satriahrh/fanfic/adapters/language"
	"github.com/satriahrh/fanfic/domain"
)

func TestBuildPrompt(t *testing.T) {
	table := language.MustDefault()
	forbidden := append(table.Words(), table.GenericWords()...)

	t.Run("characters in input order with default role", func(t *testing.T) {
		p := BuildPrompt(domain.GenerationRequest{
			Characters: []domain.CharacterRole{
				{Name: "Ana", Role: "Heroína"},
				{Name: "Bruno"},
			},
		}, forbidden)

		if !strings.Contains(p, "Heroína: Ana, Personagem: Bruno.") {
			t.Errorf("cast not rendered in order:\n%s", p)
		}
		for _, absent := range []string{"O gênero da fanfic", "O cenário onde", "no idioma"} {
			if strings.Contains(p, absent) {
				t.Errorf("prompt contains %q without the field being set", absent)
			}
		}
	})

	t.Run("optional clauses", func(t *testing.T) {
		p := BuildPrompt(domain.GenerationRequest{
			Characters: []domain.CharacterRole{{Name: "Ana"}},
			Genre:      "mistério",
			Setting:    "um farol",
			Language:   "Japonês",
		}, forbidden)

		for _, want := range []string{
			"O gênero da fanfic deve ser: mistério.",
			"O cenário onde a história se passa é: um farol.",
			"no idioma: Japonês.",
		} {
			if !strings.Contains(p, want) {
				t.Errorf("prompt is missing %q", want)
			}
		}
	})

	t.Run("structure, schema and safety instructions", func(t *testing.T) {
		p := BuildPrompt(domain.GenerationRequest{Characters: []domain.CharacterRole{{Name: "Ana"}}}, forbidden)

		for _, want := range []string{
			"exatamente três capítulos",
			"introdução",
			"desenvolvimento",
			"finalização",
			`"titulo"`,
			`"capitulos"`,
			`"historia"`,
			"uso responsável",
			"adquire um nome real",
			"em NENHUM idioma",
		} {
			if !strings.Contains(p, want) {
				t.Errorf("prompt is missing %q", want)
			}
		}
	})

	t.Run("every chapter word is forbidden", func(t *testing.T) {
		p := BuildPrompt(domain.GenerationRequest{Characters: []domain.CharacterRole{{Name: "Ana"}}}, forbidden)
		for _, w := range forbidden {
			if !strings.Contains(p, `"`+w+`"`) {
				t.Errorf("forbidden word %q is not listed", w)
			}
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		req := domain.GenerationRequest{Characters: []domain.CharacterRole{{Name: "Ana"}}, Genre: "drama"}
		if BuildPrompt(req, forbidden) != BuildPrompt(req, forbidden) {
			t.Error("same request rendered two different prompts")
		}
	})
}
