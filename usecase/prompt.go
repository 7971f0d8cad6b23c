package usecase

import (
	"fmt"
	"strings"

	"github.com/satriahrh/fanfic/domain"
)

const storySchema = `{
    "titulo": "Título da Fanfic",
    "capitulos": [
        {
            "titulo": "Título do Capítulo 1",
            "historia": [
                "Parágrafo 1 do Capítulo 1.",
                "Parágrafo 2 do Capítulo 1.",
                "..."
            ]
        },
        {
            "titulo": "Título do Capítulo 2",
            "historia": [
                "Parágrafo 1 do Capítulo 2.",
                "Parágrafo 2 do Capítulo 2.",
                "..."
            ]
        },
        {
            "titulo": "Título do Capítulo 3",
            "historia": [
                "Parágrafo 1 do Capítulo 3.",
                "Parágrafo 2 do Capítulo 3.",
                "..."
            ]
        }
    ]
}`

// BuildPrompt renders the generation instruction for req. forbiddenWords are
// the chapter words the model must keep out of chapter titles.
func BuildPrompt(req domain.GenerationRequest, forbiddenWords []string) string {
	cast := make([]string, 0, len(req.Characters))
	for _, c := range req.Characters {
		role := c.Role
		if role == "" {
			role = "Personagem"
		}
		cast = append(cast, fmt.Sprintf("%s: %s", role, c.Name))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Crie uma fanfic que tenha como base os seguintes personagens: %s.", strings.Join(cast, ", ")))
	if req.Genre != "" {
		sb.WriteString(fmt.Sprintf(" O gênero da fanfic deve ser: %s.", req.Genre))
	}
	if req.Setting != "" {
		sb.WriteString(fmt.Sprintf(" O cenário onde a história se passa é: %s.", req.Setting))
	}
	if req.Language != "" {
		sb.WriteString(fmt.Sprintf(" A fanfic inteira, incluindo títulos, deve ser escrita no idioma: %s.", req.Language))
	}
	sb.WriteString("\n")

	sb.WriteString("Caso os personagens, seus papéis, gênero, cenário ou idioma inseridos não sejam apropriados, por exemplo, ")
	sb.WriteString("por serem relacionados a conteúdo sexual, ódio, qualquer coisa inapropriada ou coisas que não são de boa conduta, ")
	sb.WriteString("ignore-os, não gere a fanfic e devolva, no mesmo formato JSON, um alerta ao usuário sobre o uso responsável ")
	sb.WriteString("da ferramenta de geração de fanfics.\n")
	sb.WriteString("Caso o nome de algum personagem não faça sentido (por exemplo, uma série aleatória de caracteres), ")
	sb.WriteString("a fanfic deve ser uma história de como ele adquire um nome real.\n")
	sb.WriteString("A fanfic deve ter exatamente três capítulos: o primeiro de introdução, o segundo de desenvolvimento ")
	sb.WriteString("e o terceiro de finalização.\n")

	if len(forbiddenWords) > 0 {
		sb.WriteString("Os títulos dos capítulos NÃO podem conter a palavra \"capítulo\" nem numeração, em NENHUM idioma, ")
		sb.WriteString("nem mesmo em um idioma diferente do pedido. Palavras proibidas no início dos títulos: ")
		sb.WriteString(strings.Join(quoteAll(forbiddenWords), ", "))
		sb.WriteString(".\n")
	}

	sb.WriteString("Devolva no seguinte formato JSON:\n")
	sb.WriteString(storySchema)
	sb.WriteString("\n")
	sb.WriteString("A fanfic pode ser de qualquer gênero, desde que não seja inapropriada ou explícita.\n")
	sb.WriteString("Dê preferência para fanfics rápidas de serem lidas.\n")
	return sb.String()
}

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = fmt.Sprintf("%q", w)
	}
	return out
}
