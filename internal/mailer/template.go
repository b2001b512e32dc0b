package mailer

import "regexp"

// Renderização de templates por substituição de texto. Suporta apenas o
// necessário para e-mails transacionais:
//
//   {{var}}                  → valor da variável (vazio se ausente)
//   {{#if var}}...{{/if}}    → bloco condicional, sem aninhamento e sem else
//
// Tokens {{...}} que sobrarem ao final são removidos. Isso é deliberadamente
// mínimo; se um dia precisarmos de lógica de verdade, o caminho é adotar um
// engine mustache, não estender esses regexes.
var (
	reBlocoIf  = regexp.MustCompile(`(?s)\{\{#if\s+([A-Za-z0-9_]+)\s*\}\}(.*?)\{\{/if\}\}`)
	reVariavel = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)
	reSobras   = regexp.MustCompile(`\{\{[^}]*\}\}`)
)

// Renderizar aplica o mapa de variáveis sobre o template.
func Renderizar(template string, vars map[string]string) string {
	// 1. Blocos condicionais: mantém o corpo quando a variável é "verdadeira".
	saida := reBlocoIf.ReplaceAllStringFunc(template, func(bloco string) string {
		m := reBlocoIf.FindStringSubmatch(bloco)
		if verdadeiro(vars[m[1]]) {
			return m[2]
		}
		return ""
	})

	// 2. Variáveis simples: ausente vira string vazia.
	saida = reVariavel.ReplaceAllStringFunc(saida, func(token string) string {
		m := reVariavel.FindStringSubmatch(token)
		return vars[m[1]]
	})

	// 3. Qualquer token não resolvido é descartado.
	return reSobras.ReplaceAllString(saida, "")
}

// verdadeiro reproduz a noção de "truthy" do mapa de variáveis: presente,
// não vazia e diferente de "false"/"0".
func verdadeiro(v string) bool {
	return v != "" && v != "false" && v != "0"
}
