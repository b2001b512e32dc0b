package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConteudoPayloadValido(t *testing.T) {
	casos := []struct {
		nome     string
		conteudo Conteudo
		valido   bool
	}{
		{"texto com HTML", Conteudo{Tipo: ConteudoTexto, HTMLContent: "<p>aula</p>"}, true},
		{"vídeo com URL", Conteudo{Tipo: ConteudoVideo, VideoURL: "https://videos/aula1"}, true},
		{"pdf com URL", Conteudo{Tipo: ConteudoPDF, PDFURL: "https://arquivos/apostila.pdf"}, true},
		{"texto sem HTML", Conteudo{Tipo: ConteudoTexto}, false},
		{"texto com payload de vídeo junto", Conteudo{Tipo: ConteudoTexto, HTMLContent: "<p>a</p>", VideoURL: "https://x"}, false},
		{"vídeo com payload de pdf junto", Conteudo{Tipo: ConteudoVideo, VideoURL: "https://x", PDFURL: "https://y"}, false},
		{"tipo desconhecido", Conteudo{Tipo: "quiz", HTMLContent: "<p>a</p>"}, false},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.valido, c.conteudo.PayloadValido())
		})
	}
}
