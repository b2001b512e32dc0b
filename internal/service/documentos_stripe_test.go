package service

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

// imagemPNG gera um PNG válido com as dimensões pedidas.
func imagemPNG(t *testing.T, largura, altura int) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, largura, altura)))
	assert.NoError(t, err)
	return buf.Bytes()
}

// imagemJPEG gera um JPEG válido com as dimensões pedidas.
func imagemJPEG(t *testing.T, largura, altura int) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, largura, altura)), nil)
	assert.NoError(t, err)
	return buf.Bytes()
}

func TestValidarArquivo(t *testing.T) {
	t.Run("aceita PNG com dimensões suficientes", func(t *testing.T) {
		dados := imagemPNG(t, DimensaoMinimaImagem, DimensaoMinimaImagem)
		assert.NoError(t, ValidarArquivo("image/png", dados))
	})

	t.Run("aceita JPEG com dimensões suficientes", func(t *testing.T) {
		dados := imagemJPEG(t, 1200, 1600)
		assert.NoError(t, ValidarArquivo("image/jpeg", dados))
	})

	t.Run("aceita PDF sem checar dimensões", func(t *testing.T) {
		assert.NoError(t, ValidarArquivo("application/pdf", []byte("%PDF-1.4 conteudo")))
	})

	t.Run("rejeita arquivo acima de 5MB", func(t *testing.T) {
		dados := make([]byte, TamanhoMaximoDocumento+1)
		err := ValidarArquivo("application/pdf", dados)
		assert.ErrorIs(t, err, ErrArquivoMuitoGrande)
	})

	t.Run("rejeita MIME fora da lista", func(t *testing.T) {
		err := ValidarArquivo("image/gif", []byte("GIF89a"))
		assert.ErrorIs(t, err, ErrTipoArquivoInvalido)
	})

	t.Run("rejeita imagem menor que 1000x1000", func(t *testing.T) {
		dados := imagemPNG(t, 800, 1200)
		err := ValidarArquivo("image/png", dados)
		assert.ErrorIs(t, err, ErrDimensoesInsuficientes)

		dados = imagemJPEG(t, 1200, 800)
		err = ValidarArquivo("image/jpeg", dados)
		assert.ErrorIs(t, err, ErrDimensoesInsuficientes)
	})

	t.Run("rejeita bytes que não decodificam como imagem", func(t *testing.T) {
		err := ValidarArquivo("image/png", []byte("isso nao e um png"))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrDimensoesInsuficientes)
	})

	t.Run("tamanho é checado antes do MIME", func(t *testing.T) {
		dados := make([]byte, TamanhoMaximoDocumento+1)
		err := ValidarArquivo("image/gif", dados)
		assert.ErrorIs(t, err, ErrArquivoMuitoGrande)
	})
}
