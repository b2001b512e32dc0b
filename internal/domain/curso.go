package domain

import "time"

// Curso é um produto vendável de um mentor. Cada curso pertence a exatamente
// um mentor e, quando publicado, ganha um par Product/Price na conta
// conectada do mentor (nunca na conta da plataforma).
type Curso struct {
	ID        string `json:"id"`
	MentorID  string `json:"mentor_id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`

	// Preço em centavos, como a Stripe espera.
	PrecoCentavos int64  `json:"preco_centavos"`
	Moeda         string `json:"moeda"`

	Publicado bool `json:"publicado"`

	// Referências externas; a Stripe é a dona desses objetos.
	StripeProductID string `json:"stripe_product_id,omitempty"`
	StripePriceID   string `json:"stripe_price_id,omitempty"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// Modulo agrupa conteúdos dentro de um curso, na ordem definida pelo mentor.
type Modulo struct {
	ID      string `json:"id"`
	CursoID string `json:"curso_id"`
	Titulo  string `json:"titulo"`
	Ordem   int    `json:"ordem"`
}

// TipoConteudo define o formato de um item de conteúdo.
type TipoConteudo string

const (
	ConteudoTexto TipoConteudo = "texto"
	ConteudoVideo TipoConteudo = "video"
	ConteudoPDF   TipoConteudo = "pdf"
)

// Conteudo é um item dentro de um módulo. O payload é polimórfico:
// exatamente um dos campos HTMLContent/VideoURL/PDFURL é significativo,
// conforme o Tipo. A escrita valida essa invariante (ver service.CursoService).
type Conteudo struct {
	ID       string       `json:"id"`
	ModuloID string       `json:"modulo_id"`
	Titulo   string       `json:"titulo"`
	Tipo     TipoConteudo `json:"tipo"`
	Ordem    int          `json:"ordem"`

	HTMLContent string `json:"html_content,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	PDFURL      string `json:"pdf_url,omitempty"`
}

// PayloadValido verifica a invariante do conteúdo polimórfico: o campo
// correspondente ao tipo precisa estar preenchido e os demais vazios.
func (c Conteudo) PayloadValido() bool {
	switch c.Tipo {
	case ConteudoTexto:
		return c.HTMLContent != "" && c.VideoURL == "" && c.PDFURL == ""
	case ConteudoVideo:
		return c.VideoURL != "" && c.HTMLContent == "" && c.PDFURL == ""
	case ConteudoPDF:
		return c.PDFURL != "" && c.HTMLContent == "" && c.VideoURL == ""
	}
	return false
}
