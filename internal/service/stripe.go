package service

import (
	"errors"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/account"
	"github.com/stripe/stripe-go/v78/balance"
	"github.com/stripe/stripe-go/v78/balancetransaction"
	"github.com/stripe/stripe-go/v78/file"
	"github.com/stripe/stripe-go/v78/price"
	"github.com/stripe/stripe-go/v78/product"
)

// StripeClients agrupa os clients por recurso da Stripe, construídos com a
// chave injetada. Evitamos de propósito o singleton global (stripe.Key):
// cada serviço recebe seus clients prontos, o que simplifica testes e não
// esconde dependência em estado de pacote.
type StripeClients struct {
	Contas     *account.Client
	Produtos   *product.Client
	Precos     *price.Client
	Saldo      *balance.Client
	Transacoes *balancetransaction.Client
	Arquivos   *file.Client
}

// NewStripeClients monta os clients sobre os backends padrão da Stripe.
// Uploads de arquivo usam um backend próprio (files.stripe.com).
func NewStripeClients(chaveSecreta string) *StripeClients {
	api := stripe.GetBackend(stripe.APIBackend)
	uploads := stripe.GetBackend(stripe.UploadsBackend)

	return &StripeClients{
		Contas:     &account.Client{B: api, Key: chaveSecreta},
		Produtos:   &product.Client{B: api, Key: chaveSecreta},
		Precos:     &price.Client{B: api, Key: chaveSecreta},
		Saldo:      &balance.Client{B: api, Key: chaveSecreta},
		Transacoes: &balancetransaction.Client{B: api, Key: chaveSecreta},
		Arquivos:   &file.Client{B: uploads, Key: chaveSecreta},
	}
}

// ErroStripe carrega o erro estruturado da Stripe (type/code/message) sem
// modificação, para o front-end exibir no modal de erro dedicado.
type ErroStripe struct {
	Tipo       string `json:"type"`
	Codigo     string `json:"code"`
	Mensagem   string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *ErroStripe) Error() string {
	return e.Mensagem
}

// converterErroStripe extrai o erro estruturado da Stripe, quando houver.
// Qualquer outro erro passa adiante intocado.
func converterErroStripe(err error) error {
	if err == nil {
		return nil
	}
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		return &ErroStripe{
			Tipo:       string(sErr.Type),
			Codigo:     string(sErr.Code),
			Mensagem:   sErr.Msg,
			HTTPStatus: sErr.HTTPStatusCode,
		}
	}
	return err
}
