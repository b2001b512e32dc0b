package service

import (
	"context"
	"errors"
	"time"

	"github.com/stripe/stripe-go/v78"
)

// ErrContaObrigatoria indica chamada ao catálogo sem o identificador da
// conta conectada. Produtos e preços vivem na conta do mentor, nunca na
// conta da plataforma, então o accountID é obrigatório em toda operação.
var ErrContaObrigatoria = errors.New("identificador da conta conectada é obrigatório")

// DadosProduto são os campos editáveis de um produto do catálogo.
type DadosProduto struct {
	Nome      string `json:"nome" validate:"required"`
	Descricao string `json:"descricao"`
}

// DadosPreco são os campos para criação de um preço.
type DadosPreco struct {
	ProductID       string `json:"product_id" validate:"required"`
	ValorCentavos   int64  `json:"valor_centavos" validate:"required,gt=0"`
	Moeda           string `json:"moeda"`
	Recorrente      bool   `json:"recorrente"`
	IntervaloMensal bool   `json:"intervalo_mensal"`
}

// CatalogoService é o CRUD de produtos e preços na conta conectada do
// mentor. "Excluir" aqui é sempre soft-delete (active: false): a Stripe
// não remove produtos, e este serviço jamais tenta.
type CatalogoService struct {
	clients  *StripeClients
	registro RegistradorRede
}

// NewCatalogoService cria o serviço de catálogo.
func NewCatalogoService(clients *StripeClients, registro RegistradorRede) *CatalogoService {
	return &CatalogoService{clients: clients, registro: registro}
}

func (s *CatalogoService) CriarProduto(ctx context.Context, accountID string, dados DadosProduto) (*stripe.Product, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.ProductParams{
		Name:        stripe.String(dados.Nome),
		Description: stripe.String(dados.Descricao),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	produto, err := s.clients.Produtos.New(params)
	s.registrar("CriarProduto", accountID, idOuVazio(produto), err)
	return produto, converterErroStripe(err)
}

func (s *CatalogoService) BuscarProduto(ctx context.Context, accountID, productID string) (*stripe.Product, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.ProductParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	produto, err := s.clients.Produtos.Get(productID, params)
	s.registrar("BuscarProduto", accountID, productID, err)
	return produto, converterErroStripe(err)
}

func (s *CatalogoService) AtualizarProduto(ctx context.Context, accountID, productID string, dados DadosProduto) (*stripe.Product, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.ProductParams{
		Name:        stripe.String(dados.Nome),
		Description: stripe.String(dados.Descricao),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	produto, err := s.clients.Produtos.Update(productID, params)
	s.registrar("AtualizarProduto", accountID, productID, err)
	return produto, converterErroStripe(err)
}

func (s *CatalogoService) ListarProdutos(ctx context.Context, accountID string) ([]*stripe.Product, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.ProductListParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	var produtos []*stripe.Product
	it := s.clients.Produtos.List(params)
	for it.Next() {
		produtos = append(produtos, it.Product())
	}
	s.registrar("ListarProdutos", accountID, "", it.Err())
	if err := it.Err(); err != nil {
		return nil, converterErroStripe(err)
	}
	return produtos, nil
}

// DesativarProduto é o "delete" do catálogo: marca active=false e nada
// mais. O objeto continua recuperável pelo ID.
func (s *CatalogoService) DesativarProduto(ctx context.Context, accountID, productID string) (*stripe.Product, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := paramsDesativarProduto()
	params.Context = ctx
	params.SetStripeAccount(accountID)

	produto, err := s.clients.Produtos.Update(productID, params)
	s.registrar("DesativarProduto", accountID, productID, err)
	return produto, converterErroStripe(err)
}

func (s *CatalogoService) CriarPreco(ctx context.Context, accountID string, dados DadosPreco) (*stripe.Price, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	moeda := dados.Moeda
	if moeda == "" {
		moeda = "brl"
	}
	params := &stripe.PriceParams{
		Product:    stripe.String(dados.ProductID),
		UnitAmount: stripe.Int64(dados.ValorCentavos),
		Currency:   stripe.String(moeda),
	}
	if dados.Recorrente {
		intervalo := "year"
		if dados.IntervaloMensal {
			intervalo = "month"
		}
		params.Recurring = &stripe.PriceRecurringParams{
			Interval: stripe.String(intervalo),
		}
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	preco, err := s.clients.Precos.New(params)
	s.registrar("CriarPreco", accountID, dados.ProductID, err)
	return preco, converterErroStripe(err)
}

func (s *CatalogoService) ListarPrecos(ctx context.Context, accountID, productID string) ([]*stripe.Price, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.PriceListParams{}
	if productID != "" {
		params.Product = stripe.String(productID)
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	var precos []*stripe.Price
	it := s.clients.Precos.List(params)
	for it.Next() {
		precos = append(precos, it.Price())
	}
	s.registrar("ListarPrecos", accountID, productID, it.Err())
	if err := it.Err(); err != nil {
		return nil, converterErroStripe(err)
	}
	return precos, nil
}

// DesativarPreco marca o preço como inativo. Preços nunca são removidos.
func (s *CatalogoService) DesativarPreco(ctx context.Context, accountID, priceID string) (*stripe.Price, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := paramsDesativarPreco()
	params.Context = ctx
	params.SetStripeAccount(accountID)

	preco, err := s.clients.Precos.Update(priceID, params)
	s.registrar("DesativarPreco", accountID, priceID, err)
	return preco, converterErroStripe(err)
}

// Os builders abaixo concentram a semântica de soft-delete em um lugar só:
// nenhuma outra montagem de params de "exclusão" existe no serviço.

func paramsDesativarProduto() *stripe.ProductParams {
	return &stripe.ProductParams{Active: stripe.Bool(false)}
}

func paramsDesativarPreco() *stripe.PriceParams {
	return &stripe.PriceParams{Active: stripe.Bool(false)}
}

func (s *CatalogoService) registrar(operacao, accountID, recurso string, err error) {
	evento := RegistroRede{
		Origem:    "catalogo",
		Operacao:  operacao,
		AccountID: accountID,
		Recurso:   recurso,
		Sucesso:   err == nil,
		Momento:   time.Now(),
	}
	if err != nil {
		evento.Erro = err.Error()
	}
	s.registro.Registrar(evento)
}

func idOuVazio(p *stripe.Product) string {
	if p == nil {
		return ""
	}
	return p.ID
}
