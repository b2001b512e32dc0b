package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/mentoria-api/internal/service"
)

// CatalogoService é a interface do CRUD de produtos e preços na conta
// conectada do mentor.
type CatalogoService interface {
	CriarProduto(ctx context.Context, accountID string, dados service.DadosProduto) (*stripe.Product, error)
	BuscarProduto(ctx context.Context, accountID, productID string) (*stripe.Product, error)
	AtualizarProduto(ctx context.Context, accountID, productID string, dados service.DadosProduto) (*stripe.Product, error)
	ListarProdutos(ctx context.Context, accountID string) ([]*stripe.Product, error)
	DesativarProduto(ctx context.Context, accountID, productID string) (*stripe.Product, error)
	CriarPreco(ctx context.Context, accountID string, dados service.DadosPreco) (*stripe.Price, error)
	ListarPrecos(ctx context.Context, accountID, productID string) ([]*stripe.Price, error)
	DesativarPreco(ctx context.Context, accountID, priceID string) (*stripe.Price, error)
}

// CatalogoHandler expõe o catálogo em /api/stripe/products e /api/stripe/prices.
// Toda rota exige o query param "account": produtos e preços são sempre da
// conta conectada, nunca da plataforma.
type CatalogoHandler struct {
	service  CatalogoService
	validate *validator.Validate
}

// NewCatalogoHandler cria o handler do catálogo.
func NewCatalogoHandler(s CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{service: s, validate: validator.New()}
}

// RoutesProdutos define as rotas de produtos.
func (h *CatalogoHandler) RoutesProdutos() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CriarProduto)
	r.Get("/", h.ListarProdutos)
	r.Get("/{id}", h.BuscarProduto)
	r.Put("/{id}", h.AtualizarProduto)
	r.Delete("/{id}", h.DesativarProduto)
	return r
}

// RoutesPrecos define as rotas de preços.
func (h *CatalogoHandler) RoutesPrecos() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CriarPreco)
	r.Get("/", h.ListarPrecos)
	r.Delete("/{id}", h.DesativarPreco)
	return r
}

func contaDaQuery(r *http.Request) string {
	return r.URL.Query().Get("account")
}

// @Summary      Cria um produto na conta conectada
// @Tags         catalogo
// @Accept       json
// @Produce      json
// @Param        account  query  string                true  "ID da conta conectada"
// @Param        produto  body   service.DadosProduto  true  "Dados do produto"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/stripe/products [post]
func (h *CatalogoHandler) CriarProduto(w http.ResponseWriter, r *http.Request) {
	var dados service.DadosProduto
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(dados); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	produto, err := h.service.CriarProduto(r.Context(), contaDaQuery(r), dados)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"product": produto})
}

func (h *CatalogoHandler) ListarProdutos(w http.ResponseWriter, r *http.Request) {
	produtos, err := h.service.ListarProdutos(r.Context(), contaDaQuery(r))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"products": produtos})
}

func (h *CatalogoHandler) BuscarProduto(w http.ResponseWriter, r *http.Request) {
	produto, err := h.service.BuscarProduto(r.Context(), contaDaQuery(r), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"product": produto})
}

func (h *CatalogoHandler) AtualizarProduto(w http.ResponseWriter, r *http.Request) {
	var dados service.DadosProduto
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(dados); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	produto, err := h.service.AtualizarProduto(r.Context(), contaDaQuery(r), chi.URLParam(r, "id"), dados)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"product": produto})
}

// @Summary      Desativa um produto (soft-delete)
// @Description  Marca active=false; a Stripe não remove produtos e o objeto continua recuperável pelo ID
// @Tags         catalogo
// @Produce      json
// @Param        account  query  string  true  "ID da conta conectada"
// @Param        id       path   string  true  "ID do produto"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stripe/products/{id} [delete]
func (h *CatalogoHandler) DesativarProduto(w http.ResponseWriter, r *http.Request) {
	produto, err := h.service.DesativarProduto(r.Context(), contaDaQuery(r), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"product": produto})
}

func (h *CatalogoHandler) CriarPreco(w http.ResponseWriter, r *http.Request) {
	var dados service.DadosPreco
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(dados); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	preco, err := h.service.CriarPreco(r.Context(), contaDaQuery(r), dados)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"price": preco})
}

func (h *CatalogoHandler) ListarPrecos(w http.ResponseWriter, r *http.Request) {
	precos, err := h.service.ListarPrecos(r.Context(), contaDaQuery(r), r.URL.Query().Get("product"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"prices": precos})
}

func (h *CatalogoHandler) DesativarPreco(w http.ResponseWriter, r *http.Request) {
	preco, err := h.service.DesativarPreco(r.Context(), contaDaQuery(r), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"price": preco})
}
