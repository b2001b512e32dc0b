package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// PerfilService é a interface do handler de perfis.
type PerfilService interface {
	Criar(ctx context.Context, perfil domain.Perfil) (*domain.Perfil, error)
	Buscar(ctx context.Context, id string) (*domain.Perfil, error)
	Atualizar(ctx context.Context, perfil domain.Perfil) error
	Desativar(ctx context.Context, id string) error
}

// PerfilHandler gerencia as rotas de /api/perfis.
type PerfilHandler struct {
	service  PerfilService
	validate *validator.Validate
}

// NewPerfilHandler cria o handler de perfis.
func NewPerfilHandler(s PerfilService) *PerfilHandler {
	return &PerfilHandler{service: s, validate: validator.New()}
}

// Routes define as rotas deste handler.
func (h *PerfilHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Criar)
	r.Get("/me", h.BuscarProprio)
	r.Get("/{id}", h.Buscar)
	r.Put("/me", h.Atualizar)
	r.Delete("/me", h.Desativar)
	return r
}

type corpoPerfil struct {
	Nome     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone"`
	Papel    string `json:"papel"`
	Bio      string `json:"bio"`
}

// @Summary      Cria um perfil
// @Description  Registra o perfil com o ID do usuário autenticado (o sub do JWT do Supabase)
// @Tags         perfis
// @Accept       json
// @Produce      json
// @Param        perfil  body  corpoPerfil  true  "Dados do perfil"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/perfis [post]
func (h *PerfilHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var corpo corpoPerfil
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	perfil, err := h.service.Criar(r.Context(), domain.Perfil{
		ID:       auth.UsuarioDoContexto(r.Context()),
		Nome:     corpo.Nome,
		Email:    corpo.Email,
		Telefone: corpo.Telefone,
		Papel:    domain.Papel(corpo.Papel),
		Bio:      corpo.Bio,
	})
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"perfil": perfil})
}

func (h *PerfilHandler) BuscarProprio(w http.ResponseWriter, r *http.Request) {
	perfil, err := h.service.Buscar(r.Context(), auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"perfil": perfil})
}

func (h *PerfilHandler) Buscar(w http.ResponseWriter, r *http.Request) {
	perfil, err := h.service.Buscar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"perfil": perfil})
}

func (h *PerfilHandler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var corpo corpoPerfil
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	err := h.service.Atualizar(r.Context(), domain.Perfil{
		ID:       auth.UsuarioDoContexto(r.Context()),
		Nome:     corpo.Nome,
		Telefone: corpo.Telefone,
		Bio:      corpo.Bio,
	})
	if err != nil {
		responderErroServico(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Desativar faz o soft-delete do próprio perfil; a linha permanece.
func (h *PerfilHandler) Desativar(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Desativar(r.Context(), auth.UsuarioDoContexto(r.Context())); err != nil {
		responderErroServico(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
