package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// NotificacaoService é a interface do handler de notificações.
type NotificacaoService interface {
	Listar(ctx context.Context, destinatarioID string) ([]domain.Notificacao, error)
	MarcarComoLida(ctx context.Context, id, destinatarioID string) error
	MarcarTodasComoLidas(ctx context.Context, destinatarioID string) error
	ExcluirTodas(ctx context.Context, destinatarioID string) error
	Seguir(ctx context.Context, mentorID, seguidorID string) error
	DeixarDeSeguir(ctx context.Context, mentorID, seguidorID string) error
	ContarSeguidores(ctx context.Context, mentorID string) (int, error)
}

// NotificacaoHandler gerencia /api/notificacoes e /api/mentores/{id}/seguir.
type NotificacaoHandler struct {
	service NotificacaoService
}

// NewNotificacaoHandler cria o handler de notificações.
func NewNotificacaoHandler(s NotificacaoService) *NotificacaoHandler {
	return &NotificacaoHandler{service: s}
}

// Routes define as rotas de notificações.
func (h *NotificacaoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Listar)
	r.Put("/{id}/lida", h.MarcarComoLida)
	r.Put("/lidas", h.MarcarTodasComoLidas)
	r.Delete("/", h.ExcluirTodas)
	return r
}

// RoutesSeguidores define as rotas de seguir/deixar de seguir um mentor.
func (h *NotificacaoHandler) RoutesSeguidores() chi.Router {
	r := chi.NewRouter()
	r.Post("/{id}/seguir", h.Seguir)
	r.Delete("/{id}/seguir", h.DeixarDeSeguir)
	r.Get("/{id}/seguidores", h.ContarSeguidores)
	return r
}

func (h *NotificacaoHandler) Listar(w http.ResponseWriter, r *http.Request) {
	notificacoes, err := h.service.Listar(r.Context(), auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"notificacoes": notificacoes})
}

func (h *NotificacaoHandler) MarcarComoLida(w http.ResponseWriter, r *http.Request) {
	err := h.service.MarcarComoLida(r.Context(), chi.URLParam(r, "id"), auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, nil)
}

func (h *NotificacaoHandler) MarcarTodasComoLidas(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarcarTodasComoLidas(r.Context(), auth.UsuarioDoContexto(r.Context())); err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, nil)
}

// ExcluirTodas remove em lote as notificações do usuário autenticado. É a
// única exclusão física do sistema de notificações.
func (h *NotificacaoHandler) ExcluirTodas(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ExcluirTodas(r.Context(), auth.UsuarioDoContexto(r.Context())); err != nil {
		responderErroServico(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificacaoHandler) Seguir(w http.ResponseWriter, r *http.Request) {
	err := h.service.Seguir(r.Context(), chi.URLParam(r, "id"), auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, nil)
}

func (h *NotificacaoHandler) DeixarDeSeguir(w http.ResponseWriter, r *http.Request) {
	err := h.service.DeixarDeSeguir(r.Context(), chi.URLParam(r, "id"), auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *NotificacaoHandler) ContarSeguidores(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.ContarSeguidores(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"seguidores": total})
}
