package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// MatriculaService é a interface do handler de matrículas.
type MatriculaService interface {
	IniciarCheckout(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error)
	ConfirmarPagamento(ctx context.Context, matriculaID string) error
	Listar(ctx context.Context, mentoradoID string) ([]domain.Matricula, error)
	AtualizarProgresso(ctx context.Context, matriculaID string, concluidos int) error
}

// MatriculaHandler gerencia as rotas de /api/matriculas.
type MatriculaHandler struct {
	service MatriculaService
}

// NewMatriculaHandler cria o handler de matrículas.
func NewMatriculaHandler(s MatriculaService) *MatriculaHandler {
	return &MatriculaHandler{service: s}
}

// Routes define as rotas deste handler.
func (h *MatriculaHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.IniciarCheckout)
	r.Get("/", h.Listar)
	r.Post("/{id}/confirmar", h.ConfirmarPagamento)
	r.Put("/{id}/progresso", h.AtualizarProgresso)
	return r
}

// @Summary      Inicia o checkout de um curso
// @Description  Cria a matrícula pendente; a ativação acontece na confirmação do pagamento. Reenvio reusa a matrícula pendente existente
// @Tags         matriculas
// @Accept       json
// @Produce      json
// @Success      201  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /api/matriculas [post]
func (h *MatriculaHandler) IniciarCheckout(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		CursoID string `json:"curso_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil || corpo.CursoID == "" {
		responderErro(w, http.StatusBadRequest, "Informe o curso_id")
		return
	}

	matricula, err := h.service.IniciarCheckout(r.Context(), corpo.CursoID, auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"matricula": matricula})
}

func (h *MatriculaHandler) Listar(w http.ResponseWriter, r *http.Request) {
	matriculas, err := h.service.Listar(r.Context(), auth.UsuarioDoContexto(r.Context()))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"matriculas": matriculas})
}

func (h *MatriculaHandler) ConfirmarPagamento(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ConfirmarPagamento(r.Context(), chi.URLParam(r, "id")); err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, nil)
}

// AtualizarProgresso recebe a contagem de conteúdos concluídos do player e
// grava o percentual resultante.
func (h *MatriculaHandler) AtualizarProgresso(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		ConteudosConcluidos int `json:"conteudos_concluidos"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := h.service.AtualizarProgresso(r.Context(), chi.URLParam(r, "id"), corpo.ConteudosConcluidos); err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, nil)
}
