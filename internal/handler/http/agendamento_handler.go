package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/service"
)

// AgendamentoService é a interface que o handler exige da camada de
// serviço. O handler depende da interface, não da implementação concreta,
// para facilitar os testes com mocks.
type AgendamentoService interface {
	Criar(ctx context.Context, novo service.NovoAgendamento) (*domain.Agendamento, service.ResultadoNotificacoes, error)
	Cancelar(ctx context.Context, id, motivo string) (service.ResultadoNotificacoes, error)
}

// AgendamentoHandler gerencia as rotas de /api/appointments.
type AgendamentoHandler struct {
	service AgendamentoService
}

// NewAgendamentoHandler cria o handler de agendamentos.
func NewAgendamentoHandler(s AgendamentoService) *AgendamentoHandler {
	return &AgendamentoHandler{service: s}
}

// Routes define as rotas deste handler.
func (h *AgendamentoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Criar)                  // POST /api/appointments
	r.Post("/{id}/cancelar", h.Cancelar)  // POST /api/appointments/{id}/cancelar
	return r
}

// @Summary      Cria um agendamento de mentoria
// @Description  Persiste o agendamento e notifica mentor e mentorado por e-mail; os dois envios são independentes
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Param        agendamento  body      service.NovoAgendamento  true  "Dados do agendamento"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /api/appointments [post]
func (h *AgendamentoHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var novo service.NovoAgendamento
	if err := json.NewDecoder(r.Body).Decode(&novo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	// Validação com detalhamento por campo: o front-end marca no
	// formulário exatamente o que faltou.
	validacao := novo.Validar()
	for _, presente := range validacao {
		if !presente {
			responderJSON(w, http.StatusBadRequest, map[string]interface{}{
				"success":    false,
				"error":      "campos obrigatórios ausentes",
				"validation": validacao,
			})
			return
		}
	}

	agendamento, notificacoes, err := h.service.Criar(r.Context(), novo)
	if err != nil {
		responderErroServico(w, err)
		return
	}

	responderSucesso(w, http.StatusCreated, map[string]interface{}{
		"appointment":   agendamento,
		"notifications": notificacoes,
	})
}

// @Summary      Cancela um agendamento
// @Tags         agendamentos
// @Accept       json
// @Produce      json
// @Param        id  path  string  true  "ID do agendamento"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /api/appointments/{id}/cancelar [post]
func (h *AgendamentoHandler) Cancelar(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var corpo struct {
		Motivo string `json:"motivo"`
	}
	// Corpo opcional; cancelamento sem motivo é válido.
	_ = json.NewDecoder(r.Body).Decode(&corpo)

	notificacoes, err := h.service.Cancelar(r.Context(), id, corpo.Motivo)
	if err != nil {
		responderErroServico(w, err)
		return
	}

	responderSucesso(w, http.StatusOK, map[string]interface{}{
		"notifications": notificacoes,
	})
}
