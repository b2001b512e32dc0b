package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/service"
)

// StatusContaService consulta o estado da conta conectada.
type StatusContaService interface {
	ConsultarStatus(ctx context.Context, accountID string) (*service.StatusConta, error)
}

// ContaService cria ou atualiza a conta conectada do mentor autenticado a
// partir dos dados já persistidos no perfil.
type ContaService interface {
	CriarConta(ctx context.Context, perfilID, ipAceite string) (*domain.Perfil, error)
}

// SaldoService consulta saldo e repasses da conta conectada.
type SaldoService interface {
	ConsultarSaldo(ctx context.Context, accountID string) (*service.Saldo, error)
	ListarRepasses(ctx context.Context, accountID string) (*service.EstatisticasRepasses, error)
	ListarTransacoes(ctx context.Context, accountID string) ([]*stripe.BalanceTransaction, error)
}

// StripeHandler agrupa as rotas de consulta de conta, saldo e repasses,
// além do coletor de logs de rede do front-end.
type StripeHandler struct {
	status      StatusContaService
	contas      ContaService
	saldo       SaldoService
	registrador service.RegistradorRede
}

// NewStripeHandler cria o handler das rotas /api/stripe.
func NewStripeHandler(status StatusContaService, contas ContaService, saldo SaldoService, registrador service.RegistradorRede) *StripeHandler {
	return &StripeHandler{status: status, contas: contas, saldo: saldo, registrador: registrador}
}

// Routes define as rotas deste handler.
func (h *StripeHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/account", h.CriarConta)
	r.Get("/account/{id}/status", h.ConsultarStatus)
	r.Get("/balance", h.ConsultarSaldo)
	r.Get("/payouts", h.ListarRepasses)
	r.Get("/balance_transactions", h.ListarTransacoes)
	return r
}

// @Summary      Cria ou atualiza a conta conectada do mentor
// @Description  Reenvio manual: usa os dados já gravados no perfil pelo assistente de onboarding
// @Tags         stripe
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/stripe/account [post]
func (h *StripeHandler) CriarConta(w http.ResponseWriter, r *http.Request) {
	perfilID := auth.UsuarioDoContexto(r.Context())
	if perfilID == "" {
		responderErro(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	perfil, err := h.contas.CriarConta(r.Context(), perfilID, ipDoCliente(r))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{
		"stripe_account_id": perfil.StripeAccountID,
		"charges_enabled":   perfil.StripeChargesEnabled,
		"payouts_enabled":   perfil.StripePayoutsEnabled,
		"onboarding_status": perfil.StripeOnboardingStatus,
	})
}

// @Summary      Consulta o status da conta conectada
// @Description  Estado de verificação (charges/payouts habilitados e pendências), com cache de 60s
// @Tags         stripe
// @Produce      json
// @Param        id  path  string  true  "ID da conta conectada (acct_...)"
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/stripe/account/{id}/status [get]
func (h *StripeHandler) ConsultarStatus(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "id")

	status, err := h.status.ConsultarStatus(r.Context(), accountID)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"status": status})
}

// @Summary      Consulta o saldo da conta conectada
// @Tags         stripe
// @Produce      json
// @Param        account  query  string  true  "ID da conta conectada"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stripe/balance [get]
func (h *StripeHandler) ConsultarSaldo(w http.ResponseWriter, r *http.Request) {
	saldo, err := h.saldo.ConsultarSaldo(r.Context(), r.URL.Query().Get("account"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"balance": saldo})
}

// @Summary      Lista os repasses recentes da conta conectada
// @Description  Janela fixa dos 10 payouts mais recentes, com agregação pendente vs concluído; sem paginação
// @Tags         stripe
// @Produce      json
// @Param        account  query  string  true  "ID da conta conectada"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stripe/payouts [get]
func (h *StripeHandler) ListarRepasses(w http.ResponseWriter, r *http.Request) {
	stats, err := h.saldo.ListarRepasses(r.Context(), r.URL.Query().Get("account"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"payouts": stats})
}

// @Summary      Lista as transações recentes da conta conectada
// @Tags         stripe
// @Produce      json
// @Param        account  query  string  true  "ID da conta conectada"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/stripe/balance_transactions [get]
func (h *StripeHandler) ListarTransacoes(w http.ResponseWriter, r *http.Request) {
	transacoes, err := h.saldo.ListarTransacoes(r.Context(), r.URL.Query().Get("account"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"transactions": transacoes})
}

// ReceberLogRede é o coletor de eventos de diagnóstico do front-end
// (POST /api/stripe-network-logs). É só um ralo de debug: aceita o evento,
// loga e responde 200; nunca falha a não ser por JSON inválido.
func (h *StripeHandler) ReceberLogRede(w http.ResponseWriter, r *http.Request) {
	var evento service.RegistroRede
	if err := json.NewDecoder(r.Body).Decode(&evento); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if evento.Origem == "" {
		evento.Origem = "frontend"
	}
	if evento.Momento.IsZero() {
		evento.Momento = time.Now()
	}
	h.registrador.Registrar(evento)
	responderSucesso(w, http.StatusOK, nil)
}
