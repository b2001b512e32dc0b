package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/service"
)

// OnboardingService é a interface da submissão final do assistente.
type OnboardingService interface {
	Finalizar(ctx context.Context, perfilID, ipAceite string, form service.FormOnboarding) (*domain.Perfil, error)
}

// OnboardingHandler expõe o assistente de cadastro de recebimentos:
// validação de etapa (usada pelo botão "próximo" do front-end) e a
// submissão final da etapa 5.
type OnboardingHandler struct {
	service OnboardingService
}

// NewOnboardingHandler cria o handler de onboarding.
func NewOnboardingHandler(s OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: s}
}

// Routes define as rotas deste handler.
func (h *OnboardingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Finalizar)
	r.Post("/validar/{etapa}", h.ValidarEtapa)
	return r
}

// @Summary      Valida uma etapa do assistente
// @Description  Aplica o predicado puro da etapa sobre o formulário; não tem efeito colateral
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        etapa  path  int                      true  "Número da etapa (1 a 5)"
// @Param        form   body  service.FormOnboarding  true  "Estado do formulário"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/onboarding/validar/{etapa} [post]
func (h *OnboardingHandler) ValidarEtapa(w http.ResponseWriter, r *http.Request) {
	etapa, err := strconv.Atoi(chi.URLParam(r, "etapa"))
	if err != nil || etapa < 1 || etapa > service.TotalEtapas {
		responderErro(w, http.StatusBadRequest, "Etapa inválida")
		return
	}

	var form service.FormOnboarding
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	responderSucesso(w, http.StatusOK, map[string]interface{}{
		"etapa":  etapa,
		"valida": service.ValidarEtapa(etapa, form),
	})
}

// @Summary      Finaliza o onboarding do mentor
// @Description  Persiste o formulário no perfil, cria/atualiza a conta conectada e associa os documentos, nesta ordem; uma falha tardia não desfaz os passos anteriores
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        form  body  service.FormOnboarding  true  "Formulário completo"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/onboarding [post]
func (h *OnboardingHandler) Finalizar(w http.ResponseWriter, r *http.Request) {
	perfilID := auth.UsuarioDoContexto(r.Context())
	if perfilID == "" {
		responderErro(w, http.StatusUnauthorized, "Usuário não autenticado")
		return
	}

	var form service.FormOnboarding
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	perfil, err := h.service.Finalizar(r.Context(), perfilID, ipDoCliente(r), form)
	if err != nil {
		responderErroServico(w, err)
		return
	}

	responderSucesso(w, http.StatusOK, map[string]interface{}{
		"perfil":            perfil,
		"stripe_account_id": perfil.StripeAccountID,
		"onboarding_status": perfil.StripeOnboardingStatus,
	})
}

// ipDoCliente extrai o IP da requisição para o aceite dos termos da
// Stripe. O middleware RealIP já normalizou RemoteAddr.
func ipDoCliente(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
