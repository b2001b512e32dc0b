package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/service"
)

// --- Mocks da Camada de Serviço ---

type MockStatusContaService struct {
	ConsultarStatusFn func(ctx context.Context, accountID string) (*service.StatusConta, error)
}

func (m *MockStatusContaService) ConsultarStatus(ctx context.Context, accountID string) (*service.StatusConta, error) {
	return m.ConsultarStatusFn(ctx, accountID)
}

type MockSaldoService struct {
	ConsultarSaldoFn   func(ctx context.Context, accountID string) (*service.Saldo, error)
	ListarRepassesFn   func(ctx context.Context, accountID string) (*service.EstatisticasRepasses, error)
	ListarTransacoesFn func(ctx context.Context, accountID string) ([]*stripe.BalanceTransaction, error)
}

func (m *MockSaldoService) ConsultarSaldo(ctx context.Context, accountID string) (*service.Saldo, error) {
	return m.ConsultarSaldoFn(ctx, accountID)
}

func (m *MockSaldoService) ListarRepasses(ctx context.Context, accountID string) (*service.EstatisticasRepasses, error) {
	return m.ListarRepassesFn(ctx, accountID)
}

func (m *MockSaldoService) ListarTransacoes(ctx context.Context, accountID string) ([]*stripe.BalanceTransaction, error) {
	return m.ListarTransacoesFn(ctx, accountID)
}

type MockContaService struct {
	CriarContaFn func(ctx context.Context, perfilID, ipAceite string) (*domain.Perfil, error)
}

func (m *MockContaService) CriarConta(ctx context.Context, perfilID, ipAceite string) (*domain.Perfil, error) {
	return m.CriarContaFn(ctx, perfilID, ipAceite)
}

// --- Testes do Handler ---

func TestStripeHandler_CriarConta(t *testing.T) {
	t.Run("sucesso - deve criar a conta do mentor autenticado e retornar 200", func(t *testing.T) {
		// Arrange
		mockContas := &MockContaService{
			CriarContaFn: func(ctx context.Context, perfilID, ipAceite string) (*domain.Perfil, error) {
				assert.Equal(t, "user-123", perfilID)
				return &domain.Perfil{
					ID:                     "user-123",
					StripeAccountID:        "acct_789",
					StripeChargesEnabled:   true,
					StripeOnboardingStatus: domain.OnboardingConcluido,
				}, nil
			},
		}
		handler := NewStripeHandler(&MockStatusContaService{}, mockContas, &MockSaldoService{}, service.RegistradorSlog{})

		req := httptest.NewRequest(http.MethodPost, "/account", nil)
		req = req.WithContext(auth.ComUsuario(req.Context(), "user-123", domain.PapelMentor))
		rr := httptest.NewRecorder()

		// Act
		handler.CriarConta(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resposta map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.NoError(t, err)
		assert.Equal(t, true, resposta["success"])
		assert.Equal(t, "acct_789", resposta["stripe_account_id"])
		assert.Equal(t, true, resposta["charges_enabled"])
	})

	t.Run("erro - sem usuário autenticado deve retornar 401 sem chamar o serviço", func(t *testing.T) {
		// Arrange
		chamado := false
		mockContas := &MockContaService{
			CriarContaFn: func(ctx context.Context, perfilID, ipAceite string) (*domain.Perfil, error) {
				chamado = true
				return nil, nil
			},
		}
		handler := NewStripeHandler(&MockStatusContaService{}, mockContas, &MockSaldoService{}, service.RegistradorSlog{})

		req := httptest.NewRequest(http.MethodPost, "/account", nil)
		rr := httptest.NewRecorder()

		// Act
		handler.CriarConta(rr, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.False(t, chamado)
	})
}

func TestStripeHandler_ConsultarStatus(t *testing.T) {
	t.Run("sucesso - deve retornar o status da conta e 200", func(t *testing.T) {
		// Arrange
		mockStatus := &MockStatusContaService{
			ConsultarStatusFn: func(ctx context.Context, accountID string) (*service.StatusConta, error) {
				assert.Equal(t, "acct_123", accountID)
				return &service.StatusConta{
					ChargesEnabled: true,
					PayoutsEnabled: true,
					Pendencias:     []string{},
				}, nil
			},
		}
		handler := NewStripeHandler(mockStatus, nil, &MockSaldoService{}, service.RegistradorSlog{})

		req := httptest.NewRequest("GET", "/api/stripe/account/acct_123/status", nil)
		rr := httptest.NewRecorder()

		router := chi.NewRouter()
		router.Mount("/api/stripe", handler.Routes())

		// Act
		router.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var resposta map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.NoError(t, err)
		assert.Equal(t, true, resposta["success"])

		status := resposta["status"].(map[string]interface{})
		assert.Equal(t, true, status["charges_enabled"])
		assert.Equal(t, true, status["payouts_enabled"])
	})

	t.Run("erro da Stripe volta com o status HTTP original e o stripeError", func(t *testing.T) {
		mockStatus := &MockStatusContaService{
			ConsultarStatusFn: func(ctx context.Context, accountID string) (*service.StatusConta, error) {
				return nil, &service.ErroStripe{
					Tipo:       "invalid_request_error",
					Codigo:     "account_invalid",
					Mensagem:   "No such account",
					HTTPStatus: http.StatusNotFound,
				}
			},
		}
		handler := NewStripeHandler(mockStatus, nil, &MockSaldoService{}, service.RegistradorSlog{})

		req := httptest.NewRequest("GET", "/api/stripe/account/acct_bad/status", nil)
		rr := httptest.NewRecorder()

		router := chi.NewRouter()
		router.Mount("/api/stripe", handler.Routes())

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var resposta map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.Equal(t, false, resposta["success"])

		stripeErr := resposta["stripeError"].(map[string]interface{})
		assert.Equal(t, "invalid_request_error", stripeErr["type"])
		assert.Equal(t, "account_invalid", stripeErr["code"])
	})
}

func TestStripeHandler_ConsultarSaldo(t *testing.T) {
	t.Run("sucesso - deve retornar o saldo agregado", func(t *testing.T) {
		mockSaldo := &MockSaldoService{
			ConsultarSaldoFn: func(ctx context.Context, accountID string) (*service.Saldo, error) {
				assert.Equal(t, "acct_123", accountID)
				return &service.Saldo{
					PendenteCentavos:   12550,
					Pendente:           125.50,
					DisponivelCentavos: 30000,
					Disponivel:         300.00,
					Moeda:              "brl",
				}, nil
			},
		}
		handler := NewStripeHandler(&MockStatusContaService{}, nil, mockSaldo, service.RegistradorSlog{})

		req := httptest.NewRequest("GET", "/api/stripe/balance?account=acct_123", nil)
		rr := httptest.NewRecorder()

		router := chi.NewRouter()
		router.Mount("/api/stripe", handler.Routes())

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resposta map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &resposta)
		saldo := resposta["balance"].(map[string]interface{})
		assert.Equal(t, 125.50, saldo["pendente"])
		assert.Equal(t, "brl", saldo["moeda"])
	})

	t.Run("erro - sem o query param account retorna 400", func(t *testing.T) {
		mockSaldo := &MockSaldoService{
			ConsultarSaldoFn: func(ctx context.Context, accountID string) (*service.Saldo, error) {
				assert.Empty(t, accountID)
				return nil, service.ErrContaObrigatoria
			},
		}
		handler := NewStripeHandler(&MockStatusContaService{}, nil, mockSaldo, service.RegistradorSlog{})

		req := httptest.NewRequest("GET", "/api/stripe/balance", nil)
		rr := httptest.NewRecorder()

		router := chi.NewRouter()
		router.Mount("/api/stripe", handler.Routes())

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestStripeHandler_ReceberLogRede(t *testing.T) {
	handler := NewStripeHandler(&MockStatusContaService{}, nil, &MockSaldoService{}, service.RegistradorSlog{})

	t.Run("aceita o evento e responde 200", func(t *testing.T) {
		body := `{"operacao":"CriarProduto","account_id":"acct_123","sucesso":false,"erro":"timeout"}`
		req := httptest.NewRequest("POST", "/api/stripe-network-logs", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		handler.ReceberLogRede(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("JSON inválido retorna 400", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/stripe-network-logs", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()

		handler.ReceberLogRede(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
