package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/balance"
	"github.com/stripe/stripe-go/v78/balancetransaction"
	"github.com/stripe/stripe-go/v78/form"
)

// backendSaldo devolve um saldo fixo com montantes pendentes e disponíveis.
type backendSaldo struct{}

func (b *backendSaldo) Call(method, path, key string, params stripe.ParamsContainer, v stripe.LastResponseSetter) error {
	payload := []byte(`{
		"object": "balance",
		"pending": [{"amount": 12550, "currency": "brl"}, {"amount": 1000, "currency": "brl"}],
		"available": [{"amount": 30000, "currency": "brl"}]
	}`)
	return json.Unmarshal(payload, v)
}

func (b *backendSaldo) CallRaw(method, path, key string, body *form.Values, params *stripe.Params, v stripe.LastResponseSetter) error {
	return nil
}
func (b *backendSaldo) CallStreaming(method, path, key string, params stripe.ParamsContainer, v stripe.StreamingLastResponseSetter) error {
	return nil
}
func (b *backendSaldo) CallMultipart(method, path, key, boundary string, body *bytes.Buffer, params *stripe.Params, v stripe.LastResponseSetter) error {
	return nil
}
func (b *backendSaldo) SetMaxNetworkRetries(maxNetworkRetries int64) {}

func TestSaldoService_ConsultarSaldo(t *testing.T) {
	t.Run("soma os montantes por bucket e converte centavos para reais", func(t *testing.T) {
		// Arrange
		s := NewSaldoService(&StripeClients{
			Saldo: &balance.Client{B: &backendSaldo{}, Key: "sk_test_fake"},
		})

		// Act
		saldo, err := s.ConsultarSaldo(context.Background(), "acct_123")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(13550), saldo.PendenteCentavos)
		assert.InDelta(t, 135.50, saldo.Pendente, 0.001)
		assert.Equal(t, int64(30000), saldo.DisponivelCentavos)
		assert.InDelta(t, 300.00, saldo.Disponivel, 0.001)
		assert.Equal(t, "brl", saldo.Moeda)
	})

	t.Run("conta vazia retorna ErrContaObrigatoria", func(t *testing.T) {
		s := NewSaldoService(nil)

		_, err := s.ConsultarSaldo(context.Background(), "")
		assert.ErrorIs(t, err, ErrContaObrigatoria)
	})
}

// backendPaginado simula a API de balance_transactions devolvendo sempre
// uma página cheia com has_more=true, para flagrar qualquer busca de
// página além da primeira.
type backendPaginado struct {
	chamadas int
}

func (b *backendPaginado) CallRaw(method, path, key string, body *form.Values, params *stripe.Params, v stripe.LastResponseSetter) error {
	b.chamadas++

	dados := make([]map[string]interface{}, 10)
	for i := range dados {
		dados[i] = map[string]interface{}{
			"id":       fmt.Sprintf("txn_p%d_%d", b.chamadas, i),
			"object":   "balance_transaction",
			"type":     "payout",
			"status":   "available",
			"amount":   -100_00,
			"currency": "brl",
			"created":  1735689600 + i,
		}
	}
	pagina, err := json.Marshal(map[string]interface{}{
		"object":   "list",
		"url":      "/v1/balance_transactions",
		"has_more": true,
		"data":     dados,
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(pagina, v)
}

func (b *backendPaginado) Call(method, path, key string, params stripe.ParamsContainer, v stripe.LastResponseSetter) error {
	return nil
}
func (b *backendPaginado) CallStreaming(method, path, key string, params stripe.ParamsContainer, v stripe.StreamingLastResponseSetter) error {
	return nil
}
func (b *backendPaginado) CallMultipart(method, path, key, boundary string, body *bytes.Buffer, params *stripe.Params, v stripe.LastResponseSetter) error {
	return nil
}
func (b *backendPaginado) SetMaxNetworkRetries(maxNetworkRetries int64) {}

func TestSaldoService_ListarRepasses_JanelaFixa(t *testing.T) {
	t.Run("para na primeira página mesmo com has_more", func(t *testing.T) {
		// Arrange
		backend := &backendPaginado{}
		s := NewSaldoService(&StripeClients{
			Transacoes: &balancetransaction.Client{B: backend, Key: "sk_test_fake"},
		})

		// Act
		stats, err := s.ListarRepasses(context.Background(), "acct_123")

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 1, backend.chamadas)
		assert.Equal(t, 10, stats.TotalRepasses)
		assert.LessOrEqual(t, stats.TotalRepasses, limiteTransacoes)
	})
}

func TestAgregarRepasses(t *testing.T) {
	t.Run("separa pendentes de concluídos e converte centavos", func(t *testing.T) {
		transacoes := []*stripe.BalanceTransaction{
			{
				ID:       "txn_1",
				Type:     stripe.BalanceTransactionTypePayout,
				Status:   stripe.BalanceTransactionStatusAvailable,
				Amount:   -150_00,
				Currency: "brl",
				Created:  1735689600,
			},
			{
				ID:       "txn_2",
				Type:     stripe.BalanceTransactionTypePayout,
				Status:   stripe.BalanceTransactionStatusPending,
				Amount:   -75_50,
				Currency: "brl",
				Created:  1735776000,
			},
		}

		stats := AgregarRepasses(transacoes)

		assert.Equal(t, 2, stats.TotalRepasses)
		assert.Equal(t, 1, stats.RepassesConcluidos)
		assert.Equal(t, 1, stats.RepassesPendentes)
		assert.InDelta(t, 225.50, stats.ValorTotal, 0.001)
		assert.InDelta(t, 150.00, stats.ValorConcluido, 0.001)
		assert.InDelta(t, 75.50, stats.ValorPendente, 0.001)
		assert.Len(t, stats.Repasses, 2)
		assert.Equal(t, "txn_1", stats.Repasses[0].ID)
		assert.InDelta(t, 150.00, stats.Repasses[0].Valor, 0.001)
	})

	t.Run("ignora transações que não são payout", func(t *testing.T) {
		transacoes := []*stripe.BalanceTransaction{
			{ID: "txn_charge", Type: stripe.BalanceTransactionTypeCharge, Amount: 500_00},
			{ID: "txn_refund", Type: stripe.BalanceTransactionTypeRefund, Amount: -100_00},
			{
				ID:     "txn_payout",
				Type:   stripe.BalanceTransactionTypePayout,
				Status: stripe.BalanceTransactionStatusAvailable,
				Amount: -200_00,
			},
		}

		stats := AgregarRepasses(transacoes)

		assert.Equal(t, 1, stats.TotalRepasses)
		assert.InDelta(t, 200.00, stats.ValorTotal, 0.001)
	})

	t.Run("lista vazia devolve estatísticas zeradas com slice não nulo", func(t *testing.T) {
		stats := AgregarRepasses(nil)

		assert.Equal(t, 0, stats.TotalRepasses)
		assert.NotNil(t, stats.Repasses)
		assert.Empty(t, stats.Repasses)
	})

	t.Run("valor usa o módulo do débito", func(t *testing.T) {
		transacoes := []*stripe.BalanceTransaction{
			{
				ID:     "txn_neg",
				Type:   stripe.BalanceTransactionTypePayout,
				Status: stripe.BalanceTransactionStatusPending,
				Amount: -1234,
			},
		}

		stats := AgregarRepasses(transacoes)
		assert.InDelta(t, 12.34, stats.Repasses[0].Valor, 0.001)
	})
}
