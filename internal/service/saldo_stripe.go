package service

import (
	"context"
	"math"
	"time"

	"github.com/stripe/stripe-go/v78"
)

// Quantidade fixa de transações retornadas por listagem. Janela limitada
// de propósito: o dashboard mostra só o histórico recente, e quem chama
// não deve assumir que recebeu todos os repasses históricos.
const limiteTransacoes = 10

// Saldo é a visão agregada do saldo da conta conectada, já em reais.
type Saldo struct {
	PendenteCentavos   int64   `json:"pendente_centavos"`
	Pendente           float64 `json:"pendente"`
	DisponivelCentavos int64   `json:"disponivel_centavos"`
	Disponivel         float64 `json:"disponivel"`
	Moeda              string  `json:"moeda"`
}

// Repasse é um payout individual no extrato do mentor.
type Repasse struct {
	ID        string    `json:"id"`
	Valor     float64   `json:"valor"`
	Moeda     string    `json:"moeda"`
	Status    string    `json:"status"`
	Descricao string    `json:"descricao,omitempty"`
	CriadoEm  time.Time `json:"criado_em"`
}

// EstatisticasRepasses agrega os repasses da janela consultada.
type EstatisticasRepasses struct {
	TotalRepasses      int       `json:"total_repasses"`
	RepassesPendentes  int       `json:"repasses_pendentes"`
	RepassesConcluidos int       `json:"repasses_concluidos"`
	ValorTotal         float64   `json:"valor_total"`
	ValorPendente      float64   `json:"valor_pendente"`
	ValorConcluido     float64   `json:"valor_concluido"`
	Repasses           []Repasse `json:"repasses"`
}

// SaldoService consulta saldo e repasses de uma conta conectada.
type SaldoService struct {
	clients *StripeClients
}

// NewSaldoService cria o serviço de saldo.
func NewSaldoService(clients *StripeClients) *SaldoService {
	return &SaldoService{clients: clients}
}

// ConsultarSaldo agrega o saldo pendente e disponível da conta conectada,
// convertendo de centavos para reais.
func (s *SaldoService) ConsultarSaldo(ctx context.Context, accountID string) (*Saldo, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.BalanceParams{}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	saldo, err := s.clients.Saldo.Get(params)
	if err != nil {
		return nil, converterErroStripe(err)
	}

	resultado := &Saldo{Moeda: "brl"}
	for _, valor := range saldo.Pending {
		resultado.PendenteCentavos += valor.Amount
		resultado.Moeda = string(valor.Currency)
	}
	for _, valor := range saldo.Available {
		resultado.DisponivelCentavos += valor.Amount
	}
	resultado.Pendente = float64(resultado.PendenteCentavos) / 100
	resultado.Disponivel = float64(resultado.DisponivelCentavos) / 100
	return resultado, nil
}

// ListarRepasses busca as transações de tipo payout mais recentes (janela
// fixa de 10, sem paginação) e devolve a agregação pendente vs concluído.
func (s *SaldoService) ListarRepasses(ctx context.Context, accountID string) (*EstatisticasRepasses, error) {
	transacoes, err := s.listarTransacoes(ctx, accountID, string(stripe.BalanceTransactionTypePayout))
	if err != nil {
		return nil, err
	}
	return AgregarRepasses(transacoes), nil
}

// ListarTransacoes devolve as transações recentes de qualquer tipo, na
// mesma janela fixa.
func (s *SaldoService) ListarTransacoes(ctx context.Context, accountID string) ([]*stripe.BalanceTransaction, error) {
	return s.listarTransacoes(ctx, accountID, "")
}

func (s *SaldoService) listarTransacoes(ctx context.Context, accountID, tipo string) ([]*stripe.BalanceTransaction, error) {
	if accountID == "" {
		return nil, ErrContaObrigatoria
	}

	params := &stripe.BalanceTransactionListParams{}
	params.Limit = stripe.Int64(limiteTransacoes)
	// Uma página só: sem Single o iterador seguiria o has_more e buscaria
	// as páginas seguintes, furando a janela fixa.
	params.Single = true
	if tipo != "" {
		params.Type = stripe.String(tipo)
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	var transacoes []*stripe.BalanceTransaction
	it := s.clients.Transacoes.List(params)
	for it.Next() {
		transacoes = append(transacoes, it.BalanceTransaction())
	}
	if err := it.Err(); err != nil {
		return nil, converterErroStripe(err)
	}
	return transacoes, nil
}

// AgregarRepasses reduz uma lista de transações às estatísticas de payout.
// Só transações de tipo payout entram na conta; valores vêm em centavos e
// negativos (débito da conta), então dividimos por 100 e usamos o módulo.
func AgregarRepasses(transacoes []*stripe.BalanceTransaction) *EstatisticasRepasses {
	stats := &EstatisticasRepasses{Repasses: []Repasse{}}

	for _, t := range transacoes {
		if t.Type != stripe.BalanceTransactionTypePayout {
			continue
		}

		valor := math.Abs(float64(t.Amount)) / 100
		repasse := Repasse{
			ID:        t.ID,
			Valor:     valor,
			Moeda:     string(t.Currency),
			Status:    string(t.Status),
			Descricao: t.Description,
			CriadoEm:  time.Unix(t.Created, 0),
		}
		stats.Repasses = append(stats.Repasses, repasse)

		stats.TotalRepasses++
		stats.ValorTotal += valor
		if t.Status == stripe.BalanceTransactionStatusAvailable {
			stats.RepassesConcluidos++
			stats.ValorConcluido += valor
		} else {
			stats.RepassesPendentes++
			stats.ValorPendente += valor
		}
	}
	return stats
}
