package service

import (
	"log/slog"
	"time"
)

// RegistroRede é um evento de diagnóstico das chamadas à Stripe. Serve só
// para inspeção interativa (o front-end tem um inspetor de requisições que
// consome a mesma estrutura); não participa da correção de nada.
type RegistroRede struct {
	Origem    string    `json:"origem"`
	Operacao  string    `json:"operacao"`
	AccountID string    `json:"account_id,omitempty"`
	Recurso   string    `json:"recurso,omitempty"`
	Sucesso   bool      `json:"sucesso"`
	Erro      string    `json:"erro,omitempty"`
	Momento   time.Time `json:"momento"`
}

// RegistradorRede recebe eventos de diagnóstico. A implementação padrão
// apenas loga; o endpoint /api/stripe-network-logs usa o mesmo registrador
// para eventos vindos do front-end.
type RegistradorRede interface {
	Registrar(evento RegistroRede)
}

// RegistradorSlog registra os eventos no logger estruturado do processo.
type RegistradorSlog struct{}

func (RegistradorSlog) Registrar(e RegistroRede) {
	slog.Info("stripe-network-log",
		"origem", e.Origem,
		"operacao", e.Operacao,
		"account", e.AccountID,
		"recurso", e.Recurso,
		"sucesso", e.Sucesso,
		"erro", e.Erro,
	)
}
