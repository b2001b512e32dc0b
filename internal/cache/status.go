// Package cache guarda em Redis o status das contas conectadas, com TTL
// curto. O front-end consulta o status em polling de 60s; o cache evita
// que cada poll vire uma chamada à Stripe.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/willjrcristo/mentoria-api/internal/service"
)

// StatusConta implementa service.CacheStatus sobre o Redis. Qualquer erro
// do Redis é tratado como cache miss: a indisponibilidade do cache nunca
// derruba uma consulta.
type StatusConta struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStatusConta cria o cache com o TTL informado.
func NewStatusConta(rdb *redis.Client, ttl time.Duration) *StatusConta {
	return &StatusConta{rdb: rdb, ttl: ttl}
}

func chave(accountID string) string {
	return "stripe:status:" + accountID
}

func (c *StatusConta) Buscar(ctx context.Context, accountID string) (*service.StatusConta, bool) {
	payload, err := c.rdb.Get(ctx, chave(accountID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Cache de status indisponível", "error", err)
		}
		return nil, false
	}

	var st service.StatusConta
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, false
	}
	return &st, true
}

func (c *StatusConta) Guardar(ctx context.Context, accountID string, st service.StatusConta) {
	payload, err := json.Marshal(st)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, chave(accountID), payload, c.ttl).Err(); err != nil {
		slog.Warn("Falha ao gravar no cache de status", "error", err)
	}
}

// Desligado é o cache nulo, usado quando o Redis não está configurado
// (ambiente de desenvolvimento sem Redis). Todo Buscar é um miss.
type Desligado struct{}

func (Desligado) Buscar(context.Context, string) (*service.StatusConta, bool) { return nil, false }
func (Desligado) Guardar(context.Context, string, service.StatusConta)        {}
