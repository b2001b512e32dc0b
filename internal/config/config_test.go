package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func prepararObrigatorias(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/mentoria")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("SUPABASE_JWT_SECRET", "segredo-de-teste")
}

func TestCarregar(t *testing.T) {
	t.Run("sem REDIS_ADDR o endereço fica vazio e o cache desliga", func(t *testing.T) {
		prepararObrigatorias(t)
		t.Setenv("REDIS_ADDR", "")

		cfg, err := Carregar()

		assert.NoError(t, err)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("variável obrigatória ausente derruba a subida", func(t *testing.T) {
		prepararObrigatorias(t)
		t.Setenv("STRIPE_SECRET_KEY", "")

		_, err := Carregar()
		assert.Error(t, err)
	})

	t.Run("Producao reflete APP_ENV", func(t *testing.T) {
		prepararObrigatorias(t)
		t.Setenv("APP_ENV", "production")

		cfg, err := Carregar()

		assert.NoError(t, err)
		assert.True(t, cfg.Producao())
	})
}
