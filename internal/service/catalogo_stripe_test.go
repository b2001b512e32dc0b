package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsDesativacao(t *testing.T) {
	t.Run("desativar produto só mexe no campo active", func(t *testing.T) {
		params := paramsDesativarProduto()

		assert.NotNil(t, params.Active)
		assert.False(t, *params.Active)
		assert.Nil(t, params.Name)
		assert.Nil(t, params.Description)
	})

	t.Run("desativar preço só mexe no campo active", func(t *testing.T) {
		params := paramsDesativarPreco()

		assert.NotNil(t, params.Active)
		assert.False(t, *params.Active)
		assert.Nil(t, params.UnitAmount)
	})
}

func TestCatalogoExigeContaConectada(t *testing.T) {
	// Sem accountID nenhuma operação chega a falar com a Stripe, então o
	// serviço pode ser construído sem clients.
	s := NewCatalogoService(nil, RegistradorSlog{})
	ctx := context.Background()

	_, err := s.CriarProduto(ctx, "", DadosProduto{Nome: "Mentoria Go"})
	assert.ErrorIs(t, err, ErrContaObrigatoria)

	_, err = s.ListarProdutos(ctx, "")
	assert.ErrorIs(t, err, ErrContaObrigatoria)

	_, err = s.DesativarProduto(ctx, "", "prod_123")
	assert.ErrorIs(t, err, ErrContaObrigatoria)

	_, err = s.CriarPreco(ctx, "", DadosPreco{ProductID: "prod_123", ValorCentavos: 9900})
	assert.ErrorIs(t, err, ErrContaObrigatoria)

	_, err = s.DesativarPreco(ctx, "", "price_123")
	assert.ErrorIs(t, err, ErrContaObrigatoria)
}
