package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

func TestSepararNome(t *testing.T) {
	casos := []struct {
		nome      string
		completo  string
		primeiro  string
		sobrenome string
	}{
		{"nome e sobrenome", "Maria Silva", "Maria", "Silva"},
		{"sobrenome composto", "João da Silva Santos", "João", "da Silva Santos"},
		{"só um nome repete como sobrenome", "Madonna", "Madonna", "Madonna"},
		{"espaços extras são ignorados", "  Ana   Souza  ", "Ana", "Souza"},
		{"string vazia", "", "", ""},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			primeiro, sobrenome := separarNome(c.completo)
			assert.Equal(t, c.primeiro, primeiro)
			assert.Equal(t, c.sobrenome, sobrenome)
		})
	}
}

func TestMontarIndividuo(t *testing.T) {
	nascimento := time.Date(1990, time.May, 10, 0, 0, 0, 0, time.UTC)
	p := domain.Perfil{
		Nome:           "Maria Silva",
		Email:          "maria@email.com",
		Telefone:       "+55 11 99999-0000",
		CPF:            "123.456.789-00",
		DataNascimento: &nascimento,
		Rua:            "Av. Paulista",
		Numero:         "1000",
		Complemento:    "cj 42",
		Cidade:         "São Paulo",
		Estado:         "SP",
		CEP:            "01310-100",
	}

	individuo := montarIndividuo(p)

	assert.Equal(t, "Maria", *individuo.FirstName)
	assert.Equal(t, "Silva", *individuo.LastName)
	assert.Equal(t, "123.456.789-00", *individuo.IDNumber)
	assert.Equal(t, "Av. Paulista, 1000", *individuo.Address.Line1)
	assert.Equal(t, "BR", *individuo.Address.Country)
	assert.Equal(t, int64(10), *individuo.DOB.Day)
	assert.Equal(t, int64(5), *individuo.DOB.Month)
	assert.Equal(t, int64(1990), *individuo.DOB.Year)
}

func TestMontarIndividuoSemDataNascimento(t *testing.T) {
	individuo := montarIndividuo(domain.Perfil{Nome: "Ana Souza"})
	assert.Nil(t, individuo.DOB)
}

func TestMontarStatusConta(t *testing.T) {
	t.Run("conta liberada sem pendências", func(t *testing.T) {
		conta := &stripe.Account{
			ID:               "acct_123",
			ChargesEnabled:   true,
			PayoutsEnabled:   true,
			DetailsSubmitted: true,
			Requirements:     &stripe.AccountRequirements{CurrentlyDue: []string{}},
		}

		st := montarStatusConta(conta)

		assert.Equal(t, "acct_123", st.AccountID)
		assert.True(t, st.ChargesEnabled)
		assert.True(t, st.PayoutsEnabled)
		assert.Empty(t, st.Pendencias)
		assert.Empty(t, st.MotivoBloqueio)
	})

	t.Run("conta com pendências e documento em análise", func(t *testing.T) {
		conta := &stripe.Account{
			ID: "acct_456",
			Requirements: &stripe.AccountRequirements{
				CurrentlyDue:   []string{"individual.verification.document"},
				DisabledReason: "requirements.pending_verification",
			},
			Individual: &stripe.Person{
				Verification: &stripe.PersonVerification{Status: "pending"},
			},
		}

		st := montarStatusConta(conta)

		assert.False(t, st.ChargesEnabled)
		assert.Equal(t, []string{"individual.verification.document"}, st.Pendencias)
		assert.Equal(t, "requirements.pending_verification", st.MotivoBloqueio)
		assert.Equal(t, "pending", st.DocumentoStatus)
	})
}
