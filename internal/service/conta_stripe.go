package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// Erros de negócio do vínculo com a conta conectada.
var (
	ErrPerfilNaoEncontrado = errors.New("perfil não encontrado")
	ErrPerfilSemConta      = errors.New("perfil ainda não possui conta conectada na Stripe")
)

// StatusConta é o resumo do estado de uma conta conectada que o dashboard
// do mentor consome. É um cache de leitura; a fonte da verdade é a Stripe.
type StatusConta struct {
	AccountID        string   `json:"account_id"`
	ChargesEnabled   bool     `json:"charges_enabled"`
	PayoutsEnabled   bool     `json:"payouts_enabled"`
	DetailsSubmitted bool     `json:"details_submitted"`
	Pendencias       []string `json:"requirements_currently_due"`
	MotivoBloqueio   string   `json:"disabled_reason,omitempty"`
	DocumentoStatus  string   `json:"documento_status,omitempty"`
}

// CacheStatus guarda StatusConta por um TTL curto (o front-end consulta o
// status em polling de 60s; sem o cache, cada poll viraria uma chamada à
// Stripe). Um cache indisponível nunca é erro: apenas seguimos sem ele.
type CacheStatus interface {
	Buscar(ctx context.Context, accountID string) (*StatusConta, bool)
	Guardar(ctx context.Context, accountID string, status StatusConta)
}

// ContaStripeService cria e atualiza a conta conectada de um mentor
// (individual, BR) e consulta o seu estado de verificação.
type ContaStripeService struct {
	clients *StripeClients
	cache   CacheStatus
}

// NewContaStripeService cria o serviço de contas conectadas.
func NewContaStripeService(clients *StripeClients, cache CacheStatus) *ContaStripeService {
	return &ContaStripeService{clients: clients, cache: cache}
}

// CriarOuAtualizarConta cria a conta conectada quando o perfil ainda não
// tem uma, ou atualiza a existente. Não há retry local: um erro da Stripe
// volta estruturado (type/code/message) para o chamador reenviar à mão.
func (s *ContaStripeService) CriarOuAtualizarConta(ctx context.Context, p domain.Perfil, ipAceite string) (*stripe.Account, error) {
	params := &stripe.AccountParams{
		Email:        stripe.String(p.Email),
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Individual:   montarIndividuo(p),
		ExternalAccount: &stripe.AccountExternalAccountParams{
			Country:           stripe.String("BR"),
			Currency:          stripe.String("brl"),
			AccountHolderName: stripe.String(p.Nome),
			AccountHolderType: stripe.String("individual"),
			RoutingNumber:     stripe.String(p.Banco + "-" + p.Agencia),
			AccountNumber:     stripe.String(p.ContaNumero + "-" + p.ContaDigito),
		},
		TOSAcceptance: &stripe.AccountTOSAcceptanceParams{
			Date: stripe.Int64(time.Now().Unix()),
			IP:   stripe.String(ipAceite),
		},
	}
	params.Context = ctx

	if p.StripeAccountID == "" {
		// Type e Country só podem ser enviados na criação.
		params.Type = stripe.String(string(stripe.AccountTypeCustom))
		params.Country = stripe.String("BR")
		params.Capabilities = &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		}

		conta, err := s.clients.Contas.New(params)
		if err != nil {
			slog.Error("Falha ao criar conta conectada", "perfil", p.ID, "error", err)
			return nil, converterErroStripe(err)
		}
		slog.Info("Conta conectada criada", "perfil", p.ID, "account", conta.ID)
		return conta, nil
	}

	conta, err := s.clients.Contas.Update(p.StripeAccountID, params)
	if err != nil {
		slog.Error("Falha ao atualizar conta conectada", "perfil", p.ID, "account", p.StripeAccountID, "error", err)
		return nil, converterErroStripe(err)
	}
	slog.Info("Conta conectada atualizada", "perfil", p.ID, "account", conta.ID)
	return conta, nil
}

// ConsultarStatus busca o estado da conta conectada, com cache de 60s.
func (s *ContaStripeService) ConsultarStatus(ctx context.Context, accountID string) (*StatusConta, error) {
	if st, ok := s.cache.Buscar(ctx, accountID); ok {
		return st, nil
	}

	params := &stripe.AccountParams{}
	params.Context = ctx
	conta, err := s.clients.Contas.GetByID(accountID, params)
	if err != nil {
		return nil, converterErroStripe(err)
	}

	st := montarStatusConta(conta)
	s.cache.Guardar(ctx, accountID, *st)
	return st, nil
}

func montarStatusConta(conta *stripe.Account) *StatusConta {
	st := &StatusConta{
		AccountID:        conta.ID,
		ChargesEnabled:   conta.ChargesEnabled,
		PayoutsEnabled:   conta.PayoutsEnabled,
		DetailsSubmitted: conta.DetailsSubmitted,
	}
	if conta.Requirements != nil {
		st.Pendencias = conta.Requirements.CurrentlyDue
		st.MotivoBloqueio = string(conta.Requirements.DisabledReason)
	}
	if conta.Individual != nil && conta.Individual.Verification != nil {
		st.DocumentoStatus = string(conta.Individual.Verification.Status)
	}
	return st
}

func montarIndividuo(p domain.Perfil) *stripe.PersonParams {
	primeiro, resto := separarNome(p.Nome)
	individuo := &stripe.PersonParams{
		FirstName: stripe.String(primeiro),
		LastName:  stripe.String(resto),
		Email:     stripe.String(p.Email),
		Phone:     stripe.String(p.Telefone),
		IDNumber:  stripe.String(p.CPF),
		Address: &stripe.AddressParams{
			Line1:      stripe.String(p.Rua + ", " + p.Numero),
			Line2:      stripe.String(p.Complemento),
			City:       stripe.String(p.Cidade),
			State:      stripe.String(p.Estado),
			PostalCode: stripe.String(p.CEP),
			Country:    stripe.String("BR"),
		},
	}
	if p.DataNascimento != nil {
		individuo.DOB = &stripe.PersonDOBParams{
			Day:   stripe.Int64(int64(p.DataNascimento.Day())),
			Month: stripe.Int64(int64(p.DataNascimento.Month())),
			Year:  stripe.Int64(int64(p.DataNascimento.Year())),
		}
	}
	return individuo
}

// separarNome divide o nome completo em primeiro nome e sobrenome, como a
// Stripe espera. Nome sem sobrenome repete o primeiro nome.
func separarNome(completo string) (string, string) {
	partes := strings.Fields(completo)
	if len(partes) == 0 {
		return "", ""
	}
	if len(partes) == 1 {
		return partes[0], partes[0]
	}
	return partes[0], strings.Join(partes[1:], " ")
}
