package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/repository"
)

// FormOnboarding é o estado do assistente de cadastro de recebimentos do
// mentor: cinco etapas lineares (pessoal → endereço → banco → documentos
// → termos). Cada etapa tem um predicado puro de validação; o avanço só é
// liberado quando o predicado da etapa atual é verdadeiro.
type FormOnboarding struct {
	// Etapa 1 — dados pessoais
	Nome           string `json:"nome"`
	CPF            string `json:"cpf"`
	DataNascimento string `json:"data_nascimento"` // formato 2006-01-02
	Telefone       string `json:"telefone"`

	// Etapa 2 — endereço
	CEP         string `json:"cep"`
	Rua         string `json:"rua"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`

	// Etapa 3 — dados bancários
	Banco       string `json:"banco"`
	Agencia     string `json:"agencia"`
	ContaNumero string `json:"conta_numero"`
	ContaDigito string `json:"conta_digito"`

	// Etapa 4 — documentos. Os arquivos já foram enviados à parte
	// (DocumentoService); aqui ficam só os IDs retornados pela Stripe.
	// Quando DocumentosExigidos é falso (curto-circuito da etapa 4), os
	// IDs são ignorados.
	DocumentosExigidos bool   `json:"documentos_exigidos"`
	DocumentoFrenteID  string `json:"documento_frente_id"`
	DocumentoVersoID   string `json:"documento_verso_id"`

	// Etapa 5 — termos
	AceitouTermos bool `json:"aceitou_termos"`
}

// TotalEtapas do assistente.
const TotalEtapas = 5

// ErroEtapaInvalida indica que o predicado de uma etapa reprovou o envio.
type ErroEtapaInvalida struct {
	Etapa int
}

func (e *ErroEtapaInvalida) Error() string {
	return fmt.Sprintf("dados obrigatórios ausentes na etapa %d", e.Etapa)
}

// ValidarEtapa é o predicado puro de cada etapa: verdadeiro sse todos os
// campos obrigatórios da etapa estão preenchidos. Etapas fora de 1..5
// retornam falso.
func ValidarEtapa(etapa int, f FormOnboarding) bool {
	switch etapa {
	case 1:
		return f.Nome != "" && f.CPF != "" && f.DataNascimento != "" && f.Telefone != ""
	case 2:
		// Complemento é opcional.
		return f.CEP != "" && f.Rua != "" && f.Numero != "" && f.Cidade != "" && f.Estado != ""
	case 3:
		return f.Banco != "" && f.Agencia != "" && f.ContaNumero != "" && f.ContaDigito != ""
	case 4:
		// Curto-circuito: documentos dispensados quando a verificação já
		// aconteceu (ver DocumentosNecessarios).
		if !f.DocumentosExigidos {
			return true
		}
		return f.DocumentoFrenteID != "" && f.DocumentoVersoID != ""
	case 5:
		return f.AceitouTermos
	}
	return false
}

// DocumentosNecessarios decide o curto-circuito da etapa 4: envio de
// documentos é dispensado quando o perfil já está com documentos
// verificados, ou quando a conta já cobra e recebe sem pendências.
func DocumentosNecessarios(p domain.Perfil, status *StatusConta) bool {
	if p.DocumentoVerificado() {
		return false
	}
	if status != nil && status.ChargesEnabled && status.PayoutsEnabled && len(status.Pendencias) == 0 {
		return false
	}
	return true
}

// OnboardingService coordena a submissão final do assistente.
type OnboardingService struct {
	perfis     repository.PerfilRepository
	contas     *ContaStripeService
	documentos *DocumentoService
}

// NewOnboardingService cria o serviço de onboarding.
func NewOnboardingService(perfis repository.PerfilRepository, contas *ContaStripeService, documentos *DocumentoService) *OnboardingService {
	return &OnboardingService{perfis: perfis, contas: contas, documentos: documentos}
}

// Finalizar executa a submissão da etapa 5, na ordem fixa: persiste os
// campos do formulário no perfil, cria/atualiza a conta conectada e, se
// exigido, associa os documentos. Não há rollback entre os passos: uma
// falha tardia deixa os passos anteriores gravados e o status do
// onboarding registra até onde chegamos, para o assistente retomar dali.
func (s *OnboardingService) Finalizar(ctx context.Context, perfilID, ipAceite string, form FormOnboarding) (*domain.Perfil, error) {
	for etapa := 1; etapa <= TotalEtapas; etapa++ {
		if !ValidarEtapa(etapa, form) {
			return nil, &ErroEtapaInvalida{Etapa: etapa}
		}
	}

	perfil, err := s.perfis.BuscarPorID(ctx, perfilID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, ErrPerfilNaoEncontrado
	}

	// Passo 1 — persistir os campos coletados.
	aplicarFormulario(perfil, form)
	perfil.StripeOnboardingStatus = domain.OnboardingEmAnalise
	if err := s.perfis.AtualizarOnboarding(ctx, *perfil); err != nil {
		return nil, err
	}

	// Passo 2 — conta conectada. Falha aqui não desfaz o passo 1; o
	// status "erro" fica registrado para o reenvio manual.
	conta, err := s.sincronizarConta(ctx, perfil, ipAceite)
	if err != nil {
		return nil, err
	}

	// Passo 3 — associação dos documentos, quando exigidos.
	if form.DocumentosExigidos {
		if err := s.documentos.AssociarDocumento(ctx, conta.ID, form.DocumentoFrenteID, SlotFrente); err != nil {
			return perfil, err
		}
		if err := s.documentos.AssociarDocumento(ctx, conta.ID, form.DocumentoVersoID, SlotVerso); err != nil {
			return perfil, err
		}
		perfil.DocumentoStatus = domain.OnboardingEmAnalise
		if err := s.perfis.AtualizarVinculoStripe(ctx, *perfil); err != nil {
			return perfil, err
		}
	}

	slog.Info("Onboarding finalizado", "perfil", perfil.ID, "account", perfil.StripeAccountID,
		"status", perfil.StripeOnboardingStatus)
	return perfil, nil
}

// CriarConta cria ou atualiza a conta conectada com os dados já
// persistidos no perfil, sem passar pelo assistente completo. É a rota
// de reenvio manual depois de um onboarding que terminou com erro.
func (s *OnboardingService) CriarConta(ctx context.Context, perfilID, ipAceite string) (*domain.Perfil, error) {
	perfil, err := s.perfis.BuscarPorID(ctx, perfilID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, ErrPerfilNaoEncontrado
	}

	if _, err := s.sincronizarConta(ctx, perfil, ipAceite); err != nil {
		return nil, err
	}
	return perfil, nil
}

// sincronizarConta chama a Stripe e grava o vínculo resultante no perfil.
// Em caso de falha o status "erro" fica persistido, para o reenvio manual.
func (s *OnboardingService) sincronizarConta(ctx context.Context, perfil *domain.Perfil, ipAceite string) (*stripe.Account, error) {
	conta, err := s.contas.CriarOuAtualizarConta(ctx, *perfil, ipAceite)
	if err != nil {
		perfil.StripeOnboardingStatus = domain.OnboardingComErro
		if errPersist := s.perfis.AtualizarVinculoStripe(ctx, *perfil); errPersist != nil {
			slog.Error("Falha ao registrar erro de onboarding", "perfil", perfil.ID, "error", errPersist)
		}
		return nil, err
	}

	perfil.StripeAccountID = conta.ID
	perfil.StripeChargesEnabled = conta.ChargesEnabled
	perfil.StripePayoutsEnabled = conta.PayoutsEnabled
	if conta.Requirements != nil {
		perfil.StripeRequirements = conta.Requirements.CurrentlyDue
	}
	perfil.StripeOnboardingStatus = domain.OnboardingEmAnalise
	if perfil.ContaLiberada() {
		perfil.StripeOnboardingStatus = domain.OnboardingConcluido
	}
	if err := s.perfis.AtualizarVinculoStripe(ctx, *perfil); err != nil {
		return nil, err
	}
	return conta, nil
}

func aplicarFormulario(p *domain.Perfil, f FormOnboarding) {
	p.Nome = f.Nome
	p.CPF = f.CPF
	p.Telefone = f.Telefone
	if t, err := time.Parse("2006-01-02", f.DataNascimento); err == nil {
		p.DataNascimento = &t
	}
	p.CEP = f.CEP
	p.Rua = f.Rua
	p.Numero = f.Numero
	p.Complemento = f.Complemento
	p.Cidade = f.Cidade
	p.Estado = f.Estado
	p.Banco = f.Banco
	p.Agencia = f.Agencia
	p.ContaNumero = f.ContaNumero
	p.ContaDigito = f.ContaDigito
}
