package domain

import "time"

// Papel identifica o tipo de usuário da plataforma.
// Resolvemos o papel uma única vez no início da sessão (via claim do JWT)
// em vez de espalhar comparações de string pelo código.
type Papel string

const (
	PapelMentor    Papel = "mentor"
	PapelMentorado Papel = "mentorado"
	PapelAdmin     Papel = "admin"
)

// PapelValido informa se a string corresponde a um papel conhecido.
func PapelValido(p string) bool {
	switch Papel(p) {
	case PapelMentor, PapelMentorado, PapelAdmin:
		return true
	}
	return false
}

// Status possíveis do onboarding de um mentor na Stripe.
const (
	OnboardingPendente  = "pendente"
	OnboardingEmAnalise = "em_analise"
	OnboardingConcluido = "concluido"
	OnboardingComErro   = "erro"
)

// Perfil representa um usuário da plataforma (mentor, mentorado ou admin).
// Um perfil nunca é removido fisicamente; a desativação acontece via Ativo.
type Perfil struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Papel    Papel  `json:"papel"`
	Bio      string `json:"bio,omitempty"`
	Ativo    bool   `json:"ativo"`

	// --- DADOS DE IDENTIDADE (KYC) ---

	CPF            string     `json:"cpf,omitempty"`
	DataNascimento *time.Time `json:"data_nascimento,omitempty"`

	// --- ENDEREÇO ---

	CEP         string `json:"cep,omitempty"`
	Rua         string `json:"rua,omitempty"`
	Numero      string `json:"numero,omitempty"`
	Complemento string `json:"complemento,omitempty"`
	Cidade      string `json:"cidade,omitempty"`
	Estado      string `json:"estado,omitempty"`

	// --- DADOS BANCÁRIOS ---
	// Guardamos apenas o necessário para montar o external_account da Stripe.

	Banco       string `json:"banco,omitempty"`
	Agencia     string `json:"agencia,omitempty"`
	ContaNumero string `json:"conta_numero,omitempty"`
	ContaDigito string `json:"conta_digito,omitempty"`

	// --- VÍNCULO COM A STRIPE ---
	// A conta conectada é quem recebe os repasses. Os campos abaixo são
	// apenas um cache do estado na Stripe; a fonte da verdade é a Stripe.

	StripeAccountID        string   `json:"stripe_account_id,omitempty"`
	StripeOnboardingStatus string   `json:"stripe_onboarding_status"`
	StripeChargesEnabled   bool     `json:"stripe_charges_enabled"`
	StripePayoutsEnabled   bool     `json:"stripe_payouts_enabled"`
	StripeRequirements     []string `json:"stripe_requirements,omitempty"`

	// Status da verificação de documentos: "pendente", "em_analise" ou "verified".
	DocumentoStatus string `json:"documento_status"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// DocumentoVerificado indica que a Stripe já aceitou os documentos de
// identidade deste perfil e novos envios seriam rejeitados.
func (p Perfil) DocumentoVerificado() bool {
	return p.DocumentoStatus == "verified"
}

// ContaLiberada indica que a conta conectada já pode cobrar e receber
// repasses sem nenhuma pendência em aberto.
func (p Perfil) ContaLiberada() bool {
	return p.StripeChargesEnabled && p.StripePayoutsEnabled && len(p.StripeRequirements) == 0
}
