package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// PerfilRepository define a interface para a persistência de perfis.
// Usar uma interface nos permite 'mockar' o repositório em testes.
type PerfilRepository interface {
	Criar(ctx context.Context, perfil domain.Perfil) error
	BuscarPorID(ctx context.Context, id string) (*domain.Perfil, error)
	BuscarPorEmail(ctx context.Context, email string) (*domain.Perfil, error)
	Atualizar(ctx context.Context, perfil domain.Perfil) error
	AtualizarOnboarding(ctx context.Context, perfil domain.Perfil) error
	AtualizarVinculoStripe(ctx context.Context, perfil domain.Perfil) error
	Desativar(ctx context.Context, id string) error
}

type perfilPostgres struct {
	db *sql.DB
}

// NewPerfilRepository cria o repositório de perfis sobre o Postgres.
func NewPerfilRepository(db *sql.DB) PerfilRepository {
	return &perfilPostgres{db: db}
}

const colunasPerfil = `id, nome, email, telefone, papel, bio, ativo,
	cpf, data_nascimento,
	cep, rua, numero, complemento, cidade, estado,
	banco, agencia, conta_numero, conta_digito,
	stripe_account_id, stripe_onboarding_status, stripe_charges_enabled,
	stripe_payouts_enabled, stripe_requirements, documento_status,
	criado_em, atualizado_em`

func (r *perfilPostgres) Criar(ctx context.Context, p domain.Perfil) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO perfis (id, nome, email, telefone, papel, bio, ativo, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, now(), now())`,
		p.ID, p.Nome, p.Email, p.Telefone, p.Papel, p.Bio)
	return err
}

func (r *perfilPostgres) BuscarPorID(ctx context.Context, id string) (*domain.Perfil, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+colunasPerfil+` FROM perfis WHERE id = $1`, id)
	return escanearPerfil(row)
}

func (r *perfilPostgres) BuscarPorEmail(ctx context.Context, email string) (*domain.Perfil, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+colunasPerfil+` FROM perfis WHERE email = $1`, email)
	return escanearPerfil(row)
}

func (r *perfilPostgres) Atualizar(ctx context.Context, p domain.Perfil) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE perfis
		SET nome = $2, telefone = $3, bio = $4, atualizado_em = now()
		WHERE id = $1`,
		p.ID, p.Nome, p.Telefone, p.Bio)
	return err
}

// AtualizarOnboarding persiste os campos coletados pelo assistente de
// onboarding (identidade, endereço e dados bancários) junto com o status.
func (r *perfilPostgres) AtualizarOnboarding(ctx context.Context, p domain.Perfil) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE perfis
		SET cpf = $2, data_nascimento = $3, telefone = $4,
		    cep = $5, rua = $6, numero = $7, complemento = $8, cidade = $9, estado = $10,
		    banco = $11, agencia = $12, conta_numero = $13, conta_digito = $14,
		    stripe_onboarding_status = $15, atualizado_em = now()
		WHERE id = $1`,
		p.ID, p.CPF, dataOuNulo(p.DataNascimento), p.Telefone,
		p.CEP, p.Rua, p.Numero, p.Complemento, p.Cidade, p.Estado,
		p.Banco, p.Agencia, p.ContaNumero, p.ContaDigito,
		p.StripeOnboardingStatus)
	return err
}

// AtualizarVinculoStripe grava o cache local do estado da conta conectada.
// A fonte da verdade continua sendo a Stripe.
func (r *perfilPostgres) AtualizarVinculoStripe(ctx context.Context, p domain.Perfil) error {
	reqs, err := json.Marshal(p.StripeRequirements)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE perfis
		SET stripe_account_id = $2, stripe_onboarding_status = $3,
		    stripe_charges_enabled = $4, stripe_payouts_enabled = $5,
		    stripe_requirements = $6, documento_status = $7, atualizado_em = now()
		WHERE id = $1`,
		p.ID, p.StripeAccountID, p.StripeOnboardingStatus,
		p.StripeChargesEnabled, p.StripePayoutsEnabled,
		reqs, p.DocumentoStatus)
	return err
}

// Desativar faz o soft-delete do perfil. Nunca removemos a linha.
func (r *perfilPostgres) Desativar(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE perfis SET ativo = FALSE, atualizado_em = now() WHERE id = $1`, id)
	return err
}

func escanearPerfil(row *sql.Row) (*domain.Perfil, error) {
	var p domain.Perfil
	var nascimento sql.NullTime
	var reqs []byte

	err := row.Scan(
		&p.ID, &p.Nome, &p.Email, &p.Telefone, &p.Papel, &p.Bio, &p.Ativo,
		&p.CPF, &nascimento,
		&p.CEP, &p.Rua, &p.Numero, &p.Complemento, &p.Cidade, &p.Estado,
		&p.Banco, &p.Agencia, &p.ContaNumero, &p.ContaDigito,
		&p.StripeAccountID, &p.StripeOnboardingStatus, &p.StripeChargesEnabled,
		&p.StripePayoutsEnabled, &reqs, &p.DocumentoStatus,
		&p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			// Retorna nil, nil quando o perfil não existe; quem decide o
			// erro de negócio é a camada de serviço.
			return nil, nil
		}
		return nil, err
	}

	if nascimento.Valid {
		t := nascimento.Time
		p.DataNascimento = &t
	}
	if len(reqs) > 0 {
		if err := json.Unmarshal(reqs, &p.StripeRequirements); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func dataOuNulo(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}
