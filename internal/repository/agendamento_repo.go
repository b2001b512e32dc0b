package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// AgendamentoRepository define a interface para a persistência de
// agendamentos de mentoria.
type AgendamentoRepository interface {
	Criar(ctx context.Context, a domain.Agendamento) error
	BuscarPorID(ctx context.Context, id string) (*domain.Agendamento, error)
	AtualizarStatus(ctx context.Context, id string, status domain.StatusAgendamento) error
}

type agendamentoPostgres struct {
	db *sql.DB
}

// NewAgendamentoRepository cria o repositório de agendamentos sobre o Postgres.
func NewAgendamentoRepository(db *sql.DB) AgendamentoRepository {
	return &agendamentoPostgres{db: db}
}

func (r *agendamentoPostgres) Criar(ctx context.Context, a domain.Agendamento) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agendamentos (id, mentor_nome, mentor_email, mentorado_nome, mentorado_email, data, hora, status, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())`,
		a.ID, a.MentorNome, a.MentorEmail, a.MentoradoNome, a.MentoradoEmail,
		a.Data, a.Hora, a.Status)
	return err
}

func (r *agendamentoPostgres) BuscarPorID(ctx context.Context, id string) (*domain.Agendamento, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, mentor_nome, mentor_email, mentorado_nome, mentorado_email, data, hora, status, criado_em
		FROM agendamentos WHERE id = $1`, id)

	var a domain.Agendamento
	err := row.Scan(&a.ID, &a.MentorNome, &a.MentorEmail, &a.MentoradoNome,
		&a.MentoradoEmail, &a.Data, &a.Hora, &a.Status, &a.CriadoEm)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *agendamentoPostgres) AtualizarStatus(ctx context.Context, id string, status domain.StatusAgendamento) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE agendamentos SET status = $2 WHERE id = $1`, id, status)
	return err
}
