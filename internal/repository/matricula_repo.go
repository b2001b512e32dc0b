package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// MatriculaRepository define a interface para a persistência de matrículas.
type MatriculaRepository interface {
	Criar(ctx context.Context, matricula domain.Matricula) error
	BuscarPorID(ctx context.Context, id string) (*domain.Matricula, error)
	BuscarPorCursoEMentorado(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error)
	ListarPorMentorado(ctx context.Context, mentoradoID string) ([]domain.Matricula, error)
	AtualizarStatus(ctx context.Context, id string, status domain.StatusMatricula) error
	AtualizarProgresso(ctx context.Context, id string, progresso int) error
}

type matriculaPostgres struct {
	db *sql.DB
}

// NewMatriculaRepository cria o repositório de matrículas sobre o Postgres.
func NewMatriculaRepository(db *sql.DB) MatriculaRepository {
	return &matriculaPostgres{db: db}
}

const colunasMatricula = `id, curso_id, mentorado_id, status, progresso, criado_em, atualizado_em`

func (r *matriculaPostgres) Criar(ctx context.Context, m domain.Matricula) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO matriculas (id, curso_id, mentorado_id, status, progresso, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, 0, now(), now())`,
		m.ID, m.CursoID, m.MentoradoID, m.Status)
	return err
}

func (r *matriculaPostgres) BuscarPorID(ctx context.Context, id string) (*domain.Matricula, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+colunasMatricula+` FROM matriculas WHERE id = $1`, id)
	return escanearMatricula(row)
}

func (r *matriculaPostgres) BuscarPorCursoEMentorado(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+colunasMatricula+` FROM matriculas WHERE curso_id = $1 AND mentorado_id = $2`,
		cursoID, mentoradoID)
	return escanearMatricula(row)
}

func (r *matriculaPostgres) ListarPorMentorado(ctx context.Context, mentoradoID string) ([]domain.Matricula, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+colunasMatricula+` FROM matriculas WHERE mentorado_id = $1 ORDER BY criado_em DESC`,
		mentoradoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matriculas []domain.Matricula
	for rows.Next() {
		var m domain.Matricula
		if err := rows.Scan(&m.ID, &m.CursoID, &m.MentoradoID, &m.Status,
			&m.Progresso, &m.CriadoEm, &m.AtualizadoEm); err != nil {
			return nil, err
		}
		matriculas = append(matriculas, m)
	}
	return matriculas, rows.Err()
}

func (r *matriculaPostgres) AtualizarStatus(ctx context.Context, id string, status domain.StatusMatricula) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE matriculas SET status = $2, atualizado_em = now() WHERE id = $1`,
		id, status)
	return err
}

func (r *matriculaPostgres) AtualizarProgresso(ctx context.Context, id string, progresso int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE matriculas SET progresso = $2, atualizado_em = now() WHERE id = $1`,
		id, progresso)
	return err
}

func escanearMatricula(row *sql.Row) (*domain.Matricula, error) {
	var m domain.Matricula
	err := row.Scan(&m.ID, &m.CursoID, &m.MentoradoID, &m.Status,
		&m.Progresso, &m.CriadoEm, &m.AtualizadoEm)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}
