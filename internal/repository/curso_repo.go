package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// CursoRepository define a interface para a persistência de cursos,
// módulos e conteúdos.
type CursoRepository interface {
	Criar(ctx context.Context, curso domain.Curso) error
	BuscarPorID(ctx context.Context, id string) (*domain.Curso, error)
	ListarPorMentor(ctx context.Context, mentorID string) ([]domain.Curso, error)
	Atualizar(ctx context.Context, curso domain.Curso) error
	VincularStripe(ctx context.Context, cursoID, productID, priceID string) error
	Publicar(ctx context.Context, cursoID string, publicado bool) error

	CriarModulo(ctx context.Context, modulo domain.Modulo) error
	ListarModulos(ctx context.Context, cursoID string) ([]domain.Modulo, error)
	CriarConteudo(ctx context.Context, conteudo domain.Conteudo) error
	ListarConteudos(ctx context.Context, moduloID string) ([]domain.Conteudo, error)
	ContarConteudos(ctx context.Context, cursoID string) (int, error)
}

type cursoPostgres struct {
	db *sql.DB
}

// NewCursoRepository cria o repositório de cursos sobre o Postgres.
func NewCursoRepository(db *sql.DB) CursoRepository {
	return &cursoPostgres{db: db}
}

const colunasCurso = `id, mentor_id, titulo, descricao, preco_centavos, moeda,
	publicado, stripe_product_id, stripe_price_id, criado_em, atualizado_em`

func (r *cursoPostgres) Criar(ctx context.Context, c domain.Curso) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cursos (id, mentor_id, titulo, descricao, preco_centavos, moeda, publicado, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, now(), now())`,
		c.ID, c.MentorID, c.Titulo, c.Descricao, c.PrecoCentavos, c.Moeda)
	return err
}

func (r *cursoPostgres) BuscarPorID(ctx context.Context, id string) (*domain.Curso, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+colunasCurso+` FROM cursos WHERE id = $1`, id)

	var c domain.Curso
	err := row.Scan(&c.ID, &c.MentorID, &c.Titulo, &c.Descricao, &c.PrecoCentavos,
		&c.Moeda, &c.Publicado, &c.StripeProductID, &c.StripePriceID,
		&c.CriadoEm, &c.AtualizadoEm)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *cursoPostgres) ListarPorMentor(ctx context.Context, mentorID string) ([]domain.Curso, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+colunasCurso+` FROM cursos WHERE mentor_id = $1 ORDER BY criado_em DESC`, mentorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cursos []domain.Curso
	for rows.Next() {
		var c domain.Curso
		if err := rows.Scan(&c.ID, &c.MentorID, &c.Titulo, &c.Descricao, &c.PrecoCentavos,
			&c.Moeda, &c.Publicado, &c.StripeProductID, &c.StripePriceID,
			&c.CriadoEm, &c.AtualizadoEm); err != nil {
			return nil, err
		}
		cursos = append(cursos, c)
	}
	return cursos, rows.Err()
}

func (r *cursoPostgres) Atualizar(ctx context.Context, c domain.Curso) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cursos
		SET titulo = $2, descricao = $3, preco_centavos = $4, moeda = $5, atualizado_em = now()
		WHERE id = $1`,
		c.ID, c.Titulo, c.Descricao, c.PrecoCentavos, c.Moeda)
	return err
}

func (r *cursoPostgres) VincularStripe(ctx context.Context, cursoID, productID, priceID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cursos
		SET stripe_product_id = $2, stripe_price_id = $3, atualizado_em = now()
		WHERE id = $1`,
		cursoID, productID, priceID)
	return err
}

func (r *cursoPostgres) Publicar(ctx context.Context, cursoID string, publicado bool) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cursos SET publicado = $2, atualizado_em = now() WHERE id = $1`,
		cursoID, publicado)
	return err
}

// --- MÓDULOS E CONTEÚDOS ---

func (r *cursoPostgres) CriarModulo(ctx context.Context, m domain.Modulo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO modulos (id, curso_id, titulo, ordem) VALUES ($1, $2, $3, $4)`,
		m.ID, m.CursoID, m.Titulo, m.Ordem)
	return err
}

func (r *cursoPostgres) ListarModulos(ctx context.Context, cursoID string) ([]domain.Modulo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, curso_id, titulo, ordem FROM modulos
		WHERE curso_id = $1 ORDER BY ordem`, cursoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var modulos []domain.Modulo
	for rows.Next() {
		var m domain.Modulo
		if err := rows.Scan(&m.ID, &m.CursoID, &m.Titulo, &m.Ordem); err != nil {
			return nil, err
		}
		modulos = append(modulos, m)
	}
	return modulos, rows.Err()
}

func (r *cursoPostgres) CriarConteudo(ctx context.Context, c domain.Conteudo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conteudos (id, modulo_id, titulo, tipo, ordem, html_content, video_url, pdf_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.ModuloID, c.Titulo, c.Tipo, c.Ordem, c.HTMLContent, c.VideoURL, c.PDFURL)
	return err
}

func (r *cursoPostgres) ListarConteudos(ctx context.Context, moduloID string) ([]domain.Conteudo, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, modulo_id, titulo, tipo, ordem, html_content, video_url, pdf_url
		FROM conteudos WHERE modulo_id = $1 ORDER BY ordem`, moduloID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conteudos []domain.Conteudo
	for rows.Next() {
		var c domain.Conteudo
		if err := rows.Scan(&c.ID, &c.ModuloID, &c.Titulo, &c.Tipo, &c.Ordem,
			&c.HTMLContent, &c.VideoURL, &c.PDFURL); err != nil {
			return nil, err
		}
		conteudos = append(conteudos, c)
	}
	return conteudos, rows.Err()
}

// ContarConteudos conta todos os conteúdos de um curso, em todos os
// módulos. Usado para calcular o percentual de progresso da matrícula.
func (r *cursoPostgres) ContarConteudos(ctx context.Context, cursoID string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM conteudos c
		JOIN modulos m ON m.id = c.modulo_id
		WHERE m.curso_id = $1`, cursoID).Scan(&total)
	return total, err
}
