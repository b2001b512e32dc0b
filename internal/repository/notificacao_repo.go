package repository

import (
	"context"
	"database/sql"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// NotificacaoRepository define a interface para notificações e para a
// relação de seguidores de um mentor.
type NotificacaoRepository interface {
	Criar(ctx context.Context, n domain.Notificacao) error
	ListarPorDestinatario(ctx context.Context, destinatarioID string) ([]domain.Notificacao, error)
	MarcarComoLida(ctx context.Context, id, destinatarioID string) error
	MarcarTodasComoLidas(ctx context.Context, destinatarioID string) error
	ExcluirTodas(ctx context.Context, destinatarioID string) error

	Seguir(ctx context.Context, mentorID, seguidorID string) error
	DeixarDeSeguir(ctx context.Context, mentorID, seguidorID string) error
	ContarSeguidores(ctx context.Context, mentorID string) (int, error)
}

type notificacaoPostgres struct {
	db *sql.DB
}

// NewNotificacaoRepository cria o repositório de notificações sobre o Postgres.
func NewNotificacaoRepository(db *sql.DB) NotificacaoRepository {
	return &notificacaoPostgres{db: db}
}

func (r *notificacaoPostgres) Criar(ctx context.Context, n domain.Notificacao) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notificacoes (id, remetente_id, destinatario_id, tipo, mensagem, lida, criado_em)
		VALUES ($1, $2, $3, $4, $5, FALSE, now())`,
		n.ID, n.RemetenteID, n.DestinatarioID, n.Tipo, n.Mensagem)
	return err
}

func (r *notificacaoPostgres) ListarPorDestinatario(ctx context.Context, destinatarioID string) ([]domain.Notificacao, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, remetente_id, destinatario_id, tipo, mensagem, lida, criado_em
		FROM notificacoes WHERE destinatario_id = $1 ORDER BY criado_em DESC`,
		destinatarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notificacoes []domain.Notificacao
	for rows.Next() {
		var n domain.Notificacao
		if err := rows.Scan(&n.ID, &n.RemetenteID, &n.DestinatarioID, &n.Tipo,
			&n.Mensagem, &n.Lida, &n.CriadoEm); err != nil {
			return nil, err
		}
		notificacoes = append(notificacoes, n)
	}
	return notificacoes, rows.Err()
}

// MarcarComoLida exige o destinatário junto com o ID para impedir que um
// usuário marque notificação alheia.
func (r *notificacaoPostgres) MarcarComoLida(ctx context.Context, id, destinatarioID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notificacoes SET lida = TRUE WHERE id = $1 AND destinatario_id = $2`,
		id, destinatarioID)
	return err
}

func (r *notificacaoPostgres) MarcarTodasComoLidas(ctx context.Context, destinatarioID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE notificacoes SET lida = TRUE WHERE destinatario_id = $1`, destinatarioID)
	return err
}

// ExcluirTodas é a única exclusão física do sistema de notificações,
// sempre em lote e sempre pelo destinatário.
func (r *notificacaoPostgres) ExcluirTodas(ctx context.Context, destinatarioID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM notificacoes WHERE destinatario_id = $1`, destinatarioID)
	return err
}

// --- SEGUIDORES ---

func (r *notificacaoPostgres) Seguir(ctx context.Context, mentorID, seguidorID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO mentor_seguidores (mentor_id, seguidor_id, criado_em)
		VALUES ($1, $2, now())
		ON CONFLICT DO NOTHING`,
		mentorID, seguidorID)
	return err
}

func (r *notificacaoPostgres) DeixarDeSeguir(ctx context.Context, mentorID, seguidorID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM mentor_seguidores WHERE mentor_id = $1 AND seguidor_id = $2`,
		mentorID, seguidorID)
	return err
}

func (r *notificacaoPostgres) ContarSeguidores(ctx context.Context, mentorID string) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*) FROM mentor_seguidores WHERE mentor_id = $1`, mentorID).Scan(&total)
	return total, err
}
