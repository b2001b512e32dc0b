package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/repository"
)

// ErrAutoSeguir impede um perfil de seguir a si mesmo.
var ErrAutoSeguir = errors.New("não é possível seguir o próprio perfil")

// NotificacaoService gerencia as notificações internas e a relação de
// seguidores de um mentor. Seguir e deixar de seguir são os gatilhos que
// criam notificações aqui; os demais fluxos criam as suas nos próprios
// serviços.
type NotificacaoService struct {
	repo   repository.NotificacaoRepository
	perfis repository.PerfilRepository
}

// NewNotificacaoService cria o serviço de notificações.
func NewNotificacaoService(repo repository.NotificacaoRepository, perfis repository.PerfilRepository) *NotificacaoService {
	return &NotificacaoService{repo: repo, perfis: perfis}
}

// Listar devolve as notificações do destinatário, mais recentes primeiro.
func (s *NotificacaoService) Listar(ctx context.Context, destinatarioID string) ([]domain.Notificacao, error) {
	return s.repo.ListarPorDestinatario(ctx, destinatarioID)
}

// MarcarComoLida marca uma notificação do próprio destinatário.
func (s *NotificacaoService) MarcarComoLida(ctx context.Context, id, destinatarioID string) error {
	return s.repo.MarcarComoLida(ctx, id, destinatarioID)
}

// MarcarTodasComoLidas marca todas as notificações do destinatário.
func (s *NotificacaoService) MarcarTodasComoLidas(ctx context.Context, destinatarioID string) error {
	return s.repo.MarcarTodasComoLidas(ctx, destinatarioID)
}

// ExcluirTodas remove em lote as notificações do destinatário.
func (s *NotificacaoService) ExcluirTodas(ctx context.Context, destinatarioID string) error {
	return s.repo.ExcluirTodas(ctx, destinatarioID)
}

// Seguir registra o vínculo e notifica o mentor.
func (s *NotificacaoService) Seguir(ctx context.Context, mentorID, seguidorID string) error {
	if mentorID == seguidorID {
		return ErrAutoSeguir
	}

	seguidor, err := s.perfis.BuscarPorID(ctx, seguidorID)
	if err != nil {
		return err
	}
	if seguidor == nil {
		return ErrPerfilNaoEncontrado
	}

	if err := s.repo.Seguir(ctx, mentorID, seguidorID); err != nil {
		return err
	}

	return s.repo.Criar(ctx, domain.Notificacao{
		ID:             uuid.NewString(),
		RemetenteID:    seguidorID,
		DestinatarioID: mentorID,
		Tipo:           domain.NotificacaoNovoSeguidor,
		Mensagem:       seguidor.Nome + " começou a seguir você",
	})
}

// DeixarDeSeguir desfaz o vínculo. Não gera notificação.
func (s *NotificacaoService) DeixarDeSeguir(ctx context.Context, mentorID, seguidorID string) error {
	return s.repo.DeixarDeSeguir(ctx, mentorID, seguidorID)
}

// ContarSeguidores devolve o total de seguidores do mentor.
func (s *NotificacaoService) ContarSeguidores(ctx context.Context, mentorID string) (int, error) {
	return s.repo.ContarSeguidores(ctx, mentorID)
}
