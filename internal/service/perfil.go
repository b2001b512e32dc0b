package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/mailer"
	"github.com/willjrcristo/mentoria-api/internal/repository"
)

// ErrDadosInvalidos cobre payloads sem os campos mínimos de um perfil.
var ErrDadosInvalidos = errors.New("dados do perfil inválidos")

// ErrEmailJaCadastrado indica tentativa de criar perfil com e-mail em uso.
var ErrEmailJaCadastrado = errors.New("e-mail já cadastrado")

// PerfilService gerencia os perfis da plataforma e o e-mail de boas-vindas.
type PerfilService struct {
	repo   repository.PerfilRepository
	mailer Despachante
}

// NewPerfilService cria o serviço de perfis.
func NewPerfilService(repo repository.PerfilRepository, m Despachante) *PerfilService {
	return &PerfilService{repo: repo, mailer: m}
}

// Criar registra um novo perfil. O ID pode vir do provedor de autenticação
// (o mesmo sub do JWT); vazio gera um novo.
func (s *PerfilService) Criar(ctx context.Context, perfil domain.Perfil) (*domain.Perfil, error) {
	if perfil.Nome == "" || perfil.Email == "" || !strings.Contains(perfil.Email, "@") {
		return nil, ErrDadosInvalidos
	}
	if !domain.PapelValido(string(perfil.Papel)) {
		perfil.Papel = domain.PapelMentorado
	}
	existente, err := s.repo.BuscarPorEmail(ctx, perfil.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrEmailJaCadastrado
	}
	if perfil.ID == "" {
		perfil.ID = uuid.NewString()
	}
	if err := s.repo.Criar(ctx, perfil); err != nil {
		return nil, err
	}
	return &perfil, nil
}

// Buscar devolve o perfil pelo ID.
func (s *PerfilService) Buscar(ctx context.Context, id string) (*domain.Perfil, error) {
	perfil, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, ErrPerfilNaoEncontrado
	}
	return perfil, nil
}

// Atualizar edita os campos básicos do perfil.
func (s *PerfilService) Atualizar(ctx context.Context, perfil domain.Perfil) error {
	if _, err := s.Buscar(ctx, perfil.ID); err != nil {
		return err
	}
	return s.repo.Atualizar(ctx, perfil)
}

// Desativar faz o soft-delete do perfil.
func (s *PerfilService) Desativar(ctx context.Context, id string) error {
	if _, err := s.Buscar(ctx, id); err != nil {
		return err
	}
	return s.repo.Desativar(ctx, id)
}

// EnviarBoasVindas dispara o e-mail de boas-vindas. Falha de envio volta
// como ResultadoEnvio, nunca como erro da requisição.
func (s *PerfilService) EnviarBoasVindas(ctx context.Context, nome, email string, mentor bool) mailer.ResultadoEnvio {
	vars := map[string]string{"nome": nome}
	if mentor {
		vars["mentor"] = "true"
	}
	return s.mailer.Despachar(mailer.TemplateBoasVindas, email, vars)
}
