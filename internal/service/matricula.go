package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/repository"
)

// Erros de negócio de matrículas.
var (
	ErrMatriculaNaoEncontrada = errors.New("matrícula não encontrada")
	ErrMatriculaDuplicada     = errors.New("mentorado já matriculado neste curso")
	ErrProgressoInvalido      = errors.New("progresso deve estar entre 0 e 100")
)

// MatriculaService controla o ciclo de vida das matrículas: criadas
// pendentes na abertura do checkout, ativadas na confirmação do pagamento
// e lidas continuamente pelo player de curso.
type MatriculaService struct {
	matriculas   repository.MatriculaRepository
	cursos       repository.CursoRepository
	notificacoes repository.NotificacaoRepository
}

// NewMatriculaService cria o serviço de matrículas.
func NewMatriculaService(matriculas repository.MatriculaRepository, cursos repository.CursoRepository, notificacoes repository.NotificacaoRepository) *MatriculaService {
	return &MatriculaService{matriculas: matriculas, cursos: cursos, notificacoes: notificacoes}
}

// IniciarCheckout cria a matrícula pendente. A ativação só acontece com a
// confirmação do pagamento; o botão "Tentar Pagamento" do front-end reusa
// a mesma matrícula pendente em vez de criar outra.
func (s *MatriculaService) IniciarCheckout(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error) {
	curso, err := s.cursos.BuscarPorID(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, ErrCursoNaoEncontrado
	}

	existente, err := s.matriculas.BuscarPorCursoEMentorado(ctx, cursoID, mentoradoID)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		if existente.Status == domain.MatriculaPendente {
			return existente, nil
		}
		return nil, ErrMatriculaDuplicada
	}

	matricula := domain.Matricula{
		ID:          uuid.NewString(),
		CursoID:     cursoID,
		MentoradoID: mentoradoID,
		Status:      domain.MatriculaPendente,
	}
	if err := s.matriculas.Criar(ctx, matricula); err != nil {
		return nil, err
	}
	return &matricula, nil
}

// ConfirmarPagamento ativa a matrícula e notifica o mentor do curso.
func (s *MatriculaService) ConfirmarPagamento(ctx context.Context, matriculaID string) error {
	matricula, err := s.matriculas.BuscarPorID(ctx, matriculaID)
	if err != nil {
		return err
	}
	if matricula == nil {
		return ErrMatriculaNaoEncontrada
	}

	if err := s.matriculas.AtualizarStatus(ctx, matriculaID, domain.MatriculaAtiva); err != nil {
		return err
	}

	curso, err := s.cursos.BuscarPorID(ctx, matricula.CursoID)
	if err != nil || curso == nil {
		// A ativação já aconteceu; ficar sem a notificação interna não é
		// motivo para falhar a confirmação.
		slog.Warn("Matrícula ativada sem notificação ao mentor", "matricula", matriculaID, "error", err)
		return nil
	}

	notificacao := domain.Notificacao{
		ID:             uuid.NewString(),
		RemetenteID:    matricula.MentoradoID,
		DestinatarioID: curso.MentorID,
		Tipo:           domain.NotificacaoMatricula,
		Mensagem:       "Novo aluno matriculado no curso " + curso.Titulo,
	}
	if err := s.notificacoes.Criar(ctx, notificacao); err != nil {
		slog.Warn("Falha ao criar notificação de matrícula", "matricula", matriculaID, "error", err)
	}
	return nil
}

// Listar devolve as matrículas do mentorado.
func (s *MatriculaService) Listar(ctx context.Context, mentoradoID string) ([]domain.Matricula, error) {
	return s.matriculas.ListarPorMentorado(ctx, mentoradoID)
}

// AtualizarProgresso grava o percentual calculado pelo player: conteúdos
// concluídos sobre o total do curso.
func (s *MatriculaService) AtualizarProgresso(ctx context.Context, matriculaID string, concluidos int) error {
	matricula, err := s.matriculas.BuscarPorID(ctx, matriculaID)
	if err != nil {
		return err
	}
	if matricula == nil {
		return ErrMatriculaNaoEncontrada
	}

	total, err := s.cursos.ContarConteudos(ctx, matricula.CursoID)
	if err != nil {
		return err
	}

	progresso := CalcularProgresso(concluidos, total)
	if progresso < 0 {
		return ErrProgressoInvalido
	}
	return s.matriculas.AtualizarProgresso(ctx, matriculaID, progresso)
}

// Suspender bloqueia temporariamente o acesso do mentorado.
func (s *MatriculaService) Suspender(ctx context.Context, matriculaID string) error {
	return s.mudarStatus(ctx, matriculaID, domain.MatriculaSuspensa)
}

// Desativar revoga o acesso (reembolso ou cancelamento).
func (s *MatriculaService) Desativar(ctx context.Context, matriculaID string) error {
	return s.mudarStatus(ctx, matriculaID, domain.MatriculaInativa)
}

func (s *MatriculaService) mudarStatus(ctx context.Context, matriculaID string, status domain.StatusMatricula) error {
	matricula, err := s.matriculas.BuscarPorID(ctx, matriculaID)
	if err != nil {
		return err
	}
	if matricula == nil {
		return ErrMatriculaNaoEncontrada
	}
	return s.matriculas.AtualizarStatus(ctx, matriculaID, status)
}

// CalcularProgresso converte a fração concluídos/total para o percentual
// 0..100 gravado na matrícula. Total zero significa curso sem conteúdo:
// progresso zero. Concluídos acima do total satura em 100; valores
// negativos são inválidos (-1).
func CalcularProgresso(concluidos, total int) int {
	if concluidos < 0 || total < 0 {
		return -1
	}
	if total == 0 {
		return 0
	}
	if concluidos >= total {
		return 100
	}
	return concluidos * 100 / total
}
