package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

type MockMatriculaRepository struct {
	CriarFn                    func(ctx context.Context, matricula domain.Matricula) error
	BuscarPorCursoEMentoradoFn func(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error)
}

func (m *MockMatriculaRepository) Criar(ctx context.Context, matricula domain.Matricula) error {
	return m.CriarFn(ctx, matricula)
}
func (m *MockMatriculaRepository) BuscarPorCursoEMentorado(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error) {
	return m.BuscarPorCursoEMentoradoFn(ctx, cursoID, mentoradoID)
}
func (m *MockMatriculaRepository) BuscarPorID(ctx context.Context, id string) (*domain.Matricula, error) {
	return nil, nil
}
func (m *MockMatriculaRepository) ListarPorMentorado(ctx context.Context, mentoradoID string) ([]domain.Matricula, error) {
	return nil, nil
}
func (m *MockMatriculaRepository) AtualizarStatus(ctx context.Context, id string, status domain.StatusMatricula) error {
	return nil
}
func (m *MockMatriculaRepository) AtualizarProgresso(ctx context.Context, id string, progresso int) error {
	return nil
}

func TestMatriculaService_IniciarCheckout(t *testing.T) {
	ctx := context.Background()

	cursos := &MockCursoRepository{
		BuscarPorIDFn: func(ctx context.Context, id string) (*domain.Curso, error) {
			return &domain.Curso{ID: id, MentorID: "mentor-1", Publicado: true}, nil
		},
	}

	t.Run("sucesso - cria a matrícula pendente", func(t *testing.T) {
		var criada domain.Matricula
		matriculas := &MockMatriculaRepository{
			BuscarPorCursoEMentoradoFn: func(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error) {
				return nil, nil
			},
			CriarFn: func(ctx context.Context, matricula domain.Matricula) error {
				criada = matricula
				return nil
			},
		}
		s := NewMatriculaService(matriculas, cursos, &MockNotificacaoRepository{})

		matricula, err := s.IniciarCheckout(ctx, "curso-1", "aluno-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.MatriculaPendente, matricula.Status)
		assert.Equal(t, criada.ID, matricula.ID)
	})

	t.Run("matrícula pendente existente é reaproveitada", func(t *testing.T) {
		pendente := &domain.Matricula{ID: "mat-1", Status: domain.MatriculaPendente}
		matriculas := &MockMatriculaRepository{
			BuscarPorCursoEMentoradoFn: func(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error) {
				return pendente, nil
			},
			CriarFn: func(ctx context.Context, matricula domain.Matricula) error {
				t.Fatal("não deveria criar outra matrícula com uma pendente existente")
				return nil
			},
		}
		s := NewMatriculaService(matriculas, cursos, &MockNotificacaoRepository{})

		matricula, err := s.IniciarCheckout(ctx, "curso-1", "aluno-1")

		assert.NoError(t, err)
		assert.Equal(t, "mat-1", matricula.ID)
	})

	t.Run("matrícula ativa existente retorna ErrMatriculaDuplicada", func(t *testing.T) {
		matriculas := &MockMatriculaRepository{
			BuscarPorCursoEMentoradoFn: func(ctx context.Context, cursoID, mentoradoID string) (*domain.Matricula, error) {
				return &domain.Matricula{ID: "mat-1", Status: domain.MatriculaAtiva}, nil
			},
		}
		s := NewMatriculaService(matriculas, cursos, &MockNotificacaoRepository{})

		_, err := s.IniciarCheckout(ctx, "curso-1", "aluno-1")
		assert.ErrorIs(t, err, ErrMatriculaDuplicada)
	})

	t.Run("curso inexistente retorna ErrCursoNaoEncontrado", func(t *testing.T) {
		semCurso := &MockCursoRepository{
			BuscarPorIDFn: func(ctx context.Context, id string) (*domain.Curso, error) {
				return nil, nil
			},
		}
		s := NewMatriculaService(&MockMatriculaRepository{}, semCurso, &MockNotificacaoRepository{})

		_, err := s.IniciarCheckout(ctx, "curso-999", "aluno-1")
		assert.ErrorIs(t, err, ErrCursoNaoEncontrado)
	})
}

func TestCalcularProgresso(t *testing.T) {
	casos := []struct {
		nome       string
		concluidos int
		total      int
		esperado   int
	}{
		{"nenhum conteúdo concluído", 0, 10, 0},
		{"metade do curso", 5, 10, 50},
		{"curso completo", 10, 10, 100},
		{"acima do total satura em 100", 15, 10, 100},
		{"curso sem conteúdo", 3, 0, 0},
		{"fração trunca para baixo", 1, 3, 33},
		{"concluídos negativo é inválido", -1, 10, -1},
		{"total negativo é inválido", 5, -2, -1},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			assert.Equal(t, c.esperado, CalcularProgresso(c.concluidos, c.total))
		})
	}
}
