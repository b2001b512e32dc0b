package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/repository"
)

// Erros de negócio de cursos e conteúdos.
var (
	ErrCursoNaoEncontrado = errors.New("curso não encontrado")
	ErrCursoDeOutroMentor = errors.New("curso pertence a outro mentor")
	ErrConteudoInvalido   = errors.New("conteúdo inválido: preencha exatamente o campo do tipo escolhido")
	ErrMentorSemConta     = errors.New("mentor ainda não concluiu o cadastro de recebimentos")
	ErrCursoSemPreco      = errors.New("curso precisa de um preço maior que zero para ser publicado")
)

// CursoService gerencia os cursos de um mentor e a publicação na Stripe.
type CursoService struct {
	cursos   repository.CursoRepository
	perfis   repository.PerfilRepository
	catalogo *CatalogoService
}

// NewCursoService cria o serviço de cursos.
func NewCursoService(cursos repository.CursoRepository, perfis repository.PerfilRepository, catalogo *CatalogoService) *CursoService {
	return &CursoService{cursos: cursos, perfis: perfis, catalogo: catalogo}
}

// Criar registra um curso não publicado para o mentor.
func (s *CursoService) Criar(ctx context.Context, mentorID, titulo, descricao string, precoCentavos int64) (*domain.Curso, error) {
	curso := domain.Curso{
		ID:            uuid.NewString(),
		MentorID:      mentorID,
		Titulo:        titulo,
		Descricao:     descricao,
		PrecoCentavos: precoCentavos,
		Moeda:         "brl",
	}
	if err := s.cursos.Criar(ctx, curso); err != nil {
		return nil, err
	}
	return &curso, nil
}

// Buscar devolve o curso pelo ID.
func (s *CursoService) Buscar(ctx context.Context, id string) (*domain.Curso, error) {
	curso, err := s.cursos.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if curso == nil {
		return nil, ErrCursoNaoEncontrado
	}
	return curso, nil
}

// ListarDoMentor devolve os cursos de um mentor.
func (s *CursoService) ListarDoMentor(ctx context.Context, mentorID string) ([]domain.Curso, error) {
	return s.cursos.ListarPorMentor(ctx, mentorID)
}

// Atualizar edita os campos do curso, conferindo a posse.
func (s *CursoService) Atualizar(ctx context.Context, mentorID string, curso domain.Curso) error {
	atual, err := s.Buscar(ctx, curso.ID)
	if err != nil {
		return err
	}
	if atual.MentorID != mentorID {
		return ErrCursoDeOutroMentor
	}
	return s.cursos.Atualizar(ctx, curso)
}

// Publicar cria o par Product/Price na conta conectada do mentor (na
// primeira publicação) e marca o curso como publicado. Republicar um curso
// já vinculado só religa a flag, sem duplicar objetos na Stripe.
func (s *CursoService) Publicar(ctx context.Context, mentorID, cursoID string) (*domain.Curso, error) {
	curso, err := s.Buscar(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	if curso.MentorID != mentorID {
		return nil, ErrCursoDeOutroMentor
	}
	if curso.PrecoCentavos <= 0 {
		return nil, ErrCursoSemPreco
	}

	mentor, err := s.perfis.BuscarPorID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrPerfilNaoEncontrado
	}
	if mentor.StripeAccountID == "" {
		return nil, ErrMentorSemConta
	}

	if curso.StripeProductID == "" {
		produto, err := s.catalogo.CriarProduto(ctx, mentor.StripeAccountID, DadosProduto{
			Nome:      curso.Titulo,
			Descricao: curso.Descricao,
		})
		if err != nil {
			return nil, err
		}

		preco, err := s.catalogo.CriarPreco(ctx, mentor.StripeAccountID, DadosPreco{
			ProductID:     produto.ID,
			ValorCentavos: curso.PrecoCentavos,
			Moeda:         curso.Moeda,
		})
		if err != nil {
			return nil, err
		}

		if err := s.cursos.VincularStripe(ctx, curso.ID, produto.ID, preco.ID); err != nil {
			return nil, err
		}
		curso.StripeProductID = produto.ID
		curso.StripePriceID = preco.ID
		slog.Info("Curso vinculado à Stripe", "curso", curso.ID, "product", produto.ID, "price", preco.ID)
	}

	if err := s.cursos.Publicar(ctx, curso.ID, true); err != nil {
		return nil, err
	}
	curso.Publicado = true
	return curso, nil
}

// Despublicar esconde o curso e desativa o produto na Stripe (soft-delete:
// o produto não some, só fica inativo).
func (s *CursoService) Despublicar(ctx context.Context, mentorID, cursoID string) error {
	curso, err := s.Buscar(ctx, cursoID)
	if err != nil {
		return err
	}
	if curso.MentorID != mentorID {
		return ErrCursoDeOutroMentor
	}

	if err := s.cursos.Publicar(ctx, curso.ID, false); err != nil {
		return err
	}

	if curso.StripeProductID != "" {
		mentor, err := s.perfis.BuscarPorID(ctx, mentorID)
		if err != nil {
			return err
		}
		if mentor != nil && mentor.StripeAccountID != "" {
			if _, err := s.catalogo.DesativarProduto(ctx, mentor.StripeAccountID, curso.StripeProductID); err != nil {
				// O curso já saiu do ar localmente; a inativação na Stripe
				// pode ser refeita manualmente.
				slog.Error("Falha ao desativar produto na Stripe", "curso", curso.ID, "error", err)
				return err
			}
		}
	}
	return nil
}

// --- MÓDULOS E CONTEÚDOS ---

// CriarModulo adiciona um módulo ao curso.
func (s *CursoService) CriarModulo(ctx context.Context, mentorID, cursoID, titulo string, ordem int) (*domain.Modulo, error) {
	curso, err := s.Buscar(ctx, cursoID)
	if err != nil {
		return nil, err
	}
	if curso.MentorID != mentorID {
		return nil, ErrCursoDeOutroMentor
	}

	modulo := domain.Modulo{
		ID:      uuid.NewString(),
		CursoID: cursoID,
		Titulo:  titulo,
		Ordem:   ordem,
	}
	if err := s.cursos.CriarModulo(ctx, modulo); err != nil {
		return nil, err
	}
	return &modulo, nil
}

// CriarConteudo adiciona um item de conteúdo, validando a invariante do
// payload polimórfico: exatamente um campo preenchido, conforme o tipo.
func (s *CursoService) CriarConteudo(ctx context.Context, conteudo domain.Conteudo) (*domain.Conteudo, error) {
	if !conteudo.PayloadValido() {
		return nil, ErrConteudoInvalido
	}
	conteudo.ID = uuid.NewString()
	if err := s.cursos.CriarConteudo(ctx, conteudo); err != nil {
		return nil, err
	}
	return &conteudo, nil
}

// ListarModulos devolve os módulos do curso na ordem definida pelo mentor.
func (s *CursoService) ListarModulos(ctx context.Context, cursoID string) ([]domain.Modulo, error) {
	return s.cursos.ListarModulos(ctx, cursoID)
}

// ListarConteudos devolve os conteúdos de um módulo em ordem.
func (s *CursoService) ListarConteudos(ctx context.Context, moduloID string) ([]domain.Conteudo, error) {
	return s.cursos.ListarConteudos(ctx, moduloID)
}
