package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/willjrcristo/mentoria-api/internal/auth"
	"github.com/willjrcristo/mentoria-api/internal/domain"
)

// CursoService é a interface do handler de cursos.
type CursoService interface {
	Criar(ctx context.Context, mentorID, titulo, descricao string, precoCentavos int64) (*domain.Curso, error)
	Buscar(ctx context.Context, id string) (*domain.Curso, error)
	ListarDoMentor(ctx context.Context, mentorID string) ([]domain.Curso, error)
	Atualizar(ctx context.Context, mentorID string, curso domain.Curso) error
	Publicar(ctx context.Context, mentorID, cursoID string) (*domain.Curso, error)
	Despublicar(ctx context.Context, mentorID, cursoID string) error
	CriarModulo(ctx context.Context, mentorID, cursoID, titulo string, ordem int) (*domain.Modulo, error)
	CriarConteudo(ctx context.Context, conteudo domain.Conteudo) (*domain.Conteudo, error)
	ListarModulos(ctx context.Context, cursoID string) ([]domain.Modulo, error)
	ListarConteudos(ctx context.Context, moduloID string) ([]domain.Conteudo, error)
}

// CursoHandler gerencia as rotas de /api/cursos.
type CursoHandler struct {
	service  CursoService
	validate *validator.Validate
}

// NewCursoHandler cria o handler de cursos.
func NewCursoHandler(s CursoService) *CursoHandler {
	return &CursoHandler{service: s, validate: validator.New()}
}

// Routes define as rotas deste handler. Escritas exigem papel de mentor
// (aplicado na montagem do roteador, em cmd/api).
func (h *CursoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Criar)
	r.Get("/{id}", h.Buscar)
	r.Get("/", h.ListarDoMentor)
	r.Put("/{id}", h.Atualizar)
	r.Post("/{id}/publicar", h.Publicar)
	r.Post("/{id}/despublicar", h.Despublicar)
	r.Post("/{id}/modulos", h.CriarModulo)
	r.Get("/{id}/modulos", h.ListarModulos)
	r.Post("/modulos/{moduloId}/conteudos", h.CriarConteudo)
	r.Get("/modulos/{moduloId}/conteudos", h.ListarConteudos)
	return r
}

type corpoCurso struct {
	Titulo        string `json:"titulo" validate:"required"`
	Descricao     string `json:"descricao"`
	PrecoCentavos int64  `json:"preco_centavos" validate:"gte=0"`
}

// @Summary      Cria um curso
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Param        curso  body  corpoCurso  true  "Dados do curso"
// @Success      201  {object}  map[string]interface{}
// @Router       /api/cursos [post]
func (h *CursoHandler) Criar(w http.ResponseWriter, r *http.Request) {
	var corpo corpoCurso
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	curso, err := h.service.Criar(r.Context(), auth.UsuarioDoContexto(r.Context()),
		corpo.Titulo, corpo.Descricao, corpo.PrecoCentavos)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"curso": curso})
}

func (h *CursoHandler) Buscar(w http.ResponseWriter, r *http.Request) {
	curso, err := h.service.Buscar(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"curso": curso})
}

func (h *CursoHandler) ListarDoMentor(w http.ResponseWriter, r *http.Request) {
	mentorID := r.URL.Query().Get("mentor")
	if mentorID == "" {
		mentorID = auth.UsuarioDoContexto(r.Context())
	}
	cursos, err := h.service.ListarDoMentor(r.Context(), mentorID)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"cursos": cursos})
}

func (h *CursoHandler) Atualizar(w http.ResponseWriter, r *http.Request) {
	var corpo corpoCurso
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	curso := domain.Curso{
		ID:            chi.URLParam(r, "id"),
		Titulo:        corpo.Titulo,
		Descricao:     corpo.Descricao,
		PrecoCentavos: corpo.PrecoCentavos,
		Moeda:         "brl",
	}
	if err := h.service.Atualizar(r.Context(), auth.UsuarioDoContexto(r.Context()), curso); err != nil {
		responderErroServico(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary      Publica um curso
// @Description  Cria o par Product/Price na conta conectada do mentor na primeira publicação e marca o curso como publicado
// @Tags         cursos
// @Produce      json
// @Param        id  path  string  true  "ID do curso"
// @Success      200  {object}  map[string]interface{}
// @Failure      422  {object}  map[string]interface{}
// @Router       /api/cursos/{id}/publicar [post]
func (h *CursoHandler) Publicar(w http.ResponseWriter, r *http.Request) {
	curso, err := h.service.Publicar(r.Context(), auth.UsuarioDoContexto(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"curso": curso})
}

func (h *CursoHandler) Despublicar(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Despublicar(r.Context(), auth.UsuarioDoContexto(r.Context()), chi.URLParam(r, "id")); err != nil {
		responderErroServico(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CursoHandler) CriarModulo(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		Titulo string `json:"titulo" validate:"required"`
		Ordem  int    `json:"ordem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	modulo, err := h.service.CriarModulo(r.Context(), auth.UsuarioDoContexto(r.Context()),
		chi.URLParam(r, "id"), corpo.Titulo, corpo.Ordem)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"modulo": modulo})
}

func (h *CursoHandler) ListarModulos(w http.ResponseWriter, r *http.Request) {
	modulos, err := h.service.ListarModulos(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"modulos": modulos})
}

// CriarConteudo grava um item de conteúdo. A invariante do payload
// polimórfico (exatamente um campo por tipo) é validada no serviço.
func (h *CursoHandler) CriarConteudo(w http.ResponseWriter, r *http.Request) {
	var conteudo domain.Conteudo
	if err := json.NewDecoder(r.Body).Decode(&conteudo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	conteudo.ModuloID = chi.URLParam(r, "moduloId")

	criado, err := h.service.CriarConteudo(r.Context(), conteudo)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"conteudo": criado})
}

func (h *CursoHandler) ListarConteudos(w http.ResponseWriter, r *http.Request) {
	conteudos, err := h.service.ListarConteudos(r.Context(), chi.URLParam(r, "moduloId"))
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, map[string]interface{}{"conteudos": conteudos})
}
