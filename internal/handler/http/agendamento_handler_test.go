package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/mailer"
	"github.com/willjrcristo/mentoria-api/internal/service"
)

// --- Mock da Camada de Serviço ---

// MockAgendamentoService é uma implementação falsa da interface
// AgendamentoService. Controlamos o retorno de cada função para simular
// os diferentes cenários.
type MockAgendamentoService struct {
	CriarFn    func(ctx context.Context, novo service.NovoAgendamento) (*domain.Agendamento, service.ResultadoNotificacoes, error)
	CancelarFn func(ctx context.Context, id, motivo string) (service.ResultadoNotificacoes, error)
}

func (m *MockAgendamentoService) Criar(ctx context.Context, novo service.NovoAgendamento) (*domain.Agendamento, service.ResultadoNotificacoes, error) {
	return m.CriarFn(ctx, novo)
}

func (m *MockAgendamentoService) Cancelar(ctx context.Context, id, motivo string) (service.ResultadoNotificacoes, error) {
	return m.CancelarFn(ctx, id, motivo)
}

func agendamentoValido() service.NovoAgendamento {
	return service.NovoAgendamento{
		MentorEmail:     "mentor@email.com",
		MenteeEmail:     "aluno@email.com",
		MentorName:      "Mentor Teste",
		MenteeName:      "Aluno Teste",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "14:00",
	}
}

// --- Testes do Handler ---

func TestAgendamentoHandler_Criar(t *testing.T) {
	t.Run("sucesso - deve criar o agendamento e retornar 201", func(t *testing.T) {
		// Arrange
		mockService := &MockAgendamentoService{
			CriarFn: func(ctx context.Context, novo service.NovoAgendamento) (*domain.Agendamento, service.ResultadoNotificacoes, error) {
				assert.Equal(t, "mentor@email.com", novo.MentorEmail)
				return &domain.Agendamento{ID: "ag_1", Status: domain.AgendamentoConfirmado},
					service.ResultadoNotificacoes{
						Mentor: mailer.ResultadoEnvio{Success: true},
						Mentee: mailer.ResultadoEnvio{Success: true},
					}, nil
			},
		}
		handler := NewAgendamentoHandler(mockService)

		body, _ := json.Marshal(agendamentoValido())
		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		// Act
		handler.Criar(rr, req)

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resposta map[string]interface{}
		err := json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.NoError(t, err)
		assert.Equal(t, true, resposta["success"])

		notificacoes := resposta["notifications"].(map[string]interface{})
		mentor := notificacoes["mentor"].(map[string]interface{})
		assert.Equal(t, true, mentor["success"])
	})

	t.Run("falha de e-mail não derruba a criação", func(t *testing.T) {
		// Arrange: o envio para o mentor falhou, o do aluno não.
		mockService := &MockAgendamentoService{
			CriarFn: func(ctx context.Context, novo service.NovoAgendamento) (*domain.Agendamento, service.ResultadoNotificacoes, error) {
				return &domain.Agendamento{ID: "ag_2"},
					service.ResultadoNotificacoes{
						Mentor: mailer.ResultadoEnvio{Success: false, Error: "smtp: connection refused"},
						Mentee: mailer.ResultadoEnvio{Success: true},
					}, nil
			},
		}
		handler := NewAgendamentoHandler(mockService)

		body, _ := json.Marshal(agendamentoValido())
		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Criar(rr, req)

		// Assert: 201 mesmo assim; o desfecho de cada envio vem no corpo.
		assert.Equal(t, http.StatusCreated, rr.Code)

		var resposta map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &resposta)
		notificacoes := resposta["notifications"].(map[string]interface{})
		mentor := notificacoes["mentor"].(map[string]interface{})
		mentee := notificacoes["mentee"].(map[string]interface{})
		assert.Equal(t, false, mentor["success"])
		assert.Equal(t, true, mentee["success"])
	})

	t.Run("erro - campo ausente retorna 400 com o mapa de validação", func(t *testing.T) {
		// Arrange: sem appointmentDate. O serviço nem deve ser chamado.
		mockService := &MockAgendamentoService{
			CriarFn: func(ctx context.Context, novo service.NovoAgendamento) (*domain.Agendamento, service.ResultadoNotificacoes, error) {
				t.Fatal("o serviço não deveria ser chamado com payload inválido")
				return nil, service.ResultadoNotificacoes{}, nil
			},
		}
		handler := NewAgendamentoHandler(mockService)

		invalido := agendamentoValido()
		invalido.AppointmentDate = ""
		body, _ := json.Marshal(invalido)
		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		// Act
		handler.Criar(rr, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var resposta map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.Equal(t, false, resposta["success"])

		validacao := resposta["validation"].(map[string]interface{})
		assert.Equal(t, false, validacao["appointmentDate"])
		assert.Equal(t, true, validacao["mentorEmail"])
	})

	t.Run("erro - corpo que não é JSON retorna 400", func(t *testing.T) {
		handler := NewAgendamentoHandler(&MockAgendamentoService{})

		req := httptest.NewRequest("POST", "/api/appointments", bytes.NewBufferString("nao é json"))
		rr := httptest.NewRecorder()

		handler.Criar(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAgendamentoHandler_Cancelar(t *testing.T) {
	t.Run("sucesso - deve cancelar e retornar 200", func(t *testing.T) {
		// Arrange
		mockService := &MockAgendamentoService{
			CancelarFn: func(ctx context.Context, id, motivo string) (service.ResultadoNotificacoes, error) {
				assert.Equal(t, "ag_1", id)
				assert.Equal(t, "conflito de agenda", motivo)
				return service.ResultadoNotificacoes{
					Mentor: mailer.ResultadoEnvio{Success: true},
					Mentee: mailer.ResultadoEnvio{Success: true},
				}, nil
			},
		}
		body := bytes.NewBufferString(`{"motivo":"conflito de agenda"}`)
		req := httptest.NewRequest("POST", "/api/appointments/ag_1/cancelar", body)
		rr := httptest.NewRecorder()

		// O roteador é necessário para o chi extrair o {id} da URL.
		router := chi.NewRouter()
		router.Mount("/api/appointments", NewAgendamentoHandler(mockService).Routes())

		// Act
		router.ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("erro - agendamento inexistente retorna 404", func(t *testing.T) {
		mockService := &MockAgendamentoService{
			CancelarFn: func(ctx context.Context, id, motivo string) (service.ResultadoNotificacoes, error) {
				return service.ResultadoNotificacoes{}, service.ErrAgendamentoNaoEncontrado
			},
		}

		req := httptest.NewRequest("POST", "/api/appointments/inexistente/cancelar", nil)
		rr := httptest.NewRecorder()

		router := chi.NewRouter()
		router.Mount("/api/appointments", NewAgendamentoHandler(mockService).Routes())

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
