package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/willjrcristo/mentoria-api/internal/domain"
	"github.com/willjrcristo/mentoria-api/internal/mailer"
	"github.com/willjrcristo/mentoria-api/internal/repository"
)

// ErrAgendamentoNaoEncontrado indica cancelamento de agendamento inexistente.
var ErrAgendamentoNaoEncontrado = errors.New("agendamento não encontrado")

// NovoAgendamento é o payload do POST /api/appointments. Os nomes de campo
// seguem o contrato do front-end (em inglês).
type NovoAgendamento struct {
	MentorEmail     string `json:"mentorEmail"`
	MenteeEmail     string `json:"menteeEmail"`
	MentorName      string `json:"mentorName"`
	MenteeName      string `json:"menteeName"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	Observacao      string `json:"observacao,omitempty"`
}

// Validar devolve o mapa campo→presente. Todos verdadeiros = payload ok;
// o handler devolve esse mapa como o detalhamento do erro 400.
func (n NovoAgendamento) Validar() map[string]bool {
	return map[string]bool{
		"mentorEmail":     n.MentorEmail != "",
		"menteeEmail":     n.MenteeEmail != "",
		"mentorName":      n.MentorName != "",
		"menteeName":      n.MenteeName != "",
		"appointmentDate": n.AppointmentDate != "",
		"appointmentTime": n.AppointmentTime != "",
	}
}

// ResultadoNotificacoes carrega o desfecho dos dois envios de e-mail,
// um independente do outro.
type ResultadoNotificacoes struct {
	Mentor mailer.ResultadoEnvio `json:"mentor"`
	Mentee mailer.ResultadoEnvio `json:"mentee"`
}

// Despachante é a dependência de e-mail do serviço (interface para os
// testes trocarem o mailer real).
type Despachante interface {
	Despachar(templateID, para string, vars map[string]string) mailer.ResultadoEnvio
}

// AgendamentoService persiste agendamentos de mentoria e notifica as duas
// partes por e-mail.
type AgendamentoService struct {
	repo   repository.AgendamentoRepository
	mailer Despachante
}

// NewAgendamentoService cria o serviço de agendamentos.
func NewAgendamentoService(repo repository.AgendamentoRepository, m Despachante) *AgendamentoService {
	return &AgendamentoService{repo: repo, mailer: m}
}

// Criar grava o agendamento e dispara os dois e-mails em paralelo. Os
// envios são "settle-all": a falha de um não cancela o outro, e nenhuma
// falha de e-mail derruba a requisição — o resultado de cada envio volta
// como dado na resposta.
func (s *AgendamentoService) Criar(ctx context.Context, novo NovoAgendamento) (*domain.Agendamento, ResultadoNotificacoes, error) {
	agendamento := domain.Agendamento{
		ID:             uuid.NewString(),
		MentorNome:     novo.MentorName,
		MentorEmail:    novo.MentorEmail,
		MentoradoNome:  novo.MenteeName,
		MentoradoEmail: novo.MenteeEmail,
		Data:           novo.AppointmentDate,
		Hora:           novo.AppointmentTime,
		Status:         domain.AgendamentoConfirmado,
	}
	if err := s.repo.Criar(ctx, agendamento); err != nil {
		return nil, ResultadoNotificacoes{}, err
	}

	vars := map[string]string{
		"mentorNome":    novo.MentorName,
		"mentoradoNome": novo.MenteeName,
		"data":          novo.AppointmentDate,
		"hora":          novo.AppointmentTime,
		"observacao":    novo.Observacao,
	}

	// Fan-out fixo de dois envios, juntados com WaitGroup. É a única
	// coordenação de concorrência do sistema.
	var resultados ResultadoNotificacoes
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		resultados.Mentor = s.mailer.Despachar(mailer.TemplateNovoAgendamentoMentor, novo.MentorEmail, vars)
	}()
	go func() {
		defer wg.Done()
		resultados.Mentee = s.mailer.Despachar(mailer.TemplateNovoAgendamentoAluno, novo.MenteeEmail, vars)
	}()
	wg.Wait()

	// Sumário das falhas só para o log; nada disso vira erro da requisição.
	var falhas *multierror.Error
	if !resultados.Mentor.Success {
		falhas = multierror.Append(falhas, errors.New("mentor: "+resultados.Mentor.Error))
	}
	if !resultados.Mentee.Success {
		falhas = multierror.Append(falhas, errors.New("mentorado: "+resultados.Mentee.Error))
	}
	if err := falhas.ErrorOrNil(); err != nil {
		slog.Warn("Agendamento criado com falha parcial de notificação",
			"agendamento", agendamento.ID, "error", err)
	}

	return &agendamento, resultados, nil
}

// Cancelar muda o status do agendamento e envia os e-mails de
// cancelamento para as duas partes (settle-all, como na criação).
func (s *AgendamentoService) Cancelar(ctx context.Context, id, motivo string) (ResultadoNotificacoes, error) {
	agendamento, err := s.repo.BuscarPorID(ctx, id)
	if err != nil {
		return ResultadoNotificacoes{}, err
	}
	if agendamento == nil {
		return ResultadoNotificacoes{}, ErrAgendamentoNaoEncontrado
	}

	if err := s.repo.AtualizarStatus(ctx, id, domain.AgendamentoCancelado); err != nil {
		return ResultadoNotificacoes{}, err
	}

	varsBase := map[string]string{
		"data":   agendamento.Data,
		"hora":   agendamento.Hora,
		"motivo": motivo,
	}

	var resultados ResultadoNotificacoes
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		vars := map[string]string{"nome": agendamento.MentorNome}
		for k, v := range varsBase {
			vars[k] = v
		}
		resultados.Mentor = s.mailer.Despachar(mailer.TemplateCancelamento, agendamento.MentorEmail, vars)
	}()
	go func() {
		defer wg.Done()
		vars := map[string]string{"nome": agendamento.MentoradoNome}
		for k, v := range varsBase {
			vars[k] = v
		}
		resultados.Mentee = s.mailer.Despachar(mailer.TemplateCancelamento, agendamento.MentoradoEmail, vars)
	}()
	wg.Wait()

	return resultados, nil
}
