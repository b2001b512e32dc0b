package domain

import "time"

// StatusAgendamento acompanha o ciclo de vida de uma mentoria agendada.
type StatusAgendamento string

const (
	AgendamentoConfirmado StatusAgendamento = "confirmado"
	AgendamentoCancelado  StatusAgendamento = "cancelado"
	AgendamentoConcluido  StatusAgendamento = "concluido"
)

// Agendamento é uma sessão de mentoria marcada entre um mentor e um
// mentorado. Data e hora ficam como texto no formato recebido do
// front-end ("2006-01-02" e "15:04"); a plataforma não faz aritmética
// de calendário sobre eles, apenas exibe e notifica.
type Agendamento struct {
	ID             string            `json:"id"`
	MentorNome     string            `json:"mentor_nome"`
	MentorEmail    string            `json:"mentor_email"`
	MentoradoNome  string            `json:"mentorado_nome"`
	MentoradoEmail string            `json:"mentorado_email"`
	Data           string            `json:"data"`
	Hora           string            `json:"hora"`
	Status         StatusAgendamento `json:"status"`
	CriadoEm       time.Time         `json:"criado_em"`
}
