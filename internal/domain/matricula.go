package domain

import "time"

// StatusMatricula acompanha o ciclo de vida de uma matrícula.
type StatusMatricula string

const (
	// MatriculaPendente: checkout iniciado, pagamento ainda não confirmado.
	MatriculaPendente StatusMatricula = "pendente"
	// MatriculaAtiva: pagamento confirmado, aluno com acesso ao curso.
	MatriculaAtiva StatusMatricula = "active"
	// MatriculaInativa: acesso revogado (reembolso, cancelamento).
	MatriculaInativa StatusMatricula = "inactive"
	// MatriculaSuspensa: acesso suspenso temporariamente.
	MatriculaSuspensa StatusMatricula = "suspended"
)

// Matricula liga um mentorado a um curso. É criada na abertura do checkout
// e ativada quando o pagamento é confirmado; o player de curso a lê
// continuamente para controlar acesso e progresso.
type Matricula struct {
	ID          string          `json:"id"`
	CursoID     string          `json:"curso_id"`
	MentoradoID string          `json:"mentorado_id"`
	Status      StatusMatricula `json:"status"`

	// Percentual de progresso no curso, 0 a 100.
	Progresso int `json:"progresso"`

	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}
