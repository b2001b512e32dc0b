package domain

import "time"

// TipoNotificacao classifica o evento que originou a notificação.
type TipoNotificacao string

const (
	NotificacaoNovoSeguidor TipoNotificacao = "novo_seguidor"
	NotificacaoMatricula    TipoNotificacao = "matricula"
)

// Notificacao é uma mensagem direcionada de um perfil para outro.
// Depois de criada, só o campo Lida muda; a exclusão é sempre em lote,
// feita pelo destinatário.
type Notificacao struct {
	ID             string          `json:"id"`
	RemetenteID    string          `json:"remetente_id"`
	DestinatarioID string          `json:"destinatario_id"`
	Tipo           TipoNotificacao `json:"tipo"`
	Mensagem       string          `json:"mensagem"`
	Lida           bool            `json:"lida"`
	CriadoEm       time.Time       `json:"criado_em"`
}
