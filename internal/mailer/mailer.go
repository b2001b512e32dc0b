// Package mailer renderiza e envia os e-mails transacionais da plataforma.
// Falha de envio nunca é fatal para a requisição que a originou: o
// resultado é reportado como dado (ResultadoEnvio) e registrado no log.
package mailer

import (
	"fmt"
	"log/slog"
)

// ResultadoEnvio descreve o desfecho de um envio individual. É o formato
// que as respostas da API expõem em notifications.mentor/.mentee.
type ResultadoEnvio struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Mailer é o despachante de e-mails: resolve o template, renderiza com as
// variáveis do evento e entrega ao transporte.
type Mailer struct {
	transporte Transporte
}

// New cria o despachante com o transporte informado.
func New(transporte Transporte) *Mailer {
	return &Mailer{transporte: transporte}
}

// Despachar renderiza o template identificado e envia para o destinatário.
// Retorna sempre um ResultadoEnvio preenchido; o erro nunca sobe.
func (m *Mailer) Despachar(templateID, para string, vars map[string]string) ResultadoEnvio {
	corpo, ok := corpos[templateID]
	if !ok {
		err := fmt.Sprintf("template desconhecido: %s", templateID)
		slog.Error("Template de e-mail inexistente", "template", templateID)
		return ResultadoEnvio{Success: false, Error: err}
	}

	assunto := Renderizar(assuntos[templateID], vars)
	html := Renderizar(corpo, vars)

	if err := m.transporte.Enviar(para, assunto, html); err != nil {
		slog.Error("Falha ao enviar e-mail", "template", templateID, "para", para, "error", err)
		return ResultadoEnvio{Success: false, Error: err.Error()}
	}

	slog.Info("E-mail enviado", "template", templateID, "para", para)
	return ResultadoEnvio{Success: true}
}
