package mailer

import (
	"strconv"

	"gopkg.in/gomail.v2"
)

// Transporte envia um e-mail já renderizado. A interface existe para os
// testes trocarem o SMTP real por um transporte em memória.
type Transporte interface {
	Enviar(para, assunto, corpoHTML string) error
}

// SMTPTransporte envia via SMTP com TLS implícito (porta 465).
type SMTPTransporte struct {
	dialer    *gomail.Dialer
	remetente string
}

// NewSMTPTransporte cria o transporte SMTP. Porta inválida cai na 465.
func NewSMTPTransporte(host, porta, usuario, senha, remetente string) *SMTPTransporte {
	p, err := strconv.Atoi(porta)
	if err != nil {
		p = 465
	}

	dialer := gomail.NewDialer(host, p, usuario, senha)
	dialer.SSL = p == 465

	return &SMTPTransporte{dialer: dialer, remetente: remetente}
}

func (t *SMTPTransporte) Enviar(para, assunto, corpoHTML string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", t.remetente)
	msg.SetHeader("To", para)
	msg.SetHeader("Subject", assunto)
	msg.SetBody("text/html", corpoHTML)

	return t.dialer.DialAndSend(msg)
}
