package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/willjrcristo/mentoria-api/internal/mailer"
)

// BoasVindasService envia o e-mail de boas-vindas.
type BoasVindasService interface {
	EnviarBoasVindas(ctx context.Context, nome, email string, mentor bool) mailer.ResultadoEnvio
}

// EmailHandler expõe o disparo de boas-vindas e as rotas de diagnóstico
// /api/test-email/* (úteis para conferir templates e credenciais SMTP sem
// passar pelos fluxos reais).
type EmailHandler struct {
	boasVindas BoasVindasService
	mailer     *mailer.Mailer
	validate   *validator.Validate
}

// NewEmailHandler cria o handler de e-mails.
func NewEmailHandler(boasVindas BoasVindasService, m *mailer.Mailer) *EmailHandler {
	return &EmailHandler{boasVindas: boasVindas, mailer: m, validate: validator.New()}
}

type corpoBoasVindas struct {
	Nome   string `json:"nome" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Mentor bool   `json:"mentor"`
}

// @Summary      Envia o e-mail de boas-vindas
// @Tags         email
// @Accept       json
// @Produce      json
// @Param        dados  body  corpoBoasVindas  true  "Destinatário"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/email/boas-vindas [post]
func (h *EmailHandler) BoasVindas(w http.ResponseWriter, r *http.Request) {
	var corpo corpoBoasVindas
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	resultado := h.boasVindas.EnviarBoasVindas(r.Context(), corpo.Nome, corpo.Email, corpo.Mentor)
	responderSucesso(w, http.StatusOK, map[string]interface{}{"notification": resultado})
}

type corpoTesteEmail struct {
	Para string            `json:"para" validate:"required,email"`
	Vars map[string]string `json:"vars"`
}

// TesteEmail envia qualquer template conhecido para um destinatário
// arbitrário. Rota de diagnóstico; o resultado do envio volta como dado,
// igual às rotas reais.
func (h *EmailHandler) TesteEmail(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, "template")
	if !mailer.TemplateExiste(templateID) {
		responderErro(w, http.StatusNotFound, "Template desconhecido: "+templateID)
		return
	}

	var corpo corpoTesteEmail
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	resultado := h.mailer.Despachar(templateID, corpo.Para, corpo.Vars)
	responderSucesso(w, http.StatusOK, map[string]interface{}{"notification": resultado})
}
