package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/willjrcristo/mentoria-api/internal/service"
)

// DocumentoService é a interface do fluxo de documentos de identidade.
type DocumentoService interface {
	EnviarDocumento(ctx context.Context, accountID, nomeArquivo, mimeType, payloadBase64 string) (string, error)
	AssociarDocumento(ctx context.Context, accountID, fileID, slot string) error
}

// DocumentoHandler expõe o upload e a associação de documentos em
// /api/stripe/documents. O corpo chega com o arquivo em base64; a
// validação (tamanho, MIME, dimensões) acontece antes de qualquer chamada
// à Stripe.
type DocumentoHandler struct {
	service  DocumentoService
	validate *validator.Validate
}

// NewDocumentoHandler cria o handler de documentos.
func NewDocumentoHandler(s DocumentoService) *DocumentoHandler {
	return &DocumentoHandler{service: s, validate: validator.New()}
}

// Routes define as rotas deste handler.
func (h *DocumentoHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Enviar)
	r.Post("/associate", h.Associar)
	return r
}

type corpoEnvioDocumento struct {
	AccountID   string `json:"account_id" validate:"required"`
	NomeArquivo string `json:"filename" validate:"required"`
	MimeType    string `json:"mime_type" validate:"required"`
	Base64      string `json:"data" validate:"required"`
}

// @Summary      Envia um documento de identidade
// @Description  Valida tamanho (até 5MB), tipo (JPEG/PNG/PDF) e dimensões mínimas (1000x1000 para imagens) antes de subir para a Stripe Files API
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        documento  body  corpoEnvioDocumento  true  "Arquivo em base64"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/stripe/documents [post]
func (h *DocumentoHandler) Enviar(w http.ResponseWriter, r *http.Request) {
	var corpo corpoEnvioDocumento
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	fileID, err := h.service.EnviarDocumento(r.Context(), corpo.AccountID, corpo.NomeArquivo, corpo.MimeType, corpo.Base64)
	if err != nil {
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusCreated, map[string]interface{}{"file_id": fileID})
}

type corpoAssociacao struct {
	AccountID string `json:"account_id" validate:"required"`
	FileID    string `json:"file_id" validate:"required"`
	Slot      string `json:"slot" validate:"required"`
}

// @Summary      Associa um documento enviado ao slot de verificação
// @Description  Vincula o arquivo ao campo front/back/additional da verificação da conta; conta já verificada responde com isVerifiedError
// @Tags         documentos
// @Accept       json
// @Produce      json
// @Param        associacao  body  corpoAssociacao  true  "Arquivo e slot"
// @Success      200  {object}  map[string]interface{}
// @Failure      409  {object}  map[string]interface{}
// @Router       /api/stripe/documents/associate [post]
func (h *DocumentoHandler) Associar(w http.ResponseWriter, r *http.Request) {
	var corpo corpoAssociacao
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		responderErro(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if err := h.validate.Struct(corpo); err != nil {
		responderErro(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.AssociarDocumento(r.Context(), corpo.AccountID, corpo.FileID, corpo.Slot)
	if err != nil {
		var verificada *service.ErroContaVerificada
		if errors.As(err, &verificada) {
			responderJSON(w, http.StatusConflict, map[string]interface{}{
				"success":         false,
				"error":           err.Error(),
				"isVerifiedError": true,
			})
			return
		}
		responderErroServico(w, err)
		return
	}
	responderSucesso(w, http.StatusOK, nil)
}
