package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/willjrcristo/mentoria-api/internal/service"
)

// Todas as respostas da API seguem o envelope {"success": bool, ...}:
// sucesso carrega o payload, falha carrega "error" (e opcionalmente
// "validation" ou "stripeError").

func responderJSON(w http.ResponseWriter, code int, payload interface{}) {
	resposta, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Falha ao serializar resposta JSON", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"erro interno"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(resposta)
}

func responderSucesso(w http.ResponseWriter, code int, dados map[string]interface{}) {
	payload := map[string]interface{}{"success": true}
	for k, v := range dados {
		payload[k] = v
	}
	responderJSON(w, code, payload)
}

func responderErro(w http.ResponseWriter, code int, mensagem string) {
	slog.Error("Erro na API", "code", code, "message", mensagem)
	responderJSON(w, code, map[string]interface{}{"success": false, "error": mensagem})
}

// responderErroServico centraliza o mapeamento erro→status. Erros da
// Stripe voltam com type/code/message intactos, para o modal de erro do
// front-end; erros de banco viram 500 genérico com a mensagem anexada.
func responderErroServico(w http.ResponseWriter, err error) {
	var erroStripe *service.ErroStripe
	if errors.As(err, &erroStripe) {
		code := erroStripe.HTTPStatus
		if code == 0 {
			code = http.StatusBadGateway
		}
		slog.Error("Erro da Stripe", "type", erroStripe.Tipo, "code", erroStripe.Codigo, "message", erroStripe.Mensagem)
		responderJSON(w, code, map[string]interface{}{
			"success":     false,
			"error":       erroStripe.Mensagem,
			"stripeError": erroStripe,
		})
		return
	}

	var etapa *service.ErroEtapaInvalida
	switch {
	case errors.As(err, &etapa):
		responderJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   err.Error(),
			"etapa":   etapa.Etapa,
		})
	case errors.Is(err, service.ErrPerfilNaoEncontrado),
		errors.Is(err, service.ErrCursoNaoEncontrado),
		errors.Is(err, service.ErrMatriculaNaoEncontrada),
		errors.Is(err, service.ErrAgendamentoNaoEncontrado):
		responderErro(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDadosInvalidos),
		errors.Is(err, service.ErrContaObrigatoria),
		errors.Is(err, service.ErrConteudoInvalido),
		errors.Is(err, service.ErrProgressoInvalido),
		errors.Is(err, service.ErrCursoSemPreco),
		errors.Is(err, service.ErrAutoSeguir),
		errors.Is(err, service.ErrSlotInvalido),
		errors.Is(err, service.ErrBase64Invalido),
		errors.Is(err, service.ErrArquivoMuitoGrande),
		errors.Is(err, service.ErrTipoArquivoInvalido),
		errors.Is(err, service.ErrDimensoesInsuficientes):
		responderErro(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrMatriculaDuplicada),
		errors.Is(err, service.ErrEmailJaCadastrado):
		responderErro(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrCursoDeOutroMentor):
		responderErro(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrMentorSemConta),
		errors.Is(err, service.ErrPerfilSemConta):
		responderErro(w, http.StatusUnprocessableEntity, err.Error())
	default:
		responderErro(w, http.StatusInternalServerError, err.Error())
	}
}
