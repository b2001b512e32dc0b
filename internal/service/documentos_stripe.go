package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // registra o decoder para image.DecodeConfig
	_ "image/png"  // idem
	"log/slog"

	"github.com/stripe/stripe-go/v78"
)

// Limites de validação do upload de documentos de identidade. A validação
// acontece antes de qualquer chamada de rede: arquivo inválido nunca sai
// do processo.
const (
	TamanhoMaximoDocumento = 5_242_880 // 5MB
	DimensaoMinimaImagem   = 1000      // pixels, lado menor
)

// Erros de validação do documento.
var (
	ErrArquivoMuitoGrande     = errors.New("arquivo excede o limite de 5MB")
	ErrTipoArquivoInvalido    = errors.New("tipo de arquivo inválido: apenas JPEG, PNG ou PDF")
	ErrDimensoesInsuficientes = errors.New("imagem precisa ter no mínimo 1000x1000 pixels")
	ErrBase64Invalido         = errors.New("payload base64 inválido")
	ErrSlotInvalido           = errors.New("slot de documento inválido: use front, back ou additional")
)

// ErroContaVerificada sinaliza que a conta já passou pela verificação e a
// Stripe não aceita mais documentos. O handler expõe isso como o flag
// isVerifiedError da resposta.
type ErroContaVerificada struct{}

func (*ErroContaVerificada) Error() string {
	return "conta já verificada; novos documentos não são aceitos"
}

// Slots de documento aceitos pela verificação da Stripe.
const (
	SlotFrente    = "front"
	SlotVerso     = "back"
	SlotAdicional = "additional"
)

var tiposAceitos = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

// DocumentoService envia documentos de identidade para a Stripe Files API
// e os associa aos campos de verificação da conta conectada.
type DocumentoService struct {
	clients *StripeClients
}

// NewDocumentoService cria o serviço de documentos.
func NewDocumentoService(clients *StripeClients) *DocumentoService {
	return &DocumentoService{clients: clients}
}

// ValidarArquivo aplica as três validações locais, nesta ordem: tamanho,
// MIME e, para imagens, dimensões mínimas.
func ValidarArquivo(mimeType string, dados []byte) error {
	if len(dados) > TamanhoMaximoDocumento {
		return ErrArquivoMuitoGrande
	}
	if !tiposAceitos[mimeType] {
		return ErrTipoArquivoInvalido
	}
	if mimeType == "image/jpeg" || mimeType == "image/png" {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(dados))
		if err != nil {
			return fmt.Errorf("decodificar imagem: %w", err)
		}
		if cfg.Width < DimensaoMinimaImagem || cfg.Height < DimensaoMinimaImagem {
			return ErrDimensoesInsuficientes
		}
	}
	return nil
}

// EnviarDocumento valida e sobe o arquivo (recebido como base64) para a
// Files API, na conta conectada. Retorna o ID do arquivo na Stripe.
func (s *DocumentoService) EnviarDocumento(ctx context.Context, accountID, nomeArquivo, mimeType, payloadBase64 string) (string, error) {
	if accountID == "" {
		return "", ErrContaObrigatoria
	}

	dados, err := base64.StdEncoding.DecodeString(payloadBase64)
	if err != nil {
		return "", ErrBase64Invalido
	}
	if err := ValidarArquivo(mimeType, dados); err != nil {
		return "", err
	}

	params := &stripe.FileParams{
		Purpose:    stripe.String(string(stripe.FilePurposeIdentityDocument)),
		FileReader: bytes.NewReader(dados),
		Filename:   stripe.String(nomeArquivo),
	}
	params.Context = ctx
	params.SetStripeAccount(accountID)

	arquivo, err := s.clients.Arquivos.New(params)
	if err != nil {
		slog.Error("Falha no upload do documento", "account", accountID, "error", err)
		return "", converterErroStripe(err)
	}

	slog.Info("Documento enviado para a Stripe", "account", accountID, "file", arquivo.ID)
	return arquivo.ID, nil
}

// AssociarDocumento vincula um arquivo já enviado ao slot de verificação
// da pessoa física da conta (front/back/additional). Se a conta já estiver
// verificada, retorna ErroContaVerificada sem tentar a associação.
func (s *DocumentoService) AssociarDocumento(ctx context.Context, accountID, fileID, slot string) error {
	if accountID == "" {
		return ErrContaObrigatoria
	}

	getParams := &stripe.AccountParams{}
	getParams.Context = ctx
	conta, err := s.clients.Contas.GetByID(accountID, getParams)
	if err != nil {
		return converterErroStripe(err)
	}
	if conta.Individual != nil && conta.Individual.Verification != nil &&
		string(conta.Individual.Verification.Status) == "verified" {
		return &ErroContaVerificada{}
	}

	verificacao := &stripe.PersonVerificationParams{}
	switch slot {
	case SlotFrente:
		verificacao.Document = &stripe.PersonVerificationDocumentParams{Front: stripe.String(fileID)}
	case SlotVerso:
		verificacao.Document = &stripe.PersonVerificationDocumentParams{Back: stripe.String(fileID)}
	case SlotAdicional:
		verificacao.AdditionalDocument = &stripe.PersonVerificationDocumentParams{Front: stripe.String(fileID)}
	default:
		return ErrSlotInvalido
	}

	params := &stripe.AccountParams{
		Individual: &stripe.PersonParams{Verification: verificacao},
	}
	params.Context = ctx

	if _, err := s.clients.Contas.Update(accountID, params); err != nil {
		slog.Error("Falha ao associar documento", "account", accountID, "file", fileID, "slot", slot, "error", err)
		return converterErroStripe(err)
	}

	slog.Info("Documento associado à verificação", "account", accountID, "file", fileID, "slot", slot)
	return nil
}
