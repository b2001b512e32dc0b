// Package auth valida os JWTs de sessão emitidos pelo Supabase (HS256 com
// segredo compartilhado) e injeta a identidade do usuário no contexto da
// requisição.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

type chaveContexto string

const (
	chaveUsuarioID chaveContexto = "usuario_id"
	chavePapel     chaveContexto = "papel"
)

// Claims são as claims relevantes do token do Supabase. O papel do usuário
// vem em app_metadata.role; o sub é o ID do perfil.
type Claims struct {
	jwt.RegisteredClaims
	AppMetadata struct {
		Role string `json:"role"`
	} `json:"app_metadata"`
}

// Validador confere assinatura e validade dos tokens.
type Validador struct {
	segredo []byte
}

// NewValidador cria o validador com o segredo HS256 do projeto Supabase.
func NewValidador(segredo string) *Validador {
	return &Validador{segredo: []byte(segredo)}
}

// Validar devolve as claims de um token válido.
func (v *Validador) Validar(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return v.segredo, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}

// Middleware exige um Bearer token válido e resolve o papel do usuário uma
// única vez, aqui na entrada, em vez de comparações de string espalhadas
// pelos handlers.
func (v *Validador) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cabecalho := r.Header.Get("Authorization")
		if !strings.HasPrefix(cabecalho, "Bearer ") {
			http.Error(w, `{"success":false,"error":"token de autenticação ausente"}`, http.StatusUnauthorized)
			return
		}

		claims, err := v.Validar(strings.TrimPrefix(cabecalho, "Bearer "))
		if err != nil {
			http.Error(w, `{"success":false,"error":"token de autenticação inválido"}`, http.StatusUnauthorized)
			return
		}

		papel := domain.Papel(claims.AppMetadata.Role)
		if !domain.PapelValido(string(papel)) {
			papel = domain.PapelMentorado
		}

		next.ServeHTTP(w, r.WithContext(ComUsuario(r.Context(), claims.Subject, papel)))
	})
}

// ExigirPapel restringe a rota a um papel específico (admin sempre passa).
func ExigirPapel(papel domain.Papel) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atual := PapelDoContexto(r.Context())
			if atual != papel && atual != domain.PapelAdmin {
				http.Error(w, `{"success":false,"error":"acesso negado para este papel"}`, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ComUsuario injeta a identidade no contexto. O middleware usa após validar
// o token; testes de handler usam para simular uma sessão.
func ComUsuario(ctx context.Context, usuarioID string, papel domain.Papel) context.Context {
	ctx = context.WithValue(ctx, chaveUsuarioID, usuarioID)
	return context.WithValue(ctx, chavePapel, papel)
}

// UsuarioDoContexto devolve o ID do usuário autenticado ("" se ausente).
func UsuarioDoContexto(ctx context.Context) string {
	id, _ := ctx.Value(chaveUsuarioID).(string)
	return id
}

// PapelDoContexto devolve o papel do usuário autenticado.
func PapelDoContexto(ctx context.Context) domain.Papel {
	papel, _ := ctx.Value(chavePapel).(domain.Papel)
	return papel
}
