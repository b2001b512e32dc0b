package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/willjrcristo/mentoria-api/internal/domain"
)

const segredoTeste = "segredo-de-teste-do-supabase"

// tokenAssinado gera um token HS256 no formato que o Supabase emite.
func tokenAssinado(t *testing.T, sub, role string, expiraEm time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": time.Now().Add(expiraEm).Unix(),
		"app_metadata": map[string]interface{}{
			"role": role,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString([]byte(segredoTeste))
	assert.NoError(t, err)
	return assinado
}

func TestValidador_Validar(t *testing.T) {
	v := NewValidador(segredoTeste)

	t.Run("token válido devolve sub e papel", func(t *testing.T) {
		token := tokenAssinado(t, "user-123", "mentor", time.Hour)

		claims, err := v.Validar(token)

		assert.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.Equal(t, "mentor", claims.AppMetadata.Role)
	})

	t.Run("token expirado é rejeitado", func(t *testing.T) {
		token := tokenAssinado(t, "user-123", "mentor", -time.Hour)

		_, err := v.Validar(token)
		assert.Error(t, err)
	})

	t.Run("token assinado com outro segredo é rejeitado", func(t *testing.T) {
		outro := NewValidador("outro-segredo")
		token := tokenAssinado(t, "user-123", "mentor", time.Hour)

		_, err := outro.Validar(token)
		assert.Error(t, err)
	})
}

func TestMiddleware(t *testing.T) {
	v := NewValidador(segredoTeste)

	// Handler final que expõe o que o middleware colocou no contexto.
	var usuarioVisto string
	var papelVisto domain.Papel
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		usuarioVisto = UsuarioDoContexto(r.Context())
		papelVisto = PapelDoContexto(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("injeta usuário e papel no contexto", func(t *testing.T) {
		token := tokenAssinado(t, "user-123", "mentor", time.Hour)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		v.Middleware(final).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "user-123", usuarioVisto)
		assert.Equal(t, domain.PapelMentor, papelVisto)
	})

	t.Run("papel desconhecido vira mentorado", func(t *testing.T) {
		token := tokenAssinado(t, "user-456", "superuser", time.Hour)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		v.Middleware(final).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.PapelMentorado, papelVisto)
	})

	t.Run("sem o header Authorization responde 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()

		v.Middleware(final).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token inválido responde 401", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer nao-e-um-jwt")
		rr := httptest.NewRecorder()

		v.Middleware(final).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestExigirPapel(t *testing.T) {
	v := NewValidador(segredoTeste)
	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protegido := v.Middleware(ExigirPapel(domain.PapelMentor)(final))

	t.Run("mentor acessa rota de mentor", func(t *testing.T) {
		token := tokenAssinado(t, "user-1", "mentor", time.Hour)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protegido.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("admin sempre passa", func(t *testing.T) {
		token := tokenAssinado(t, "user-2", "admin", time.Hour)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protegido.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("mentorado é barrado com 403", func(t *testing.T) {
		token := tokenAssinado(t, "user-3", "mentorado", time.Hour)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		protegido.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
