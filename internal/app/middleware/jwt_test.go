package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func novoTokenDeTeste(t *testing.T, tipo string) string {
	t.Helper()
	cfg := &config.Config{EnvType: "LOCAL", JWTSecretKey: "chave-de-teste"}
	InitAuthMiddleware(cfg, nil)

	usuario := &models.Usuario{
		ID:        7,
		Email:     "ana@prefeitura.gov.br",
		Nome:      "Ana",
		Sobrenome: "Lima",
		Tipo:      tipo,
		Ativo:     true,
	}

	token, err := services.NewJWTService(cfg, nil).GenerateToken(usuario)
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}
	return token
}

func TestAuthenticationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	token := novoTokenDeTeste(t, "atendente")

	router := gin.New()
	router.GET("/protegida", Authentication(), func(c *gin.Context) {
		id := CurrentUserID(c)
		if id == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": "sem usuário"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": *id})
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("token válido deveria passar, status %d: %s", recorder.Code, recorder.Body.String())
	}

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/protegida", nil))
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("sem cabeçalho deveria retornar 401, status %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer token-adulterado")
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("token inválido deveria retornar 401, status %d", recorder.Code)
	}
}

func TestAuthenticateAdminExigePerfil(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin", AuthenticateAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+novoTokenDeTeste(t, "atendente"))
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("atendente deveria receber 403, status %d", recorder.Code)
	}

	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+novoTokenDeTeste(t, "admin"))
	router.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("admin deveria passar, status %d: %s", recorder.Code, recorder.Body.String())
	}
}
