package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int

type testEnv struct {
	db        *gorm.DB
	container *container.ServiceContainer
	router    *gin.Engine
}

// newTestEnv wires an in-memory database, the service container and a bare
// router without the auth middleware
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDBCounter++
	dsn := fmt.Sprintf("file:ctrltest%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Endereco{},
		&models.Familia{},
		&models.Responsavel{},
		&models.MembroFamilia{},
		&models.Turma{},
		&models.Encontro{},
		&models.Presenca{},
		&models.EntregaCesta{},
		&models.ConfiguracaoSistema{},
	)
	if err != nil {
		t.Fatalf("falha na migração do banco de teste: %v", err)
	}

	cfg := &config.Config{
		EnvType:      "LOCAL",
		JWTSecretKey: "chave-de-teste",
		MediaDir:     t.TempDir(),
	}
	serviceContainer := container.NewServiceContainer(db, cfg, nil)

	router := gin.New()
	api := router.Group("/api")
	api.POST("/auth/login", HandleJWTFunc(serviceContainer, "login"))
	api.GET("/ping", HandleHealthFunc(serviceContainer, "ping"))
	api.GET("/relatorios", HandleRelatorioFunc(serviceContainer, "listRelatorios"))
	api.GET("/relatorios/frequencia-membros", HandleRelatorioFunc(serviceContainer, "frequenciaMembros"))
	api.GET("/relatorios/entregas-cestas", HandleRelatorioFunc(serviceContainer, "entregasCestas"))
	api.POST("/turmas", HandleTurmaFunc(serviceContainer, "createTurma"))
	api.POST("/familias", HandleFamiliaFunc(serviceContainer, "createFamilia"))

	return &testEnv{db: db, container: serviceContainer, router: router}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("falha ao codificar o corpo: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("resposta não é JSON válido: %v (%s)", err, recorder.Body.String())
	}
	return envelope
}

func TestPing(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodGet, "/api/ping", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status esperado 200, obtido %d", recorder.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	usuario := models.Usuario{Email: "admin@teste.org", Nome: "Admin", Senha: "senha-forte", Tipo: models.TipoAdmin, Ativo: true}
	if err := env.db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	recorder := env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@teste.org",
		"senha": "senha-forte",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login válido: status esperado 200, obtido %d (%s)", recorder.Code, recorder.Body.String())
	}
	envelope := decodeEnvelope(t, recorder)
	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("resposta de login sem bloco de dados: %v", envelope)
	}
	if token, _ := data["token"].(string); token == "" {
		t.Fatalf("resposta de login sem token: %v", envelope)
	}

	recorder = env.request(t, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@teste.org",
		"senha": "senha-errada",
	})
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("senha errada: status esperado 401, obtido %d", recorder.Code)
	}

	// corpo sem e-mail é barrado na validação do binding
	recorder = env.request(t, http.MethodPost, "/api/auth/login", gin.H{"senha": "x"})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("corpo inválido: status esperado 400, obtido %d", recorder.Code)
	}
}

func TestRelatorioFrequenciaParametrosObrigatorios(t *testing.T) {
	env := newTestEnv(t)

	casos := []string{
		"/api/relatorios/frequencia-membros",
		"/api/relatorios/frequencia-membros?data_inicio=2025-01-01",
		"/api/relatorios/frequencia-membros?data_inicio=2025-01-01&data_fim=nao-e-data",
		"/api/relatorios/entregas-cestas",
	}
	for _, caminho := range casos {
		recorder := env.request(t, http.MethodGet, caminho, nil)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("%s: status esperado 400, obtido %d", caminho, recorder.Code)
		}
		envelope := decodeEnvelope(t, recorder)
		if int(envelope["code"].(float64)) != code.ErrValidation {
			t.Errorf("%s: código esperado %d, obtido %v", caminho, code.ErrValidation, envelope["code"])
		}
	}

	recorder := env.request(t, http.MethodGet, "/api/relatorios/frequencia-membros?data_inicio=2025-01-01&data_fim=2025-12-31", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("período válido: status esperado 200, obtido %d (%s)", recorder.Code, recorder.Body.String())
	}
}

func TestCreateTurmaEndpointFaixaInvalida(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/api/turmas", gin.H{
		"nome":         "Turma invertida",
		"idade_minima": 9,
		"idade_maxima": 5,
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status esperado 400, obtido %d (%s)", recorder.Code, recorder.Body.String())
	}

	recorder = env.request(t, http.MethodPost, "/api/turmas", gin.H{
		"nome":         "3 a 5 anos",
		"idade_minima": 3,
		"idade_maxima": 5,
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("turma válida: status esperado 200, obtido %d (%s)", recorder.Code, recorder.Body.String())
	}
}

func TestCreateFamiliaEndpoint(t *testing.T) {
	env := newTestEnv(t)

	recorder := env.request(t, http.MethodPost, "/api/familias", gin.H{
		"nome": "Família Nova",
		"endereco": gin.H{
			"rua":    "Rua das Flores",
			"numero": "123",
			"bairro": "Centro",
			"cidade": "Campinas",
			"estado": "SP",
			"cep":    "13000-000",
		},
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status esperado 200, obtido %d (%s)", recorder.Code, recorder.Body.String())
	}

	var totalFamilias, totalEnderecos int64
	env.db.Model(&models.Familia{}).Count(&totalFamilias)
	env.db.Model(&models.Endereco{}).Count(&totalEnderecos)
	if totalFamilias != 1 || totalEnderecos != 1 {
		t.Fatalf("esperados 1 família e 1 endereço, obtidos %d e %d", totalFamilias, totalEnderecos)
	}

	// endereço incompleto é barrado na validação do binding
	recorder = env.request(t, http.MethodPost, "/api/familias", gin.H{
		"nome":     "Família Sem Endereço",
		"endereco": gin.H{"rua": "Rua X"},
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("endereço incompleto: status esperado 400, obtido %d", recorder.Code)
	}
}
