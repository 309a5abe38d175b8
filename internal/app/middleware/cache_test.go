package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestCacheServeRepetido(t *testing.T) {
	gin.SetMode(gin.TestMode)
	PurgeCache()
	t.Cleanup(PurgeCache)

	atendimentos := 0
	router := gin.New()
	router.GET("/cacheada", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		atendimentos++
		c.JSON(http.StatusOK, gin.H{"atendimento": atendimentos})
	})

	primeira := httptest.NewRecorder()
	router.ServeHTTP(primeira, httptest.NewRequest(http.MethodGet, "/cacheada", nil))
	segunda := httptest.NewRecorder()
	router.ServeHTTP(segunda, httptest.NewRequest(http.MethodGet, "/cacheada", nil))

	if atendimentos != 1 {
		t.Fatalf("handler deveria atender uma vez, atendeu %d", atendimentos)
	}
	if primeira.Body.String() != segunda.Body.String() {
		t.Fatalf("resposta cacheada difere: %s vs %s", primeira.Body.String(), segunda.Body.String())
	}
}

func TestCacheNaoCacheiaErro(t *testing.T) {
	gin.SetMode(gin.TestMode)
	PurgeCache()
	t.Cleanup(PurgeCache)

	atendimentos := 0
	router := gin.New()
	router.GET("/instavel", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		atendimentos++
		if atendimentos == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"erro": true})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/instavel", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/instavel", nil))

	if atendimentos != 2 {
		t.Fatalf("resposta de erro não deveria ser cacheada, atendimentos: %d", atendimentos)
	}
}

func TestCacheByParamsChavesDistintas(t *testing.T) {
	gin.SetMode(gin.TestMode)
	PurgeCache()
	t.Cleanup(PurgeCache)

	atendimentos := 0
	router := gin.New()
	router.GET("/parametrizada", CacheByParams(time.Minute, "familia_id"), func(c *gin.Context) {
		atendimentos++
		c.JSON(http.StatusOK, gin.H{"familia": c.Query("familia_id"), "atendimento": atendimentos})
	})

	for i := 0; i < 2; i++ {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/parametrizada?familia_id=1", nil))
		if recorder.Code != http.StatusOK {
			t.Fatalf("status inesperado %d", recorder.Code)
		}
	}
	if atendimentos != 1 {
		t.Fatalf("mesmo parâmetro deveria usar o cache, atendimentos: %d", atendimentos)
	}

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/parametrizada?familia_id="+strconv.Itoa(2), nil))
	if atendimentos != 2 {
		t.Fatalf("parâmetro diferente deveria furar o cache, atendimentos: %d", atendimentos)
	}
}
