package controllers

import (
	"atendimento-http-service/internal/app/middleware"
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController reports service health
type HealthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthController creates a new health controller
func NewHealthController(ctx *gin.Context, container *container.ServiceContainer) *HealthController {
	return &HealthController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc returns a Gin handler dispatching health methods
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.CacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// Ping answers liveness probes
// @Summary      Ping
// @Description  Verifica se o serviço está no ar
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /ping [get]
func (c *HealthController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// Status reports database and cache connectivity
// @Summary      Status do serviço
// @Description  Verifica a conexão com o banco de dados e com o Redis
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/status [get]
func (c *HealthController) Status() {
	dbStatus := "up"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(); err != nil {
		redisStatus = "down"
	}

	response.Success(c.Ctx, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}

// CacheStats exposes the in-memory response cache contents
// @Summary      Estatísticas do cache
// @Description  Lista as entradas do cache de respostas em memória
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health/cache-stats [get]
func (c *HealthController) CacheStats() {
	response.Success(c.Ctx, middleware.CacheStats())
}
