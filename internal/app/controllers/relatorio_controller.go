package controllers

import (
	"time"

	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceRelatorioController defines the reporting controller interface
type InterfaceRelatorioController interface {
	ListRelatorios()
	FrequenciaMembros()
	EntregasCestas()
	GradeRoupas()
	ProgramasSociais()
}

// RelatorioController handles reporting requests
type RelatorioController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewRelatorioController creates a new reporting controller
func NewRelatorioController(ctx *gin.Context, container *container.ServiceContainer) *RelatorioController {
	return &RelatorioController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleRelatorioFunc returns a Gin handler dispatching reporting methods
func HandleRelatorioFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewRelatorioController(ctx, container)

		switch method {
		case "listRelatorios":
			controller.ListRelatorios()
		case "frequenciaMembros":
			controller.FrequenciaMembros()
		case "entregasCestas":
			controller.EntregasCestas()
		case "gradeRoupas":
			controller.GradeRoupas()
		case "programasSociais":
			controller.ProgramasSociais()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// invalidateRelatorioCache drops cached report payloads after a write that
// changes their inputs. Cache errors are ignored.
func invalidateRelatorioCache(container *container.ServiceContainer) {
	redisService := container.GetService("redis").(services.InterfaceRedisService)
	_ = redisService.InvalidateRelatorios()
}

// 1. ListRelatorios returns the report catalog
// @Summary      Listar relatórios
// @Description  Lista os relatórios disponíveis e seus parâmetros
// @Tags         Relatorio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /relatorios [get]
func (c *RelatorioController) ListRelatorios() {
	relatorioService := c.Container.GetService("relatorio").(services.InterfaceRelatorioService)
	response.Success(c.Ctx, relatorioService.ListRelatorios())
}

// 2. FrequenciaMembros builds the member frequency report
// @Summary      Frequência de membros
// @Description  Frequência de cada membro ativo nos encontros do período informado
// @Tags         Relatorio
// @Produce      json
// @Security     BearerAuth
// @Param        data_inicio query string true "Data inicial (YYYY-MM-DD)"
// @Param        data_fim query string true "Data final (YYYY-MM-DD)"
// @Param        membro_id query int false "Restringe a um membro"
// @Param        familia_id query int false "Restringe a uma família"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /relatorios/frequencia-membros [get]
func (c *RelatorioController) FrequenciaMembros() {
	dataInicio, err := parseDateQuery(c.Ctx, "data_inicio")
	if err != nil {
		response.ParamError(c.Ctx, "data_inicio inválida, use o formato YYYY-MM-DD")
		return
	}
	dataFim, err := parseDateQuery(c.Ctx, "data_fim")
	if err != nil {
		response.ParamError(c.Ctx, "data_fim inválida, use o formato YYYY-MM-DD")
		return
	}
	if dataInicio == nil || dataFim == nil {
		response.ParamError(c.Ctx, "Os parâmetros data_inicio e data_fim são obrigatórios")
		return
	}

	relatorioService := c.Container.GetService("relatorio").(services.InterfaceRelatorioService)
	resultado, err := relatorioService.FrequenciaMembros(
		*dataInicio, *dataFim,
		parseUintQuery(c.Ctx, "membro_id"),
		parseUintQuery(c.Ctx, "familia_id"),
	)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao montar o relatório de frequência: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, resultado)
}

// 3. EntregasCestas builds the deliveries-per-month report
// @Summary      Entregas por período
// @Description  Entregas de cesta do período agrupadas por mês/ano
// @Tags         Relatorio
// @Produce      json
// @Security     BearerAuth
// @Param        data_inicio query string true "Data inicial (YYYY-MM-DD)"
// @Param        data_fim query string true "Data final (YYYY-MM-DD)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /relatorios/entregas-cestas [get]
func (c *RelatorioController) EntregasCestas() {
	dataInicio, err := parseDateQuery(c.Ctx, "data_inicio")
	if err != nil {
		response.ParamError(c.Ctx, "data_inicio inválida, use o formato YYYY-MM-DD")
		return
	}
	dataFim, err := parseDateQuery(c.Ctx, "data_fim")
	if err != nil {
		response.ParamError(c.Ctx, "data_fim inválida, use o formato YYYY-MM-DD")
		return
	}
	if dataInicio == nil || dataFim == nil {
		response.ParamError(c.Ctx, "Os parâmetros data_inicio e data_fim são obrigatórios")
		return
	}

	relatorioService := c.Container.GetService("relatorio").(services.InterfaceRelatorioService)
	resultado, err := relatorioService.EntregasCestas(*dataInicio, *dataFim)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao montar o relatório de entregas: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, resultado)
}

// 4. GradeRoupas builds the clothing grid report
// @Summary      Grade de roupas
// @Description  Contagem de membros ativos por tamanho de camiseta, calça e número de calçado
// @Tags         Relatorio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /relatorios/grade-roupas [get]
func (c *RelatorioController) GradeRoupas() {
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)

	var cacheado services.GradeRoupas
	if err := redisService.GetRelatorio("grade_roupas", &cacheado); err == nil {
		response.Success(c.Ctx, &cacheado)
		return
	}

	relatorioService := c.Container.GetService("relatorio").(services.InterfaceRelatorioService)
	resultado, err := relatorioService.GradeRoupas()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao montar a grade de roupas: "+err.Error(), nil)
		return
	}

	// cache failures never block the response
	_ = redisService.CacheRelatorio("grade_roupas", resultado, 5*time.Minute)

	response.Success(c.Ctx, resultado)
}

// 5. ProgramasSociais builds the social-programs report
// @Summary      Programas sociais
// @Description  Contagem de famílias por programa social
// @Tags         Relatorio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /relatorios/programas-sociais [get]
func (c *RelatorioController) ProgramasSociais() {
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)

	var cacheado services.ProgramasSociais
	if err := redisService.GetRelatorio("programas_sociais", &cacheado); err == nil {
		response.Success(c.Ctx, &cacheado)
		return
	}

	relatorioService := c.Container.GetService("relatorio").(services.InterfaceRelatorioService)
	resultado, err := relatorioService.ProgramasSociais()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao montar o relatório de programas sociais: "+err.Error(), nil)
		return
	}

	_ = redisService.CacheRelatorio("programas_sociais", resultado, 5*time.Minute)

	response.Success(c.Ctx, resultado)
}
