package controllers

import (
	"net/http"
	"time"

	"atendimento-http-service/internal/app/middleware"
	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceEntregaController defines the basket-delivery controller interface
type InterfaceEntregaController interface {
	GetEntregas()
	GetEntrega()
	CreateEntrega()
	UpdateEntrega()
	DeleteEntrega()
	ResumoMensal()
}

// EntregaController handles basket-delivery requests
type EntregaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEntregaController creates a new basket-delivery controller
func NewEntregaController(ctx *gin.Context, container *container.ServiceContainer) *EntregaController {
	return &EntregaController{
		Ctx:       ctx,
		Container: container,
	}
}

// EntregaRequest is the basket-delivery payload
type EntregaRequest struct {
	FamiliaID   uint   `json:"familia_id" binding:"required" example:"1"`
	DataEntrega string `json:"data_entrega" binding:"required" example:"2024-03-09"` // YYYY-MM-DD
	Observacoes string `json:"observacoes"`
}

// HandleEntregaFunc returns a Gin handler dispatching basket-delivery methods
func HandleEntregaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEntregaController(ctx, container)

		switch method {
		case "getEntregas":
			controller.GetEntregas()
		case "getEntrega":
			controller.GetEntrega()
		case "createEntrega":
			controller.CreateEntrega()
		case "updateEntrega":
			controller.UpdateEntrega()
		case "deleteEntrega":
			controller.DeleteEntrega()
		case "resumoMensal":
			controller.ResumoMensal()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetEntregas lists deliveries
// @Summary      Listar entregas de cesta
// @Description  Lista entregas com filtros por família, período e busca textual
// @Tags         EntregaCesta
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        familia_id query int false "Filtra por família"
// @Param        data_inicio query string false "Data inicial (YYYY-MM-DD)"
// @Param        data_fim query string false "Data final (YYYY-MM-DD), inclusiva"
// @Param        search query string false "Busca em nome da família e observações"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /entregas-cestas [get]
func (c *EntregaController) GetEntregas() {
	page, pageSize := parsePagination(c.Ctx)

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

	filtros := services.EntregaFiltros{
		FamiliaID:  parseUintQuery(c.Ctx, "familia_id"),
		DataInicio: dataInicio,
		DataFim:    dataFim,
		Busca:      c.Ctx.Query("search"),
		Ordering:   c.Ctx.Query("ordering"),
	}

	entregaService := c.Container.GetService("entrega").(services.InterfaceEntregaService)
	entregas, total, err := entregaService.GetAllEntregas(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar entregas: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, entregas))
}

// 2. GetEntrega fetches one delivery
// @Summary      Detalhar entrega
// @Description  Retorna uma entrega pelo ID
// @Tags         EntregaCesta
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da entrega"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /entregas-cestas/{id} [get]
func (c *EntregaController) GetEntrega() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de entrega inválido")
		return
	}

	entregaService := c.Container.GetService("entrega").(services.InterfaceEntregaService)
	entrega, err := entregaService.GetEntregaByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, entrega)
}

// 3. CreateEntrega creates a delivery
// @Summary      Criar entrega
// @Description  Registra uma entrega de cesta; uma por família por mês
// @Tags         EntregaCesta
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        entrega body EntregaRequest true "Dados da entrega"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /entregas-cestas [post]
func (c *EntregaController) CreateEntrega() {
	var req EntregaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	dataEntrega, err := time.Parse("2006-01-02", req.DataEntrega)
	if err != nil {
		response.ParamError(c.Ctx, "data_entrega inválida, use o formato YYYY-MM-DD")
		return
	}

	entrega := &models.EntregaCesta{
		FamiliaID:   req.FamiliaID,
		DataEntrega: dataEntrega,
		Observacoes: req.Observacoes,
	}

	entregaService := c.Container.GetService("entrega").(services.InterfaceEntregaService)
	if err := entregaService.CreateEntrega(entrega, middleware.CurrentUserID(c.Ctx)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrEntregaMesDuplicada, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, entrega)
}

// 4. UpdateEntrega partially updates a delivery
// @Summary      Atualizar entrega
// @Description  Atualiza os campos informados de uma entrega, revalidando a regra mensal
// @Tags         EntregaCesta
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da entrega"
// @Param        entrega body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /entregas-cestas/{id} [put]
func (c *EntregaController) UpdateEntrega() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de entrega inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	if valor, ok := req["observacoes"]; ok {
		updates["observacoes"] = valor
	}
	if valor, ok := req["familia_id"].(float64); ok {
		updates["familia_id"] = uint(valor)
	}
	if valor, ok := req["data_entrega"].(string); ok {
		dataEntrega, err := time.Parse("2006-01-02", valor)
		if err != nil {
			response.ParamError(c.Ctx, "data_entrega inválida, use o formato YYYY-MM-DD")
			return
		}
		updates["data_entrega"] = dataEntrega
	}

	entregaService := c.Container.GetService("entrega").(services.InterfaceEntregaService)
	entrega, err := entregaService.UpdateEntrega(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrEntregaMesDuplicada, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, entrega)
}

// 5. DeleteEntrega removes a delivery
// @Summary      Excluir entrega
// @Description  Exclui uma entrega de cesta
// @Tags         EntregaCesta
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da entrega"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /entregas-cestas/{id} [delete]
func (c *EntregaController) DeleteEntrega() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de entrega inválido")
		return
	}

	entregaService := c.Container.GetService("entrega").(services.InterfaceEntregaService)
	if err := entregaService.DeleteEntrega(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir entrega: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. ResumoMensal aggregates deliveries per calendar month
// @Summary      Resumo mensal de entregas
// @Description  Total de entregas por mês/ano, mais recente primeiro
// @Tags         EntregaCesta
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /entregas-cestas/resumo-mensal [get]
func (c *EntregaController) ResumoMensal() {
	entregaService := c.Container.GetService("entrega").(services.InterfaceEntregaService)
	resumo, err := entregaService.ResumoMensal()
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao montar o resumo mensal: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, resumo)
}
