package controllers

import (
	"net/http"

	"atendimento-http-service/internal/app/middleware"
	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfacePresencaController defines the attendance controller interface
type InterfacePresencaController interface {
	GetPresencas()
	GetPresenca()
	CreatePresenca()
	UpdatePresenca()
	DeletePresenca()
}

// PresencaController handles attendance requests
type PresencaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewPresencaController creates a new attendance controller
func NewPresencaController(ctx *gin.Context, container *container.ServiceContainer) *PresencaController {
	return &PresencaController{
		Ctx:       ctx,
		Container: container,
	}
}

// PresencaRequest is the attendance payload
type PresencaRequest struct {
	MembroID    uint   `json:"membro_id" binding:"required" example:"1"`
	EncontroID  uint   `json:"encontro_id" binding:"required" example:"1"`
	Presente    *bool  `json:"presente"`
	Observacoes string `json:"observacoes"`
}

// HandlePresencaFunc returns a Gin handler dispatching attendance methods
func HandlePresencaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPresencaController(ctx, container)

		switch method {
		case "getPresencas":
			controller.GetPresencas()
		case "getPresenca":
			controller.GetPresenca()
		case "createPresenca":
			controller.CreatePresenca()
		case "updatePresenca":
			controller.UpdatePresenca()
		case "deletePresenca":
			controller.DeletePresenca()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetPresencas lists attendance records
// @Summary      Listar presenças
// @Description  Lista presenças com filtros por membro, encontro, situação e busca textual
// @Tags         Presenca
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        presente query bool false "Filtra por presença"
// @Param        membro_id query int false "Filtra por membro"
// @Param        encontro_id query int false "Filtra por encontro"
// @Param        search query string false "Busca em membro, encontro e observações"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /presencas [get]
func (c *PresencaController) GetPresencas() {
	page, pageSize := parsePagination(c.Ctx)

	filtros := services.PresencaFiltros{
		Presente:   parseBoolQuery(c.Ctx, "presente"),
		MembroID:   parseUintQuery(c.Ctx, "membro_id"),
		EncontroID: parseUintQuery(c.Ctx, "encontro_id"),
		Busca:      c.Ctx.Query("search"),
		Ordering:   c.Ctx.Query("ordering"),
	}

	presencaService := c.Container.GetService("presenca").(services.InterfacePresencaService)
	presencas, total, err := presencaService.GetAllPresencas(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar presenças: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, presencas))
}

// 2. GetPresenca fetches one attendance record
// @Summary      Detalhar presença
// @Description  Retorna uma presença pelo ID
// @Tags         Presenca
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da presença"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /presencas/{id} [get]
func (c *PresencaController) GetPresenca() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de presença inválido")
		return
	}

	presencaService := c.Container.GetService("presenca").(services.InterfacePresencaService)
	presenca, err := presencaService.GetPresencaByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, presenca)
}

// 3. CreatePresenca creates an attendance record
// @Summary      Criar presença
// @Description  Registra a presença de um membro ativo em um encontro; uma por par membro/encontro
// @Tags         Presenca
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        presenca body PresencaRequest true "Dados da presença"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /presencas [post]
func (c *PresencaController) CreatePresenca() {
	var req PresencaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	presenca := &models.Presenca{
		MembroID:    req.MembroID,
		EncontroID:  req.EncontroID,
		Presente:    true,
		Observacoes: req.Observacoes,
	}
	if req.Presente != nil {
		presenca.Presente = *req.Presente
	}

	presencaService := c.Container.GetService("presenca").(services.InterfacePresencaService)
	if err := presencaService.CreatePresenca(presenca, middleware.CurrentUserID(c.Ctx)); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, presenca)
}

// 4. UpdatePresenca partially updates an attendance record
// @Summary      Atualizar presença
// @Description  Atualiza os campos informados de uma presença
// @Tags         Presenca
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da presença"
// @Param        presenca body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /presencas/{id} [put]
func (c *PresencaController) UpdatePresenca() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de presença inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"presente", "observacoes"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}

	presencaService := c.Container.GetService("presenca").(services.InterfacePresencaService)
	presenca, err := presencaService.UpdatePresenca(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao atualizar presença: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, presenca)
}

// 5. DeletePresenca removes an attendance record
// @Summary      Excluir presença
// @Description  Exclui uma presença
// @Tags         Presenca
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da presença"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /presencas/{id} [delete]
func (c *PresencaController) DeletePresenca() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de presença inválido")
		return
	}

	presencaService := c.Container.GetService("presenca").(services.InterfacePresencaService)
	if err := presencaService.DeletePresenca(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir presença: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
