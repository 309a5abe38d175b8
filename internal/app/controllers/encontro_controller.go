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

// InterfaceEncontroController defines the meeting controller interface
type InterfaceEncontroController interface {
	GetEncontros()
	GetEncontro()
	CreateEncontro()
	UpdateEncontro()
	DeleteEncontro()
	GetEncontroPresencas()
	RegistrarPresencas()
}

// EncontroController handles meeting requests
type EncontroController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEncontroController creates a new meeting controller
func NewEncontroController(ctx *gin.Context, container *container.ServiceContainer) *EncontroController {
	return &EncontroController{
		Ctx:       ctx,
		Container: container,
	}
}

// EncontroRequest is the meeting payload
type EncontroRequest struct {
	Data      string `json:"data" binding:"required" example:"2024-03-09"` // YYYY-MM-DD
	Descricao string `json:"descricao" example:"Encontro semanal"`
	Ativo     *bool  `json:"ativo"`
}

// RegistrarPresencasRequest is the bulk attendance payload
type RegistrarPresencasRequest struct {
	Presencas []services.PresencaEntrada `json:"presencas" binding:"required,dive"`
}

// HandleEncontroFunc returns a Gin handler dispatching meeting methods
func HandleEncontroFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEncontroController(ctx, container)

		switch method {
		case "getEncontros":
			controller.GetEncontros()
		case "getEncontro":
			controller.GetEncontro()
		case "createEncontro":
			controller.CreateEncontro()
		case "updateEncontro":
			controller.UpdateEncontro()
		case "deleteEncontro":
			controller.DeleteEncontro()
		case "getEncontroPresencas":
			controller.GetEncontroPresencas()
		case "registrarPresencas":
			controller.RegistrarPresencas()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetEncontros lists meetings
// @Summary      Listar encontros
// @Description  Lista encontros com filtros por situação, período e busca textual
// @Tags         Encontro
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        ativo query bool false "Filtra por situação"
// @Param        data_inicio query string false "Data inicial (YYYY-MM-DD)"
// @Param        data_fim query string false "Data final (YYYY-MM-DD)"
// @Param        search query string false "Busca na descrição"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /encontros [get]
func (c *EncontroController) GetEncontros() {
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

	filtros := services.EncontroFiltros{
		Ativo:      parseBoolQuery(c.Ctx, "ativo"),
		DataInicio: dataInicio,
		DataFim:    dataFim,
		Busca:      c.Ctx.Query("search"),
		Ordering:   c.Ctx.Query("ordering"),
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	encontros, total, err := encontroService.GetAllEncontros(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar encontros: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, encontros))
}

// 2. GetEncontro fetches one meeting
// @Summary      Detalhar encontro
// @Description  Retorna um encontro pelo ID
// @Tags         Encontro
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do encontro"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /encontros/{id} [get]
func (c *EncontroController) GetEncontro() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de encontro inválido")
		return
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	encontro, err := encontroService.GetEncontroByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, encontro)
}

// 3. CreateEncontro creates a meeting
// @Summary      Criar encontro
// @Description  Cria um encontro; apenas um encontro por data é permitido
// @Tags         Encontro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        encontro body EncontroRequest true "Dados do encontro"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /encontros [post]
func (c *EncontroController) CreateEncontro() {
	var req EncontroRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		response.ParamError(c.Ctx, "data inválida, use o formato YYYY-MM-DD")
		return
	}

	encontro := &models.Encontro{
		Data:      data,
		Descricao: req.Descricao,
		Ativo:     true,
	}
	if req.Ativo != nil {
		encontro.Ativo = *req.Ativo
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	if err := encontroService.CreateEncontro(encontro); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrEncontroDataDuplicada, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, encontro)
}

// 4. UpdateEncontro partially updates a meeting
// @Summary      Atualizar encontro
// @Description  Atualiza os campos informados de um encontro, revalidando a unicidade da data
// @Tags         Encontro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do encontro"
// @Param        encontro body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /encontros/{id} [put]
func (c *EncontroController) UpdateEncontro() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de encontro inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"descricao", "ativo"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}
	if valor, ok := req["data"].(string); ok {
		data, err := time.Parse("2006-01-02", valor)
		if err != nil {
			response.ParamError(c.Ctx, "data inválida, use o formato YYYY-MM-DD")
			return
		}
		updates["data"] = data
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	encontro, err := encontroService.UpdateEncontro(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrEncontroDataDuplicada, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, encontro)
}

// 5. DeleteEncontro removes a meeting and its attendance records
// @Summary      Excluir encontro
// @Description  Exclui um encontro e as presenças registradas nele
// @Tags         Encontro
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do encontro"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /encontros/{id} [delete]
func (c *EncontroController) DeleteEncontro() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de encontro inválido")
		return
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	if err := encontroService.DeleteEncontro(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir encontro: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetEncontroPresencas lists the attendance records of a meeting
// @Summary      Presenças do encontro
// @Description  Lista as presenças registradas em um encontro
// @Tags         Encontro
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do encontro"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /encontros/{id}/presencas [get]
func (c *EncontroController) GetEncontroPresencas() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de encontro inválido")
		return
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	presencas, err := encontroService.GetPresencas(id)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar presenças do encontro: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, presencas)
}

// 7. RegistrarPresencas upserts attendance in bulk for a meeting
// @Summary      Registrar presenças
// @Description  Registra ou atualiza presenças em lote; cada entrada é processada individualmente
// @Tags         Encontro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do encontro"
// @Param        presencas body RegistrarPresencasRequest true "Lista de presenças"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /encontros/{id}/registrar-presencas [post]
func (c *EncontroController) RegistrarPresencas() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de encontro inválido")
		return
	}

	var req RegistrarPresencasRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	encontroService := c.Container.GetService("encontro").(services.InterfaceEncontroService)
	resultado, err := encontroService.RegistrarPresencas(id, req.Presencas, middleware.CurrentUserID(c.Ctx))
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, resultado)
}
