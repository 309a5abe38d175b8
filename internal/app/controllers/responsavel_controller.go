package controllers

import (
	"net/http"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceResponsavelController defines the guardian controller interface
type InterfaceResponsavelController interface {
	GetResponsaveis()
	GetResponsavel()
	CreateResponsavel()
	UpdateResponsavel()
	DeleteResponsavel()
}

// ResponsavelController handles guardian requests
type ResponsavelController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewResponsavelController creates a new guardian controller
func NewResponsavelController(ctx *gin.Context, container *container.ServiceContainer) *ResponsavelController {
	return &ResponsavelController{
		Ctx:       ctx,
		Container: container,
	}
}

// ResponsavelRequest is the guardian payload
type ResponsavelRequest struct {
	NomeCompleto   string `json:"nome_completo" binding:"required" example:"Maria da Silva"`
	CPF            string `json:"cpf" example:"000.000.000-00"`
	Telefone       string `json:"telefone" binding:"required" example:"(11) 99999-0000"`
	DataNascimento string `json:"data_nascimento" binding:"required" example:"1985-03-21"` // YYYY-MM-DD
	Sexo           string `json:"sexo" binding:"required,oneof=M F O" example:"F"`
	FamiliaID      uint   `json:"familia_id" binding:"required" example:"1"`
	Principal      bool   `json:"principal"`
}

// HandleResponsavelFunc returns a Gin handler dispatching guardian methods
func HandleResponsavelFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewResponsavelController(ctx, container)

		switch method {
		case "getResponsaveis":
			controller.GetResponsaveis()
		case "getResponsavel":
			controller.GetResponsavel()
		case "createResponsavel":
			controller.CreateResponsavel()
		case "updateResponsavel":
			controller.UpdateResponsavel()
		case "deleteResponsavel":
			controller.DeleteResponsavel()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetResponsaveis lists guardians
// @Summary      Listar responsáveis
// @Description  Lista responsáveis com filtros por principal, sexo e busca textual
// @Tags         Responsavel
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        principal query bool false "Filtra por responsável principal"
// @Param        sexo query string false "Filtra por sexo (M, F, O)"
// @Param        search query string false "Busca em nome, CPF, telefone e família"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /responsaveis [get]
func (c *ResponsavelController) GetResponsaveis() {
	page, pageSize := parsePagination(c.Ctx)

	filtros := services.ResponsavelFiltros{
		Principal: parseBoolQuery(c.Ctx, "principal"),
		Sexo:      c.Ctx.Query("sexo"),
		Busca:     c.Ctx.Query("search"),
		Ordering:  c.Ctx.Query("ordering"),
	}

	responsavelService := c.Container.GetService("responsavel").(services.InterfaceResponsavelService)
	responsaveis, total, err := responsavelService.GetAllResponsaveis(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar responsáveis: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, responsaveis))
}

// 2. GetResponsavel fetches one guardian
// @Summary      Detalhar responsável
// @Description  Retorna um responsável pelo ID
// @Tags         Responsavel
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do responsável"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /responsaveis/{id} [get]
func (c *ResponsavelController) GetResponsavel() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de responsável inválido")
		return
	}

	responsavelService := c.Container.GetService("responsavel").(services.InterfaceResponsavelService)
	responsavel, err := responsavelService.GetResponsavelByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, responsavel)
}

// 3. CreateResponsavel creates a guardian
// @Summary      Criar responsável
// @Description  Cria um responsável; apenas um principal é permitido por família
// @Tags         Responsavel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        responsavel body ResponsavelRequest true "Dados do responsável"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /responsaveis [post]
func (c *ResponsavelController) CreateResponsavel() {
	var req ResponsavelRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	dataNascimento, err := time.Parse("2006-01-02", req.DataNascimento)
	if err != nil {
		response.ParamError(c.Ctx, "data_nascimento inválida, use o formato YYYY-MM-DD")
		return
	}

	responsavel := &models.Responsavel{
		NomeCompleto:   req.NomeCompleto,
		CPF:            req.CPF,
		Telefone:       req.Telefone,
		DataNascimento: dataNascimento,
		Sexo:           req.Sexo,
		FamiliaID:      req.FamiliaID,
		Principal:      req.Principal,
	}

	responsavelService := c.Container.GetService("responsavel").(services.InterfaceResponsavelService)
	if err := responsavelService.CreateResponsavel(responsavel); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrResponsavelPrincipalDuplicado, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, responsavel)
}

// 4. UpdateResponsavel partially updates a guardian
// @Summary      Atualizar responsável
// @Description  Atualiza os campos informados de um responsável, revalidando a regra do principal
// @Tags         Responsavel
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do responsável"
// @Param        responsavel body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /responsaveis/{id} [put]
func (c *ResponsavelController) UpdateResponsavel() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de responsável inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"nome_completo", "cpf", "telefone", "sexo", "principal"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}
	if valor, ok := req["familia_id"].(float64); ok {
		updates["familia_id"] = uint(valor)
	}
	if valor, ok := req["data_nascimento"].(string); ok {
		dataNascimento, err := time.Parse("2006-01-02", valor)
		if err != nil {
			response.ParamError(c.Ctx, "data_nascimento inválida, use o formato YYYY-MM-DD")
			return
		}
		updates["data_nascimento"] = dataNascimento
	}

	responsavelService := c.Container.GetService("responsavel").(services.InterfaceResponsavelService)
	responsavel, err := responsavelService.UpdateResponsavel(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrResponsavelPrincipalDuplicado, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, responsavel)
}

// 5. DeleteResponsavel removes a guardian
// @Summary      Excluir responsável
// @Description  Exclui um responsável
// @Tags         Responsavel
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do responsável"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /responsaveis/{id} [delete]
func (c *ResponsavelController) DeleteResponsavel() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de responsável inválido")
		return
	}

	responsavelService := c.Container.GetService("responsavel").(services.InterfaceResponsavelService)
	if err := responsavelService.DeleteResponsavel(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir responsável: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
