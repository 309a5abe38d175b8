package controllers

import (
	"net/http"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceEnderecoController defines the address controller interface
type InterfaceEnderecoController interface {
	GetEnderecos()
	GetEndereco()
	CreateEndereco()
	UpdateEndereco()
	DeleteEndereco()
}

// EnderecoController handles address requests
type EnderecoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewEnderecoController creates a new address controller
func NewEnderecoController(ctx *gin.Context, container *container.ServiceContainer) *EnderecoController {
	return &EnderecoController{
		Ctx:       ctx,
		Container: container,
	}
}

// EnderecoRequest is the address payload
type EnderecoRequest struct {
	Rua         string `json:"rua" binding:"required" example:"Rua das Flores"`
	Numero      string `json:"numero" binding:"required" example:"123"`
	Complemento string `json:"complemento" example:"Apto 42"`
	Bairro      string `json:"bairro" binding:"required" example:"Centro"`
	Cidade      string `json:"cidade" binding:"required" example:"São Paulo"`
	Estado      string `json:"estado" binding:"required,len=2" example:"SP"`
	CEP         string `json:"cep" binding:"required" example:"01000-000"`
}

// HandleEnderecoFunc returns a Gin handler dispatching address methods
func HandleEnderecoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewEnderecoController(ctx, container)

		switch method {
		case "getEnderecos":
			controller.GetEnderecos()
		case "getEndereco":
			controller.GetEndereco()
		case "createEndereco":
			controller.CreateEndereco()
		case "updateEndereco":
			controller.UpdateEndereco()
		case "deleteEndereco":
			controller.DeleteEndereco()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetEnderecos lists addresses
// @Summary      Listar endereços
// @Description  Lista endereços com filtros por cidade, estado, bairro e busca textual
// @Tags         Endereco
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        cidade query string false "Filtra por cidade"
// @Param        estado query string false "Filtra por UF"
// @Param        bairro query string false "Filtra por bairro"
// @Param        search query string false "Busca em rua, bairro, cidade e CEP"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /enderecos [get]
func (c *EnderecoController) GetEnderecos() {
	page, pageSize := parsePagination(c.Ctx)

	filtros := services.EnderecoFiltros{
		Cidade:   c.Ctx.Query("cidade"),
		Estado:   c.Ctx.Query("estado"),
		Bairro:   c.Ctx.Query("bairro"),
		Busca:    c.Ctx.Query("search"),
		Ordering: c.Ctx.Query("ordering"),
	}

	enderecoService := c.Container.GetService("endereco").(services.InterfaceEnderecoService)
	enderecos, total, err := enderecoService.GetAllEnderecos(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar endereços: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, enderecos))
}

// 2. GetEndereco fetches one address
// @Summary      Detalhar endereço
// @Description  Retorna um endereço pelo ID
// @Tags         Endereco
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do endereço"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /enderecos/{id} [get]
func (c *EnderecoController) GetEndereco() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de endereço inválido")
		return
	}

	enderecoService := c.Container.GetService("endereco").(services.InterfaceEnderecoService)
	endereco, err := enderecoService.GetEnderecoByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, endereco)
}

// 3. CreateEndereco creates an address
// @Summary      Criar endereço
// @Description  Cria um novo endereço
// @Tags         Endereco
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        endereco body EnderecoRequest true "Dados do endereço"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /enderecos [post]
func (c *EnderecoController) CreateEndereco() {
	var req EnderecoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	endereco := &models.Endereco{
		Rua:         req.Rua,
		Numero:      req.Numero,
		Complemento: req.Complemento,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		CEP:         req.CEP,
	}

	enderecoService := c.Container.GetService("endereco").(services.InterfaceEnderecoService)
	if err := enderecoService.CreateEndereco(endereco); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao criar endereço: "+err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, endereco)
}

// 4. UpdateEndereco partially updates an address
// @Summary      Atualizar endereço
// @Description  Atualiza os campos informados de um endereço
// @Tags         Endereco
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do endereço"
// @Param        endereco body EnderecoRequest true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /enderecos/{id} [put]
func (c *EnderecoController) UpdateEndereco() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de endereço inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"rua", "numero", "complemento", "bairro", "cidade", "estado", "cep"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}

	enderecoService := c.Container.GetService("endereco").(services.InterfaceEnderecoService)
	endereco, err := enderecoService.UpdateEndereco(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao atualizar endereço: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, endereco)
}

// 5. DeleteEndereco removes an address not bound to a family
// @Summary      Excluir endereço
// @Description  Exclui um endereço que não esteja vinculado a uma família
// @Tags         Endereco
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do endereço"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /enderecos/{id} [delete]
func (c *EnderecoController) DeleteEndereco() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de endereço inválido")
		return
	}

	enderecoService := c.Container.GetService("endereco").(services.InterfaceEnderecoService)
	if err := enderecoService.DeleteEndereco(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrEnderecoInUse, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
