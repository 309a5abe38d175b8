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

// InterfaceUsuarioController defines the user controller interface
type InterfaceUsuarioController interface {
	GetUsuarios()
	GetUsuario()
	CreateUsuario()
	UpdateUsuario()
	DeleteUsuario()
}

// UsuarioController handles user administration requests
type UsuarioController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUsuarioController creates a new user controller
func NewUsuarioController(ctx *gin.Context, container *container.ServiceContainer) *UsuarioController {
	return &UsuarioController{
		Ctx:       ctx,
		Container: container,
	}
}

// UsuarioRequest is the user payload
type UsuarioRequest struct {
	Email     string `json:"email" binding:"required,email" example:"atendente@exemplo.org"`
	Nome      string `json:"nome" binding:"required" example:"Ana"`
	Sobrenome string `json:"sobrenome" example:"Souza"`
	Senha     string `json:"senha" binding:"required,min=6" example:"segredo1"`
	Tipo      string `json:"tipo" binding:"omitempty,oneof=admin atendente visualizador" example:"atendente"`
	Ativo     *bool  `json:"ativo"`
}

// HandleUsuarioFunc returns a Gin handler dispatching user methods
func HandleUsuarioFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUsuarioController(ctx, container)

		switch method {
		case "getUsuarios":
			controller.GetUsuarios()
		case "getUsuario":
			controller.GetUsuario()
		case "createUsuario":
			controller.CreateUsuario()
		case "updateUsuario":
			controller.UpdateUsuario()
		case "deleteUsuario":
			controller.DeleteUsuario()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetUsuarios lists users (admin only)
// @Summary      Listar usuários
// @Description  Lista os usuários do sistema
// @Tags         Usuario
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /usuarios [get]
func (c *UsuarioController) GetUsuarios() {
	page, pageSize := parsePagination(c.Ctx)

	usuarioService := c.Container.GetService("usuario").(services.InterfaceUsuarioService)
	usuarios, total, err := usuarioService.GetAllUsuarios(page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar usuários: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, usuarios))
}

// 2. GetUsuario fetches one user (admin only)
// @Summary      Detalhar usuário
// @Description  Retorna um usuário pelo ID
// @Tags         Usuario
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do usuário"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /usuarios/{id} [get]
func (c *UsuarioController) GetUsuario() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de usuário inválido")
		return
	}

	usuarioService := c.Container.GetService("usuario").(services.InterfaceUsuarioService)
	usuario, err := usuarioService.GetUsuarioByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, usuario)
}

// 3. CreateUsuario creates a user (admin only)
// @Summary      Criar usuário
// @Description  Cria um usuário; o e-mail deve ser único e a senha é armazenada com hash
// @Tags         Usuario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        usuario body UsuarioRequest true "Dados do usuário"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /usuarios [post]
func (c *UsuarioController) CreateUsuario() {
	var req UsuarioRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	usuario := &models.Usuario{
		Email:     req.Email,
		Nome:      req.Nome,
		Sobrenome: req.Sobrenome,
		Senha:     req.Senha,
		Tipo:      models.TipoVisualizador,
		Ativo:     true,
	}
	if req.Tipo != "" {
		usuario.Tipo = req.Tipo
	}
	if req.Ativo != nil {
		usuario.Ativo = *req.Ativo
	}

	usuarioService := c.Container.GetService("usuario").(services.InterfaceUsuarioService)
	if err := usuarioService.CreateUsuario(usuario); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUsuarioAlreadyExist, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, usuario)
}

// 4. UpdateUsuario partially updates a user (admin only)
// @Summary      Atualizar usuário
// @Description  Atualiza os campos informados de um usuário; a senha é re-hasheada quando enviada
// @Tags         Usuario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do usuário"
// @Param        usuario body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /usuarios/{id} [put]
func (c *UsuarioController) UpdateUsuario() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de usuário inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"email", "nome", "sobrenome", "senha", "tipo", "ativo"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}

	usuarioService := c.Container.GetService("usuario").(services.InterfaceUsuarioService)
	usuario, err := usuarioService.UpdateUsuario(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUsuarioAlreadyExist, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, usuario)
}

// 5. DeleteUsuario removes a user, detaching its recorded entries (admin only)
// @Summary      Excluir usuário
// @Description  Exclui um usuário; presenças e entregas registradas por ele são mantidas sem o vínculo
// @Tags         Usuario
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do usuário"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /usuarios/{id} [delete]
func (c *UsuarioController) DeleteUsuario() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de usuário inválido")
		return
	}

	usuarioService := c.Container.GetService("usuario").(services.InterfaceUsuarioService)
	if err := usuarioService.DeleteUsuario(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir usuário: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}
