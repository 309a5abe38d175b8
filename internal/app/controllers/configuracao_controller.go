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

// InterfaceConfiguracaoController defines the system-settings controller interface
type InterfaceConfiguracaoController interface {
	GetConfiguracoes()
	GetConfiguracao()
	CreateConfiguracao()
	UpdateConfiguracao()
	DeleteConfiguracao()
}

// ConfiguracaoController handles system-settings requests
type ConfiguracaoController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewConfiguracaoController creates a new system-settings controller
func NewConfiguracaoController(ctx *gin.Context, container *container.ServiceContainer) *ConfiguracaoController {
	return &ConfiguracaoController{
		Ctx:       ctx,
		Container: container,
	}
}

// ConfiguracaoRequest is the system-setting payload
type ConfiguracaoRequest struct {
	Chave     string `json:"chave" binding:"required" example:"dias_encontro"`
	Valor     string `json:"valor" binding:"required" example:"sabado"`
	Descricao string `json:"descricao"`
}

// HandleConfiguracaoFunc returns a Gin handler dispatching system-settings methods
func HandleConfiguracaoFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewConfiguracaoController(ctx, container)

		switch method {
		case "getConfiguracoes":
			controller.GetConfiguracoes()
		case "getConfiguracao":
			controller.GetConfiguracao()
		case "createConfiguracao":
			controller.CreateConfiguracao()
		case "updateConfiguracao":
			controller.UpdateConfiguracao()
		case "deleteConfiguracao":
			controller.DeleteConfiguracao()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetConfiguracoes lists system settings
// @Summary      Listar configurações
// @Description  Lista configurações do sistema com busca por chave e descrição
// @Tags         Configuracao
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        search query string false "Busca em chave e descrição"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /configuracoes [get]
func (c *ConfiguracaoController) GetConfiguracoes() {
	page, pageSize := parsePagination(c.Ctx)

	filtros := services.ConfiguracaoFiltros{
		Busca:    c.Ctx.Query("search"),
		Ordering: c.Ctx.Query("ordering"),
	}

	configuracaoService := c.Container.GetService("configuracao").(services.InterfaceConfiguracaoService)
	configuracoes, total, err := configuracaoService.GetAllConfiguracoes(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar configurações: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, configuracoes))
}

// 2. GetConfiguracao fetches a setting by numeric id or by chave
// @Summary      Detalhar configuração
// @Description  Retorna uma configuração pelo ID numérico ou pela chave
// @Tags         Configuracao
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID ou chave da configuração"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /configuracoes/{id} [get]
func (c *ConfiguracaoController) GetConfiguracao() {
	idOrChave := c.Ctx.Param("id")

	configuracaoService := c.Container.GetService("configuracao").(services.InterfaceConfiguracaoService)
	configuracao, err := configuracaoService.GetConfiguracaoByIDOrChave(idOrChave)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, configuracao)
}

// 3. CreateConfiguracao creates a setting (admin only)
// @Summary      Criar configuração
// @Description  Cria uma configuração do sistema; a chave deve ser única
// @Tags         Configuracao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        configuracao body ConfiguracaoRequest true "Dados da configuração"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /configuracoes [post]
func (c *ConfiguracaoController) CreateConfiguracao() {
	var req ConfiguracaoRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	configuracao := &models.ConfiguracaoSistema{
		Chave:     req.Chave,
		Valor:     req.Valor,
		Descricao: req.Descricao,
	}

	configuracaoService := c.Container.GetService("configuracao").(services.InterfaceConfiguracaoService)
	if err := configuracaoService.CreateConfiguracao(configuracao); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrConfiguracaoChaveDuplicada, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, configuracao)
}

// 4. UpdateConfiguracao partially updates a setting (admin only)
// @Summary      Atualizar configuração
// @Description  Atualiza os campos informados de uma configuração
// @Tags         Configuracao
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID ou chave da configuração"
// @Param        configuracao body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /configuracoes/{id} [put]
func (c *ConfiguracaoController) UpdateConfiguracao() {
	idOrChave := c.Ctx.Param("id")

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"chave", "valor", "descricao"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}

	configuracaoService := c.Container.GetService("configuracao").(services.InterfaceConfiguracaoService)
	configuracao, err := configuracaoService.UpdateConfiguracao(idOrChave, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrConfiguracaoChaveDuplicada, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, configuracao)
}

// 5. DeleteConfiguracao removes a setting (admin only)
// @Summary      Excluir configuração
// @Description  Exclui uma configuração do sistema
// @Tags         Configuracao
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "ID ou chave da configuração"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /configuracoes/{id} [delete]
func (c *ConfiguracaoController) DeleteConfiguracao() {
	idOrChave := c.Ctx.Param("id")

	configuracaoService := c.Container.GetService("configuracao").(services.InterfaceConfiguracaoService)
	if err := configuracaoService.DeleteConfiguracao(idOrChave); err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, nil)
}
