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

// InterfaceFamiliaController defines the family controller interface
type InterfaceFamiliaController interface {
	GetFamilias()
	GetFamilia()
	CreateFamilia()
	UpdateFamilia()
	DeleteFamilia()
	GetFamiliaMembros()
	GetFamiliaResponsaveis()
	GetFamiliaEntregas()
}

// FamiliaController handles family requests
type FamiliaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFamiliaController creates a new family controller
func NewFamiliaController(ctx *gin.Context, container *container.ServiceContainer) *FamiliaController {
	return &FamiliaController{
		Ctx:       ctx,
		Container: container,
	}
}

// FamiliaRequest is the family payload. The address is created together with
// the family.
type FamiliaRequest struct {
	Nome                   string          `json:"nome" example:"Família Silva"`
	Observacoes            string          `json:"observacoes"`
	RecebeProgramasSociais bool            `json:"recebe_programas_sociais"`
	ProgramasSociais       string          `json:"programas_sociais" example:"Bolsa Família, Auxílio Gás"`
	Endereco               EnderecoRequest `json:"endereco" binding:"required"`
}

// HandleFamiliaFunc returns a Gin handler dispatching family methods
func HandleFamiliaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFamiliaController(ctx, container)

		switch method {
		case "getFamilias":
			controller.GetFamilias()
		case "getFamilia":
			controller.GetFamilia()
		case "createFamilia":
			controller.CreateFamilia()
		case "updateFamilia":
			controller.UpdateFamilia()
		case "deleteFamilia":
			controller.DeleteFamilia()
		case "getFamiliaMembros":
			controller.GetFamiliaMembros()
		case "getFamiliaResponsaveis":
			controller.GetFamiliaResponsaveis()
		case "getFamiliaEntregas":
			controller.GetFamiliaEntregas()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetFamilias lists families
// @Summary      Listar famílias
// @Description  Lista famílias com filtros por programas sociais, membros ativos e busca textual
// @Tags         Familia
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        recebe_programas_sociais query bool false "Filtra por recebimento de programas sociais"
// @Param        programa_social query string false "Filtra por nome de programa social"
// @Param        membros_ativos query bool false "Somente famílias com membros ativos"
// @Param        search query string false "Busca em nome e endereço"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /familias [get]
func (c *FamiliaController) GetFamilias() {
	page, pageSize := parsePagination(c.Ctx)

	membrosAtivos := false
	if v := parseBoolQuery(c.Ctx, "membros_ativos"); v != nil {
		membrosAtivos = *v
	}

	filtros := services.FamiliaFiltros{
		RecebeProgramasSociais: parseBoolQuery(c.Ctx, "recebe_programas_sociais"),
		ProgramaSocial:         c.Ctx.Query("programa_social"),
		MembrosAtivos:          membrosAtivos,
		Busca:                  c.Ctx.Query("search"),
		Ordering:               c.Ctx.Query("ordering"),
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	familias, total, err := familiaService.GetAllFamilias(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar famílias: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, familias))
}

// 2. GetFamilia fetches one family with its relations
// @Summary      Detalhar família
// @Description  Retorna uma família pelo ID, com endereço, responsáveis e membros
// @Tags         Familia
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da família"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /familias/{id} [get]
func (c *FamiliaController) GetFamilia() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de família inválido")
		return
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	familia, err := familiaService.GetFamiliaByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, familia)
}

// 3. CreateFamilia creates a family together with its address
// @Summary      Criar família
// @Description  Cria uma família e o endereço vinculado em uma única transação
// @Tags         Familia
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        familia body FamiliaRequest true "Dados da família e do endereço"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /familias [post]
func (c *FamiliaController) CreateFamilia() {
	var req FamiliaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	familia := &models.Familia{
		Nome:                   req.Nome,
		Observacoes:            req.Observacoes,
		RecebeProgramasSociais: req.RecebeProgramasSociais,
		ProgramasSociais:       req.ProgramasSociais,
	}
	endereco := &models.Endereco{
		Rua:         req.Endereco.Rua,
		Numero:      req.Endereco.Numero,
		Complemento: req.Endereco.Complemento,
		Bairro:      req.Endereco.Bairro,
		Cidade:      req.Endereco.Cidade,
		Estado:      req.Endereco.Estado,
		CEP:         req.Endereco.CEP,
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	if err := familiaService.CreateFamilia(familia, endereco); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao criar família: "+err.Error(), nil)
		return
	}

	invalidateRelatorioCache(c.Container)
	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, familia)
}

// 4. UpdateFamilia partially updates a family and optionally its address
// @Summary      Atualizar família
// @Description  Atualiza os campos informados da família e do endereço aninhado
// @Tags         Familia
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da família"
// @Param        familia body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /familias/{id} [put]
func (c *FamiliaController) UpdateFamilia() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de família inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"nome", "observacoes", "recebe_programas_sociais", "programas_sociais"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}

	var enderecoUpdates map[string]interface{}
	if raw, ok := req["endereco"].(map[string]interface{}); ok {
		enderecoUpdates = make(map[string]interface{})
		for _, campo := range []string{"rua", "numero", "complemento", "bairro", "cidade", "estado", "cep"} {
			if valor, ok := raw[campo]; ok {
				enderecoUpdates[campo] = valor
			}
		}
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	familia, err := familiaService.UpdateFamilia(id, updates, enderecoUpdates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao atualizar família: "+err.Error(), nil)
		return
	}

	invalidateRelatorioCache(c.Container)
	response.Success(c.Ctx, familia)
}

// 5. DeleteFamilia removes a family and its dependent records
// @Summary      Excluir família
// @Description  Exclui a família, seus responsáveis, membros, presenças e entregas; o endereço é mantido
// @Tags         Familia
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da família"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /familias/{id} [delete]
func (c *FamiliaController) DeleteFamilia() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de família inválido")
		return
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	if err := familiaService.DeleteFamilia(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir família: "+err.Error(), nil)
		return
	}

	invalidateRelatorioCache(c.Container)
	response.Success(c.Ctx, nil)
}

// 6. GetFamiliaMembros lists the members of a family
// @Summary      Membros da família
// @Description  Lista os membros de uma família com a idade calculada
// @Tags         Familia
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da família"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /familias/{id}/membros [get]
func (c *FamiliaController) GetFamiliaMembros() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de família inválido")
		return
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	membros, err := familiaService.GetMembros(id)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar membros da família: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, membros)
}

// 7. GetFamiliaResponsaveis lists the guardians of a family
// @Summary      Responsáveis da família
// @Description  Lista os responsáveis de uma família, principal primeiro
// @Tags         Familia
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da família"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /familias/{id}/responsaveis [get]
func (c *FamiliaController) GetFamiliaResponsaveis() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de família inválido")
		return
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	responsaveis, err := familiaService.GetResponsaveis(id)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar responsáveis da família: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, responsaveis)
}

// 8. GetFamiliaEntregas lists the basket deliveries of a family
// @Summary      Entregas da família
// @Description  Lista as entregas de cesta de uma família, mais recentes primeiro
// @Tags         Familia
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da família"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /familias/{id}/entregas-cestas [get]
func (c *FamiliaController) GetFamiliaEntregas() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de família inválido")
		return
	}

	familiaService := c.Container.GetService("familia").(services.InterfaceFamiliaService)
	entregas, err := familiaService.GetEntregasCestas(id)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar entregas da família: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, entregas)
}
