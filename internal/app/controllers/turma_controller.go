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

// InterfaceTurmaController defines the cohort controller interface
type InterfaceTurmaController interface {
	GetTurmas()
	GetTurma()
	CreateTurma()
	UpdateTurma()
	DeleteTurma()
	GetTurmaMembros()
}

// TurmaController handles age-cohort requests
type TurmaController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewTurmaController creates a new cohort controller
func NewTurmaController(ctx *gin.Context, container *container.ServiceContainer) *TurmaController {
	return &TurmaController{
		Ctx:       ctx,
		Container: container,
	}
}

// TurmaRequest is the cohort payload
type TurmaRequest struct {
	Nome        string `json:"nome" binding:"required" example:"6 a 8 anos"`
	IdadeMinima *int   `json:"idade_minima" binding:"required" example:"6"`
	IdadeMaxima *int   `json:"idade_maxima" binding:"required" example:"8"`
	Descricao   string `json:"descricao"`
	Ativo       *bool  `json:"ativo"`
}

// HandleTurmaFunc returns a Gin handler dispatching cohort methods
func HandleTurmaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewTurmaController(ctx, container)

		switch method {
		case "getTurmas":
			controller.GetTurmas()
		case "getTurma":
			controller.GetTurma()
		case "createTurma":
			controller.CreateTurma()
		case "updateTurma":
			controller.UpdateTurma()
		case "deleteTurma":
			controller.DeleteTurma()
		case "getTurmaMembros":
			controller.GetTurmaMembros()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetTurmas lists cohorts
// @Summary      Listar turmas
// @Description  Lista turmas com filtros por situação e busca textual
// @Tags         Turma
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        ativo query bool false "Filtra por situação"
// @Param        search query string false "Busca em nome e descrição"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /turmas [get]
func (c *TurmaController) GetTurmas() {
	page, pageSize := parsePagination(c.Ctx)

	filtros := services.TurmaFiltros{
		Ativo:    parseBoolQuery(c.Ctx, "ativo"),
		Busca:    c.Ctx.Query("search"),
		Ordering: c.Ctx.Query("ordering"),
	}

	turmaService := c.Container.GetService("turma").(services.InterfaceTurmaService)
	turmas, total, err := turmaService.GetAllTurmas(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar turmas: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, turmas))
}

// 2. GetTurma fetches one cohort
// @Summary      Detalhar turma
// @Description  Retorna uma turma pelo ID
// @Tags         Turma
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da turma"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /turmas/{id} [get]
func (c *TurmaController) GetTurma() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de turma inválido")
		return
	}

	turmaService := c.Container.GetService("turma").(services.InterfaceTurmaService)
	turma, err := turmaService.GetTurmaByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, turma)
}

// 3. CreateTurma creates a cohort
// @Summary      Criar turma
// @Description  Cria uma turma validando a faixa etária
// @Tags         Turma
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        turma body TurmaRequest true "Dados da turma"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /turmas [post]
func (c *TurmaController) CreateTurma() {
	var req TurmaRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	turma := &models.Turma{
		Nome:        req.Nome,
		IdadeMinima: *req.IdadeMinima,
		IdadeMaxima: *req.IdadeMaxima,
		Descricao:   req.Descricao,
		Ativo:       true,
	}
	if req.Ativo != nil {
		turma.Ativo = *req.Ativo
	}

	turmaService := c.Container.GetService("turma").(services.InterfaceTurmaService)
	if err := turmaService.CreateTurma(turma); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTurmaFaixaEtaria, err.Error(), nil)
		return
	}

	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, turma)
}

// 4. UpdateTurma partially updates a cohort
// @Summary      Atualizar turma
// @Description  Atualiza os campos informados de uma turma, revalidando a faixa etária
// @Tags         Turma
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da turma"
// @Param        turma body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /turmas/{id} [put]
func (c *TurmaController) UpdateTurma() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de turma inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"nome", "idade_minima", "idade_maxima", "descricao", "ativo"} {
		if valor, ok := req[campo]; ok {
			updates[campo] = valor
		}
	}

	turmaService := c.Container.GetService("turma").(services.InterfaceTurmaService)
	turma, err := turmaService.UpdateTurma(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrTurmaFaixaEtaria, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, turma)
}

// 5. DeleteTurma removes a cohort
// @Summary      Excluir turma
// @Description  Exclui uma turma; os membros não são afetados
// @Tags         Turma
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da turma"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /turmas/{id} [delete]
func (c *TurmaController) DeleteTurma() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de turma inválido")
		return
	}

	turmaService := c.Container.GetService("turma").(services.InterfaceTurmaService)
	if err := turmaService.DeleteTurma(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir turma: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, nil)
}

// 6. GetTurmaMembros lists the active members whose age falls in the cohort
// @Summary      Membros da turma
// @Description  Lista os membros ativos cuja idade está dentro da faixa etária da turma
// @Tags         Turma
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da turma"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /turmas/{id}/membros [get]
func (c *TurmaController) GetTurmaMembros() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de turma inválido")
		return
	}

	turmaService := c.Container.GetService("turma").(services.InterfaceTurmaService)
	membros, err := turmaService.GetMembros(id)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar membros da turma: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, membros)
}
