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

// InterfaceMembroController defines the family-member controller interface
type InterfaceMembroController interface {
	GetMembros()
	GetMembro()
	CreateMembro()
	UpdateMembro()
	DeleteMembro()
	UploadFoto()
}

// MembroController handles family-member requests
type MembroController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMembroController creates a new family-member controller
func NewMembroController(ctx *gin.Context, container *container.ServiceContainer) *MembroController {
	return &MembroController{
		Ctx:       ctx,
		Container: container,
	}
}

// MembroRequest is the family-member payload
type MembroRequest struct {
	NomeCompleto    string `json:"nome_completo" binding:"required" example:"João da Silva"`
	DataNascimento  string `json:"data_nascimento" binding:"required" example:"2015-07-10"` // YYYY-MM-DD
	Sexo            string `json:"sexo" binding:"required,oneof=M F O" example:"M"`
	FamiliaID       uint   `json:"familia_id" binding:"required" example:"1"`
	NumeroCalcado   *int   `json:"numero_calcado" example:"34"`
	TamanhoCalca    string `json:"tamanho_calca" example:"38"`
	TamanhoCamiseta string `json:"tamanho_camiseta" example:"M"`
	Ativo           *bool  `json:"ativo"`
}

// HandleMembroFunc returns a Gin handler dispatching family-member methods
func HandleMembroFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMembroController(ctx, container)

		switch method {
		case "getMembros":
			controller.GetMembros()
		case "getMembro":
			controller.GetMembro()
		case "createMembro":
			controller.CreateMembro()
		case "updateMembro":
			controller.UpdateMembro()
		case "deleteMembro":
			controller.DeleteMembro()
		case "uploadFoto":
			controller.UploadFoto()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// 1. GetMembros lists family members
// @Summary      Listar membros
// @Description  Lista membros com filtros por sexo, situação, tamanho de camiseta, faixa de idade e busca textual
// @Tags         Membro
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Página, padrão 1"
// @Param        page_size query int false "Itens por página, padrão 10"
// @Param        sexo query string false "Filtra por sexo (M, F, O)"
// @Param        ativo query bool false "Filtra por situação"
// @Param        tamanho_camiseta query string false "Filtra por tamanho de camiseta"
// @Param        idade_min query int false "Idade mínima"
// @Param        idade_max query int false "Idade máxima"
// @Param        search query string false "Busca em nome do membro e da família"
// @Param        ordering query string false "Campo de ordenação"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  ErrorResponse
// @Router       /membros [get]
func (c *MembroController) GetMembros() {
	page, pageSize := parsePagination(c.Ctx)

	filtros := services.MembroFiltros{
		Sexo:            c.Ctx.Query("sexo"),
		Ativo:           parseBoolQuery(c.Ctx, "ativo"),
		TamanhoCamiseta: c.Ctx.Query("tamanho_camiseta"),
		IdadeMin:        parseIntQuery(c.Ctx, "idade_min"),
		IdadeMax:        parseIntQuery(c.Ctx, "idade_max"),
		Busca:           c.Ctx.Query("search"),
		Ordering:        c.Ctx.Query("ordering"),
	}

	membroService := c.Container.GetService("membro").(services.InterfaceMembroService)
	membros, total, err := membroService.GetAllMembros(filtros, page, pageSize)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao listar membros: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, paginatedResponse(total, page, pageSize, membros))
}

// 2. GetMembro fetches one member with the computed age
// @Summary      Detalhar membro
// @Description  Retorna um membro pelo ID com a idade calculada
// @Tags         Membro
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do membro"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /membros/{id} [get]
func (c *MembroController) GetMembro() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de membro inválido")
		return
	}

	membroService := c.Container.GetService("membro").(services.InterfaceMembroService)
	membro, err := membroService.GetMembroByID(id)
	if err != nil {
		response.NotFound(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, membro)
}

// 3. CreateMembro creates a family member
// @Summary      Criar membro
// @Description  Cria um membro validando número de calçado e tamanho de camiseta
// @Tags         Membro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        membro body MembroRequest true "Dados do membro"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Router       /membros [post]
func (c *MembroController) CreateMembro() {
	var req MembroRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	dataNascimento, err := time.Parse("2006-01-02", req.DataNascimento)
	if err != nil {
		response.ParamError(c.Ctx, "data_nascimento inválida, use o formato YYYY-MM-DD")
		return
	}

	membro := &models.MembroFamilia{
		NomeCompleto:    req.NomeCompleto,
		DataNascimento:  dataNascimento,
		Sexo:            req.Sexo,
		FamiliaID:       req.FamiliaID,
		NumeroCalcado:   req.NumeroCalcado,
		TamanhoCalca:    req.TamanhoCalca,
		TamanhoCamiseta: req.TamanhoCamiseta,
		Ativo:           true,
	}
	if req.Ativo != nil {
		membro.Ativo = *req.Ativo
	}

	membroService := c.Container.GetService("membro").(services.InterfaceMembroService)
	if err := membroService.CreateMembro(membro); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateRelatorioCache(c.Container)
	c.Ctx.Status(http.StatusCreated)
	response.Success(c.Ctx, membro)
}

// 4. UpdateMembro partially updates a member
// @Summary      Atualizar membro
// @Description  Atualiza os campos informados de um membro
// @Tags         Membro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do membro"
// @Param        membro body map[string]interface{} true "Campos a atualizar"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /membros/{id} [put]
func (c *MembroController) UpdateMembro() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de membro inválido")
		return
	}

	var req map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos: "+err.Error(), nil)
		return
	}

	updates := make(map[string]interface{})
	for _, campo := range []string{"nome_completo", "sexo", "numero_calcado", "tamanho_calca", "tamanho_camiseta", "ativo"} {
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

	membroService := c.Container.GetService("membro").(services.InterfaceMembroService)
	membro, err := membroService.UpdateMembro(id, updates)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	invalidateRelatorioCache(c.Container)
	response.Success(c.Ctx, membro)
}

// 5. DeleteMembro removes a member and its attendance records
// @Summary      Excluir membro
// @Description  Exclui um membro e suas presenças registradas
// @Tags         Membro
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do membro"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /membros/{id} [delete]
func (c *MembroController) DeleteMembro() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de membro inválido")
		return
	}

	membroService := c.Container.GetService("membro").(services.InterfaceMembroService)
	if err := membroService.DeleteMembro(id); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "Falha ao excluir membro: "+err.Error(), nil)
		return
	}

	invalidateRelatorioCache(c.Container)
	response.Success(c.Ctx, nil)
}

// 6. UploadFoto stores the member photo
// @Summary      Enviar foto do membro
// @Description  Recebe um arquivo de imagem (jpg, jpeg, png ou webp) e o associa ao membro
// @Tags         Membro
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do membro"
// @Param        foto formData file true "Arquivo de imagem"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /membros/{id}/foto [post]
func (c *MembroController) UploadFoto() {
	id, err := parseIDParam(c.Ctx)
	if err != nil {
		response.ParamError(c.Ctx, "ID de membro inválido")
		return
	}

	file, err := c.Ctx.FormFile("foto")
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrFotoInvalida, "Arquivo de foto não enviado", nil)
		return
	}

	membroService := c.Container.GetService("membro").(services.InterfaceMembroService)
	membro, err := membroService.SalvarFoto(id, file)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrFotoInvalida, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, membro)
}
