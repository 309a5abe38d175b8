package controllers

import (
	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/error/code"
	"atendimento-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController defines the auth controller interface
type InterfaceJWTController interface {
	Login()
}

// JWTController handles authentication requests
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email string `json:"email" binding:"required,email" example:"admin@exemplo.org"`
	Senha string `json:"senha" binding:"required" example:"admin123"`
}

// LoginResponse is the login response envelope
type LoginResponse struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message" example:"Success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the generic error envelope
type ErrorResponse struct {
	Code    int         `json:"code" example:"401"`
	Message string      `json:"message" example:"E-mail ou senha inválidos"`
	Data    interface{} `json:"data"`
}

// HandleJWTFunc returns a Gin handler dispatching auth methods
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "Método inválido", nil)
		}
	}
}

// Login authenticates a user and returns a bearer token
// @Summary      Login
// @Description  Autentica um usuário por e-mail e senha e retorna um token JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credenciais de acesso"
// @Success      200  {object}  LoginResponse  "Token e dados do usuário"
// @Failure      400  {object}  ErrorResponse  "Requisição inválida"
// @Failure      401  {object}  ErrorResponse  "Credenciais inválidas"
// @Router       /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "Parâmetros de requisição inválidos", nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Senha)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUsuarioPasswordIncorrect, err.Error(), nil)
		return
	}

	response.Success(c.Ctx, result)
}
