package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atendimento-http-service/internal/error/code"
)

// Response is the unified response envelope
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a success response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    code.ErrSuccess,
		Message: code.GetMessage(code.ErrSuccess),
		Data:    data,
	})
}

// Fail writes an error response for the given code
func Fail(c *gin.Context, errorCode int, data interface{}) {
	httpStatus := code.GetStatus(errorCode)
	message := code.GetMessage(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// FailWithMessage writes an error response with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, data interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Code:    errorCode,
		Message: message,
		Data:    data,
	})
}

// ParamError writes a validation error response
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrValidation)
	}
	FailWithMessage(c, code.ErrValidation, message, nil)
}

// ServerError writes a generic server error response
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// NotFound writes a not-found response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "recurso não encontrado"
	}
	FailWithMessage(c, code.ErrRecordNotFound, message, nil)
}

// Unauthorized writes an unauthorized response
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}
