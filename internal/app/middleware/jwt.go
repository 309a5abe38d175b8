package middleware

import (
	"net/http"
	"strings"

	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware wires the JWT service used by the auth middlewares
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken strips the "Bearer " prefix from an Authorization header
func extractToken(authHeader string) string {
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// Authentication validates the bearer token of any active user
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Cabeçalho Authorization é obrigatório",
				"data":    nil,
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Formato do cabeçalho deve ser Bearer {token}",
				"data":    nil,
			})
			c.Abort()
			return
		}

		tokenString := parts[1]
		token, err := jwtService.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token inválido ou expirado",
				"data":    nil,
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Claims do token inválidas",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims["user_id"])
		c.Set("tipo", claims["tipo"])
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticateAdmin validates the token and requires the admin role
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Cabeçalho Authorization é obrigatório",
				"data":    nil,
			})
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		token, err := jwtService.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token inválido ou expirado",
				"data":    nil,
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Claims do token inválidas",
				"data":    nil,
			})
			c.Abort()
			return
		}

		if tipo, exists := claims["tipo"].(string); !exists || tipo != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Permissão insuficiente: requer perfil de administrador",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims["user_id"])
		c.Set("tipo", claims["tipo"])
		c.Set("claims", claims)
		c.Next()
	}
}

// AuthenticateAtendente validates the token and requires a role allowed to
// write records. Admins pass as well.
func AuthenticateAtendente() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Cabeçalho Authorization é obrigatório",
				"data":    nil,
			})
			c.Abort()
			return
		}

		tokenString := extractToken(authHeader)
		token, err := jwtService.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Token inválido ou expirado",
				"data":    nil,
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    401,
				"message": "Claims do token inválidas",
				"data":    nil,
			})
			c.Abort()
			return
		}

		tipo, exists := claims["tipo"].(string)
		if !exists || (tipo != "atendente" && tipo != "admin") {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "Permissão insuficiente: requer perfil de atendente",
				"data":    nil,
			})
			c.Abort()
			return
		}

		c.Set("userID", claims["user_id"])
		c.Set("tipo", tipo)
		c.Set("claims", claims)
		c.Next()
	}
}

// CurrentUserID reads the authenticated user id stored by the middlewares
func CurrentUserID(c *gin.Context) *uint {
	value, exists := c.Get("userID")
	if !exists {
		return nil
	}
	if id, ok := value.(float64); ok {
		userID := uint(id)
		return &userID
	}
	return nil
}
