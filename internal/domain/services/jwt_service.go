package services

import (
	"errors"
	"fmt"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// InterfaceJWTService defines the JWT service interface
type InterfaceJWTService interface {
	GenerateToken(usuario *models.Usuario) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	ExtractClaims(tokenString string) (*JWTClaims, error)
	Login(email, senha string) (*LoginResult, error)
}

// LoginResult is the payload returned after a successful login
type LoginResult struct {
	Token   string       `json:"token"`
	Usuario LoginUsuario `json:"usuario"`
}

// LoginUsuario mirrors the user block of the login response
type LoginUsuario struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Tipo      string `json:"tipo"`
}

// JWTService issues and validates bearer tokens
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// JWTClaims holds the token claims
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Nome   string `json:"nome"`
	Tipo   string `json:"tipo"`
	jwt.RegisteredClaims
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "atendimento-http-service",
		DB:        db,
	}
}

// GenerateToken signs a token for the given user
func (s *JWTService) GenerateToken(usuario *models.Usuario) (string, error) {
	// Tokens are valid for 24 hours
	expirationTime := time.Now().Add(24 * time.Hour)

	claims := &JWTClaims{
		UserID: usuario.ID,
		Email:  usuario.Email,
		Nome:   usuario.NomeCompleto(),
		Tipo:   usuario.Tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and validates a token string
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// ExtractClaims converts a valid token into JWTClaims
func (s *JWTService) ExtractClaims(tokenString string) (*JWTClaims, error) {
	token, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	jwtClaims := &JWTClaims{}
	if userID, ok := claims["user_id"].(float64); ok {
		jwtClaims.UserID = uint(userID)
	}
	if email, ok := claims["email"].(string); ok {
		jwtClaims.Email = email
	}
	if nome, ok := claims["nome"].(string); ok {
		jwtClaims.Nome = nome
	}
	if tipo, ok := claims["tipo"].(string); ok {
		jwtClaims.Tipo = tipo
	}
	if iss, ok := claims["iss"].(string); ok {
		jwtClaims.Issuer = iss
	}

	return jwtClaims, nil
}

// Login authenticates a user by e-mail and password
func (s *JWTService) Login(email, senha string) (*LoginResult, error) {
	var usuario models.Usuario
	if err := s.DB.Where("email = ? AND ativo = ?", email, true).First(&usuario).Error; err != nil {
		return nil, errors.New("e-mail ou senha inválidos")
	}

	if !models.CheckPassword(usuario.Senha, senha) {
		return nil, errors.New("e-mail ou senha inválidos")
	}

	token, err := s.GenerateToken(&usuario)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token: token,
		Usuario: LoginUsuario{
			ID:        usuario.ID,
			Email:     usuario.Email,
			Nome:      usuario.Nome,
			Sobrenome: usuario.Sobrenome,
			Tipo:      usuario.Tipo,
		},
	}, nil
}
