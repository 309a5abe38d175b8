package models

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Tipos de usuário do sistema
const (
	TipoAdmin        = "admin"
	TipoAtendente    = "atendente"
	TipoVisualizador = "visualizador"
)

// Usuario represents an authenticated system user
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(254);uniqueIndex;not null" json:"email"`
	Nome      string    `gorm:"type:varchar(150)" json:"nome"`
	Sobrenome string    `gorm:"type:varchar(150)" json:"sobrenome"`
	Tipo      string    `gorm:"type:varchar(20);default:'visualizador'" json:"tipo"` // admin, atendente, visualizador
	Senha     string    `gorm:"type:varchar(100);not null" json:"-"`
	Ativo     bool      `gorm:"default:true" json:"ativo"`
	CreatedAt time.Time `json:"data_cadastro"`
	UpdatedAt time.Time `json:"data_atualizacao"`

	// Relations
	PresencasRegistradas []Presenca     `gorm:"foreignKey:UsuarioRegistroID" json:"presencas_registradas,omitempty"`
	EntregasRegistradas  []EntregaCesta `gorm:"foreignKey:UsuarioRegistroID" json:"entregas_registradas,omitempty"`
}

// NomeCompleto joins first and last name, falling back to the e-mail
func (u *Usuario) NomeCompleto() string {
	nome := strings.TrimSpace(u.Nome + " " + u.Sobrenome)
	if nome == "" {
		return u.Email
	}
	return nome
}

// HashPassword hashes a plain text password with bcrypt
func HashPassword(senha string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a bcrypt hash with a plain text password
func CheckPassword(hash, senha string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}

// BeforeCreate hashes the password before inserting
func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.Senha != "" {
		hashed, err := HashPassword(u.Senha)
		if err != nil {
			return err
		}
		u.Senha = hashed
	}
	return nil
}

// BeforeSave re-hashes the password when it was replaced by a plain value
func (u *Usuario) BeforeSave(tx *gorm.DB) error {
	if u.Senha != "" && len(u.Senha) < 60 {
		hashed, err := HashPassword(u.Senha)
		if err != nil {
			return err
		}
		u.Senha = hashed
	}
	return nil
}
