package models

import "time"

// Sexo choices shared by Responsavel and MembroFamilia
const (
	SexoMasculino = "M"
	SexoFeminino  = "F"
	SexoOutro     = "O"
)

// Responsavel represents an adult legally responsible for a family
type Responsavel struct {
	BaseModel
	NomeCompleto   string    `gorm:"type:varchar(200);not null" json:"nome_completo"`
	CPF            string    `gorm:"type:varchar(14)" json:"cpf,omitempty"` // formato: 000.000.000-00
	Telefone       string    `gorm:"type:varchar(20);not null" json:"telefone"`
	DataNascimento time.Time `gorm:"type:date;not null" json:"data_nascimento"`
	Sexo           string    `gorm:"type:varchar(1);not null" json:"sexo"` // M, F, O
	FamiliaID      uint      `gorm:"not null;index" json:"familia_id"`
	Principal      bool      `gorm:"default:false" json:"principal"`

	// Relations
	Familia *Familia `gorm:"foreignKey:FamiliaID;constraint:OnDelete:CASCADE" json:"familia,omitempty"`
}
