package models

import "time"

// Presenca is a per-member, per-meeting attendance record
type Presenca struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	MembroID          uint      `gorm:"not null;uniqueIndex:idx_membro_encontro" json:"membro_id"`
	EncontroID        uint      `gorm:"not null;uniqueIndex:idx_membro_encontro" json:"encontro_id"`
	Presente          bool      `gorm:"default:true" json:"presente"`
	Observacoes       string    `gorm:"type:text" json:"observacoes,omitempty"`
	DataRegistro      time.Time `gorm:"autoCreateTime" json:"data_registro"`
	UsuarioRegistroID *uint     `json:"usuario_registro_id,omitempty"`

	// Relations
	Membro          *MembroFamilia `gorm:"foreignKey:MembroID;constraint:OnDelete:CASCADE" json:"membro,omitempty"`
	Encontro        *Encontro      `gorm:"foreignKey:EncontroID;constraint:OnDelete:CASCADE" json:"encontro,omitempty"`
	UsuarioRegistro *Usuario       `gorm:"foreignKey:UsuarioRegistroID;constraint:OnDelete:SET NULL" json:"usuario_registro,omitempty"`
}
