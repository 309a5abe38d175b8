package models

import "time"

// EntregaCesta is a food-basket delivery event to a family. The database
// enforces one delivery per family per day; the one-per-calendar-month rule
// is validated by the service layer.
type EntregaCesta struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	FamiliaID         uint      `gorm:"not null;uniqueIndex:idx_familia_data_entrega" json:"familia_id"`
	DataEntrega       time.Time `gorm:"type:date;not null;uniqueIndex:idx_familia_data_entrega" json:"data_entrega"`
	Observacoes       string    `gorm:"type:text" json:"observacoes,omitempty"`
	DataRegistro      time.Time `gorm:"autoCreateTime" json:"data_registro"`
	UsuarioRegistroID *uint     `json:"usuario_registro_id,omitempty"`

	// Relations
	Familia         *Familia `gorm:"foreignKey:FamiliaID;constraint:OnDelete:CASCADE" json:"familia,omitempty"`
	UsuarioRegistro *Usuario `gorm:"foreignKey:UsuarioRegistroID;constraint:OnDelete:SET NULL" json:"usuario_registro,omitempty"`
}
