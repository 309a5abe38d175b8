package models

import "time"

// Encontro represents a dated group session at which attendance is taken
type Encontro struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Data      time.Time `gorm:"type:date;uniqueIndex;not null" json:"data"`
	Descricao string    `gorm:"type:varchar(200)" json:"descricao,omitempty"`
	Ativo     bool      `gorm:"default:true" json:"ativo"`

	// Relations
	Presencas []Presenca `gorm:"foreignKey:EncontroID" json:"presencas,omitempty"`
}
