package models

// Turma represents an age cohort used to segment members for group meetings
type Turma struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"type:varchar(100);not null" json:"nome"` // ex: "3 a 5 anos", "6 a 8 anos"
	IdadeMinima int    `gorm:"not null" json:"idade_minima"`
	IdadeMaxima int    `gorm:"not null" json:"idade_maxima"`
	Ativo       bool   `gorm:"default:true" json:"ativo"`
	Descricao   string `gorm:"type:text" json:"descricao,omitempty"`
}
