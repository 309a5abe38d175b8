package models

// ConfiguracaoSistema is a key/value configuration entry maintained by admins
type ConfiguracaoSistema struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Chave     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"chave"`
	Valor     string `gorm:"type:text;not null" json:"valor"`
	Descricao string `gorm:"type:text" json:"descricao,omitempty"`
}
