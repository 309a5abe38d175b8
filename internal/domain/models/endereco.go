package models

import "fmt"

// Endereco represents the address of a family (one-to-one)
type Endereco struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Rua         string `gorm:"type:varchar(200);not null" json:"rua"`
	Numero      string `gorm:"type:varchar(20);not null" json:"numero"`
	Complemento string `gorm:"type:varchar(100)" json:"complemento,omitempty"`
	Bairro      string `gorm:"type:varchar(100);not null" json:"bairro"`
	Cidade      string `gorm:"type:varchar(100);not null" json:"cidade"`
	Estado      string `gorm:"type:varchar(2);not null" json:"estado"`
	CEP         string `gorm:"type:varchar(9);not null" json:"cep"`
}

func (e *Endereco) String() string {
	return fmt.Sprintf("%s, %s - %s, %s/%s", e.Rua, e.Numero, e.Bairro, e.Cidade, e.Estado)
}
