package models

import "time"

// Tamanhos de camiseta, in natural size order
var TamanhosCamiseta = []string{"PP", "P", "M", "G", "GG", "XG", "XXG"}

// TamanhoCamisetaOrdem maps a shirt size to its position in the natural order
var TamanhoCamisetaOrdem = map[string]int{
	"PP": 0, "P": 1, "M": 2, "G": 3, "GG": 4, "XG": 5, "XXG": 6,
}

// MembroFamilia represents an individual belonging to a family, tracked for
// meeting attendance and clothing needs
type MembroFamilia struct {
	BaseModel
	NomeCompleto    string    `gorm:"type:varchar(200);not null" json:"nome_completo"`
	DataNascimento  time.Time `gorm:"type:date;not null" json:"data_nascimento"`
	Sexo            string    `gorm:"type:varchar(1);not null" json:"sexo"`            // M, F, O
	NumeroCalcado   *int      `gorm:"type:smallint" json:"numero_calcado,omitempty"`   // 18 a 50
	TamanhoCalca    string    `gorm:"type:varchar(10)" json:"tamanho_calca,omitempty"` // ex: 38, 40, 42, P, M, G
	TamanhoCamiseta string    `gorm:"type:varchar(3)" json:"tamanho_camiseta,omitempty"`
	Foto            string    `gorm:"type:varchar(255)" json:"foto,omitempty"` // caminho relativo em MediaDir
	FamiliaID       uint      `gorm:"not null;index" json:"familia_id"`
	Ativo           bool      `gorm:"default:true" json:"ativo"`

	// Computed on read, never stored
	Idade int `gorm:"-" json:"idade"`

	// Relations
	Familia   *Familia   `gorm:"foreignKey:FamiliaID;constraint:OnDelete:CASCADE" json:"familia,omitempty"`
	Presencas []Presenca `gorm:"foreignKey:MembroID" json:"presencas,omitempty"`
}

// CalcularIdade computes the age in full years at the reference date.
// A member born later in the year than the reference date has not had this
// year's birthday counted yet.
func (m *MembroFamilia) CalcularIdade(hoje time.Time) int {
	idade := hoje.Year() - m.DataNascimento.Year()
	if hoje.Month() < m.DataNascimento.Month() ||
		(hoje.Month() == m.DataNascimento.Month() && hoje.Day() < m.DataNascimento.Day()) {
		idade--
	}
	return idade
}
