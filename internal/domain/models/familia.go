package models

import (
	"fmt"
	"strings"
)

// Familia represents a household served by the program
type Familia struct {
	BaseModel
	Nome                    string `gorm:"type:varchar(200)" json:"nome,omitempty"` // nome de referência, opcional
	EnderecoID              uint   `gorm:"uniqueIndex;not null" json:"endereco_id"`
	Observacoes             string `gorm:"type:text" json:"observacoes,omitempty"`
	RecebeProgramasSociais  bool   `gorm:"default:false" json:"recebe_programas_sociais"`
	ProgramasSociais        string `gorm:"type:text" json:"programas_sociais,omitempty"` // lista em texto livre

	// Relations
	Endereco      *Endereco       `gorm:"foreignKey:EnderecoID;constraint:OnDelete:RESTRICT" json:"endereco,omitempty"`
	Responsaveis  []Responsavel   `gorm:"foreignKey:FamiliaID" json:"responsaveis,omitempty"`
	Membros       []MembroFamilia `gorm:"foreignKey:FamiliaID" json:"membros,omitempty"`
	EntregasCesta []EntregaCesta  `gorm:"foreignKey:FamiliaID" json:"entregas_cestas,omitempty"`
}

// DisplayName returns the reference name or a positional label
func (f *Familia) DisplayName() string {
	if f.Nome != "" {
		return f.Nome
	}
	return fmt.Sprintf("Família #%d", f.ID)
}

// SplitProgramasSociais tokenizes the free-text program list: split on comma,
// semicolon or newline, trim whitespace, drop empty tokens.
func SplitProgramasSociais(texto string) []string {
	normalizado := strings.NewReplacer(";", ",", "\n", ",").Replace(texto)

	var programas []string
	for _, token := range strings.Split(normalizado, ",") {
		if p := strings.TrimSpace(token); p != "" {
			programas = append(programas, p)
		}
	}
	return programas
}
