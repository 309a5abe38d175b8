package services

import (
	"fmt"
	"math"
	"sort"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// RelatorioDescricao describes one available report and its parameters
type RelatorioDescricao struct {
	Nome       string               `json:"nome"`
	Descricao  string               `json:"descricao"`
	Parametros []RelatorioParametro `json:"parametros"`
}

// RelatorioParametro describes one report parameter
type RelatorioParametro struct {
	Nome        string `json:"nome"`
	Tipo        string `json:"tipo"`
	Obrigatorio bool   `json:"obrigatorio"`
}

// FrequenciaDetalhe is one meeting row inside a member frequency entry
type FrequenciaDetalhe struct {
	Data        time.Time `json:"data"`
	Presente    bool      `json:"presente"`
	Observacoes string    `json:"observacoes"`
}

// FrequenciaMembro is the per-member aggregate of the frequency report
type FrequenciaMembro struct {
	MembroID             uint                `json:"membro_id"`
	MembroNome           string              `json:"membro_nome"`
	FamiliaID            uint                `json:"familia_id"`
	FamiliaNome          string              `json:"familia_nome"`
	TotalEncontros       int                 `json:"total_encontros"`
	TotalPresente        int                 `json:"total_presente"`
	TotalFaltas          int                 `json:"total_faltas"`
	FrequenciaPercentual float64             `json:"frequencia_percentual"`
	Detalhes             []FrequenciaDetalhe `json:"detalhes"`
}

// EntregaFamiliaItem is one delivery row inside a month bucket
type EntregaFamiliaItem struct {
	FamiliaID       uint      `json:"familia_id"`
	FamiliaNome     string    `json:"familia_nome"`
	DataEntrega     time.Time `json:"data_entrega"`
	UsuarioRegistro string    `json:"usuario_registro"`
	Observacoes     string    `json:"observacoes"`
}

// EntregasMes is one month bucket of the deliveries report
type EntregasMes struct {
	MesAno        string               `json:"mes_ano"` // MM/YYYY
	Mes           int                  `json:"mes"`
	Ano           int                  `json:"ano"`
	TotalEntregas int                  `json:"total_entregas"`
	Familias      []EntregaFamiliaItem `json:"familias"`
}

// GradeItem is one size bucket of the clothing grid
type GradeItem struct {
	Tamanho string `json:"tamanho,omitempty"`
	Numero  *int   `json:"numero,omitempty"`
	Total   int    `json:"total"`
}

// GradeRoupas groups active members by clothing and shoe sizes
type GradeRoupas struct {
	Camisetas []GradeItem `json:"camisetas"`
	Calcas    []GradeItem `json:"calcas"`
	Calcados  []GradeItem `json:"calcados"`
}

// ProgramaSocialItem is one program tally
type ProgramaSocialItem struct {
	Programa      string `json:"programa"`
	TotalFamilias int    `json:"total_familias"`
}

// ProgramasSociais is the social-programs report
type ProgramasSociais struct {
	TotalFamilias  int                  `json:"total_familias"`
	TotalProgramas int                  `json:"total_programas"`
	Programas      []ProgramaSocialItem `json:"programas"`
}

// InterfaceRelatorioService defines the reporting service interface
type InterfaceRelatorioService interface {
	ListRelatorios() []RelatorioDescricao
	FrequenciaMembros(dataInicio, dataFim time.Time, membroID, familiaID uint) ([]FrequenciaMembro, error)
	EntregasCestas(dataInicio, dataFim time.Time) ([]EntregasMes, error)
	GradeRoupas() (*GradeRoupas, error)
	ProgramasSociais() (*ProgramasSociais, error)
}

// RelatorioService builds the read-only reports
type RelatorioService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewRelatorioService creates a new reporting service
func NewRelatorioService(db *gorm.DB, cfg *config.Config) InterfaceRelatorioService {
	return &RelatorioService{DB: db, Config: cfg}
}

// 1 ListRelatorios returns the report catalog
func (s *RelatorioService) ListRelatorios() []RelatorioDescricao {
	return []RelatorioDescricao{
		{
			Nome:      "frequencia_membros",
			Descricao: "Frequência de membros por período",
			Parametros: []RelatorioParametro{
				{Nome: "data_inicio", Tipo: "date", Obrigatorio: true},
				{Nome: "data_fim", Tipo: "date", Obrigatorio: true},
				{Nome: "membro_id", Tipo: "integer", Obrigatorio: false},
				{Nome: "familia_id", Tipo: "integer", Obrigatorio: false},
			},
		},
		{
			Nome:      "entregas_cestas",
			Descricao: "Entregas de cestas por período",
			Parametros: []RelatorioParametro{
				{Nome: "data_inicio", Tipo: "date", Obrigatorio: true},
				{Nome: "data_fim", Tipo: "date", Obrigatorio: true},
			},
		},
		{
			Nome:       "grade_roupas",
			Descricao:  "Grade de roupas e calçados",
			Parametros: []RelatorioParametro{},
		},
		{
			Nome:       "programas_sociais",
			Descricao:  "Famílias por programa social",
			Parametros: []RelatorioParametro{},
		},
	}
}

// 2 FrequenciaMembros builds the per-member attendance report for a period.
// Meetings without a recorded attendance row count as absences.
func (s *RelatorioService) FrequenciaMembros(dataInicio, dataFim time.Time, membroID, familiaID uint) ([]FrequenciaMembro, error) {
	var encontros []models.Encontro
	if err := s.DB.Where("data >= ? AND data <= ? AND ativo = ?", dataInicio, dataFim, true).
		Order("data ASC").Find(&encontros).Error; err != nil {
		return nil, err
	}

	membrosQuery := s.DB.Preload("Familia").Where("ativo = ?", true)
	if membroID > 0 {
		membrosQuery = membrosQuery.Where("id = ?", membroID)
	}
	if familiaID > 0 {
		membrosQuery = membrosQuery.Where("familia_id = ?", familiaID)
	}
	var membros []models.MembroFamilia
	if err := membrosQuery.Find(&membros).Error; err != nil {
		return nil, err
	}

	encontroIDs := make([]uint, len(encontros))
	for i, encontro := range encontros {
		encontroIDs[i] = encontro.ID
	}

	resultado := make([]FrequenciaMembro, 0, len(membros))
	for _, membro := range membros {
		presencas := make(map[uint]models.Presenca)
		if len(encontroIDs) > 0 {
			var rows []models.Presenca
			if err := s.DB.Where("membro_id = ? AND encontro_id IN ?", membro.ID, encontroIDs).
				Find(&rows).Error; err != nil {
				return nil, err
			}
			for _, p := range rows {
				presencas[p.EncontroID] = p
			}
		}

		totalPresente := 0
		totalFaltas := 0
		detalhes := make([]FrequenciaDetalhe, 0, len(encontros))
		for _, encontro := range encontros {
			detalhe := FrequenciaDetalhe{Data: encontro.Data}
			if presenca, ok := presencas[encontro.ID]; ok {
				detalhe.Presente = presenca.Presente
				detalhe.Observacoes = presenca.Observacoes
				if presenca.Presente {
					totalPresente++
				} else {
					totalFaltas++
				}
			}
			detalhes = append(detalhes, detalhe)
		}

		frequencia := 0.0
		if len(encontros) > 0 {
			frequencia = float64(totalPresente) / float64(len(encontros)) * 100
			frequencia = math.Round(frequencia*100) / 100
		}

		resultado = append(resultado, FrequenciaMembro{
			MembroID:             membro.ID,
			MembroNome:           membro.NomeCompleto,
			FamiliaID:            membro.FamiliaID,
			FamiliaNome:          membro.Familia.DisplayName(),
			TotalEncontros:       len(encontros),
			TotalPresente:        totalPresente,
			TotalFaltas:          totalFaltas,
			FrequenciaPercentual: frequencia,
			Detalhes:             detalhes,
		})
	}

	return resultado, nil
}

// 3 EntregasCestas groups the deliveries of a period by calendar month,
// most recent month first
func (s *RelatorioService) EntregasCestas(dataInicio, dataFim time.Time) ([]EntregasMes, error) {
	var entregas []models.EntregaCesta
	if err := s.DB.Preload("Familia").Preload("UsuarioRegistro").
		Where("data_entrega >= ? AND data_entrega <= ?", dataInicio, dataFim).
		Order("data_entrega ASC").Find(&entregas).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]*EntregasMes)
	for _, entrega := range entregas {
		mesAno := fmt.Sprintf("%02d/%04d", int(entrega.DataEntrega.Month()), entrega.DataEntrega.Year())
		bucket, ok := buckets[mesAno]
		if !ok {
			bucket = &EntregasMes{
				MesAno: mesAno,
				Mes:    int(entrega.DataEntrega.Month()),
				Ano:    entrega.DataEntrega.Year(),
			}
			buckets[mesAno] = bucket
		}

		usuarioRegistro := "Sistema"
		if entrega.UsuarioRegistro != nil {
			usuarioRegistro = entrega.UsuarioRegistro.NomeCompleto()
		}

		bucket.TotalEntregas++
		bucket.Familias = append(bucket.Familias, EntregaFamiliaItem{
			FamiliaID:       entrega.FamiliaID,
			FamiliaNome:     entrega.Familia.DisplayName(),
			DataEntrega:     entrega.DataEntrega,
			UsuarioRegistro: usuarioRegistro,
			Observacoes:     entrega.Observacoes,
		})
	}

	resultado := make([]EntregasMes, 0, len(buckets))
	for _, bucket := range buckets {
		resultado = append(resultado, *bucket)
	}
	sort.Slice(resultado, func(i, j int) bool {
		if resultado[i].Ano != resultado[j].Ano {
			return resultado[i].Ano > resultado[j].Ano
		}
		return resultado[i].Mes > resultado[j].Mes
	})

	return resultado, nil
}

// 4 GradeRoupas tallies active members by shirt size, pants size and shoe
// number. Shirts follow the natural size order, pants are lexicographic and
// shoes numeric.
func (s *RelatorioService) GradeRoupas() (*GradeRoupas, error) {
	var membros []models.MembroFamilia
	if err := s.DB.Where("ativo = ?", true).Find(&membros).Error; err != nil {
		return nil, err
	}

	camisetas := make(map[string]int)
	calcas := make(map[string]int)
	calcados := make(map[int]int)
	for _, membro := range membros {
		if membro.TamanhoCamiseta != "" {
			camisetas[membro.TamanhoCamiseta]++
		}
		if membro.TamanhoCalca != "" {
			calcas[membro.TamanhoCalca]++
		}
		if membro.NumeroCalcado != nil {
			calcados[*membro.NumeroCalcado]++
		}
	}

	grade := &GradeRoupas{
		Camisetas: make([]GradeItem, 0, len(camisetas)),
		Calcas:    make([]GradeItem, 0, len(calcas)),
		Calcados:  make([]GradeItem, 0, len(calcados)),
	}

	for _, tamanho := range models.TamanhosCamiseta {
		if total, ok := camisetas[tamanho]; ok {
			grade.Camisetas = append(grade.Camisetas, GradeItem{Tamanho: tamanho, Total: total})
		}
	}

	tamanhosCalca := make([]string, 0, len(calcas))
	for tamanho := range calcas {
		tamanhosCalca = append(tamanhosCalca, tamanho)
	}
	sort.Strings(tamanhosCalca)
	for _, tamanho := range tamanhosCalca {
		grade.Calcas = append(grade.Calcas, GradeItem{Tamanho: tamanho, Total: calcas[tamanho]})
	}

	numerosCalcado := make([]int, 0, len(calcados))
	for numero := range calcados {
		numerosCalcado = append(numerosCalcado, numero)
	}
	sort.Ints(numerosCalcado)
	for _, numero := range numerosCalcado {
		n := numero
		grade.Calcados = append(grade.Calcados, GradeItem{Numero: &n, Total: calcados[numero]})
	}

	return grade, nil
}

// 5 ProgramasSociais counts families per social program. A family naming a
// program more than once counts once per occurrence.
func (s *RelatorioService) ProgramasSociais() (*ProgramasSociais, error) {
	var familias []models.Familia
	if err := s.DB.Where("recebe_programas_sociais = ?", true).Find(&familias).Error; err != nil {
		return nil, err
	}

	contagem := make(map[string]int)
	for _, familia := range familias {
		for _, programa := range models.SplitProgramasSociais(familia.ProgramasSociais) {
			contagem[programa]++
		}
	}

	programas := make([]ProgramaSocialItem, 0, len(contagem))
	for programa, total := range contagem {
		programas = append(programas, ProgramaSocialItem{Programa: programa, TotalFamilias: total})
	}
	sort.Slice(programas, func(i, j int) bool {
		if programas[i].TotalFamilias != programas[j].TotalFamilias {
			return programas[i].TotalFamilias > programas[j].TotalFamilias
		}
		return programas[i].Programa < programas[j].Programa
	})

	return &ProgramasSociais{
		TotalFamilias:  len(familias),
		TotalProgramas: len(programas),
		Programas:      programas,
	}, nil
}
