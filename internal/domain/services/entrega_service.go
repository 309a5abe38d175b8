package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// EntregaFiltros holds the list filters for basket deliveries
type EntregaFiltros struct {
	FamiliaID  uint
	DataInicio *time.Time
	DataFim    *time.Time
	Busca      string // free-text: nome da família, observacoes
	Ordering   string // data_entrega, data_registro
}

// ResumoMensalItem is one month bucket of the unscoped monthly rollup
type ResumoMensalItem struct {
	MesAno string `json:"mes_ano"` // MM/YYYY
	Mes    int    `json:"mes"`
	Ano    int    `json:"ano"`
	Total  int    `json:"total"`
}

// InterfaceEntregaService defines the basket-delivery service interface
type InterfaceEntregaService interface {
	GetAllEntregas(filtros EntregaFiltros, page, pageSize int) ([]models.EntregaCesta, int64, error)
	GetEntregaByID(id uint) (*models.EntregaCesta, error)
	CreateEntrega(entrega *models.EntregaCesta, usuarioID *uint) error
	UpdateEntrega(id uint, updates map[string]interface{}) (*models.EntregaCesta, error)
	DeleteEntrega(id uint) error
	ResumoMensal() ([]ResumoMensalItem, error)
}

// EntregaService manages food-basket deliveries
type EntregaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEntregaService creates a new basket-delivery service
func NewEntregaService(db *gorm.DB, cfg *config.Config) InterfaceEntregaService {
	return &EntregaService{DB: db, Config: cfg}
}

var entregaOrderings = map[string]string{
	"data_entrega":  "entrega_cestas.data_entrega DESC",
	"data_registro": "entrega_cestas.data_registro DESC",
}

// 1 GetAllEntregas lists deliveries with filters, date range and search.
// The upper bound of the range is widened by one day so the end date is
// included.
func (s *EntregaService) GetAllEntregas(filtros EntregaFiltros, page, pageSize int) ([]models.EntregaCesta, int64, error) {
	query := s.DB.Model(&models.EntregaCesta{})

	if filtros.FamiliaID > 0 {
		query = query.Where("entrega_cestas.familia_id = ?", filtros.FamiliaID)
	}
	if filtros.DataInicio != nil {
		query = query.Where("entrega_cestas.data_entrega >= ?", *filtros.DataInicio)
	}
	if filtros.DataFim != nil {
		query = query.Where("entrega_cestas.data_entrega <= ?", filtros.DataFim.AddDate(0, 0, 1))
	}
	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Joins("JOIN familias ON familias.id = entrega_cestas.familia_id").
			Where("familias.nome LIKE ? OR entrega_cestas.observacoes LIKE ?", busca, busca)
	}
	if col, ok := entregaOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	} else {
		query = query.Order("entrega_cestas.data_entrega DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entregas []models.EntregaCesta
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).
		Preload("Familia").Find(&entregas).Error; err != nil {
		return nil, 0, err
	}
	return entregas, total, nil
}

// 2 GetEntregaByID fetches one delivery
func (s *EntregaService) GetEntregaByID(id uint) (*models.EntregaCesta, error) {
	var entrega models.EntregaCesta
	if err := s.DB.Preload("Familia").First(&entrega, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("entrega não encontrada")
		}
		return nil, err
	}
	return &entrega, nil
}

// validarEntregaMensal rejects a second delivery for the same family inside
// the same calendar month. Runs inside the write transaction.
func validarEntregaMensal(tx *gorm.DB, familiaID uint, dataEntrega time.Time, excluirID uint) error {
	inicioMes := time.Date(dataEntrega.Year(), dataEntrega.Month(), 1, 0, 0, 0, 0, dataEntrega.Location())
	inicioProximoMes := inicioMes.AddDate(0, 1, 0)

	var count int64
	query := tx.Model(&models.EntregaCesta{}).
		Where("familia_id = ? AND data_entrega >= ? AND data_entrega < ?", familiaID, inicioMes, inicioProximoMes)
	if excluirID > 0 {
		query = query.Where("id != ?", excluirID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("já existe uma entrega de cesta para esta família neste mês")
	}
	return nil
}

// 3 CreateEntrega creates a delivery stamped with the recording user after
// validating the one-per-month rule
func (s *EntregaService) CreateEntrega(entrega *models.EntregaCesta, usuarioID *uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var familia models.Familia
		if err := tx.First(&familia, entrega.FamiliaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("família não encontrada")
			}
			return err
		}

		if err := validarEntregaMensal(tx, entrega.FamiliaID, entrega.DataEntrega, 0); err != nil {
			return err
		}

		entrega.UsuarioRegistroID = usuarioID
		return tx.Create(entrega).Error
	})
}

// 4 UpdateEntrega applies a partial update, re-validating the monthly rule
// when the date or the family changes
func (s *EntregaService) UpdateEntrega(id uint, updates map[string]interface{}) (*models.EntregaCesta, error) {
	entrega, err := s.GetEntregaByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		familiaID := entrega.FamiliaID
		if f, ok := updates["familia_id"].(uint); ok {
			familiaID = f
		}
		dataEntrega := entrega.DataEntrega
		if d, ok := updates["data_entrega"].(time.Time); ok {
			dataEntrega = d
		}

		if err := validarEntregaMensal(tx, familiaID, dataEntrega, id); err != nil {
			return err
		}

		return tx.Model(entrega).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetEntregaByID(id)
}

// 5 DeleteEntrega removes a delivery
func (s *EntregaService) DeleteEntrega(id uint) error {
	entrega, err := s.GetEntregaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(entrega).Error
}

// 6 ResumoMensal counts every delivery grouped by calendar month, most
// recent month first. Month and year come from the grouping key itself.
func (s *EntregaService) ResumoMensal() ([]ResumoMensalItem, error) {
	var entregas []models.EntregaCesta
	if err := s.DB.Select("data_entrega").Find(&entregas).Error; err != nil {
		return nil, err
	}

	type mesAno struct {
		ano int
		mes int
	}
	contagem := make(map[mesAno]int)
	for _, entrega := range entregas {
		chave := mesAno{ano: entrega.DataEntrega.Year(), mes: int(entrega.DataEntrega.Month())}
		contagem[chave]++
	}

	resumo := make([]ResumoMensalItem, 0, len(contagem))
	for chave, total := range contagem {
		resumo = append(resumo, ResumoMensalItem{
			MesAno: fmt.Sprintf("%02d/%04d", chave.mes, chave.ano),
			Mes:    chave.mes,
			Ano:    chave.ano,
			Total:  total,
		})
	}

	sort.Slice(resumo, func(i, j int) bool {
		if resumo[i].Ano != resumo[j].Ano {
			return resumo[i].Ano > resumo[j].Ano
		}
		return resumo[i].Mes > resumo[j].Mes
	})

	return resumo, nil
}
