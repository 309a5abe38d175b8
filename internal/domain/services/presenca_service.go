package services

import (
	"errors"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// PresencaFiltros holds the list filters for attendance records
type PresencaFiltros struct {
	Presente   *bool
	MembroID   uint
	EncontroID uint
	Busca      string // free-text: nome do membro, descricao do encontro, observacoes
	Ordering   string // data_registro, data do encontro
}

// InterfacePresencaService defines the attendance service interface
type InterfacePresencaService interface {
	GetAllPresencas(filtros PresencaFiltros, page, pageSize int) ([]models.Presenca, int64, error)
	GetPresencaByID(id uint) (*models.Presenca, error)
	CreatePresenca(presenca *models.Presenca, usuarioID *uint) error
	UpdatePresenca(id uint, updates map[string]interface{}) (*models.Presenca, error)
	DeletePresenca(id uint) error
}

// PresencaService manages individual attendance records
type PresencaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewPresencaService creates a new attendance service
func NewPresencaService(db *gorm.DB, cfg *config.Config) InterfacePresencaService {
	return &PresencaService{DB: db, Config: cfg}
}

var presencaOrderings = map[string]string{
	"data_registro": "presencas.data_registro DESC",
	"data_encontro": "encontros.data DESC",
}

// 1 GetAllPresencas lists attendance records with filters and search
func (s *PresencaService) GetAllPresencas(filtros PresencaFiltros, page, pageSize int) ([]models.Presenca, int64, error) {
	query := s.DB.Model(&models.Presenca{}).
		Joins("JOIN membro_familias ON membro_familias.id = presencas.membro_id").
		Joins("JOIN encontros ON encontros.id = presencas.encontro_id")

	if filtros.Presente != nil {
		query = query.Where("presencas.presente = ?", *filtros.Presente)
	}
	if filtros.MembroID > 0 {
		query = query.Where("presencas.membro_id = ?", filtros.MembroID)
	}
	if filtros.EncontroID > 0 {
		query = query.Where("presencas.encontro_id = ?", filtros.EncontroID)
	}
	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Where("membro_familias.nome_completo LIKE ? OR encontros.descricao LIKE ? OR presencas.observacoes LIKE ?",
			busca, busca, busca)
	}
	if col, ok := presencaOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	} else {
		query = query.Order("presencas.data_registro DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var presencas []models.Presenca
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).
		Preload("Membro").Preload("Encontro").Find(&presencas).Error; err != nil {
		return nil, 0, err
	}
	return presencas, total, nil
}

// 2 GetPresencaByID fetches one attendance record
func (s *PresencaService) GetPresencaByID(id uint) (*models.Presenca, error) {
	var presenca models.Presenca
	if err := s.DB.Preload("Membro").Preload("Encontro").First(&presenca, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("presença não encontrada")
		}
		return nil, err
	}
	return &presenca, nil
}

// 3 CreatePresenca creates an attendance record stamped with the recording
// user, enforcing uniqueness per (membro, encontro)
func (s *PresencaService) CreatePresenca(presenca *models.Presenca, usuarioID *uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var membro models.MembroFamilia
		if err := tx.Where("id = ? AND ativo = ?", presenca.MembroID, true).First(&membro).Error; err != nil {
			return errors.New("membro não encontrado ou inativo")
		}
		var encontro models.Encontro
		if err := tx.First(&encontro, presenca.EncontroID).Error; err != nil {
			return errors.New("encontro não encontrado")
		}

		var count int64
		if err := tx.Model(&models.Presenca{}).
			Where("membro_id = ? AND encontro_id = ?", presenca.MembroID, presenca.EncontroID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return errors.New("já existe presença registrada para este membro neste encontro")
		}

		presenca.UsuarioRegistroID = usuarioID
		// Select forces a false Presente past the column default
		return tx.Select("MembroID", "EncontroID", "Presente", "Observacoes", "UsuarioRegistroID").
			Create(presenca).Error
	})
}

// 4 UpdatePresenca applies a partial update
func (s *PresencaService) UpdatePresenca(id uint, updates map[string]interface{}) (*models.Presenca, error) {
	presenca, err := s.GetPresencaByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(presenca).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetPresencaByID(id)
}

// 5 DeletePresenca removes an attendance record
func (s *PresencaService) DeletePresenca(id uint) error {
	presenca, err := s.GetPresencaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(presenca).Error
}
