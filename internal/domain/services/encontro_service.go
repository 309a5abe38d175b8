package services

import (
	"errors"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// EncontroFiltros holds the list filters for meetings
type EncontroFiltros struct {
	Ativo      *bool
	DataInicio *time.Time
	DataFim    *time.Time
	Busca      string // free-text: descricao
	Ordering   string // data, descricao
}

// PresencaEntrada is one entry of a bulk attendance submission
type PresencaEntrada struct {
	MembroID    uint   `json:"membro_id" binding:"required"`
	Presente    bool   `json:"presente"`
	Observacoes string `json:"observacoes"`
}

// Status values of a bulk attendance entry outcome
const (
	PresencaCriada     = "created"
	PresencaAtualizada = "updated"
	PresencaErro       = "error"
)

// PresencaResultado is the per-entry outcome of a bulk submission
type PresencaResultado struct {
	MembroID   uint   `json:"membro_id"`
	Status     string `json:"status"`
	PresencaID uint   `json:"presenca_id,omitempty"`
	Erro       string `json:"error,omitempty"`
}

// RegistroPresencasResultado is the full response of a bulk submission
type RegistroPresencasResultado struct {
	EncontroID uint                `json:"encontro_id"`
	Data       time.Time           `json:"data"`
	Resultados []PresencaResultado `json:"resultados"`
}

// InterfaceEncontroService defines the meeting service interface
type InterfaceEncontroService interface {
	GetAllEncontros(filtros EncontroFiltros, page, pageSize int) ([]models.Encontro, int64, error)
	GetEncontroByID(id uint) (*models.Encontro, error)
	CreateEncontro(encontro *models.Encontro) error
	UpdateEncontro(id uint, updates map[string]interface{}) (*models.Encontro, error)
	DeleteEncontro(id uint) error
	GetPresencas(id uint) ([]models.Presenca, error)
	RegistrarPresencas(id uint, entradas []PresencaEntrada, usuarioID *uint) (*RegistroPresencasResultado, error)
}

// EncontroService manages group meetings and bulk attendance
type EncontroService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEncontroService creates a new meeting service
func NewEncontroService(db *gorm.DB, cfg *config.Config) InterfaceEncontroService {
	return &EncontroService{DB: db, Config: cfg}
}

var encontroOrderings = map[string]string{
	"data":      "data",
	"descricao": "descricao",
}

// 1 GetAllEncontros lists meetings with filters, date range and ordering
func (s *EncontroService) GetAllEncontros(filtros EncontroFiltros, page, pageSize int) ([]models.Encontro, int64, error) {
	query := s.DB.Model(&models.Encontro{})

	if filtros.Ativo != nil {
		query = query.Where("ativo = ?", *filtros.Ativo)
	}
	if filtros.DataInicio != nil {
		query = query.Where("data >= ?", *filtros.DataInicio)
	}
	if filtros.DataFim != nil {
		query = query.Where("data <= ?", *filtros.DataFim)
	}
	if filtros.Busca != "" {
		query = query.Where("descricao LIKE ?", "%"+filtros.Busca+"%")
	}
	if col, ok := encontroOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	} else {
		query = query.Order("data DESC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var encontros []models.Encontro
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&encontros).Error; err != nil {
		return nil, 0, err
	}
	return encontros, total, nil
}

// 2 GetEncontroByID fetches one meeting
func (s *EncontroService) GetEncontroByID(id uint) (*models.Encontro, error) {
	var encontro models.Encontro
	if err := s.DB.First(&encontro, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("encontro não encontrado")
		}
		return nil, err
	}
	return &encontro, nil
}

// validarDataEncontro enforces one meeting per calendar date
func validarDataEncontro(tx *gorm.DB, data time.Time, excluirID uint) error {
	var count int64
	query := tx.Model(&models.Encontro{}).Where("data = ?", data)
	if excluirID > 0 {
		query = query.Where("id != ?", excluirID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("já existe um encontro cadastrado nesta data")
	}
	return nil
}

// 3 CreateEncontro creates a meeting, enforcing the unique date
func (s *EncontroService) CreateEncontro(encontro *models.Encontro) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := validarDataEncontro(tx, encontro.Data, 0); err != nil {
			return err
		}
		return tx.Create(encontro).Error
	})
}

// 4 UpdateEncontro applies a partial update, re-validating the date
func (s *EncontroService) UpdateEncontro(id uint, updates map[string]interface{}) (*models.Encontro, error) {
	encontro, err := s.GetEncontroByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if data, ok := updates["data"].(time.Time); ok {
			if err := validarDataEncontro(tx, data, id); err != nil {
				return err
			}
		}
		return tx.Model(encontro).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetEncontroByID(id)
}

// 5 DeleteEncontro removes a meeting and its attendance records
func (s *EncontroService) DeleteEncontro(id uint) error {
	encontro, err := s.GetEncontroByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("encontro_id = ?", id).Delete(&models.Presenca{}).Error; err != nil {
			return err
		}
		return tx.Delete(encontro).Error
	})
}

// 6 GetPresencas lists the attendance records of a meeting
func (s *EncontroService) GetPresencas(id uint) ([]models.Presenca, error) {
	if _, err := s.GetEncontroByID(id); err != nil {
		return nil, err
	}

	var presencas []models.Presenca
	if err := s.DB.Where("encontro_id = ?", id).Preload("Membro").Find(&presencas).Error; err != nil {
		return nil, err
	}
	return presencas, nil
}

// 7 RegistrarPresencas upserts one attendance row per entry, keyed by
// (membro, encontro). Entries fail independently; the batch never aborts.
func (s *EncontroService) RegistrarPresencas(id uint, entradas []PresencaEntrada, usuarioID *uint) (*RegistroPresencasResultado, error) {
	encontro, err := s.GetEncontroByID(id)
	if err != nil {
		return nil, err
	}

	resultado := &RegistroPresencasResultado{
		EncontroID: encontro.ID,
		Data:       encontro.Data,
		Resultados: make([]PresencaResultado, 0, len(entradas)),
	}

	for _, entrada := range entradas {
		var membro models.MembroFamilia
		if err := s.DB.Where("id = ? AND ativo = ?", entrada.MembroID, true).First(&membro).Error; err != nil {
			resultado.Resultados = append(resultado.Resultados, PresencaResultado{
				MembroID: entrada.MembroID,
				Status:   PresencaErro,
				Erro:     "membro não encontrado ou inativo",
			})
			continue
		}

		var presenca models.Presenca
		var status string
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			err := tx.Where("membro_id = ? AND encontro_id = ?", membro.ID, encontro.ID).
				First(&presenca).Error
			switch {
			case err == nil:
				status = PresencaAtualizada
				return tx.Model(&presenca).Updates(map[string]interface{}{
					"presente":            entrada.Presente,
					"observacoes":         entrada.Observacoes,
					"usuario_registro_id": usuarioID,
				}).Error
			case errors.Is(err, gorm.ErrRecordNotFound):
				status = PresencaCriada
				presenca = models.Presenca{
					MembroID:          membro.ID,
					EncontroID:        encontro.ID,
					Presente:          entrada.Presente,
					Observacoes:       entrada.Observacoes,
					UsuarioRegistroID: usuarioID,
				}
				// Select forces a false Presente past the column default
				return tx.Select("MembroID", "EncontroID", "Presente", "Observacoes", "UsuarioRegistroID").
					Create(&presenca).Error
			default:
				return err
			}
		})
		if err != nil {
			resultado.Resultados = append(resultado.Resultados, PresencaResultado{
				MembroID: entrada.MembroID,
				Status:   PresencaErro,
				Erro:     err.Error(),
			})
			continue
		}

		resultado.Resultados = append(resultado.Resultados, PresencaResultado{
			MembroID:   entrada.MembroID,
			Status:     status,
			PresencaID: presenca.ID,
		})
	}

	return resultado, nil
}
