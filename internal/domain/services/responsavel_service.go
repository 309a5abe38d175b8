package services

import (
	"errors"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ResponsavelFiltros holds the list filters for guardians
type ResponsavelFiltros struct {
	Principal *bool
	Sexo      string
	Busca     string // free-text: nome_completo, cpf, telefone, nome da família
	Ordering  string // nome_completo, data_nascimento
}

// InterfaceResponsavelService defines the guardian service interface
type InterfaceResponsavelService interface {
	GetAllResponsaveis(filtros ResponsavelFiltros, page, pageSize int) ([]models.Responsavel, int64, error)
	GetResponsavelByID(id uint) (*models.Responsavel, error)
	CreateResponsavel(responsavel *models.Responsavel) error
	UpdateResponsavel(id uint, updates map[string]interface{}) (*models.Responsavel, error)
	DeleteResponsavel(id uint) error
}

// ResponsavelService manages family guardians
type ResponsavelService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewResponsavelService creates a new guardian service
func NewResponsavelService(db *gorm.DB, cfg *config.Config) InterfaceResponsavelService {
	return &ResponsavelService{DB: db, Config: cfg}
}

var responsavelOrderings = map[string]string{
	"nome_completo":   "responsavels.nome_completo",
	"data_nascimento": "responsavels.data_nascimento",
}

// 1 GetAllResponsaveis lists guardians with filters, search and ordering
func (s *ResponsavelService) GetAllResponsaveis(filtros ResponsavelFiltros, page, pageSize int) ([]models.Responsavel, int64, error) {
	query := s.DB.Model(&models.Responsavel{})

	if filtros.Principal != nil {
		query = query.Where("responsavels.principal = ?", *filtros.Principal)
	}
	if filtros.Sexo != "" {
		query = query.Where("responsavels.sexo = ?", filtros.Sexo)
	}
	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Joins("JOIN familias ON familias.id = responsavels.familia_id").
			Where("responsavels.nome_completo LIKE ? OR responsavels.cpf LIKE ? OR responsavels.telefone LIKE ? OR familias.nome LIKE ?",
				busca, busca, busca, busca)
	}
	if col, ok := responsavelOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var responsaveis []models.Responsavel
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&responsaveis).Error; err != nil {
		return nil, 0, err
	}
	return responsaveis, total, nil
}

// 2 GetResponsavelByID fetches one guardian
func (s *ResponsavelService) GetResponsavelByID(id uint) (*models.Responsavel, error) {
	var responsavel models.Responsavel
	if err := s.DB.First(&responsavel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("responsável não encontrado")
		}
		return nil, err
	}
	return &responsavel, nil
}

// validarPrincipal rejects a second principal guardian for the same family.
// Runs inside the write transaction, before the row is committed.
func validarPrincipal(tx *gorm.DB, familiaID uint, excluirID uint) error {
	var count int64
	query := tx.Model(&models.Responsavel{}).
		Where("familia_id = ? AND principal = ?", familiaID, true)
	if excluirID > 0 {
		query = query.Where("id != ?", excluirID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("já existe um responsável principal cadastrado para esta família")
	}
	return nil
}

// 3 CreateResponsavel creates a guardian after validating the family and the
// principal-uniqueness rule
func (s *ResponsavelService) CreateResponsavel(responsavel *models.Responsavel) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var familia models.Familia
		if err := tx.First(&familia, responsavel.FamiliaID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("família não encontrada")
			}
			return err
		}

		if responsavel.Principal {
			if err := validarPrincipal(tx, responsavel.FamiliaID, 0); err != nil {
				return err
			}
		}

		return tx.Create(responsavel).Error
	})
}

// 4 UpdateResponsavel applies a partial update, re-validating the principal
// rule when the flag or the family changes
func (s *ResponsavelService) UpdateResponsavel(id uint, updates map[string]interface{}) (*models.Responsavel, error) {
	responsavel, err := s.GetResponsavelByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		principal := responsavel.Principal
		if p, ok := updates["principal"].(bool); ok {
			principal = p
		}
		familiaID := responsavel.FamiliaID
		if f, ok := updates["familia_id"].(uint); ok {
			familiaID = f
		}

		if principal {
			if err := validarPrincipal(tx, familiaID, id); err != nil {
				return err
			}
		}

		return tx.Model(responsavel).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetResponsavelByID(id)
}

// 5 DeleteResponsavel removes a guardian
func (s *ResponsavelService) DeleteResponsavel(id uint) error {
	responsavel, err := s.GetResponsavelByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(responsavel).Error
}
