package services

import (
	"errors"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// FamiliaFiltros holds the list filters for families
type FamiliaFiltros struct {
	RecebeProgramasSociais *bool
	ProgramaSocial         string // substring match against the program list
	MembrosAtivos          bool   // only families with at least one active member
	Busca                  string // free-text: nome, rua, bairro, cidade
	Ordering               string // nome, data_cadastro
}

// InterfaceFamiliaService defines the family service interface
type InterfaceFamiliaService interface {
	GetAllFamilias(filtros FamiliaFiltros, page, pageSize int) ([]models.Familia, int64, error)
	GetFamiliaByID(id uint) (*models.Familia, error)
	CreateFamilia(familia *models.Familia, endereco *models.Endereco) error
	UpdateFamilia(id uint, updates map[string]interface{}, endereco map[string]interface{}) (*models.Familia, error)
	DeleteFamilia(id uint) error
	GetMembros(id uint) ([]models.MembroFamilia, error)
	GetResponsaveis(id uint) ([]models.Responsavel, error)
	GetEntregasCestas(id uint) ([]models.EntregaCesta, error)
}

// FamiliaService manages households and their nested address
type FamiliaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFamiliaService creates a new family service
func NewFamiliaService(db *gorm.DB, cfg *config.Config) InterfaceFamiliaService {
	return &FamiliaService{DB: db, Config: cfg}
}

var familiaOrderings = map[string]string{
	"nome":          "familias.nome",
	"data_cadastro": "familias.data_cadastro",
}

// 1 GetAllFamilias lists families with filters, search and ordering
func (s *FamiliaService) GetAllFamilias(filtros FamiliaFiltros, page, pageSize int) ([]models.Familia, int64, error) {
	query := s.DB.Model(&models.Familia{}).Preload("Endereco")

	if filtros.RecebeProgramasSociais != nil {
		query = query.Where("familias.recebe_programas_sociais = ?", *filtros.RecebeProgramasSociais)
	}
	if filtros.ProgramaSocial != "" {
		query = query.Where("familias.programas_sociais LIKE ?", "%"+filtros.ProgramaSocial+"%")
	}
	if filtros.MembrosAtivos {
		query = query.Where(
			"EXISTS (SELECT 1 FROM membro_familias m WHERE m.familia_id = familias.id AND m.ativo = ?)", true)
	}
	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Joins("JOIN enderecos ON enderecos.id = familias.endereco_id").
			Where("familias.nome LIKE ? OR enderecos.rua LIKE ? OR enderecos.bairro LIKE ? OR enderecos.cidade LIKE ?",
				busca, busca, busca, busca)
	}
	if col, ok := familiaOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var familias []models.Familia
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&familias).Error; err != nil {
		return nil, 0, err
	}
	return familias, total, nil
}

// 2 GetFamiliaByID fetches one family with its address
func (s *FamiliaService) GetFamiliaByID(id uint) (*models.Familia, error) {
	var familia models.Familia
	if err := s.DB.Preload("Endereco").First(&familia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("família não encontrada")
		}
		return nil, err
	}
	return &familia, nil
}

// 3 CreateFamilia creates the address and the family in one transaction
func (s *FamiliaService) CreateFamilia(familia *models.Familia, endereco *models.Endereco) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(endereco).Error; err != nil {
			return err
		}
		familia.EnderecoID = endereco.ID
		if err := tx.Create(familia).Error; err != nil {
			return err
		}
		familia.Endereco = endereco
		return nil
	})
}

// 4 UpdateFamilia applies a partial update, optionally updating the nested
// address in the same transaction
func (s *FamiliaService) UpdateFamilia(id uint, updates map[string]interface{}, endereco map[string]interface{}) (*models.Familia, error) {
	familia, err := s.GetFamiliaByID(id)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if len(endereco) > 0 {
			if err := tx.Model(&models.Endereco{}).Where("id = ?", familia.EnderecoID).
				Updates(endereco).Error; err != nil {
				return err
			}
		}
		if len(updates) > 0 {
			if err := tx.Model(familia).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetFamiliaByID(id)
}

// 5 DeleteFamilia removes a family; guardians, members and deliveries cascade.
// The address record is kept, mirroring the protected one-to-one relation.
func (s *FamiliaService) DeleteFamilia(id uint) error {
	familia, err := s.GetFamiliaByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("familia_id = ?", id).Delete(&models.Responsavel{}).Error; err != nil {
			return err
		}
		var membroIDs []uint
		if err := tx.Model(&models.MembroFamilia{}).Where("familia_id = ?", id).
			Pluck("id", &membroIDs).Error; err != nil {
			return err
		}
		if len(membroIDs) > 0 {
			if err := tx.Where("membro_id IN ?", membroIDs).Delete(&models.Presenca{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("familia_id = ?", id).Delete(&models.MembroFamilia{}).Error; err != nil {
			return err
		}
		if err := tx.Where("familia_id = ?", id).Delete(&models.EntregaCesta{}).Error; err != nil {
			return err
		}
		return tx.Delete(familia).Error
	})
}

// 6 GetMembros lists every member of the family
func (s *FamiliaService) GetMembros(id uint) ([]models.MembroFamilia, error) {
	if _, err := s.GetFamiliaByID(id); err != nil {
		return nil, err
	}

	var membros []models.MembroFamilia
	if err := s.DB.Where("familia_id = ?", id).Order("nome_completo").Find(&membros).Error; err != nil {
		return nil, err
	}
	anotarIdades(membros)
	return membros, nil
}

// 7 GetResponsaveis lists the family guardians, principal first
func (s *FamiliaService) GetResponsaveis(id uint) ([]models.Responsavel, error) {
	if _, err := s.GetFamiliaByID(id); err != nil {
		return nil, err
	}

	var responsaveis []models.Responsavel
	if err := s.DB.Where("familia_id = ?", id).
		Order("principal DESC").Order("nome_completo").Find(&responsaveis).Error; err != nil {
		return nil, err
	}
	return responsaveis, nil
}

// 8 GetEntregasCestas lists the family deliveries, most recent first
func (s *FamiliaService) GetEntregasCestas(id uint) ([]models.EntregaCesta, error) {
	if _, err := s.GetFamiliaByID(id); err != nil {
		return nil, err
	}

	var entregas []models.EntregaCesta
	if err := s.DB.Where("familia_id = ?", id).Order("data_entrega DESC").Find(&entregas).Error; err != nil {
		return nil, err
	}
	return entregas, nil
}
