package services

import (
	"errors"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// EnderecoFiltros holds the list filters for addresses
type EnderecoFiltros struct {
	Cidade   string
	Estado   string
	Bairro   string
	Busca    string // free-text: rua, bairro, cidade, cep
	Ordering string // cidade, bairro, rua
}

// InterfaceEnderecoService defines the address service interface
type InterfaceEnderecoService interface {
	GetAllEnderecos(filtros EnderecoFiltros, page, pageSize int) ([]models.Endereco, int64, error)
	GetEnderecoByID(id uint) (*models.Endereco, error)
	CreateEndereco(endereco *models.Endereco) error
	UpdateEndereco(id uint, updates map[string]interface{}) (*models.Endereco, error)
	DeleteEndereco(id uint) error
}

// EnderecoService manages family addresses
type EnderecoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewEnderecoService creates a new address service
func NewEnderecoService(db *gorm.DB, cfg *config.Config) InterfaceEnderecoService {
	return &EnderecoService{DB: db, Config: cfg}
}

var enderecoOrderings = map[string]string{
	"cidade": "cidade",
	"bairro": "bairro",
	"rua":    "rua",
}

// 1 GetAllEnderecos lists addresses with filters, search and ordering
func (s *EnderecoService) GetAllEnderecos(filtros EnderecoFiltros, page, pageSize int) ([]models.Endereco, int64, error) {
	query := s.DB.Model(&models.Endereco{})

	if filtros.Cidade != "" {
		query = query.Where("cidade = ?", filtros.Cidade)
	}
	if filtros.Estado != "" {
		query = query.Where("estado = ?", filtros.Estado)
	}
	if filtros.Bairro != "" {
		query = query.Where("bairro = ?", filtros.Bairro)
	}
	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Where("rua LIKE ? OR bairro LIKE ? OR cidade LIKE ? OR cep LIKE ?",
			busca, busca, busca, busca)
	}
	if col, ok := enderecoOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var enderecos []models.Endereco
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&enderecos).Error; err != nil {
		return nil, 0, err
	}
	return enderecos, total, nil
}

// 2 GetEnderecoByID fetches one address
func (s *EnderecoService) GetEnderecoByID(id uint) (*models.Endereco, error) {
	var endereco models.Endereco
	if err := s.DB.First(&endereco, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("endereço não encontrado")
		}
		return nil, err
	}
	return &endereco, nil
}

// 3 CreateEndereco creates an address
func (s *EnderecoService) CreateEndereco(endereco *models.Endereco) error {
	return s.DB.Create(endereco).Error
}

// 4 UpdateEndereco applies a partial update
func (s *EnderecoService) UpdateEndereco(id uint, updates map[string]interface{}) (*models.Endereco, error) {
	endereco, err := s.GetEnderecoByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(endereco).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetEnderecoByID(id)
}

// 5 DeleteEndereco removes an address unless a family still references it
func (s *EnderecoService) DeleteEndereco(id uint) error {
	endereco, err := s.GetEnderecoByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.DB.Model(&models.Familia{}).Where("endereco_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("endereço vinculado a uma família não pode ser excluído")
	}

	return s.DB.Delete(endereco).Error
}
