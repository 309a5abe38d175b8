package services

import (
	"errors"
	"strconv"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ConfiguracaoFiltros holds the list filters for system settings
type ConfiguracaoFiltros struct {
	Busca    string // free-text: chave, descricao
	Ordering string // chave, data_atualizacao
}

// InterfaceConfiguracaoService defines the system-settings service interface
type InterfaceConfiguracaoService interface {
	GetAllConfiguracoes(filtros ConfiguracaoFiltros, page, pageSize int) ([]models.ConfiguracaoSistema, int64, error)
	GetConfiguracaoByIDOrChave(idOrChave string) (*models.ConfiguracaoSistema, error)
	GetValor(chave string) (string, error)
	CreateConfiguracao(configuracao *models.ConfiguracaoSistema) error
	UpdateConfiguracao(idOrChave string, updates map[string]interface{}) (*models.ConfiguracaoSistema, error)
	DeleteConfiguracao(idOrChave string) error
}

// ConfiguracaoService manages key/value system settings
type ConfiguracaoService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewConfiguracaoService creates a new system-settings service
func NewConfiguracaoService(db *gorm.DB, cfg *config.Config) InterfaceConfiguracaoService {
	return &ConfiguracaoService{DB: db, Config: cfg}
}

var configuracaoOrderings = map[string]string{
	"chave":            "chave ASC",
	"data_atualizacao": "data_atualizacao DESC",
}

// 1 GetAllConfiguracoes lists settings with search over chave and descricao
func (s *ConfiguracaoService) GetAllConfiguracoes(filtros ConfiguracaoFiltros, page, pageSize int) ([]models.ConfiguracaoSistema, int64, error) {
	query := s.DB.Model(&models.ConfiguracaoSistema{})

	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Where("chave LIKE ? OR descricao LIKE ?", busca, busca)
	}
	if col, ok := configuracaoOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	} else {
		query = query.Order("chave ASC")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var configuracoes []models.ConfiguracaoSistema
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&configuracoes).Error; err != nil {
		return nil, 0, err
	}
	return configuracoes, total, nil
}

// 2 GetConfiguracaoByIDOrChave resolves a setting by numeric id or by chave
func (s *ConfiguracaoService) GetConfiguracaoByIDOrChave(idOrChave string) (*models.ConfiguracaoSistema, error) {
	var configuracao models.ConfiguracaoSistema
	var err error
	if id, convErr := strconv.ParseUint(idOrChave, 10, 64); convErr == nil {
		err = s.DB.First(&configuracao, uint(id)).Error
	} else {
		err = s.DB.Where("chave = ?", idOrChave).First(&configuracao).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("configuração não encontrada")
		}
		return nil, err
	}
	return &configuracao, nil
}

// 3 GetValor returns the raw value of a setting by chave
func (s *ConfiguracaoService) GetValor(chave string) (string, error) {
	var configuracao models.ConfiguracaoSistema
	if err := s.DB.Where("chave = ?", chave).First(&configuracao).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errors.New("configuração não encontrada")
		}
		return "", err
	}
	return configuracao.Valor, nil
}

// 4 CreateConfiguracao creates a setting enforcing chave uniqueness
func (s *ConfiguracaoService) CreateConfiguracao(configuracao *models.ConfiguracaoSistema) error {
	var count int64
	if err := s.DB.Model(&models.ConfiguracaoSistema{}).
		Where("chave = ?", configuracao.Chave).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("já existe uma configuração com esta chave")
	}
	return s.DB.Create(configuracao).Error
}

// 5 UpdateConfiguracao applies a partial update, re-checking chave uniqueness
// when the chave changes
func (s *ConfiguracaoService) UpdateConfiguracao(idOrChave string, updates map[string]interface{}) (*models.ConfiguracaoSistema, error) {
	configuracao, err := s.GetConfiguracaoByIDOrChave(idOrChave)
	if err != nil {
		return nil, err
	}

	if chave, ok := updates["chave"].(string); ok && chave != configuracao.Chave {
		var count int64
		if err := s.DB.Model(&models.ConfiguracaoSistema{}).
			Where("chave = ? AND id != ?", chave, configuracao.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("já existe uma configuração com esta chave")
		}
	}

	if err := s.DB.Model(configuracao).Updates(updates).Error; err != nil {
		return nil, err
	}
	return configuracao, nil
}

// 6 DeleteConfiguracao removes a setting
func (s *ConfiguracaoService) DeleteConfiguracao(idOrChave string) error {
	configuracao, err := s.GetConfiguracaoByIDOrChave(idOrChave)
	if err != nil {
		return err
	}
	return s.DB.Delete(configuracao).Error
}
