package services

import (
	"errors"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceUsuarioService defines the system-user service interface
type InterfaceUsuarioService interface {
	GetAllUsuarios(page, pageSize int) ([]models.Usuario, int64, error)
	GetUsuarioByID(id uint) (*models.Usuario, error)
	CreateUsuario(usuario *models.Usuario) error
	UpdateUsuario(id uint, updates map[string]interface{}) (*models.Usuario, error)
	DeleteUsuario(id uint) error
}

// UsuarioService manages system users
type UsuarioService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUsuarioService creates a new user service
func NewUsuarioService(db *gorm.DB, cfg *config.Config) InterfaceUsuarioService {
	return &UsuarioService{DB: db, Config: cfg}
}

// 1 GetAllUsuarios lists users with pagination
func (s *UsuarioService) GetAllUsuarios(page, pageSize int) ([]models.Usuario, int64, error) {
	var usuarios []models.Usuario
	var total int64
	if err := s.DB.Model(&models.Usuario{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := s.DB.Offset((page - 1) * pageSize).Limit(pageSize).Find(&usuarios).Error; err != nil {
		return nil, 0, err
	}
	return usuarios, total, nil
}

// 2 GetUsuarioByID fetches one user
func (s *UsuarioService) GetUsuarioByID(id uint) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := s.DB.First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("usuário não encontrado")
		}
		return nil, err
	}
	return &usuario, nil
}

// 3 CreateUsuario creates a user, enforcing e-mail uniqueness
func (s *UsuarioService) CreateUsuario(usuario *models.Usuario) error {
	var count int64
	if err := s.DB.Model(&models.Usuario{}).Where("email = ?", usuario.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("já existe um usuário com este e-mail")
	}

	return s.DB.Create(usuario).Error
}

// 4 UpdateUsuario applies a partial update
func (s *UsuarioService) UpdateUsuario(id uint, updates map[string]interface{}) (*models.Usuario, error) {
	usuario, err := s.GetUsuarioByID(id)
	if err != nil {
		return nil, err
	}

	if email, ok := updates["email"].(string); ok && email != usuario.Email {
		var count int64
		if err := s.DB.Model(&models.Usuario{}).Where("email = ? AND id != ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("já existe um usuário com este e-mail")
		}
	}

	// Plain passwords go through the model hook, never straight to the column
	if senha, ok := updates["senha"].(string); ok {
		delete(updates, "senha")
		if senha != "" {
			hashed, err := models.HashPassword(senha)
			if err != nil {
				return nil, err
			}
			updates["senha"] = hashed
		}
	}

	if err := s.DB.Model(usuario).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetUsuarioByID(id)
}

// 5 DeleteUsuario removes a user; attendance and delivery records keep a null
// recording user
func (s *UsuarioService) DeleteUsuario(id uint) error {
	usuario, err := s.GetUsuarioByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Presenca{}).Where("usuario_registro_id = ?", id).
			Update("usuario_registro_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.EntregaCesta{}).Where("usuario_registro_id = ?", id).
			Update("usuario_registro_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(usuario).Error
	})
}
