package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembroFiltros holds the list filters for family members
type MembroFiltros struct {
	Sexo            string
	Ativo           *bool
	TamanhoCamiseta string
	IdadeMin        *int
	IdadeMax        *int
	Busca           string // free-text: nome_completo, nome da família
	Ordering        string // nome_completo, data_nascimento
}

// InterfaceMembroService defines the family-member service interface
type InterfaceMembroService interface {
	GetAllMembros(filtros MembroFiltros, page, pageSize int) ([]models.MembroFamilia, int64, error)
	GetMembroByID(id uint) (*models.MembroFamilia, error)
	CreateMembro(membro *models.MembroFamilia) error
	UpdateMembro(id uint, updates map[string]interface{}) (*models.MembroFamilia, error)
	DeleteMembro(id uint) error
	SalvarFoto(id uint, file *multipart.FileHeader) (*models.MembroFamilia, error)
}

// MembroService manages family members
type MembroService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMembroService creates a new family-member service
func NewMembroService(db *gorm.DB, cfg *config.Config) InterfaceMembroService {
	return &MembroService{DB: db, Config: cfg}
}

var membroOrderings = map[string]string{
	"nome_completo":   "membro_familias.nome_completo",
	"data_nascimento": "membro_familias.data_nascimento",
}

// anotarIdades fills the computed age of each member
func anotarIdades(membros []models.MembroFamilia) {
	hoje := time.Now()
	for i := range membros {
		membros[i].Idade = membros[i].CalcularIdade(hoje)
	}
}

// dataLimiteIdade shifts today back by (idade+1) years, keeping month and day
func dataLimiteIdade(hoje time.Time, idade int) time.Time {
	return time.Date(hoje.Year()-idade-1, hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
}

// 1 GetAllMembros lists members with filters, the age window and ordering
func (s *MembroService) GetAllMembros(filtros MembroFiltros, page, pageSize int) ([]models.MembroFamilia, int64, error) {
	query := s.DB.Model(&models.MembroFamilia{})

	if filtros.Sexo != "" {
		query = query.Where("membro_familias.sexo = ?", filtros.Sexo)
	}
	if filtros.Ativo != nil {
		query = query.Where("membro_familias.ativo = ?", *filtros.Ativo)
	}
	if filtros.TamanhoCamiseta != "" {
		query = query.Where("membro_familias.tamanho_camiseta = ?", filtros.TamanhoCamiseta)
	}

	// The age window maps ages onto birth-date bounds: a person aged at least
	// N was born on or before today minus N years, and a person aged at most
	// N was born after today minus (N+1) years.
	hoje := time.Now()
	if filtros.IdadeMin != nil {
		limite := time.Date(hoje.Year()-*filtros.IdadeMin, hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
		query = query.Where("membro_familias.data_nascimento <= ?", limite)
	}
	if filtros.IdadeMax != nil {
		query = query.Where("membro_familias.data_nascimento >= ?", dataLimiteIdade(hoje, *filtros.IdadeMax))
	}

	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Joins("JOIN familias ON familias.id = membro_familias.familia_id").
			Where("membro_familias.nome_completo LIKE ? OR familias.nome LIKE ?", busca, busca)
	}
	if col, ok := membroOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var membros []models.MembroFamilia
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&membros).Error; err != nil {
		return nil, 0, err
	}
	anotarIdades(membros)
	return membros, total, nil
}

// 2 GetMembroByID fetches one member with computed age
func (s *MembroService) GetMembroByID(id uint) (*models.MembroFamilia, error) {
	var membro models.MembroFamilia
	if err := s.DB.First(&membro, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("membro não encontrado")
		}
		return nil, err
	}
	membro.Idade = membro.CalcularIdade(time.Now())
	return &membro, nil
}

// validarCalcado keeps shoe sizes inside the supported range
func validarCalcado(numero *int) error {
	if numero != nil && (*numero < 18 || *numero > 50) {
		return errors.New("número de calçado deve estar entre 18 e 50")
	}
	return nil
}

// 3 CreateMembro creates a member after validating the family reference
func (s *MembroService) CreateMembro(membro *models.MembroFamilia) error {
	if err := validarCalcado(membro.NumeroCalcado); err != nil {
		return err
	}
	if membro.TamanhoCamiseta != "" {
		if _, ok := models.TamanhoCamisetaOrdem[membro.TamanhoCamiseta]; !ok {
			return errors.New("tamanho de camiseta inválido")
		}
	}

	var familia models.Familia
	if err := s.DB.First(&familia, membro.FamiliaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("família não encontrada")
		}
		return err
	}

	return s.DB.Create(membro).Error
}

// 4 UpdateMembro applies a partial update
func (s *MembroService) UpdateMembro(id uint, updates map[string]interface{}) (*models.MembroFamilia, error) {
	membro, err := s.GetMembroByID(id)
	if err != nil {
		return nil, err
	}

	if numero, ok := updates["numero_calcado"].(int); ok {
		if err := validarCalcado(&numero); err != nil {
			return nil, err
		}
	}
	if tamanho, ok := updates["tamanho_camiseta"].(string); ok && tamanho != "" {
		if _, valido := models.TamanhoCamisetaOrdem[tamanho]; !valido {
			return nil, errors.New("tamanho de camiseta inválido")
		}
	}

	if err := s.DB.Model(membro).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetMembroByID(id)
}

// 5 DeleteMembro removes a member and its attendance records
func (s *MembroService) DeleteMembro(id uint) error {
	membro, err := s.GetMembroByID(id)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("membro_id = ?", id).Delete(&models.Presenca{}).Error; err != nil {
			return err
		}
		return tx.Delete(membro).Error
	})
}

// 6 SalvarFoto stores the uploaded photo under the member's media directory
// and records the relative path
func (s *MembroService) SalvarFoto(id uint, file *multipart.FileHeader) (*models.MembroFamilia, error) {
	membro, err := s.GetMembroByID(id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return nil, errors.New("arquivo de foto inválido")
	}

	relDir := filepath.Join("membros_fotos", fmt.Sprintf("%d", membro.ID))
	destDir := filepath.Join(s.Config.MediaDir, relDir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, err
	}

	relPath := filepath.Join(relDir, uuid.NewString()+ext)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Config.MediaDir, relPath))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	if err := s.DB.Model(membro).Update("foto", relPath).Error; err != nil {
		return nil, err
	}
	membro.Foto = relPath
	return membro, nil
}
