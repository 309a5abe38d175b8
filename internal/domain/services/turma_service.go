package services

import (
	"errors"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// TurmaFiltros holds the list filters for age cohorts
type TurmaFiltros struct {
	Ativo    *bool
	Busca    string // free-text: nome, descricao
	Ordering string // idade_minima, nome
}

// InterfaceTurmaService defines the age-cohort service interface
type InterfaceTurmaService interface {
	GetAllTurmas(filtros TurmaFiltros, page, pageSize int) ([]models.Turma, int64, error)
	GetTurmaByID(id uint) (*models.Turma, error)
	CreateTurma(turma *models.Turma) error
	UpdateTurma(id uint, updates map[string]interface{}) (*models.Turma, error)
	DeleteTurma(id uint) error
	GetMembros(id uint) ([]models.MembroFamilia, error)
}

// TurmaService manages age cohorts
type TurmaService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewTurmaService creates a new age-cohort service
func NewTurmaService(db *gorm.DB, cfg *config.Config) InterfaceTurmaService {
	return &TurmaService{DB: db, Config: cfg}
}

var turmaOrderings = map[string]string{
	"idade_minima": "idade_minima",
	"nome":         "nome",
}

// 1 GetAllTurmas lists cohorts with filters, search and ordering
func (s *TurmaService) GetAllTurmas(filtros TurmaFiltros, page, pageSize int) ([]models.Turma, int64, error) {
	query := s.DB.Model(&models.Turma{})

	if filtros.Ativo != nil {
		query = query.Where("ativo = ?", *filtros.Ativo)
	}
	if filtros.Busca != "" {
		busca := "%" + filtros.Busca + "%"
		query = query.Where("nome LIKE ? OR descricao LIKE ?", busca, busca)
	}
	if col, ok := turmaOrderings[filtros.Ordering]; ok {
		query = query.Order(col)
	} else {
		query = query.Order("idade_minima")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var turmas []models.Turma
	if err := query.Offset((page - 1) * pageSize).Limit(pageSize).Find(&turmas).Error; err != nil {
		return nil, 0, err
	}
	return turmas, total, nil
}

// 2 GetTurmaByID fetches one cohort
func (s *TurmaService) GetTurmaByID(id uint) (*models.Turma, error) {
	var turma models.Turma
	if err := s.DB.First(&turma, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("turma não encontrada")
		}
		return nil, err
	}
	return &turma, nil
}

// validarFaixaEtaria rejects inverted or degenerate age ranges
func validarFaixaEtaria(idadeMinima, idadeMaxima int) error {
	if idadeMinima >= idadeMaxima {
		return errors.New("a idade mínima deve ser menor que a idade máxima")
	}
	return nil
}

// 3 CreateTurma creates a cohort after validating its age range
func (s *TurmaService) CreateTurma(turma *models.Turma) error {
	if err := validarFaixaEtaria(turma.IdadeMinima, turma.IdadeMaxima); err != nil {
		return err
	}
	return s.DB.Create(turma).Error
}

// 4 UpdateTurma applies a partial update, re-validating the age range
func (s *TurmaService) UpdateTurma(id uint, updates map[string]interface{}) (*models.Turma, error) {
	turma, err := s.GetTurmaByID(id)
	if err != nil {
		return nil, err
	}

	idadeMinima := turma.IdadeMinima
	if v, ok := updates["idade_minima"].(int); ok {
		idadeMinima = v
	}
	idadeMaxima := turma.IdadeMaxima
	if v, ok := updates["idade_maxima"].(int); ok {
		idadeMaxima = v
	}
	if err := validarFaixaEtaria(idadeMinima, idadeMaxima); err != nil {
		return nil, err
	}

	if err := s.DB.Model(turma).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetTurmaByID(id)
}

// 5 DeleteTurma removes a cohort
func (s *TurmaService) DeleteTurma(id uint) error {
	turma, err := s.GetTurmaByID(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(turma).Error
}

// 6 GetMembros lists the active members whose birth date falls inside the
// cohort's age window, annotated with their computed age
func (s *TurmaService) GetMembros(id uint) ([]models.MembroFamilia, error) {
	turma, err := s.GetTurmaByID(id)
	if err != nil {
		return nil, err
	}

	hoje := time.Now()
	dataNascMin := time.Date(hoje.Year()-turma.IdadeMaxima-1, hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())
	dataNascMax := time.Date(hoje.Year()-turma.IdadeMinima, hoje.Month(), hoje.Day(), 0, 0, 0, 0, hoje.Location())

	var membros []models.MembroFamilia
	if err := s.DB.
		Where("data_nascimento >= ? AND data_nascimento <= ? AND ativo = ?", dataNascMin, dataNascMax, true).
		Order("nome_completo").
		Find(&membros).Error; err != nil {
		return nil, err
	}
	anotarIdades(membros)
	return membros, nil
}
