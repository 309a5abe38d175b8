package services

import (
	"fmt"
	"testing"
	"time"

	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int

// newTestDB opens a fresh in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBCounter++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	err = db.AutoMigrate(
		&models.Usuario{},
		&models.Endereco{},
		&models.Familia{},
		&models.Responsavel{},
		&models.MembroFamilia{},
		&models.Turma{},
		&models.Encontro{},
		&models.Presenca{},
		&models.EntregaCesta{},
		&models.ConfiguracaoSistema{},
	)
	if err != nil {
		t.Fatalf("falha na migração do banco de teste: %v", err)
	}

	return db
}

// newTestConfig builds a config suitable for the service tests
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		EnvType:      "LOCAL",
		JWTSecretKey: "chave-de-teste",
		MediaDir:     t.TempDir(),
	}
}

// criarFamilia inserts a family with its address and returns it
func criarFamilia(t *testing.T, db *gorm.DB, nome string) *models.Familia {
	t.Helper()

	endereco := models.Endereco{
		Rua:    "Rua das Flores",
		Numero: "123",
		Bairro: "Centro",
		Cidade: "Campinas",
		Estado: "SP",
		CEP:    "13000-000",
	}
	if err := db.Create(&endereco).Error; err != nil {
		t.Fatalf("falha ao criar endereço: %v", err)
	}

	familia := models.Familia{
		Nome:       nome,
		EnderecoID: endereco.ID,
	}
	if err := db.Create(&familia).Error; err != nil {
		t.Fatalf("falha ao criar família: %v", err)
	}
	return &familia
}

// criarMembro inserts an active member of the given family
func criarMembro(t *testing.T, db *gorm.DB, familiaID uint, nome string, nascimento time.Time) *models.MembroFamilia {
	t.Helper()

	membro := models.MembroFamilia{
		NomeCompleto:   nome,
		DataNascimento: nascimento,
		Sexo:           models.SexoFeminino,
		FamiliaID:      familiaID,
		Ativo:          true,
	}
	if err := db.Create(&membro).Error; err != nil {
		t.Fatalf("falha ao criar membro: %v", err)
	}
	return &membro
}

// criarEncontro inserts an active meeting at the given date
func criarEncontro(t *testing.T, db *gorm.DB, data time.Time) *models.Encontro {
	t.Helper()

	encontro := models.Encontro{Data: data, Ativo: true}
	if err := db.Create(&encontro).Error; err != nil {
		t.Fatalf("falha ao criar encontro: %v", err)
	}
	return &encontro
}

// dia builds a date at midnight UTC
func dia(ano int, mes time.Month, diaMes int) time.Time {
	return time.Date(ano, mes, diaMes, 0, 0, 0, 0, time.UTC)
}
