// @title           API de Atendimento Social
// @version         1.0
// @description     API para gestão de famílias, membros, encontros, presenças e entregas de cestas básicas
// @termsOfService  http://swagger.io/terms/

// @contact.name   Suporte
// @contact.email  suporte@atendimento.local

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Informe o token no formato `Bearer {token}`
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"atendimento-http-service/internal/app/routes"
	"atendimento-http-service/internal/domain/models"
	"atendimento-http-service/internal/infrastructure/config"
	"atendimento-http-service/internal/infrastructure/database"
	Logger "atendimento-http-service/pkg/logger"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := Logger.SetupLogger(); err != nil {
		fmt.Printf("Falha ao inicializar o logger: %v\n", err)
		os.Exit(1)
	}

	// a ausência do .env não é fatal, as variáveis podem vir do ambiente
	if err := godotenv.Load(); err != nil {
		Logger.Warning("Não foi possível carregar o arquivo .env: %v", err)
	} else {
		Logger.Info("Arquivo .env carregado")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("Não foi possível criar o pool de conexões: %v", err)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("Aviso: modo drop ativo, todas as tabelas serão removidas e recriadas")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("Falha ao recriar tabelas: %v", err)
		}
	case "alter":
		log.Println("Modo alter ativo, a estrutura das tabelas será ajustada aos modelos")
		if err := alterMigrate(db); err != nil {
			log.Fatalf("Falha na migração: %v", err)
		}
	default:
		log.Println("Modo padrão ativo, apenas novas colunas e tabelas serão adicionadas")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("Falha na migração automática: %v", err)
		}
	}

	ensureAdminExists(db, cfg)
	seedConfiguracoes(db)

	r := routes.SetupRouter(db, cfg)

	port := cfg.ServerPort
	printSystemInfo(pool)

	Logger.Info("Servidor iniciado em: http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		Logger.Error("Falha ao iniciar o servidor: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds missing columns and tables, never drops anything
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
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
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// alterMigrate drops stale columns left behind by older model versions
// before running the regular migration
func alterMigrate(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("Falha ao desativar verificação de chaves estrangeiras: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	// colunas removidas dos modelos em versões anteriores
	stale := map[string][]string{
		"membro_familias": {"responsavel_principal"},
		"entrega_cestas":  {"mes_referencia"},
	}

	for table, columns := range stale {
		for _, column := range columns {
			if !db.Migrator().HasColumn(table, column) {
				continue
			}
			log.Printf("Removendo coluna obsoleta %s.%s", table, column)
			if err := db.Migrator().DropColumn(table, column); err != nil {
				log.Printf("Falha ao remover coluna %s.%s: %v", table, column, err)
			}
		}
	}

	return autoMigrate(db)
}

// dropAndRecreateTables removes every table and rebuilds the schema
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("Falha ao desativar verificação de chaves estrangeiras: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"presencas", "entrega_cestas", "encontros", "membro_familias",
		"responsavels", "familias", "enderecos", "turmas",
		"configuracao_sistemas", "usuarios",
	}

	for _, table := range tables {
		log.Printf("Removendo tabela: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("Falha ao remover tabela: %v", err)
		}
	}

	return autoMigrate(db)
}

// ensureAdminExists creates the default administrator when no admin is present
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Usuario{}).Where("tipo = ?", models.TipoAdmin).Count(&count)

	if count == 0 {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.DefaultAdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Falha ao gerar hash da senha: %v", err)
		}

		admin := models.Usuario{
			Email: cfg.DefaultAdminEmail,
			Nome:  "Administrador",
			Tipo:  models.TipoAdmin,
			Senha: string(hashedPassword),
			Ativo: true,
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Falha ao criar administrador padrão: %v", err)
		}

		log.Println("Administrador padrão criado")
	}
}

// seedConfiguracoes inserts the default system settings when missing
func seedConfiguracoes(db *gorm.DB) {
	defaults := []models.ConfiguracaoSistema{
		{Chave: "dias_encontro", Valor: "sabado", Descricao: "Dia da semana dos encontros"},
		{Chave: "limite_entregas_mes", Valor: "1", Descricao: "Entregas de cesta permitidas por família por mês"},
	}

	for _, item := range defaults {
		var count int64
		db.Model(&models.ConfiguracaoSistema{}).Where("chave = ?", item.Chave).Count(&count)
		if count == 0 {
			if err := db.Create(&item).Error; err != nil {
				log.Printf("Falha ao criar configuração padrão %s: %v", item.Chave, err)
			}
		}
	}
}

// printSystemInfo logs pool stats and runtime information on startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("Estado do pool de conexões: %+v", stats)
	}

	log.Printf("Núcleos de CPU: %d", runtime.NumCPU())
	log.Printf("Goroutines ativas: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Uso de memória: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
