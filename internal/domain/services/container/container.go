package container

import (
	"context"
	"log"
	"sync"
	"time"

	"atendimento-http-service/internal/domain/services"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer wires every service and hands them to the controllers
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// domain services
	usuarioService      services.InterfaceUsuarioService
	enderecoService     services.InterfaceEnderecoService
	familiaService      services.InterfaceFamiliaService
	responsavelService  services.InterfaceResponsavelService
	membroService       services.InterfaceMembroService
	turmaService        services.InterfaceTurmaService
	encontroService     services.InterfaceEncontroService
	presencaService     services.InterfacePresencaService
	entregaService      services.InterfaceEntregaService
	configuracaoService services.InterfaceConfiguracaoService
	relatorioService    services.InterfaceRelatorioService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes every service
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("conexão com o banco de dados é nula")
	}
	if cfg == nil {
		panic("configuração é nula")
	}

	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Falha no teste de conexão com o Redis: %v, cache desativado", err)
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices builds every service instance
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)

	c.usuarioService = services.NewUsuarioService(c.db, c.config)
	c.enderecoService = services.NewEnderecoService(c.db, c.config)
	c.familiaService = services.NewFamiliaService(c.db, c.config)
	c.responsavelService = services.NewResponsavelService(c.db, c.config)
	c.membroService = services.NewMembroService(c.db, c.config)
	c.turmaService = services.NewTurmaService(c.db, c.config)
	c.encontroService = services.NewEncontroService(c.db, c.config)
	c.presencaService = services.NewPresencaService(c.db, c.config)
	c.entregaService = services.NewEntregaService(c.db, c.config)
	c.configuracaoService = services.NewConfiguracaoService(c.db, c.config)
	c.relatorioService = services.NewRelatorioService(c.db, c.config)
}

// GetService returns the service registered under the given name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "usuario":
		return c.usuarioService
	case "endereco":
		return c.enderecoService
	case "familia":
		return c.familiaService
	case "responsavel":
		return c.responsavelService
	case "membro":
		return c.membroService
	case "turma":
		return c.turmaService
	case "encontro":
		return c.encontroService
	case "presenca":
		return c.presencaService
	case "entrega":
		return c.entregaService
	case "configuracao":
		return c.configuracaoService
	case "relatorio":
		return c.relatorioService
	default:
		return nil
	}
}

// GetDB returns the shared database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
