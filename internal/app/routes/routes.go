package routes

import (
	"time"

	_ "atendimento-http-service/docs"
	"atendimento-http-service/internal/app/controllers"
	"atendimento-http-service/internal/app/middleware"
	"atendimento-http-service/internal/domain/services/container"
	"atendimento-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter builds the configured engine
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// force UTF-8 in JSON responses
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})

	serviceContainer := container.NewServiceContainer(db, cfg, nil)
	middleware.InitAuthMiddleware(cfg, db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// member photos are served from the media dir
	r.Static("/media", cfg.MediaDir)

	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes wires every API route
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	api := r.Group("/api")
	registerPublicRoutes(api, container)
	registerAuthenticatedRoutes(api, container)
	registerAdminRoutes(api, container)
}

// registerPublicRoutes wires the routes served without a token
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	api.Use(middleware.IPRateLimiter(10, 20))

	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping"))

	healthGroup := api.Group("/health")
	healthGroup.GET("/status", controllers.HandleHealthFunc(container, "status"))
	healthGroup.GET("/cache-stats", controllers.HandleHealthFunc(container, "cacheStats"))

	// login gets a tighter limit than the rest of the API
	api.POST("/auth/login", middleware.CombinedRateLimiter(5, 10), controllers.HandleJWTFunc(container, "login"))
}

// registerAuthenticatedRoutes wires the routes available to any active user
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	auth := api.Group("/")
	auth.Use(middleware.Authentication())
	auth.Use(middleware.IPRateLimiter(30, 50))

	// endereços
	enderecoGroup := auth.Group("/enderecos")
	enderecoGroup.GET("", controllers.HandleEnderecoFunc(container, "getEnderecos"))
	enderecoGroup.GET("/:id", controllers.HandleEnderecoFunc(container, "getEndereco"))
	enderecoGroup.POST("", controllers.HandleEnderecoFunc(container, "createEndereco"))
	enderecoGroup.PUT("/:id", controllers.HandleEnderecoFunc(container, "updateEndereco"))
	enderecoGroup.DELETE("/:id", controllers.HandleEnderecoFunc(container, "deleteEndereco"))

	// famílias
	familiaGroup := auth.Group("/familias")
	familiaGroup.GET("", controllers.HandleFamiliaFunc(container, "getFamilias"))
	familiaGroup.GET("/:id", controllers.HandleFamiliaFunc(container, "getFamilia"))
	familiaGroup.POST("", controllers.HandleFamiliaFunc(container, "createFamilia"))
	familiaGroup.PUT("/:id", controllers.HandleFamiliaFunc(container, "updateFamilia"))
	familiaGroup.DELETE("/:id", controllers.HandleFamiliaFunc(container, "deleteFamilia"))
	familiaGroup.GET("/:id/membros", controllers.HandleFamiliaFunc(container, "getFamiliaMembros"))
	familiaGroup.GET("/:id/responsaveis", controllers.HandleFamiliaFunc(container, "getFamiliaResponsaveis"))
	familiaGroup.GET("/:id/entregas-cestas", controllers.HandleFamiliaFunc(container, "getFamiliaEntregas"))

	// responsáveis
	responsavelGroup := auth.Group("/responsaveis")
	responsavelGroup.GET("", controllers.HandleResponsavelFunc(container, "getResponsaveis"))
	responsavelGroup.GET("/:id", controllers.HandleResponsavelFunc(container, "getResponsavel"))
	responsavelGroup.POST("", controllers.HandleResponsavelFunc(container, "createResponsavel"))
	responsavelGroup.PUT("/:id", controllers.HandleResponsavelFunc(container, "updateResponsavel"))
	responsavelGroup.DELETE("/:id", controllers.HandleResponsavelFunc(container, "deleteResponsavel"))

	// membros
	membroGroup := auth.Group("/membros")
	membroGroup.GET("", controllers.HandleMembroFunc(container, "getMembros"))
	membroGroup.GET("/:id", controllers.HandleMembroFunc(container, "getMembro"))
	membroGroup.POST("", controllers.HandleMembroFunc(container, "createMembro"))
	membroGroup.PUT("/:id", controllers.HandleMembroFunc(container, "updateMembro"))
	membroGroup.DELETE("/:id", controllers.HandleMembroFunc(container, "deleteMembro"))
	membroGroup.POST("/:id/foto", controllers.HandleMembroFunc(container, "uploadFoto"))

	// turmas
	turmaGroup := auth.Group("/turmas")
	turmaGroup.GET("", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleTurmaFunc(container, "getTurmas"))
	turmaGroup.GET("/:id", controllers.HandleTurmaFunc(container, "getTurma"))
	turmaGroup.POST("", controllers.HandleTurmaFunc(container, "createTurma"))
	turmaGroup.PUT("/:id", controllers.HandleTurmaFunc(container, "updateTurma"))
	turmaGroup.DELETE("/:id", controllers.HandleTurmaFunc(container, "deleteTurma"))
	turmaGroup.GET("/:id/membros", controllers.HandleTurmaFunc(container, "getTurmaMembros"))

	// encontros
	encontroGroup := auth.Group("/encontros")
	encontroGroup.GET("", controllers.HandleEncontroFunc(container, "getEncontros"))
	encontroGroup.GET("/:id", controllers.HandleEncontroFunc(container, "getEncontro"))
	encontroGroup.POST("", controllers.HandleEncontroFunc(container, "createEncontro"))
	encontroGroup.PUT("/:id", controllers.HandleEncontroFunc(container, "updateEncontro"))
	encontroGroup.DELETE("/:id", controllers.HandleEncontroFunc(container, "deleteEncontro"))
	encontroGroup.GET("/:id/presencas", controllers.HandleEncontroFunc(container, "getEncontroPresencas"))
	encontroGroup.POST("/:id/registrar-presencas", controllers.HandleEncontroFunc(container, "registrarPresencas"))

	// presenças
	presencaGroup := auth.Group("/presencas")
	presencaGroup.GET("", controllers.HandlePresencaFunc(container, "getPresencas"))
	presencaGroup.GET("/:id", controllers.HandlePresencaFunc(container, "getPresenca"))
	presencaGroup.POST("", controllers.HandlePresencaFunc(container, "createPresenca"))
	presencaGroup.PUT("/:id", controllers.HandlePresencaFunc(container, "updatePresenca"))
	presencaGroup.DELETE("/:id", controllers.HandlePresencaFunc(container, "deletePresenca"))

	// entregas de cesta
	entregaGroup := auth.Group("/entregas-cestas")
	entregaGroup.GET("", controllers.HandleEntregaFunc(container, "getEntregas"))
	entregaGroup.GET("/resumo-mensal", middleware.Cache(middleware.CacheConfig{Expiration: 1 * time.Minute}), controllers.HandleEntregaFunc(container, "resumoMensal"))
	entregaGroup.GET("/:id", controllers.HandleEntregaFunc(container, "getEntrega"))
	entregaGroup.POST("", controllers.HandleEntregaFunc(container, "createEntrega"))
	entregaGroup.PUT("/:id", controllers.HandleEntregaFunc(container, "updateEntrega"))
	entregaGroup.DELETE("/:id", controllers.HandleEntregaFunc(container, "deleteEntrega"))

	// configurações: leitura para qualquer usuário autenticado
	configuracaoGroup := auth.Group("/configuracoes")
	configuracaoGroup.GET("", controllers.HandleConfiguracaoFunc(container, "getConfiguracoes"))
	configuracaoGroup.GET("/:id", controllers.HandleConfiguracaoFunc(container, "getConfiguracao"))

	// relatórios
	relatorioGroup := auth.Group("/relatorios")
	relatorioGroup.GET("", controllers.HandleRelatorioFunc(container, "listRelatorios"))
	relatorioGroup.GET("/frequencia-membros", middleware.CacheByParams(1*time.Minute, "data_inicio", "data_fim", "membro_id", "familia_id"), controllers.HandleRelatorioFunc(container, "frequenciaMembros"))
	relatorioGroup.GET("/entregas-cestas", middleware.CacheByParams(1*time.Minute, "data_inicio", "data_fim"), controllers.HandleRelatorioFunc(container, "entregasCestas"))
	relatorioGroup.GET("/grade-roupas", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleRelatorioFunc(container, "gradeRoupas"))
	relatorioGroup.GET("/programas-sociais", middleware.Cache(middleware.CacheConfig{Expiration: 5 * time.Minute}), controllers.HandleRelatorioFunc(container, "programasSociais"))
}

// registerAdminRoutes wires the routes restricted to administrators
func registerAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	admin := api.Group("/")
	admin.Use(middleware.AuthenticateAdmin())
	admin.Use(middleware.IPRateLimiter(30, 50))

	// configurações: escrita apenas para administradores
	configuracaoGroup := admin.Group("/configuracoes")
	configuracaoGroup.POST("", controllers.HandleConfiguracaoFunc(container, "createConfiguracao"))
	configuracaoGroup.PUT("/:id", controllers.HandleConfiguracaoFunc(container, "updateConfiguracao"))
	configuracaoGroup.DELETE("/:id", controllers.HandleConfiguracaoFunc(container, "deleteConfiguracao"))

	// usuários
	usuarioGroup := admin.Group("/usuarios")
	usuarioGroup.GET("", controllers.HandleUsuarioFunc(container, "getUsuarios"))
	usuarioGroup.GET("/:id", controllers.HandleUsuarioFunc(container, "getUsuario"))
	usuarioGroup.POST("", controllers.HandleUsuarioFunc(container, "createUsuario"))
	usuarioGroup.PUT("/:id", controllers.HandleUsuarioFunc(container, "updateUsuario"))
	usuarioGroup.DELETE("/:id", controllers.HandleUsuarioFunc(container, "deleteUsuario"))
}
