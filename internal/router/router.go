package router

import (
	"time"

	"github.com/alencarrgabriel/GeradorRecibos/internal/config"
	"github.com/alencarrgabriel/GeradorRecibos/internal/handler"
	"github.com/alencarrgabriel/GeradorRecibos/internal/infra"
	"github.com/alencarrgabriel/GeradorRecibos/internal/middleware"
	"github.com/alencarrgabriel/GeradorRecibos/internal/repository"
	"github.com/alencarrgabriel/GeradorRecibos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, notificador service.FechamentoNotificador) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	pdfGen := infra.NewPDFGenerator(cfg.PDFStoragePath)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	gavetaRepo := repository.NewGavetaRepository(db)
	sessaoRepo := repository.NewSessaoRepository(db)
	movRepo := repository.NewMovimentacaoRepository(db)
	reciboRepo := repository.NewReciboRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	colaboradorRepo := repository.NewColaboradorRepository(db)
	prestadorRepo := repository.NewPrestadorRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	movSvc := service.NewMovimentacaoService(movRepo, sessaoRepo)
	gavetaSvc := service.NewGavetaService(sessaoRepo, movRepo, gavetaRepo, usuarioRepo, notificador)
	reciboSvc := service.NewReciboService(reciboRepo, empresaRepo, movSvc, pdfGen)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	gavetasH := handler.NewGavetaHandler(gavetaSvc, movSvc)
	recibosH := handler.NewReciboHandler(reciboSvc)
	cadastrosH := handler.NewCadastroHandler(empresaRepo, colaboradorRepo, prestadorRepo, fornecedorRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/me", authH.Me)

		// Gavetas — abertura/fechamento/movimentação rules are enforced by
		// the service layer against the acting user; drawer management is
		// admin-only at the route.
		gavetas := v1.Group("/gavetas")
		{
			gavetas.POST("", gavetasH.Criar)
			gavetas.GET("", middleware.RequireAdmin(), gavetasH.Listar)
			gavetas.POST("/:id/abrir", gavetasH.Abrir)
			gavetas.GET("/:id/saldo", gavetasH.Saldo)
			gavetas.GET("/:id/sessoes", gavetasH.SessoesDaGaveta)
		}

		sessoes := v1.Group("/sessoes")
		{
			sessoes.GET("", middleware.RequireAdmin(), gavetasH.ListarSessoes)
			sessoes.GET("/:id", gavetasH.ObterSessao)
			sessoes.GET("/:id/resumo", gavetasH.Resumo)
			sessoes.POST("/:id/fechar", gavetasH.Fechar)
			sessoes.POST("/:id/entradas", gavetasH.RegistrarEntrada)
			sessoes.POST("/:id/saidas", gavetasH.RegistrarSaida)
			sessoes.GET("/:id/movimentacoes", gavetasH.ListarMovimentacoes)
		}

		recibos := v1.Group("/recibos")
		{
			recibos.POST("", recibosH.Emitir)
			recibos.GET("", recibosH.Listar)
			recibos.GET("/:id", recibosH.Obter)
			recibos.GET("/:id/pdf", recibosH.BaixarPDF)
			recibos.DELETE("/:id", recibosH.Cancelar)
		}

		// Registry — reads for everyone authenticated, writes admin-only
		v1.GET("/empresas", cadastrosH.ListarEmpresas)
		v1.GET("/colaboradores", cadastrosH.ListarColaboradores)
		v1.GET("/prestadores", cadastrosH.ListarPrestadores)
		v1.GET("/fornecedores", cadastrosH.ListarFornecedores)

		adminMW := middleware.RequireAdmin()
		empresas := v1.Group("/empresas", adminMW)
		{
			empresas.POST("", cadastrosH.CriarEmpresa)
			empresas.PUT("/:id", cadastrosH.AtualizarEmpresa)
			empresas.DELETE("/:id", cadastrosH.RemoverEmpresa)
		}
		colaboradores := v1.Group("/colaboradores", adminMW)
		{
			colaboradores.POST("", cadastrosH.CriarColaborador)
			colaboradores.PUT("/:id", cadastrosH.AtualizarColaborador)
			colaboradores.DELETE("/:id", cadastrosH.RemoverColaborador)
		}
		prestadores := v1.Group("/prestadores", adminMW)
		{
			prestadores.POST("", cadastrosH.CriarPrestador)
			prestadores.PUT("/:id", cadastrosH.AtualizarPrestador)
			prestadores.DELETE("/:id", cadastrosH.RemoverPrestador)
		}
		fornecedores := v1.Group("/fornecedores", adminMW)
		{
			fornecedores.POST("", cadastrosH.CriarFornecedor)
			fornecedores.PUT("/:id", cadastrosH.AtualizarFornecedor)
			fornecedores.DELETE("/:id", cadastrosH.RemoverFornecedor)
		}

		usuarios := v1.Group("/usuarios", adminMW)
		{
			usuarios.POST("", authH.CriarUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.AtualizarUsuario)
			usuarios.DELETE("/:id", authH.DesativarUsuario)
			usuarios.PATCH("/:id/reativar", authH.ReativarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
