package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/estoque-restaurante/estoque-api/internal/application/auth"
	"github.com/estoque-restaurante/estoque-api/internal/application/estoque"
	"github.com/estoque-restaurante/estoque-api/internal/application/usecase"
	"github.com/estoque-restaurante/estoque-api/internal/infrastructure/cache"
	"github.com/estoque-restaurante/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/estoque-restaurante/estoque-api/internal/interfaces/http"
	"github.com/estoque-restaurante/estoque-api/pkg/config"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	historiador := estoque.NewHistoriador(movimentacaoRepo, log)
	ajusteUC := estoque.NewAjusteUseCase(produtoRepo, historiador)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, historiador)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	historicoUC := usecase.NewHistoricoUseCase(movimentacaoRepo)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Redis é opcional: sem REDIS_ADDR as rotas de auth ficam sem rate limit.
	var cacheClient cache.Client
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedisClient(cfg.Redis.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("redis indisponível, rate limiting desligado")
		} else {
			cacheClient = rc
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.App.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization",
	}))

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Restaurante API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"nome":   "API Sistema de Estoque - Restaurante",
			"versao": "1.0.0",
		})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:   produtoUC,
		CategoriaUC: categoriaUC,
		HistoricoUC: historicoUC,
		AjusteUC:    ajusteUC,
		AuthUC:      authUC,
		Cache:       cacheClient,
		Log:         log,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
