package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/application/auth"
	"github.com/estoque-restaurante/estoque-api/internal/application/estoque"
	"github.com/estoque-restaurante/estoque-api/internal/application/usecase"
	"github.com/estoque-restaurante/estoque-api/internal/infrastructure/cache"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// Limites do rate limiter das rotas de autenticação.
const (
	loginRateLimite = 10
	loginRateJanela = time.Minute
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC   *usecase.ProdutoUseCase
	CategoriaUC *usecase.CategoriaUseCase
	HistoricoUC *usecase.HistoricoUseCase
	AjusteUC    *estoque.AjusteUseCase
	AuthUC      *auth.AuthUseCase
	Cache       cache.Client // nil desliga o rate limiting
	Log         *logger.Logger
	JWTSecret   string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	protegido := AuthMiddleware(deps.JWTSecret)

	// Auth (login/registro públicos, com rate limit por IP quando há cache)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := app.Group("/auth")
	if deps.Cache != nil {
		authGroup.Use(RateLimiter(deps.Cache, deps.Log, loginRateLimite, loginRateJanela))
	}
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/registrar", authHandler.Registrar)
	authGroup.Get("/verificar", protegido, authHandler.Verificar)

	// Estoque (protegido). Rotas específicas antes de /:id.
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.AjusteUC, deps.Log)
	estoqueGroup := app.Group("/estoque", protegido)
	estoqueGroup.Get("/", produtoHandler.Listar)
	estoqueGroup.Get("/buscar", produtoHandler.BuscarPorNome)
	estoqueGroup.Get("/alerta/baixo", produtoHandler.EstoqueBaixo)
	estoqueGroup.Get("/alerta/vencendo", produtoHandler.Vencendo)
	estoqueGroup.Get("/categoria/:categoriaId", produtoHandler.PorCategoria)
	estoqueGroup.Get("/:id", produtoHandler.BuscarPorID)
	estoqueGroup.Post("/", produtoHandler.Criar)
	estoqueGroup.Put("/:id", produtoHandler.Atualizar)
	estoqueGroup.Patch("/:id/quantidade", produtoHandler.AjustarQuantidade)
	estoqueGroup.Delete("/:id", produtoHandler.Remover)

	// Categorias (protegido)
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC, deps.Log)
	categorias := app.Group("/categorias", protegido)
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Post("/", categoriaHandler.Criar)
	categorias.Put("/:id", categoriaHandler.Atualizar)
	categorias.Delete("/:id", categoriaHandler.Remover)

	// Histórico (protegido, somente leitura)
	historicoHandler := NewHistoricoHandler(deps.HistoricoUC, deps.Log)
	app.Get("/historico", protegido, historicoHandler.Listar)
}
