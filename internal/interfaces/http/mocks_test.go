package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estoque-restaurante/estoque-api/internal/application/auth"
	"github.com/estoque-restaurante/estoque-api/internal/application/estoque"
	"github.com/estoque-restaurante/estoque-api/internal/application/usecase"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
	apphttp "github.com/estoque-restaurante/estoque-api/internal/interfaces/http"
	pkgjwt "github.com/estoque-restaurante/estoque-api/pkg/jwt"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "estoque-api-test"
	testExpMin    = 60
	testUsuarioID = int64(7)
)

// Mocks das interfaces de repositório para montar a aplicação completa
// (handlers + casos de uso reais) sem banco.

type MockProdutoRepository struct {
	mock.Mock
}

func (m *MockProdutoRepository) Create(ctx context.Context, produto *entity.Produto) error {
	args := m.Called(ctx, produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*entity.Produto); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdutoRepository) Update(ctx context.Context, produto *entity.Produto) error {
	args := m.Called(ctx, produto)
	return args.Error(0)
}

func (m *MockProdutoRepository) Delete(ctx context.Context, id int64) (*entity.Produto, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*entity.Produto); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdutoRepository) List(ctx context.Context, filtro repository.ProdutoFiltro, limit, offset int) ([]*entity.Produto, int, error) {
	args := m.Called(ctx, filtro, limit, offset)
	if l, ok := args.Get(0).([]*entity.Produto); ok {
		return l, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *MockProdutoRepository) ListEstoqueBaixo(ctx context.Context) ([]*entity.Produto, error) {
	args := m.Called(ctx)
	if l, ok := args.Get(0).([]*entity.Produto); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdutoRepository) ListVencendo(ctx context.Context, dias int) ([]*entity.Produto, error) {
	args := m.Called(ctx, dias)
	if l, ok := args.Get(0).([]*entity.Produto); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProdutoRepository) Creditar(ctx context.Context, id int64, qtd int) (int, error) {
	args := m.Called(ctx, id, qtd)
	return args.Int(0), args.Error(1)
}

func (m *MockProdutoRepository) Debitar(ctx context.Context, id int64, qtd int) (int, error) {
	args := m.Called(ctx, id, qtd)
	return args.Int(0), args.Error(1)
}

type MockCategoriaRepository struct {
	mock.Mock
}

func (m *MockCategoriaRepository) Create(ctx context.Context, categoria *entity.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*entity.Categoria); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoriaRepository) List(ctx context.Context) ([]*entity.Categoria, error) {
	args := m.Called(ctx)
	if l, ok := args.Get(0).([]*entity.Categoria); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCategoriaRepository) Update(ctx context.Context, categoria *entity.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) Delete(ctx context.Context, id int64) (*entity.Categoria, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*entity.Categoria); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMovimentacaoRepository struct {
	mock.Mock
}

func (m *MockMovimentacaoRepository) Create(ctx context.Context, mov *entity.Movimentacao) error {
	args := m.Called(ctx, mov)
	return args.Error(0)
}

func (m *MockMovimentacaoRepository) List(ctx context.Context, filtro repository.MovimentacaoFiltro, limit, offset int) ([]*entity.Movimentacao, int, error) {
	args := m.Called(ctx, filtro, limit, offset)
	if l, ok := args.Get(0).([]*entity.Movimentacao); ok {
		return l, args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	args := m.Called(ctx, usuario)
	return args.Error(0)
}

func (m *MockUsuarioRepository) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUsuarioRepository) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*entity.Usuario); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

// testRepos agrupa os mocks usados por buildTestApp.
type testRepos struct {
	produto      *MockProdutoRepository
	categoria    *MockCategoriaRepository
	movimentacao *MockMovimentacaoRepository
	usuario      *MockUsuarioRepository
}

func newTestRepos() *testRepos {
	return &testRepos{
		produto:      new(MockProdutoRepository),
		categoria:    new(MockCategoriaRepository),
		movimentacao: new(MockMovimentacaoRepository),
		usuario:      new(MockUsuarioRepository),
	}
}

// buildTestApp monta a aplicação Fiber completa com os casos de uso reais
// sobre os repositórios mockados. Cache nil desliga o rate limiting.
func buildTestApp(repos *testRepos) *fiber.App {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	historiador := estoque.NewHistoriador(repos.movimentacao, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProdutoUC:   usecase.NewProdutoUseCase(repos.produto, historiador),
		CategoriaUC: usecase.NewCategoriaUseCase(repos.categoria),
		HistoricoUC: usecase.NewHistoricoUseCase(repos.movimentacao),
		AjusteUC:    estoque.NewAjusteUseCase(repos.produto, historiador),
		AuthUC: auth.NewAuthUseCase(repos.usuario, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		}),
		Log:       log,
		JWTSecret: testJWTSecret,
	})
	return app
}

// tokenValido gera um Bearer token aceito pelo AuthMiddleware dos testes.
func tokenValido(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUsuarioID, "maria", entity.RoleUser, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest executa a requisição contra a app de teste.
func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
