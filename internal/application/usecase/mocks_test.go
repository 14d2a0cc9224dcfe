package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// Mocks das interfaces de repositório usados pelos testes deste pacote.

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

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}
