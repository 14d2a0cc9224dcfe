package repository

import (
	"context"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// ProdutoFiltro filtros opcionais para listagem de produtos.
type ProdutoFiltro struct {
	Nome        string // busca parcial, case-insensitive
	CategoriaID int64  // 0 = sem filtro
}

// ProdutoRepository define o porto de persistência para Produto (DIP).
//
// Creditar e Debitar aplicam o ajuste de quantidade em um único UPDATE
// condicional no banco: não há leitura-e-escrita separadas, portanto dois
// ajustes concorrentes sobre o mesmo produto nunca produzem lost update
// nem deixam a quantidade negativa.
type ProdutoRepository interface {
	Create(ctx context.Context, produto *entity.Produto) error
	GetByID(ctx context.Context, id int64) (*entity.Produto, error)
	Update(ctx context.Context, produto *entity.Produto) error
	// Delete retorna o produto removido ou ErrNotFound.
	Delete(ctx context.Context, id int64) (*entity.Produto, error)
	// List retorna a página pedida e o total de produtos que casam com o filtro.
	List(ctx context.Context, filtro ProdutoFiltro, limit, offset int) ([]*entity.Produto, int, error)
	// ListEstoqueBaixo retorna produtos com quantidade abaixo do limiar de alerta.
	ListEstoqueBaixo(ctx context.Context) ([]*entity.Produto, error)
	// ListVencendo retorna produtos com data de validade nos próximos `dias` dias.
	ListVencendo(ctx context.Context, dias int) ([]*entity.Produto, error)
	// Creditar soma qtd à quantidade do produto e retorna a quantidade nova.
	Creditar(ctx context.Context, id int64, qtd int) (int, error)
	// Debitar subtrai qtd se houver saldo suficiente e retorna a quantidade nova.
	// Retorna ErrNotFound se o produto não existe e *ErrEstoqueInsuficiente
	// (com a quantidade disponível) se o saldo não cobre o pedido.
	Debitar(ctx context.Context, id int64, qtd int) (int, error)
}
