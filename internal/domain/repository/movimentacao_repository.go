package repository

import (
	"context"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// MovimentacaoFiltro filtros opcionais para o histórico.
type MovimentacaoFiltro struct {
	ProdutoID int64  // 0 = sem filtro
	UsuarioID int64  // 0 = sem filtro
	Tipo      string // "" = sem filtro
}

// MovimentacaoRepository define o porto de persistência do histórico (DIP).
// O histórico é append-only: a aplicação só insere e lista.
type MovimentacaoRepository interface {
	Create(ctx context.Context, mov *entity.Movimentacao) error
	// List retorna a página pedida (com produto e usuário resolvidos via
	// LEFT JOIN, ambos anuláveis) e o total independente da paginação.
	List(ctx context.Context, filtro MovimentacaoFiltro, limit, offset int) ([]*entity.Movimentacao, int, error)
}
