package repository

import (
	"context"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// CategoriaRepository define o porto de persistência para Categoria (DIP).
type CategoriaRepository interface {
	// Create persiste a categoria; nome duplicado retorna ErrDuplicate.
	Create(ctx context.Context, categoria *entity.Categoria) error
	GetByID(ctx context.Context, id int64) (*entity.Categoria, error)
	List(ctx context.Context) ([]*entity.Categoria, error)
	Update(ctx context.Context, categoria *entity.Categoria) error
	// Delete retorna a categoria removida; ErrConflict se ainda há produtos
	// associados (violação de FK) e ErrNotFound se o id não existe.
	Delete(ctx context.Context, id int64) (*entity.Categoria, error)
}
