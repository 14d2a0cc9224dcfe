package repository

import (
	"context"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
type UsuarioRepository interface {
	// Create persiste o usuário; username duplicado retorna ErrDuplicate.
	Create(ctx context.Context, usuario *entity.Usuario) error
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByUsername(ctx context.Context, username string) (*entity.Usuario, error)
}
