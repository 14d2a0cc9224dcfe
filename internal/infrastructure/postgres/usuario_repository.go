package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL (usável com pool ou tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário. Username duplicado vira ErrDuplicate.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO usuarios (nome, username, senha_hash, role)
		 VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		usuario.Nome, usuario.Username, usuario.SenhaHash, usuario.Role,
	).Scan(&usuario.ID, &usuario.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByUsername busca um usuário pelo login.
func (r *UsuarioRepo) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.get(ctx, `WHERE username = $1`, username)
}

func (r *UsuarioRepo) get(ctx context.Context, where string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx,
		`SELECT id, nome, username, senha_hash, role, created_at FROM usuarios `+where, arg,
	).Scan(&u.ID, &u.Nome, &u.Username, &u.SenhaHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
