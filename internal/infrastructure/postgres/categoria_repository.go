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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementação do porto CategoriaRepository sobre PostgreSQL (usável com pool ou tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository constrói o adaptador de persistência de categorias. Passar pool ou tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste uma nova categoria. Nome duplicado vira ErrDuplicate.
func (r *CategoriaRepo) Create(ctx context.Context, categoria *entity.Categoria) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO categorias (nome) VALUES ($1) RETURNING id, created_at`,
		categoria.Nome,
	).Scan(&categoria.ID, &categoria.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID busca uma categoria por ID.
func (r *CategoriaRepo) GetByID(ctx context.Context, id int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(ctx,
		`SELECT id, nome, created_at FROM categorias WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nome, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// List lista todas as categorias ordenadas por nome.
func (r *CategoriaRepo) List(ctx context.Context) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nome, created_at FROM categorias ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("listar categorias: %w", err)
	}
	defer rows.Close()
	list := []*entity.Categoria{}
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nome, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update renomeia a categoria. Nome duplicado vira ErrDuplicate.
func (r *CategoriaRepo) Update(ctx context.Context, categoria *entity.Categoria) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE categorias SET nome = $2 WHERE id = $1`,
		categoria.ID, categoria.Nome,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove a categoria e retorna a linha removida.
// Produtos ainda associados (FK RESTRICT) viram ErrConflict.
func (r *CategoriaRepo) Delete(ctx context.Context, id int64) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(ctx,
		`DELETE FROM categorias WHERE id = $1 RETURNING id, nome, created_at`, id,
	).Scan(&c.ID, &c.Nome, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("delete categoria: %w", err)
	}
	return &c, nil
}
