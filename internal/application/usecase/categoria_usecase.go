package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorias.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

// Criar valida e persiste uma nova categoria. Nome duplicado vira ErrDuplicate.
func (uc *CategoriaUseCase) Criar(ctx context.Context, nome string) (*entity.Categoria, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("nome da categoria é obrigatório: %w", domain.ErrInvalidInput)
	}
	categoria := &entity.Categoria{Nome: nome}
	if err := uc.repo.Create(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// Listar lista todas as categorias.
func (uc *CategoriaUseCase) Listar(ctx context.Context) ([]*entity.Categoria, error) {
	return uc.repo.List(ctx)
}

// Atualizar renomeia a categoria.
func (uc *CategoriaUseCase) Atualizar(ctx context.Context, id int64, nome string) (*entity.Categoria, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("nome da categoria é obrigatório: %w", domain.ErrInvalidInput)
	}
	categoria, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	categoria.Nome = nome
	if err := uc.repo.Update(ctx, categoria); err != nil {
		return nil, err
	}
	return categoria, nil
}

// Remover exclui a categoria. Categorias com produtos associados viram ErrConflict.
func (uc *CategoriaUseCase) Remover(ctx context.Context, id int64) (*entity.Categoria, error) {
	return uc.repo.Delete(ctx, id)
}
