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

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoColunas = `p.id, p.nome, p.categoria_id, c.nome, p.quantidade, p.unidade,
	p.quantidade_minima, p.data_validade, p.fornecedor, p.created_at, p.updated_at`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência de produtos. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um novo produto. ID e timestamps vêm do banco.
func (r *ProdutoRepo) Create(ctx context.Context, produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (nome, categoria_id, quantidade, unidade, quantidade_minima, data_validade, fornecedor)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		produto.Nome, produto.CategoriaID, produto.Quantidade, produto.Unidade,
		produto.QuantidadeMinima, produto.DataValidade, nullIfVazio(produto.Fornecedor),
	).Scan(&produto.ID, &produto.CreatedAt, &produto.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			// categoria_id não resolve
			return domain.ErrInvalidInput
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID busca um produto por ID com o nome da categoria resolvido.
func (r *ProdutoRepo) GetByID(ctx context.Context, id int64) (*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos p
		JOIN categorias c ON p.categoria_id = c.id
		WHERE p.id = $1`
	return r.scanProduto(r.q.QueryRow(ctx, query, id))
}

// Update substitui todos os campos editáveis do produto.
func (r *ProdutoRepo) Update(ctx context.Context, produto *entity.Produto) error {
	query := `
		UPDATE produtos
		SET nome = $2, categoria_id = $3, quantidade = $4, unidade = $5,
		    quantidade_minima = $6, data_validade = $7, fornecedor = $8, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`
	err := r.q.QueryRow(ctx, query,
		produto.ID, produto.Nome, produto.CategoriaID, produto.Quantidade, produto.Unidade,
		produto.QuantidadeMinima, produto.DataValidade, nullIfVazio(produto.Fornecedor),
	).Scan(&produto.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if isForeignKeyViolation(err) {
			return domain.ErrInvalidInput
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// Delete remove o produto e retorna a linha removida (RETURNING).
// O histórico não bloqueia a exclusão: as FKs do histórico são ON DELETE SET NULL.
func (r *ProdutoRepo) Delete(ctx context.Context, id int64) (*entity.Produto, error) {
	query := `
		DELETE FROM produtos p
		USING categorias c
		WHERE p.id = $1 AND c.id = p.categoria_id
		RETURNING ` + produtoColunas
	return r.scanProduto(r.q.QueryRow(ctx, query, id))
}

// List lista produtos com filtros opcionais de nome (parcial) e categoria, paginado,
// com contagem total independente da janela de paginação.
func (r *ProdutoRepo) List(ctx context.Context, filtro repository.ProdutoFiltro, limit, offset int) ([]*entity.Produto, int, error) {
	where := ""
	args := []any{}
	pos := 1
	if filtro.Nome != "" {
		where += fmt.Sprintf(" AND p.nome ILIKE $%d", pos)
		args = append(args, "%"+filtro.Nome+"%")
		pos++
	}
	if filtro.CategoriaID != 0 {
		where += fmt.Sprintf(" AND p.categoria_id = $%d", pos)
		args = append(args, filtro.CategoriaID)
		pos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM produtos p WHERE 1=1` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count produtos: %w", err)
	}

	query := `
		SELECT ` + produtoColunas + `
		FROM produtos p
		JOIN categorias c ON p.categoria_id = c.id
		WHERE 1=1` + where +
		fmt.Sprintf(" ORDER BY p.nome LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	list, err := r.queryProdutos(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListEstoqueBaixo retorna produtos com quantidade abaixo do próprio limiar de alerta.
func (r *ProdutoRepo) ListEstoqueBaixo(ctx context.Context) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos p
		JOIN categorias c ON p.categoria_id = c.id
		WHERE p.quantidade < p.quantidade_minima
		ORDER BY p.quantidade`
	return r.queryProdutos(ctx, query)
}

// ListVencendo retorna produtos cuja validade está nos próximos `dias` dias (inclui vencidos).
func (r *ProdutoRepo) ListVencendo(ctx context.Context, dias int) ([]*entity.Produto, error) {
	query := `
		SELECT ` + produtoColunas + `
		FROM produtos p
		JOIN categorias c ON p.categoria_id = c.id
		WHERE p.data_validade IS NOT NULL
		  AND p.data_validade <= now() + make_interval(days => $1)
		ORDER BY p.data_validade`
	return r.queryProdutos(ctx, query, dias)
}

// Creditar soma qtd à quantidade em um único UPDATE e retorna a quantidade nova.
func (r *ProdutoRepo) Creditar(ctx context.Context, id int64, qtd int) (int, error) {
	var nova int
	err := r.q.QueryRow(ctx,
		`UPDATE produtos SET quantidade = quantidade + $2, updated_at = now()
		 WHERE id = $1 RETURNING quantidade`,
		id, qtd,
	).Scan(&nova)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("creditar quantidade: %w", err)
	}
	return nova, nil
}

// Debitar subtrai qtd em um único UPDATE condicional: a cláusula
// `quantidade >= $2` garante que saídas concorrentes nunca deixam o saldo
// negativo nem perdem atualizações. Sem linha afetada, distingue produto
// inexistente de saldo insuficiente com uma leitura de diagnóstico.
func (r *ProdutoRepo) Debitar(ctx context.Context, id int64, qtd int) (int, error) {
	var nova int
	err := r.q.QueryRow(ctx,
		`UPDATE produtos SET quantidade = quantidade - $2, updated_at = now()
		 WHERE id = $1 AND quantidade >= $2 RETURNING quantidade`,
		id, qtd,
	).Scan(&nova)
	if err == nil {
		return nova, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("debitar quantidade: %w", err)
	}

	var disponivel int
	err = r.q.QueryRow(ctx, `SELECT quantidade FROM produtos WHERE id = $1`, id).Scan(&disponivel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("consultar quantidade disponível: %w", err)
	}
	return 0, &domain.ErrEstoqueInsuficiente{Disponivel: disponivel}
}

func (r *ProdutoRepo) queryProdutos(ctx context.Context, query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar produtos: %w", err)
	}
	defer rows.Close()
	list := []*entity.Produto{}
	for rows.Next() {
		p, err := scanProdutoRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProdutoRepo) scanProduto(row pgx.Row) (*entity.Produto, error) {
	p, err := scanProdutoRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProdutoRow(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var fornecedor *string
	err := row.Scan(
		&p.ID, &p.Nome, &p.CategoriaID, &p.Categoria, &p.Quantidade, &p.Unidade,
		&p.QuantidadeMinima, &p.DataValidade, &fornecedor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan produto: %w", err)
	}
	if fornecedor != nil {
		p.Fornecedor = *fornecedor
	}
	return &p, nil
}

func nullIfVazio(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
