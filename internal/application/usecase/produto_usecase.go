package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/application/estoque"
	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
)

// DiasVencimentoPadrao janela padrão do alerta de produtos vencendo.
const DiasVencimentoPadrao = 7

// ProdutoUseCase casos de uso CRUD e consultas de produtos.
// Toda mutação grava uma movimentação no histórico (best-effort).
type ProdutoUseCase struct {
	repo        repository.ProdutoRepository
	historiador *estoque.Historiador
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository, historiador *estoque.Historiador) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo, historiador: historiador}
}

// Criar valida e persiste um novo produto.
func (uc *ProdutoUseCase) Criar(ctx context.Context, usuarioID int64, in dto.CriarProdutoRequest) (*entity.Produto, error) {
	produto, err := uc.validar(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, produto); err != nil {
		return nil, err
	}
	uc.historiador.Registrar(ctx, &produto.ID, usuarioID, entity.MovimentacaoAdicionar,
		0, produto.Quantidade, fmt.Sprintf("Produto %q adicionado ao estoque", produto.Nome))

	// Releitura para resolver o nome da categoria na resposta.
	return uc.repo.GetByID(ctx, produto.ID)
}

// Atualizar substitui todos os campos do produto (mesma validação do Criar).
// Repetir a mesma atualização duas vezes deixa o mesmo estado persistido.
func (uc *ProdutoUseCase) Atualizar(ctx context.Context, id, usuarioID int64, in dto.CriarProdutoRequest) (*entity.Produto, error) {
	produto, err := uc.validar(in)
	if err != nil {
		return nil, err
	}
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	produto.ID = id
	if err := uc.repo.Update(ctx, produto); err != nil {
		return nil, err
	}
	uc.historiador.Registrar(ctx, &id, usuarioID, entity.MovimentacaoEditar,
		atual.Quantidade, produto.Quantidade, fmt.Sprintf("Produto %q atualizado", produto.Nome))

	return uc.repo.GetByID(ctx, id)
}

// Remover exclui o produto sem condições e devolve a linha removida.
// O registro no histórico fica com produto_id nulo (o produto já não existe).
func (uc *ProdutoUseCase) Remover(ctx context.Context, id, usuarioID int64) (*entity.Produto, error) {
	produto, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.historiador.Registrar(ctx, nil, usuarioID, entity.MovimentacaoRemover,
		produto.Quantidade, 0, fmt.Sprintf("Produto %q removido do estoque", produto.Nome))
	return produto, nil
}

// BuscarPorID busca um produto por ID.
func (uc *ProdutoUseCase) BuscarPorID(ctx context.Context, id int64) (*entity.Produto, error) {
	return uc.repo.GetByID(ctx, id)
}

// Listar lista produtos com filtros opcionais, paginado com contagem total.
// Página além do fim devolve lista vazia, não erro.
func (uc *ProdutoUseCase) Listar(ctx context.Context, filtro repository.ProdutoFiltro, page dto.PageRequest) ([]*entity.Produto, int, error) {
	return uc.repo.List(ctx, filtro, page.Limit, page.Offset())
}

// BuscarPorNome busca parcial, case-insensitive, pelo nome.
func (uc *ProdutoUseCase) BuscarPorNome(ctx context.Context, nome string) ([]*entity.Produto, error) {
	list, _, err := uc.repo.List(ctx, repository.ProdutoFiltro{Nome: nome}, 100, 0)
	return list, err
}

// PorCategoria lista os produtos de uma categoria.
func (uc *ProdutoUseCase) PorCategoria(ctx context.Context, categoriaID int64) ([]*entity.Produto, error) {
	list, _, err := uc.repo.List(ctx, repository.ProdutoFiltro{CategoriaID: categoriaID}, 100, 0)
	return list, err
}

// EstoqueBaixo lista produtos com quantidade abaixo do próprio limiar de alerta.
func (uc *ProdutoUseCase) EstoqueBaixo(ctx context.Context) ([]*entity.Produto, error) {
	return uc.repo.ListEstoqueBaixo(ctx)
}

// Vencendo lista produtos com validade nos próximos `dias` dias (padrão 7).
func (uc *ProdutoUseCase) Vencendo(ctx context.Context, dias int) ([]*entity.Produto, error) {
	if dias <= 0 {
		dias = DiasVencimentoPadrao
	}
	return uc.repo.ListVencendo(ctx, dias)
}

// validar aplica as regras de campo e monta a entidade.
func (uc *ProdutoUseCase) validar(in dto.CriarProdutoRequest) (*entity.Produto, error) {
	nome := strings.TrimSpace(in.Nome)
	if len([]rune(nome)) < 2 {
		return nil, fmt.Errorf("nome deve ter pelo menos 2 caracteres: %w", domain.ErrInvalidInput)
	}
	if in.CategoriaID <= 0 {
		return nil, fmt.Errorf("categoriaId é obrigatório: %w", domain.ErrInvalidInput)
	}
	if in.Quantidade < 0 {
		return nil, fmt.Errorf("quantidade não pode ser negativa: %w", domain.ErrInvalidInput)
	}
	unidade := strings.TrimSpace(in.Unidade)
	if unidade == "" {
		return nil, fmt.Errorf("unidade é obrigatória: %w", domain.ErrInvalidInput)
	}
	minima := entity.QuantidadeMinimaPadrao
	if in.QuantidadeMinima != nil {
		if *in.QuantidadeMinima < 0 {
			return nil, fmt.Errorf("quantidadeMinima não pode ser negativa: %w", domain.ErrInvalidInput)
		}
		minima = *in.QuantidadeMinima
	}
	validade, err := parseDataValidade(in.DataValidade)
	if err != nil {
		return nil, err
	}
	return &entity.Produto{
		Nome:             nome,
		CategoriaID:      in.CategoriaID,
		Quantidade:       in.Quantidade,
		Unidade:          unidade,
		QuantidadeMinima: minima,
		DataValidade:     validade,
		Fornecedor:       strings.TrimSpace(in.Fornecedor),
	}, nil
}

func parseDataValidade(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("dataValidade em formato inválido (use AAAA-MM-DD): %w", domain.ErrInvalidInput)
}
