package usecase

import (
	"context"
	"fmt"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
)

// LimitHistoricoPadrao tamanho de página padrão do histórico.
const LimitHistoricoPadrao = 50

// HistoricoUseCase consulta do histórico de movimentações (somente leitura).
type HistoricoUseCase struct {
	repo repository.MovimentacaoRepository
}

// NewHistoricoUseCase constrói o caso de uso.
func NewHistoricoUseCase(repo repository.MovimentacaoRepository) *HistoricoUseCase {
	return &HistoricoUseCase{repo: repo}
}

// Listar lista o histórico filtrado e paginado, com o total independente da
// janela de paginação.
func (uc *HistoricoUseCase) Listar(ctx context.Context, in dto.HistoricoFiltroRequest) ([]*entity.Movimentacao, int, error) {
	if in.Tipo != "" && !entity.TipoMovimentacaoValido(in.Tipo) {
		return nil, 0, fmt.Errorf("tipo de movimentação desconhecido: %w", domain.ErrInvalidInput)
	}
	filtro := repository.MovimentacaoFiltro{
		ProdutoID: in.ProdutoID,
		UsuarioID: in.UsuarioID,
		Tipo:      in.Tipo,
	}
	return uc.repo.List(ctx, filtro, in.Limit, in.Offset())
}
