package estoque

import (
	"context"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// Historiador registra movimentações no histórico em modo best-effort:
// falha ao gravar é logada e engolida, nunca propaga nem desfaz a operação
// que a originou. O estoque é a fonte de verdade; o histórico é consulta.
type Historiador struct {
	repo repository.MovimentacaoRepository
	log  *logger.Logger
}

// NewHistoriador constrói o historiador.
func NewHistoriador(repo repository.MovimentacaoRepository, log *logger.Logger) *Historiador {
	return &Historiador{repo: repo, log: log}
}

// Registrar insere um registro no histórico. produtoID nil indica produto já
// removido; usuarioID 0 indica operação sem usuário autenticado (sistema).
func (h *Historiador) Registrar(ctx context.Context, produtoID *int64, usuarioID int64, tipo string, anterior, nova int, descricao string) {
	mov := &entity.Movimentacao{
		ProdutoID:          produtoID,
		Tipo:               tipo,
		QuantidadeAnterior: anterior,
		QuantidadeNova:     nova,
		Descricao:          descricao,
	}
	if usuarioID != 0 {
		mov.UsuarioID = &usuarioID
	}
	if err := h.repo.Create(ctx, mov); err != nil {
		h.log.Error().Err(err).
			Str("tipo", tipo).
			Interface("produto_id", produtoID).
			Msg("falha ao registrar histórico de movimentação")
	}
}
