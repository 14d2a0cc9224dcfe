package estoque

import (
	"context"
	"fmt"

	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
)

// AjusteUseCase aplica entradas e saídas de estoque.
//
// O ajuste é um único UPDATE condicional no banco (ver ProdutoRepository):
// não há janela entre ler a quantidade atual e gravar a nova, então saídas
// concorrentes sobre o mesmo produto nunca ultrapassam o saldo.
type AjusteUseCase struct {
	produtoRepo repository.ProdutoRepository
	historiador *Historiador
}

// NewAjusteUseCase constrói o caso de uso de ajuste de quantidade.
func NewAjusteUseCase(produtoRepo repository.ProdutoRepository, historiador *Historiador) *AjusteUseCase {
	return &AjusteUseCase{produtoRepo: produtoRepo, historiador: historiador}
}

// AjustarQuantidade aplica uma entrada (soma) ou saída (subtração com
// verificação de saldo) e devolve o produto com a quantidade persistida.
//
// Erros: ErrInvalidInput para operação desconhecida ou quantidade não
// positiva (antes de qualquer acesso ao banco), ErrNotFound para produto
// inexistente, *ErrEstoqueInsuficiente quando a saída excede o disponível —
// nesse caso nada é debitado. Em caso de sucesso, a movimentação é gravada
// no histórico em best-effort.
func (uc *AjusteUseCase) AjustarQuantidade(ctx context.Context, produtoID, usuarioID int64, operacao string, quantidade int) (*entity.Produto, error) {
	if operacao != entity.MovimentacaoEntrada && operacao != entity.MovimentacaoSaida {
		return nil, fmt.Errorf(`operação deve ser "entrada" ou "saida": %w`, domain.ErrInvalidInput)
	}
	if quantidade <= 0 {
		return nil, fmt.Errorf("quantidade deve ser um inteiro positivo: %w", domain.ErrInvalidInput)
	}

	var (
		nova int
		err  error
	)
	switch operacao {
	case entity.MovimentacaoEntrada:
		nova, err = uc.produtoRepo.Creditar(ctx, produtoID, quantidade)
	case entity.MovimentacaoSaida:
		nova, err = uc.produtoRepo.Debitar(ctx, produtoID, quantidade)
	}
	if err != nil {
		return nil, err
	}

	anterior := nova - quantidade
	if operacao == entity.MovimentacaoSaida {
		anterior = nova + quantidade
	}

	produto, err := uc.produtoRepo.GetByID(ctx, produtoID)
	if err != nil {
		return nil, err
	}

	uc.historiador.Registrar(ctx, &produtoID, usuarioID, operacao, anterior, nova,
		fmt.Sprintf("%s de %d %s", operacao, quantidade, produto.Unidade))

	return produto, nil
}
