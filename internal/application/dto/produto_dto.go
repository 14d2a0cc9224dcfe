package dto

import (
	"time"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// CriarProdutoRequest corpo para POST /estoque e PUT /estoque/:id.
// DataValidade aceita "2006-01-02" ou RFC 3339.
type CriarProdutoRequest struct {
	Nome             string `json:"nome"`
	CategoriaID      int64  `json:"categoriaId"`
	Quantidade       int    `json:"quantidade"`
	Unidade          string `json:"unidade"`
	QuantidadeMinima *int   `json:"quantidadeMinima"`
	DataValidade     string `json:"dataValidade"`
	Fornecedor       string `json:"fornecedor"`
}

// AjusteQuantidadeRequest corpo para PATCH /estoque/:id/quantidade.
type AjusteQuantidadeRequest struct {
	Operacao   string `json:"operacao"` // entrada | saida
	Quantidade int    `json:"quantidade"`
}

// ProdutoResponse representação JSON de um produto.
type ProdutoResponse struct {
	ID               int64      `json:"id"`
	Nome             string     `json:"nome"`
	CategoriaID      int64      `json:"categoria_id"`
	Categoria        string     `json:"categoria"`
	Quantidade       int        `json:"quantidade"`
	Unidade          string     `json:"unidade"`
	QuantidadeMinima int        `json:"quantidade_minima"`
	DataValidade     *time.Time `json:"data_validade,omitempty"`
	Fornecedor       string     `json:"fornecedor,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// ProdutoListResponse lista paginada de produtos (GET /estoque).
type ProdutoListResponse struct {
	Produtos  []ProdutoResponse `json:"produtos"`
	Paginacao Paginacao         `json:"paginacao"`
}

// ProdutosResponse lista simples com contagem (busca, categoria, alertas).
type ProdutosResponse struct {
	Total    int               `json:"total"`
	Produtos []ProdutoResponse `json:"produtos"`
}

// MensagemProdutoResponse resposta de mutação com o produto afetado.
type MensagemProdutoResponse struct {
	Mensagem string          `json:"mensagem"`
	Produto  ProdutoResponse `json:"produto"`
}

// ToProdutoResponse converte a entidade para a representação JSON.
func ToProdutoResponse(p *entity.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:               p.ID,
		Nome:             p.Nome,
		CategoriaID:      p.CategoriaID,
		Categoria:        p.Categoria,
		Quantidade:       p.Quantidade,
		Unidade:          p.Unidade,
		QuantidadeMinima: p.QuantidadeMinima,
		DataValidade:     p.DataValidade,
		Fornecedor:       p.Fornecedor,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToProdutoResponses converte uma lista de entidades.
func ToProdutoResponses(list []*entity.Produto) []ProdutoResponse {
	out := make([]ProdutoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProdutoResponse(p))
	}
	return out
}
