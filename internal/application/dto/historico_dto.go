package dto

import (
	"time"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// HistoricoFiltroRequest filtros e paginação para GET /historico (query string).
type HistoricoFiltroRequest struct {
	ProdutoID int64  `query:"produtoId"`
	UsuarioID int64  `query:"usuarioId"`
	Tipo      string `query:"tipo"`
	PageRequest
}

// MovimentacaoResponse linha do histórico com produto e usuário resolvidos.
// produto_nome e usuario_nome vêm vazios se o produto/usuário foi removido.
type MovimentacaoResponse struct {
	ID                 string    `json:"id"`
	ProdutoID          *int64    `json:"produto_id"`
	UsuarioID          *int64    `json:"usuario_id"`
	Tipo               string    `json:"tipo"`
	QuantidadeAnterior int       `json:"quantidade_anterior"`
	QuantidadeNova     int       `json:"quantidade_nova"`
	Descricao          string    `json:"descricao"`
	CreatedAt          time.Time `json:"created_at"`
	ProdutoNome        string    `json:"produto_nome,omitempty"`
	UsuarioNome        string    `json:"usuario_nome,omitempty"`
	UsuarioUsername    string    `json:"usuario_username,omitempty"`
}

// HistoricoResponse página do histórico (GET /historico).
type HistoricoResponse struct {
	Historico []MovimentacaoResponse `json:"historico"`
	Paginacao Paginacao              `json:"paginacao"`
}

// ToMovimentacaoResponse converte a entidade para a representação JSON.
func ToMovimentacaoResponse(m *entity.Movimentacao) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:                 m.ID,
		ProdutoID:          m.ProdutoID,
		UsuarioID:          m.UsuarioID,
		Tipo:               m.Tipo,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		Descricao:          m.Descricao,
		CreatedAt:          m.CreatedAt,
		ProdutoNome:        m.ProdutoNome,
		UsuarioNome:        m.UsuarioNome,
		UsuarioUsername:    m.UsuarioUsername,
	}
}
