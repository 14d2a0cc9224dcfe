package entity

import "time"

// Tipos de movimentação registrados no histórico.
const (
	MovimentacaoAdicionar = "adicionar" // produto criado
	MovimentacaoEditar    = "editar"    // produto atualizado por completo
	MovimentacaoRemover   = "remover"   // produto excluído
	MovimentacaoEntrada   = "entrada"   // ajuste de quantidade (+)
	MovimentacaoSaida     = "saida"     // ajuste de quantidade (-)
)

// TipoMovimentacaoValido informa se o tipo é um dos aceitos no histórico.
func TipoMovimentacaoValido(tipo string) bool {
	switch tipo {
	case MovimentacaoAdicionar, MovimentacaoEditar, MovimentacaoRemover,
		MovimentacaoEntrada, MovimentacaoSaida:
		return true
	}
	return false
}

// Movimentacao é um registro append-only do histórico de estoque.
// ProdutoID e UsuarioID são anuláveis: o registro sobrevive à exclusão de ambos.
type Movimentacao struct {
	ID                 string // uuid
	ProdutoID          *int64
	UsuarioID          *int64
	Tipo               string
	QuantidadeAnterior int
	QuantidadeNova     int
	Descricao          string
	CreatedAt          time.Time

	// Preenchidos via JOIN nas consultas; vazios se o produto/usuário foi removido.
	ProdutoNome     string
	UsuarioNome     string
	UsuarioUsername string
}
