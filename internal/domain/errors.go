package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflito com o estado atual")
	ErrUnauthorized = errors.New("não autorizado")
	ErrForbidden    = errors.New("acesso negado")
)

// ErrEstoqueInsuficiente indica que uma saída pediu mais do que há em estoque.
// Carrega a quantidade disponível para que a resposta HTTP possa informá-la.
type ErrEstoqueInsuficiente struct {
	Disponivel int
}

func (e *ErrEstoqueInsuficiente) Error() string {
	return fmt.Sprintf("quantidade insuficiente em estoque (disponível: %d)", e.Disponivel)
}
