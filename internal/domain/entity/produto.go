package entity

import "time"

// QuantidadeMinimaPadrao é o limiar de alerta usado quando o produto não define o seu.
const QuantidadeMinimaPadrao = 10

// Produto representa um item do estoque do restaurante.
// Quantidade nunca fica negativa: saídas são aplicadas com update condicional no banco.
type Produto struct {
	ID               int64
	Nome             string
	CategoriaID      int64
	Categoria        string // nome da categoria (preenchido via JOIN nas leituras)
	Quantidade       int
	Unidade          string // kg, litro, unidade, caixa...
	QuantidadeMinima int
	DataValidade     *time.Time // opcional
	Fornecedor       string     // opcional
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EstoqueBaixo indica se o produto está abaixo do seu limiar de alerta.
func (p *Produto) EstoqueBaixo() bool {
	return p.Quantidade < p.QuantidadeMinima
}
