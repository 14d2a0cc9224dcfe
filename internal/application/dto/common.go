package dto

// PageRequest paginação para listagens (query string).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica os valores padrão se Page/Limit não vierem na query.
func (p *PageRequest) DefaultPage(limitPadrao int) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = limitPadrao
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset converte page/limit no offset SQL.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginacao metadados de página nas respostas.
type Paginacao struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NovaPaginacao monta os metadados com totalPages = ceil(total / limit).
func NovaPaginacao(total int, page PageRequest) Paginacao {
	totalPages := 0
	if total > 0 {
		totalPages = (total + page.Limit - 1) / page.Limit
	}
	return Paginacao{
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}
}

// ErrorResponse corpo de erro HTTP.
// Disponivel só vem preenchido em erro de estoque insuficiente.
type ErrorResponse struct {
	Erro       string `json:"erro"`
	Disponivel *int   `json:"disponivel,omitempty"`
}
