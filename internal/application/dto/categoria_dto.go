package dto

import (
	"time"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// CategoriaRequest corpo para POST/PUT /categorias.
type CategoriaRequest struct {
	Nome string `json:"nome"`
}

// CategoriaResponse representação JSON de uma categoria.
type CategoriaResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoriaListResponse lista de categorias (GET /categorias).
type CategoriaListResponse struct {
	Categorias []CategoriaResponse `json:"categorias"`
}

// MensagemCategoriaResponse resposta de mutação com a categoria afetada.
type MensagemCategoriaResponse struct {
	Mensagem  string            `json:"mensagem"`
	Categoria CategoriaResponse `json:"categoria"`
}

// ToCategoriaResponse converte a entidade para a representação JSON.
func ToCategoriaResponse(c *entity.Categoria) CategoriaResponse {
	return CategoriaResponse{ID: c.ID, Nome: c.Nome, CreatedAt: c.CreatedAt}
}

// ToCategoriaResponses converte uma lista de entidades.
func ToCategoriaResponses(list []*entity.Categoria) []CategoriaResponse {
	out := make([]CategoriaResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCategoriaResponse(c))
	}
	return out
}
