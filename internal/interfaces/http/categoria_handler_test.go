package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
)

// POST /categorias cria e devolve 201.
func TestCriarCategoria(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	repos.categoria.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Categoria) bool {
		return c.Nome == "Bebidas"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Categoria).ID = 3
	}).Return(nil)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/categorias",
		`{"nome": "Bebidas"}`))
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Mensagem  string `json:"mensagem"`
		Categoria struct {
			ID   int64  `json:"id"`
			Nome string `json:"nome"`
		} `json:"categoria"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(3), body.Categoria.ID)
	assert.Equal(t, "Bebidas", body.Categoria.Nome)
	repos.categoria.AssertExpectations(t)
}

// Nome duplicado: 400 com mensagem específica.
func TestCriarCategoria_Duplicada(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	repos.categoria.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/categorias",
		`{"nome": "Bebidas"}`))
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Erro string `json:"erro"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Categoria já existe", body.Erro)
}

// Exclusão de categoria ainda referenciada por produtos: 400, nada é removido.
func TestRemoverCategoria_ComProdutos(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	repos.categoria.On("Delete", mock.Anything, int64(3)).Return(nil, domain.ErrConflict)

	req := httptest.NewRequest(http.MethodDelete, "/categorias/3", nil)
	req.Header.Set("Authorization", tokenValido(t))
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Erro string `json:"erro"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Não é possível remover categoria com produtos associados", body.Erro)
}

// Categoria inexistente: 404.
func TestRemoverCategoria_NaoEncontrada(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	repos.categoria.On("Delete", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/categorias/99", nil)
	req.Header.Set("Authorization", tokenValido(t))
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
