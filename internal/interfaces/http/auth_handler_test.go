package http_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	pkgjwt "github.com/estoque-restaurante/estoque-api/pkg/jwt"
)

// Login válido: 200 com token utilizável e usuário sem a senha.
func TestLogin(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	repos.usuario.On("GetByUsername", mock.Anything, "maria").Return(&entity.Usuario{
		ID:        7,
		Nome:      "Maria Silva",
		Username:  "maria",
		SenhaHash: string(hash),
		Role:      entity.RoleUser,
	}, nil)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/login",
		`{"username": "maria", "senha": "senha-forte"}`))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token   string `json:"token"`
		Usuario struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"usuario"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Token)
	assert.Equal(t, int64(7), body.Usuario.ID)

	usuarioID, username, _, err := pkgjwt.Parse(testJWTSecret, body.Token)
	require.NoError(t, err, "o token emitido deve validar com o mesmo secret")
	assert.Equal(t, int64(7), usuarioID)
	assert.Equal(t, "maria", username)
}

// Senha errada e usuário desconhecido respondem igual: 401.
func TestLogin_CredenciaisInvalidas(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	require.NoError(t, err)

	repos.usuario.On("GetByUsername", mock.Anything, "maria").Return(&entity.Usuario{
		ID: 7, Username: "maria", SenhaHash: string(hash),
	}, nil)
	repos.usuario.On("GetByUsername", mock.Anything, "fantasma").Return(nil, domain.ErrNotFound)

	for _, body := range []string{
		`{"username": "maria", "senha": "senha-errada"}`,
		`{"username": "fantasma", "senha": "qualquer"}`,
	} {
		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/login", body))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	}
}

// Registro com username já usado: 409.
func TestRegistrar_UsernameDuplicado(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	repos.usuario.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicate)

	resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/auth/registrar",
		`{"nome": "Maria Silva", "username": "maria", "senha": "senha-forte"}`))
	defer resp.Body.Close()

	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var body struct {
		Erro string `json:"erro"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Usuário já cadastrado", body.Erro)
}

// GET /auth/verificar com token de usuário já removido: 401.
func TestVerificar_UsuarioRemovido(t *testing.T) {
	repos := newTestRepos()
	app := buildTestApp(repos)

	repos.usuario.On("GetByID", mock.Anything, testUsuarioID).Return(nil, domain.ErrNotFound)

	req := jsonRequest(t, http.MethodGet, "/auth/verificar", "")
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
