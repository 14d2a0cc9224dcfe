package dto

// LoginRequest corpo para POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

// RegistrarRequest corpo para POST /auth/registrar.
type RegistrarRequest struct {
	Nome     string `json:"nome"`
	Username string `json:"username"`
	Senha    string `json:"senha"`
}

// UsuarioResponse representação JSON de um usuário (nunca inclui a senha).
type UsuarioResponse struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse resposta de POST /auth/login.
type LoginResponse struct {
	Mensagem string          `json:"mensagem"`
	Usuario  UsuarioResponse `json:"usuario"`
	Token    string          `json:"token"`
}

// RegistrarResponse resposta de POST /auth/registrar.
type RegistrarResponse struct {
	Mensagem string          `json:"mensagem"`
	Usuario  UsuarioResponse `json:"usuario"`
}

// VerificarResponse resposta de GET /auth/verificar.
type VerificarResponse struct {
	Usuario UsuarioResponse `json:"usuario"`
}
