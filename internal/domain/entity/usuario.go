package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Usuario representa um usuário do sistema (apenas autenticação/autorização,
// não faz parte do modelo de estoque propriamente dito).
type Usuario struct {
	ID        int64
	Nome      string
	Username  string // único
	SenhaHash string // bcrypt, nunca em claro depois de persistido
	Role      string
	CreatedAt time.Time
}
