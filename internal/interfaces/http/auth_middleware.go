package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/pkg/jwt"
)

// Locals keys para a identidade autenticada no Fiber.
const (
	LocalUsuarioID = "usuario_id"
	LocalUsername  = "username"
	LocalRole      = "role"
)

// AuthMiddleware valida o Bearer Token JWT e coloca a identidade em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return erroJSON(c, fiber.StatusUnauthorized, "Acesso negado. Token não fornecido.")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return erroJSON(c, fiber.StatusUnauthorized, "Formato esperado: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return erroJSON(c, fiber.StatusUnauthorized, "Acesso negado. Token não fornecido.")
		}
		usuarioID, username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return erroJSON(c, fiber.StatusUnauthorized, "Token inválido")
		}
		c.Locals(LocalUsuarioID, usuarioID)
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// GetUsuarioID devolve o ID do usuário autenticado (0 se não houver).
func GetUsuarioID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUsuarioID).(int64)
	return v
}

// GetUsername devolve o username do usuário autenticado.
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// GetRole devolve o role do usuário autenticado.
func GetRole(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalRole).(string)
	return v
}
