package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/infrastructure/cache"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// RateLimiter limita requisições por IP numa janela fixa, com contador no
// cache compartilhado. Cache indisponível deixa a requisição passar:
// disponibilidade vale mais que a estrita contagem aqui.
func RateLimiter(client cache.Client, log *logger.Logger, limite int, janela time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "rate-limit:" + c.IP() + ":" + c.Path()
		count, err := client.Incr(c.Context(), key, janela)
		if err != nil {
			log.Warn().Err(err).Msg("rate limiter indisponível, requisição liberada")
			return c.Next()
		}
		if count > int64(limite) {
			return erroJSON(c, fiber.StatusTooManyRequests, "Muitas tentativas. Tente novamente em instantes.")
		}
		return c.Next()
	}
}
