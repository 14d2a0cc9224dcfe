package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

func erroJSON(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Erro: msg})
}

// traduzErro mapeia erros de domínio para a resposta HTTP.
// msgNotFound personaliza o 404 por recurso; msgInterno é a mensagem genérica
// do 500 — o erro real nunca vaza para o cliente, só para o log.
func traduzErro(c *fiber.Ctx, log *logger.Logger, err error, msgNotFound, msgInterno string) error {
	var insuficiente *domain.ErrEstoqueInsuficiente
	switch {
	case errors.As(err, &insuficiente):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Erro:       "Quantidade insuficiente em estoque",
			Disponivel: &insuficiente.Disponivel,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return erroJSON(c, fiber.StatusBadRequest, mensagemValidacao(err))
	case errors.Is(err, domain.ErrNotFound):
		return erroJSON(c, fiber.StatusNotFound, msgNotFound)
	case errors.Is(err, domain.ErrUnauthorized):
		return erroJSON(c, fiber.StatusUnauthorized, "Não autorizado")
	case errors.Is(err, domain.ErrForbidden):
		return erroJSON(c, fiber.StatusForbidden, "Acesso negado")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg(msgInterno)
		return erroJSON(c, fiber.StatusInternalServerError, msgInterno)
	}
}

// mensagemValidacao extrai a parte legível de um erro embrulhando ErrInvalidInput
// ("nome deve ter pelo menos 2 caracteres: entrada inválida" -> só o prefixo).
func mensagemValidacao(err error) string {
	msg := err.Error()
	if prefixo, ok := strings.CutSuffix(msg, ": "+domain.ErrInvalidInput.Error()); ok && prefixo != "" {
		return prefixo
	}
	return "Dados inválidos"
}
