package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/application/auth"
	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// AuthHandler trata as rotas de autenticação.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Login godoc
// @Summary      Login de usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciais"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	usuario, token, err := h.uc.Login(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return erroJSON(c, fiber.StatusUnauthorized, "Usuário ou senha inválidos")
		}
		return traduzErro(c, h.log, err, "Usuário não encontrado", "Erro ao realizar login")
	}
	return c.JSON(dto.LoginResponse{
		Mensagem: "Login realizado com sucesso",
		Usuario:  auth.ToUsuarioResponse(usuario),
		Token:    token,
	})
}

// Registrar godoc
// @Summary      Registrar novo usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarRequest  true  "Dados do usuário"
// @Success      201   {object}  dto.RegistrarResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/registrar [post]
func (h *AuthHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarRequest
	if err := c.BodyParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	usuario, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return erroJSON(c, fiber.StatusConflict, "Usuário já cadastrado")
		}
		return traduzErro(c, h.log, err, "Usuário não encontrado", "Erro ao registrar usuário")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarResponse{
		Mensagem: "Usuário registrado com sucesso",
		Usuario:  auth.ToUsuarioResponse(usuario),
	})
}

// Verificar godoc
// @Summary      Verificar validade do token
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VerificarResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/verificar [get]
func (h *AuthHandler) Verificar(c *fiber.Ctx) error {
	usuario, err := h.uc.Verificar(c.Context(), GetUsuarioID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return erroJSON(c, fiber.StatusUnauthorized, "Token inválido")
		}
		return traduzErro(c, h.log, err, "Usuário não encontrado", "Erro ao verificar token")
	}
	return c.JSON(dto.VerificarResponse{Usuario: auth.ToUsuarioResponse(usuario)})
}
