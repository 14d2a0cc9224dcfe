package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/application/usecase"
	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// CategoriaHandler trata as rotas de categorias (protegidas).
type CategoriaHandler struct {
	uc  *usecase.CategoriaUseCase
	log *logger.Logger
}

// NewCategoriaHandler constrói o handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase, log *logger.Logger) *CategoriaHandler {
	return &CategoriaHandler{uc: uc, log: log}
}

// Listar godoc
// @Summary      Listar categorias
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoriaListResponse
// @Router       /categorias [get]
func (h *CategoriaHandler) Listar(c *fiber.Ctx) error {
	categorias, err := h.uc.Listar(c.Context())
	if err != nil {
		return traduzErro(c, h.log, err, "Categoria não encontrada", "Erro ao buscar categorias")
	}
	return c.JSON(dto.CategoriaListResponse{Categorias: dto.ToCategoriaResponses(categorias)})
}

// Criar godoc
// @Summary      Criar categoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoriaRequest  true  "Nome da categoria"
// @Success      201   {object}  dto.MensagemCategoriaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /categorias [post]
func (h *CategoriaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	categoria, err := h.uc.Criar(c.Context(), in.Nome)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return erroJSON(c, fiber.StatusBadRequest, "Categoria já existe")
		}
		return traduzErro(c, h.log, err, "Categoria não encontrada", "Erro ao criar categoria")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemCategoriaResponse{
		Mensagem:  "Categoria criada com sucesso",
		Categoria: dto.ToCategoriaResponse(categoria),
	})
}

// Atualizar godoc
// @Summary      Atualizar categoria
// @Tags         categorias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da categoria"
// @Param        body  body  dto.CategoriaRequest  true  "Nome novo"
// @Success      200   {object}  dto.MensagemCategoriaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categorias/{id} [put]
func (h *CategoriaHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.CategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	categoria, err := h.uc.Atualizar(c.Context(), id, in.Nome)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return erroJSON(c, fiber.StatusBadRequest, "Categoria já existe")
		}
		return traduzErro(c, h.log, err, "Categoria não encontrada", "Erro ao atualizar categoria")
	}
	return c.JSON(dto.MensagemCategoriaResponse{
		Mensagem:  "Categoria atualizada com sucesso",
		Categoria: dto.ToCategoriaResponse(categoria),
	})
}

// Remover godoc
// @Summary      Remover categoria
// @Tags         categorias
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID da categoria"
// @Success      200  {object}  dto.MensagemCategoriaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categorias/{id} [delete]
func (h *CategoriaHandler) Remover(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID inválido")
	}
	categoria, err := h.uc.Remover(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return erroJSON(c, fiber.StatusBadRequest, "Não é possível remover categoria com produtos associados")
		}
		return traduzErro(c, h.log, err, "Categoria não encontrada", "Erro ao remover categoria")
	}
	return c.JSON(dto.MensagemCategoriaResponse{
		Mensagem:  "Categoria removida com sucesso",
		Categoria: dto.ToCategoriaResponse(categoria),
	})
}
