package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/application/usecase"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// HistoricoHandler trata a consulta do histórico de movimentações (protegida).
type HistoricoHandler struct {
	uc  *usecase.HistoricoUseCase
	log *logger.Logger
}

// NewHistoricoHandler constrói o handler.
func NewHistoricoHandler(uc *usecase.HistoricoUseCase, log *logger.Logger) *HistoricoHandler {
	return &HistoricoHandler{uc: uc, log: log}
}

// Listar godoc
// @Summary      Listar histórico de movimentações
// @Tags         historico
// @Security     Bearer
// @Produce      json
// @Param        produtoId  query  int     false  "Filtro por produto"
// @Param        usuarioId  query  int     false  "Filtro por usuário"
// @Param        tipo       query  string  false  "adicionar | editar | remover | entrada | saida"
// @Param        page       query  int     false  "Página"  default(1)
// @Param        limit      query  int     false  "Tamanho da página"  default(50)
// @Success      200  {object}  dto.HistoricoResponse
// @Router       /historico [get]
func (h *HistoricoHandler) Listar(c *fiber.Ctx) error {
	var in dto.HistoricoFiltroRequest
	if err := c.QueryParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Parâmetros de consulta inválidos")
	}
	in.DefaultPage(usecase.LimitHistoricoPadrao)

	movimentacoes, total, err := h.uc.Listar(c.Context(), in)
	if err != nil {
		return traduzErro(c, h.log, err, "Histórico não encontrado", "Erro ao listar histórico")
	}
	historico := make([]dto.MovimentacaoResponse, 0, len(movimentacoes))
	for _, m := range movimentacoes {
		historico = append(historico, dto.ToMovimentacaoResponse(m))
	}
	return c.JSON(dto.HistoricoResponse{
		Historico: historico,
		Paginacao: dto.NovaPaginacao(total, in.PageRequest),
	})
}
