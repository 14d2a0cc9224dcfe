package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/application/estoque"
	"github.com/estoque-restaurante/estoque-api/internal/application/usecase"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
	"github.com/estoque-restaurante/estoque-api/pkg/logger"
)

// LimitProdutosPadrao tamanho de página padrão para GET /estoque.
const LimitProdutosPadrao = 20

// ProdutoHandler trata as rotas de produtos do estoque (protegidas).
type ProdutoHandler struct {
	uc     *usecase.ProdutoUseCase
	ajuste *estoque.AjusteUseCase
	log    *logger.Logger
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase, ajuste *estoque.AjusteUseCase, log *logger.Logger) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, ajuste: ajuste, log: log}
}

// Listar godoc
// @Summary      Listar produtos do estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        nome         query  string  false  "Busca parcial por nome"
// @Param        categoriaId  query  int     false  "Filtro por categoria"
// @Param        page         query  int     false  "Página"  default(1)
// @Param        limit        query  int     false  "Tamanho da página"  default(20)
// @Success      200  {object}  dto.ProdutoListResponse
// @Router       /estoque [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Parâmetros de paginação inválidos")
	}
	page.DefaultPage(LimitProdutosPadrao)

	filtro := repository.ProdutoFiltro{
		Nome:        c.Query("nome"),
		CategoriaID: int64(c.QueryInt("categoriaId", 0)),
	}
	produtos, total, err := h.uc.Listar(c.Context(), filtro, page)
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao buscar produtos")
	}
	return c.JSON(dto.ProdutoListResponse{
		Produtos:  dto.ToProdutoResponses(produtos),
		Paginacao: dto.NovaPaginacao(total, page),
	})
}

// BuscarPorNome godoc
// @Summary      Buscar produtos por nome
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        nome  query  string  true  "Trecho do nome"
// @Success      200  {object}  dto.ProdutosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /estoque/buscar [get]
func (h *ProdutoHandler) BuscarPorNome(c *fiber.Ctx) error {
	nome := c.Query("nome")
	if nome == "" {
		return erroJSON(c, fiber.StatusBadRequest, `Parâmetro "nome" é obrigatório`)
	}
	produtos, err := h.uc.BuscarPorNome(c.Context(), nome)
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao buscar produtos por nome")
	}
	return c.JSON(dto.ProdutosResponse{Total: len(produtos), Produtos: dto.ToProdutoResponses(produtos)})
}

// BuscarPorID godoc
// @Summary      Buscar produto por ID
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /estoque/{id} [get]
func (h *ProdutoHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID inválido")
	}
	produto, err := h.uc.BuscarPorID(c.Context(), id)
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao buscar produto")
	}
	return c.JSON(dto.ToProdutoResponse(produto))
}

// PorCategoria godoc
// @Summary      Filtrar produtos por categoria
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        categoriaId  path  int  true  "ID da categoria"
// @Success      200  {object}  dto.ProdutosResponse
// @Router       /estoque/categoria/{categoriaId} [get]
func (h *ProdutoHandler) PorCategoria(c *fiber.Ctx) error {
	categoriaID, err := paramID(c, "categoriaId")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID de categoria inválido")
	}
	produtos, err := h.uc.PorCategoria(c.Context(), categoriaID)
	if err != nil {
		return traduzErro(c, h.log, err, "Categoria não encontrada", "Erro ao filtrar produtos")
	}
	return c.JSON(dto.ProdutosResponse{Total: len(produtos), Produtos: dto.ToProdutoResponses(produtos)})
}

// EstoqueBaixo godoc
// @Summary      Produtos com estoque abaixo do limiar de alerta
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProdutosResponse
// @Router       /estoque/alerta/baixo [get]
func (h *ProdutoHandler) EstoqueBaixo(c *fiber.Ctx) error {
	produtos, err := h.uc.EstoqueBaixo(c.Context())
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao buscar produtos com estoque baixo")
	}
	return c.JSON(dto.ProdutosResponse{Total: len(produtos), Produtos: dto.ToProdutoResponses(produtos)})
}

// Vencendo godoc
// @Summary      Produtos com validade nos próximos N dias
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Janela em dias"  default(7)
// @Success      200  {object}  dto.ProdutosResponse
// @Router       /estoque/alerta/vencendo [get]
func (h *ProdutoHandler) Vencendo(c *fiber.Ctx) error {
	produtos, err := h.uc.Vencendo(c.Context(), c.QueryInt("dias", usecase.DiasVencimentoPadrao))
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao buscar produtos vencendo")
	}
	return c.JSON(dto.ProdutosResponse{Total: len(produtos), Produtos: dto.ToProdutoResponses(produtos)})
}

// Criar godoc
// @Summary      Adicionar produto ao estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.MensagemProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /estoque [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if in.Nome == "" || in.CategoriaID == 0 || in.Unidade == "" {
		return erroJSON(c, fiber.StatusBadRequest, "Campos obrigatórios: nome, categoriaId, quantidade, unidade")
	}
	produto, err := h.uc.Criar(c.Context(), GetUsuarioID(c), in)
	if err != nil {
		return traduzErro(c, h.log, err, "Categoria não encontrada", "Erro ao adicionar produto")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MensagemProdutoResponse{
		Mensagem: "Produto adicionado com sucesso",
		Produto:  dto.ToProdutoResponse(produto),
	})
}

// Atualizar godoc
// @Summary      Atualizar produto completo
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      200   {object}  dto.MensagemProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /estoque/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if in.Nome == "" || in.CategoriaID == 0 || in.Unidade == "" {
		return erroJSON(c, fiber.StatusBadRequest, "Campos obrigatórios: nome, categoriaId, quantidade, unidade")
	}
	produto, err := h.uc.Atualizar(c.Context(), id, GetUsuarioID(c), in)
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao atualizar produto")
	}
	return c.JSON(dto.MensagemProdutoResponse{
		Mensagem: "Produto atualizado com sucesso",
		Produto:  dto.ToProdutoResponse(produto),
	})
}

// AjustarQuantidade godoc
// @Summary      Entrada ou saída de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.AjusteQuantidadeRequest  true  "Operação e quantidade"
// @Success      200   {object}  dto.MensagemProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /estoque/{id}/quantidade [patch]
func (h *ProdutoHandler) AjustarQuantidade(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID inválido")
	}
	var in dto.AjusteQuantidadeRequest
	if err := c.BodyParser(&in); err != nil {
		// quantidade não inteira cai aqui
		return erroJSON(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if in.Operacao == "" || in.Quantidade == 0 {
		return erroJSON(c, fiber.StatusBadRequest, "Campos obrigatórios: operacao (entrada/saida), quantidade")
	}
	produto, err := h.ajuste.AjustarQuantidade(c.Context(), id, GetUsuarioID(c), in.Operacao, in.Quantidade)
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao atualizar quantidade")
	}
	return c.JSON(dto.MensagemProdutoResponse{
		Mensagem: fmt.Sprintf("%s de %d %s realizada", in.Operacao, in.Quantidade, produto.Unidade),
		Produto:  dto.ToProdutoResponse(produto),
	})
}

// Remover godoc
// @Summary      Remover produto do estoque
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      200  {object}  dto.MensagemProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /estoque/{id} [delete]
func (h *ProdutoHandler) Remover(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return erroJSON(c, fiber.StatusBadRequest, "ID inválido")
	}
	produto, err := h.uc.Remover(c.Context(), id, GetUsuarioID(c))
	if err != nil {
		return traduzErro(c, h.log, err, "Produto não encontrado", "Erro ao remover produto")
	}
	return c.JSON(dto.MensagemProdutoResponse{
		Mensagem: "Produto removido com sucesso",
		Produto:  dto.ToProdutoResponse(produto),
	})
}

// paramID converte um parâmetro de rota em ID numérico.
func paramID(c *fiber.Ctx, nome string) (int64, error) {
	return strconv.ParseInt(c.Params(nome), 10, 64)
}
