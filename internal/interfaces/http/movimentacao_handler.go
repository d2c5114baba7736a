package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/application/movimentacao"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// MovimentacaoHandler trata as petições HTTP de movimentações de estoque.
// Propostas vêm dos entregadores; aprovação e rejeição são rotas de admin.
type MovimentacaoHandler struct {
	uc       *movimentacao.MovimentacaoUseCase
	aprovaUC *movimentacao.AprovacaoUseCase
}

// NewMovimentacaoHandler constrói o handler.
func NewMovimentacaoHandler(uc *movimentacao.MovimentacaoUseCase, aprovaUC *movimentacao.AprovacaoUseCase) *MovimentacaoHandler {
	return &MovimentacaoHandler{uc: uc, aprovaUC: aprovaUC}
}

// Propor godoc
// @Summary      Propor movimentação de estoque
// @Description  Cria uma movimentação PENDENTE. O estoque só muda quando um admin aprova.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProporMovimentacaoRequest  true  "tipo, produto_id, quantidade"
// @Success      201   {object}  dto.MovimentacaoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes [post]
func (h *MovimentacaoHandler) Propor(c *fiber.Ctx) error {
	var in dto.ProporMovimentacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Propor(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo deve ser ENTRADA ou SAIDA e quantidade positiva"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimentações
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "PENDENTE | APROVADA | REJEITADA"
// @Param        produto_id  query  int     false  "Filtrar por produto"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.MovimentacaoResponse
// @Router       /api/movimentacoes [get]
func (h *MovimentacaoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	filtro := repository.MovimentacaoFiltro{
		Status:    c.Query("status"),
		ProdutoID: int64(c.QueryInt("produto_id", 0)),
	}
	out, err := h.uc.Listar(c.UserContext(), filtro, page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status de filtro inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter movimentação por ID
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da movimentação"
// @Success      200  {object}  dto.MovimentacaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id} [get]
func (h *MovimentacaoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Aprovar godoc
// @Summary      Aprovar movimentação pendente
// @Description  Aplica o delta ao estoque dentro da mesma transação da decisão. SAIDA maior que o estoque falha e a pendência permanece PENDENTE.
// @Tags         movimentacoes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID da movimentação"
// @Success      200  {object}  dto.MovimentacaoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id}/aprovar [post]
func (h *MovimentacaoHandler) Aprovar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.aprovaUC.Aprovar(c.UserContext(), int64(id), GetUserID(c))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "movimentação já decidida"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para aprovar a saída"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Rejeitar godoc
// @Summary      Rejeitar movimentação pendente
// @Description  Encerra a pendência sem tocar no estoque. Uma REJEITADA não é reeditável.
// @Tags         movimentacoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID da movimentação"
// @Param        body  body  dto.DecidirMovimentacaoRequest  false  "motivo"
// @Success      200   {object}  dto.MovimentacaoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentacoes/{id}/rejeitar [post]
func (h *MovimentacaoHandler) Rejeitar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	var in dto.DecidirMovimentacaoRequest
	_ = c.BodyParser(&in) // corpo opcional
	out, err := h.aprovaUC.Rejeitar(c.UserContext(), int64(id), GetUserID(c), in.Motivo)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimentação não encontrada"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "movimentação já decidida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
