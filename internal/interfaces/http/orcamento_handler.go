package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/application/orcamento"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// OrcamentoHandler trata as petições HTTP de orçamentos (protegido).
type OrcamentoHandler struct {
	uc *orcamento.CriarOrcamentoUseCase
}

// NewOrcamentoHandler constrói o handler.
func NewOrcamentoHandler(uc *orcamento.CriarOrcamentoUseCase) *OrcamentoHandler {
	return &OrcamentoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar orçamento
// @Description  Recebe o pedido congelado montado pelo carrinho e o persiste como RASCUNHO ou ENVIADA. Preços são gravados como recebidos.
// @Tags         orcamentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarOrcamentoRequest  true  "Pedido congelado"
// @Success      201   {object}  dto.OrcamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/orcamentos [post]
func (h *OrcamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarOrcamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarOrcamento(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pedido inválido: cada item leva produto_id ou nome_produto_personalizado, quantidade positiva e preço não negativo"})
		case domain.ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "orçamento sem itens"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente ou produto não encontrado"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "estoque insuficiente para um dos itens"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter orçamento por ID
// @Tags         orcamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do orçamento"
// @Success      200  {object}  dto.OrcamentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id} [get]
func (h *OrcamentoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetOrcamento(c.UserContext(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar orçamentos
// @Tags         orcamentos
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "RASCUNHO | ENVIADA"
// @Param        cliente_id  query  int     false  "Filtrar por cliente"
// @Param        de          query  string  false  "Data inicial (RFC 3339)"
// @Param        ate         query  string  false  "Data final (RFC 3339)"
// @Param        limit       query  int     false  "Limite"  default(20)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200         {array}  dto.OrcamentoResponse
// @Router       /api/orcamentos [get]
func (h *OrcamentoHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	filtro := repository.OrcamentoFiltro{
		Status:    c.Query("status"),
		ClienteID: int64(c.QueryInt("cliente_id", 0)),
	}
	if de := c.Query("de"); de != "" {
		t, err := time.Parse(time.RFC3339, de)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro de inválido (RFC 3339)"})
		}
		filtro.De = &t
	}
	if ate := c.Query("ate"); ate != "" {
		t, err := time.Parse(time.RFC3339, ate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro ate inválido (RFC 3339)"})
		}
		filtro.Ate = &t
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

// MarcarEnviada godoc
// @Summary      Promover RASCUNHO para ENVIADA
// @Tags         orcamentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do orçamento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id}/enviar [post]
func (h *OrcamentoHandler) MarcarEnviada(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.MarcarEnviada(c.UserContext(), int64(id)); err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "apenas RASCUNHO pode ser enviado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GerarPDF godoc
// @Summary      PDF do orçamento
// @Tags         orcamentos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID do orçamento"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orcamentos/{id}/pdf [get]
func (h *OrcamentoHandler) GerarPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	pdfBytes, err := h.uc.GerarPDF(c.UserContext(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orçamento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="orcamento-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
