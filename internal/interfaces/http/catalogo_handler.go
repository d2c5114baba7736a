package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/vendas-campo/internal/application/catalogo"
	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
)

// CatalogoHandler trata as peticões HTTP do catálogo de produtos (protegido).
type CatalogoHandler struct {
	uc *catalogo.CatalogoUseCase
}

// NewCatalogoHandler constrói o handler.
func NewCatalogoHandler(uc *catalogo.CatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// List godoc
// @Summary      Snapshot do catálogo
// @Description  Lista ordenada de produtos com estoque e preço atuais. Com ?busca= filtra por nome, código ou categoria ignorando acentos.
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        busca  query  string  false  "Termo de busca"
// @Success      200    {array}  dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *CatalogoHandler) List(c *fiber.Ctx) error {
	termo := c.Query("busca")
	var (
		out []dto.ProdutoResponse
		err error
	)
	if termo != "" {
		out, err = h.uc.Buscar(c.UserContext(), termo)
	} else {
		out, err = h.uc.Listar(c.UserContext())
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *CatalogoHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), int64(id))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *CatalogoHandler) Create(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarProduto(c.UserContext(), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e código são obrigatórios; preço e estoque não podem ser negativos"})
		case domain.ErrDuplicate:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código de produto já existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
