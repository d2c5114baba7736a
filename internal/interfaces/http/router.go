package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/vendas-campo/internal/application/auth"
	"github.com/seu-usuario/vendas-campo/internal/application/catalogo"
	"github.com/seu-usuario/vendas-campo/internal/application/cliente"
	"github.com/seu-usuario/vendas-campo/internal/application/movimentacao"
	"github.com/seu-usuario/vendas-campo/internal/application/orcamento"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CatalogoUC     *catalogo.CatalogoUseCase
	ClienteUC      *cliente.ClienteUseCase
	OrcamentoUC    *orcamento.CriarOrcamentoUseCase
	MovimentacaoUC *movimentacao.MovimentacaoUseCase
	AprovacaoUC    *movimentacao.AprovacaoUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: leitura para qualquer papel autenticado, cadastro só admin
	produtos := protected.Group("/produtos")
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	produtos.Get("/", catalogoHandler.List)
	produtos.Get("/:id", catalogoHandler.GetByID)
	produtos.Post("/", RequirePapel(entity.PapelAdmin), catalogoHandler.Create)

	// Clientes: vendedores e admin
	clientes := protected.Group("/clientes", RequirePapel(entity.PapelVendedor, entity.PapelAdmin))
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)

	// Orçamentos: vendedores e admin
	orcamentos := protected.Group("/orcamentos", RequirePapel(entity.PapelVendedor, entity.PapelAdmin))
	orcamentoHandler := NewOrcamentoHandler(deps.OrcamentoUC)
	orcamentos.Post("/", orcamentoHandler.Create)
	orcamentos.Get("/", orcamentoHandler.List)
	orcamentos.Get("/:id", orcamentoHandler.GetByID)
	orcamentos.Post("/:id/enviar", orcamentoHandler.MarcarEnviada)
	orcamentos.Get("/:id/pdf", orcamentoHandler.GerarPDF)

	// Movimentações: proposta por entregadores, decisão só admin
	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC, deps.AprovacaoUC)
	movimentacoes.Post("/", RequirePapel(entity.PapelEntregador, entity.PapelAdmin), movimentacaoHandler.Propor)
	movimentacoes.Get("/", movimentacaoHandler.List)
	movimentacoes.Get("/:id", movimentacaoHandler.GetByID)
	movimentacoes.Post("/:id/aprovar", RequirePapel(entity.PapelAdmin), movimentacaoHandler.Aprovar)
	movimentacoes.Post("/:id/rejeitar", RequirePapel(entity.PapelAdmin), movimentacaoHandler.Rejeitar)
}
