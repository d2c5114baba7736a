package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/seu-usuario/vendas-campo/internal/application/auth"
	"github.com/seu-usuario/vendas-campo/internal/application/catalogo"
	"github.com/seu-usuario/vendas-campo/internal/application/cliente"
	"github.com/seu-usuario/vendas-campo/internal/application/movimentacao"
	"github.com/seu-usuario/vendas-campo/internal/application/orcamento"
	infracache "github.com/seu-usuario/vendas-campo/internal/infrastructure/cache"
	infrapdf "github.com/seu-usuario/vendas-campo/internal/infrastructure/pdf"
	"github.com/seu-usuario/vendas-campo/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/vendas-campo/internal/interfaces/http"
	"github.com/seu-usuario/vendas-campo/pkg/config"
	"github.com/seu-usuario/vendas-campo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	// Cache de snapshot de catálogo — opcional: sem REDIS_ADDR a API
	// trabalha só com o banco.
	var snapshotCache *infracache.CatalogoCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("conexão ao Redis")
		}
		defer rdb.Close()
		snapshotCache = infracache.NewCatalogoCache(rdb, time.Duration(cfg.Redis.TTLSec)*time.Second)
		log.Info().Str("addr", cfg.Redis.Addr).Int("ttl_sec", cfg.Redis.TTLSec).Msg("cache de catálogo habilitado")
	}

	produtoRepo := postgres.NewProdutoRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	orcamentoRepo := postgres.NewOrcamentoRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	// interfaces nil-áveis pedem cuidado: só passar o cache quando existe
	var catalogoCache catalogo.SnapshotCache
	var invalidator movimentacao.SnapshotInvalidator
	if snapshotCache != nil {
		catalogoCache = snapshotCache
		invalidator = snapshotCache
	}

	catalogoUC := catalogo.NewCatalogoUseCase(produtoRepo, catalogoCache)
	clienteUC := cliente.NewClienteUseCase(clienteRepo)
	orcamentoUC := orcamento.NewCriarOrcamentoUseCase(
		txRunner, clienteRepo, usuarioRepo, produtoRepo, orcamentoRepo, pdfGenerator,
	)
	movimentacaoUC := movimentacao.NewMovimentacaoUseCase(movimentacaoRepo, produtoRepo)
	aprovacaoUC := movimentacao.NewAprovacaoUseCase(txRunner, invalidator)
	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Vendas Campo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogoUC:     catalogoUC,
		ClienteUC:      clienteUC,
		OrcamentoUC:    orcamentoUC,
		MovimentacaoUC: movimentacaoUC,
		AprovacaoUC:    aprovacaoUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
