package router

import (
	"time"

	"github.com/Henrique42/mercado-api/internal/config"
	"github.com/Henrique42/mercado-api/internal/handler"
	"github.com/Henrique42/mercado-api/internal/middleware"
	"github.com/Henrique42/mercado-api/internal/repository"
	"github.com/Henrique42/mercado-api/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimit, time.Duration(cfg.RateLimitWindow)*time.Second))

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	produtoSvc := service.NewProdutoService(produtoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/", handler.Root)
	r.GET("/api/healthchecker", handler.Health(db))

	v1 := r.Group("/api/v1")
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Criar)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obter)
			clientes.PATCH("/:id", clientesH.Atualizar)
			clientes.DELETE("/:id", clientesH.Remover)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtosH.Criar)
			produtos.GET("", produtosH.Listar)
			produtos.GET("/:id", produtosH.Obter)
			produtos.PATCH("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Remover)
		}

		pedidos := v1.Group("/pedidos")
		{
			pedidos.POST("", pedidosH.Criar)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.Obter)
			pedidos.PATCH("/:id", pedidosH.Atualizar)
			pedidos.DELETE("/:id", pedidosH.Remover)
		}
	}

	// Swagger UI is only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
