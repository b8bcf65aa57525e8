// Package http expone la API REST sobre Fiber: middleware de auth,
// handlers y registro de rutas.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bakeryhub/bakeryhub-api/internal/application/auth"
	"github.com/bakeryhub/bakeryhub-api/internal/application/factory"
	"github.com/bakeryhub/bakeryhub-api/internal/application/inventory"
	"github.com/bakeryhub/bakeryhub-api/internal/application/usecase"
	"github.com/bakeryhub/bakeryhub-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	BatchUC   *factory.BatchUseCase
	StatsUC   *factory.StatsUseCase
	StockUC   *inventory.StockUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	factoryOnly := RequireRole(entity.RoleFactoryDistributor, entity.RoleAdmin)

	// Auth: registro de clientes y login son públicos;
	// el registro de empleados solo lo puede hacer un ADMIN.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register-employee", authRequired, RequireRole(entity.RoleAdmin), authHandler.RegisterEmployee)

	// Products: catálogo público de solo lectura; escritura restringida.
	// /add se mantiene como alias del POST por compatibilidad con el frontend.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", authRequired, factoryOnly, productHandler.Create)
	products.Post("/add", authRequired, factoryOnly, productHandler.Create)

	// Factory: dashboard y registro de lotes (FACTORY_DISTRIBUTOR o ADMIN).
	factoryGroup := api.Group("/factory", authRequired, factoryOnly)
	factoryHandler := NewFactoryHandler(deps.BatchUC, deps.StatsUC)
	factoryGroup.Get("/stats", factoryHandler.GetStats)
	factoryGroup.Post("/create-batch", factoryHandler.CreateBatch)

	// Stock por outlet: cualquier usuario autenticado.
	stockHandler := NewStockHandler(deps.StockUC)
	api.Get("/stock/:outlet_id", authRequired, stockHandler.GetOutletStock)
}
