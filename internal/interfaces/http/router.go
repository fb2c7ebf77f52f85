package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ventas-pro/internal/application/auth"
	"github.com/tu-usuario/ventas-pro/internal/application/sales"
	"github.com/tu-usuario/ventas-pro/internal/application/usecase"
	"github.com/tu-usuario/ventas-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC      *usecase.ProductUseCase
	CreateSale     *sales.CreateSaleUseCase
	SaleQueries    *usecase.SaleQueryUseCase
	StatsUC        *usecase.StatsUseCase
	NotificationUC *usecase.NotificationUseCase
	UserUC         *usecase.UserUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido; borrar es solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales (protegido; borrar es solo admin)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQueries)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Delete("/:id", adminOnly, saleHandler.Delete)

	// Stats (protegido)
	stats := protected.Group("/stats")
	statsHandler := NewStatsHandler(deps.StatsUC)
	stats.Get("/sales-by-month", statsHandler.SalesByMonth)
	stats.Get("/profit-by-month", statsHandler.ProfitByMonth)
	stats.Get("/top-products", statsHandler.TopProducts)
	stats.Get("/sales-per-user", statsHandler.SalesPerUser)
	stats.Get("/role-breakdown", adminOnly, statsHandler.RoleBreakdown)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Patch("/:id/seen", notificationHandler.MarkSeen)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Users (perfil propio para todos; administración solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateProfile)
	users.Put("/me/password", userHandler.ChangePassword)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", adminOnly, userHandler.GetByID)
	users.Put("/:id/role", adminOnly, userHandler.UpdateRole)
	users.Put("/:id/password", adminOnly, userHandler.ResetPassword)
	users.Delete("/:id", adminOnly, userHandler.Delete)
}
