package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/wirix/market-sfu/controllers/order"
	productControllers "github.com/wirix/market-sfu/controllers/product"
	userControllers "github.com/wirix/market-sfu/controllers/user"
	"github.com/wirix/market-sfu/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── User Management ───────────
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(deps.DB))
			productAdmin.GET("", productControllers.GetProducts(deps.Catalog))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(deps.DB))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Orders ───────────
		adminGroup.GET("/orders", orderControllers.GetAllOrders(deps.DB))
		adminGroup.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
	}
}
