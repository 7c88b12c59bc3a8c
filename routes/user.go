package routes

import (
	"github.com/gin-gonic/gin"
	addressControllers "github.com/wirix/market-sfu/controllers/address"
	cartControllers "github.com/wirix/market-sfu/controllers/cart"
	orderControllers "github.com/wirix/market-sfu/controllers/order"
	userControllers "github.com/wirix/market-sfu/controllers/user"
	"github.com/wirix/market-sfu/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires a session
// token (registered user or guest).
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(deps.DB))
		userGroup.PUT("/profile", userControllers.UpdateProfile(deps.DB))
		userGroup.DELETE("/profile", userControllers.DeleteProfile(deps.DB))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetCart(deps.Carts))
			cartGroup.POST("", cartControllers.AddToCart(deps.Carts, deps.Catalog))
			cartGroup.PUT("/:line_id", cartControllers.UpdateCartItem(deps.Carts))
			cartGroup.DELETE("/:line_id", cartControllers.DeleteCartItem(deps.Carts))
			cartGroup.DELETE("", cartControllers.ClearCart(deps.Carts))
		}

		// ──────────────── Address Book ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", addressControllers.GetAddresses(deps.DB))
			addressGroup.POST("", addressControllers.AddAddress(deps.DB))
			addressGroup.PUT("/:id", addressControllers.UpdateAddress(deps.DB))
			addressGroup.DELETE("/:id", addressControllers.DeleteAddress(deps.DB))
			addressGroup.POST("/:id/default", addressControllers.SetDefaultAddress(deps.DB))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.GET("/checkout/quote", deps.Checkout.GetQuote())
		userGroup.POST("/checkout", deps.Checkout.PlaceOrder())
		userGroup.GET("/orders", orderControllers.GetMyOrders(deps.DB))
	}
}
