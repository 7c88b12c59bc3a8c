package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/cart"
	"github.com/wirix/market-sfu/catalog"
	checkoutControllers "github.com/wirix/market-sfu/controllers/checkout"
	docsControllers "github.com/wirix/market-sfu/controllers/docs"
	productControllers "github.com/wirix/market-sfu/controllers/product"
	"gorm.io/gorm"
)

// Deps carries the wired collaborators the route groups need.
type Deps struct {
	DB       *gorm.DB
	Catalog  *catalog.Service
	Carts    *cart.Manager
	Checkout *checkoutControllers.Handler
}

// SetupRoutes is the single entry-point that wires up the public,
// auth, user and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public catalog browsing and docs (no middleware)
	r.GET("/products", productControllers.GetProducts(deps.Catalog))
	r.GET("/products/:id", productControllers.GetProductByID(deps.Catalog))
	r.GET("/docs", docsControllers.Viewer)
	r.GET("/docs/openapi.json", docsControllers.OpenAPISpec)

	// Registration, login, guest sessions
	SetupAuthRoutes(r, deps.DB)

	// Session-scoped storefront (JWT-protected)
	SetupUserRoutes(r, deps)

	// Back office (API-key-protected)
	SetupAdminRoutes(r, deps)
}
