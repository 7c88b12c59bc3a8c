package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/catalog"
)

// GET /products?category=...&sort=newest|oldest|price_asc|price_desc
func GetProducts(cs *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		sort := catalog.ParseSort(c.Query("sort"))

		products := cs.List(c.Request.Context(), category, sort)
		c.JSON(http.StatusOK, products)
	}
}
