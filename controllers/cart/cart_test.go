package cartControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirix/market-sfu/cart"
	"github.com/wirix/market-sfu/catalog"
	"github.com/wirix/market-sfu/models"
)

type fakeRepo struct {
	products []models.Product
}

func (f *fakeRepo) List(context.Context, string, catalog.Sort) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, catalog.ErrNotFound
}

type cartResponseBody struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice float64         `json:"total_price"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr := cart.NewManager(cart.NewMemoryStore(), nil)
	cs := catalog.NewService(&fakeRepo{products: []models.Product{
		{
			ID:     "1",
			Name:   "Tee",
			Price:  39.9,
			Sizes:  []string{"s", "m", "l"},
			Colors: []string{"gray"},
			Images: map[string]string{"gray": "/products/1g.png"},
		},
	}})

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("user_id", "user-1") })
	r.GET("/user/cart", GetCart(mgr))
	r.POST("/user/cart", AddToCart(mgr, cs))
	r.PUT("/user/cart/:line_id", UpdateCartItem(mgr))
	r.DELETE("/user/cart/:line_id", DeleteCartItem(mgr))
	r.DELETE("/user/cart", ClearCart(mgr))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func getCart(t *testing.T, r *gin.Engine) cartResponseBody {
	t.Helper()
	w := do(r, http.MethodGet, "/user/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body cartResponseBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAddToCartMergesOverHTTP(t *testing.T) {
	r := newRouter(t)

	payload := `{"product_id":"1","quantity":2,"selected_size":"m","selected_color":"gray"}`
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/user/cart", payload).Code)

	payload = `{"product_id":"1","quantity":3,"selected_size":"m","selected_color":"gray"}`
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/user/cart", payload).Code)

	body := getCart(t, r)
	require.Len(t, body.Items, 1, "same tuple must merge, not duplicate")
	assert.Equal(t, 5, body.TotalItems)
	assert.InDelta(t, 5*39.9, body.TotalPrice, 1e-9)
}

func TestAddToCartRejectsUnknownProductSizeColor(t *testing.T) {
	r := newRouter(t)

	cases := []string{
		`{"product_id":"missing","quantity":1,"selected_size":"m","selected_color":"gray"}`,
		`{"product_id":"1","quantity":1,"selected_size":"xxl","selected_color":"gray"}`,
		`{"product_id":"1","quantity":1,"selected_size":"m","selected_color":"red"}`,
	}
	for _, payload := range cases {
		assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/user/cart", payload).Code)
	}
}

func TestUpdateQuantityBelowOneIsIgnored(t *testing.T) {
	r := newRouter(t)

	payload := `{"product_id":"1","quantity":2,"selected_size":"m","selected_color":"gray"}`
	w := do(r, http.MethodPost, "/user/cart", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var line cart.LineItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &line))

	// Exactly 0 must take the same silent path as negatives, not a 400.
	w = do(r, http.MethodPut, "/user/cart/"+line.ID, `{"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, getCart(t, r).TotalItems, "quantity 0 leaves the cart unchanged")

	w = do(r, http.MethodPut, "/user/cart/"+line.ID, `{"quantity":-1}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, getCart(t, r).TotalItems, "quantities below 1 leave the cart unchanged")

	w = do(r, http.MethodPut, "/user/cart/"+line.ID, `{"quantity":4}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 4, getCart(t, r).TotalItems)
}

func TestDeleteMissingLineIsNoOp(t *testing.T) {
	r := newRouter(t)

	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/user/cart/nope", "").Code)
}

func TestClearCartOverHTTP(t *testing.T) {
	r := newRouter(t)

	payload := `{"product_id":"1","quantity":2,"selected_size":"m","selected_color":"gray"}`
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/user/cart", payload).Code)

	require.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/user/cart", "").Code)

	body := getCart(t, r)
	assert.Zero(t, body.TotalItems)
	assert.Empty(t, body.Items)
}
