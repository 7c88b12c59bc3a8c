package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirix/market-sfu/models"
)

type fakeRepo struct {
	products []models.Product
	err      error
}

func (f *fakeRepo) List(context.Context, string, Sort) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeRepo) Get(_ context.Context, id string) (*models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, ErrNotFound
}

func TestParseSort(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSort(""))
	assert.Equal(t, SortNewest, ParseSort("bogus"))
	assert.Equal(t, SortOldest, ParseSort("oldest"))
	assert.Equal(t, SortPriceAsc, ParseSort("price_asc"))
	assert.Equal(t, SortPriceDesc, ParseSort("price_desc"))
}

func TestListFallsBackOnError(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection refused")})

	products := svc.List(context.Background(), "", SortNewest)
	assert.Len(t, products, len(FallbackProducts()), "browsing must degrade to the built-in dataset")
}

func TestListFallsBackOnEmptyResult(t *testing.T) {
	svc := NewService(&fakeRepo{})

	products := svc.List(context.Background(), "", SortNewest)
	assert.NotEmpty(t, products)
}

func TestListPrefersLiveCatalog(t *testing.T) {
	live := []models.Product{{ID: "live-1", Name: "Live product", Price: 5}}
	svc := NewService(&fakeRepo{products: live})

	products := svc.List(context.Background(), "", SortNewest)
	require.Len(t, products, 1)
	assert.Equal(t, "live-1", products[0].ID)
}

func TestFallbackFilterAndOrder(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("down")})

	tshirts := svc.List(context.Background(), "t-shirts", SortPriceAsc)
	require.Len(t, tshirts, 2)
	assert.Equal(t, "t-shirts", tshirts[0].Category)
	assert.LessOrEqual(t, tshirts[0].Price, tshirts[1].Price)

	all := svc.List(context.Background(), "all", SortPriceDesc)
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.GreaterOrEqual(t, all[i-1].Price, all[i].Price)
	}

	newest := svc.List(context.Background(), "", SortNewest)
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i-1].CreatedAt.Before(newest[i].CreatedAt))
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(&fakeRepo{products: FallbackProducts()})

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := svc.Get(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Adidas CoreFit T-Shirt", p.Name)
}
