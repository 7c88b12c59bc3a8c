package catalog

import (
	"sort"
	"time"

	"github.com/wirix/market-sfu/models"
)

// fallbackBase anchors the fallback timestamps so newest/oldest ordering
// is stable between calls.
var fallbackBase = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// FallbackProducts is the fixed dataset substituted when the live
// catalog is unreachable or empty, and the seed data for a fresh
// database.
func FallbackProducts() []models.Product {
	return []models.Product{
		{
			ID:               "1",
			Name:             "Adidas CoreFit T-Shirt",
			ShortDescription: "A stylish, comfortable tee for everyday wear.",
			Description:      "Made from high-quality cotton that keeps you comfortable all day long. Great for sport and casual wear alike.",
			Price:            39.9,
			Sizes:            []string{"s", "m", "l", "xl", "xxl"},
			Colors:           []string{"gray", "purple", "green"},
			Images: map[string]string{
				"gray":   "/products/1g.png",
				"purple": "/products/1p.png",
				"green":  "/products/1gr.png",
			},
			Category:  "t-shirts",
			CreatedAt: fallbackBase.Add(3 * 24 * time.Hour),
		},
		{
			ID:               "2",
			Name:             "Puma Ultra Warm Jacket",
			ShortDescription: "A warm jacket for cold weather.",
			Description:      "A modern insulated jacket that shields you from wind and cold. Great for outdoor activities.",
			Price:            59.9,
			Sizes:            []string{"s", "m", "l", "xl"},
			Colors:           []string{"gray", "green"},
			Images: map[string]string{
				"gray":  "/products/2g.png",
				"green": "/products/2gr.png",
			},
			Category:  "jackets",
			CreatedAt: fallbackBase.Add(2 * 24 * time.Hour),
		},
		{
			ID:               "3",
			Name:             "Nike Air Essentials Pullover",
			ShortDescription: "A cozy pullover for everyday comfort.",
			Description:      "A soft, warm pullover that will become your favorite wardrobe piece in cool weather.",
			Price:            69.9,
			Sizes:            []string{"s", "m", "l"},
			Colors:           []string{"green", "blue", "black"},
			Images: map[string]string{
				"green": "/products/3gr.png",
				"blue":  "/products/3b.png",
				"black": "/products/3bl.png",
			},
			Category:  "sweatshirts",
			CreatedAt: fallbackBase.Add(24 * time.Hour),
		},
		{
			ID:               "4",
			Name:             "Nike Dri-FIT T-Shirt",
			ShortDescription: "A sport tee with moisture-wicking technology.",
			Description:      "Dri-FIT fabric moves sweat away from the body, keeping you dry through your workouts.",
			Price:            29.9,
			Sizes:            []string{"s", "m", "l"},
			Colors:           []string{"white", "pink"},
			Images: map[string]string{
				"white": "/products/4w.png",
				"pink":  "/products/4p.png",
			},
			Category:  "t-shirts",
			CreatedAt: fallbackBase,
		},
	}
}

// filterFallback applies the same category filter and ordering the live
// repository would, so degraded responses look identical in shape.
func filterFallback(category string, s Sort) []models.Product {
	products := FallbackProducts()

	if category != "" && category != "all" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch s {
	case SortOldest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
	return products
}
