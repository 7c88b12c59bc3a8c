package catalog

import (
	"context"
	"errors"

	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

// GormRepository backs the catalog with the Postgres product table.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, category string, sort Sort) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	switch sort {
	case SortOldest:
		query = query.Order("created_at asc")
	case SortPriceAsc:
		query = query.Order("price asc")
	case SortPriceDesc:
		query = query.Order("price desc")
	default:
		query = query.Order("created_at desc")
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepository) Get(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}
