package testutil

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/models"
)

// NewDB returns a migrated in-memory sqlite database that lives as long as the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

type ProductOpt func(*models.Product)

func WithCategory(c string) ProductOpt { return func(p *models.Product) { p.Category = c } }
func WithStock(n int) ProductOpt       { return func(p *models.Product) { p.Stock = n } }
func WithRating(r float64, reviews int) ProductOpt {
	return func(p *models.Product) {
		p.Rating = r
		p.ReviewCount = reviews
	}
}

// CreateProduct inserts a product priced at price; defaults to 10 units in "General".
func CreateProduct(t *testing.T, gdb *gorm.DB, name, price string, opts ...ProductOpt) models.Product {
	t.Helper()

	p := models.Product{
		Name:     name,
		Image:    "https://img.example/" + name + ".jpg",
		Category: "General",
		Price:    decimal.RequireFromString(price),
		Stock:    10,
	}
	for _, opt := range opts {
		opt(&p)
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p
}

func Stock(t *testing.T, gdb *gorm.DB, p models.Product) int {
	t.Helper()

	var got models.Product
	require.NoError(t, gdb.First(&got, "id = ?", p.ID).Error)
	return got.Stock
}
