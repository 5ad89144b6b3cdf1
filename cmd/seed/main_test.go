package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/testutil"
)

func TestRun_SeedsOnce(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()

	n, err := run(ctx, gdb, options{})
	require.NoError(t, err)
	assert.Equal(t, len(sampleCatalog()), n)

	n, err = run(ctx, gdb, options{})
	require.NoError(t, err)
	assert.Zero(t, n, "populated catalog is left alone")

	var count int64
	require.NoError(t, gdb.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(len(sampleCatalog())), count)

	var watch models.Product
	require.NoError(t, gdb.Where("name = ?", "Smart Watch").First(&watch).Error)
	assert.Equal(t, "249.99", watch.Price.String())
	assert.Equal(t, "Electronics", watch.Category)
	assert.Equal(t, 89, watch.ReviewCount)
}

func TestRun_ResetAndRestock(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()
	extra := testutil.CreateProduct(t, gdb, "leftover", "1", testutil.WithStock(2))

	n, err := run(ctx, gdb, options{Reset: true})
	require.NoError(t, err)
	assert.Equal(t, len(sampleCatalog()), n)

	var gone int64
	require.NoError(t, gdb.Model(&models.Product{}).Where("id = ?", extra.ID).Count(&gone).Error)
	assert.Zero(t, gone)

	n, err = run(ctx, gdb, options{Restock: 5})
	require.NoError(t, err)
	assert.Equal(t, len(sampleCatalog()), n)

	var mat models.Product
	require.NoError(t, gdb.Where("name = ?", "Yoga Mat").First(&mat).Error)
	assert.Equal(t, 65, mat.Stock)
}
