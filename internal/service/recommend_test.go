package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/testutil"
)

func ids(items []models.Product) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

type catalogFixture struct {
	headphones, watch, camera, shoes, coffee, backpack models.Product
}

func seedCatalog(t *testing.T, f *fixture) catalogFixture {
	t.Helper()
	return catalogFixture{
		headphones: testutil.CreateProduct(t, f.db, "headphones", "99.99", testutil.WithCategory("Electronics"), testutil.WithRating(4.5, 120)),
		watch:      testutil.CreateProduct(t, f.db, "watch", "249.99", testutil.WithCategory("Electronics"), testutil.WithRating(4.7, 89)),
		camera:     testutil.CreateProduct(t, f.db, "camera", "399", testutil.WithCategory("Electronics"), testutil.WithRating(5, 10), testutil.WithStock(0)),
		shoes:      testutil.CreateProduct(t, f.db, "shoes", "79.99", testutil.WithCategory("Clothing"), testutil.WithRating(4.9, 200)),
		coffee:     testutil.CreateProduct(t, f.db, "coffee", "89.99", testutil.WithCategory("Home & Kitchen"), testutil.WithRating(4.4, 67)),
		backpack:   testutil.CreateProduct(t, f.db, "backpack", "49.99", testutil.WithCategory("Accessories"), testutil.WithRating(3.8, 45)),
	}
}

func TestRecommend_CategoryMatchesThenBackfill(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := seedCatalog(t, f)
	user := newUser()

	_, err := f.cart.AddItem(ctx, user, c.headphones.ID, 1)
	require.NoError(t, err)
	_, err = f.checkout.Checkout(ctx, user, validCheckout())
	require.NoError(t, err)

	got, err := f.recs.Recommend(ctx, user, 4)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{c.watch.ID, c.headphones.ID, c.shoes.ID, c.coffee.ID}, ids(got))
	for _, p := range got[:2] {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestRecommend_NoDuplicatesAndBoundedByLimit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := seedCatalog(t, f)
	user := newUser()

	_, err := f.cart.AddItem(ctx, user, c.watch.ID, 1)
	require.NoError(t, err)
	_, err = f.checkout.Checkout(ctx, user, validCheckout())
	require.NoError(t, err)

	got, err := f.recs.Recommend(ctx, user, 50)
	require.NoError(t, err)
	assert.Len(t, got, 5, "every in-stock product exactly once")

	seen := map[uuid.UUID]bool{}
	for _, p := range got {
		assert.False(t, seen[p.ID], "duplicate %s", p.Name)
		seen[p.ID] = true
		assert.Positive(t, p.Stock)
	}
	assert.False(t, seen[c.camera.ID])
}

func TestRecommend_NoHistoryFallsBackToPopular(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := seedCatalog(t, f)

	got, err := f.recs.Recommend(ctx, newUser(), 3)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{c.shoes.ID, c.watch.ID, c.headphones.ID}, ids(got))

	popular, err := f.recs.Popular(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, ids(got), ids(popular))
}

func TestRecommend_DefaultLimit(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < DefaultRecommendLimit+2; i++ {
		testutil.CreateProduct(t, f.db, "p"+string(rune('a'+i)), "1")
	}

	got, err := f.recs.Recommend(context.Background(), newUser(), 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultRecommendLimit)

	popular, err := f.recs.Popular(context.Background(), -1)
	require.NoError(t, err)
	assert.Len(t, popular, DefaultRecommendLimit)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	f := newFixture(t)

	got, err := f.recs.Recommend(context.Background(), newUser(), 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}
