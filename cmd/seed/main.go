package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/service"
)

const workers = 4

type options struct {
	Reset   bool
	Restock int
}

func main() {
	var opts options
	flag.BoolVar(&opts.Reset, "reset", false, "delete every product before seeding")
	flag.IntVar(&opts.Restock, "restock", 0, "add this many units to every existing product instead of seeding")
	flag.Parse()

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	logger := logging.New(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = logging.IntoContext(ctx, logger.With("cmd", "seed"))

	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	n, err := run(ctx, gdb, opts)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	logger.Info("seed_done", "products", n, "restock", opts.Restock)
}

// run seeds the sample catalog, or restocks it when opts.Restock is set.
// Seeding an already populated catalog is a no-op unless opts.Reset is set.
func run(ctx context.Context, gdb *gorm.DB, opts options) (int, error) {
	l := logging.FromContext(ctx)
	r := &repo.GormRepo{DB: gdb}
	svc := &service.CatalogService{Repo: r}

	if opts.Restock > 0 {
		return restock(ctx, svc, r, opts.Restock)
	}

	if opts.Reset {
		res := gdb.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{})
		if res.Error != nil {
			return 0, fmt.Errorf("clear products: %w", res.Error)
		}
		l.Info("products_cleared", "count", res.RowsAffected)
	}

	total, _, err := r.ListProducts(ctx, 0, 1)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if total > 0 {
		l.Info("seed_skipped", "reason", "catalog not empty", "products", total)
		return 0, nil
	}

	products := sampleCatalog()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range products {
		p := &products[i]
		g.Go(func() error {
			if err := svc.CreateProduct(gctx, p); err != nil {
				return fmt.Errorf("create %q: %w", p.Name, err)
			}
			l.Debug("product_created", "id", p.ID, "name", p.Name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(products), nil
}

func restock(ctx context.Context, svc *service.CatalogService, r *repo.GormRepo, amount int) (int, error) {
	ids, err := r.ProductIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list products: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			_, err := svc.Restock(gctx, id, amount)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	logging.FromContext(ctx).Info("products_restocked", "count", len(ids), "amount", amount)
	return len(ids), nil
}
