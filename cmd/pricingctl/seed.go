package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"pricing/internal/domain/entity"
	"pricing/internal/domain/pricing"
	"pricing/internal/infra/persistence/postgres"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	SKU           string  `yaml:"sku"`
	Category      string  `yaml:"category"`
	SellingPrice  float64 `yaml:"sellingPrice"`
	CostPrice     float64 `yaml:"costPrice"`
	ExpiresInDays *int    `yaml:"expiresInDays"`
}

func runSeed(ctx context.Context, out io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open seed file")
	}
	defer f.Close()

	products, err := parseSeed(f, time.Now().UTC())
	if err != nil {
		return err
	}

	db, logger, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDatabase(db)

	inserted, err := postgres.SeedProducts(ctx, db, products)
	if err != nil {
		return err
	}

	logger.Info("Seeded products", slog.Int("read", len(products)), slog.Int64("inserted", inserted))
	fmt.Fprintf(out, "inserted %d of %d products\n", inserted, len(products))

	return nil
}

// parseSeed decodes a seed file. Expiration dates are relative to now so the same file
// keeps exercising expiration rules.
func parseSeed(r io.Reader, now time.Time) ([]*entity.Product, error) {
	var file seedFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "failed to decode seed file")
	}

	products := make([]*entity.Product, 0, len(file.Products))
	for i, item := range file.Products {
		category := entity.Category(item.Category)
		if !category.IsValid() {
			return nil, errors.Errorf("product %d: unknown category %q", i, item.Category)
		}
		if item.Name == "" {
			return nil, errors.Errorf("product %d: name is required", i)
		}
		if item.SellingPrice < 0 || item.CostPrice < 0 {
			return nil, errors.Errorf("product %d: prices must not be negative", i)
		}

		id := uuid.New()
		if item.ID != "" {
			parsed, err := uuid.Parse(item.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "product %d: invalid id", i)
			}
			id = parsed
		}

		product := &entity.Product{
			ID:           id,
			Name:         item.Name,
			SKU:          item.SKU,
			Category:     category,
			SellingPrice: item.SellingPrice,
			CostPrice:    item.CostPrice,
			UpdatedAt:    now,
		}
		if item.ExpiresInDays != nil {
			expires := pricing.StartOfDay(now, now.Location()).AddDate(0, 0, *item.ExpiresInDays)
			product.ExpirationDate = &expires
		}

		products = append(products, product)
	}

	return products, nil
}
