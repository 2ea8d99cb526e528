package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
)

// CartStore persists a guest session's cart lines. The storefront client
// mirrors the same lines locally; the server-side copy is what checkout and
// materialization read.
type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]entities.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []entities.CartLine) error
	Clear(ctx context.Context, sessionID string) error
}

type cartService struct {
	logger  *slog.Logger
	store   CartStore
	catalog CatalogLookup
}

type CatalogLookup interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error)
}

func NewCartService(logger *slog.Logger, store CartStore, catalog CatalogLookup) *cartService {
	return &cartService{
		logger:  logger.With(slog.String("service", "cart")),
		store:   store,
		catalog: catalog,
	}
}

// Materialize joins cart lines with live catalog data. Lines whose product
// is gone or deactivated are dropped silently, keeping the rest of the cart
// usable. Output order matches input order. A line's captured price wins
// over the product's current base price, since the capture may carry a
// customization adjustment.
func (s *cartService) Materialize(ctx context.Context, lines []entities.CartLine) ([]entities.PricedLineItem, error) {
	if len(lines) == 0 {
		return []entities.PricedLineItem{}, nil
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := s.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog unavailable: %w", err)
	}

	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entities.PricedLineItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			s.logger.Debug("dropping cart line for missing product", slog.String("product_id", line.ProductID))
			continue
		}

		unitPrice := line.UnitPrice
		if unitPrice <= 0 {
			unitPrice = product.BasePrice
		}

		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}

		items = append(items, entities.PricedLineItem{
			ProductID:  product.ID,
			Name:       product.Name,
			Image:      product.Image(),
			Quantity:   quantity,
			Finish:     line.Finish,
			Dimensions: line.Dimensions.Normalized().String(),
			UnitPrice:  unitPrice,
			TotalPrice: unitPrice * quantity,
			InStock:    product.Stock >= quantity,
		})
	}

	return items, nil
}

// Get loads and materializes the session's cart.
func (s *cartService) Get(ctx context.Context, sessionID string) ([]entities.PricedLineItem, error) {
	lines, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return s.Materialize(ctx, lines)
}

// Replace overwrites the session's cart lines after normalizing them.
func (s *cartService) Replace(ctx context.Context, sessionID string, lines []entities.CartLine) error {
	for i, line := range lines {
		if line.ProductID == "" {
			return fmt.Errorf("%w: line %d has no product", entities.ErrValidation, i)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: line %d quantity must be at least 1", entities.ErrValidation, i)
		}
		lines[i].Dimensions = line.Dimensions.Normalized()
	}
	if err := s.store.Save(ctx, sessionID, lines); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear drops the session's cart.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
