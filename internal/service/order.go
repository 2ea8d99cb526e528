package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/pricing"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/trm"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	OrderByID(ctx context.Context, id string) (entities.Order, error)
	OrderByTrackingCode(ctx context.Context, code string) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error

	DecrementStock(ctx context.Context, productID string, quantity int) error
	RestoreStock(ctx context.Context, productID string, quantity int) error
	IncrementSales(ctx context.Context, productID string, quantity int) error
}

// Notifier publishes order lifecycle events for downstream consumers.
type Notifier interface {
	OrderCreated(ctx context.Context, order entities.Order) error
}

// OrderLine is one submitted checkout line. The unit price is re-derived
// server-side from the product's base price and the customization; a
// client-captured price is never trusted at order time.
type OrderLine struct {
	ProductID  string
	Quantity   int
	Finish     string
	Dimensions entities.Dimensions
}

type CreateOrderInput struct {
	Customer entities.Customer
	Region   string
	Lines    []OrderLine

	// SessionID, when set, names the guest cart to clear after a
	// successful checkout.
	SessionID string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   CatalogLookup
	carts     CartStore
	notifier  Notifier
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orderRepo OrderRepo,
	catalog CatalogLookup,
	carts CartStore,
	notifier Notifier,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      orderRepo,
		catalog:   catalog,
		carts:     carts,
		notifier:  notifier,
	}
}

// createAttempts bounds the regenerate-and-retry loop for order number and
// tracking code collisions.
const createAttempts = 3

// CreateOrder assembles and persists an order: validates the submission,
// resolves every product (all-or-nothing), prices each line through the
// customization engine, adds the delivery fee, and writes the order with
// its items and stock decrements in one transaction.
func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	if err := validateCreateOrder(in); err != nil {
		return entities.Order{}, err
	}

	ids := make([]string, 0, len(in.Lines))
	for _, line := range in.Lines {
		ids = append(ids, line.ProductID)
	}
	products, err := s.catalog.ProductsByIDs(ctx, ids)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to resolve products: %w", err)
	}
	byID := make(map[string]entities.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]entities.OrderItem, 0, len(in.Lines))
	subtotal := 0
	managerID := ""
	multiManager := false
	for _, line := range in.Lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return entities.Order{}, fmt.Errorf("%w: %s", entities.ErrProductNotFound, line.ProductID)
		}

		dims := line.Dimensions.Normalized()
		unitPrice, err := pricing.UnitPrice(product.BasePrice, dims, line.Finish)
		if err != nil {
			return entities.Order{}, err
		}

		lineTotal := unitPrice * line.Quantity
		subtotal += lineTotal

		items = append(items, entities.OrderItem{
			ID:          uuid.NewString(),
			ProductID:   product.ID,
			ProductName: product.Name.FR,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  lineTotal,
			Customization: entities.Customization{
				Finish:     line.Finish,
				Dimensions: dims,
			},
		})

		switch {
		case managerID == "" && !multiManager:
			managerID = product.ManagerID
		case managerID != product.ManagerID:
			multiManager = true
			managerID = ""
		}
	}

	deliveryFee := pricing.DeliveryFee(in.Region)

	customer := in.Customer
	if customer.Email == "" {
		customer.Email = placeholderEmail(customer)
	}

	order := entities.Order{
		ID:            uuid.NewString(),
		ManagerID:     managerID,
		Customer:      customer,
		Region:        strings.ToLower(strings.TrimSpace(in.Region)),
		DeliveryPrice: deliveryFee,
		Subtotal:      subtotal,
		TotalAmount:   subtotal + deliveryFee,
		Status:        entities.StatusPending,
		Priority:      entities.PriorityMedium,
		Items:         items,
	}

	if err := s.persistOrder(ctx, &order); err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order created",
		slog.String("order_number", order.OrderNumber),
		slog.Int("total_amount", order.TotalAmount),
		slog.Int("items", len(order.Items)),
	)

	// Event publication and cart cleanup are best effort: the order exists
	// regardless.
	if err := s.notifier.OrderCreated(ctx, order); err != nil {
		s.logger.Error("failed to publish order created event", slog.Any("error", err))
	}
	if in.SessionID != "" {
		if err := s.carts.Clear(ctx, in.SessionID); err != nil {
			s.logger.Error("failed to clear cart after checkout", slog.Any("error", err))
		}
	}

	return order, nil
}

// persistOrder writes the order transactionally, regenerating the order
// number and tracking code on a uniqueness conflict, up to createAttempts
// tries with a jittered pause in between.
func (s *orderService) persistOrder(ctx context.Context, order *entities.Order) error {
	delay := 5 * time.Millisecond

	for attempt := 1; ; attempt++ {
		now := time.Now()
		order.OrderNumber = newOrderNumber(now)
		order.TrackingCode = newTrackingCode(now)
		order.CreatedAt = now
		order.UpdatedAt = now
		for i := range order.Items {
			order.Items[i].OrderID = order.ID
		}

		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			for _, item := range order.Items {
				if err := s.repo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
					return fmt.Errorf("product %s: %w", item.ProductID, err)
				}
			}
			if err := s.repo.CreateOrder(ctx, *order); err != nil {
				return err
			}
			for _, item := range order.Items {
				if err := s.repo.IncrementSales(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, entities.ErrUniqueConflict) || attempt == createAttempts {
			return fmt.Errorf("failed to persist order: %w", err)
		}

		time.Sleep(delay + time.Duration(rand.Int63n(int64(delay))))
		delay *= 2
	}
}

func validateCreateOrder(in CreateOrderInput) error {
	switch {
	case strings.TrimSpace(in.Customer.FirstName) == "":
		return fmt.Errorf("%w: first name is required", entities.ErrValidation)
	case strings.TrimSpace(in.Customer.LastName) == "":
		return fmt.Errorf("%w: last name is required", entities.ErrValidation)
	case strings.TrimSpace(in.Customer.Phone) == "":
		return fmt.Errorf("%w: phone is required", entities.ErrValidation)
	case len(in.Lines) == 0:
		return fmt.Errorf("%w: order has no lines", entities.ErrValidation)
	}
	for i, line := range in.Lines {
		if line.ProductID == "" {
			return fmt.Errorf("%w: line %d has no product", entities.ErrValidation, i)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: line %d quantity must be at least 1", entities.ErrValidation, i)
		}
		d := line.Dimensions.Normalized()
		if d.Length < 0 || d.Width < 0 || d.Height < 0 {
			return fmt.Errorf("%w: line %d has negative dimensions", entities.ErrValidation, i)
		}
	}
	return nil
}

func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%d", now.Year(), now.UnixMilli())
}

func newTrackingCode(now time.Time) string {
	return fmt.Sprintf("TRACK-%d", now.UnixNano())
}

// placeholderEmail derives a guest email from the customer name, since the
// checkout form collects no address of its own.
func placeholderEmail(c entities.Customer) string {
	sanitize := func(s string) string {
		s = strings.ToLower(strings.TrimSpace(s))
		return strings.ReplaceAll(s, " ", "-")
	}
	return fmt.Sprintf("%s.%s@guest.local", sanitize(c.FirstName), sanitize(c.LastName))
}

// TrackOrder returns the order carrying the given guest tracking code.
func (s *orderService) TrackOrder(ctx context.Context, code string) (entities.Order, error) {
	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.OrderByTrackingCode(ctx, code)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.Retry(cfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

// UpdateStatus moves an order along the fulfillment machine. Cancelling a
// not-yet-delivered order restores the stock its items took.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, next entities.OrderStatus) (entities.Order, error) {
	if !next.Valid() {
		return entities.Order{}, fmt.Errorf("%w: unknown status %q", entities.ErrValidation, next)
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repo.OrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if !order.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s -> %s", entities.ErrInvalidStatusTransition, order.Status, next)
		}

		if next == entities.StatusCancelled {
			for _, item := range order.Items {
				if err := s.repo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}

		if err := s.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
			return err
		}

		order.Status = next
		updated = order
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Info("order status updated",
		slog.String("order_id", orderID),
		slog.String("status", string(next)),
	)
	return updated, nil
}
