package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

var productColumns = []string{
	"id", "category_id", "manager_id", "base_price", "stock", "active",
	"name_fr", "name_ar", "name_en",
	"description_fr", "description_ar", "description_en",
	"material_fr", "material_ar", "material_en",
	"images", "rating_avg", "review_count", "sales_count",
	"created_at", "updated_at",
}

var orderColumns = []string{
	"id", "order_number", "tracking_code", "manager_id",
	"first_name", "last_name", "phone", "email", "region",
	"delivery_price", "subtotal", "total_amount",
	"status", "priority", "created_at", "updated_at",
}

var orderItemColumns = []string{
	"id", "order_id", "product_id", "product_name",
	"quantity", "unit_price", "total_price", "customization",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ProductsByIDs returns the active products among ids. Missing or inactive
// ids are simply absent from the result.
func (r *postgresRepo) ProductsByIDs(ctx context.Context, ids []string) ([]entities.Product, error) {
	if len(ids) == 0 {
		return []entities.Product{}, nil
	}

	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"active": true}).
		MustSql()

	var rows []Product
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	products := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, ProductToEntity(row))
	}
	return products, nil
}

func (r *postgresRepo) ProductByID(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": id, "active": true}).
		MustSql()

	var row Product
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(row), nil
}

// ListFilter is the storefront listing filter state.
type ListFilter struct {
	Search     string
	CategoryID string
	MinPrice   int
	MaxPrice   int
	SortBy     string
	Limit      uint64
	Offset     uint64
}

// Listing sort keys.
const (
	SortPopularity = "popularity"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
	SortRating     = "rating"
	SortName       = "name"
)

// sortClauses maps a sort key to its ORDER BY. Every ordering ends with the
// id tiebreak so pagination stays reproducible under equal keys.
var sortClauses = map[string][]string{
	SortPopularity: {"sales_count DESC", "id ASC"},
	SortPriceLow:   {"base_price ASC", "id ASC"},
	SortPriceHigh:  {"base_price DESC", "id ASC"},
	SortRating:     {"rating_avg DESC", "id ASC"},
	SortName:       {"name_fr ASC", "id ASC"},
}

func (r *postgresRepo) listConditions(f ListFilter) []sq.Sqlizer {
	conds := []sq.Sqlizer{sq.Eq{"active": true}}

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, sq.Or{
			sq.ILike{"name_fr": pattern},
			sq.ILike{"name_ar": pattern},
			sq.ILike{"name_en": pattern},
		})
	}
	if f.CategoryID != "" && f.CategoryID != "all" {
		conds = append(conds, sq.Eq{"category_id": f.CategoryID})
	}
	if f.MinPrice > 0 {
		conds = append(conds, sq.GtOrEq{"base_price": f.MinPrice})
	}
	if f.MaxPrice > 0 {
		conds = append(conds, sq.LtOrEq{"base_price": f.MaxPrice})
	}
	return conds
}

// ListProducts returns one listing page plus the total match count. The page
// select and the count run in parallel.
func (r *postgresRepo) ListProducts(ctx context.Context, f ListFilter) ([]entities.Product, int, error) {
	orderBy, ok := sortClauses[f.SortBy]
	if !ok {
		orderBy = sortClauses[SortPopularity]
	}

	sel := r.qb.Select(productColumns...).From("products").OrderBy(orderBy...)
	cnt := r.qb.Select("COUNT(*)").From("products")
	for _, cond := range r.listConditions(f) {
		sel = sel.Where(cond)
		cnt = cnt.Where(cond)
	}
	if f.Limit > 0 {
		sel = sel.Limit(f.Limit).Offset(f.Offset)
	}

	var (
		rows  []Product
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query, args := sel.MustSql()
		if err := r.selectContext(gctx, &rows, query, args...); err != nil {
			return fmt.Errorf("failed to select products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		query, args := cnt.MustSql()
		if err := r.getContext(gctx, &total, query, args...); err != nil {
			return fmt.Errorf("failed to count products: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	products := make([]entities.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, ProductToEntity(row))
	}
	return products, total, nil
}

// CreateOrder inserts the order row and all of its items. Run it inside a
// transaction so readers never observe a partial order. A violated unique
// constraint (order number or tracking code) maps to ErrUniqueConflict so
// the caller can regenerate and retry.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.TrackingCode, nullString(o.ManagerID),
			o.Customer.FirstName, o.Customer.LastName, o.Customer.Phone,
			nullString(o.Customer.Email), o.Region,
			o.DeliveryPrice, o.Subtotal, o.TotalAmount,
			string(o.Status), string(o.Priority), o.CreatedAt, o.UpdatedAt,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order: %w", mapUniqueViolation(err))
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").Columns(orderItemColumns...)
	for _, it := range o.Items {
		q = q.Values(
			it.ID, o.ID, it.ProductID, it.ProductName,
			it.Quantity, it.UnitPrice, it.TotalPrice,
			marshalCustomization(it.Customization),
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert order items: %w", mapUniqueViolation(err))
	}
	return nil
}

func (r *postgresRepo) OrderByID(ctx context.Context, id string) (entities.Order, error) {
	return r.orderBy(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) OrderByTrackingCode(ctx context.Context, code string) (entities.Order, error) {
	return r.orderBy(ctx, sq.Eq{"tracking_code": code})
}

func (r *postgresRepo) orderBy(ctx context.Context, cond sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(cond).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.qb.Select(orderItemColumns...).
		From("order_items").
		Where(sq.Eq{"order_id": order.ID}).
		OrderBy("id ASC").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) error {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

// DecrementStock conditionally takes quantity units off a product's stock.
// Zero affected rows means the remaining stock was insufficient.
func (r *postgresRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productID}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return entities.ErrInsufficientStock
	}
	return nil
}

func (r *postgresRepo) RestoreStock(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}

func (r *postgresRepo) IncrementSales(ctx context.Context, productID string, quantity int) error {
	query, args := r.qb.Update("products").
		Set("sales_count", sq.Expr("sales_count + ?", quantity)).
		Where(sq.Eq{"id": productID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to increment sales count: %w", err)
	}
	return nil
}

// mapUniqueViolation converts a Postgres unique-violation into
// entities.ErrUniqueConflict, leaving other errors untouched.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entities.ErrUniqueConflict
	}
	return err
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
