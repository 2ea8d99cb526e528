package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/pricing"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/service"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Catalog interface {
	ProductByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context, req service.ListRequest) (service.ListResult, error)
}

type Carts interface {
	Get(ctx context.Context, sessionID string) ([]entities.PricedLineItem, error)
	Replace(ctx context.Context, sessionID string, lines []entities.CartLine) error
	Clear(ctx context.Context, sessionID string) error
}

type Orders interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (entities.Order, error)
	TrackOrder(ctx context.Context, code string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, next entities.OrderStatus) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	catalog  Catalog
	carts    Carts
	orders   Orders
}

func NewHTTPHandler(logger *slog.Logger, catalog Catalog, carts Carts, orders Orders) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		catalog:  catalog,
		carts:    carts,
		orders:   orders,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{product_id}", h.GetProduct)
	r.Post("/products/{product_id}/quote", h.QuoteProduct)

	r.Get("/cart/{session_id}", h.GetCart)
	r.Put("/cart/{session_id}", h.PutCart)
	r.Delete("/cart/{session_id}", h.ClearCart)

	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/track/{tracking_code}", h.TrackOrder)
	r.Patch("/orders/{order_id}/status", h.UpdateOrderStatus)

	r.Get("/regions", h.ListRegions)
}

// ListProducts returns one filtered, sorted, paginated listing page.
// @Summary      List products
// @Tags         products
// @Param        search      query  string  false  "substring match against localized names"
// @Param        category_id query  string  false  "category filter, 'all' disables"
// @Param        sort_by     query  string  false  "popularity|price-low|price-high|rating|name"
// @Success      200  {object}  ProductList
// @Router       /products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	req := service.ListRequest{
		Search:     q.Get("search"),
		CategoryID: q.Get("category_id"),
		MinPrice:   queryInt(q.Get("min_price")),
		MaxPrice:   queryInt(q.Get("max_price")),
		SortBy:     q.Get("sort_by"),
		Page:       queryInt(q.Get("page")),
		PageSize:   queryInt(q.Get("page_size")),
	}

	res, err := h.catalog.List(ctx, req)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ListResultToJSON(res), http.StatusOK)
}

// GetProduct returns one active product.
// @Summary      Get product
// @Tags         products
// @Success      200  {object}  Product
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /products/{product_id} [get]
func (h *HTTPHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	if err := h.validate.Var(productID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.ProductByID(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.String("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}

// QuoteProduct returns the customization-adjusted unit price a client should
// capture at add-to-cart time.
// @Summary      Quote customization price
// @Tags         products
// @Success      200  {object}  QuoteResponse
// @Router       /products/{product_id}/quote [post]
func (h *HTTPHandler) QuoteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	var req QuoteRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.ProductByID(ctx, productID)
	if errors.Is(err, entities.ErrProductNotFound) {
		utils.WriteError(w, "product not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product", slog.Any("error", err), slog.String("product_id", productID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	dims := dimensionsToEntity(req.Dimensions).Normalized()
	unitPrice, err := pricing.UnitPrice(product.BasePrice, dims, req.Finish)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, QuoteResponse{
		ProductID:  product.ID,
		UnitPrice:  unitPrice,
		Finish:     req.Finish,
		Dimensions: dims.String(),
	}, http.StatusOK)
}

// GetCart returns the materialized, priced cart of a guest session.
// @Summary      Get cart
// @Tags         cart
// @Success      200  {object}  Cart
// @Router       /cart/{session_id} [get]
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	items, err := h.carts.Get(ctx, sessionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get cart", slog.Any("error", err), slog.String("session_id", sessionID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, PricedLinesToJSON(items), http.StatusOK)
}

// PutCart replaces the cart lines of a guest session.
// @Summary      Replace cart
// @Tags         cart
// @Router       /cart/{session_id} [put]
func (h *HTTPHandler) PutCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	var req PutCartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	lines := make([]entities.CartLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, CartLineToEntity(l))
	}

	if err := h.carts.Replace(ctx, sessionID, lines); err != nil {
		if errors.Is(err, entities.ErrValidation) {
			utils.WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to save cart", slog.Any("error", err), slog.String("session_id", sessionID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearCart drops the cart of a guest session.
// @Summary      Clear cart
// @Tags         cart
// @Router       /cart/{session_id} [delete]
func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "session_id")

	if err := h.carts.Clear(ctx, sessionID); err != nil {
		h.logger.ErrorContext(ctx, "failed to clear cart", slog.Any("error", err), slog.String("session_id", sessionID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateOrder is the checkout submission. Failures degrade to an on-screen
// message: the response always carries a success flag.
// @Summary      Checkout
// @Tags         orders
// @Success      201  {object}  CreateOrderResponse
// @Failure      400  {object}  CheckoutError
// @Router       /orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		checkoutFailed.WithLabelValues("bad_body").Inc()
		utils.WriteJSON(w, CheckoutError{Message: "invalid request body"}, http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		checkoutFailed.WithLabelValues("validation").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	lines := make([]service.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, OrderLineToService(l))
	}

	order, err := h.orders.CreateOrder(ctx, service.CreateOrderInput{
		Customer: entities.Customer{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Phone:     req.Phone,
		},
		Region:    req.Region,
		Lines:     lines,
		SessionID: req.SessionID,
	})

	switch {
	case errors.Is(err, entities.ErrValidation):
		checkoutFailed.WithLabelValues("validation").Inc()
		utils.WriteJSON(w, CheckoutError{Message: err.Error()}, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrProductNotFound):
		checkoutFailed.WithLabelValues("product_not_found").Inc()
		utils.WriteJSON(w, CheckoutError{Message: err.Error()}, http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrInsufficientStock):
		checkoutFailed.WithLabelValues("insufficient_stock").Inc()
		utils.WriteJSON(w, CheckoutError{Message: err.Error()}, http.StatusConflict)
		return
	case err != nil:
		checkoutFailed.WithLabelValues("persistence").Inc()
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteJSON(w, CheckoutError{Message: "failed to place order, please retry"}, http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())

	utils.WriteJSON(w, CreateOrderResponse{
		Success:      true,
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		TrackingCode: order.TrackingCode,
		TotalAmount:  order.TotalAmount,
	}, http.StatusCreated)
}

// TrackOrder returns the order carrying a guest tracking code.
// @Summary      Track order
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      404  {object}  utils.ErrorResponse
// @Router       /orders/track/{tracking_code} [get]
func (h *HTTPHandler) TrackOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := chi.URLParam(r, "tracking_code")

	if err := h.validate.Var(code, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.TrackOrder(ctx, code)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to track order", slog.Any("error", err), slog.String("tracking_code", code))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateOrderStatus moves an order along the fulfillment state machine.
// @Summary      Update order status
// @Tags         orders
// @Success      200  {object}  Order
// @Failure      409  {object}  utils.ErrorResponse
// @Router       /orders/{order_id}/status [patch]
func (h *HTTPHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status))
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case errors.Is(err, entities.ErrValidation):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrInvalidStatusTransition):
		utils.WriteError(w, err.Error(), http.StatusConflict)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to update order status", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListRegions enumerates delivery destinations with their fees.
// @Summary      List delivery regions
// @Tags         regions
// @Success      200  {array}  Region
// @Router       /regions [get]
func (h *HTTPHandler) ListRegions(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, RegionsToJSON(pricing.Regions()), http.StatusOK)
}

func queryInt(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
