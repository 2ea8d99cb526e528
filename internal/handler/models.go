package handler

import (
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/pricing"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/service"
)

// LocalizedText carries the three storefront translations of a field.
type LocalizedText struct {
	FR string `json:"fr"`
	AR string `json:"ar,omitempty"`
	EN string `json:"en,omitempty"`
}

// Product is the storefront product representation.
type Product struct {
	ID          string        `json:"id"`
	CategoryID  string        `json:"category_id"`
	BasePrice   int           `json:"base_price"`
	Stock       int           `json:"stock"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Material    LocalizedText `json:"material"`
	Images      []string      `json:"images,omitempty"`
	RatingAvg   float64       `json:"rating_avg"`
	ReviewCount int           `json:"review_count"`
	SalesCount  int           `json:"sales_count"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ProductList is one listing page.
type ProductList struct {
	Items       []Product `json:"items"`
	TotalCount  int       `json:"total_count"`
	TotalPages  int       `json:"total_pages"`
	CurrentPage int       `json:"current_page"`
}

// Dimensions are customized measurements in cm. Zero means "use the default".
type Dimensions struct {
	Length int `json:"length" validate:"omitempty,gte=30,lte=400"`
	Width  int `json:"width" validate:"omitempty,gte=30,lte=400"`
	Height int `json:"height" validate:"omitempty,gte=30,lte=400"`
}

// QuoteRequest asks for the customization-adjusted unit price of a product.
type QuoteRequest struct {
	Finish     string     `json:"finish"`
	Dimensions Dimensions `json:"dimensions"`
}

type QuoteResponse struct {
	ProductID  string `json:"product_id"`
	UnitPrice  int    `json:"unit_price"`
	Finish     string `json:"finish"`
	Dimensions string `json:"dimensions"`
}

// CartLine is a pending purchase entry of a guest session.
type CartLine struct {
	ProductID  string     `json:"product_id" validate:"required"`
	Quantity   int        `json:"quantity" validate:"required,gte=1"`
	Finish     string     `json:"finish"`
	Dimensions Dimensions `json:"dimensions"`
	UnitPrice  int        `json:"unit_price" validate:"gte=0"`
}

type PutCartRequest struct {
	Lines []CartLine `json:"lines" validate:"dive"`
}

// PricedLine is a cart line joined with live catalog data.
type PricedLine struct {
	ProductID  string        `json:"product_id"`
	Name       LocalizedText `json:"name"`
	Image      string        `json:"image,omitempty"`
	Quantity   int           `json:"quantity"`
	Finish     string        `json:"finish,omitempty"`
	Dimensions string        `json:"dimensions"`
	UnitPrice  int           `json:"unit_price"`
	TotalPrice int           `json:"total_price"`
	InStock    bool          `json:"in_stock"`
}

type Cart struct {
	Items    []PricedLine `json:"items"`
	Subtotal int          `json:"subtotal"`
}

// OrderLine is one submitted checkout line.
type OrderLine struct {
	ProductID  string     `json:"product_id" validate:"required"`
	Quantity   int        `json:"quantity" validate:"required,gte=1"`
	Finish     string     `json:"finish"`
	Dimensions Dimensions `json:"dimensions"`
}

// CreateOrderRequest is the checkout submission.
type CreateOrderRequest struct {
	FirstName string      `json:"first_name" validate:"required"`
	LastName  string      `json:"last_name" validate:"required"`
	Phone     string      `json:"phone" validate:"required"`
	Region    string      `json:"region" validate:"required"`
	SessionID string      `json:"session_id"`
	Lines     []OrderLine `json:"lines" validate:"required,min=1,dive"`
}

type CreateOrderResponse struct {
	Success      bool   `json:"success"`
	OrderID      string `json:"order_id"`
	OrderNumber  string `json:"order_number"`
	TrackingCode string `json:"tracking_code"`
	TotalAmount  int    `json:"total_amount"`
}

// CheckoutError is the degraded checkout result shown on screen.
type CheckoutError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OrderItem is an immutable order line snapshot.
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int    `json:"unit_price"`
	TotalPrice  int    `json:"total_price"`
	Finish      string `json:"finish,omitempty"`
	Dimensions  string `json:"dimensions"`
}

// Order is the tracking/manager representation of an order.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	TrackingCode  string      `json:"tracking_code"`
	ManagerID     string      `json:"manager_id,omitempty"`
	FirstName     string      `json:"first_name"`
	LastName      string      `json:"last_name"`
	Phone         string      `json:"phone"`
	Region        string      `json:"region"`
	DeliveryPrice int         `json:"delivery_price"`
	Subtotal      int         `json:"subtotal"`
	TotalAmount   int         `json:"total_amount"`
	Status        string      `json:"status"`
	Priority      string      `json:"priority"`
	Items         []OrderItem `json:"items,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type Region struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Fee   int    `json:"fee"`
}

func localizedToJSON(t entities.LocalizedText) LocalizedText {
	return LocalizedText{FR: t.FR, AR: t.AR, EN: t.EN}
}

func dimensionsToEntity(d Dimensions) entities.Dimensions {
	return entities.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height}
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		BasePrice:   p.BasePrice,
		Stock:       p.Stock,
		Name:        localizedToJSON(p.Name),
		Description: localizedToJSON(p.Description),
		Material:    localizedToJSON(p.Material),
		Images:      p.Images,
		RatingAvg:   p.RatingAvg,
		ReviewCount: p.ReviewCount,
		SalesCount:  p.SalesCount,
		CreatedAt:   p.CreatedAt,
	}
}

func ListResultToJSON(res service.ListResult) ProductList {
	items := make([]Product, 0, len(res.Items))
	for _, p := range res.Items {
		items = append(items, ProductEntityToJSON(p))
	}
	return ProductList{
		Items:       items,
		TotalCount:  res.TotalCount,
		TotalPages:  res.TotalPages,
		CurrentPage: res.CurrentPage,
	}
}

func CartLineToEntity(l CartLine) entities.CartLine {
	return entities.CartLine{
		ProductID:  l.ProductID,
		Quantity:   l.Quantity,
		Finish:     l.Finish,
		Dimensions: dimensionsToEntity(l.Dimensions),
		UnitPrice:  l.UnitPrice,
	}
}

func PricedLinesToJSON(items []entities.PricedLineItem) Cart {
	lines := make([]PricedLine, 0, len(items))
	subtotal := 0
	for _, it := range items {
		subtotal += it.TotalPrice
		lines = append(lines, PricedLine{
			ProductID:  it.ProductID,
			Name:       localizedToJSON(it.Name),
			Image:      it.Image,
			Quantity:   it.Quantity,
			Finish:     it.Finish,
			Dimensions: it.Dimensions,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
			InStock:    it.InStock,
		})
	}
	return Cart{Items: lines, Subtotal: subtotal}
}

func OrderLineToService(l OrderLine) service.OrderLine {
	return service.OrderLine{
		ProductID:  l.ProductID,
		Quantity:   l.Quantity,
		Finish:     l.Finish,
		Dimensions: dimensionsToEntity(l.Dimensions),
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			Finish:      it.Customization.Finish,
			Dimensions:  it.Customization.Dimensions.String(),
		})
	}
	return Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		TrackingCode:  o.TrackingCode,
		ManagerID:     o.ManagerID,
		FirstName:     o.Customer.FirstName,
		LastName:      o.Customer.LastName,
		Phone:         o.Customer.Phone,
		Region:        o.Region,
		DeliveryPrice: o.DeliveryPrice,
		Subtotal:      o.Subtotal,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		Priority:      string(o.Priority),
		Items:         items,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func RegionsToJSON(regions []pricing.Region) []Region {
	out := make([]Region, 0, len(regions))
	for _, r := range regions {
		out = append(out, Region{ID: r.ID, Label: r.Label, Fee: r.Fee})
	}
	return out
}
