package repo

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
)

type Product struct {
	ID         string         `db:"id"`
	CategoryID string         `db:"category_id"`
	ManagerID  string         `db:"manager_id"`
	BasePrice  int            `db:"base_price"`
	Stock      int            `db:"stock"`
	Active     bool           `db:"active"`
	NameFR     string         `db:"name_fr"`
	NameAR     sql.NullString `db:"name_ar"`
	NameEN     sql.NullString `db:"name_en"`
	DescFR     sql.NullString `db:"description_fr"`
	DescAR     sql.NullString `db:"description_ar"`
	DescEN     sql.NullString `db:"description_en"`
	MaterialFR sql.NullString `db:"material_fr"`
	MaterialAR sql.NullString `db:"material_ar"`
	MaterialEN sql.NullString `db:"material_en"`

	// Images is a serialized JSON array of URLs.
	Images sql.NullString `db:"images"`

	RatingAvg   float64   `db:"rating_avg"`
	ReviewCount int       `db:"review_count"`
	SalesCount  int       `db:"sales_count"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Order struct {
	ID            string         `db:"id"`
	OrderNumber   string         `db:"order_number"`
	TrackingCode  string         `db:"tracking_code"`
	ManagerID     sql.NullString `db:"manager_id"`
	FirstName     string         `db:"first_name"`
	LastName      string         `db:"last_name"`
	Phone         string         `db:"phone"`
	Email         sql.NullString `db:"email"`
	Region        string         `db:"region"`
	DeliveryPrice int            `db:"delivery_price"`
	Subtotal      int            `db:"subtotal"`
	TotalAmount   int            `db:"total_amount"`
	Status        string         `db:"status"`
	Priority      string         `db:"priority"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type OrderItem struct {
	ID          string `db:"id"`
	OrderID     string `db:"order_id"`
	ProductID   string `db:"product_id"`
	ProductName string `db:"product_name"`
	Quantity    int    `db:"quantity"`
	UnitPrice   int    `db:"unit_price"`
	TotalPrice  int    `db:"total_price"`

	// Customization is a serialized JSON snapshot of finish + dimensions.
	Customization sql.NullString `db:"customization"`
}

// customizationJSON is the wire shape of the customization column.
type customizationJSON struct {
	Finish string `json:"finish"`
	Length int    `json:"length"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// parseImages decodes the serialized image list, falling back to an empty
// list on malformed data rather than failing the read.
func parseImages(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(raw.String), &images); err != nil {
		return nil
	}
	return images
}

// parseCustomization decodes the customization snapshot, falling back to the
// defaults (natural finish, stock dimensions) on malformed data.
func parseCustomization(raw sql.NullString) entities.Customization {
	fallback := entities.Customization{
		Finish:     "natural",
		Dimensions: entities.Dimensions{}.Normalized(),
	}
	if !raw.Valid || raw.String == "" {
		return fallback
	}
	var c customizationJSON
	if err := json.Unmarshal([]byte(raw.String), &c); err != nil {
		return fallback
	}
	return entities.Customization{
		Finish: c.Finish,
		Dimensions: entities.Dimensions{
			Length: c.Length,
			Width:  c.Width,
			Height: c.Height,
		}.Normalized(),
	}
}

func marshalCustomization(c entities.Customization) sql.NullString {
	data, err := json.Marshal(customizationJSON{
		Finish: c.Finish,
		Length: c.Dimensions.Length,
		Width:  c.Dimensions.Width,
		Height: c.Dimensions.Height,
	})
	if err != nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(data), Valid: true}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:         p.ID,
		CategoryID: p.CategoryID,
		ManagerID:  p.ManagerID,
		BasePrice:  p.BasePrice,
		Stock:      p.Stock,
		Active:     p.Active,
		Name: entities.LocalizedText{
			FR: p.NameFR,
			AR: nullStringToString(p.NameAR),
			EN: nullStringToString(p.NameEN),
		},
		Description: entities.LocalizedText{
			FR: nullStringToString(p.DescFR),
			AR: nullStringToString(p.DescAR),
			EN: nullStringToString(p.DescEN),
		},
		Material: entities.LocalizedText{
			FR: nullStringToString(p.MaterialFR),
			AR: nullStringToString(p.MaterialAR),
			EN: nullStringToString(p.MaterialEN),
		},
		Images:      parseImages(p.Images),
		RatingAvg:   p.RatingAvg,
		ReviewCount: p.ReviewCount,
		SalesCount:  p.SalesCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:            i.ID,
		OrderID:       i.OrderID,
		ProductID:     i.ProductID,
		ProductName:   i.ProductName,
		Quantity:      i.Quantity,
		UnitPrice:     i.UnitPrice,
		TotalPrice:    i.TotalPrice,
		Customization: parseCustomization(i.Customization),
	}
}

func OrderToEntity(o Order, items []OrderItem) entities.Order {
	order := entities.Order{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		TrackingCode: o.TrackingCode,
		ManagerID:    nullStringToString(o.ManagerID),
		Customer: entities.Customer{
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Phone:     o.Phone,
			Email:     nullStringToString(o.Email),
		},
		Region:        o.Region,
		DeliveryPrice: o.DeliveryPrice,
		Subtotal:      o.Subtotal,
		TotalAmount:   o.TotalAmount,
		Status:        entities.OrderStatus(o.Status),
		Priority:      entities.OrderPriority(o.Priority),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}

	if len(items) > 0 {
		order.Items = make([]entities.OrderItem, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
