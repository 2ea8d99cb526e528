package entities

import "fmt"

const (
	DefaultLength = 180
	DefaultWidth  = 90
	DefaultHeight = 75
)

// Dimensions are the customized measurements of a furniture piece, in cm.
type Dimensions struct {
	Length int
	Width  int
	Height int
}

// Normalized returns the dimensions with defaults applied to unset fields.
func (d Dimensions) Normalized() Dimensions {
	if d.Length == 0 {
		d.Length = DefaultLength
	}
	if d.Width == 0 {
		d.Width = DefaultWidth
	}
	if d.Height == 0 {
		d.Height = DefaultHeight
	}
	return d
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d cm", d.Length, d.Width, d.Height)
}

// CartLine is a pending purchase entry held per guest session. UnitPrice is
// the customization-adjusted price captured at add-to-cart time; zero means
// no price was captured and the product's current base price applies.
type CartLine struct {
	ProductID  string
	Quantity   int
	Finish     string
	Dimensions Dimensions
	UnitPrice  int
}

// PricedLineItem is a cart line joined with live catalog data. Derived at
// materialization or checkout time, never stored on its own.
type PricedLineItem struct {
	ProductID   string
	Name        LocalizedText
	Image       string
	Quantity    int
	Finish      string
	Dimensions  string
	UnitPrice   int
	TotalPrice  int
	InStock     bool
}
