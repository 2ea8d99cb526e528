// Package pricing implements the deterministic customization and delivery
// pricing rules of the storefront. Prices are integers in the smallest
// currency unit.
package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
)

const (
	FinishDark    = "dark"
	FinishLight   = "light"
	FinishNatural = "natural"
)

// finishMultipliers adjusts the unit price for premium finishes. Finishes
// not listed here (including "natural") price at the base multiplier.
var finishMultipliers = map[string]float64{
	FinishDark:  1.10,
	FinishLight: 1.05,
}

// UnitPrice computes the customization-adjusted unit price:
//
//	round(basePrice × (length×width)/(defaultLength×defaultWidth) × finishMultiplier)
//
// At the default 180×90 size with a plain finish the base price is returned
// exactly. Dimensions must be positive; bounds checking beyond that belongs
// to the request boundary.
func UnitPrice(basePrice int, d entities.Dimensions, finish string) (int, error) {
	d = d.Normalized()
	if d.Length <= 0 || d.Width <= 0 || d.Height <= 0 {
		return 0, fmt.Errorf("%w: dimensions must be positive, got %s", entities.ErrValidation, d)
	}
	if basePrice < 0 {
		return 0, fmt.Errorf("%w: negative base price", entities.ErrValidation)
	}

	sizeMultiplier := float64(d.Length*d.Width) / float64(entities.DefaultLength*entities.DefaultWidth)

	finishMultiplier := 1.0
	if m, ok := finishMultipliers[strings.ToLower(finish)]; ok {
		finishMultiplier = m
	}

	return int(math.Round(float64(basePrice) * sizeMultiplier * finishMultiplier)), nil
}

// Region is a delivery destination presented to the shopper.
type Region struct {
	ID    string
	Label string
	Fee   int
}

// DefaultDeliveryFee applies to regions missing from the table. Region input
// comes from a bounded selector, but checkout stays tolerant of an unknown
// key instead of blocking the order.
const DefaultDeliveryFee = 1500

// deliveryRegions is the flat delivery fee table, keyed by lower-cased
// region identifier.
var deliveryRegions = []Region{
	{ID: "alger", Label: "Alger", Fee: 800},
	{ID: "blida", Label: "Blida", Fee: 1000},
	{ID: "boumerdes", Label: "Boumerdès", Fee: 1000},
	{ID: "tipaza", Label: "Tipaza", Fee: 1000},
	{ID: "oran", Label: "Oran", Fee: 1200},
	{ID: "constantine", Label: "Constantine", Fee: 1200},
	{ID: "setif", Label: "Sétif", Fee: 1200},
	{ID: "annaba", Label: "Annaba", Fee: 1300},
	{ID: "tlemcen", Label: "Tlemcen", Fee: 1300},
	{ID: "bejaia", Label: "Béjaïa", Fee: 1100},
}

var feeByRegion = func() map[string]int {
	m := make(map[string]int, len(deliveryRegions))
	for _, r := range deliveryRegions {
		m[r.ID] = r.Fee
	}
	return m
}()

// DeliveryFee returns the flat fee for the given region identifier,
// case-insensitively, falling back to DefaultDeliveryFee for unknown regions.
func DeliveryFee(regionID string) int {
	if fee, ok := feeByRegion[strings.ToLower(strings.TrimSpace(regionID))]; ok {
		return fee
	}
	return DefaultDeliveryFee
}

// Regions enumerates the delivery destinations for the storefront selector.
func Regions() []Region {
	out := make([]Region, len(deliveryRegions))
	copy(out, deliveryRegions)
	return out
}
