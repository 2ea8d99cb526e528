package entities

import "time"

// LocalizedText holds the three storefront translations of a text field.
type LocalizedText struct {
	FR string
	AR string
	EN string
}

// Get returns the translation for the given locale, falling back to French,
// the store's primary language.
func (t LocalizedText) Get(locale string) string {
	switch locale {
	case "ar":
		if t.AR != "" {
			return t.AR
		}
	case "en":
		if t.EN != "" {
			return t.EN
		}
	}
	return t.FR
}

type Product struct {
	ID         string
	CategoryID string
	ManagerID  string

	// BasePrice is in the smallest currency unit.
	BasePrice int
	Stock     int
	Active    bool

	Name        LocalizedText
	Description LocalizedText
	Material    LocalizedText

	Images []string

	RatingAvg   float64
	ReviewCount int
	SalesCount  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Image returns the primary product image, or empty when none is set.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
