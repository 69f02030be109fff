package catalog

import (
	"time"
)

type Category string

const (
	CategoryHealth  Category = "health"
	CategoryDaily   Category = "daily"
	CategoryLimited Category = "limited"
	CategoryWelfare Category = "welfare"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryDaily, CategoryLimited, CategoryWelfare:
		return true
	}
	return false
}

type Status string

const (
	StatusAvailable Status = "available"
	StatusLimited   Status = "limited"
	StatusSoldOut   Status = "sold_out"
)

// Product is the unit of the catalog. The field names and json tags match
// the records served by the spreadsheet endpoint.
type Product struct {
	UID             string     `json:"id"`
	Name            string     `json:"name"`
	Category        Category   `json:"category"`
	Price           int        `json:"price"`
	OriginalPrice   int        `json:"originalPrice,omitempty"`
	Images          []string   `json:"images"`
	Description     string     `json:"description"`
	Features        []string   `json:"features"`
	Status          Status     `json:"status"`
	Variants        []string   `json:"variants"`
	MaxLimit        int        `json:"maxLimit,omitempty"`
	CountdownTarget *time.Time `json:"countdownTarget,omitempty"`
	IsAnnouncement  bool       `json:"isAnnouncement,omitempty"`
	InCarousel      bool       `json:"inCarousel,omitempty"`
}

func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// IsOrderable tells whether the product can be put in a cart. Announcements
// and welfare posts are informational only.
func (p Product) IsOrderable() bool {
	return !p.IsAnnouncement && p.Category != CategoryWelfare
}

func (p Product) HasPurchaseLimit() bool {
	return p.MaxLimit > 0
}

// HasActiveCountdown tells whether the deal deadline is still ahead.
func (p Product) HasActiveCountdown(now time.Time) bool {
	return p.CountdownTarget != nil && p.CountdownTarget.After(now)
}
