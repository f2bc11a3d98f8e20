package ui

import (
	"fmt"
	"time"

	"github.com/hawkerdev/hawker/internal/bazaar"
)

// Card is the display-ready view-model for one product. It is pure data
// built fresh on every render; the Saved flag comes from a live membership
// query so every rendering of the same product stays consistent without
// invalidation messages.
type Card struct {
	ID        string
	Name      string
	Price     string
	Category  string
	Condition string
	Seller    string
	Age       string
	Images    int
	Sold      bool
	Saved     bool
}

// membership is the read side of the wishlist cache a Card needs.
type membership interface {
	Contains(productID string) bool
}

// newCard builds a Card from a product and the current wishlist membership.
func newCard(p bazaar.Product, saved membership) Card {
	return Card{
		ID:        p.ID,
		Name:      p.Name,
		Price:     formatPrice(p.Price),
		Category:  p.Category,
		Condition: p.Condition,
		Seller:    p.SellerName,
		Age:       relativeAge(p.ParsedCreatedAt(), time.Now()),
		Images:    len(p.Images),
		Sold:      p.IsSold,
		Saved:     saved.Contains(p.ID),
	}
}

// SavedMarker returns the one-column wishlist indicator.
func (c Card) SavedMarker() string {
	return ternary(c.Saved, "♥", " ")
}

// relativeAge renders how long ago a listing was created.
func relativeAge(created, now time.Time) string {
	if created.IsZero() {
		return ""
	}
	d := now.Sub(created)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return created.Format("Jan 2006")
	}
}
