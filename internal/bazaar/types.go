package bazaar

import "time"

// Categories lists the marketplace category vocabulary, in display order.
var Categories = []string{
	"Room Essentials",
	"Books & Study Material",
	"Electronics",
	"Other Useful Stuff",
}

// Conditions lists the allowed product conditions, in display order.
var Conditions = []string{"New", "Like New", "Used"}

// ValidCategory reports whether name is a known category.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ValidCondition reports whether name is a known condition.
func ValidCondition(name string) bool {
	for _, c := range Conditions {
		if c == name {
			return true
		}
	}
	return false
}

// Product mirrors a listing as returned by the marketplace API. The client
// never mutates a Product; it is display data.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Condition   string   `json:"condition"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	SellerID    string   `json:"seller_id"`
	SellerName  string   `json:"seller_name"`
	IsSold      bool     `json:"is_sold"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p Product) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// ProductPage mirrors the paginated payload of /api/products.
type ProductPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Pages    int       `json:"pages"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
