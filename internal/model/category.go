package model

import (
	"fmt"
	"strings"
)

// Category is one of the fixed expense labels.
type Category string

const (
	Housing        Category = "Housing"
	Transportation Category = "Transportation"
	Food           Category = "Food"
	Utilities      Category = "Utilities"
	Healthcare     Category = "Healthcare"
	Entertainment  Category = "Entertainment"
	Clothing       Category = "Clothing"
	Others         Category = "Others"
)

// Categories lists every category in selector order.
var Categories = []Category{
	Housing, Transportation, Food, Utilities,
	Healthcare, Entertainment, Clothing, Others,
}

// DefaultCategory is assigned to freshly added rows.
const DefaultCategory = Housing

// ParseCategory matches a label case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Index returns the selector position, or -1 for an unknown label.
func (c Category) Index() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// Shift moves delta positions through Categories, wrapping at both ends.
func (c Category) Shift(delta int) Category {
	n := len(Categories)
	idx := c.Index()
	if idx < 0 {
		idx = 0
	}
	return Categories[((idx+delta)%n+n)%n]
}
