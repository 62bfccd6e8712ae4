package domain

import (
	"errors"
	"strings"
)

// Category identifies which question set an assessment uses.
type Category string

const (
	CategoryStartup Category = "startup"
	CategoryLoss    Category = "loss"
	CategoryLow     Category = "low"
	CategoryProfit  Category = "profit"
)

// ErrUnknownCategory is returned when a category key is not one of the
// four enumerated business situations.
var ErrUnknownCategory = errors.New("category not found")

// Categories lists all valid category keys in presentation order.
func Categories() []Category {
	return []Category{CategoryStartup, CategoryLoss, CategoryLow, CategoryProfit}
}

// ParseCategory validates a raw key from the request path or session.
func ParseCategory(raw string) (Category, error) {
	switch Category(strings.TrimSpace(raw)) {
	case CategoryStartup:
		return CategoryStartup, nil
	case CategoryLoss:
		return CategoryLoss, nil
	case CategoryLow:
		return CategoryLow, nil
	case CategoryProfit:
		return CategoryProfit, nil
	default:
		return "", ErrUnknownCategory
	}
}

// Label returns a human-readable name for rendering.
func (c Category) Label() string {
	switch c {
	case CategoryStartup:
		return "Startup"
	case CategoryLoss:
		return "Running at a Loss"
	case CategoryLow:
		return "Low Profit"
	case CategoryProfit:
		return "Profitable"
	default:
		return string(c)
	}
}
