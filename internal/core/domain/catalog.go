package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EntityKind selects which catalog entity an import targets.
type EntityKind string

const (
	EntityProduct EntityKind = "products"
	EntityPart    EntityKind = "parts"
)

// ParseEntityKind accepts the plural route form as well as the singular.
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "products", "product":
		return EntityProduct, nil
	case "parts", "part":
		return EntityPart, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", s)
}

// Product is a sellable inventory item, shaped as the backend create payload.
type Product struct {
	Name     string          `json:"name" yaml:"name"`
	Brand    string          `json:"brand" yaml:"brand"`
	Stock    int64           `json:"stock" yaml:"stock"`
	Price    decimal.Decimal `json:"price" yaml:"price"`
	ImageURL string          `json:"image_url" yaml:"image_url"`
}

// Part is a repair spare part, shaped as the backend create payload.
type Part struct {
	Name             string          `json:"name" yaml:"name"`
	SKU              string          `json:"sku" yaml:"sku"`
	Stock            int64           `json:"stock" yaml:"stock"`
	Price            decimal.Decimal `json:"price" yaml:"price"`
	CompatibleModels []string        `json:"compatible_models" yaml:"compatible_models"`
}
