package csvimport

import (
	"fmt"
	"math"
	"strings"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/shopspring/decimal"
)

// Validation messages, as shown to the shop staff.
const (
	MsgNameRequired  = "Nombre requerido"
	MsgBrandRequired = "Marca requerida"
	MsgSKURequired   = "Código requerido"
	MsgStockRequired = "Stock requerido"
	MsgStockInvalid  = "Stock debe ser un número válido >= 0"
	MsgPriceRequired = "Precio requerido"
	MsgPriceInvalid  = "Precio debe ser un número válido >= 0"
)

var (
	productHeaders = []string{KeyName, KeyBrand, KeyStock, KeyPrice, KeyImageURL}
	partHeaders    = []string{KeyName, KeySKU, KeyStock, KeyPrice, KeyCompatibleModels}
)

// HeaderKeys returns the fixed target field order for kind.
func HeaderKeys(kind domain.EntityKind) []string {
	if kind == domain.EntityPart {
		return append([]string(nil), partHeaders...)
	}
	return append([]string(nil), productHeaders...)
}

// Validate checks every row independently. Bad data never produces an error; it is
// reported on the row. The returned error is only for an unknown kind.
func Validate(rows []domain.RawRow, kind domain.EntityKind) (domain.ParseResult, error) {
	var check func(domain.RawRow) (any, []string)
	switch kind {
	case domain.EntityProduct:
		check = validateProduct
	case domain.EntityPart:
		check = validatePart
	default:
		return domain.ParseResult{}, fmt.Errorf("unknown entity kind %q", kind)
	}

	result := domain.ParseResult{
		Kind:       kind,
		Rows:       make([]domain.ImportRow, 0, len(rows)),
		HeaderKeys: HeaderKeys(kind),
	}
	for i, raw := range rows {
		data, errs := check(raw)
		valid := len(errs) == 0
		if valid {
			result.ValidCount++
		} else {
			result.InvalidCount++
		}
		result.Rows = append(result.Rows, domain.ImportRow{
			RowNumber: i + 2,
			RawFields: raw,
			Errors:    errs,
			IsValid:   valid,
			Data:      data,
		})
	}
	return result, nil
}

func validateProduct(raw domain.RawRow) (any, []string) {
	errs := []string{}
	name := field(raw, KeyName)
	brand := field(raw, KeyBrand)
	if name == "" {
		errs = append(errs, MsgNameRequired)
	}
	if brand == "" {
		errs = append(errs, MsgBrandRequired)
	}
	stock, errs := checkStock(raw, errs)
	price, errs := checkNumber(raw, KeyPrice, MsgPriceRequired, MsgPriceInvalid, errs)

	return domain.Product{
		Name:     name,
		Brand:    brand,
		Stock:    stock,
		Price:    price,
		ImageURL: field(raw, KeyImageURL),
	}, errs
}

func validatePart(raw domain.RawRow) (any, []string) {
	errs := []string{}
	name := field(raw, KeyName)
	sku := field(raw, KeySKU)
	if name == "" {
		errs = append(errs, MsgNameRequired)
	}
	if sku == "" {
		errs = append(errs, MsgSKURequired)
	}
	stock, errs := checkStock(raw, errs)
	price, errs := checkNumber(raw, KeyPrice, MsgPriceRequired, MsgPriceInvalid, errs)

	return domain.Part{
		Name:             name,
		SKU:              sku,
		Stock:            stock,
		Price:            price,
		CompatibleModels: SplitModels(field(raw, KeyCompatibleModels)),
	}, errs
}

// SplitModels splits a comma list, trimming entries and dropping empties. Duplicates are kept.
func SplitModels(s string) []string {
	models := []string{}
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	return models
}

// ParseNumber reads a non-negative quantity. A lone comma is taken as the decimal separator.
func ParseNumber(s string) (decimal.Decimal, bool) {
	n, err := decimal.NewFromString(utils.NormalizeDecimalComma(s))
	if err != nil || n.IsNegative() {
		return decimal.Zero, false
	}
	return n, true
}

func checkNumber(raw domain.RawRow, key, missing, invalid string, errs []string) (decimal.Decimal, []string) {
	v := field(raw, key)
	if v == "" {
		return decimal.Zero, append(errs, missing)
	}
	n, ok := ParseNumber(v)
	if !ok {
		return decimal.Zero, append(errs, invalid)
	}
	return n, errs
}

var maxStock = decimal.NewFromInt(math.MaxInt64)

// checkStock accepts whole numbers that fit an int64. "3.0" is 3; "3.7" is invalid.
func checkStock(raw domain.RawRow, errs []string) (int64, []string) {
	n, errs := checkNumber(raw, KeyStock, MsgStockRequired, MsgStockInvalid, errs)
	if !n.Equal(n.Truncate(0)) || n.GreaterThan(maxStock) {
		return 0, append(errs, MsgStockInvalid)
	}
	return n.IntPart(), errs
}

func field(raw domain.RawRow, key string) string {
	return strings.TrimSpace(raw[key])
}
