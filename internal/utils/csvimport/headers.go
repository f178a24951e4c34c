package csvimport

import "strings"

// Canonical field keys.
const (
	KeyName             = "name"
	KeyBrand            = "brand"
	KeyStock            = "stock"
	KeyPrice            = "price"
	KeyImageURL         = "imageUrl"
	KeySKU              = "sku"
	KeyCompatibleModels = "compatible_models"
)

var headerSynonyms = map[string]string{
	"nombre":   KeyName,
	"name":     KeyName,
	"producto": KeyName,
	"product":  KeyName,

	"marca": KeyBrand,
	"brand": KeyBrand,

	"stock":     KeyStock,
	"cantidad":  KeyStock,
	"inventory": KeyStock,

	"precio": KeyPrice,
	"price":  KeyPrice,
	"cost":   KeyPrice,

	"url imagen": KeyImageURL,
	"image url":  KeyImageURL,
	"imageurl":   KeyImageURL,
	"imagen":     KeyImageURL,
	"image":      KeyImageURL,

	"código":          KeySKU,
	"codigo":          KeySKU,
	"code":            KeySKU,
	"sku":             KeySKU,
	"código de parte": KeySKU,
	"codigo de parte": KeySKU,
	"part code":       KeySKU,

	"modelos compatibles": KeyCompatibleModels,
	"compatible models":   KeyCompatibleModels,
	"compatibilidad":      KeyCompatibleModels,
	"models":              KeyCompatibleModels,
}

// NormalizeHeader maps a raw, possibly localized column header to its canonical key.
// Unknown headers come back lower-cased and trimmed.
func NormalizeHeader(raw string) string {
	h := strings.ToLower(strings.TrimSpace(raw))
	if key, ok := headerSynonyms[h]; ok {
		return key
	}
	return h
}
