package csvimport

import (
	"testing"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProducts(t *testing.T) {
	result, err := ParseAndValidate("Nombre;Marca;Stock;Precio\niPhone 13;Apple;15;999.99\n;;;", domain.EntityProduct)
	require.NoError(t, err)

	assert.Equal(t, 1, result.ValidCount)
	assert.Equal(t, 0, result.InvalidCount)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, 2, row.RowNumber)
	assert.True(t, row.IsValid)
	assert.Empty(t, row.Errors)

	p, ok := row.Data.(domain.Product)
	require.True(t, ok)
	assert.Equal(t, "iPhone 13", p.Name)
	assert.Equal(t, "Apple", p.Brand)
	assert.Equal(t, int64(15), p.Stock)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("999.99")))
	assert.Equal(t, "", p.ImageURL)
}

func TestValidateStockMessages(t *testing.T) {
	rows := []domain.RawRow{
		{"name": "A", "brand": "B", "price": "1"},
		{"name": "A", "brand": "B", "stock": "-5", "price": "1"},
		{"name": "A", "brand": "B", "stock": "0", "price": "1"},
		{"name": "A", "brand": "B", "stock": "abc", "price": "1"},
		{"name": "A", "brand": "B", "stock": "3.7", "price": "1"},
		{"name": "A", "brand": "B", "stock": "18446744073709551617", "price": "1"},
		{"name": "A", "brand": "B", "stock": "4,0", "price": "1"},
	}
	result, err := Validate(rows, domain.EntityProduct)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgStockRequired}, result.Rows[0].Errors)
	assert.Equal(t, []string{MsgStockInvalid}, result.Rows[1].Errors)
	assert.True(t, result.Rows[2].IsValid)
	assert.Equal(t, []string{MsgStockInvalid}, result.Rows[3].Errors)
	assert.Equal(t, []string{MsgStockInvalid}, result.Rows[4].Errors, "fractional stock")
	assert.Equal(t, []string{MsgStockInvalid}, result.Rows[5].Errors, "stock beyond int64")
	assert.True(t, result.Rows[6].IsValid)
	assert.Equal(t, int64(4), result.Rows[6].Data.(domain.Product).Stock)
	assert.Equal(t, 2, result.ValidCount)
	assert.Equal(t, 5, result.InvalidCount)
	assert.Equal(t, []int{2, 3, 4, 5}, []int{result.Rows[0].RowNumber, result.Rows[1].RowNumber, result.Rows[2].RowNumber, result.Rows[3].RowNumber})
}

func TestValidatePartStockMustBeWhole(t *testing.T) {
	result, err := Validate([]domain.RawRow{{"name": "Flex", "sku": "FLX-1", "stock": "2.5", "price": "3"}}, domain.EntityPart)
	require.NoError(t, err)

	assert.False(t, result.Rows[0].IsValid)
	assert.Equal(t, []string{MsgStockInvalid}, result.Rows[0].Errors)
}

func TestValidateAccumulatesErrors(t *testing.T) {
	result, err := Validate([]domain.RawRow{{"name": " ", "price": "x"}}, domain.EntityProduct)
	require.NoError(t, err)

	assert.Equal(t, []string{MsgNameRequired, MsgBrandRequired, MsgStockRequired, MsgPriceInvalid}, result.Rows[0].Errors)
	assert.False(t, result.Rows[0].IsValid)
}

func TestValidateParts(t *testing.T) {
	text := "Nombre,Código,Stock,Precio,Modelos Compatibles\n" +
		`Pantalla,SCR-1,3,"12,5"," iPhone 13, ,iPhone 13 ,iPhone 13"` + "\n" +
		"Batería,,1,2,"
	result, err := ParseAndValidate(text, domain.EntityPart)
	require.NoError(t, err)
	require.Len(t, result.Rows, 2)

	part, ok := result.Rows[0].Data.(domain.Part)
	require.True(t, ok)
	assert.True(t, result.Rows[0].IsValid)
	assert.Equal(t, "SCR-1", part.SKU)
	assert.True(t, part.Price.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, []string{"iPhone 13", "iPhone 13", "iPhone 13"}, part.CompatibleModels)

	assert.Equal(t, []string{MsgSKURequired}, result.Rows[1].Errors)
	assert.Equal(t, []string{KeyName, KeySKU, KeyStock, KeyPrice, KeyCompatibleModels}, result.HeaderKeys)
}

func TestValidateUnknownKind(t *testing.T) {
	_, err := Validate(nil, domain.EntityKind("tickets"))
	assert.Error(t, err)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"15", "15", true},
		{" 999.99 ", "999.99", true},
		{"12,5", "12.5", true},
		{"0", "0", true},
		{"1,000.50", "0", false},
		{"-1", "0", false},
		{"abc", "0", false},
		{"", "0", false},
	}
	for _, tt := range tests {
		got, ok := ParseNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), tt.in)
	}
}

func TestTemplatesValidateClean(t *testing.T) {
	for _, kind := range []domain.EntityKind{domain.EntityProduct, domain.EntityPart} {
		t.Run(string(kind), func(t *testing.T) {
			result, err := ParseAndValidate(string(TemplateBytes(kind)), kind)
			require.NoError(t, err)
			assert.Equal(t, 0, result.InvalidCount)
			assert.Equal(t, 3, result.ValidCount)
		})
	}

	result, err := ParseAndValidate(GenerateTemplate(domain.EntityPart), domain.EntityPart)
	require.NoError(t, err)
	first := result.Rows[0].Data.(domain.Part)
	assert.Equal(t, "Pantalla LCD", first.Name)
	assert.Equal(t, []string{"iPhone 13", "iPhone 13 Pro"}, first.CompatibleModels)
}

func TestTemplateFileName(t *testing.T) {
	assert.Equal(t, "plantilla_productos.csv", TemplateFileName(domain.EntityProduct))
	assert.Equal(t, "plantilla_partes.csv", TemplateFileName(domain.EntityPart))
	assert.Equal(t, []byte("\uFEFF"), TemplateBytes(domain.EntityPart)[:3])
}
