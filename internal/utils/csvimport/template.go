package csvimport

import "github.com/SscSPs/mobilepos_backend/internal/core/domain"

const productTemplate = "Nombre;Marca;Stock;Precio;URL Imagen\n" +
	"iPhone 13 Pro;Apple;15;999.99;https://example.com/iphone13.jpg\n" +
	"Samsung Galaxy S21;Samsung;20;799.99;\n" +
	"Xiaomi Redmi Note 10;Xiaomi;30;299.99;"

const partTemplate = "Nombre;Código;Stock;Precio;Modelos Compatibles\n" +
	"\"Pantalla LCD\";SCR-IP13-BLK;25;89.99;\"iPhone 13, iPhone 13 Pro\"\n" +
	"Batería;BAT-SAM-S21;15;45.50;Samsung Galaxy S21\n" +
	"\"Flex de Carga\";FLX-XM-RN10;40;12.99;\"Xiaomi Redmi Note 10, Redmi Note 10S\""

// GenerateTemplate returns the example document users fill in for kind.
func GenerateTemplate(kind domain.EntityKind) string {
	if kind == domain.EntityPart {
		return partTemplate
	}
	return productTemplate
}

// TemplateFileName is the download name of the template for kind.
func TemplateFileName(kind domain.EntityKind) string {
	if kind == domain.EntityPart {
		return "plantilla_partes.csv"
	}
	return "plantilla_productos.csv"
}

// TemplateBytes prefixes the template with a UTF-8 BOM so spreadsheet tools pick the right encoding.
func TemplateBytes(kind domain.EntityKind) []byte {
	return []byte(bom + GenerateTemplate(kind))
}
