package entity

import "github.com/shopspring/decimal"

// CatalogEntry datos de referencia de un producto del catálogo externo.
// Solo lectura: el motor nunca muta el catálogo.
type CatalogEntry struct {
	ID             string
	Name           string
	SKU            string
	StockAvailable decimal.Decimal     // 0 cuando el upstream no lo informa
	Weight         decimal.NullDecimal // peso a nivel de catálogo, último recurso para el peso neto
	Attributes     []ProductAttribute  // pares nombre/valor en el orden del upstream
}

// ProductAttribute par nombre/valor tal como lo entrega el catálogo.
// El valor es un string que puede o no parsear como número; esa decisión
// pertenece al resolutor de atributos, no a la entidad.
type ProductAttribute struct {
	Name  string
	Value string
}
