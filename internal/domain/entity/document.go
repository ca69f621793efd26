package entity

import "github.com/shopspring/decimal"

// Document representa un documento comercial de Holded (presupuesto, proforma
// o pedido de venta). Es entrada inmutable: el pipeline nunca lo modifica.
type Document struct {
	DocNumber string     // clave de búsqueda; la comparación es case-insensitive
	LineItems []LineItem // en el orden original del documento, se conserva en todo el pipeline
}

// LineItem una línea del documento: referencia a un producto y una cantidad.
// Los campos físicos opcionales son datos de respaldo para cuando el atributo
// equivalente no resuelve en el catálogo.
type LineItem struct {
	ProductRef  string              // productId de la línea (puede venir vacío)
	SecondaryID string              // identificador alternativo cuando productId no viene
	Units       decimal.NullDecimal // cantidad pedida; puede ser fraccionada en envíos parciales
	Weight      decimal.NullDecimal // peso neto de respaldo (kg)
	WidthCm     decimal.NullDecimal
	HeightCm    decimal.NullDecimal
	DepthCm     decimal.NullDecimal
}
