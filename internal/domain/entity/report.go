package entity

import "github.com/shopspring/decimal"

// ResolvedLine una línea del documento ya cruzada con el catálogo: identidad
// del producto, pesos, volumen, estado de stock y categoría. Todo campo
// numérico que pueda faltar es un NullDecimal explícito; nunca se usa cero
// como centinela de ausencia.
type ResolvedLine struct {
	ProductName    string
	SKU            string
	Units          decimal.NullDecimal
	NetWeightKg    decimal.NullDecimal
	TotalWeightKg  decimal.NullDecimal // NetWeightKg × Units, redondeado a 3 decimales; nulo si falta alguno
	VolumeM3       decimal.NullDecimal // solo cuando resuelven las tres dimensiones
	StockAvailable decimal.Decimal
	IsShortage     bool
	ShortfallUnits decimal.NullDecimal // |stock − unidades|, solo cuando IsShortage
	Category       string
}

// Subtotal agregados numéricos de un grupo de categoría o del total general.
// Cada columna es nula solo si ningún miembro aportó un valor.
type Subtotal struct {
	Units          decimal.NullDecimal // redondeado a 1 decimal
	TotalWeightKg  decimal.NullDecimal // redondeado a 2 decimales
	VolumeM3       decimal.NullDecimal // redondeado a 5 decimales
	ShortfallUnits decimal.NullDecimal // redondeado a 0 decimales
}

// CategoryGroup una categoría del reporte con sus líneas y su subtotal.
// Los grupos se crean en orden de primera aparición y no se reordenan.
type CategoryGroup struct {
	Label    string
	Lines    []ResolvedLine // ordenadas por SKU ascendente; SKU vacío primero
	Subtotal Subtotal
}

// RowKind etiqueta explícita del tipo de fila. Los consumidores deciden por
// este tag, no por el contenido de la columna de producto.
type RowKind int

const (
	RowData RowKind = iota
	RowHeader
	RowSubtotal
	RowGrandTotal
)

// ReportRow una fila del reporte plano. Line solo viene en RowData;
// Subtotal solo en RowSubtotal y RowGrandTotal.
type ReportRow struct {
	Kind     RowKind
	Label    string // etiqueta de categoría en Header/Subtotal; vacío en RowData
	Line     *ResolvedLine
	Subtotal *Subtotal
}

// Report secuencia final de filas: por cada categoría un encabezado, sus
// líneas y un subtotal; al final una única fila de total general.
type Report struct {
	Rows       []ReportRow
	GrandTotal Subtotal
}

// PalletSummary estimación logística derivada de los totales generales.
type PalletSummary struct {
	TotalUnits      decimal.NullDecimal
	TotalWeightKg   decimal.NullDecimal
	TotalVolumeM3   decimal.NullDecimal
	PalletsByWeight decimal.Decimal // redondeado a 3 decimales
	PalletsByVolume decimal.Decimal // redondeado a 3 decimales
	PalletsNeeded   int64           // siempre >= 1
}
