package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// Marcadores reservados de la columna Product. El colaborador de render no
// debe tratar como datos ninguna fila cuyo Product empiece por uno de estos
// prefijos; el criterio de verdad sigue siendo el tag de entity.ReportRow.
const (
	HeaderPrefix   = ">> "
	SubtotalPrefix = "Subtotal: "
	GrandTotalText = "TOTAL GENERAL"
	// ShortageText valor literal de la columna "Insuficiente?" heredado del
	// upstream; vacío cuando no hay faltante.
	ShortageText = "STOCK INSUFICIENTE"
)

// ReportRowDTO fila con el juego fijo de columnas que consume el render.
// Todas las columnas están siempre presentes; en cada tipo de fila las que
// no aplican van en null (NullDecimal inválido serializa como null).
type ReportRowDTO struct {
	SKU                   string              `json:"SKU"`
	Product               string              `json:"Product"`
	Units                 decimal.NullDecimal `json:"Units"`
	SubtotalUnits         decimal.NullDecimal `json:"Subtotal>Units"`
	NetWeightKg           decimal.NullDecimal `json:"NetWeightKg"`
	TotalWeightKg         decimal.NullDecimal `json:"TotalWeightKg"`
	SubtotalTotalWeightKg decimal.NullDecimal `json:"Subtotal>TotalWeightKg"`
	VolumeM3              decimal.NullDecimal `json:"VolumeM3"`
	SubtotalVolumeM3      decimal.NullDecimal `json:"Subtotal>VolumeM3"`
	StockAvailable        decimal.NullDecimal `json:"StockAvailable"`
	Insufficient          string              `json:"Insuficiente?"`
	Shortfall             decimal.NullDecimal `json:"Falta"`
	SubtotalShortfall     decimal.NullDecimal `json:"Subtotal>Falta"`
}

// PalletSummaryDTO resumen logístico para el render.
type PalletSummaryDTO struct {
	TotalUnits      decimal.NullDecimal `json:"totalUnits"`
	TotalWeightKg   decimal.NullDecimal `json:"totalWeightKg"`
	TotalVolumeM3   decimal.NullDecimal `json:"totalVolumeM3"`
	PalletsByWeight decimal.Decimal     `json:"palletsByWeight"`
	PalletsByVolume decimal.Decimal     `json:"palletsByVolume"`
	PalletsNeeded   int64               `json:"palletsNeeded"`
}

// FromReport proyecta el reporte etiquetado al juego fijo de columnas.
func FromReport(r entity.Report) []ReportRowDTO {
	rows := make([]ReportRowDTO, 0, len(r.Rows))
	for _, row := range r.Rows {
		switch row.Kind {
		case entity.RowHeader:
			rows = append(rows, ReportRowDTO{Product: HeaderPrefix + row.Label})
		case entity.RowData:
			rows = append(rows, dataRow(row.Line))
		case entity.RowSubtotal:
			rows = append(rows, subtotalRow(SubtotalPrefix+row.Label, row.Subtotal))
		case entity.RowGrandTotal:
			rows = append(rows, subtotalRow(GrandTotalText, row.Subtotal))
		}
	}
	return rows
}

// FromPalletSummary proyecta el resumen logístico.
func FromPalletSummary(s entity.PalletSummary) PalletSummaryDTO {
	return PalletSummaryDTO{
		TotalUnits:      s.TotalUnits,
		TotalWeightKg:   s.TotalWeightKg,
		TotalVolumeM3:   s.TotalVolumeM3,
		PalletsByWeight: s.PalletsByWeight,
		PalletsByVolume: s.PalletsByVolume,
		PalletsNeeded:   s.PalletsNeeded,
	}
}

func dataRow(l *entity.ResolvedLine) ReportRowDTO {
	row := ReportRowDTO{
		SKU:            l.SKU,
		Product:        l.ProductName,
		Units:          l.Units,
		NetWeightKg:    l.NetWeightKg,
		TotalWeightKg:  l.TotalWeightKg,
		VolumeM3:       l.VolumeM3,
		StockAvailable: decimal.NullDecimal{Decimal: l.StockAvailable, Valid: true},
	}
	if l.IsShortage {
		row.Insufficient = ShortageText
		row.Shortfall = l.ShortfallUnits
	}
	return row
}

func subtotalRow(label string, st *entity.Subtotal) ReportRowDTO {
	return ReportRowDTO{
		Product:               label,
		SubtotalUnits:         st.Units,
		SubtotalTotalWeightKg: st.TotalWeightKg,
		SubtotalVolumeM3:      st.VolumeM3,
		SubtotalShortfall:     st.ShortfallUnits,
	}
}
