package logistics

import "github.com/jhoicas/presupuesto-engine/internal/domain/entity"

// GrandTotalLabel etiqueta de la fila final del reporte.
const GrandTotalLabel = "TOTAL GENERAL"

// AssembleReport aplana los grupos y el total general en la secuencia final
// de filas: encabezado, líneas y subtotal por cada categoría, y una fila de
// total general al cierre. Transformación pura de una sola pasada.
func AssembleReport(groups []entity.CategoryGroup, grand entity.Subtotal) entity.Report {
	rows := make([]entity.ReportRow, 0, rowCount(groups))
	for i := range groups {
		g := &groups[i]
		rows = append(rows, entity.ReportRow{Kind: entity.RowHeader, Label: g.Label})
		for j := range g.Lines {
			rows = append(rows, entity.ReportRow{Kind: entity.RowData, Line: &g.Lines[j]})
		}
		rows = append(rows, entity.ReportRow{Kind: entity.RowSubtotal, Label: g.Label, Subtotal: &g.Subtotal})
	}
	total := grand
	rows = append(rows, entity.ReportRow{Kind: entity.RowGrandTotal, Label: GrandTotalLabel, Subtotal: &total})

	return entity.Report{Rows: rows, GrandTotal: grand}
}

func rowCount(groups []entity.CategoryGroup) int {
	n := 1 // fila de total general
	for i := range groups {
		n += 2 + len(groups[i].Lines)
	}
	return n
}
