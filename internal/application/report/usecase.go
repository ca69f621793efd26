package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/presupuesto-engine/internal/domain"
	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
	"github.com/jhoicas/presupuesto-engine/internal/domain/logistics"
	"github.com/jhoicas/presupuesto-engine/pkg/logger"
)

// Config parámetros del motor, inyectados desde pkg/config.
type Config struct {
	Enricher logistics.EnricherConfig
	Pallet   logistics.PalletConfig
}

// DefaultConfig valores de fábrica del motor.
func DefaultConfig() Config {
	return Config{
		Enricher: logistics.DefaultEnricherConfig(),
		Pallet:   logistics.DefaultPalletConfig(),
	}
}

// StockReport resultado completo de una corrida: el reporte plano listo para
// el colaborador de render y la estimación de palets.
type StockReport struct {
	DocNumber string
	Report    entity.Report
	Summary   entity.PalletSummary
}

// StockReportUseCase orquesta el pipeline completo sobre entradas ya
// materializadas: enriquecer línea a línea, agrupar por categoría, ensamblar
// el reporte y estimar palets. Sin estado compartido entre corridas; cada
// invocación es independiente.
type StockReportUseCase struct {
	cfg Config
	log *logger.Logger
}

// NewStockReportUseCase construye el caso de uso. Valida la configuración de
// palets al armar, no en cada corrida.
func NewStockReportUseCase(cfg Config, log *logger.Logger) (*StockReportUseCase, error) {
	if err := cfg.Pallet.Validate(); err != nil {
		return nil, err
	}
	return &StockReportUseCase{cfg: cfg, log: log}, nil
}

// BuildForDocNumber resuelve el número de documento contra el conjunto
// traído (match case-insensitive, primera coincidencia) y genera el reporte.
func (uc *StockReportUseCase) BuildForDocNumber(ctx context.Context, docNumber string, docs []entity.Document, catalog []entity.CatalogEntry) (*StockReport, error) {
	doc, err := FindDocument(docs, docNumber)
	if err != nil {
		return nil, err
	}
	return uc.Build(ctx, doc, catalog)
}

// Build genera el reporte para un documento ya localizado. Devuelve
// domain.ErrEmptyReport cuando ninguna línea resuelve: es una condición
// esperada (deriva de catálogo) y corta antes de la estimación de palets.
func (uc *StockReportUseCase) Build(_ context.Context, doc *entity.Document, catalog []entity.CatalogEntry) (*StockReport, error) {
	runID := uuid.New().String()
	log := uc.log.With().
		Str("run_id", runID).
		Str("doc_number", doc.DocNumber).
		Logger()

	index := logistics.BuildCatalogIndex(catalog)

	resolved := make([]entity.ResolvedLine, 0, len(doc.LineItems))
	omitted := 0
	for _, item := range doc.LineItems {
		line, ok := logistics.EnrichLine(item, index, uc.cfg.Enricher)
		if !ok {
			omitted++
			continue
		}
		resolved = append(resolved, *line)
	}

	if len(resolved) == 0 {
		log.Warn().
			Int("line_items", len(doc.LineItems)).
			Int("omitted", omitted).
			Msg("reporte vacío: ninguna línea resolvió")
		return nil, domain.ErrEmptyReport
	}

	groups, grand := logistics.GroupByCategory(resolved)
	rpt := logistics.AssembleReport(groups, grand)
	summary := logistics.EstimatePallets(grand, uc.cfg.Pallet)

	log.Info().
		Int("resolved_lines", len(resolved)).
		Int("omitted", omitted).
		Int("categories", len(groups)).
		Int64("pallets_needed", summary.PalletsNeeded).
		Msg("reporte generado")

	return &StockReport{
		DocNumber: doc.DocNumber,
		Report:    rpt,
		Summary:   summary,
	}, nil
}
