// Comando report: genera el reporte logístico de un documento a partir de
// los exports JSON ya traídos por el colaborador de fetch (este binario no
// habla con la API ni renderiza tablas; solo corre el motor).
//
// Uso:
//
//	report -documents documentos.json -products productos.json SP20250101
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/application/dto"
	"github.com/jhoicas/presupuesto-engine/internal/application/report"
	"github.com/jhoicas/presupuesto-engine/internal/domain"
	"github.com/jhoicas/presupuesto-engine/internal/domain/logistics"
	"github.com/jhoicas/presupuesto-engine/internal/interfaces/holded"
	"github.com/jhoicas/presupuesto-engine/pkg/config"
	"github.com/jhoicas/presupuesto-engine/pkg/logger"
)

// output envoltura JSON que se emite por stdout para el render.
type output struct {
	DocNumber string               `json:"docNumber"`
	Rows      []dto.ReportRowDTO   `json:"rows"`
	Summary   dto.PalletSummaryDTO `json:"palletSummary"`
}

func main() {
	documentsPath := flag.String("documents", "documents.json", "export JSON de documentos")
	productsPath := flag.String("products", "products.json", "export JSON del catálogo de productos")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: report [-documents archivo] [-products archivo] <docNumber>")
		os.Exit(2)
	}
	docNumber := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("doc_number", docNumber).
		Msg("iniciando generación de reporte")

	uc, err := report.NewStockReportUseCase(engineConfig(cfg), log)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración del motor")
	}

	docsData, err := os.ReadFile(*documentsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *documentsPath).Msg("leer export de documentos")
	}
	productsData, err := os.ReadFile(*productsPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *productsPath).Msg("leer export de catálogo")
	}

	docs, err := holded.DecodeDocuments(docsData)
	if err != nil {
		log.Fatal().Err(err).Msg("export de documentos malformado")
	}
	catalog, err := holded.DecodeCatalog(productsData)
	if err != nil {
		log.Fatal().Err(err).Msg("export de catálogo malformado")
	}

	result, err := uc.BuildForDocNumber(context.Background(), docNumber, docs, catalog)
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		log.Fatal().Str("doc_number", docNumber).Msg("documento no encontrado")
	case errors.Is(err, domain.ErrEmptyReport):
		log.Fatal().Str("doc_number", docNumber).Msg("sin datos: ninguna línea del documento resolvió")
	case err != nil:
		log.Fatal().Err(err).Msg("generar reporte")
	}

	out := output{
		DocNumber: result.DocNumber,
		Rows:      dto.FromReport(result.Report),
		Summary:   dto.FromPalletSummary(result.Summary),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal().Err(err).Msg("serializar reporte")
	}
}

// engineConfig traduce la configuración plana de pkg/config a la del motor.
func engineConfig(cfg *config.Config) report.Config {
	return report.Config{
		Enricher: logistics.EnricherConfig{
			UnresolvedPolicy: logistics.UnresolvedPolicy(cfg.Report.UnresolvedPolicy),
			Keys: logistics.AttributeKeys{
				NetWeight:    cfg.Report.Attributes.NetWeight,
				Width:        cfg.Report.Attributes.Width,
				Height:       cfg.Report.Attributes.Height,
				Depth:        cfg.Report.Attributes.Depth,
				CategoryLine: cfg.Report.Attributes.CategoryLine,
			},
		},
		Pallet: logistics.PalletConfig{
			WeightCapacityKg: decimal.NewFromFloat(cfg.Report.Pallet.WeightCapacityKg),
			VolumeCapacityM3: decimal.NewFromFloat(cfg.Report.Pallet.VolumeCapacityM3),
		},
	}
}
