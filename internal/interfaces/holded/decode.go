// Package holded decodifica los exports crudos del servicio de facturación
// (documentos y catálogo de productos) a las entidades del dominio. Es la
// única capa que conoce las formas JSON del upstream; del borde hacia
// adentro solo viajan registros tipados.
package holded

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/presupuesto-engine/internal/domain"
	"github.com/jhoicas/presupuesto-engine/internal/domain/entity"
)

// documentDTO forma cruda de un documento. Según la revisión del export la
// lista de líneas viene como "products" o como "lineItems".
type documentDTO struct {
	DocNumber string          `json:"docNumber"`
	Products  json.RawMessage `json:"products"`
	LineItems json.RawMessage `json:"lineItems"`
}

// lineItemDTO una línea cruda. decimal acepta número o número entre
// comillas, que es exactamente la inconsistencia del upstream.
type lineItemDTO struct {
	ProductID string              `json:"productId"`
	ID        string              `json:"id"`
	Units     decimal.NullDecimal `json:"units"`
	Weight    decimal.NullDecimal `json:"weight"`
	Width     decimal.NullDecimal `json:"width"`
	Height    decimal.NullDecimal `json:"height"`
	Depth     decimal.NullDecimal `json:"depth"`
}

type productDTO struct {
	ID         string              `json:"id"`
	ProductID  string              `json:"productId"`
	Name       string              `json:"name"`
	SKU        string              `json:"sku"`
	Stock      decimal.NullDecimal `json:"stock"`
	Weight     decimal.NullDecimal `json:"weight"`
	Attributes []attributeDTO      `json:"attributes"`
}

// attributeDTO par nombre/valor; el valor llega a veces como string y a
// veces como número, se normaliza siempre a string.
type attributeDTO struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// DecodeDocuments decodifica el export de documentos. Un documento cuyo
// campo de líneas no es una secuencia es fatal para el decode y se informa
// con domain.ErrMalformedInput envuelto con el docNumber.
func DecodeDocuments(data []byte) ([]entity.Document, error) {
	var raw []documentDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decodificar documentos: %w", err)
	}

	docs := make([]entity.Document, 0, len(raw))
	for _, d := range raw {
		items, err := decodeLineItems(d)
		if err != nil {
			return nil, fmt.Errorf("documento %q: %w", d.DocNumber, err)
		}
		docs = append(docs, entity.Document{
			DocNumber: d.DocNumber,
			LineItems: items,
		})
	}
	return docs, nil
}

func decodeLineItems(d documentDTO) ([]entity.LineItem, error) {
	raw := d.Products
	if len(raw) == 0 {
		raw = d.LineItems
	}
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var items []lineItemDTO
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.ErrMalformedInput
	}

	out := make([]entity.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.LineItem{
			ProductRef:  it.ProductID,
			SecondaryID: it.ID,
			Units:       it.Units,
			Weight:      it.Weight,
			WidthCm:     it.Width,
			HeightCm:    it.Height,
			DepthCm:     it.Depth,
		})
	}
	return out, nil
}

// DecodeCatalog decodifica el export del catálogo. Productos sin
// identificador se descartan; el stock ausente queda en 0.
func DecodeCatalog(data []byte) ([]entity.CatalogEntry, error) {
	var raw []productDTO
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}

	catalog := make([]entity.CatalogEntry, 0, len(raw))
	for _, p := range raw {
		id := p.ID
		if id == "" {
			id = p.ProductID
		}
		if id == "" {
			continue
		}

		attrs := make([]entity.ProductAttribute, 0, len(p.Attributes))
		for _, a := range p.Attributes {
			attrs = append(attrs, entity.ProductAttribute{
				Name:  a.Name,
				Value: attributeValue(a.Value),
			})
		}

		stock := decimal.Zero
		if p.Stock.Valid {
			stock = p.Stock.Decimal
		}

		catalog = append(catalog, entity.CatalogEntry{
			ID:             id,
			Name:           p.Name,
			SKU:            p.SKU,
			StockAvailable: stock,
			Weight:         p.Weight,
			Attributes:     attrs,
		})
	}
	return catalog, nil
}

// attributeValue normaliza el valor suelto del atributo a string sin perder
// la representación numérica.
func attributeValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
