package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de medida válidas para Product.
const (
	MeasurementPCS   = "PCS"
	MeasurementKG    = "KG"
	MeasurementBOX   = "BOX"
	MeasurementLITRE = "LITRE"
)

// MeasurementTypes lista cerrada de unidades, en el orden que muestra el frontend.
var MeasurementTypes = []string{MeasurementPCS, MeasurementKG, MeasurementBOX, MeasurementLITRE}

// ValidMeasurementType indica si s pertenece al conjunto de unidades permitidas.
func ValidMeasurementType(s string) bool {
	for _, m := range MeasurementTypes {
		if s == m {
			return true
		}
	}
	return false
}

// Product artículo del catálogo de la panadería. ProductName es único.
type Product struct {
	ID              string
	ProductName     string
	Description     string
	Category        string
	BasePrice       decimal.Decimal // > 0
	ShelfLifeDays   int             // > 0
	MeasurementType string          // PCS, KG, BOX, LITRE
	IsActive        bool
	CreatedAt       time.Time
}
