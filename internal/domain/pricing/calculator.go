// Package pricing computes the price of a detailed-mode restoration.
package pricing

import "dental_lab/internal/domain/entities"

// Table owns every price constant used by detailed mode.
type Table struct {
	BasePrices     map[entities.MaterialType]int64
	DefaultBase    int64
	ImplantBased   int64
	Scans          int64
	StockAbstinent int64

	// Surcharges applied when a measurement is strictly below its threshold.
	ThinWall         int64
	ThinWallBelowMM  float64
	NarrowGap        int64
	NarrowGapBelowMM float64

	PerAuxiliary int64
}

func DefaultTable() Table {
	return Table{
		BasePrices: map[entities.MaterialType]int64{
			entities.MaterialZirconia:             150000,
			entities.MaterialDisilicatoLitio:      180000,
			entities.MaterialMetalCeramica:        120000,
			entities.MaterialCeramicaFeldespatica: 160000,
			entities.MaterialResinaCompuesta:      60000,
			entities.MaterialPMMA:                 45000,
			entities.MaterialPEEK:                 130000,
			entities.MaterialCromoCobalto:         110000,
			entities.MaterialAleacionOro:          250000,
			entities.MaterialTitanio:              200000,
		},
		DefaultBase:      100000,
		ImplantBased:     50000,
		Scans:            30000,
		StockAbstinent:   20000,
		ThinWall:         25000,
		ThinWallBelowMM:  0.5,
		NarrowGap:        15000,
		NarrowGapBelowMM: 0.05,
		PerAuxiliary:     20000,
	}
}

// Calculator prices material configurations from a Table.
type Calculator struct {
	table Table
}

func NewCalculator(t Table) *Calculator {
	return &Calculator{table: t}
}

// Base returns the material base price, or the default base for unknown materials.
func (c *Calculator) Base(m entities.MaterialType) int64 {
	if v, ok := c.table.BasePrices[m]; ok {
		return v
	}
	return c.table.DefaultBase
}

// Price is total: every configuration yields a non-negative amount, including
// one with no auxiliary materials.
func (c *Calculator) Price(cfg entities.MaterialConfiguration) int64 {
	t := c.table
	price := c.Base(cfg.Material)
	if cfg.ImplantBased {
		price += t.ImplantBased
	}
	if cfg.AdditionalScans {
		price += t.Scans
	}
	if cfg.MinThicknessMM < t.ThinWallBelowMM {
		price += t.ThinWall
	}
	if cfg.CementGapMM < t.NarrowGapBelowMM {
		price += t.NarrowGap
	}
	if cfg.StockAbstinent {
		price += t.StockAbstinent
	}
	price += t.PerAuxiliary * int64(len(cfg.AuxiliaryMaterials))
	if price < 0 {
		return 0
	}
	return price
}
