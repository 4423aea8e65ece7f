package entities

import (
	"fmt"
	"strings"
)

type MaterialType string

const (
	MaterialZirconia             MaterialType = "Zirconia"
	MaterialDisilicatoLitio      MaterialType = "Disilicato de Litio"
	MaterialMetalCeramica        MaterialType = "Metal-Cerámica"
	MaterialCeramicaFeldespatica MaterialType = "Cerámica Feldespática"
	MaterialResinaCompuesta      MaterialType = "Resina Compuesta"
	MaterialPMMA                 MaterialType = "PMMA"
	MaterialPEEK                 MaterialType = "PEEK"
	MaterialCromoCobalto         MaterialType = "Cromo-Cobalto"
	MaterialAleacionOro          MaterialType = "Aleación de Oro"
	MaterialTitanio              MaterialType = "Titanio"
)

func MaterialTypes() []MaterialType {
	return []MaterialType{
		MaterialZirconia,
		MaterialDisilicatoLitio,
		MaterialMetalCeramica,
		MaterialCeramicaFeldespatica,
		MaterialResinaCompuesta,
		MaterialPMMA,
		MaterialPEEK,
		MaterialCromoCobalto,
		MaterialAleacionOro,
		MaterialTitanio,
	}
}

// Shade is a VITA classical shade guide value.
type Shade string

func Shades() []Shade {
	return []Shade{
		"A1", "A2", "A3", "A3.5", "A4",
		"B1", "B2", "B3", "B4",
		"C1", "C2", "C3", "C4",
		"D2", "D3", "D4",
	}
}

const (
	DefaultPreset         = "estandar"
	DefaultMinThicknessMM = 1.0
	DefaultCementGapMM    = 0.08
)

const DefaultShade Shade = "A2"

// MaterialConfiguration holds the detailed-mode parameters of one restoration.
// A draft always carries one, even in simple mode.
type MaterialConfiguration struct {
	Tooth              string       `json:"tooth"`
	Preset             string       `json:"preset"`
	ImplantBased       bool         `json:"implant_based"`
	AdditionalScans    bool         `json:"additional_scans"`
	StockAbstinent     bool         `json:"stock_abstinent"`
	MinThicknessMM     float64      `json:"min_thickness_mm"`
	CementGapMM        float64      `json:"cement_gap_mm"`
	Material           MaterialType `json:"material"`
	Shade              Shade        `json:"shade"`
	AuxiliaryMaterials []string     `json:"auxiliary_materials"`
}

func DefaultMaterialConfiguration() MaterialConfiguration {
	return MaterialConfiguration{
		Preset:             DefaultPreset,
		MinThicknessMM:     DefaultMinThicknessMM,
		CementGapMM:        DefaultCementGapMM,
		Material:           MaterialZirconia,
		Shade:              DefaultShade,
		AuxiliaryMaterials: []string{},
	}
}

// ValidateForItem checks what a detailed line item needs: a tooth and at least
// one auxiliary material.
func (c MaterialConfiguration) ValidateForItem() error {
	if strings.TrimSpace(c.Tooth) == "" {
		return NewValidationError("tooth", "tooth is required")
	}
	if len(c.AuxiliaryMaterials) == 0 {
		return NewValidationError("auxiliary_materials", "select at least one material")
	}
	return nil
}

func (c MaterialConfiguration) Clone() MaterialConfiguration {
	cp := c
	cp.AuxiliaryMaterials = append([]string{}, c.AuxiliaryMaterials...)
	return cp
}

// Describe renders the configuration as the observations block of a detailed item.
func (c MaterialConfiguration) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Diente: %s\n", c.Tooth)
	fmt.Fprintf(&b, "Configuración: %s\n", c.Preset)
	fmt.Fprintf(&b, "Material: %s, color %s\n", c.Material, c.Shade)
	fmt.Fprintf(&b, "Espesor mínimo: %.2f mm, espacio de cemento: %.2f mm\n", c.MinThicknessMM, c.CementGapMM)
	if c.ImplantBased {
		b.WriteString("Sobre implante\n")
	}
	if c.AdditionalScans {
		b.WriteString("Escaneos adicionales\n")
	}
	if c.StockAbstinent {
		b.WriteString("Sin stock\n")
	}
	fmt.Fprintf(&b, "Materiales: %s", strings.Join(c.AuxiliaryMaterials, ", "))
	return b.String()
}
