package entities

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type DraftMode string

// MaxWorkOrderUnits bounds the child rows one submission expands into.
const MaxWorkOrderUnits = 500

const (
	DraftModeSimple   DraftMode = "simple"
	DraftModeDetailed DraftMode = "detailed"
)

// WorkOrderDraft is the work order being composed, before submission.
// Items keep insertion order; it is both the display and the total order.
type WorkOrderDraft struct {
	ClinicID       string                `json:"clinic_id"`
	DentistID      string                `json:"dentist_id"`
	TechnicianID   string                `json:"technician_id"`
	PatientName    string                `json:"patient_name"`
	PatientTaxID   string                `json:"patient_tax_id"`
	Items          []LineItem            `json:"items"`
	Mode           DraftMode             `json:"mode"`
	CategoryFilter Category              `json:"category_filter"`
	SearchText     string                `json:"search_text"`
	Material       MaterialConfiguration `json:"material"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func NewWorkOrderDraft() WorkOrderDraft {
	return WorkOrderDraft{
		Items:    []LineItem{},
		Mode:     DraftModeSimple,
		Material: DefaultMaterialConfiguration(),
	}
}

// Total is the sum of unit price times quantity over every item, saturating at
// math.MaxInt64 so it never wraps negative.
func (d WorkOrderDraft) Total() int64 {
	var total int64
	for _, it := range d.Items {
		sub := it.Subtotal()
		if sub > math.MaxInt64-total {
			return math.MaxInt64
		}
		total += sub
	}
	return total
}

// UnitCount is the number of child rows the draft expands into on submission.
func (d WorkOrderDraft) UnitCount() int {
	n := 0
	for _, it := range d.Items {
		n += it.Quantity
	}
	return n
}

// IsPristine reports whether the draft holds nothing worth recovering.
func (d WorkOrderDraft) IsPristine() bool {
	return d.ClinicID == "" &&
		d.DentistID == "" &&
		d.TechnicianID == "" &&
		strings.TrimSpace(d.PatientName) == "" &&
		d.PatientTaxID == "" &&
		len(d.Items) == 0
}

// ValidateForSubmission names the first missing requirement, if any.
func (d WorkOrderDraft) ValidateForSubmission() error {
	if d.ClinicID == "" {
		return NewValidationError("clinic_id", "select a clinic")
	}
	if d.DentistID == "" {
		return NewValidationError("dentist_id", "select a dentist")
	}
	if strings.TrimSpace(d.PatientName) == "" {
		return NewValidationError("patient_name", "patient name is required")
	}
	if len(d.Items) == 0 {
		return NewValidationError("items", "add at least one service")
	}
	units := 0
	for _, it := range d.Items {
		if it.Quantity < 1 || it.Quantity > MaxLineItemQuantity {
			return NewValidationError("items", fmt.Sprintf("item %s: quantity must be between 1 and %d", it.ID, MaxLineItemQuantity))
		}
		units += it.Quantity
	}
	if units > MaxWorkOrderUnits {
		return NewValidationError("items", fmt.Sprintf("a work order holds at most %d units", MaxWorkOrderUnits))
	}
	if d.Total() == math.MaxInt64 {
		return NewValidationError("items", "total exceeds the maximum amount")
	}
	return nil
}

func (d WorkOrderDraft) Clone() WorkOrderDraft {
	cp := d
	cp.Items = make([]LineItem, len(d.Items))
	copy(cp.Items, d.Items)
	cp.Material = d.Material.Clone()
	return cp
}
