package entities

import (
	"encoding/json"
	"fmt"
	"math"
)

// ServiceRef is what a line item was priced from: either a catalog service or an
// ad-hoc service synthesized by detailed mode. Only the two types below implement it.
type ServiceRef interface {
	RefID() string
	RefName() string
	isServiceRef()
}

// CatalogServiceRef points at a catalog Service as it was when the item was added.
type CatalogServiceRef struct {
	ServiceID string   `json:"service_id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
}

func (r CatalogServiceRef) RefID() string   { return r.ServiceID }
func (r CatalogServiceRef) RefName() string { return r.Name }
func (CatalogServiceRef) isServiceRef()     {}

// AdHocServiceRef is a detailed-mode restoration with no catalog counterpart.
type AdHocServiceRef struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Configuration MaterialConfiguration `json:"configuration"`
}

func (r AdHocServiceRef) RefID() string   { return r.ID }
func (r AdHocServiceRef) RefName() string { return r.Name }
func (AdHocServiceRef) isServiceRef()     {}

const (
	serviceKindCatalog = "catalog"
	serviceKindAdHoc   = "adhoc"
)

// LineItem is one row of a draft. UnitPrice is captured when the item is appended
// and never re-derived from the catalog.
type LineItem struct {
	ID           string
	Service      ServiceRef
	Quantity     int
	Tooth        string
	UnitPrice    int64
	Observations string
}

// MaxLineItemQuantity bounds the units of one line; each unit becomes a
// work-order row on submission.
const MaxLineItemQuantity = 100

// ValidateQuantity accepts 1..MaxLineItemQuantity.
func ValidateQuantity(q int) error {
	if q < 1 {
		return NewValidationError("quantity", "quantity must be at least 1")
	}
	if q > MaxLineItemQuantity {
		return NewValidationError("quantity", fmt.Sprintf("quantity must be at most %d", MaxLineItemQuantity))
	}
	return nil
}

// Subtotal is UnitPrice times Quantity, saturating at math.MaxInt64. Negative
// prices or quantities count as zero.
func (i LineItem) Subtotal() int64 {
	if i.UnitPrice <= 0 || i.Quantity <= 0 {
		return 0
	}
	q := int64(i.Quantity)
	if i.UnitPrice > math.MaxInt64/q {
		return math.MaxInt64
	}
	return i.UnitPrice * q
}

// EffectiveObservations falls back to "<service name> - <tooth>" when the item has
// no explicit observation text.
func (i LineItem) EffectiveObservations() string {
	if i.Observations != "" {
		return i.Observations
	}
	name := ""
	if i.Service != nil {
		name = i.Service.RefName()
	}
	return fmt.Sprintf("%s - %s", name, i.Tooth)
}

// IsAdHoc reports whether the item came from detailed mode.
func (i LineItem) IsAdHoc() bool {
	_, ok := i.Service.(AdHocServiceRef)
	return ok
}

type lineItemJSON struct {
	ID           string             `json:"id"`
	Kind         string             `json:"service_kind"`
	Catalog      *CatalogServiceRef `json:"catalog_service,omitempty"`
	AdHoc        *AdHocServiceRef   `json:"adhoc_service,omitempty"`
	Quantity     int                `json:"quantity"`
	Tooth        string             `json:"tooth"`
	UnitPrice    int64              `json:"unit_price"`
	Observations string             `json:"observations,omitempty"`
}

func (i LineItem) MarshalJSON() ([]byte, error) {
	out := lineItemJSON{
		ID:           i.ID,
		Quantity:     i.Quantity,
		Tooth:        i.Tooth,
		UnitPrice:    i.UnitPrice,
		Observations: i.Observations,
	}
	switch ref := i.Service.(type) {
	case CatalogServiceRef:
		out.Kind = serviceKindCatalog
		out.Catalog = &ref
	case AdHocServiceRef:
		out.Kind = serviceKindAdHoc
		out.AdHoc = &ref
	default:
		return nil, fmt.Errorf("line item %s: unsupported service reference %T", i.ID, i.Service)
	}
	return json.Marshal(out)
}

func (i *LineItem) UnmarshalJSON(b []byte) error {
	var in lineItemJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	*i = LineItem{
		ID:           in.ID,
		Quantity:     in.Quantity,
		Tooth:        in.Tooth,
		UnitPrice:    in.UnitPrice,
		Observations: in.Observations,
	}
	switch in.Kind {
	case serviceKindCatalog:
		if in.Catalog == nil {
			return fmt.Errorf("line item %s: missing catalog_service", in.ID)
		}
		i.Service = *in.Catalog
	case serviceKindAdHoc:
		if in.AdHoc == nil {
			return fmt.Errorf("line item %s: missing adhoc_service", in.ID)
		}
		i.Service = *in.AdHoc
	default:
		return fmt.Errorf("line item %s: unknown service_kind %q", in.ID, in.Kind)
	}
	return nil
}
