package entities

import "time"

// Category is the closed set of catalog categories a service can be tagged with.
type Category string

const (
	CategoryCorona            Category = "corona"
	CategoryPuente            Category = "puente"
	CategoryImplante          Category = "implante"
	CategoryProtesisRemovible Category = "protesis_removible"
	CategoryOrtodoncia        Category = "ortodoncia"
	CategoryIncrustacion      Category = "incrustacion"
	CategoryCarilla           Category = "carilla"
	CategoryOtro              Category = "otro"
)

var categoryLabels = map[Category]string{
	CategoryCorona:            "Coronas",
	CategoryPuente:            "Puentes",
	CategoryImplante:          "Implantes",
	CategoryProtesisRemovible: "Prótesis Removibles",
	CategoryOrtodoncia:        "Ortodoncia",
	CategoryIncrustacion:      "Incrustaciones",
	CategoryCarilla:           "Carillas",
	CategoryOtro:              "Otros",
}

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryCorona,
		CategoryPuente,
		CategoryImplante,
		CategoryProtesisRemovible,
		CategoryOrtodoncia,
		CategoryIncrustacion,
		CategoryCarilla,
		CategoryOtro,
	}
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label is the display name of the category. Unknown values return the raw tag.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Service is a priced catalog entry.
//
// Services are never removed: deactivation flips Active so historical work orders
// keep a resolvable reference.
type Service struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Category  Category  `json:"category"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
