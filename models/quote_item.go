package models

import "time"

// QuoteItem is a priced line item with vendor quotes, computed averages and
// price-adjustment indices. The same shape backs both record collections of
// the application ("services" and "inputs"), which live in separate tables
// but are structurally identical.
//
// JSON tags preserve the wire names the browser UI already speaks
// (Portuguese pricing vocabulary from the quotation domain).
type QuoteItem struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`

	// OriginalID is the external reference code of the item
	// (e.g. the id from the official price table it was imported from).
	OriginalID string `json:"originalId"`

	// Item is the human-readable description of the line item.
	Item string `json:"item"`

	// Unit is the measurement unit the prices refer to (m², kg, un, ...).
	Unit string `json:"unit"`

	// SupplierPrice is the raw vendor-quoted price.
	SupplierPrice float64 `json:"priceFornecedor"`

	// AssemblyPrice is the assembly/installation component of the price.
	AssemblyPrice float64 `json:"precoMontagem"`

	// AdoptedPrice is the final price adopted for the item.
	AdoptedPrice float64 `json:"precoAdotado"`

	AdoptedAverage   *float64 `json:"mediaAdotada,omitempty"`
	SanitizedAverage *float64 `json:"mediaSaneada,omitempty"`
	LowestValue      *float64 `json:"menorValor,omitempty"`
	ArithmeticMean   *float64 `json:"mediaAritmetica,omitempty"`
	Median           *float64 `json:"mediana,omitempty"`

	// Vendor1..Vendor6 hold the individual vendor quotes the averages are
	// computed from. Absent quotes stay nil.
	Vendor1 *float64 `json:"empresa1,omitempty"`
	Vendor2 *float64 `json:"empresa2,omitempty"`
	Vendor3 *float64 `json:"empresa3,omitempty"`
	Vendor4 *float64 `json:"empresa4,omitempty"`
	Vendor5 *float64 `json:"empresa5,omitempty"`
	Vendor6 *float64 `json:"empresa6,omitempty"`

	// Justification is the free-text rationale for the adopted price.
	Justification *string `json:"justificativa,omitempty"`

	// ElapsedMonths is the age of the reference quote in months.
	ElapsedMonths *int `json:"tempoPassado,omitempty"`

	// PreviousMonth is the reference month of the previous index value.
	PreviousMonth *string `json:"mesAnterior,omitempty"`

	// PreviousIndex and CurrentIndex are the adjustment-index readings used
	// to bring an old quote to present value.
	PreviousIndex *float64 `json:"indiceAnterior,omitempty"`
	CurrentIndex  *float64 `json:"indiceAtual,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Quote item collections. Each value is the table name of one of the two
// structurally identical record collections.
const (
	ServicesTable = "services"
	InputsTable   = "inputs"
)
