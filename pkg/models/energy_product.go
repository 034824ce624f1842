package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// EnergyProduct is a clean-energy product or service shown in the portfolio.
// Collection: "energyproduct". Read-only through this API; records are
// entered admin-side.
type EnergyProduct struct {
	// Name is the product or service name.
	Name string `json:"name"`

	// Sector is a category label. Known labels: solar, wind, storage,
	// electrification, hydrogen. The set is open; new labels may appear
	// without a schema change.
	Sector string `json:"sector"`

	// Summary is a short summary of benefits.
	Summary string `json:"summary"`

	// Specs is an optional list of key specifications.
	Specs []string `json:"specs"`

	// Image is an optional image URL.
	Image *string `json:"image"`

	// Featured marks products shown prominently in the portfolio.
	Featured bool `json:"featured"`
}

// Validate validates the product fields.
func (p *EnergyProduct) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Sector, validation.Required),
		validation.Field(&p.Summary, validation.Required),
		validation.Field(&p.Image, is.URL),
	)
}

// EnergyProductFromDocument maps a raw store document onto a validated
// EnergyProduct, dropping store-internal fields.
func EnergyProductFromDocument(doc map[string]any) (*EnergyProduct, error) {
	var p EnergyProduct
	if err := decodeDocument(doc, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}
