package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Office is a regional office location. Collection: "office". Read-only
// through this API.
type Office struct {
	Region  string  `json:"region"`
	City    string  `json:"city"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
}

// Validate validates the office fields.
func (o *Office) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.Region, validation.Required),
		validation.Field(&o.City, validation.Required),
		validation.Field(&o.Email, is.EmailFormat),
	)
}

// OfficeFromDocument maps a raw store document onto a validated Office,
// dropping store-internal fields.
func OfficeFromDocument(doc map[string]any) (*Office, error) {
	var o Office
	if err := decodeDocument(doc, &o); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}
