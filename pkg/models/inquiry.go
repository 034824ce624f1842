package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Inquiry is a contact form submission. Collection: "inquiry". Created by
// end users and never read back through this API. A record may only be
// persisted when Consent is true.
type Inquiry struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Company *string `json:"company"`

	// Topic is one of: General Inquiry, Partnerships, Careers, Support.
	Topic   string `json:"topic"`
	Message string `json:"message"`

	// Consent records permission to store the submitted contact data.
	Consent bool `json:"consent"`
}

// Validate validates the inquiry fields.
func (i *Inquiry) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Email, validation.Required, is.EmailFormat),
		validation.Field(&i.Topic, validation.Required),
		validation.Field(&i.Message, validation.Required),
	)
}

// InquiryFromDocument maps a raw store document onto a validated Inquiry,
// dropping store-internal fields.
func InquiryFromDocument(doc map[string]any) (*Inquiry, error) {
	var i Inquiry
	if err := decodeDocument(doc, &i); err != nil {
		return nil, err
	}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return &i, nil
}
