package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ImpactStory is a case study or news item. Collection: "impactstory".
// Read-only through this API.
type ImpactStory struct {
	Title    string  `json:"title"`
	Location *string `json:"location"`
	Sector   *string `json:"sector"`
	Summary  string  `json:"summary"`
	MediaURL *string `json:"media_url"`
	Partner  *string `json:"partner"`
}

// Validate validates the story fields.
func (s *ImpactStory) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Title, validation.Required),
		validation.Field(&s.Summary, validation.Required),
		validation.Field(&s.MediaURL, is.URL),
	)
}

// ImpactStoryFromDocument maps a raw store document onto a validated
// ImpactStory, dropping store-internal fields.
func ImpactStoryFromDocument(doc map[string]any) (*ImpactStory, error) {
	var s ImpactStory
	if err := decodeDocument(doc, &s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
