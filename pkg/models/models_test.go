package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInquiryValidate(t *testing.T) {
	valid := Inquiry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Topic:   "Partnerships",
		Message: "Let's talk.",
		Consent: true,
	}

	t.Run("accepts a valid inquiry", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("consent is not required by the schema", func(t *testing.T) {
		i := valid
		i.Consent = false
		// Consent gating is an API policy, not a schema rule.
		assert.NoError(t, i.Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Inquiry)
	}{
		{"missing name", func(i *Inquiry) { i.Name = "" }},
		{"missing email", func(i *Inquiry) { i.Email = "" }},
		{"malformed email", func(i *Inquiry) { i.Email = "not-an-email" }},
		{"missing topic", func(i *Inquiry) { i.Topic = "" }},
		{"missing message", func(i *Inquiry) { i.Message = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := valid
			tt.mutate(&i)
			assert.Error(t, i.Validate())
		})
	}
}

func TestOfficeValidate(t *testing.T) {
	t.Run("email is optional", func(t *testing.T) {
		o := Office{Region: "EMEA", City: "Munich"}
		assert.NoError(t, o.Validate())
	})

	t.Run("email format is enforced when set", func(t *testing.T) {
		bad := "not-an-email"
		o := Office{Region: "EMEA", City: "Munich", Email: &bad}
		assert.Error(t, o.Validate())
	})

	t.Run("region and city are required", func(t *testing.T) {
		assert.Error(t, (&Office{City: "Munich"}).Validate())
		assert.Error(t, (&Office{Region: "EMEA"}).Validate())
	})
}

func TestEnergyProductValidate(t *testing.T) {
	t.Run("sector labels are an open set", func(t *testing.T) {
		p := EnergyProduct{Name: "Tidal Arrays", Sector: "tidal", Summary: "s"}
		assert.NoError(t, p.Validate())
	})

	t.Run("required fields", func(t *testing.T) {
		p := EnergyProduct{Name: "Tidal Arrays"}
		assert.Error(t, p.Validate())
	})
}

func TestEnergyProductFromDocument(t *testing.T) {
	t.Run("strips store-internal fields", func(t *testing.T) {
		p, err := EnergyProductFromDocument(map[string]any{
			"_id":      "652f1c0a9d1e8b0012345678",
			"name":     "Solar Inverters",
			"sector":   "solar",
			"summary":  "High-efficiency PV inverters.",
			"specs":    []any{"98.6% max efficiency"},
			"featured": true,
		})
		require.NoError(t, err)
		assert.Equal(t, "Solar Inverters", p.Name)
		assert.Equal(t, []string{"98.6% max efficiency"}, p.Specs)
		assert.True(t, p.Featured)
		assert.Nil(t, p.Image)
	})

	t.Run("rejects documents missing required fields", func(t *testing.T) {
		_, err := EnergyProductFromDocument(map[string]any{
			"_id":  "652f1c0a9d1e8b0012345678",
			"name": "Nameless",
		})
		assert.Error(t, err)
	})
}

func TestImpactStoryFromDocument(t *testing.T) {
	s, err := ImpactStoryFromDocument(map[string]any{
		"_id":     "652f1c0a9d1e8b0012345679",
		"title":   "Offshore Wind Integration",
		"summary": "Grid-forming inverters stabilize offshore wind farms.",
		"partner": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Offshore Wind Integration", s.Title)
	require.NotNil(t, s.Partner)
	assert.Equal(t, "", *s.Partner)
	assert.Nil(t, s.MediaURL)
}

func TestInquiryFromDocument(t *testing.T) {
	i, err := InquiryFromDocument(map[string]any{
		"_id":     "mem-1",
		"name":    "Ada",
		"email":   "ada@example.com",
		"topic":   "Support",
		"message": "Hello",
		"consent": true,
	})
	require.NoError(t, err)
	assert.True(t, i.Consent)
	assert.Nil(t, i.Company)
}
