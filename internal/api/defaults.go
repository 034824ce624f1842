package api

import (
	"github.com/cleantech-forge/helio/pkg/models"
)

// Static fallback content served when no document store is configured, so
// the site renders something useful before a database exists. Filters and
// limits are ignored on the fallback path.

func defaultSolutions() []models.EnergyProduct {
	return []models.EnergyProduct{
		{
			Name:     "Solar Inverters",
			Sector:   "solar",
			Summary:  "High-efficiency PV inverters for utility and C&I.",
			Specs:    []string{"98.6% max efficiency", "Grid support"},
			Featured: true,
		},
		{
			Name:     "Wind Drive Systems",
			Sector:   "wind",
			Summary:  "Reliable drivetrain and control systems for wind turbines.",
			Specs:    []string{"Low maintenance", "High uptime"},
			Featured: true,
		},
		{
			Name:     "Battery Energy Storage",
			Sector:   "storage",
			Summary:  "Modular, safe, and scalable storage systems.",
			Specs:    []string{"LFP chemistry", "Liquid cooling"},
			Featured: true,
		},
	}
}

func defaultStories() []models.ImpactStory {
	return []models.ImpactStory{
		{
			Title:    "200 MW Solar + Storage in MENA",
			Location: ptr("UAE"),
			Sector:   ptr("solar"),
			Summary:  "Hybrid system powering 150k homes while avoiding 300k tons CO2 annually.",
			Partner:  ptr("Masdar"),
		},
		{
			Title:    "Offshore Wind Integration",
			Location: ptr("North Sea"),
			Sector:   ptr("wind"),
			Summary:  "Advanced grid-forming inverters stabilize offshore wind farms.",
			Partner:  ptr(""),
		},
	}
}

func defaultOffices() []models.Office {
	return []models.Office{
		{Region: "North America", City: "San Francisco", Email: ptr("na@cleantech.example")},
		{Region: "EMEA", City: "Munich", Email: ptr("emea@cleantech.example")},
		{Region: "APAC", City: "Singapore", Email: ptr("apac@cleantech.example")},
	}
}

func ptr(s string) *string {
	return &s
}
