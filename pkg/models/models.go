// Package models defines the record kinds served by the content API and
// their validation rules. Each model maps onto one document store collection.
package models

// Collection names in the document store.
const (
	CollectionEnergyProducts = "energyproduct"
	CollectionImpactStories  = "impactstory"
	CollectionOffices        = "office"
	CollectionInquiries      = "inquiry"
)
