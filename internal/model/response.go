package model

import "time"

// BrandLink is a brand plus the slug links should use for it.
type BrandLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BrandsResponse wraps the brand listing.
type BrandsResponse struct {
	Brands []BrandLink `json:"brands"`
}

// ModelCard is the brand-page row for one model line.
type ModelCard struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	HeroImage     string   `json:"heroImage,omitempty"`
	FuelTypes     []string `json:"fuelTypes,omitempty"`
	Transmissions []string `json:"transmissions,omitempty"`
}

// ModelsResponse is the brand-page model listing payload.
type ModelsResponse struct {
	Brand  Brand       `json:"brand"`
	Models []ModelCard `json:"models"`
	Total  int         `json:"total"`
}

// VariantSummary is the compact sibling row shown in "more variants" lists.
type VariantSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	PriceLakh    float64 `json:"priceLakh"`
	PriceText    string  `json:"priceText,omitempty"`
	HasPrice     bool    `json:"hasPrice"`
	Fuel         string  `json:"fuel,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
}

// ResolveResponse is the variant-page payload.
type ResolveResponse struct {
	Brand              Brand            `json:"brand"`
	Model              CarModel         `json:"model"`
	Variant            VariantDisplay   `json:"variant"`
	Siblings           []VariantSummary `json:"siblings"`
	ResolvedByFallback bool             `json:"resolvedByFallback"`
}

// ListingResponse is the filtered/sorted variant listing payload.
type ListingResponse struct {
	Brand    Brand            `json:"brand"`
	Model    CarModel         `json:"model"`
	Variants []VariantDisplay `json:"variants"`
	Total    int              `json:"total"`
}

// HealthResponse reports service and upstream catalog status.
type HealthResponse struct {
	Status    string    `json:"status"`
	Catalog   string    `json:"catalog"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the error envelope for every non-2xx reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}
