package model

// VariantDisplay is the fully-defaulted record the presentation layer
// renders. Every field is total: normalization never leaves a hole the
// caller has to branch on, beyond the documented HasPrice gate.
type VariantDisplay struct {
	FullName string `json:"fullName"`
	Slug     string `json:"slug"`

	// PriceLakh is the price in lakh rupees, 2 decimals. It is 0 when the
	// catalog has no price yet; callers check HasPrice before rendering.
	PriceLakh float64 `json:"priceLakh"`
	PriceText string  `json:"priceText,omitempty"`
	HasPrice  bool    `json:"hasPrice"`

	Fuel         string `json:"fuel,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	MaxPower     string `json:"maxPower,omitempty"`

	// Km per litre, 1 decimal. The Estimated flags are set per tier when
	// that figure was derived from the company-claimed number rather than
	// measured, so a measured figure is never labeled an estimate just
	// because the other tier had to be derived.
	MileageCity             float64 `json:"mileageCity,omitempty"`
	MileageCityEstimated    bool    `json:"mileageCityEstimated,omitempty"`
	MileageHighway          float64 `json:"mileageHighway,omitempty"`
	MileageHighwayEstimated bool    `json:"mileageHighwayEstimated,omitempty"`

	Images []string `json:"images"`

	Description     []string `json:"description"`
	EngineSummary   []string `json:"engineSummary,omitempty"`
	ExteriorSummary []string `json:"exteriorSummary,omitempty"`
	ComfortSummary  []string `json:"comfortSummary,omitempty"`

	// Specs carries the sparse upstream fields that are present, verbatim.
	// Absent fields are simply missing, never rendered as "N/A".
	Specs map[string]string `json:"specs,omitempty"`
}

// ResolvedContext is the output of a full slug resolution.
type ResolvedContext struct {
	Brand    Brand
	Model    CarModel
	Variant  Variant
	Siblings []Variant

	// ResolvedByFallback is true when the variant was recovered by fuzzy
	// matching or by the first-sibling fallback rather than an exact slug
	// match, so callers can warn the user.
	ResolvedByFallback bool
}

// ModelContext is the output of resolving just the brand and model slugs,
// used by listing views.
type ModelContext struct {
	Brand    Brand
	Model    CarModel
	Variants []Variant
}

// BrandContext is the output of resolving only the brand slug, used by
// brand-page model listings.
type BrandContext struct {
	Brand  Brand
	Models []CarModel
}
