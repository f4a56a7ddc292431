package model

// Image is a catalog asset. URL may be relative to the catalog origin.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// CarModel is a model line belonging to exactly one brand.
type CarModel struct {
	ID            string   `json:"id"`
	BrandID       string   `json:"brandId"`
	Name          string   `json:"name"`
	HeroImage     string   `json:"heroImage,omitempty"`
	GalleryImages []Image  `json:"galleryImages,omitempty"`
	FuelTypes     []string `json:"fuelTypes,omitempty"`
	Transmissions []string `json:"transmissions,omitempty"`
}
