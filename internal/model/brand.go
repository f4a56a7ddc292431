package model

// Brand is a car manufacturer as returned by the upstream catalog.
type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
