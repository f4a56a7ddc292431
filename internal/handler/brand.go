package handler

import (
	"net/http"

	"carbazaar-api/internal/model"
	"carbazaar-api/internal/resolve"
)

type BrandHandler struct {
	catalog resolve.Catalog
}

func NewBrandHandler(catalog resolve.Catalog) *BrandHandler {
	return &BrandHandler{catalog: catalog}
}

// List returns every brand with its derived slug, so link generation and
// slug resolution share one derivation.
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.Brands(r.Context())
	if err != nil {
		writeResolveError(w, &resolve.UpstreamError{Op: "brands", Err: err})
		return
	}

	links := make([]model.BrandLink, 0, len(brands))
	for _, b := range brands {
		links = append(links, model.BrandLink{
			ID:   b.ID,
			Name: b.Name,
			Slug: resolve.Slug(b.Name),
		})
	}

	writeJSON(w, http.StatusOK, model.BrandsResponse{Brands: links})
}
