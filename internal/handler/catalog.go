package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"carbazaar-api/internal/display"
	"carbazaar-api/internal/listing"
	"carbazaar-api/internal/model"
	"carbazaar-api/internal/resolve"
)

type CatalogHandler struct {
	resolver   *resolve.Resolver
	normalizer *display.Normalizer
}

func NewCatalogHandler(resolver *resolve.Resolver, normalizer *display.Normalizer) *CatalogHandler {
	return &CatalogHandler{
		resolver:   resolver,
		normalizer: normalizer,
	}
}

// ResolveVariant serves the variant page: full resolution of the three path
// slugs plus the normalized display record and sibling rows.
func (h *CatalogHandler) ResolveVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rc, err := h.resolver.Resolve(ctx,
		chi.URLParam(r, "brandSlug"),
		chi.URLParam(r, "modelSlug"),
		chi.URLParam(r, "variantSlug"),
	)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	siblings := make([]model.VariantSummary, 0, len(rc.Siblings))
	for _, v := range rc.Siblings {
		siblings = append(siblings, h.normalizer.Summary(v))
	}

	writeJSON(w, http.StatusOK, model.ResolveResponse{
		Brand:              rc.Brand,
		Model:              rc.Model,
		Variant:            h.normalizer.Variant(rc.Brand, rc.Model, rc.Variant),
		Siblings:           siblings,
		ResolvedByFallback: rc.ResolvedByFallback,
	})
}

// ListModels serves the brand page: the brand's model lines with the same
// fuel/transmission filter contract as variants, e.g.
// /catalog/hyundai/models?fuel=diesel
func (h *CatalogHandler) ListModels(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	bc, err := h.resolver.ResolveBrand(ctx, chi.URLParam(r, "brandSlug"))
	if err != nil {
		writeResolveError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := listing.ApplyModels(bc.Models, listing.Filter{
		Fuels:         splitCSV(q.Get("fuel")),
		Transmissions: splitCSV(q.Get("transmission")),
	})

	cards := make([]model.ModelCard, 0, len(filtered))
	for _, m := range filtered {
		cards = append(cards, h.normalizer.ModelCard(m))
	}

	writeJSON(w, http.StatusOK, model.ModelsResponse{
		Brand:  bc.Brand,
		Models: cards,
		Total:  len(cards),
	})
}

// ListVariants serves the model listing view with fuel/transmission filters
// and optional price sort, e.g.
// /catalog/hyundai/i20/variants?fuel=petrol,diesel&sort=price-asc
func (h *CatalogHandler) ListVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mc, err := h.resolver.ResolveModel(ctx,
		chi.URLParam(r, "brandSlug"),
		chi.URLParam(r, "modelSlug"),
	)
	if err != nil {
		writeResolveError(w, err)
		return
	}

	displays := make([]model.VariantDisplay, 0, len(mc.Variants))
	for _, v := range mc.Variants {
		displays = append(displays, h.normalizer.Variant(mc.Brand, mc.Model, v))
	}

	q := r.URL.Query()
	filtered := listing.Apply(displays, listing.Filter{
		Fuels:         splitCSV(q.Get("fuel")),
		Transmissions: splitCSV(q.Get("transmission")),
		Sort:          q.Get("sort"),
	})

	writeJSON(w, http.StatusOK, model.ListingResponse{
		Brand:    mc.Brand,
		Model:    mc.Model,
		Variants: filtered,
		Total:    len(filtered),
	})
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
