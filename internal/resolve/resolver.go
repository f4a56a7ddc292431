package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"carbazaar-api/internal/model"
)

// Catalog is the slice of the upstream client the resolver depends on.
type Catalog interface {
	Brands(ctx context.Context) ([]model.Brand, error)
	Models(ctx context.Context, brandID string) ([]model.CarModel, error)
	Variants(ctx context.Context, modelID string) ([]model.Variant, error)
}

// Resolver maps URL slugs back to catalog records through three sequential,
// dependent lookups: brands (unscoped), models (scoped by brand), variants
// (scoped by model). Each lookup needs the previous result's identifier, so
// there is no fan-out to parallelize.
type Resolver struct {
	catalog Catalog
}

func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// ResolveBrand resolves only the brand slug and fetches its model lines.
// Brand-page listings stop here.
func (r *Resolver) ResolveBrand(ctx context.Context, brandSlug string) (*model.BrandContext, error) {
	if brandSlug == "" {
		return nil, ErrMissingSlug
	}

	brands, err := r.catalog.Brands(ctx)
	if err != nil {
		return nil, &UpstreamError{Op: "brands", Err: err}
	}
	brand := matchBrand(brands, brandSlug)
	if brand == nil {
		return nil, fmt.Errorf("%q: %w", brandSlug, ErrBrandNotFound)
	}

	models, err := r.catalog.Models(ctx, brand.ID)
	if err != nil {
		return nil, &UpstreamError{Op: "models", Err: err}
	}

	return &model.BrandContext{
		Brand:  *brand,
		Models: models,
	}, nil
}

// ResolveModel resolves the brand and model slugs and fetches the model's
// full variant list. Model listing views stop here.
func (r *Resolver) ResolveModel(ctx context.Context, brandSlug, modelSlug string) (*model.ModelContext, error) {
	if brandSlug == "" || modelSlug == "" {
		return nil, ErrMissingSlug
	}

	bc, err := r.ResolveBrand(ctx, brandSlug)
	if err != nil {
		return nil, err
	}
	carModel := matchModel(bc.Models, modelSlug)
	if carModel == nil {
		return nil, fmt.Errorf("%q: %w", modelSlug, ErrModelNotFound)
	}

	variants, err := r.catalog.Variants(ctx, carModel.ID)
	if err != nil {
		return nil, &UpstreamError{Op: "variants", Err: err}
	}

	return &model.ModelContext{
		Brand:    bc.Brand,
		Model:    *carModel,
		Variants: variants,
	}, nil
}

// Resolve turns the three path segments into a fully resolved context.
// Variant selection tries, in order: exact slug match, fuzzy match, first
// sibling. The last two set ResolvedByFallback so callers can tell the user
// an exact match was not found.
func (r *Resolver) Resolve(ctx context.Context, brandSlug, modelSlug, variantSlug string) (*model.ResolvedContext, error) {
	if brandSlug == "" || modelSlug == "" || variantSlug == "" {
		return nil, ErrMissingSlug
	}

	mc, err := r.ResolveModel(ctx, brandSlug, modelSlug)
	if err != nil {
		return nil, err
	}

	variant, fallback, err := pickVariant(mc.Variants, variantSlug)
	if err != nil {
		return nil, err
	}
	if fallback {
		slog.Debug("variant resolved by fallback",
			"brand", brandSlug, "model", modelSlug, "variant", variantSlug,
			"resolved", variant.Name)
	}

	return &model.ResolvedContext{
		Brand:              mc.Brand,
		Model:              mc.Model,
		Variant:            *variant,
		Siblings:           mc.Variants,
		ResolvedByFallback: fallback,
	}, nil
}

func matchBrand(brands []model.Brand, slug string) *model.Brand {
	want := strings.ToLower(slug)
	for i := range brands {
		if Slug(brands[i].Name) == want {
			return &brands[i]
		}
	}
	return nil
}

func matchModel(models []model.CarModel, slug string) *model.CarModel {
	want := strings.ToLower(slug)
	for i := range models {
		if Slug(models[i].Name) == want {
			return &models[i]
		}
	}
	return nil
}

func pickVariant(variants []model.Variant, slug string) (*model.Variant, bool, error) {
	want := strings.ToLower(slug)
	for i := range variants {
		if Slug(variants[i].Name) == want {
			return &variants[i], false, nil
		}
	}
	if v := FuzzyMatch(slug, variants); v != nil {
		return v, true, nil
	}
	// Better-than-nothing policy: show the first variant the catalog
	// returned rather than a dead page.
	if len(variants) > 0 {
		return &variants[0], true, nil
	}
	return nil, false, fmt.Errorf("%q: %w", slug, ErrVariantNotFound)
}
