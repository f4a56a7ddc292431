package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"carbazaar-api/internal/model"
	"carbazaar-api/internal/resolve"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeResolveError maps the resolution taxonomy onto HTTP. Each case keeps
// its own error code because the front end renders a different message per
// failure ("this brand does not exist" vs "this model has no such variant").
func writeResolveError(w http.ResponseWriter, err error) {
	var upstream *resolve.UpstreamError
	switch {
	case errors.Is(err, resolve.ErrMissingSlug):
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:   "missing_slug",
			Message: "brand, model and variant path segments are all required",
		})
	case errors.Is(err, resolve.ErrBrandNotFound):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error:   "brand_not_found",
			Message: "no brand matches this address",
		})
	case errors.Is(err, resolve.ErrModelNotFound):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error:   "model_not_found",
			Message: "this brand has no such model",
		})
	case errors.Is(err, resolve.ErrVariantNotFound):
		writeJSON(w, http.StatusNotFound, model.ErrorResponse{
			Error:   "variant_not_found",
			Message: "this model has no variants yet",
		})
	case errors.As(err, &upstream):
		slog.Error("catalog unavailable", "op", upstream.Op, "error", upstream.Err)
		writeJSON(w, http.StatusBadGateway, model.ErrorResponse{
			Error:     "catalog_unavailable",
			Message:   "could not reach the catalog service",
			Retryable: true,
		})
	default:
		slog.Error("resolution failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   "internal_error",
			Message: "something went wrong",
		})
	}
}
