package handler

import (
	"context"
	"net/http"
	"time"

	"carbazaar-api/internal/model"
)

// Pinger is anything that can confirm the upstream catalog answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	catalog Pinger
}

func NewHealthHandler(catalog Pinger) *HealthHandler {
	return &HealthHandler{catalog: catalog}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	catalogStatus := "reachable"
	status := "ok"
	if err := h.catalog.Ping(ctx); err != nil {
		catalogStatus = "unreachable"
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, model.HealthResponse{
		Status:    status,
		Catalog:   catalogStatus,
		Timestamp: time.Now(),
	})
}
