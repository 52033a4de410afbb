package handlers

import (
	"context"
	"net/http"

	"pm-tracker/microservices/tracking-service/models"
)

type SummaryBuilder interface {
	Summary(ctx context.Context) (*models.ExportSummary, error)
}

// ExportHandler serves the composed manager/job report. Document
// rendering happens on the consumer side; this endpoint only supplies
// the data.
type ExportHandler struct {
	builder SummaryBuilder
}

func NewExportHandler(builder SummaryBuilder) *ExportHandler {
	return &ExportHandler{builder: builder}
}

func (h *ExportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.builder.Summary(r.Context())
	if err != nil {
		respondError(w, err, "Summary not found")
		return
	}
	respondData(w, http.StatusOK, summary)
}
