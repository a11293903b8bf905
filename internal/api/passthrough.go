package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Passthrough forwards any request under /api/hubspot/ to the CRM unchanged.
// @Summary Raw CRM proxy
// @Tags hubspot
// @Accept json
// @Produce json
// @Param path path string true "CRM path"
// @Success 200 {object} object
// @Failure 500 {object} ErrorResponse "HubSpot API key not configured"
// @Router /hubspot/{path} [get]
// @Security BearerAuth
func (h *Handler) Passthrough(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "read request body")
		return
	}

	status, resp, err := h.s.Passthrough(ctx, r.Method, chi.URLParam(r, "*"), r.URL.RawQuery, body)
	if err != nil {
		sendServiceErr(ctx, w, err, "", "Failed to proxy request")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(resp)
	if err != nil {
		slog.ErrorContext(ctx, "write passthrough response", "error", err)
	}
}
