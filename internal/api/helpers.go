package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/samandr77/microservices/crmwidget/internal/entity"
)

const (
	partialFailuresHeader = "X-Partial-Failures"
	maxBodySize           = 1 << 20
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	resp := ErrorResponse{Message: msgToSend}

	if originErr != nil {
		resp.Description = originErr.Error()
		slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "status", code)
	} else {
		slog.ErrorContext(ctx, "api error", "message", msgToSend, "status", code)
	}

	SendJSON(ctx, w, code, resp)
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps a service error to a response. Not found answers carry
// only the message; upstream failures forward the CRM's own detail.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, notFoundMsg, failMsg string) {
	var ue *entity.UpstreamError

	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
	case errors.Is(err, entity.ErrNotFound) && notFoundMsg != "":
		slog.InfoContext(ctx, "not found", "error", err)
		SendJSON(ctx, w, http.StatusNotFound, ErrorResponse{Message: notFoundMsg})
	case errors.Is(err, entity.ErrNotConfigured):
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "HubSpot API key not configured")
	case errors.As(err, &ue):
		slog.ErrorContext(ctx, "api error", "error", err.Error(), "upstream_status", ue.Status)
		SendJSON(ctx, w, http.StatusInternalServerError, ErrorResponse{Message: failMsg, Description: ue.Detail})
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, failMsg)
	}
}

func readJSON(r *http.Request, v any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
	if err != nil {
		return fmt.Errorf("%w: invalid JSON body: %s", entity.ErrInvalidArgument, err)
	}

	return nil
}

func setPartialFailures(ctx context.Context, w http.ResponseWriter, skipped int) {
	if skipped == 0 {
		return
	}

	slog.WarnContext(ctx, "partial result", "skipped", skipped)
	w.Header().Set(partialFailuresHeader, strconv.Itoa(skipped))
}
