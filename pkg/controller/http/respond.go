package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/baysgaia/cashmax/pkg/domain/types"
	"github.com/baysgaia/cashmax/pkg/utils/errutil"
	"github.com/baysgaia/cashmax/pkg/utils/logging"
)

type envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// respond writes the JSON success envelope
func respond(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(envelope{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		logging.From(ctx).Error("failed to encode response", "error", err.Error())
	}
}

// handleError maps the error taxonomy onto HTTP status codes and writes
// the error envelope
func handleError(ctx context.Context, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case goerr.HasTag(err, types.ErrTagNotFound):
		statusCode = http.StatusNotFound
	case goerr.HasTag(err, types.ErrTagValidation):
		statusCode = http.StatusBadRequest
	case goerr.HasTag(err, types.ErrTagUpstream):
		statusCode = http.StatusBadGateway
	}

	errutil.HandleHTTP(ctx, w, err, statusCode)
}

// decodeBody decodes a JSON request body into dst
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(types.ErrTagValidation))
	}
	return nil
}
