// Package rest implements the JSON HTTP API: bug tracking operations,
// project and user lookups, token issuance, and health probes. Handlers
// decode requests into service inputs and map the domain error taxonomy
// onto HTTP status codes in one place.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps a service error onto an HTTP response. Validation and
// not-found conditions carry their specific message; remote store
// failures collapse into a generic 503 so upstream details never leak;
// consistency failures are logged with the orphan's location before the
// generic 500 goes out.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var fatal *domain.ConsistencyFatalError

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &fatal):
		log.ErrorContext(r.Context(), "consistency failure, orphan left behind",
			slog.String("operation", fatal.Operation),
			slog.String("collection", fatal.Collection),
			slog.String("item_id", fatal.ItemID),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	case errors.Is(err, domain.ErrRemote):
		log.WarnContext(r.Context(), "remote store failure",
			slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "service unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
