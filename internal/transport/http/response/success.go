package response

import (
	"encoding/json"
	"net/http"

	"github.com/avolkov/hrdesk/internal/logger"
)

// Envelope wraps every successful payload so object and list responses share
// one shape, {"data": ...}. Failures use ErrorBody instead, never both.
type Envelope struct {
	Data any `json:"data"`
}

// WriteJSON writes v with the given status. Once the header is out an encode
// failure can no longer reach the client, so it is only logged.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Logger.Error().Err(err).Msg("encode response")
	}
}

func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Data: data})
}

func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Data: data})
}

// NoContent is what deletes return.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
