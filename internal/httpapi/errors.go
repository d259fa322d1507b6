package httpapi

import (
	"encoding/json"
	"net/http"
)

// failureBody is the wrapper-level error shape: a bare success flag and a
// message. The /search endpoint shares it via searchResponse so clients
// see one error format everywhere.
type failureBody struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteFailure(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSON(w, status, failureBody{
		Success:   false,
		Error:     message,
		RequestID: RequestIDFrom(r.Context()),
	})
}
