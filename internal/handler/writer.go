package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON encodes v with the given status. Encoding errors at this point
// can only come from a broken connection, so they are dropped.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
