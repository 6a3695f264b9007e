package http

import (
	"encoding/json"
	"net/http"
)

// writeJSON mirrors the envelope every endpoint uses: payloads carry
// their own "success" field or are wrapped by the caller.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": msg})
}
