package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthCheck works directly as a chi handler func.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
