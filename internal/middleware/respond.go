package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/movieflix/movieflix-go/internal/model"
)

func writeEnvelopeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.Envelope{Success: false, Message: msg})
}
