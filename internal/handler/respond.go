package handler

import (
	"encoding/json"
	"net/http"

	"github.com/movieflix/movieflix-go/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func successResponse(data any) model.Envelope {
	return model.Envelope{Success: true, Data: data}
}

func errorResponse(msg string) model.Envelope {
	return model.Envelope{Success: false, Message: msg}
}
