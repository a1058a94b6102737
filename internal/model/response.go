package model

// Envelope is the uniform response wrapper the API speaks: every response,
// success or failure, carries the success flag; data is present on success,
// message on failure (and optionally on success).
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
	Method  string `json:"method,omitempty"`
}
