package models

import "encoding/json"

// Envelope is the uniform response shape every upstream service returns.
// Data is kept raw so each client can decode it into its own type.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}
