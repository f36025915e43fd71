package dto

import "time"

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Users     int       `json:"users"`
	Favors    int       `json:"favors"`
	Timestamp time.Time `json:"timestamp"`
}

// Flash is a one-shot toast shown after a redirect.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)
