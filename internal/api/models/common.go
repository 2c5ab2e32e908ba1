// Package models defines JSON types for the non-protocol API endpoints.
// The update endpoint itself answers in the No-IP plaintext vocabulary and
// does not use these.
package models

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}

// UpdateBody is the JSON request body accepted on PUT updates.
type UpdateBody struct {
	Hostname string `json:"hostname"`
	MyIP     string `json:"myip"`
}
