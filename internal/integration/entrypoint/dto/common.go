// Package dto defines the request and response payloads for the HTTP API.
package dto

// ErrorResponse is the error payload shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse is a simple success payload.
type MessageResponse struct {
	Message string `json:"message"`
}
