package models

// Envelope wraps every API response body. Success is decided by the HTTP
// status; Code mirrors it and is informational only.
type Envelope[T any] struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Data    T      `json:"data"`
}
