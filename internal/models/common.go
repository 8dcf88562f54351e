package models

// ErrorResponse is the standardized error body returned by every endpoint.
// Details names the offending field or constraint when one can be singled out.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
