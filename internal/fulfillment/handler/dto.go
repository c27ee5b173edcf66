package handler

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status          string `json:"status"`
	RefDataRevision string `json:"refdata_revision"`
}

// ErrorResponse is a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
