package chi

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.
const (
	ErrorCodeBadRequest        ErrorCode = "bad_request"
	ErrorCodeUnauthorized      ErrorCode = "unauthorized"
	ErrorCodeItemNotFound      ErrorCode = "item_not_found"
	ErrorCodeSummaryNotFound   ErrorCode = "summary_not_found"
	ErrorCodeUnknownSummary    ErrorCode = "unknown_summary"
	ErrorCodeSourceUnavailable ErrorCode = "source_unavailable"
	ErrorCodeNotFound          ErrorCode = "not_found"
	ErrorCodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// CategoriesResponse is the body of GET /api/v1/menu/categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// RefreshResponse is the body of POST /api/v1/menu/refresh.
type RefreshResponse struct {
	Total      int      `json:"total"`
	Categories []string `json:"categories"`
}

// SummaryKindsResponse is the body of GET /api/v1/summaries.
type SummaryKindsResponse struct {
	Kinds []SummaryKind `json:"kinds"`
}

// SummaryKind describes one available summary.
type SummaryKind struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
}
