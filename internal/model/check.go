package model

// CheckStatus represents the status of a doctor check.
type CheckStatus string

const (
	// CheckStatusOK indicates the check passed.
	CheckStatusOK CheckStatus = "ok"
	// CheckStatusWarning indicates the check passed with a warning.
	CheckStatusWarning CheckStatus = "warning"
	// CheckStatusError indicates the check failed.
	CheckStatusError CheckStatus = "error"
)

// CheckResult represents the result of a single doctor check.
type CheckResult struct {
	ID      string      // Unique identifier for the check (e.g., "api_health").
	Message string      // Human-readable description of the result.
	Status  CheckStatus // Status of the check.
}

// HasErrors returns true if any check result has an error status.
func HasErrors(results []CheckResult) bool {
	for _, r := range results {
		if r.Status == CheckStatusError {
			return true
		}
	}
	return false
}

// APIHealth is the health report of the remote store.
type APIHealth struct {
	// Status is the reported status (e.g. "Healthy").
	Status string
	// Details has the rest of the reported fields as received.
	Details map[string]any
}
