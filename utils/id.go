package utils

import "github.com/google/uuid"

// NewReportID generates a unique identifier for a newly submitted report.
func NewReportID() string {
	return uuid.NewString()
}
