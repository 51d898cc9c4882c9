package dto

import "time"

// CreateReportRequest files a misinformation report against an alert
type CreateReportRequest struct {
	Reason      string `json:"reason" validate:"required,oneof=false_information misleading spam outdated other"`
	Description string `json:"description,omitempty"`
	ReporterID  string `json:"reporterId,omitempty"`
}

// ReportDTO represents a report in API responses
type ReportDTO struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alertId"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
	ReporterID  string    `json:"reporterId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SubmitReportResponse tells the caller whether the alert now needs review
type SubmitReportResponse struct {
	ID          string `json:"id"`
	NeedsReview bool   `json:"needsReview"`
}
