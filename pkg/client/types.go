package client

import "time"

// Source identifies who claims to have issued an alert
type Source struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind,omitempty"`
	Verified bool   `json:"verified"`
}

// Location is the claimed position of the reported event
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	Radius  float64 `json:"radius,omitempty"`
}

// Alert is an emergency alert as exchanged with the API
type Alert struct {
	ID        string   `json:"id,omitempty"`
	Content   string   `json:"content"`
	Source    Source   `json:"source"`
	Location  Location `json:"location"`
	Category  string   `json:"category,omitempty"`
	Severity  string   `json:"severity,omitempty"`
	Timestamp int64    `json:"timestamp,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// TrustScore is the composite confidence for an alert
type TrustScore struct {
	Overall        float64                `json:"overall"`
	Content        float64                `json:"content"`
	Source         float64                `json:"source"`
	Location       float64                `json:"location"`
	Temporal       float64                `json:"temporal"`
	CrossReference float64                `json:"cross_reference"`
	Breakdown      map[string]interface{} `json:"breakdown,omitempty"`
}

// VerificationResult is a verification outcome
type VerificationResult struct {
	ID              string     `json:"id"`
	AlertID         string     `json:"alertId"`
	IsVerified      bool       `json:"isVerified"`
	TrustScore      TrustScore `json:"trustScore"`
	Flags           []string   `json:"flags"`
	Reasoning       string     `json:"reasoning"`
	Recommendations []string   `json:"recommendations"`
	ProcessingTime  int64      `json:"processingTime"`
	Timestamp       int64      `json:"timestamp"`
}

// FlagCount pairs a risk flag with its frequency
type FlagCount struct {
	Flag  string `json:"flag"`
	Count int    `json:"count"`
}

// VerificationStats summarizes recent verification results
type VerificationStats struct {
	Total             int         `json:"total"`
	Verified          int         `json:"verified"`
	Flagged           int         `json:"flagged"`
	VerificationRate  float64     `json:"verification_rate"`
	AvgTrustScore     float64     `json:"avg_trust_score"`
	AvgProcessingTime float64     `json:"avg_processing_time"`
	CommonFlags       []FlagCount `json:"common_flags"`
}

// Report is a misinformation report against an alert
type Report struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alertId"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
	ReporterID  string    `json:"reporterId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PaginatedAlerts is a page of alerts
type PaginatedAlerts struct {
	Data       []Alert `json:"data"`
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int64   `json:"total_pages"`
}

// PaginatedReports is a page of reports
type PaginatedReports struct {
	Data       []Report `json:"data"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int64    `json:"total_pages"`
}

// ListOptions contains common pagination options
type ListOptions struct {
	Page     int
	PageSize int
}
