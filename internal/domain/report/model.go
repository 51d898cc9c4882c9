package report

import "time"

// Report is a user-submitted misinformation report against an alert.
type Report struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alert_id"`
	Reason      string    `json:"reason"`
	Description string    `json:"description,omitempty"`
	ReporterID  string    `json:"reporter_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Report reasons
const (
	ReasonFalseInformation = "false_information"
	ReasonMisleading       = "misleading"
	ReasonSpam             = "spam"
	ReasonOutdated         = "outdated"
	ReasonOther            = "other"
)

// ReviewThreshold is the number of reports after which an alert is surfaced
// for manual review.
const ReviewThreshold = 3
