package dto

import "github.com/suraksha-net/suraksha/internal/domain/verification"

// VerifyRequest scores an ad-hoc alert that is not in the store
type VerifyRequest struct {
	Alert AlertPayload `json:"alert" validate:"required"`
}

// VerifyBatchRequest scores several alerts in one call
type VerifyBatchRequest struct {
	Alerts []AlertPayload `json:"alerts" validate:"required,max=100,dive"`
}

// VerificationResultDTO represents a verification outcome in API responses
type VerificationResultDTO struct {
	ID              string                  `json:"id"`
	AlertID         string                  `json:"alertId"`
	IsVerified      bool                    `json:"isVerified"`
	TrustScore      verification.TrustScore `json:"trustScore"`
	Flags           []string                `json:"flags"`
	Reasoning       string                  `json:"reasoning"`
	Recommendations []string                `json:"recommendations"`
	ProcessingTime  int64                   `json:"processingTime"`
	Timestamp       int64                   `json:"timestamp"`
}

// NewVerificationResultDTO maps a domain result onto the API shape
func NewVerificationResultDTO(v *verification.Result) VerificationResultDTO {
	return VerificationResultDTO{
		ID:              v.ID,
		AlertID:         v.AlertID,
		IsVerified:      v.IsVerified,
		TrustScore:      v.TrustScore,
		Flags:           v.Flags,
		Reasoning:       v.Reasoning,
		Recommendations: v.Recommendations,
		ProcessingTime:  v.ProcessingTime,
		Timestamp:       v.Timestamp,
	}
}
