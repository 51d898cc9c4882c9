package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// VerificationService handles verification-related API calls
type VerificationService struct {
	client *Client
}

// verifyRequest wraps an alert for the ad-hoc verify endpoint
type verifyRequest struct {
	Alert Alert `json:"alert"`
}

// verifyBatchRequest wraps alerts for the batch verify endpoint
type verifyBatchRequest struct {
	Alerts []Alert `json:"alerts"`
}

// Verify scores an ad-hoc alert without storing it
func (s *VerificationService) Verify(ctx context.Context, a Alert) (*VerificationResult, error) {
	var result VerificationResult
	if err := s.client.doRequest(ctx, "POST", "/api/v1/verify", verifyRequest{Alert: a}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// VerifyBatch scores several alerts in one call, results in input order
func (s *VerificationService) VerifyBatch(ctx context.Context, alerts []Alert) ([]VerificationResult, error) {
	var results []VerificationResult
	if err := s.client.doRequest(ctx, "POST", "/api/v1/verify/batch", verifyBatchRequest{Alerts: alerts}, &results); err != nil {
		return nil, err
	}

	return results, nil
}

// VerifyAlert verifies a stored alert and caches the result
func (s *VerificationService) VerifyAlert(ctx context.Context, alertID string) (*VerificationResult, error) {
	path := fmt.Sprintf("/api/v1/alerts/%s/verify", alertID)

	var result VerificationResult
	if err := s.client.doRequest(ctx, "POST", path, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetResult retrieves the cached verification result for an alert
func (s *VerificationService) GetResult(ctx context.Context, alertID string) (*VerificationResult, error) {
	path := fmt.Sprintf("/api/v1/alerts/%s/verification", alertID)

	var result VerificationResult
	if err := s.client.doRequest(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// Stats retrieves summary statistics over recent verification results
func (s *VerificationService) Stats(ctx context.Context, limit int) (*VerificationStats, error) {
	path := "/api/v1/verifications/stats"
	if limit > 0 {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(limit))
		path += "?" + query.Encode()
	}

	var stats VerificationStats
	if err := s.client.doRequest(ctx, "GET", path, nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}
