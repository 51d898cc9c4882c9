package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ReportService handles misinformation report API calls
type ReportService struct {
	client *Client
}

// SubmitReportRequest files a misinformation report against an alert
type SubmitReportRequest struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
	ReporterID  string `json:"reporterId,omitempty"`
}

// SubmitReportResult tells the caller whether the alert now needs review
type SubmitReportResult struct {
	ID          string `json:"id"`
	NeedsReview bool   `json:"needsReview"`
}

// Submit files a report against an alert
func (s *ReportService) Submit(ctx context.Context, alertID string, req SubmitReportRequest) (*SubmitReportResult, error) {
	path := fmt.Sprintf("/api/v1/alerts/%s/reports", alertID)

	var result SubmitReportResult
	if err := s.client.doRequest(ctx, "POST", path, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// List retrieves a page of reports
func (s *ReportService) List(ctx context.Context, opts *ListOptions) (*PaginatedReports, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(opts.PageSize))
		}
	}

	path := "/api/v1/reports"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page PaginatedReports
	if err := s.client.doRequest(ctx, "GET", path, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}
