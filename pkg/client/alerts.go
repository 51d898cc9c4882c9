package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AlertService handles alert-related API calls
type AlertService struct {
	client *Client
}

// AlertListOptions contains options for listing alerts
type AlertListOptions struct {
	ListOptions
	Category string
	Severity string
	SourceID string
}

// List retrieves a page of alerts
func (s *AlertService) List(ctx context.Context, opts *AlertListOptions) (*PaginatedAlerts, error) {
	query := url.Values{}

	if opts != nil {
		if opts.Page > 0 {
			query.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			query.Set("page_size", strconv.Itoa(opts.PageSize))
		}
		if opts.Category != "" {
			query.Set("category", opts.Category)
		}
		if opts.Severity != "" {
			query.Set("severity", opts.Severity)
		}
		if opts.SourceID != "" {
			query.Set("source_id", opts.SourceID)
		}
	}

	path := "/api/v1/alerts"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page PaginatedAlerts
	if err := s.client.doRequest(ctx, "GET", path, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Get retrieves a single alert by ID
func (s *AlertService) Get(ctx context.Context, id string) (*Alert, error) {
	path := fmt.Sprintf("/api/v1/alerts/%s", id)

	var a Alert
	if err := s.client.doRequest(ctx, "GET", path, nil, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

// Create ingests a new alert and returns its ID
func (s *AlertService) Create(ctx context.Context, a Alert) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if err := s.client.doRequest(ctx, "POST", "/api/v1/alerts", a, &created); err != nil {
		return "", err
	}

	return created.ID, nil
}

// Delete deletes an alert
func (s *AlertService) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/alerts/%s", id)
	return s.client.doRequest(ctx, "DELETE", path, nil, nil)
}
