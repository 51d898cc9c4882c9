package dto

// SourceDTO identifies the claimed issuer of an alert
type SourceDTO struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Kind     string `json:"kind" validate:"omitempty,oneof=official user media unknown"`
	Verified bool   `json:"verified"`
}

// LocationDTO is the claimed position of the reported event. Coordinates are
// not range-checked here; the verification engine grades their validity.
type LocationDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	Radius  float64 `json:"radius,omitempty" validate:"gte=0"`
}

// StrictLocationDTO is used for stored alerts, which must carry real
// coordinates.
type StrictLocationDTO struct {
	Lat     float64 `json:"lat" validate:"latitude"`
	Lng     float64 `json:"lng" validate:"longitude"`
	Address string  `json:"address,omitempty"`
	Radius  float64 `json:"radius,omitempty" validate:"gte=0"`
}

// AlertDTO represents an alert in API responses
type AlertDTO struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Source    SourceDTO   `json:"source"`
	Location  LocationDTO `json:"location"`
	Category  string      `json:"category"`
	Severity  string      `json:"severity"`
	Timestamp int64       `json:"timestamp"`
	Tags      []string    `json:"tags,omitempty"`
}

// CreateAlertRequest represents an alert ingestion request
type CreateAlertRequest struct {
	Content   string            `json:"content" validate:"required"`
	Source    SourceDTO         `json:"source" validate:"required"`
	Location  StrictLocationDTO `json:"location" validate:"required"`
	Category  string            `json:"category" validate:"required,oneof=earthquake flood fire cyclone medical security other"`
	Severity  string            `json:"severity" validate:"required,oneof=low medium high critical"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
}

// AlertPayload is an alert submitted for ad-hoc verification. It is more
// permissive than CreateAlertRequest because scoring malformed alerts is
// part of the job.
type AlertPayload struct {
	ID        string      `json:"id,omitempty"`
	Content   string      `json:"content" validate:"required"`
	Source    SourceDTO   `json:"source" validate:"required"`
	Location  LocationDTO `json:"location"`
	Category  string      `json:"category" validate:"omitempty,oneof=earthquake flood fire cyclone medical security other"`
	Severity  string      `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Timestamp int64       `json:"timestamp,omitempty"`
	Tags      []string    `json:"tags,omitempty"`
}

// AlertListRequest represents alert list query parameters
type AlertListRequest struct {
	Category string `json:"category,omitempty"`
	Severity string `json:"severity,omitempty"`
	SourceID string `json:"sourceId,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"pageSize,omitempty"`
}
