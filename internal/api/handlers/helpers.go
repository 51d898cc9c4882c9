package handlers

import (
	"time"

	"github.com/suraksha-net/suraksha/internal/api/dto"
	"github.com/suraksha-net/suraksha/internal/domain/alert"
)

// alertFromPayload maps an ad-hoc verification payload onto the domain alert
func alertFromPayload(p dto.AlertPayload) *alert.EmergencyAlert {
	ts := p.Timestamp
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	return &alert.EmergencyAlert{
		ID:      p.ID,
		Content: p.Content,
		Source: alert.Source{
			ID:       p.Source.ID,
			Name:     p.Source.Name,
			Kind:     p.Source.Kind,
			Verified: p.Source.Verified,
		},
		Location: alert.Location{
			Lat:     p.Location.Lat,
			Lng:     p.Location.Lng,
			Address: p.Location.Address,
			Radius:  p.Location.Radius,
		},
		Category:  p.Category,
		Severity:  p.Severity,
		Timestamp: ts,
		Tags:      p.Tags,
	}
}

// alertFromCreateRequest maps an ingestion request onto the domain alert
func alertFromCreateRequest(req dto.CreateAlertRequest) *alert.EmergencyAlert {
	ts := req.Timestamp
	if ts == 0 {
		ts = time.Now().UnixMilli()
	}
	return &alert.EmergencyAlert{
		Content: req.Content,
		Source: alert.Source{
			ID:       req.Source.ID,
			Name:     req.Source.Name,
			Kind:     req.Source.Kind,
			Verified: req.Source.Verified,
		},
		Location: alert.Location{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			Address: req.Location.Address,
			Radius:  req.Location.Radius,
		},
		Category:  req.Category,
		Severity:  req.Severity,
		Timestamp: ts,
		Tags:      req.Tags,
	}
}

// alertDTO maps a domain alert onto the API shape
func alertDTO(a *alert.EmergencyAlert) dto.AlertDTO {
	return dto.AlertDTO{
		ID:      a.ID,
		Content: a.Content,
		Source: dto.SourceDTO{
			ID:       a.Source.ID,
			Name:     a.Source.Name,
			Kind:     a.Source.Kind,
			Verified: a.Source.Verified,
		},
		Location: dto.LocationDTO{
			Lat:     a.Location.Lat,
			Lng:     a.Location.Lng,
			Address: a.Location.Address,
			Radius:  a.Location.Radius,
		},
		Category:  a.Category,
		Severity:  a.Severity,
		Timestamp: a.Timestamp,
		Tags:      a.Tags,
	}
}
