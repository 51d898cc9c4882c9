package engine

import (
	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/lookup"
)

// analyzeLocation validates coordinate sanity and records disaster-zone
// membership. Population density and infrastructure risk stay at their
// neutral defaults until a real geospatial source is wired in.
func analyzeLocation(loc alert.Location, knownZone bool) verification.LocationCheck {
	check := verification.LocationCheck{
		PopulationDensity:  lookup.NeutralReliability,
		InfrastructureRisk: lookup.NeutralReliability,
	}

	check.IsValidCoordinates = loc.Lat >= -90 && loc.Lat <= 90 &&
		loc.Lng >= -180 && loc.Lng <= 180

	if check.IsValidCoordinates {
		check.IsKnownDisasterZone = knownZone
	}

	return check
}
