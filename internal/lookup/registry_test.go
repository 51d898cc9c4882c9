package lookup

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestReputationRegistry(t *testing.T) {
	reg := NewReputationRegistry(map[string]float64{
		"ndma-delhi": 0.95,
		"rumor-mill": 0.1,
	})

	tests := []struct {
		name     string
		sourceID string
		want     float64
	}{
		{name: "known reliable source", sourceID: "ndma-delhi", want: 0.95},
		{name: "known unreliable source", sourceID: "rumor-mill", want: 0.1},
		{name: "unknown source gets neutral score", sourceID: "somebody", want: NeutralReliability},
		{name: "empty source id gets neutral score", sourceID: "", want: NeutralReliability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.HistoricalReliability(context.Background(), tt.sourceID)
			if err != nil {
				t.Fatalf("HistoricalReliability() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("HistoricalReliability() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadReputationRegistry(t *testing.T) {
	tests := []struct {
		name    string
		content string
		path    string
		wantErr bool
	}{
		{
			name:    "valid registry",
			content: "ndma-delhi: 0.95\nrumor-mill: 0.1\n",
		},
		{
			name:    "score out of range",
			content: "ndma-delhi: 1.5\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "[not a map",
			wantErr: true,
		},
		{
			name: "empty path yields empty registry",
			path: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path
			if tt.content != "" {
				path = writeTempFile(t, "reputation.yaml", tt.content)
			}

			reg, err := LoadReputationRegistry(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadReputationRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}

			got, err := reg.HistoricalReliability(context.Background(), "unknown")
			if err != nil {
				t.Fatalf("HistoricalReliability() error = %v", err)
			}
			if got != NeutralReliability {
				t.Errorf("HistoricalReliability(unknown) = %v, want %v", got, NeutralReliability)
			}
		})
	}

	if _, err := LoadReputationRegistry("/nonexistent/reputation.yaml"); err == nil {
		t.Error("LoadReputationRegistry(missing file) expected error, got nil")
	}
}

func TestZoneRegistry(t *testing.T) {
	// Delhi flood plain, 50 km radius.
	reg := NewZoneRegistry([]Zone{
		{Name: "yamuna-flood-plain", Lat: 28.6139, Lng: 77.2090, RadiusKm: 50},
	})

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want bool
	}{
		{name: "zone center", lat: 28.6139, lng: 77.2090, want: true},
		{name: "inside radius", lat: 28.7041, lng: 77.1025, want: true},
		{name: "outside radius", lat: 19.0760, lng: 72.8777, want: false},
		{name: "other hemisphere", lat: -33.8688, lng: 151.2093, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.IsKnownDisasterZone(context.Background(), tt.lat, tt.lng)
			if err != nil {
				t.Fatalf("IsKnownDisasterZone() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsKnownDisasterZone(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestLoadZoneRegistry(t *testing.T) {
	path := writeTempFile(t, "zones.yaml",
		"- name: yamuna-flood-plain\n  lat: 28.6139\n  lng: 77.2090\n  radius_km: 50\n")

	reg, err := LoadZoneRegistry(path)
	if err != nil {
		t.Fatalf("LoadZoneRegistry() error = %v", err)
	}

	got, err := reg.IsKnownDisasterZone(context.Background(), 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("IsKnownDisasterZone() error = %v", err)
	}
	if !got {
		t.Error("IsKnownDisasterZone(zone center) = false, want true")
	}

	empty, err := LoadZoneRegistry("")
	if err != nil {
		t.Fatalf("LoadZoneRegistry(empty path) error = %v", err)
	}
	got, err = empty.IsKnownDisasterZone(context.Background(), 28.6139, 77.2090)
	if err != nil {
		t.Fatalf("IsKnownDisasterZone() error = %v", err)
	}
	if got {
		t.Error("IsKnownDisasterZone() on empty registry = true, want false")
	}
}

func TestFeedRegistryCrossReference(t *testing.T) {
	entries := []FeedEntry{
		{Source: "ndma", Category: "flood", Lat: 28.6139, Lng: 77.2090, RadiusKm: 50},
		{Source: "imd", Category: "flood", Lat: 28.7041, Lng: 77.1025, RadiusKm: 50},
		{Source: "ndma", Category: "fire", Lat: 19.0760, Lng: 72.8777, RadiusKm: 20, Retracted: true},
	}
	reg := NewFeedRegistry(entries)

	baseAlert := func(category string, lat, lng float64) *alert.EmergencyAlert {
		return &alert.EmergencyAlert{
			ID:       "alert_1",
			Category: category,
			Location: alert.Location{Lat: lat, Lng: lng},
		}
	}

	tests := []struct {
		name  string
		alert *alert.EmergencyAlert
		want  CrossRefResult
	}{
		{
			name:  "corroborated by two feeds",
			alert: baseAlert("flood", 28.65, 77.15),
			want: CrossRefResult{
				Found:          true,
				SimilarCount:   2,
				SourcesChecked: []string{"ndma", "imd"},
			},
		},
		{
			name:  "category match is case insensitive",
			alert: baseAlert("FLOOD", 28.6139, 77.2090),
			want: CrossRefResult{
				Found:          true,
				SimilarCount:   2,
				SourcesChecked: []string{"ndma", "imd"},
			},
		},
		{
			name:  "retracted entry contradicts",
			alert: baseAlert("fire", 19.0760, 72.8777),
			want: CrossRefResult{
				Contradicted:   true,
				SourcesChecked: []string{"ndma", "imd"},
			},
		},
		{
			name:  "no feed covers the location",
			alert: baseAlert("flood", -33.8688, 151.2093),
			want: CrossRefResult{
				SourcesChecked: []string{"ndma", "imd"},
			},
		},
		{
			name:  "category mismatch",
			alert: baseAlert("earthquake", 28.6139, 77.2090),
			want: CrossRefResult{
				SourcesChecked: []string{"ndma", "imd"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reg.CrossReference(context.Background(), tt.alert)
			if err != nil {
				t.Fatalf("CrossReference() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CrossReference() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFeedRegistryRetractionOverriddenByLiveEntry(t *testing.T) {
	// A live entry and a retracted one both cover the alert. The live entry
	// wins: corroborated, not contradicted.
	reg := NewFeedRegistry([]FeedEntry{
		{Source: "ndma", Category: "flood", Lat: 28.6139, Lng: 77.2090, RadiusKm: 50, Retracted: true},
		{Source: "imd", Category: "flood", Lat: 28.6139, Lng: 77.2090, RadiusKm: 50},
	})

	got, err := reg.CrossReference(context.Background(), &alert.EmergencyAlert{
		Category: "flood",
		Location: alert.Location{Lat: 28.6139, Lng: 77.2090},
	})
	if err != nil {
		t.Fatalf("CrossReference() error = %v", err)
	}

	if !got.Found || got.Contradicted {
		t.Errorf("CrossReference() = %+v, want Found without Contradicted", got)
	}
	if got.SimilarCount != 1 {
		t.Errorf("CrossReference() SimilarCount = %d, want 1", got.SimilarCount)
	}
}

func TestRegistryContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewReputationRegistry(nil).HistoricalReliability(ctx, "x"); err == nil {
		t.Error("HistoricalReliability() with cancelled context expected error")
	}
	if _, err := NewZoneRegistry(nil).IsKnownDisasterZone(ctx, 0, 0); err == nil {
		t.Error("IsKnownDisasterZone() with cancelled context expected error")
	}
	if _, err := NewFeedRegistry(nil).CrossReference(ctx, &alert.EmergencyAlert{}); err == nil {
		t.Error("CrossReference() with cancelled context expected error")
	}
}
