package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/lookup"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/testutil"
)

func newTestEngine(rep lookup.ReputationLookup, zones lookup.DisasterZoneLookup, feeds lookup.FeedLookup) *Engine {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	return New(rep, zones, feeds, Config{}, log)
}

func hasFlag(flags []string, flag string) bool {
	for _, f := range flags {
		if f == flag {
			return true
		}
	}
	return false
}

func TestVerify(t *testing.T) {
	official := testutil.NewTestAlert("alert_official")
	official.Content = "Earthquake of magnitude 6.2 reported, evacuation underway in affected districts"

	unreliable := testutil.NewTestAlert("alert_unreliable")
	unreliable.Content = "URGENT forward to everyone, shocking disaster coming, share before this gets deleted, must share immediately"
	unreliable.Source = alert.Source{ID: "anon-42", Name: "Anonymous User", Kind: alert.SourceUser}

	tests := []struct {
		name          string
		alert         *alert.EmergencyAlert
		reputation    lookup.ReputationLookup
		zones         lookup.DisasterZoneLookup
		feeds         lookup.FeedLookup
		wantVerified  bool
		wantFlags     []string
		wantNotFlags  []string
	}{
		{
			name:       "official corroborated alert verifies",
			alert:      official,
			reputation: &testutil.StubReputationLookup{Reliability: 0.9},
			zones:      &testutil.StubZoneLookup{KnownZone: true},
			feeds: &testutil.StubFeedLookup{Result: lookup.CrossRefResult{
				Found:          true,
				SimilarCount:   3,
				SourcesChecked: []string{"ndma", "imd"},
			}},
			wantVerified: true,
			wantNotFlags: []string{
				verification.FlagUnreliableSource,
				verification.FlagSuspiciousContent,
			},
		},
		{
			name:       "manipulative alert from unknown source is flagged",
			alert:      unreliable,
			reputation: &testutil.StubReputationLookup{Reliability: 0.2},
			zones:      &testutil.StubZoneLookup{},
			feeds:      &testutil.StubFeedLookup{},
			wantVerified: false,
			wantFlags: []string{
				verification.FlagSuspiciousContent,
				verification.FlagEmotionalManipulation,
				verification.FlagUnreliableSource,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.reputation, tt.zones, tt.feeds)

			got := e.Verify(context.Background(), tt.alert)

			if got.AlertID != tt.alert.ID {
				t.Errorf("Verify() AlertID = %v, want %v", got.AlertID, tt.alert.ID)
			}
			if got.IsVerified != tt.wantVerified {
				t.Errorf("Verify() IsVerified = %v (score %v), want %v",
					got.IsVerified, got.TrustScore.Overall, tt.wantVerified)
			}
			if got.IsVerified != (got.TrustScore.Overall >= DefaultVerifiedThreshold) {
				t.Errorf("Verify() verdict %v inconsistent with score %v and threshold %v",
					got.IsVerified, got.TrustScore.Overall, DefaultVerifiedThreshold)
			}
			for _, f := range tt.wantFlags {
				if !hasFlag(got.Flags, f) {
					t.Errorf("Verify() Flags = %v, want to contain %v", got.Flags, f)
				}
			}
			for _, f := range tt.wantNotFlags {
				if hasFlag(got.Flags, f) {
					t.Errorf("Verify() Flags = %v, want not to contain %v", got.Flags, f)
				}
			}
			if got.TrustScore.Overall < 0 || got.TrustScore.Overall > 1 {
				t.Errorf("Verify() Overall = %v, want in [0, 1]", got.TrustScore.Overall)
			}
			if got.Reasoning == "" {
				t.Error("Verify() Reasoning is empty")
			}
			if len(got.Recommendations) == 0 {
				t.Error("Verify() Recommendations is empty")
			}
		})
	}
}

func TestVerifyInvalidCoordinates(t *testing.T) {
	a := testutil.NewTestAlert("alert_bad_coords")
	a.Location = alert.Location{Lat: 999, Lng: 77.2090}

	// The zone lookup claims a known zone, but invalid coordinates must
	// suppress it.
	e := newTestEngine(
		&testutil.StubReputationLookup{Reliability: 0.9},
		&testutil.StubZoneLookup{KnownZone: true},
		&testutil.StubFeedLookup{},
	)

	got := e.Verify(context.Background(), a)

	loc := got.TrustScore.Breakdown.Location
	if loc.IsValidCoordinates {
		t.Error("Verify() IsValidCoordinates = true, want false")
	}
	if loc.IsKnownDisasterZone {
		t.Error("Verify() IsKnownDisasterZone = true, want false for invalid coordinates")
	}
	if !almostEqual(got.TrustScore.Location, 0.1) {
		t.Errorf("Verify() Location = %v, want 0.1", got.TrustScore.Location)
	}
	if hasFlag(got.Flags, verification.FlagVerificationError) {
		t.Errorf("Verify() Flags = %v, invalid coordinates are not an error", got.Flags)
	}
}

func TestVerifyLookupFailures(t *testing.T) {
	a := testutil.NewTestAlert("alert_lookup_down")
	lookupErr := errors.New("lookup unavailable")

	e := newTestEngine(
		&testutil.StubReputationLookup{Err: lookupErr},
		&testutil.StubZoneLookup{Err: lookupErr},
		&testutil.StubFeedLookup{Err: lookupErr},
	)

	got := e.Verify(context.Background(), a)

	if hasFlag(got.Flags, verification.FlagVerificationError) {
		t.Errorf("Verify() Flags = %v, lookup failures must not produce an error result", got.Flags)
	}
	b := got.TrustScore.Breakdown
	if !almostEqual(b.Source.HistoricalReliability, lookup.NeutralReliability) {
		t.Errorf("Verify() HistoricalReliability = %v, want neutral %v",
			b.Source.HistoricalReliability, lookup.NeutralReliability)
	}
	if b.Location.IsKnownDisasterZone {
		t.Error("Verify() IsKnownDisasterZone = true, want conservative false")
	}
	if b.CrossReference.FoundInOfficialSources || b.CrossReference.ContradictedByOfficialSources {
		t.Errorf("Verify() CrossReference = %+v, want zero value", b.CrossReference)
	}
}

func TestVerifyDeterministic(t *testing.T) {
	a := testutil.NewTestAlert("alert_repeat")
	e := newTestEngine(
		&testutil.StubReputationLookup{Reliability: 0.8},
		&testutil.StubZoneLookup{KnownZone: true},
		&testutil.StubFeedLookup{Result: lookup.CrossRefResult{Found: true}},
	)
	e.now = func() time.Time { return time.UnixMilli(a.Timestamp) }

	first := e.Verify(context.Background(), a)
	second := e.Verify(context.Background(), a)

	if !reflect.DeepEqual(first.TrustScore, second.TrustScore) {
		t.Errorf("Verify() scores differ across runs: %+v vs %+v",
			first.TrustScore, second.TrustScore)
	}
	if !reflect.DeepEqual(first.Flags, second.Flags) {
		t.Errorf("Verify() flags differ across runs: %v vs %v", first.Flags, second.Flags)
	}
	if first.ID == second.ID {
		t.Errorf("Verify() reused result ID %v", first.ID)
	}
}

func TestVerifyCancelledContext(t *testing.T) {
	a := testutil.NewTestAlert("alert_cancelled")
	e := newTestEngine(
		&testutil.StubReputationLookup{Reliability: 0.9},
		&testutil.StubZoneLookup{},
		&testutil.StubFeedLookup{},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := e.Verify(ctx, a)

	if got.IsVerified {
		t.Error("Verify() IsVerified = true, want false for error result")
	}
	if !reflect.DeepEqual(got.Flags, []string{verification.FlagVerificationError}) {
		t.Errorf("Verify() Flags = %v, want [%v]", got.Flags, verification.FlagVerificationError)
	}
	if !strings.HasPrefix(got.ID, "error_") {
		t.Errorf("Verify() ID = %v, want error_ prefix", got.ID)
	}
	if got.ProcessingTime != 0 {
		t.Errorf("Verify() ProcessingTime = %v, want 0", got.ProcessingTime)
	}
	if got.Reasoning != "Unable to verify alert due to technical issues" {
		t.Errorf("Verify() Reasoning = %q", got.Reasoning)
	}
}

func TestVerifyBatch(t *testing.T) {
	e := newTestEngine(
		&testutil.StubReputationLookup{Reliability: 0.7},
		&testutil.StubZoneLookup{KnownZone: true},
		&testutil.StubFeedLookup{},
	)

	var alerts []*alert.EmergencyAlert
	for i := 0; i < 20; i++ {
		alerts = append(alerts, testutil.NewTestAlert(fmt.Sprintf("alert_%03d", i)))
	}

	results := e.VerifyBatch(context.Background(), alerts)

	if len(results) != len(alerts) {
		t.Fatalf("VerifyBatch() returned %d results, want %d", len(results), len(alerts))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("VerifyBatch() result %d is nil", i)
		}
		if r.AlertID != alerts[i].ID {
			t.Errorf("VerifyBatch() result %d AlertID = %v, want %v", i, r.AlertID, alerts[i].ID)
		}
	}
}

func TestVerifyBatchEmpty(t *testing.T) {
	e := newTestEngine(
		&testutil.StubReputationLookup{},
		&testutil.StubZoneLookup{},
		&testutil.StubFeedLookup{},
	)

	results := e.VerifyBatch(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("VerifyBatch(nil) returned %d results, want 0", len(results))
	}
}

func TestNewDefaults(t *testing.T) {
	e := newTestEngine(
		&testutil.StubReputationLookup{},
		&testutil.StubZoneLookup{},
		&testutil.StubFeedLookup{},
	)

	if e.threshold != DefaultVerifiedThreshold {
		t.Errorf("New() threshold = %v, want %v", e.threshold, DefaultVerifiedThreshold)
	}
	if e.batchLimit != 8 {
		t.Errorf("New() batchLimit = %v, want 8", e.batchLimit)
	}
	if e.lookupTimeout != 2*time.Second {
		t.Errorf("New() lookupTimeout = %v, want 2s", e.lookupTimeout)
	}
}
