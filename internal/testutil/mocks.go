package testutil

import (
	"context"
	"fmt"
	"sort"

	"github.com/suraksha-net/suraksha/internal/domain/alert"
	"github.com/suraksha-net/suraksha/internal/domain/report"
	"github.com/suraksha-net/suraksha/internal/domain/verification"
	"github.com/suraksha-net/suraksha/internal/lookup"
)

// MockAlertRepository is a mock implementation of alert.Repository
type MockAlertRepository struct {
	Alerts      map[string]*alert.EmergencyAlert
	Verified    map[string]bool
	CreateError error
	GetError    error
	ListError   error
}

func NewMockAlertRepository() *MockAlertRepository {
	return &MockAlertRepository{
		Alerts:   make(map[string]*alert.EmergencyAlert),
		Verified: make(map[string]bool),
	}
}

func (m *MockAlertRepository) Create(ctx context.Context, a *alert.EmergencyAlert) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Alerts[a.ID] = a
	return nil
}

func (m *MockAlertRepository) GetByID(ctx context.Context, id string) (*alert.EmergencyAlert, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	a, ok := m.Alerts[id]
	if !ok {
		return nil, fmt.Errorf("alert not found")
	}
	return a, nil
}

func (m *MockAlertRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.Alerts[id]; !ok {
		return fmt.Errorf("alert not found")
	}
	delete(m.Alerts, id)
	return nil
}

func (m *MockAlertRepository) List(ctx context.Context, filter alert.Filter, limit, offset int) ([]*alert.EmergencyAlert, int64, error) {
	if m.ListError != nil {
		return nil, 0, m.ListError
	}
	var result []*alert.EmergencyAlert
	for _, a := range m.Alerts {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Severity != "" && a.Severity != filter.Severity {
			continue
		}
		if filter.SourceID != "" && a.Source.ID != filter.SourceID {
			continue
		}
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, int64(len(result)), nil
}

func (m *MockAlertRepository) ListUnverified(ctx context.Context, limit int) ([]*alert.EmergencyAlert, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*alert.EmergencyAlert
	for _, a := range m.Alerts {
		if !m.Verified[a.ID] {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp < result[j].Timestamp })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockVerificationRepository is a mock implementation of verification.Repository
type MockVerificationRepository struct {
	Results   map[string]*verification.Result
	SaveError error
	GetError  error
	ListError error
}

func NewMockVerificationRepository() *MockVerificationRepository {
	return &MockVerificationRepository{
		Results: make(map[string]*verification.Result),
	}
}

func (m *MockVerificationRepository) Save(ctx context.Context, v *verification.Result) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Results[v.AlertID] = v
	return nil
}

func (m *MockVerificationRepository) GetByAlertID(ctx context.Context, alertID string) (*verification.Result, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	v, ok := m.Results[alertID]
	if !ok {
		return nil, fmt.Errorf("verification result not found")
	}
	return v, nil
}

func (m *MockVerificationRepository) ListRecent(ctx context.Context, limit int) ([]*verification.Result, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*verification.Result
	for _, v := range m.Results {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp > result[j].Timestamp })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockReportRepository is a mock implementation of report.Repository
type MockReportRepository struct {
	Reports     map[string]*report.Report
	CreateError error
	CountError  error
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{
		Reports: make(map[string]*report.Report),
	}
}

func (m *MockReportRepository) Create(ctx context.Context, r *report.Report) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Reports[r.ID] = r
	return nil
}

func (m *MockReportRepository) ListByAlert(ctx context.Context, alertID string) ([]*report.Report, error) {
	var result []*report.Report
	for _, r := range m.Reports {
		if r.AlertID == alertID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *MockReportRepository) List(ctx context.Context, limit, offset int) ([]*report.Report, int64, error) {
	var result []*report.Report
	for _, r := range m.Reports {
		result = append(result, r)
	}
	return result, int64(len(result)), nil
}

func (m *MockReportRepository) CountByAlert(ctx context.Context, alertID string) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	count := 0
	for _, r := range m.Reports {
		if r.AlertID == alertID {
			count++
		}
	}
	return count, nil
}

// StubReputationLookup returns a fixed reliability for every source
type StubReputationLookup struct {
	Reliability float64
	Err         error
}

func (s *StubReputationLookup) HistoricalReliability(ctx context.Context, sourceID string) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Reliability, nil
}

// StubZoneLookup returns a fixed disaster-zone answer for every location
type StubZoneLookup struct {
	KnownZone bool
	Err       error
}

func (s *StubZoneLookup) IsKnownDisasterZone(ctx context.Context, lat, lng float64) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	return s.KnownZone, nil
}

// StubFeedLookup returns a fixed cross-reference result for every alert
type StubFeedLookup struct {
	Result lookup.CrossRefResult
	Err    error
}

func (s *StubFeedLookup) CrossReference(ctx context.Context, a *alert.EmergencyAlert) (lookup.CrossRefResult, error) {
	if s.Err != nil {
		return lookup.CrossRefResult{}, s.Err
	}
	return s.Result, nil
}
