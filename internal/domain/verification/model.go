package verification

// Result is the outcome of verifying one alert. It is a pure derived value
// of its input alert and is never mutated after it is produced.
type Result struct {
	ID             string     `json:"id"`
	AlertID        string     `json:"alert_id"`
	IsVerified     bool       `json:"is_verified"`
	TrustScore     TrustScore `json:"trust_score"`
	Flags          []string   `json:"flags"`
	Reasoning      string     `json:"reasoning"`
	Recommendations []string  `json:"recommendations"`
	ProcessingTime int64      `json:"processing_time"` // milliseconds
	Timestamp      int64      `json:"timestamp"`       // epoch milliseconds
}

// TrustScore is the composite confidence that an alert is genuine, built
// from five weighted sub-scores. Every value lies in [0, 1].
type TrustScore struct {
	Overall        float64   `json:"overall"`
	Content        float64   `json:"content"`
	Source         float64   `json:"source"`
	Location       float64   `json:"location"`
	Temporal       float64   `json:"temporal"`
	CrossReference float64   `json:"cross_reference"`
	Breakdown      Breakdown `json:"breakdown"`
}

// Breakdown carries the raw analyzer signals behind each sub-score, one
// record per analyzer, for the detailed verification view.
type Breakdown struct {
	Content        ContentAnalysis  `json:"content"`
	Source         SourceCheck      `json:"source"`
	Location       LocationCheck    `json:"location"`
	Temporal       TemporalAnalysis `json:"temporal"`
	CrossReference CrossReference   `json:"cross_reference"`
}

// ContentAnalysis holds the free-text heuristics of the content analyzer.
// Accumulated signals are not clamped here; clamping happens when the
// aggregator folds them into a sub-score.
type ContentAnalysis struct {
	SuspiciousPatterns    float64 `json:"suspicious_patterns"`
	EmergencyRelevance    float64 `json:"emergency_relevance"`
	LanguageQuality       float64 `json:"language_quality"`
	FactualConsistency    float64 `json:"factual_consistency"` // reserved
	EmotionalManipulation float64 `json:"emotional_manipulation"`
}

// SourceCheck holds the source verifier signals.
type SourceCheck struct {
	IsOfficial            bool    `json:"is_official"`
	HasVerificationBadge  bool    `json:"has_verification_badge"` // reserved
	HistoricalReliability float64 `json:"historical_reliability"`
	DomainTrust           float64 `json:"domain_trust"` // reserved
}

// LocationCheck holds the location verifier signals.
type LocationCheck struct {
	IsValidCoordinates  bool    `json:"is_valid_coordinates"`
	IsKnownDisasterZone bool    `json:"is_known_disaster_zone"`
	PopulationDensity   float64 `json:"population_density"`  // reserved
	InfrastructureRisk  float64 `json:"infrastructure_risk"` // reserved
}

// TemporalAnalysis holds the temporal analyzer signals.
type TemporalAnalysis struct {
	IsRecentEvent          bool `json:"is_recent_event"`
	HasTemporalConsistency bool `json:"has_temporal_consistency"`
	MatchesWeatherPatterns bool `json:"matches_weather_patterns"`
	FollowsDisasterTimeline bool `json:"follows_disaster_timeline"`
}

// CrossReference holds the cross-reference checker signals.
type CrossReference struct {
	FoundInOfficialSources       bool     `json:"found_in_official_sources"`
	ContradictedByOfficialSources bool    `json:"contradicted_by_official_sources"`
	SimilarAlertsCount           int      `json:"similar_alerts_count"`
	OfficialSourcesChecked       []string `json:"official_sources_checked"`
}

// Risk flags
const (
	FlagSuspiciousContent     = "SUSPICIOUS_CONTENT"
	FlagEmotionalManipulation = "EMOTIONAL_MANIPULATION"
	FlagUnreliableSource      = "UNRELIABLE_SOURCE"
	FlagLowEmergencyRelevance = "LOW_EMERGENCY_RELEVANCE"
	FlagVerificationError     = "VERIFICATION_ERROR"
)

// FlagCount pairs a flag with how often it occurred across a result set.
type FlagCount struct {
	Flag  string `json:"flag"`
	Count int    `json:"count"`
}

// Stats summarizes a collection of verification results for reporting.
type Stats struct {
	Total             int         `json:"total"`
	Verified          int         `json:"verified"`
	Flagged           int         `json:"flagged"`
	VerificationRate  float64     `json:"verification_rate"`
	AvgTrustScore     float64     `json:"avg_trust_score"`
	AvgProcessingTime float64     `json:"avg_processing_time"`
	CommonFlags       []FlagCount `json:"common_flags"`
}
