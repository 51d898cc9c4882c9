package alert

// EmergencyAlert is an emergency-relevant report as it arrives from the
// community feed or peer transport. It is immutable for the duration of a
// verification pass.
type EmergencyAlert struct {
	ID        string   `json:"id"`
	Content   string   `json:"content"`
	Source    Source   `json:"source"`
	Location  Location `json:"location"`
	Category  string   `json:"category"`
	Severity  string   `json:"severity"`
	Timestamp int64    `json:"timestamp"` // epoch milliseconds
	Tags      []string `json:"tags,omitempty"`
}

// Source identifies who claims to have issued the alert.
type Source struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Verified bool   `json:"verified"`
}

// Location is the claimed position of the reported event.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
	Radius  float64 `json:"radius,omitempty"` // kilometers
}

// Source kinds
const (
	SourceOfficial = "official"
	SourceUser     = "user"
	SourceMedia    = "media"
	SourceUnknown  = "unknown"
)

// Alert categories
const (
	CategoryEarthquake = "earthquake"
	CategoryFlood      = "flood"
	CategoryFire       = "fire"
	CategoryCyclone    = "cyclone"
	CategoryMedical    = "medical"
	CategorySecurity   = "security"
	CategoryOther      = "other"
)

// Alert severity levels
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Filter contains alert listing options
type Filter struct {
	Category string
	Severity string
	SourceID string
}
