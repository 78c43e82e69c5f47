package domain

// Platform intents produced by the platform classifier.
const (
	PlatformWeb     = "web"
	PlatformIOS     = "mobile-ios"
	PlatformAndroid = "mobile-android"
	PlatformMobile  = "mobile"
	PlatformCross   = "cross-platform"
)

// Page intents produced by the page-intent classifier.
const (
	IntentLanding   = "landing"
	IntentDashboard = "dashboard"
	IntentPage      = "page"
	IntentUnknown   = "unknown"
)

// DomainMatch is one ranked domain classification for a query.
// Produced fresh per query; never persisted.
type DomainMatch struct {
	// Domain is the classified category.
	Domain Domain

	// Confidence is a heuristic score in [0,1], not a calibrated
	// probability.
	Confidence float64

	// MatchedKeywords holds the signature keywords that matched.
	MatchedKeywords []string
}

// PlatformIntent is the platform/device classification for a query.
type PlatformIntent struct {
	// Platform is one of the Platform* constants.
	Platform string

	// Confidence is a heuristic score in [0,1].
	Confidence float64

	// Framework is the associated framework name inferred for the
	// platform (e.g. swiftui for mobile-ios).
	Framework string

	// MatchedKeywords holds the signature keywords that matched.
	MatchedKeywords []string
}

// PageIntent is the page-intent classification for a query.
type PageIntent struct {
	// Intent is one of the Intent* constants.
	Intent string

	// Confidence is a heuristic score in [0,1].
	Confidence float64

	// MatchedKeyword is the winning keyword or phrase, if any.
	MatchedKeyword string

	// Position is the token position of the match within the query.
	Position int

	// Note carries a warning when nothing matched.
	Note string
}
