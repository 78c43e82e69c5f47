package domain

// RankingConfig collects the heuristic constants of the query
// understanding pipeline in one place. The thresholds' relative
// ordering matters (HighConfidence > MultiDomainMin > LowConfidence >
// DomainFloor); the exact cut points are tunable and overridable via
// configuration.
type RankingConfig struct {
	// HighConfidence selects the single-domain strategy when the top
	// domain classification reaches it.
	HighConfidence float64

	// MultiDomainMin is the confidence floor for the multi-domain
	// strategy (two or more domains at or above it).
	MultiDomainMin float64

	// LowConfidence is the lower bound of the single low/medium
	// confidence strategy window [LowConfidence, HighConfidence).
	LowConfidence float64

	// DomainFloor discards domain classifications scoring below it.
	DomainFloor float64

	// DomainMultiBoostCap / DomainMultiBoostStep shape the domain
	// classifier's multi-keyword boost: min(cap, (matches-1)*step).
	DomainMultiBoostCap  float64
	DomainMultiBoostStep float64

	// PlatformMultiBoostCap / PlatformMultiBoostStep shape the platform
	// classifier's multi-keyword boost.
	PlatformMultiBoostCap  float64
	PlatformMultiBoostStep float64

	// DefaultPlatformConfidence is assigned to the web fallback when no
	// platform keyword matches at all.
	DefaultPlatformConfidence float64
}

// DefaultRankingConfig returns the standard tuning.
func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		HighConfidence:            0.7,
		MultiDomainMin:            0.5,
		LowConfidence:             0.3,
		DomainFloor:               0.2,
		DomainMultiBoostCap:       0.10,
		DomainMultiBoostStep:      0.03,
		PlatformMultiBoostCap:     0.15,
		PlatformMultiBoostStep:    0.05,
		DefaultPlatformConfidence: 0.3,
	}
}

// BoostConfig holds the platform-aware rerank multipliers. Boosting is
// a post-hoc rerank applied after search and before truncation, never
// part of BM25 scoring itself.
type BoostConfig struct {
	// PlatformMatch multiplies results whose support tag matches the
	// detected platform.
	PlatformMatch float64

	// PlatformMismatch multiplies results whose support tag conflicts
	// with the detected platform.
	PlatformMismatch float64

	// CrossBoth / CrossMobile apply for cross-platform queries to
	// both- and mobile-tagged results respectively. Web-tagged results
	// are left unchanged for cross-platform queries.
	CrossBoth   float64
	CrossMobile float64
}

// DefaultBoostConfig returns the standard multipliers.
func DefaultBoostConfig() BoostConfig {
	return BoostConfig{
		PlatformMatch:    1.5,
		PlatformMismatch: 0.5,
		CrossBoth:        1.5,
		CrossMobile:      1.2,
	}
}
