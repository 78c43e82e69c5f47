package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// Catalog source kinds.
const (
	SourceEmbedded = "embedded"
	SourceCSV      = "csv"
	SourceSQLite   = "sqlite"
)

// Config is stencil's file configuration. Zero values mean "use the
// built-in default"; Ranking() and Boost() resolve them.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Ranking RankingConfig `toml:"ranking"`
	Boost   BoostConfig   `toml:"boost"`
}

// CatalogConfig selects where snippet records come from.
type CatalogConfig struct {
	// Source is embedded, csv or sqlite. Defaults to embedded.
	Source string `toml:"source"`

	// Dir is the CSV data directory for the csv source.
	Dir string `toml:"dir"`

	// Database is the database path for the sqlite source.
	Database string `toml:"database"`
}

// RankingConfig overrides the classifier and strategy thresholds.
type RankingConfig struct {
	HighConfidence            float64 `toml:"high_confidence"`
	MultiDomainMin            float64 `toml:"multi_domain_min"`
	LowConfidence             float64 `toml:"low_confidence"`
	DomainFloor               float64 `toml:"domain_floor"`
	DomainMultiBoostCap       float64 `toml:"domain_multi_boost_cap"`
	DomainMultiBoostStep      float64 `toml:"domain_multi_boost_step"`
	PlatformMultiBoostCap     float64 `toml:"platform_multi_boost_cap"`
	PlatformMultiBoostStep    float64 `toml:"platform_multi_boost_step"`
	DefaultPlatformConfidence float64 `toml:"default_platform_confidence"`
}

// BoostConfig overrides the platform boost factors.
type BoostConfig struct {
	PlatformMatch    float64 `toml:"platform_match"`
	PlatformMismatch float64 `toml:"platform_mismatch"`
	CrossBoth        float64 `toml:"cross_both"`
	CrossMobile      float64 `toml:"cross_mobile"`
}

// DefaultPath returns the default config file location,
// ~/.stencil/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".stencil", "config.toml"), nil
}

// Load reads the config file at path. A missing file yields the
// zero Config, so every setting resolves to its default.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// ResolveRanking merges non-zero overrides onto the defaults.
func (c Config) ResolveRanking() domain.RankingConfig {
	out := domain.DefaultRankingConfig()
	overlay(&out.HighConfidence, c.Ranking.HighConfidence)
	overlay(&out.MultiDomainMin, c.Ranking.MultiDomainMin)
	overlay(&out.LowConfidence, c.Ranking.LowConfidence)
	overlay(&out.DomainFloor, c.Ranking.DomainFloor)
	overlay(&out.DomainMultiBoostCap, c.Ranking.DomainMultiBoostCap)
	overlay(&out.DomainMultiBoostStep, c.Ranking.DomainMultiBoostStep)
	overlay(&out.PlatformMultiBoostCap, c.Ranking.PlatformMultiBoostCap)
	overlay(&out.PlatformMultiBoostStep, c.Ranking.PlatformMultiBoostStep)
	overlay(&out.DefaultPlatformConfidence, c.Ranking.DefaultPlatformConfidence)
	return out
}

// ResolveBoost merges non-zero overrides onto the defaults.
func (c Config) ResolveBoost() domain.BoostConfig {
	out := domain.DefaultBoostConfig()
	overlay(&out.PlatformMatch, c.Boost.PlatformMatch)
	overlay(&out.PlatformMismatch, c.Boost.PlatformMismatch)
	overlay(&out.CrossBoth, c.Boost.CrossBoth)
	overlay(&out.CrossMobile, c.Boost.CrossMobile)
	return out
}

// CatalogSource resolves the configured source kind.
func (c Config) CatalogSource() (string, error) {
	switch c.Catalog.Source {
	case "", SourceEmbedded:
		return SourceEmbedded, nil
	case SourceCSV:
		if c.Catalog.Dir == "" {
			return "", fmt.Errorf("config: catalog.dir is required for the csv source")
		}
		return SourceCSV, nil
	case SourceSQLite:
		if c.Catalog.Database == "" {
			return "", fmt.Errorf("config: catalog.database is required for the sqlite source")
		}
		return SourceSQLite, nil
	default:
		return "", fmt.Errorf("config: unknown catalog source %q (valid: %s, %s, %s)",
			c.Catalog.Source, SourceEmbedded, SourceCSV, SourceSQLite)
	}
}

func overlay(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
