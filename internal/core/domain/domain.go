package domain

import (
	"fmt"
	"strings"
)

// Domain identifies one category of design knowledge backed by its own
// BM25 index.
type Domain string

// The snippet domains served by the library.
const (
	DomainStyles     Domain = "styles"
	DomainColors     Domain = "colors"
	DomainTypography Domain = "typography"
	DomainCharts     Domain = "charts"
	DomainUX         Domain = "ux"
	DomainIcons      Domain = "icons"
	DomainLanding    Domain = "landing"
	DomainProducts   Domain = "products"
	DomainPrompts    Domain = "prompts"
	DomainStacks     Domain = "stacks"
	DomainPlatforms  Domain = "platforms"
)

// AllDomains returns every snippet domain in a stable order.
func AllDomains() []Domain {
	return []Domain{
		DomainStyles,
		DomainColors,
		DomainTypography,
		DomainCharts,
		DomainUX,
		DomainIcons,
		DomainLanding,
		DomainProducts,
		DomainPrompts,
		DomainStacks,
		DomainPlatforms,
	}
}

// ParseDomain converts a string into a Domain, case-insensitively.
// Unknown names return ErrUnknownDomain naming the valid set.
func ParseDomain(s string) (Domain, error) {
	d := Domain(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllDomains() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid domains: %s)", ErrUnknownDomain, s, joinDomains(AllDomains()))
}

func joinDomains(ds []Domain) string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}

// ValidStacks is the fixed list of framework-stack names the library
// carries per-stack guideline indexes for.
var ValidStacks = []string{
	"react",
	"nextjs",
	"vue",
	"nuxt",
	"svelte",
	"angular",
	"swiftui",
	"jetpack-compose",
	"react-native",
	"flutter",
	"tailwind",
}

// ValidPlatformSets is the fixed list of platform guideline sets.
var ValidPlatformSets = []string{"ios", "android", "web"}

// ParseStack validates a framework-stack name. Unknown names return
// ErrUnknownStack enumerating the valid set.
func ParseStack(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, known := range ValidStacks {
		if name == known {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid stacks: %s)", ErrUnknownStack, s, strings.Join(ValidStacks, ", "))
}

// ParsePlatformSet validates a platform guideline set name. Unknown
// names return ErrUnknownPlatform enumerating the valid set.
func ParsePlatformSet(s string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, known := range ValidPlatformSets {
		if name == known {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid platforms: %s)", ErrUnknownPlatform, s, strings.Join(ValidPlatformSets, ", "))
}
