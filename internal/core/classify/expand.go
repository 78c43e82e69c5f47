package classify

import (
	"sort"
	"strings"
)

// expansions maps trigger phrases to synonym/related-term bags. When a
// trigger occurs in the query the expansion text is appended (never
// substituted), biasing BM25 toward documents that use the catalog's
// vocabulary without changing what the caller sees as their query.
var expansions = map[string]string{
	"glassmorphism":  "glass frosted blur transparency backdrop translucent",
	"neumorphism":    "soft shadow emboss extruded subtle",
	"dark mode":      "dark theme night low-light background contrast",
	"landing page":   "hero cta conversion headline above the fold",
	"dashboard":      "analytics metrics charts widgets admin panel",
	"e-commerce":     "shop store product checkout cart",
	"ecommerce":      "shop store product checkout cart",
	"minimal":        "minimalist clean whitespace simple",
	"accessibility":  "a11y wcag contrast screen reader",
	"typography":     "font typeface heading body text",
	"color palette":  "colors scheme primary secondary accent",
	"icons":          "icon set glyph symbol pictogram",
	"mobile":         "app touch responsive smartphone",
	"animation":      "motion transition easing keyframes",
	"form":           "input validation label field submit",
}

// expansionTriggers holds the trigger phrases sorted by length
// descending, so longer, more specific phrases are checked before
// shorter substrings that may occur inside them.
var expansionTriggers = func() []string {
	triggers := make([]string, 0, len(expansions))
	for t := range expansions {
		triggers = append(triggers, t)
	}
	sort.Slice(triggers, func(i, j int) bool {
		if len(triggers[i]) != len(triggers[j]) {
			return len(triggers[i]) > len(triggers[j])
		}
		return triggers[i] < triggers[j]
	})
	return triggers
}()

// ExpandQuery appends the expansion text of every trigger phrase
// contained in the query. Expansions from multiple triggers may repeat
// terms; duplicates are deliberately kept.
func ExpandQuery(query string) string {
	queryLower := strings.ToLower(query)

	expanded := query
	for _, trigger := range expansionTriggers {
		if strings.Contains(queryLower, trigger) {
			expanded += " " + expansions[trigger]
		}
	}
	return expanded
}
