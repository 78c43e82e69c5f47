package domain

// Design-system colour modes.
const (
	ModeLight = "light"
	ModeDark  = "dark"
)

// DesignSystemRequest carries the composer's parameters. Only Query is
// required.
type DesignSystemRequest struct {
	// Query drives every per-domain search.
	Query string

	// Style optionally biases the style search toward a named style.
	Style string

	// Mode selects the light or dark palette; defaults to light.
	Mode string

	// MaxResults is the per-domain hit count; defaults to 1.
	MaxResults int

	// Platform explicitly overrides platform auto-detection when set
	// to one of the Platform* constants.
	Platform string
}

// DesignSystem is the composed bundle produced for one query by the
// design-system composer: the top hit of several domain searches plus
// a few derived fields.
type DesignSystem struct {
	// Query is the original input query.
	Query string

	// Style, Product, Palette, Typography and Layout are the chosen
	// documents per domain. Any of them may be nil when the respective
	// search produced no hit.
	Style      *Document
	Product    *Document
	Palette    *Document
	Typography *Document
	Layout     *Document

	// PageIntent drove the layout subset choice (dashboard vs landing).
	PageIntent PageIntent

	// Platform drove the layout boosting; auto-detected from the query
	// unless overridden by the caller.
	Platform PlatformIntent

	// CSSVariables is a CSS custom-property block derived from the
	// chosen color palette.
	CSSVariables string

	// ContrastText is the text color (black or white) computed from the
	// palette's background luminance.
	ContrastText string

	// DarkPalette is the parsed dark-mode palette, nil when the record
	// carries none or its blob could not be parsed (silent fallback to
	// the light palette).
	DarkPalette map[string]string

	// Guide is a markdown usage guide assembled from the chosen parts.
	Guide string
}
