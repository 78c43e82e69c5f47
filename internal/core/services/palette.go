package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// paletteFields are the color-record columns turned into CSS custom
// properties, in output order.
var paletteFields = []string{"Primary", "Secondary", "Accent", "Background", "Text"}

// CSSVariables renders a :root block of custom properties from a color
// record. Missing columns are skipped; an empty palette yields "".
func CSSVariables(palette map[string]string) string {
	var b strings.Builder
	for _, field := range paletteFields {
		v := strings.TrimSpace(palette[field])
		if v == "" {
			continue
		}
		fmt.Fprintf(&b, "  --color-%s: %s;\n", strings.ToLower(field), v)
	}
	if b.Len() == 0 {
		return ""
	}
	return ":root {\n" + b.String() + "}"
}

// ContrastText picks black or white text for a background color using
// the perceived-luminance weighting 0.299R + 0.587G + 0.114B against a
// 0.5 threshold. Unparseable backgrounds default to black on the
// assumption of a light palette.
func ContrastText(background string) string {
	r, g, b, ok := parseHexColor(background)
	if !ok {
		return "#000000"
	}
	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
	if luminance > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// parseHexColor parses #rgb and #rrggbb forms.
func parseHexColor(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}

// ParseDarkPalette parses a dark-mode color blob into a key/value map.
// Blobs in the wild range from strict JSON to loose `key: value` pairs,
// so a JSON parse is tried first and a lenient pair scanner second.
// Returns nil when neither yields a usable palette; callers fall back
// to the light palette silently.
func ParseDarkPalette(blob string) map[string]string {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return nil
	}

	var parsed map[string]string
	if err := json.Unmarshal([]byte(blob), &parsed); err == nil && len(parsed) > 0 {
		return parsed
	}

	return parseLoosePairs(blob)
}

// parseLoosePairs scans `key: quoted-or-bare-value` pairs separated by
// commas or newlines. Braces and surrounding quotes are stripped.
func parseLoosePairs(blob string) map[string]string {
	blob = strings.Trim(blob, "{}")

	out := make(map[string]string)
	for _, pair := range strings.FieldsFunc(blob, func(r rune) bool {
		return r == ',' || r == '\n'
	}) {
		key, value, found := strings.Cut(pair, ":")
		if !found {
			continue
		}
		key = strings.Trim(strings.TrimSpace(key), `"'`)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// paletteValue looks a field up case-insensitively; loose dark-mode
// blobs use inconsistent key casing.
func paletteValue(palette map[string]string, field string) string {
	if v, ok := palette[field]; ok {
		return v
	}
	for k, v := range palette {
		if strings.EqualFold(k, field) {
			return v
		}
	}
	return ""
}

// effectivePalette resolves the palette used for derived fields: the
// parsed dark palette when the request asked for dark mode and the
// record carries a parseable blob, the light record columns otherwise.
func effectivePalette(doc *domain.Document, mode string) (map[string]string, map[string]string) {
	if doc == nil {
		return nil, nil
	}

	light := make(map[string]string, len(paletteFields))
	for _, field := range paletteFields {
		if v := doc.Data[field]; v != "" {
			light[field] = v
		}
	}

	if mode != domain.ModeDark {
		return light, nil
	}

	dark := ParseDarkPalette(doc.Data["Dark_Mode"])
	if dark == nil {
		return light, nil
	}

	merged := make(map[string]string, len(paletteFields))
	for _, field := range paletteFields {
		if v := paletteValue(dark, field); v != "" {
			merged[field] = v
		} else if v := light[field]; v != "" {
			merged[field] = v
		}
	}
	return merged, dark
}
