package domain

import "strings"

// Snippet is a raw catalog record as delivered by a snippet source.
type Snippet struct {
	// Domain is the design-knowledge category the record belongs to.
	Domain Domain

	// Fields contains the original record columns as a flat string map.
	Fields map[string]string
}

// searchableFields are the record columns joined into Document.Content,
// in order. Columns absent from a record are skipped.
var searchableFields = []string{
	"Name", "Category", "Keywords", "Description", "Stack", "Platform", "Use_Case",
}

// Document is an indexed snippet. It is immutable once constructed and
// owned exclusively by the index that indexes it.
type Document struct {
	// ID is unique within the document's index.
	ID string

	// Content is the concatenated searchable text of the record.
	Content string

	// Data is the original record plus a "type" tag.
	Data map[string]string

	// Type is the domain tag, set once at index-build time.
	Type Domain
}

// NewDocument projects a snippet into a Document with the given ID.
// The original fields are copied; the "type" tag is stamped into Data.
func NewDocument(id string, s Snippet) Document {
	data := make(map[string]string, len(s.Fields)+1)
	for k, v := range s.Fields {
		data[k] = v
	}
	data["type"] = string(s.Domain)

	parts := make([]string, 0, len(searchableFields))
	for _, field := range searchableFields {
		if v := s.Fields[field]; v != "" {
			parts = append(parts, v)
		}
	}

	return Document{
		ID:      id,
		Content: strings.Join(parts, " "),
		Data:    data,
		Type:    s.Domain,
	}
}

// Platform support tags carried by snippet records.
const (
	SupportWeb    = "web"
	SupportMobile = "mobile"
	SupportBoth   = "both"
)

// PlatformSupport returns the record's Platform_Support tag, normalised
// to one of web, mobile or both. Legacy records without the column
// default to web.
func (d Document) PlatformSupport() string {
	switch strings.ToLower(strings.TrimSpace(d.Data["Platform_Support"])) {
	case SupportMobile:
		return SupportMobile
	case SupportBoth:
		return SupportBoth
	default:
		return SupportWeb
	}
}

// Name returns the record's display name, falling back to the ID.
func (d Document) Name() string {
	if n := d.Data["Name"]; n != "" {
		return n
	}
	return d.ID
}
