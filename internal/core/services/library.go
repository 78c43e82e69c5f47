package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driven"
	"github.com/stencil-labs/stencil-cli/internal/core/rank"
	"github.com/stencil-labs/stencil-cli/internal/logger"
)

// Library holds every BM25 index of the snippet catalog: one per
// domain, one per framework stack, one per platform guideline set, the
// layout subsets, and the unified index over all documents.
//
// A Library is built once from a SnippetSource and never mutated;
// reloading data means building a new Library and swapping the pointer.
// Absent indexes (zero source documents for that slice) are nil and
// must be checked before searching.
type Library struct {
	indexes   map[domain.Domain]*rank.Index
	stacks    map[string]*rank.Index
	platforms map[string]*rank.Index

	// layoutLanding / layoutDashboard are the landing-oriented and
	// dashboard-oriented layout subsets used by the design-system
	// composer.
	layoutLanding   *rank.Index
	layoutDashboard *rank.Index

	unified *rank.Index
}

// BuildLibrary loads all snippets from the source and constructs every
// index in one pass. It fails when the source yields no records at all;
// individual empty domains merely leave their index absent.
func BuildLibrary(ctx context.Context, source driven.SnippetSource) (*Library, error) {
	snippets, err := source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snippets: %w", err)
	}
	if len(snippets) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	byDomain := make(map[domain.Domain][]domain.Document)
	byStack := make(map[string][]domain.Document)
	byPlatform := make(map[string][]domain.Document)
	var landingDocs, dashboardDocs []domain.Document
	var all []domain.Document

	seen := make(map[string]int)
	for _, s := range snippets {
		doc := domain.NewDocument(documentID(s, seen), s)
		byDomain[s.Domain] = append(byDomain[s.Domain], doc)
		all = append(all, doc)

		switch s.Domain {
		case domain.DomainStacks:
			if stack := strings.ToLower(doc.Data["Stack"]); stack != "" {
				byStack[stack] = append(byStack[stack], doc)
			}
		case domain.DomainPlatforms:
			if platform := strings.ToLower(doc.Data["Platform"]); platform != "" {
				byPlatform[platform] = append(byPlatform[platform], doc)
			}
		case domain.DomainLanding:
			// Layout records carry a Page_Type column; records without
			// one count as landing-oriented.
			if strings.EqualFold(doc.Data["Page_Type"], domain.IntentDashboard) {
				dashboardDocs = append(dashboardDocs, doc)
			} else {
				landingDocs = append(landingDocs, doc)
			}
		}
	}

	lib := &Library{
		indexes:         make(map[domain.Domain]*rank.Index, len(byDomain)),
		stacks:          make(map[string]*rank.Index, len(byStack)),
		platforms:       make(map[string]*rank.Index, len(byPlatform)),
		layoutLanding:   rank.NewIndex(landingDocs),
		layoutDashboard: rank.NewIndex(dashboardDocs),
		unified:         rank.NewIndex(all),
	}

	for d, docs := range byDomain {
		if idx := rank.NewIndex(docs); idx != nil {
			lib.indexes[d] = idx
		}
	}
	for stack, docs := range byStack {
		if idx := rank.NewIndex(docs); idx != nil {
			lib.stacks[stack] = idx
		}
	}
	for platform, docs := range byPlatform {
		if idx := rank.NewIndex(docs); idx != nil {
			lib.platforms[platform] = idx
		}
	}

	logger.Info("Library built: %d documents across %d domains", len(all), len(lib.indexes))

	return lib, nil
}

// documentID derives a stable ID from the record's Name, falling back
// to a random UUID for records without one. Collisions within the
// catalog get a numeric suffix.
func documentID(s domain.Snippet, seen map[string]int) string {
	base := slugify(s.Fields["Name"])
	if base == "" {
		return uuid.NewString()
	}
	id := string(s.Domain) + "/" + base
	seen[id]++
	if n := seen[id]; n > 1 {
		return fmt.Sprintf("%s-%d", id, n)
	}
	return id
}

// slugify lowercases a name and joins its word tokens with dashes.
func slugify(name string) string {
	return strings.Join(rank.Tokenize(name), "-")
}

// Index returns the BM25 index of one domain, or nil when absent.
func (l *Library) Index(d domain.Domain) *rank.Index {
	return l.indexes[d]
}

// StackIndex returns the guideline index of one framework stack, or
// nil when absent.
func (l *Library) StackIndex(stack string) *rank.Index {
	return l.stacks[stack]
}

// PlatformIndex returns the guideline index of one platform set, or
// nil when absent.
func (l *Library) PlatformIndex(platform string) *rank.Index {
	return l.platforms[platform]
}

// LayoutIndex returns the layout subset matching the page intent:
// dashboard-oriented for dashboard queries, landing-oriented otherwise.
// May be nil when the subset is empty.
func (l *Library) LayoutIndex(intent string) *rank.Index {
	if intent == domain.IntentDashboard {
		return l.layoutDashboard
	}
	return l.layoutLanding
}

// Unified returns the index over the union of all documents.
func (l *Library) Unified() *rank.Index {
	return l.unified
}

// DomainCounts reports the number of indexed documents per domain.
func (l *Library) DomainCounts() map[domain.Domain]int {
	counts := make(map[domain.Domain]int, len(l.indexes))
	for d, idx := range l.indexes {
		counts[d] = idx.Len()
	}
	return counts
}

// Snippet returns one document by domain and ID.
func (l *Library) Snippet(d domain.Domain, id string) (domain.Document, error) {
	idx := l.indexes[d]
	if idx == nil {
		return domain.Document{}, fmt.Errorf("%w: no index for domain %q", domain.ErrIndexUnavailable, d)
	}
	for _, doc := range idx.Documents() {
		if doc.ID == id {
			return doc, nil
		}
	}
	return domain.Document{}, fmt.Errorf("%w: snippet %q in domain %q", domain.ErrNotFound, id, d)
}
