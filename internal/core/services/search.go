package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/stencil-labs/stencil-cli/internal/core/classify"
	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driving"
	"github.com/stencil-labs/stencil-cli/internal/core/rank"
	"github.com/stencil-labs/stencil-cli/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService is the multi-index search orchestrator. It routes a
// query to one or more BM25 indexes and merges results according to
// the classifier output.
type SearchService struct {
	mu  sync.RWMutex
	lib *Library

	cfg   domain.RankingConfig
	boost domain.BoostConfig

	domains   *classify.DomainClassifier
	platforms *classify.PlatformClassifier
	intents   *classify.PageIntentClassifier
}

// NewSearchService creates the orchestrator over a built library.
func NewSearchService(lib *Library, cfg domain.RankingConfig, boost domain.BoostConfig) *SearchService {
	return &SearchService{
		lib:       lib,
		cfg:       cfg,
		boost:     boost,
		domains:   classify.NewDomainClassifier(cfg),
		platforms: classify.NewPlatformClassifier(cfg),
		intents:   classify.NewPageIntentClassifier(),
	}
}

// Reload swaps in a freshly built library. Indexes themselves are
// immutable; this is the only mutation point of the service.
func (s *SearchService) Reload(lib *Library) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lib = lib
}

// library returns the current library under the read lock.
func (s *SearchService) library() *Library {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lib
}

// SearchAll searches the unified index and reranks the results with
// the classifier-driven strategy selection. Pure BM25 over a merged
// corpus under-ranks domain-specific documents for generic vocabulary;
// the partition-and-quota step layers precision on top of the
// recall-oriented base ranker.
func (s *SearchService) SearchAll(ctx context.Context, query string, maxResults int) ([]domain.SearchResult, error) {
	req, err := classify.ValidateQuery(query, maxResults)
	if err != nil {
		return nil, err
	}

	logger.Section("Unified Search")
	logger.Debug("Query: %q (expanded: %q)", req.Query, req.ExpandedQuery)

	// Classifiers run against the original query; expansion is for
	// scoring only.
	domainMatches := s.domains.Detect(req.Query)
	platformIntent := s.platforms.Detect(req.Query)
	logger.Debug("Domains detected: %d, platform: %s (%.2f)",
		len(domainMatches), platformIntent.Platform, platformIntent.Confidence)

	lib := s.library()
	// Overfetch to leave room for reranking.
	hits := lib.Unified().Search(req.ExpandedQuery, req.MaxResults*3)

	results := s.toResults(hits, domainMatches, platformIntent)
	results = ApplyPlatformBoost(results, platformIntent.Platform, s.boost)
	results = s.applyStrategy(results, domainMatches, req.MaxResults)

	logger.Info("Final results: %d", len(results))
	return results, nil
}

// highConfidenceShare is the slot share reserved for the detected
// domain under the high-confidence strategy.
const highConfidenceShare = 0.8

// applyStrategy selects and runs the result-composition strategy, in
// priority order: high-confidence single domain, multiple domains,
// single low/medium-confidence domain, no domain.
func (s *SearchService) applyStrategy(results []domain.SearchResult, matches []domain.DomainMatch, maxResults int) []domain.SearchResult {
	strong := make([]domain.DomainMatch, 0, len(matches))
	for _, m := range matches {
		if m.Confidence >= s.cfg.MultiDomainMin {
			strong = append(strong, m)
		}
	}

	switch {
	case len(matches) > 0 && matches[0].Confidence >= s.cfg.HighConfidence:
		logger.Debug("Strategy: high-confidence domain %s (%.2f)", matches[0].Domain, matches[0].Confidence)
		return s.singleDomainFill(results, matches[0].Domain, maxResults, highConfidenceShare)

	case len(strong) >= 2:
		logger.Debug("Strategy: multi-domain (%d domains)", len(strong))
		return s.multiDomainFill(results, strong, maxResults)

	case len(matches) == 1 && matches[0].Confidence >= s.cfg.LowConfidence:
		conf := matches[0].Confidence
		logger.Debug("Strategy: medium-confidence domain %s (%.2f)", matches[0].Domain, conf)
		return s.singleDomainFill(results, matches[0].Domain, maxResults, 0.5+conf*0.3)

	default:
		logger.Debug("Strategy: no domain detected, unified order")
		return truncate(results, maxResults)
	}
}

// singleDomainFill partitions results into the detected domain vs the
// rest, fills ceil(share*maxResults) slots from the matching partition
// first and the remainder from the rest.
func (s *SearchService) singleDomainFill(results []domain.SearchResult, d domain.Domain, maxResults int, share float64) []domain.SearchResult {
	var matching, other []domain.SearchResult
	for _, r := range results {
		if r.Document.Type == d {
			matching = append(matching, r)
		} else {
			other = append(other, r)
		}
	}

	quota := int(math.Ceil(share * float64(maxResults)))
	if quota > maxResults {
		quota = maxResults
	}

	out := make([]domain.SearchResult, 0, maxResults)
	out = append(out, truncate(matching, quota)...)
	out = append(out, truncate(other, maxResults-len(out))...)
	return out
}

// multiDomainFill allocates each detected domain a slot count
// proportional to its confidence, fills leftovers from the remaining
// results, and re-sorts the merge by raw score.
func (s *SearchService) multiDomainFill(results []domain.SearchResult, strong []domain.DomainMatch, maxResults int) []domain.SearchResult {
	byType := make(map[domain.Domain][]domain.SearchResult)
	for _, r := range results {
		byType[r.Document.Type] = append(byType[r.Document.Type], r)
	}

	taken := make(map[string]bool)
	out := make([]domain.SearchResult, 0, maxResults)

	perDomain := float64(maxResults) / float64(len(strong))
	for _, m := range strong {
		quota := int(math.Ceil(perDomain * m.Confidence))
		for _, r := range truncate(byType[m.Domain], quota) {
			if len(out) >= maxResults {
				break
			}
			out = append(out, r)
			taken[r.Document.ID] = true
		}
	}

	// Fill remaining slots from leftover results in score order.
	for _, r := range results {
		if len(out) >= maxResults {
			break
		}
		if !taken[r.Document.ID] {
			out = append(out, r)
			taken[r.Document.ID] = true
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// SearchDomain searches one domain's index.
func (s *SearchService) SearchDomain(ctx context.Context, d domain.Domain, query string, maxResults int) ([]domain.SearchResult, error) {
	req, err := classify.ValidateQuery(query, maxResults)
	if err != nil {
		return nil, err
	}

	idx := s.library().Index(d)
	if idx == nil {
		return nil, fmt.Errorf("%w: no index for domain %q", domain.ErrIndexUnavailable, d)
	}

	logger.Debug("Domain search: %s %q", d, req.Query)
	hits := idx.Search(req.ExpandedQuery, req.MaxResults)

	results := make([]domain.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = domain.SearchResult{
			Document:       h.Document,
			Score:          h.Score,
			DetectedDomain: string(d),
		}
	}
	return results, nil
}

// SearchStack searches the guideline index of one framework stack.
func (s *SearchService) SearchStack(ctx context.Context, stack, query string, maxResults int) ([]domain.SearchResult, error) {
	name, err := domain.ParseStack(stack)
	if err != nil {
		return nil, err
	}
	req, err := classify.ValidateQuery(query, maxResults)
	if err != nil {
		return nil, err
	}

	idx := s.library().StackIndex(name)
	if idx == nil {
		return nil, fmt.Errorf("%w: no guidelines indexed for stack %q", domain.ErrIndexUnavailable, name)
	}

	hits := idx.Search(req.ExpandedQuery, req.MaxResults)
	results := make([]domain.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = domain.SearchResult{
			Document:       h.Document,
			Score:          h.Score,
			DetectedDomain: string(domain.DomainStacks),
			DetectedStack:  name,
		}
	}
	return results, nil
}

// SearchPlatform searches one platform guideline set.
func (s *SearchService) SearchPlatform(ctx context.Context, platform, query string, maxResults int) ([]domain.SearchResult, error) {
	name, err := domain.ParsePlatformSet(platform)
	if err != nil {
		return nil, err
	}
	req, err := classify.ValidateQuery(query, maxResults)
	if err != nil {
		return nil, err
	}

	idx := s.library().PlatformIndex(name)
	if idx == nil {
		return nil, fmt.Errorf("%w: no guidelines indexed for platform %q", domain.ErrIndexUnavailable, name)
	}

	hits := idx.Search(req.ExpandedQuery, req.MaxResults)
	results := make([]domain.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = domain.SearchResult{
			Document:       h.Document,
			Score:          h.Score,
			DetectedDomain: string(domain.DomainPlatforms),
		}
	}
	return results, nil
}

// DetectDomains exposes the domain classifier.
func (s *SearchService) DetectDomains(query string) []domain.DomainMatch {
	return s.domains.Detect(query)
}

// DetectPlatform exposes the platform classifier.
func (s *SearchService) DetectPlatform(query string) domain.PlatformIntent {
	return s.platforms.Detect(query)
}

// ClassifyPageIntent exposes the page-intent classifier.
func (s *SearchService) ClassifyPageIntent(query string) domain.PageIntent {
	return s.intents.Classify(query)
}

// DomainCounts reports the number of indexed documents per domain.
func (s *SearchService) DomainCounts() map[domain.Domain]int {
	return s.library().DomainCounts()
}

// Snippet returns one indexed document by domain and ID.
func (s *SearchService) Snippet(d domain.Domain, id string) (domain.Document, error) {
	return s.library().Snippet(d, id)
}

// toResults converts raw hits to search results carrying the detected
// domain/stack metadata for transparency to the caller.
func (s *SearchService) toResults(hits []rank.Hit, matches []domain.DomainMatch, platform domain.PlatformIntent) []domain.SearchResult {
	detected := ""
	if len(matches) > 0 {
		detected = string(matches[0].Domain)
	}

	results := make([]domain.SearchResult, len(hits))
	for i, h := range hits {
		results[i] = domain.SearchResult{
			Document:       h.Document,
			Score:          h.Score,
			DetectedDomain: detected,
			DetectedStack:  platform.Framework,
		}
	}
	return results
}

// truncate bounds a result slice to n entries.
func truncate(results []domain.SearchResult, n int) []domain.SearchResult {
	if n < 0 {
		n = 0
	}
	if len(results) > n {
		return results[:n]
	}
	return results
}
