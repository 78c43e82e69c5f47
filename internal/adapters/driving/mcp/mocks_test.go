package mcp

import (
	"context"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results  []domain.SearchResult
	counts   map[domain.Domain]int
	snippet  domain.Document
	matches  []domain.DomainMatch
	platform domain.PlatformIntent
	intent   domain.PageIntent
	err      error
}

func (m *mockSearchService) SearchAll(_ context.Context, _ string, _ int) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) SearchDomain(_ context.Context, _ domain.Domain, _ string, _ int) ([]domain.SearchResult, error) {
	return m.results, m.err
}

func (m *mockSearchService) SearchStack(_ context.Context, stack, _ string, _ int) ([]domain.SearchResult, error) {
	if _, err := domain.ParseStack(stack); err != nil {
		return nil, err
	}
	return m.results, m.err
}

func (m *mockSearchService) SearchPlatform(_ context.Context, platform, _ string, _ int) ([]domain.SearchResult, error) {
	if _, err := domain.ParsePlatformSet(platform); err != nil {
		return nil, err
	}
	return m.results, m.err
}

func (m *mockSearchService) DetectDomains(_ string) []domain.DomainMatch {
	return m.matches
}

func (m *mockSearchService) DetectPlatform(_ string) domain.PlatformIntent {
	return m.platform
}

func (m *mockSearchService) ClassifyPageIntent(_ string) domain.PageIntent {
	return m.intent
}

func (m *mockSearchService) DomainCounts() map[domain.Domain]int {
	return m.counts
}

func (m *mockSearchService) Snippet(_ domain.Domain, id string) (domain.Document, error) {
	if m.err != nil {
		return domain.Document{}, m.err
	}
	if m.snippet.ID != id {
		return domain.Document{}, domain.ErrNotFound
	}
	return m.snippet, nil
}

// mockDesignSystemService is a mock implementation of driving.DesignSystemService.
type mockDesignSystemService struct {
	system domain.DesignSystem
	err    error
}

func (m *mockDesignSystemService) Build(_ context.Context, _ domain.DesignSystemRequest) (domain.DesignSystem, error) {
	return m.system, m.err
}
