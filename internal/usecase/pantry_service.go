package usecase

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/pricepersize/backend/internal/domain"
)

// Package-level compiled regex pattern for performance
var punctuationRegex = regexp.MustCompile(`[^\w\s]`)

// searchStopWords are tokens that carry no signal when matching pantry
// item names: packaging and size noise the extraction service sometimes
// leaves in.
var searchStopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "of": true,
	"oz": true, "fl": true, "lb": true, "lbs": true, "ml": true, "kg": true,
	"pack": true, "packs": true, "count": true, "ct": true, "pk": true,
	"box": true, "bag": true, "bottle": true, "can": true, "jar": true,
	"size": true, "value": true, "family": true, "each": true, "per": true,
}

// PantryService reads and maintains a user's pantry inventory and ranks
// items for search-as-you-type queries.
type PantryService struct {
	repo domain.PantryRepository
}

// NewPantryService creates a new pantry service
func NewPantryService(repo domain.PantryRepository) *PantryService {
	return &PantryService{repo: repo}
}

// List returns every pantry item owned by the user.
func (s *PantryService) List(ctx context.Context, userID string) ([]domain.PantryItem, error) {
	if userID == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.repo.ListByUser(ctx, userID)
}

// Search ranks the user's pantry items against a free-text query by
// token coverage: the fraction of query tokens found in the item name
// (weighted highest) blended with the fraction of name tokens matched.
// Items with no overlapping tokens are dropped.
func (s *PantryService) Search(ctx context.Context, userID, query string) ([]domain.PantrySearchHit, error) {
	if userID == "" || strings.TrimSpace(query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return nil, nil
	}

	var hits []domain.PantrySearchHit
	for _, item := range items {
		name := item.ItemName
		if item.Brand != "" {
			name = item.Brand + " " + name
		}
		score := coverageScore(queryTokens, tokenize(name))
		if score > 0 {
			hits = append(hits, domain.PantrySearchHit{Item: item, Score: score})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		return hits[a].Score > hits[b].Score
	})
	return hits, nil
}

// UpdateStatus marks an item as have/low/out.
func (s *PantryService) UpdateStatus(ctx context.Context, userID, itemID string, status domain.PantryItemStatus) error {
	switch status {
	case domain.StatusHave, domain.StatusLow, domain.StatusOut:
	default:
		return domain.ErrInvalidRequest
	}
	return s.repo.UpdateStatus(ctx, userID, itemID, status)
}

// Delete removes an item from the user's pantry.
func (s *PantryService) Delete(ctx context.Context, userID, itemID string) error {
	if userID == "" || itemID == "" {
		return domain.ErrInvalidRequest
	}
	return s.repo.Delete(ctx, userID, itemID)
}

// coverageScore returns 0-100. Query coverage dominates (70%) so that a
// fully matched query scores high even against long item names; name
// coverage (30%) rewards tighter matches.
func coverageScore(queryTokens, nameTokens []string) float64 {
	if len(queryTokens) == 0 || len(nameTokens) == 0 {
		return 0
	}

	queryMatched := countIntersection(queryTokens, nameTokens)
	nameMatched := countIntersection(nameTokens, queryTokens)

	queryCoverage := float64(queryMatched) / float64(len(queryTokens))
	nameCoverage := float64(nameMatched) / float64(len(nameTokens))

	return (queryCoverage*0.70 + nameCoverage*0.30) * 100
}

// tokenize splits a string into normalized lowercase tokens, dropping
// punctuation, stop words and single characters.
func tokenize(s string) []string {
	cleaned := punctuationRegex.ReplaceAllString(strings.ToLower(s), " ")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 1 {
			continue
		}
		if searchStopWords[word] {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens
}

// countIntersection returns how many distinct tokens of a appear in b.
func countIntersection(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}

	seen := make(map[string]bool, len(a))
	count := 0
	for _, t := range a {
		if set[t] && !seen[t] {
			count++
			seen[t] = true
		}
	}
	return count
}
