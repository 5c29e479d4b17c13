package service

import (
	"context"
	"strings"
	"time"

	"studio-api/internal/repository"
)

const searchResultLimit = 20

type SearchResult struct {
	Type        string  `json:"type"`
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Relevance   float64 `json:"relevance"`
}

type SearchResponse struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
	Total   int            `json:"total"`
	TookMs  int64          `json:"took_ms"`
}

type SearchService interface {
	Search(ctx context.Context, query string, categoryID *string) (*SearchResponse, error)
}

type searchService struct {
	designRepo  repository.DesignRepository
	packageRepo repository.PackageRepository
}

func NewSearchService(designRepo repository.DesignRepository, packageRepo repository.PackageRepository) SearchService {
	return &searchService{
		designRepo:  designRepo,
		packageRepo: packageRepo,
	}
}

// Search matches published designs and active packages case-insensitively.
// Relevance is a title-match-first heuristic, not a ranking engine.
func (s *searchService) Search(ctx context.Context, query string, categoryID *string) (*SearchResponse, error) {
	start := time.Now()
	results := []SearchResult{}

	designs, err := s.designRepo.Search(ctx, query, categoryID, searchResultLimit)
	if err != nil {
		return nil, err
	}
	for _, d := range designs {
		description := ""
		if d.DescriptionEN != nil {
			description = truncate(*d.DescriptionEN, 160)
		}
		results = append(results, SearchResult{
			Type:        "design",
			ID:          d.ID,
			Title:       d.TitleEN,
			Description: description,
			URL:         "/designs/" + d.Slug,
			Relevance:   relevance(query, d.TitleUK, d.TitleEN),
		})
	}

	// packages are skipped when the caller filters by design category
	if categoryID == nil {
		packages, err := s.packageRepo.Search(ctx, query, searchResultLimit)
		if err != nil {
			return nil, err
		}
		for _, p := range packages {
			description := ""
			if p.SupportEN != nil {
				description = truncate(*p.SupportEN, 160)
			}
			results = append(results, SearchResult{
				Type:        "package",
				ID:          p.ID,
				Title:       p.Name,
				Description: description,
				URL:         "/packages/" + p.Slug,
				Relevance:   relevance(query, p.Name),
			})
		}
	}

	return &SearchResponse{
		Query:   query,
		Results: results,
		Total:   len(results),
		TookMs:  time.Since(start).Milliseconds(),
	}, nil
}

func relevance(query string, titles ...string) float64 {
	q := strings.ToLower(query)
	for _, title := range titles {
		t := strings.ToLower(title)
		if t == q {
			return 1.0
		}
		if strings.HasPrefix(t, q) {
			return 0.8
		}
		if strings.Contains(t, q) {
			return 0.6
		}
	}
	return 0.3
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
