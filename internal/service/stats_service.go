package service

import (
	"context"
	"sort"
	"time"

	"studio-api/internal/model"
	"studio-api/internal/repository"
)

const recentActivityLimit = 10

type ActivityItem struct {
	Type      string    `json:"type"`
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStats struct {
	QuoteTotal        int64          `json:"quote_total"`
	QuoteNew          int64          `json:"quote_new"`
	ConsultationTotal int64          `json:"consultation_total"`
	ConsultationNew   int64          `json:"consultation_new"`
	ReviewsApproved   int64          `json:"reviews_approved"`
	ReviewsPending    int64          `json:"reviews_pending"`
	DesignsPublished  int64          `json:"designs_published"`
	FilesTotal        int64          `json:"files_total"`
	RecentActivity    []ActivityItem `json:"recent_activity"`
}

type StatsService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	quoteRepo        repository.QuoteRepository
	consultationRepo repository.ConsultationRepository
	reviewRepo       repository.ReviewRepository
	designRepo       repository.DesignRepository
	fileRepo         repository.FileRepository
}

func NewStatsService(
	quoteRepo repository.QuoteRepository,
	consultationRepo repository.ConsultationRepository,
	reviewRepo repository.ReviewRepository,
	designRepo repository.DesignRepository,
	fileRepo repository.FileRepository,
) StatsService {
	return &statsService{
		quoteRepo:        quoteRepo,
		consultationRepo: consultationRepo,
		reviewRepo:       reviewRepo,
		designRepo:       designRepo,
		fileRepo:         fileRepo,
	}
}

func (s *statsService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.QuoteTotal, err = s.quoteRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.QuoteNew, err = s.quoteRepo.CountByStatus(ctx, model.ApplicationStatusNew); err != nil {
		return nil, err
	}
	if stats.ConsultationTotal, err = s.consultationRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ConsultationNew, err = s.consultationRepo.CountByStatus(ctx, model.ApplicationStatusNew); err != nil {
		return nil, err
	}
	if stats.ReviewsApproved, err = s.reviewRepo.CountByApproval(ctx, true); err != nil {
		return nil, err
	}
	if stats.ReviewsPending, err = s.reviewRepo.CountByApproval(ctx, false); err != nil {
		return nil, err
	}
	if stats.DesignsPublished, err = s.designRepo.CountPublished(ctx); err != nil {
		return nil, err
	}
	if stats.FilesTotal, err = s.fileRepo.Count(ctx); err != nil {
		return nil, err
	}

	activity, err := s.recentActivity(ctx)
	if err != nil {
		return nil, err
	}
	stats.RecentActivity = activity

	return stats, nil
}

// recentActivity merges the latest quotes, consultations and pending
// reviews into one feed, newest first, capped at recentActivityLimit.
func (s *statsService) recentActivity(ctx context.Context) ([]ActivityItem, error) {
	items := []ActivityItem{}

	quotes, err := s.quoteRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, q := range quotes {
		items = append(items, ActivityItem{
			Type:      "quote",
			ID:        q.ID,
			Title:     q.Name + " / " + q.ProjectType,
			Status:    q.Status,
			CreatedAt: q.CreatedAt,
		})
	}

	consultations, err := s.consultationRepo.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, c := range consultations {
		items = append(items, ActivityItem{
			Type:      "consultation",
			ID:        c.ID,
			Title:     c.FirstName + " " + c.LastName,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}

	reviews, err := s.reviewRepo.ListPending(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	for _, r := range reviews {
		title := "review"
		if r.AuthorName != nil {
			title = "review from " + *r.AuthorName
		}
		items = append(items, ActivityItem{
			Type:      "review",
			ID:        r.ID,
			Title:     title,
			Status:    "pending",
			CreatedAt: r.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if len(items) > recentActivityLimit {
		items = items[:recentActivityLimit]
	}

	return items, nil
}
