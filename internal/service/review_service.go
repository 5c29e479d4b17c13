package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"studio-api/internal/events"
	"studio-api/internal/model"
	"studio-api/internal/repository"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("a review from this author already exists")
)

type AuthoredReviewInput struct {
	UserID  int64
	TextUK  string
	TextEN  string
	Rating  int
	Company *string
}

type AnonymousReviewInput struct {
	AuthorName  string
	AuthorEmail string
	TextUK      string
	TextEN      string
	Rating      int
	Company     *string
}

type ReviewService interface {
	ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, int64, error)
	ListPublicReviews(ctx context.Context, skip, limit int) ([]model.Review, int64, error)
	ListPendingReviews(ctx context.Context, limit int) ([]model.Review, error)
	CreateAuthoredReview(ctx context.Context, input AuthoredReviewInput) (*model.Review, error)
	CreateAnonymousReview(ctx context.Context, input AnonymousReviewInput) (*model.Review, error)
	ApproveReview(ctx context.Context, id int64, approvedByID int64) (*model.Review, error)
	RejectReview(ctx context.Context, id int64) error
	UpdateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	publisher  events.EventPublisher
}

func NewReviewService(reviewRepo repository.ReviewRepository, publisher events.EventPublisher) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		publisher:  publisher,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, filter repository.ReviewFilter) ([]model.Review, int64, error) {
	return s.reviewRepo.List(ctx, filter)
}

func (s *reviewService) ListPublicReviews(ctx context.Context, skip, limit int) ([]model.Review, int64, error) {
	return s.reviewRepo.List(ctx, repository.ReviewFilter{ApprovedOnly: true, Skip: skip, Limit: limit})
}

func (s *reviewService) ListPendingReviews(ctx context.Context, limit int) ([]model.Review, error) {
	return s.reviewRepo.ListPending(ctx, limit)
}

// CreateAuthoredReview stores a review from a logged-in user. One review
// per user, approved immediately.
func (s *reviewService) CreateAuthoredReview(ctx context.Context, input AuthoredReviewInput) (*model.Review, error) {
	exists, err := s.reviewRepo.ExistsForUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewAlreadyExists
	}

	now := time.Now()
	review := &model.Review{
		UserID:     &input.UserID,
		TextUK:     input.TextUK,
		TextEN:     input.TextEN,
		Rating:     input.Rating,
		Company:    input.Company,
		IsApproved: true,
		ApprovedAt: &now,
	}

	newID, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	return s.reviewRepo.FindByID(ctx, newID)
}

// CreateAnonymousReview stores a visitor review held for moderation. One
// review per email. Admins are notified through the mailer worker.
func (s *reviewService) CreateAnonymousReview(ctx context.Context, input AnonymousReviewInput) (*model.Review, error) {
	exists, err := s.reviewRepo.ExistsForEmail(ctx, input.AuthorEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrReviewAlreadyExists
	}

	review := &model.Review{
		AuthorName:  &input.AuthorName,
		AuthorEmail: &input.AuthorEmail,
		TextUK:      input.TextUK,
		TextEN:      input.TextEN,
		Rating:      input.Rating,
		Company:     input.Company,
	}

	newID, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		return nil, err
	}

	created, err := s.reviewRepo.FindByID(ctx, newID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishReviewSubmitted(created); err != nil {
			slog.WarnContext(ctx, "Failed to publish review.submitted", "review_id", created.ID, "error", err)
		}
	}

	return created, nil
}

func (s *reviewService) ApproveReview(ctx context.Context, id int64, approvedByID int64) (*model.Review, error) {
	if _, err := s.reviewRepo.FindByID(ctx, id); err != nil {
		return nil, ErrReviewNotFound
	}

	if err := s.reviewRepo.Approve(ctx, id, approvedByID, time.Now()); err != nil {
		return nil, err
	}

	return s.reviewRepo.FindByID(ctx, id)
}

// RejectReview drops the review entirely.
func (s *reviewService) RejectReview(ctx context.Context, id int64) error {
	if _, err := s.reviewRepo.FindByID(ctx, id); err != nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(ctx, id)
}

func (s *reviewService) UpdateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if _, err := s.reviewRepo.FindByID(ctx, review.ID); err != nil {
		return nil, ErrReviewNotFound
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return s.reviewRepo.FindByID(ctx, review.ID)
}

func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	if _, err := s.reviewRepo.FindByID(ctx, id); err != nil {
		return ErrReviewNotFound
	}
	return s.reviewRepo.Delete(ctx, id)
}
