package service

import (
	"context"
	"errors"

	"studio-api/internal/model"
	"studio-api/internal/repository"
)

var ErrFAQNotFound = errors.New("faq item not found")

type FAQService interface {
	ListFAQ(ctx context.Context, activeOnly bool) ([]model.FAQItem, error)
	GetFAQ(ctx context.Context, id int64) (*model.FAQItem, error)
	CreateFAQ(ctx context.Context, item *model.FAQItem) (*model.FAQItem, error)
	UpdateFAQ(ctx context.Context, item *model.FAQItem) (*model.FAQItem, error)
	DeleteFAQ(ctx context.Context, id int64) error
}

type faqService struct {
	faqRepo repository.FAQRepository
}

func NewFAQService(faqRepo repository.FAQRepository) FAQService {
	return &faqService{faqRepo: faqRepo}
}

func (s *faqService) ListFAQ(ctx context.Context, activeOnly bool) ([]model.FAQItem, error) {
	return s.faqRepo.List(ctx, activeOnly)
}

func (s *faqService) GetFAQ(ctx context.Context, id int64) (*model.FAQItem, error) {
	item, err := s.faqRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrFAQNotFound
	}
	return item, nil
}

func (s *faqService) CreateFAQ(ctx context.Context, item *model.FAQItem) (*model.FAQItem, error) {
	newID, err := s.faqRepo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return s.faqRepo.FindByID(ctx, newID)
}

func (s *faqService) UpdateFAQ(ctx context.Context, item *model.FAQItem) (*model.FAQItem, error) {
	if _, err := s.faqRepo.FindByID(ctx, item.ID); err != nil {
		return nil, ErrFAQNotFound
	}

	if err := s.faqRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return s.faqRepo.FindByID(ctx, item.ID)
}

func (s *faqService) DeleteFAQ(ctx context.Context, id int64) error {
	if _, err := s.faqRepo.FindByID(ctx, id); err != nil {
		return ErrFAQNotFound
	}
	return s.faqRepo.Delete(ctx, id)
}
