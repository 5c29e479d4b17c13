package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"studio-api/internal/model"
	"studio-api/internal/repository"
)

var (
	ErrContentNotFound = errors.New("content block not found")
	ErrPolicyNotFound  = errors.New("policy not found")
)

// PublicConfig is what the frontend bootstraps from.
type PublicConfig struct {
	AppName         string            `json:"app_name"`
	DefaultLanguage string            `json:"default_language"`
	Languages       []string          `json:"languages"`
	MaintenanceMode bool              `json:"maintenance_mode"`
	Settings        map[string]string `json:"settings"`
}

type ContentService interface {
	ListBlocks(ctx context.Context) ([]model.ContentBlock, error)
	GetBlock(ctx context.Context, key string) (*model.ContentBlock, error)
	CreateBlock(ctx context.Context, block *model.ContentBlock) (*model.ContentBlock, error)
	UpdateBlock(ctx context.Context, block *model.ContentBlock) (*model.ContentBlock, error)
	DeleteBlock(ctx context.Context, key string) error
	GetContactInfo(ctx context.Context) (*model.ContactInfo, error)
	UpdateContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error)
	ListPolicies(ctx context.Context, activeOnly bool) ([]model.Policy, error)
	GetPolicy(ctx context.Context, policyType string) (*model.Policy, error)
	CreatePolicy(ctx context.Context, policy *model.Policy) (*model.Policy, error)
	UpdatePolicy(ctx context.Context, policy *model.Policy) (*model.Policy, error)
	GetPublicConfig(ctx context.Context, appName string) (*PublicConfig, error)
}

type contentService struct {
	contentRepo  repository.ContentRepository
	settingsRepo repository.SettingsRepository
}

func NewContentService(contentRepo repository.ContentRepository, settingsRepo repository.SettingsRepository) ContentService {
	return &contentService{
		contentRepo:  contentRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *contentService) ListBlocks(ctx context.Context) ([]model.ContentBlock, error) {
	return s.contentRepo.ListBlocks(ctx)
}

func (s *contentService) GetBlock(ctx context.Context, key string) (*model.ContentBlock, error) {
	block, err := s.contentRepo.FindBlockByKey(ctx, key)
	if err != nil {
		return nil, ErrContentNotFound
	}
	return block, nil
}

func (s *contentService) CreateBlock(ctx context.Context, block *model.ContentBlock) (*model.ContentBlock, error) {
	if _, err := s.contentRepo.CreateBlock(ctx, block); err != nil {
		return nil, err
	}
	return s.contentRepo.FindBlockByKey(ctx, block.Key)
}

func (s *contentService) UpdateBlock(ctx context.Context, block *model.ContentBlock) (*model.ContentBlock, error) {
	if _, err := s.contentRepo.FindBlockByKey(ctx, block.Key); err != nil {
		return nil, ErrContentNotFound
	}

	if err := s.contentRepo.UpdateBlock(ctx, block); err != nil {
		return nil, err
	}

	return s.contentRepo.FindBlockByKey(ctx, block.Key)
}

func (s *contentService) DeleteBlock(ctx context.Context, key string) error {
	if _, err := s.contentRepo.FindBlockByKey(ctx, key); err != nil {
		return ErrContentNotFound
	}
	return s.contentRepo.DeleteBlock(ctx, key)
}

func (s *contentService) GetContactInfo(ctx context.Context) (*model.ContactInfo, error) {
	info, err := s.settingsRepo.GetContactInfo(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return s.settingsRepo.CreateEmptyContactInfo(ctx)
	}
	return info, err
}

func (s *contentService) UpdateContactInfo(ctx context.Context, info *model.ContactInfo) (*model.ContactInfo, error) {
	existing, err := s.GetContactInfo(ctx)
	if err != nil {
		return nil, err
	}

	info.ID = existing.ID
	if err := s.settingsRepo.UpdateContactInfo(ctx, info); err != nil {
		return nil, err
	}

	return s.settingsRepo.GetContactInfo(ctx)
}

func (s *contentService) ListPolicies(ctx context.Context, activeOnly bool) ([]model.Policy, error) {
	return s.settingsRepo.ListPolicies(ctx, activeOnly)
}

func (s *contentService) GetPolicy(ctx context.Context, policyType string) (*model.Policy, error) {
	policy, err := s.settingsRepo.FindPolicyByType(ctx, policyType)
	if err != nil {
		return nil, ErrPolicyNotFound
	}
	return policy, nil
}

func (s *contentService) CreatePolicy(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	if policy.Version == 0 {
		policy.Version = 1
	}
	if _, err := s.settingsRepo.CreatePolicy(ctx, policy); err != nil {
		return nil, err
	}
	return s.settingsRepo.FindPolicyByType(ctx, policy.Type)
}

func (s *contentService) UpdatePolicy(ctx context.Context, policy *model.Policy) (*model.Policy, error) {
	if _, err := s.settingsRepo.FindPolicyByType(ctx, policy.Type); err != nil {
		return nil, ErrPolicyNotFound
	}

	if err := s.settingsRepo.UpdatePolicy(ctx, policy); err != nil {
		return nil, err
	}

	return s.settingsRepo.FindPolicyByType(ctx, policy.Type)
}

// GetPublicConfig merges static app config with is_public site settings.
// maintenance_mode is coerced to bool from whatever string it was stored as.
func (s *contentService) GetPublicConfig(ctx context.Context, appName string) (*PublicConfig, error) {
	settings, err := s.settingsRepo.ListPublicSettings(ctx)
	if err != nil {
		return nil, err
	}

	cfg := &PublicConfig{
		AppName:         appName,
		DefaultLanguage: "uk",
		Languages:       []string{"uk", "en"},
		Settings:        make(map[string]string, len(settings)),
	}

	for _, setting := range settings {
		value := ""
		if setting.Value != nil {
			value = *setting.Value
		}
		cfg.Settings[setting.Category+"."+setting.Key] = value

		if setting.Key == "maintenance_mode" {
			switch strings.ToLower(value) {
			case "1", "true", "yes", "on":
				cfg.MaintenanceMode = true
			}
		}
	}

	return cfg, nil
}
