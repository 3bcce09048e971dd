package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/advice-board/internal/model"
	"github.com/d60-Lab/advice-board/internal/repository"
)

// ProfileService handle 的保存与查询
type ProfileService interface {
	// SaveHandle 为 userID 保存公开 handle。同一人重复保存同名幂等；
	// 撞上别人的 handle 返回 ErrUsernameTaken。
	SaveHandle(ctx context.Context, userID, username string) (string, error)
	// ResolveHandle 按 handle 查 profile，不存在返回 ErrTargetNotFound。
	ResolveHandle(ctx context.Context, username string) (*model.Profile, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) SaveHandle(ctx context.Context, userID, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	p := &model.Profile{ID: userID, Username: username}
	if err := s.profileRepo.Upsert(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return "", ErrUsernameTaken
		}
		return "", err
	}
	return username, nil
}

func (s *profileService) ResolveHandle(ctx context.Context, username string) (*model.Profile, error) {
	p, err := s.profileRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTargetNotFound
		}
		return nil, err
	}
	return p, nil
}
