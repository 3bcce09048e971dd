package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/advice-board/internal/model"
	"github.com/d60-Lab/advice-board/internal/ratelimit"
	"github.com/d60-Lab/advice-board/internal/repository"
)

// SubmitInput 一次留言提交
type SubmitInput struct {
	TargetUsername string
	Content        string
	FromName       string
	IsAnonymous    bool
}

// AdviceService 留言的提交、删除与查询
type AdviceService interface {
	// Submit 限流 → 解析目标 handle → 落库。匿名时 from_name 一律置空。
	Submit(ctx context.Context, originKey string, in SubmitInput) error
	// Delete 只有留言的接收者本人可以删除。
	Delete(ctx context.Context, callerID, adviceID string) error
	// ListReceived 按时间倒序分页返回 profileID 收到的留言。
	ListReceived(ctx context.Context, profileID string, page, pageSize int) ([]*model.Advice, error)
}

type adviceService struct {
	adviceRepo  repository.AdviceRepository
	profileRepo repository.ProfileRepository
	limiter     ratelimit.Limiter
}

func NewAdviceService(adviceRepo repository.AdviceRepository, profileRepo repository.ProfileRepository, limiter ratelimit.Limiter) AdviceService {
	return &adviceService{adviceRepo: adviceRepo, profileRepo: profileRepo, limiter: limiter}
}

func (s *adviceService) Submit(ctx context.Context, originKey string, in SubmitInput) error {
	// 限流在所有校验之前：失败的尝试同样占用配额
	if err := s.limiter.Allow(ctx, originKey); err != nil {
		return err
	}

	if strings.TrimSpace(in.TargetUsername) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(in.Content) == "" {
		return ErrEmptyContent
	}

	target, err := s.profileRepo.GetByUsername(ctx, in.TargetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTargetNotFound
		}
		return err
	}

	var fromName *string
	if !in.IsAnonymous {
		if name := strings.TrimSpace(in.FromName); name != "" {
			fromName = &name
		}
	}

	a := &model.Advice{
		// 展示名取存储里的规范写法，id 在此刻钉死
		TargetUsername:  target.Username,
		TargetProfileID: target.ID,
		Content:         in.Content,
		FromName:        fromName,
		IsAnonymous:     in.IsAnonymous,
	}
	return s.adviceRepo.Create(ctx, a)
}

func (s *adviceService) Delete(ctx context.Context, callerID, adviceID string) error {
	a, err := s.adviceRepo.GetByID(ctx, adviceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdviceNotFound
		}
		return err
	}
	if !OwnsAdvice(callerID, a.TargetProfileID) {
		return ErrNotOwner
	}
	return s.adviceRepo.DeleteByID(ctx, a.ID)
}

func (s *adviceService) ListReceived(ctx context.Context, profileID string, page, pageSize int) ([]*model.Advice, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.adviceRepo.ListByProfileID(ctx, profileID, offset, pageSize)
}
