package handler

import (
	"github.com/d60-Lab/advice-board/internal/service"
)

// Handler 聚合各 handler 共享的依赖
type Handler struct {
	profileService service.ProfileService
	adviceService  service.AdviceService
}

func New(profileService service.ProfileService, adviceService service.AdviceService) *Handler {
	return &Handler{profileService: profileService, adviceService: adviceService}
}
