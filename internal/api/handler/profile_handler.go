package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/advice-board/internal/api/middleware"
	"github.com/d60-Lab/advice-board/internal/service"
	"github.com/d60-Lab/advice-board/pkg/response"
)

type saveHandleRequest struct {
	Username string `json:"username" binding:"required,handle"`
}

// SaveHandle 保存当前用户的公开 handle（懒创建，upsert 以 id 为键）
// @Summary 保存 handle
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body saveHandleRequest true "handle"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/profile [post]
func (h *Handler) SaveHandle(c *gin.Context) {
	var req saveHandleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "username is required")
		return
	}
	username, err := h.profileService.SaveHandle(c.Request.Context(), middleware.UserID(c), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			response.Conflict(c, "that username is already taken")
		case errors.Is(err, service.ErrEmptyUsername):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, gin.H{"username": username})
}

// GetProfile 按 handle 查询 profile（give 页检查目标是否存在，领取前探测可用性）
// @Summary 查询 handle
// @Tags profile
// @Produce json
// @Param username path string true "handle"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/profiles/{username} [get]
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profileService.ResolveHandle(c.Request.Context(), c.Param("username"))
	if err != nil {
		if errors.Is(err, service.ErrTargetNotFound) {
			response.NotFound(c, "username not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"username": p.Username})
}
