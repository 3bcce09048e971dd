package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/advice-board/internal/api/middleware"
	"github.com/d60-Lab/advice-board/internal/ratelimit"
	"github.com/d60-Lab/advice-board/internal/service"
	"github.com/d60-Lab/advice-board/pkg/response"
)

type submitAdviceRequest struct {
	TargetUsername string `json:"target_username" binding:"required"`
	Content        string `json:"content" binding:"required"`
	FromName       string `json:"from_name"`
	IsAnonymous    bool   `json:"is_anonymous"`
}

type deleteAdviceRequest struct {
	ID string `json:"id" binding:"required"`
}

// SubmitAdvice 给某个 handle 留言，无需登录
// @Summary 提交留言
// @Tags advice
// @Accept json
// @Produce json
// @Param request body submitAdviceRequest true "留言"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /api/v1/advice [post]
func (h *Handler) SubmitAdvice(c *gin.Context) {
	var req submitAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "target_username and content are required")
		return
	}
	err := h.adviceService.Submit(c.Request.Context(), ratelimit.OriginKey(c.Request), service.SubmitInput{
		TargetUsername: req.TargetUsername,
		Content:        req.Content,
		FromName:       req.FromName,
		IsAnonymous:    req.IsAnonymous,
	})
	if err != nil {
		switch {
		case errors.Is(err, ratelimit.ErrLimited):
			response.TooManyRequests(c, "rate limit exceeded")
		case errors.Is(err, service.ErrTargetNotFound):
			response.NotFound(c, "target user not found")
		case errors.Is(err, service.ErrEmptyUsername), errors.Is(err, service.ErrEmptyContent):
			response.BadRequest(c, "target_username and content are required")
		default:
			response.InternalError(c, err)
		}
		return
	}
	// 只回执，不回显内容
	response.Success(c, nil)
}

// DeleteAdvice 删除一条自己收到的留言
// @Summary 删除留言
// @Tags advice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body deleteAdviceRequest true "留言 id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/advice/delete [post]
func (h *Handler) DeleteAdvice(c *gin.Context) {
	var req deleteAdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "id is required")
		return
	}
	if err := h.adviceService.Delete(c.Request.Context(), middleware.UserID(c), req.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrAdviceNotFound):
			response.NotFound(c, "not found")
		case errors.Is(err, service.ErrNotOwner):
			response.Forbidden(c, "forbidden")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, nil)
}

// ListAdvice 当前用户收到的留言，时间倒序分页
// @Summary 留言列表
// @Tags advice
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 401 {object} response.Response
// @Router /api/v1/advice [get]
func (h *Handler) ListAdvice(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	list, err := h.adviceService.ListReceived(c.Request.Context(), middleware.UserID(c), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}
