package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/advice-board/internal/auth"
	"github.com/d60-Lab/advice-board/pkg/response"
)

// UserIDKey 经过认证后写入 gin.Context 的用户 id key
const UserIDKey = "user_id"

// RequireAuth 解析 Authorization: Bearer <token> 并把用户 id 放进上下文
func RequireAuth(provider auth.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, "unauthorized")
			c.Abort()
			return
		}
		userID, err := provider.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "invalid auth token")
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID 取出认证中间件写入的用户 id
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
