package api

import (
	"regexp"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/advice-board/config"
	_ "github.com/d60-Lab/advice-board/docs"
	"github.com/d60-Lab/advice-board/internal/api/handler"
	"github.com/d60-Lab/advice-board/internal/api/middleware"
	"github.com/d60-Lab/advice-board/internal/auth"
)

var handleRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// NewRouter 组装 gin engine：中间件 → swagger → 业务路由
func NewRouter(cfg *config.Config, h *handler.Handler, provider auth.Provider) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	registerValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AccessLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(middleware.Throttle(cfg.Server.ThrottleRPS, cfg.Server.ThrottleBurst))
	if cfg.Trace.Enabled {
		r.Use(otelgin.Middleware("advice-board"))
	}
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/profiles/:username", h.GetProfile)
		v1.POST("/advice", h.SubmitAdvice)

		authed := v1.Group("")
		authed.Use(middleware.RequireAuth(provider))
		{
			authed.POST("/profile", h.SaveHandle)
			authed.POST("/advice/delete", h.DeleteAdvice)
			authed.GET("/advice", h.ListAdvice)
		}
	}
	return r
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
			return handleRe.MatchString(fl.Field().String())
		})
	}
}
