package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/database"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity/handler/http"
)

// Handler coordinates the HTTP handlers for the identity service
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
	redisClient    *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes all identity handlers
func NewHandler(
	authHandler *http.AuthHandler,
	profileHandler *http.ProfileHandler,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		redisClient:    redisClient,
		cfg:            cfg,
	}
}

// otpRequestIdentifier keys the request-code limiter on client IP plus the
// phone suffix, so one caller cannot burn the window for a whole NAT and a
// single phone cannot be hammered from many payload variants.
func otpRequestIdentifier(c echo.Context) string {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.RealIP()
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))

	var req models.RequestCodeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.RealIP()
	}

	suffix := utils.PhoneSuffix(req.Phone)
	if suffix == "" {
		return c.RealIP()
	}
	return c.RealIP() + ":" + suffix
}

// RegisterRoutes registers the identity routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	otpLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient:    h.redisClient.GetClient(),
		Key:            "rate:otp",
		Limit:          h.cfg.OTP.RequestLimit,
		Period:         time.Duration(h.cfg.OTP.RequestWindowSec) * time.Second,
		IdentifierFunc: otpRequestIdentifier,
	})

	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/request", h.authHandler.RequestCode, otpLimiter)
	authGroup.POST("/otp/verify", h.authHandler.VerifyCode)

	// Protected routes
	protected := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))
	protected.GET("/profile", h.profileHandler.GetProfile)
	protected.PUT("/profile", h.profileHandler.UpdateProfile)
}
