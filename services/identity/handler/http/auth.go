package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity"
)

// AuthHandler handles HTTP requests for phone verification
type AuthHandler struct {
	identityUC identity.IdentityUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityUC identity.IdentityUC) *AuthHandler {
	return &AuthHandler{
		identityUC: identityUC,
	}
}

// RequestCode handles verification code requests
func (h *AuthHandler) RequestCode(c echo.Context) error {
	var req models.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for code request",
			logger.ErrorField(err),
			logger.String("endpoint", "RequestCode"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	err := h.identityUC.RequestCode(c.Request().Context(), req.Phone)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidPhone) {
			return utils.BadRequestResponse(c, "Invalid phone number")
		}
		logger.Error("Failed to issue verification code",
			logger.ErrorField(err),
		)
		return utils.BadGatewayResponse(c, "Failed to send verification code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifyCode handles verification code submissions
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.identityUC.VerifyCode(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number")
		case errors.Is(err, identity.ErrNoActiveChallenge):
			return utils.UnauthorizedResponse(c, "No active verification code")
		case errors.Is(err, identity.ErrCodeMismatch):
			return utils.UnauthorizedResponse(c, "Verification code does not match")
		case errors.Is(err, identity.ErrTooManyAttempts):
			return utils.UnauthorizedResponse(c, "Too many verification attempts")
		}
		logger.Error("Failed to verify code",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to verify code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Phone verified", resp)
}
