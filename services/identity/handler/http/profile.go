package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vecivendo/marketplace/internal/pkg/logger"
	"github.com/vecivendo/marketplace/internal/pkg/middleware"
	"github.com/vecivendo/marketplace/internal/pkg/models"
	"github.com/vecivendo/marketplace/internal/utils"
	"github.com/vecivendo/marketplace/services/identity"
)

// ProfileHandler handles HTTP requests for profile operations
type ProfileHandler struct {
	identityUC identity.IdentityUC
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(identityUC identity.IdentityUC) *ProfileHandler {
	return &ProfileHandler{
		identityUC: identityUC,
	}
}

// GetProfile returns the authenticated resident's profile
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)
	if ident == "" {
		return utils.UnauthorizedResponse(c, "Missing identity")
	}

	profile, err := h.identityUC.GetProfile(c.Request().Context(), ident)
	if err != nil {
		if errors.Is(err, identity.ErrProfileNotFound) {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		logger.Error("Failed to retrieve profile",
			logger.ErrorField(err),
		)
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile merges partial profile fields for the authenticated resident
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ident := middleware.IdentityFromContext(c)
	if ident == "" {
		return utils.UnauthorizedResponse(c, "Missing identity")
	}

	var update models.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.identityUC.UpdateProfile(c.Request().Context(), ident, &update)
	if err != nil {
		logger.Error("Failed to update profile",
			logger.ErrorField(err),
			logger.String("identity", ident),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}
