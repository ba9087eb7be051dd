package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SwiftEdgeIT/swiftedge_portal/internal/apperrors"
	portssvc "github.com/SwiftEdgeIT/swiftedge_portal/internal/core/ports/services"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/dto"
	"github.com/SwiftEdgeIT/swiftedge_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// userHandler handles the signed-in client's own profile and currency
// preference.
type userHandler struct {
	userService    portssvc.UserSvcFacade
	pricingService portssvc.PricingSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ps portssvc.PricingSvcFacade) *userHandler {
	return &userHandler{
		userService:    us,
		pricingService: ps,
	}
}

// registerUserRoutes registers the authenticated profile routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, pricingService portssvc.PricingSvcFacade) {
	h := newUserHandler(userService, pricingService)

	users := rg.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
		users.PUT("/me/currency", h.setCurrencyPreference)
	}
}

// getMe godoc
// @Summary Get the signed-in client's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Error("Failed to get user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateMe godoc
// @Summary Update the signed-in client's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me [put]
func (h *userHandler) updateMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to update user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// setCurrencyPreference godoc
// @Summary Pin the display currency
// @Description Saves the client's display currency and disables geo auto-detection
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.SetCurrencyPreferenceRequest true "Currency code"
// @Success 200 {object} dto.PreferredCurrencyResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /users/me/currency [put]
func (h *userHandler) setCurrencyPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SetCurrencyPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.pricingService.SetPreferredCurrency(c.Request.Context(), userID, req.Currency); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency code"})
			return
		}
		logger.Error("Failed to save currency preference", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		return
	}

	c.JSON(http.StatusOK, dto.PreferredCurrencyResponse{
		Currency: req.Currency,
		Source:   portssvc.CurrencySourcePreference,
	})
}
