package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/savkar_ledger/internal/core/ports/services"
	"github.com/SscSPs/savkar_ledger/internal/dto"
	"github.com/SscSPs/savkar_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// profileHandler handles borrower profiles (occupation, addresses,
// guarantors and payment history).
type profileHandler struct {
	profileService portssvc.ProfileSvcFacade
}

func registerProfileRoutes(rg *gin.RouterGroup, ps portssvc.ProfileSvcFacade) {
	h := &profileHandler{profileService: ps}

	profiles := rg.Group("/profiles")
	{
		profiles.GET("", h.listProfiles)
		profiles.POST("", h.createProfile)
		profiles.PUT("/:id", h.updateProfile)
		profiles.DELETE("/:id", h.deleteProfile)
	}
}

// listProfiles godoc
// @Summary List borrower profiles
// @Tags profiles
// @Produce json
// @Success 200 {array} domain.Profile
// @Failure 500 {object} dto.ErrorResponse "Failed to list profiles"
// @Router /profiles [get]
func (h *profileHandler) listProfiles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	profiles, err := h.profileService.ListProfiles(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Profile", "list profiles")
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// createProfile godoc
// @Summary Create a borrower profile
// @Description loanId may be sent as a string or a number; it is stored as a string.
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body dto.CreateProfileRequest true "Profile details"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create profile"
// @Router /profiles [post]
func (h *profileHandler) createProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	profile, err := h.profileService.CreateProfile(c.Request.Context(), accountID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Profile", "create profile")
		return
	}

	logger.Info("Profile created successfully", slog.String("profile_id", profile.ID), slog.String("loan_id", profile.LoanID.String()))
	c.JSON(http.StatusCreated, profile)
}

// updateProfile godoc
// @Summary Update a borrower profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param profile body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Profile not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to update profile"
// @Router /profiles/{id} [put]
func (h *profileHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Profile", "update profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// deleteProfile godoc
// @Summary Delete a borrower profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to delete profile"
// @Router /profiles/{id} [delete]
func (h *profileHandler) deleteProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID, ok := requestAccount(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteProfile(c.Request.Context(), accountID, c.Param("id")); err != nil {
		respondServiceError(c, logger, err, "Profile", "delete profile")
		return
	}
	c.JSON(http.StatusOK, deleted("Profile"))
}
