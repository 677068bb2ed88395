package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminUserController struct {
	userAdminService service.UserAdminService
	analyticsService service.AnalyticsService
}

func NewAdminUserController(userAdminService service.UserAdminService, analyticsService service.AnalyticsService) *AdminUserController {
	return &AdminUserController{
		userAdminService: userAdminService,
		analyticsService: analyticsService,
	}
}

// ListUsers godoc
// @Summary (Admin) List all users
// @Tags Admin - Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users [get]
func (c *AdminUserController) ListUsers(ctx *gin.Context) {
	users, err := c.userAdminService.ListUsers()
	if err != nil {
		log.Error().Err(err).Msg("Admin ListUsers: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve users", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// UpdateUserRole godoc
// @Summary (Admin) Set a user's role
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Param role_data body dto.RoleUpdateDTO true "New role (admin or user)"
// @Success 200 {object} dto.UserDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/users/{user_id}/role [patch]
func (c *AdminUserController) UpdateUserRole(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "user_id")
	if !ok {
		return
	}

	var req dto.RoleUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userResp, err := c.userAdminService.UpdateUserRole(userID, req.Role)
	if err != nil {
		var notFound *service.UserNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Admin UpdateUserRole: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to update role", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, userResp)
}

// GetSurveyAnalytics godoc
// @Summary (Admin) Aggregate answer distributions
// @Description Per-question count, average, min, max and value histogram over every persisted response.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SurveyAnalyticsDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /analytics/surveys [get]
func (c *AdminUserController) GetSurveyAnalytics(ctx *gin.Context) {
	analytics, err := c.analyticsService.SurveyAnalytics()
	if err != nil {
		log.Error().Err(err).Msg("Admin GetSurveyAnalytics: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to compute analytics", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
