package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/middleware"
	"github.com/nexori/backend/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminSurveyController struct {
	surveyAdminService service.SurveyAdminService
	submissionService  service.SubmissionService
}

func NewAdminSurveyController(surveyAdminService service.SurveyAdminService, submissionService service.SubmissionService) *AdminSurveyController {
	return &AdminSurveyController{
		surveyAdminService: surveyAdminService,
		submissionService:  submissionService,
	}
}

// CreateSurvey godoc
// @Summary (Admin) Create a new survey
// @Description Admin creates a survey with its questions and result ranges in one request. Range declaration order is the resolution order.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey_data body dto.SurveyCreateDTO true "Survey with questions and result ranges"
// @Success 201 {object} dto.SurveyResponseDTO "Survey created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Admin privileges required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [post]
func (c *AdminSurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateSurvey: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	var ownerID *uint
	if user, ok := middleware.CurrentUser(ctx); ok {
		ownerID = &user.ID
	}

	surveyResp, err := c.surveyAdminService.CreateSurvey(ownerID, req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateSurvey: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to create survey", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusCreated, surveyResp)
}

// UpdateSurvey godoc
// @Summary (Admin) Update a survey
// @Description Patches title/description; a provided questions or result_ranges list wholesale-replaces the current set.
// @Tags Admin - Surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Param survey_data body dto.SurveyUpdateDTO true "Fields to update"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/{survey_id} [put]
func (c *AdminSurveyController) UpdateSurvey(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}

	var req dto.SurveyUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin UpdateSurvey: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	surveyResp, err := c.surveyAdminService.UpdateSurvey(surveyID, req)
	if err != nil {
		var notFound *service.SurveyNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Admin UpdateSurvey: Service error")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Failed to update survey", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, surveyResp)
}

// DeleteSurvey godoc
// @Summary (Admin) Delete a survey
// @Description Deletes the survey with all its questions, result ranges and responses.
// @Tags Admin - Surveys
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/{survey_id} [delete]
func (c *AdminSurveyController) DeleteSurvey(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}

	if err := c.surveyAdminService.DeleteSurvey(surveyID); err != nil {
		var notFound *service.SurveyNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Admin DeleteSurvey: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to delete survey", Details: []string{err.Error()}})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetSurveyResponses godoc
// @Summary (Admin) List all responses of a survey
// @Tags Admin - Responses
// @Produce json
// @Security BearerAuth
// @Param survey_id path int true "Survey ID"
// @Success 200 {array} dto.SurveyResponseRecordDTO
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/{survey_id}/responses [get]
func (c *AdminSurveyController) GetSurveyResponses(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}

	responses, err := c.submissionService.GetSurveyResponses(surveyID)
	if err != nil {
		var notFound *service.SurveyNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Admin GetSurveyResponses: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve responses", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetResponse godoc
// @Summary (Admin) Get a single persisted response
// @Tags Admin - Responses
// @Produce json
// @Security BearerAuth
// @Param response_id path int true "Response ID"
// @Success 200 {object} dto.SurveyResponseRecordDTO
// @Failure 404 {object} dto.ErrorResponse "Response not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /responses/{response_id} [get]
func (c *AdminSurveyController) GetResponse(ctx *gin.Context) {
	responseID, ok := parseIDParam(ctx, "response_id")
	if !ok {
		return
	}

	record, err := c.submissionService.GetResponse(responseID)
	if err != nil {
		var notFound *service.ResponseNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("responseID", responseID).Msg("Admin GetResponse: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve response", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, record)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
