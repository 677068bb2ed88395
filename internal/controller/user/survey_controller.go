package user

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

type SurveyController struct {
	surveyQueryService service.SurveyQueryService
	submissionService  service.SubmissionService
}

func NewSurveyController(surveyQueryService service.SurveyQueryService, submissionService service.SubmissionService) *SurveyController {
	return &SurveyController{
		surveyQueryService: surveyQueryService,
		submissionService:  submissionService,
	}
}

// GetAllSurveys godoc
// @Summary List all surveys
// @Description Short survey listing with question counts.
// @Tags Surveys
// @Produce json
// @Success 200 {array} dto.SurveySummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys [get]
func (c *SurveyController) GetAllSurveys(ctx *gin.Context) {
	surveys, err := c.surveyQueryService.GetAllSurveys()
	if err != nil {
		log.Error().Err(err).Msg("GetAllSurveys: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve surveys", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, surveys)
}

// GetSurveyDetails godoc
// @Summary Get a survey with its questions and result ranges
// @Tags Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Survey ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/{survey_id} [get]
func (c *SurveyController) GetSurveyDetails(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}

	survey, err := c.surveyQueryService.GetSurveyDetails(surveyID)
	if err != nil {
		var notFound *service.SurveyNotFoundError
		if errors.As(err, &notFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("GetSurveyDetails: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve survey", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, survey)
}

// SubmitSurveyResponse godoc
// @Summary Submit answers to a survey
// @Description Validates every answer against its question's bounds, computes the weighted total score, resolves the recommendation and persists the response. A missing recommendation is a valid outcome, not an error.
// @Tags Surveys
// @Accept json
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Param submission body dto.SubmissionDTO true "Respondent name and answers"
// @Success 201 {object} dto.SurveyResponseRecordDTO
// @Failure 400 {object} dto.ErrorResponse "Unknown question or answer out of range"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /surveys/{survey_id}/responses [post]
func (c *SurveyController) SubmitSurveyResponse(ctx *gin.Context) {
	surveyID, ok := parseIDParam(ctx, "survey_id")
	if !ok {
		return
	}

	var req dto.SubmissionDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitSurveyResponse: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	var userID *uint
	if user, authed := middleware.CurrentUser(ctx); authed {
		userID = &user.ID
	}

	record, err := c.submissionService.Submit(surveyID, userID, req)
	if err != nil {
		var notFound *service.SurveyNotFoundError
		var unknownQuestion *service.UnknownQuestionError
		var outOfRange *service.OutOfRangeError
		switch {
		case errors.As(err, &notFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.As(err, &unknownQuestion), errors.As(err, &outOfRange):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			log.Error().Err(err).Uint("surveyID", surveyID).Msg("SubmitSurveyResponse: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit response", Details: []string{err.Error()}})
		}
		return
	}
	ctx.JSON(http.StatusCreated, record)
}

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
