package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
	"github.com/nexori/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SurveyQueryService serves the public, read-only survey views.
type SurveyQueryService interface {
	GetAllSurveys() ([]dto.SurveySummaryDTO, error)
	GetSurveyDetails(surveyID uint) (*dto.SurveyResponseDTO, error)
}

type surveyQueryService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyQueryService(surveyRepo repository.SurveyRepository) SurveyQueryService {
	return &surveyQueryService{surveyRepo: surveyRepo}
}

func (s *surveyQueryService) GetAllSurveys() ([]dto.SurveySummaryDTO, error) {
	surveysWithCount, err := s.surveyRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list surveys with question count")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	dtos := make([]dto.SurveySummaryDTO, 0, len(surveysWithCount))
	for _, swc := range surveysWithCount {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:            swc.Survey.ID,
			Title:         swc.Survey.Title,
			Description:   swc.Survey.Description,
			QuestionCount: swc.QuestionCount,
			CreatedAt:     swc.Survey.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *surveyQueryService) GetSurveyDetails(surveyID uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithDetails(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &SurveyNotFoundError{SurveyID: surveyID}
		}
		return nil, fmt.Errorf("fetching survey %d: %w", surveyID, err)
	}
	return toSurveyDTO(survey)
}

func toSurveyDTO(survey *model.Survey) (*dto.SurveyResponseDTO, error) {
	var resp dto.SurveyResponseDTO
	if err := copier.Copy(&resp, survey); err != nil {
		log.Error().Err(err).Msg("Failed to copy Survey model to SurveyResponseDTO")
		return nil, fmt.Errorf("error preparing survey response: %w", err)
	}
	return &resp, nil
}
