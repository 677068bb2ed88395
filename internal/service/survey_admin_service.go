package service

import (
	"errors"
	"fmt"

	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
	"github.com/nexori/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	defaultMinValue = 0
	defaultMaxValue = 10
	defaultWeight   = 1
)

// SurveyAdminService covers the admin-only survey mutations.
type SurveyAdminService interface {
	CreateSurvey(ownerID *uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	UpdateSurvey(surveyID uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error)
	DeleteSurvey(surveyID uint) error
}

type surveyAdminService struct {
	surveyRepo repository.SurveyRepository
}

func NewSurveyAdminService(surveyRepo repository.SurveyRepository) SurveyAdminService {
	return &surveyAdminService{surveyRepo: surveyRepo}
}

func (s *surveyAdminService) CreateSurvey(ownerID *uint, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	surveyModel := model.Survey{
		Title:        req.Title,
		Description:  req.Description,
		OwnerID:      ownerID,
		Questions:    questions,
		ResultRanges: buildResultRanges(req.ResultRanges),
	}

	if err := s.surveyRepo.Create(&surveyModel); err != nil {
		log.Error().Err(err).Msg("Failed to create survey in database")
		return nil, fmt.Errorf("database error creating survey: %w", err)
	}

	created, err := s.surveyRepo.FindByIDWithDetails(surveyModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyModel.ID).Msg("Failed to reload newly created survey")
		return toSurveyDTO(&surveyModel)
	}
	return toSurveyDTO(created)
}

func (s *surveyAdminService) UpdateSurvey(surveyID uint, req dto.SurveyUpdateDTO) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &SurveyNotFoundError{SurveyID: surveyID}
		}
		return nil, fmt.Errorf("fetching survey %d: %w", surveyID, err)
	}

	if req.Title != nil {
		survey.Title = *req.Title
	}
	if req.Description != nil {
		survey.Description = *req.Description
	}
	if err := s.surveyRepo.Update(survey); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to update survey metadata")
		return nil, fmt.Errorf("database error updating survey: %w", err)
	}

	// A non-nil slice wholesale-replaces the current set, matching the
	// cascade/replace lifecycle of questions and ranges.
	if req.Questions != nil {
		questions, err := buildQuestions(*req.Questions)
		if err != nil {
			return nil, err
		}
		if err := s.surveyRepo.ReplaceQuestions(surveyID, questions); err != nil {
			log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to replace survey questions")
			return nil, fmt.Errorf("database error replacing questions: %w", err)
		}
	}
	if req.ResultRanges != nil {
		if err := s.surveyRepo.ReplaceResultRanges(surveyID, buildResultRanges(*req.ResultRanges)); err != nil {
			log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to replace survey result ranges")
			return nil, fmt.Errorf("database error replacing result ranges: %w", err)
		}
	}

	updated, err := s.surveyRepo.FindByIDWithDetails(surveyID)
	if err != nil {
		return nil, fmt.Errorf("reloading survey %d: %w", surveyID, err)
	}
	return toSurveyDTO(updated)
}

func (s *surveyAdminService) DeleteSurvey(surveyID uint) error {
	if _, err := s.surveyRepo.FindByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SurveyNotFoundError{SurveyID: surveyID}
		}
		return fmt.Errorf("fetching survey %d: %w", surveyID, err)
	}
	if err := s.surveyRepo.Delete(surveyID); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to delete survey")
		return fmt.Errorf("database error deleting survey: %w", err)
	}
	log.Info().Uint("surveyID", surveyID).Msg("Survey deleted with its questions, ranges and responses")
	return nil
}

// buildQuestions applies the creation defaults and enforces the
// min_value <= max_value invariant. Position follows declaration order.
func buildQuestions(reqs []dto.QuestionCreateDTO) ([]model.Question, error) {
	questions := make([]model.Question, 0, len(reqs))
	for i, qDto := range reqs {
		question := model.Question{
			Prompt:   qDto.Prompt,
			MinValue: defaultMinValue,
			MaxValue: defaultMaxValue,
			Weight:   defaultWeight,
			Position: i,
		}
		if qDto.MinValue != nil {
			question.MinValue = *qDto.MinValue
		}
		if qDto.MaxValue != nil {
			question.MaxValue = *qDto.MaxValue
		}
		if qDto.Weight != nil {
			question.Weight = *qDto.Weight
		}
		if question.MinValue > question.MaxValue {
			return nil, fmt.Errorf("question %d: min_value %d is greater than max_value %d", i+1, question.MinValue, question.MaxValue)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// buildResultRanges keeps declaration order as resolution order. Overlapping
// or inverted score intervals are accepted as-is; resolution is strictly
// first-match over the stored order.
func buildResultRanges(reqs []dto.ResultRangeCreateDTO) []model.ResultRange {
	ranges := make([]model.ResultRange, 0, len(reqs))
	for i, rDto := range reqs {
		ranges = append(ranges, model.ResultRange{
			MinScore: rDto.MinScore,
			MaxScore: rDto.MaxScore,
			Message:  rDto.Message,
			Position: i,
		})
	}
	return ranges
}
