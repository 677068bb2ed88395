package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
	"github.com/nexori/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SubmissionService composes validate -> resolve -> persist for survey
// submissions and serves persisted responses back.
type SubmissionService interface {
	Validate(surveyID uint, answers []dto.AnswerSubmitDTO) (map[uint]int, error)
	Submit(surveyID uint, userID *uint, req dto.SubmissionDTO) (*dto.SurveyResponseRecordDTO, error)
	GetResponse(responseID uint) (*dto.SurveyResponseRecordDTO, error)
	GetSurveyResponses(surveyID uint) ([]dto.SurveyResponseRecordDTO, error)
}

type submissionService struct {
	surveyRepo   repository.SurveyRepository
	responseRepo repository.ResponseRepository
}

func NewSubmissionService(surveyRepo repository.SurveyRepository, responseRepo repository.ResponseRepository) SubmissionService {
	return &submissionService{surveyRepo: surveyRepo, responseRepo: responseRepo}
}

// Validate runs the answer validator against the survey's current question
// set without persisting anything.
func (s *submissionService) Validate(surveyID uint, answers []dto.AnswerSubmitDTO) (map[uint]int, error) {
	survey, err := s.loadSurvey(surveyID)
	if err != nil {
		return nil, err
	}
	return ValidateAnswers(survey, answers)
}

// Submit validates the submission, computes the weighted total score,
// resolves the recommendation and writes exactly one immutable Response row.
// Any validator error aborts before the write; nothing is partially
// persisted.
func (s *submissionService) Submit(surveyID uint, userID *uint, req dto.SubmissionDTO) (*dto.SurveyResponseRecordDTO, error) {
	survey, err := s.loadSurvey(surveyID)
	if err != nil {
		return nil, err
	}

	validated, err := ValidateAnswers(survey, req.Answers)
	if err != nil {
		log.Warn().Err(err).Uint("surveyID", surveyID).Msg("Submit: answer validation failed")
		return nil, err
	}

	totalScore := ComputeTotalScore(survey, validated)
	recommendation := ResolveRecommendation(survey, totalScore)

	answersJSON, err := encodeAnswers(validated)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Submit: failed to encode answer map")
		return nil, fmt.Errorf("encoding answers: %w", err)
	}

	response := model.Response{
		SurveyID:       surveyID,
		UserID:         userID,
		RespondentName: req.RespondentName,
		Answers:        answersJSON,
		TotalScore:     totalScore,
		Recommendation: recommendation,
	}
	if err := s.responseRepo.Create(&response); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Submit: failed to persist response")
		return nil, fmt.Errorf("persisting response: %w", err)
	}

	log.Info().
		Uint("surveyID", surveyID).
		Uint("responseID", response.ID).
		Int("totalScore", totalScore).
		Bool("matched", recommendation != nil).
		Msg("Survey submission recorded")

	return toResponseRecordDTO(&response)
}

func (s *submissionService) GetResponse(responseID uint) (*dto.SurveyResponseRecordDTO, error) {
	response, err := s.responseRepo.FindByID(responseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ResponseNotFoundError{ResponseID: responseID}
		}
		return nil, fmt.Errorf("fetching response %d: %w", responseID, err)
	}
	return toResponseRecordDTO(response)
}

func (s *submissionService) GetSurveyResponses(surveyID uint) ([]dto.SurveyResponseRecordDTO, error) {
	if _, err := s.loadSurvey(surveyID); err != nil {
		return nil, err
	}
	responses, err := s.responseRepo.FindAllBySurvey(surveyID)
	if err != nil {
		return nil, fmt.Errorf("fetching responses for survey %d: %w", surveyID, err)
	}

	dtos := make([]dto.SurveyResponseRecordDTO, 0, len(responses))
	for i := range responses {
		record, err := toResponseRecordDTO(&responses[i])
		if err != nil {
			log.Warn().Err(err).Uint("responseID", responses[i].ID).Msg("Skipping response with undecodable answer map")
			continue
		}
		dtos = append(dtos, *record)
	}
	return dtos, nil
}

func (s *submissionService) loadSurvey(surveyID uint) (*model.Survey, error) {
	survey, err := s.surveyRepo.FindByIDWithDetails(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &SurveyNotFoundError{SurveyID: surveyID}
		}
		return nil, fmt.Errorf("fetching survey %d: %w", surveyID, err)
	}
	return survey, nil
}

func encodeAnswers(answers map[uint]int) (datatypes.JSON, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func decodeAnswers(raw datatypes.JSON) (map[uint]int, error) {
	answers := make(map[uint]int)
	if len(raw) == 0 {
		return answers, nil
	}
	if err := json.Unmarshal(raw, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func toResponseRecordDTO(response *model.Response) (*dto.SurveyResponseRecordDTO, error) {
	answers, err := decodeAnswers(response.Answers)
	if err != nil {
		return nil, fmt.Errorf("decoding answers of response %d: %w", response.ID, err)
	}
	return &dto.SurveyResponseRecordDTO{
		ID:             response.ID,
		SurveyID:       response.SurveyID,
		UserID:         response.UserID,
		RespondentName: response.RespondentName,
		Answers:        answers,
		TotalScore:     response.TotalScore,
		Recommendation: response.Recommendation,
		CreatedAt:      response.CreatedAt,
	}, nil
}
