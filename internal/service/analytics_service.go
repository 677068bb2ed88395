package service

import (
	"fmt"

	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

// AnalyticsService aggregates answer distributions across all persisted
// responses. Plain arithmetic over the recorded answer maps; nothing is
// inferred or modeled.
type AnalyticsService interface {
	SurveyAnalytics() (dto.SurveyAnalyticsDTO, error)
}

type analyticsService struct {
	responseRepo repository.ResponseRepository
}

func NewAnalyticsService(responseRepo repository.ResponseRepository) AnalyticsService {
	return &analyticsService{responseRepo: responseRepo}
}

type questionAccumulator struct {
	total        int
	count        int
	min          int
	max          int
	distribution map[int]int
}

func (s *analyticsService) SurveyAnalytics() (dto.SurveyAnalyticsDTO, error) {
	responses, err := s.responseRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load responses for analytics")
		return nil, fmt.Errorf("error fetching responses: %w", err)
	}

	accumulators := make(map[uint]*questionAccumulator)
	for i := range responses {
		answers, err := decodeAnswers(responses[i].Answers)
		if err != nil {
			log.Warn().Err(err).Uint("responseID", responses[i].ID).Msg("Skipping response with undecodable answer map")
			continue
		}
		for questionID, value := range answers {
			acc, ok := accumulators[questionID]
			if !ok {
				acc = &questionAccumulator{min: value, max: value, distribution: make(map[int]int)}
				accumulators[questionID] = acc
			}
			acc.total += value
			acc.count++
			if value < acc.min {
				acc.min = value
			}
			if value > acc.max {
				acc.max = value
			}
			acc.distribution[value]++
		}
	}

	analytics := make(dto.SurveyAnalyticsDTO, len(accumulators))
	for questionID, acc := range accumulators {
		analytics[questionID] = dto.QuestionStatsDTO{
			Average:      float64(acc.total) / float64(acc.count),
			Min:          acc.min,
			Max:          acc.max,
			Count:        acc.count,
			Distribution: acc.distribution,
		}
	}
	return analytics, nil
}
