package service

import (
	"github.com/nexori/backend/internal/model"
)

// ComputeTotalScore sums answer_value * question.Weight over the validated
// map. Weight defaults to 1 at creation time, so surveys that never set
// weights get a plain sum. Integer addition commutes, so iteration order of
// the map cannot change the result.
//
// The map must come from ValidateAnswers; unknown question ids are skipped
// here rather than re-checked.
func ComputeTotalScore(survey *model.Survey, validated map[uint]int) int {
	weights := make(map[uint]int, len(survey.Questions))
	for _, q := range survey.Questions {
		weights[q.ID] = q.Weight
	}

	total := 0
	for questionID, value := range validated {
		if weight, ok := weights[questionID]; ok {
			total += value * weight
		}
	}
	return total
}

// ResolveRecommendation walks the survey's result ranges in their stored
// declaration order and returns the message of the first range containing
// totalScore. Overlapping ranges are allowed; first declared wins. A nil
// return means no range matched, which is a valid terminal outcome, not an
// error.
func ResolveRecommendation(survey *model.Survey, totalScore int) *string {
	for i := range survey.ResultRanges {
		if survey.ResultRanges[i].Contains(totalScore) {
			message := survey.ResultRanges[i].Message
			return &message
		}
	}
	return nil
}
