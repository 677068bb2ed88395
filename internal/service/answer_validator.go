package service

import (
	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
)

// ValidateAnswers checks every submitted pair against the survey's question
// set and returns the validated question_id -> answer_value map.
//
// Pairs are processed in submission order. Each one must reference a question
// of this survey (*UnknownQuestionError otherwise) and carry a value within
// the question's inclusive [MinValue, MaxValue] (*OutOfRangeError otherwise).
// A duplicate question id overwrites the earlier value; the last pair wins.
// Partial submissions are fine, unanswered questions simply contribute
// nothing to the score.
//
// Pure function: no I/O, first failure aborts.
func ValidateAnswers(survey *model.Survey, answers []dto.AnswerSubmitDTO) (map[uint]int, error) {
	questionMap := make(map[uint]model.Question, len(survey.Questions))
	for _, q := range survey.Questions {
		questionMap[q.ID] = q
	}

	validated := make(map[uint]int, len(answers))
	for _, ans := range answers {
		question, exists := questionMap[ans.QuestionID]
		if !exists {
			return nil, &UnknownQuestionError{QuestionID: ans.QuestionID}
		}
		if ans.AnswerValue < question.MinValue || ans.AnswerValue > question.MaxValue {
			return nil, &OutOfRangeError{
				QuestionID: ans.QuestionID,
				Value:      ans.AnswerValue,
				Min:        question.MinValue,
				Max:        question.MaxValue,
			}
		}
		validated[ans.QuestionID] = ans.AnswerValue
	}
	return validated, nil
}
