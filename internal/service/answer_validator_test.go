package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
)

// newScoredSurvey builds the fixture used across the scoring tests: two
// questions with different bounds and weights, two adjacent result ranges
// covering [0, 20].
func newScoredSurvey() *model.Survey {
	return &model.Survey{
		ID:    1,
		Title: "Stress Check",
		Questions: []model.Question{
			{ID: 10, SurveyID: 1, Prompt: "Sleep quality", MinValue: 0, MaxValue: 10, Weight: 1, Position: 0},
			{ID: 11, SurveyID: 1, Prompt: "Workload", MinValue: 1, MaxValue: 5, Weight: 2, Position: 1},
		},
		ResultRanges: []model.ResultRange{
			{ID: 20, SurveyID: 1, MinScore: 0, MaxScore: 10, Message: "low", Position: 0},
			{ID: 21, SurveyID: 1, MinScore: 11, MaxScore: 20, Message: "high", Position: 1},
		},
	}
}

func TestValidateAnswers(t *testing.T) {
	survey := newScoredSurvey()

	tests := []struct {
		name    string
		answers []dto.AnswerSubmitDTO
		want    map[uint]int
	}{
		{
			name:    "empty submission yields empty map",
			answers: nil,
			want:    map[uint]int{},
		},
		{
			name: "boundary values are inclusive",
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: 10, AnswerValue: 0},
				{QuestionID: 11, AnswerValue: 5},
			},
			want: map[uint]int{10: 0, 11: 5},
		},
		{
			name: "upper boundary accepted",
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: 10, AnswerValue: 10},
				{QuestionID: 11, AnswerValue: 1},
			},
			want: map[uint]int{10: 10, 11: 1},
		},
		{
			name: "partial submission accepted",
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: 11, AnswerValue: 3},
			},
			want: map[uint]int{11: 3},
		},
		{
			name: "duplicate question id keeps the last value",
			answers: []dto.AnswerSubmitDTO{
				{QuestionID: 10, AnswerValue: 2},
				{QuestionID: 10, AnswerValue: 7},
			},
			want: map[uint]int{10: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAnswers(survey, tt.answers)
			if err != nil {
				t.Fatalf("ValidateAnswers() error = %v, want nil", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidateAnswers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateAnswersOutOfRange(t *testing.T) {
	survey := newScoredSurvey()

	tests := []struct {
		name       string
		questionID uint
		value      int
		wantMin    int
		wantMax    int
	}{
		{"one below default min", 10, -1, 0, 10},
		{"one above default max", 10, 11, 0, 10},
		{"one below custom min", 11, 0, 1, 5},
		{"one above custom max", 11, 6, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAnswers(survey, []dto.AnswerSubmitDTO{
				{QuestionID: tt.questionID, AnswerValue: tt.value},
			})
			var oor *OutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("ValidateAnswers() error = %v, want *OutOfRangeError", err)
			}
			if oor.QuestionID != tt.questionID || oor.Value != tt.value {
				t.Errorf("error carries question %d value %d, want question %d value %d",
					oor.QuestionID, oor.Value, tt.questionID, tt.value)
			}
			if oor.Min != tt.wantMin || oor.Max != tt.wantMax {
				t.Errorf("error carries bounds [%d, %d], want [%d, %d]", oor.Min, oor.Max, tt.wantMin, tt.wantMax)
			}
			if got != nil {
				t.Errorf("ValidateAnswers() returned a map alongside an error: %v", got)
			}
		})
	}
}

func TestValidateAnswersUnknownQuestion(t *testing.T) {
	survey := newScoredSurvey()

	// id 99 could well exist in another survey; it still must be rejected here.
	_, err := ValidateAnswers(survey, []dto.AnswerSubmitDTO{
		{QuestionID: 10, AnswerValue: 5},
		{QuestionID: 99, AnswerValue: 3},
	})

	var unknown *UnknownQuestionError
	if !errors.As(err, &unknown) {
		t.Fatalf("ValidateAnswers() error = %v, want *UnknownQuestionError", err)
	}
	if unknown.QuestionID != 99 {
		t.Errorf("error carries question id %d, want 99", unknown.QuestionID)
	}
}

func TestValidateAnswersFirstFailureAborts(t *testing.T) {
	survey := newScoredSurvey()

	got, err := ValidateAnswers(survey, []dto.AnswerSubmitDTO{
		{QuestionID: 10, AnswerValue: 42},
		{QuestionID: 11, AnswerValue: 3},
	})
	if err == nil {
		t.Fatal("ValidateAnswers() = nil error, want out-of-range failure")
	}
	if got != nil {
		t.Errorf("ValidateAnswers() returned partial map %v after failure", got)
	}
}
