package dto

import "time"

// AnswerSubmitDTO is one (question_id, answer_value) pair of a submission.
type AnswerSubmitDTO struct {
	QuestionID  uint `json:"question_id" binding:"required"`
	AnswerValue int  `json:"answer_value"`
}

// SubmissionDTO is the request body for submitting answers to a survey.
type SubmissionDTO struct {
	RespondentName string            `json:"respondent_name" binding:"required"`
	Answers        []AnswerSubmitDTO `json:"answers" binding:"required,min=1,dive"`
}

// SurveyResponseRecordDTO is a persisted submission returned to clients.
// Recommendation deliberately has no omitempty: "no range matched" is a valid
// outcome and must be visible as an explicit null, not an error.
type SurveyResponseRecordDTO struct {
	ID             uint         `json:"id"`
	SurveyID       uint         `json:"survey_id"`
	UserID         *uint        `json:"user_id,omitempty"`
	RespondentName string       `json:"respondent_name"`
	Answers        map[uint]int `json:"answers"`
	TotalScore     int          `json:"total_score"`
	Recommendation *string      `json:"recommendation"`
	CreatedAt      time.Time    `json:"created_at"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
