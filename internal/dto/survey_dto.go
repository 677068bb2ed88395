package dto

import "time"

// QuestionCreateDTO is used within survey create/update payloads. MinValue,
// MaxValue and Weight are optional; the service applies defaults of 0, 10
// and 1 respectively.
type QuestionCreateDTO struct {
	Prompt   string `json:"prompt" binding:"required"`
	MinValue *int   `json:"min_value"`
	MaxValue *int   `json:"max_value"`
	Weight   *int   `json:"weight"`
}

// ResultRangeCreateDTO declares one score interval. Declaration order in the
// slice is the resolution order.
type ResultRangeCreateDTO struct {
	MinScore int    `json:"min_score"`
	MaxScore int    `json:"max_score"`
	Message  string `json:"message" binding:"required"`
}

// SurveyCreateDTO is for admins creating a survey with its questions and
// result ranges in one shot.
type SurveyCreateDTO struct {
	Title        string                 `json:"title" binding:"required"`
	Description  string                 `json:"description,omitempty"`
	Questions    []QuestionCreateDTO    `json:"questions" binding:"required,min=1,dive"`
	ResultRanges []ResultRangeCreateDTO `json:"result_ranges" binding:"omitempty,dive"`
}

// SurveyUpdateDTO patches survey metadata. A non-nil Questions or
// ResultRanges slice wholesale-replaces the survey's current set.
type SurveyUpdateDTO struct {
	Title        *string                 `json:"title"`
	Description  *string                 `json:"description"`
	Questions    *[]QuestionCreateDTO    `json:"questions" binding:"omitempty,dive"`
	ResultRanges *[]ResultRangeCreateDTO `json:"result_ranges" binding:"omitempty,dive"`
}

type QuestionResponseDTO struct {
	ID       uint   `json:"id"`
	SurveyID uint   `json:"survey_id"`
	Prompt   string `json:"prompt"`
	MinValue int    `json:"min_value"`
	MaxValue int    `json:"max_value"`
	Weight   int    `json:"weight"`
	Position int    `json:"position"`
}

type ResultRangeResponseDTO struct {
	ID       uint   `json:"id"`
	SurveyID uint   `json:"survey_id"`
	MinScore int    `json:"min_score"`
	MaxScore int    `json:"max_score"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

// SurveyResponseDTO is the full survey detail, questions and ranges included.
type SurveyResponseDTO struct {
	ID           uint                     `json:"id"`
	Title        string                   `json:"title"`
	Description  string                   `json:"description,omitempty"`
	OwnerID      *uint                    `json:"owner_id,omitempty"`
	Questions    []QuestionResponseDTO    `json:"questions,omitempty"`
	ResultRanges []ResultRangeResponseDTO `json:"result_ranges,omitempty"`
	CreatedAt    time.Time                `json:"created_at"`
}

// SurveySummaryDTO is used for the public survey listing.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}
