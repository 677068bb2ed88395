package dto

// QuestionStatsDTO aggregates every recorded answer for one question across
// all persisted responses.
type QuestionStatsDTO struct {
	Average      float64     `json:"average"`
	Min          int         `json:"min"`
	Max          int         `json:"max"`
	Count        int         `json:"count"`
	Distribution map[int]int `json:"distribution"`
}

// SurveyAnalyticsDTO is keyed by question id.
type SurveyAnalyticsDTO map[uint]QuestionStatsDTO
