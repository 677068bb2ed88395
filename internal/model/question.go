package model

import (
	"time"
)

// Question belongs to exactly one survey. Answers to it must fall inside
// [MinValue, MaxValue] inclusive. Weight multiplies the answer value when the
// total score is computed; it defaults to 1 so unweighted surveys reduce to a
// plain sum.
type Question struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SurveyID  uint      `json:"survey_id" gorm:"not null;index"`
	Prompt    string    `json:"prompt" gorm:"type:text;not null"`
	MinValue  int       `json:"min_value" gorm:"not null;default:0"`
	MaxValue  int       `json:"max_value" gorm:"not null;default:10"`
	Weight    int       `json:"weight" gorm:"not null;default:1"`
	Position  int       `json:"position" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
