package model

import (
	"time"
)

// ResultRange maps a score interval to a recommendation message. Ranges of a
// survey may overlap; resolution walks them in Position order and the first
// range containing the score wins.
type ResultRange struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SurveyID  uint      `json:"survey_id" gorm:"not null;index"`
	MinScore  int       `json:"min_score" gorm:"not null"`
	MaxScore  int       `json:"max_score" gorm:"not null"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Position  int       `json:"position" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Contains reports whether score falls inside [MinScore, MaxScore] inclusive.
func (r *ResultRange) Contains(score int) bool {
	return r.MinScore <= score && score <= r.MaxScore
}
