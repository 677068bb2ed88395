package model

import (
	"time"

	"gorm.io/datatypes"
)

// Response is one respondent's validated, scored submission. Rows are
// immutable once written; there is no update path. Answers holds the
// validated question_id -> answer_value map as a JSON column.
type Response struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	SurveyID       uint           `json:"survey_id" gorm:"not null;index"`
	UserID         *uint          `json:"user_id,omitempty" gorm:"index"`
	User           *User          `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	RespondentName string         `json:"respondent_name" gorm:"not null"`
	Answers        datatypes.JSON `json:"answers" gorm:"not null"`
	TotalScore     int            `json:"total_score" gorm:"not null"`
	Recommendation *string        `json:"recommendation,omitempty" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
}
