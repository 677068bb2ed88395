package model

import (
	"time"
)

type Survey struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	Title        string        `json:"title" gorm:"not null;index"`
	Description  string        `json:"description,omitempty"`
	OwnerID      *uint         `json:"owner_id,omitempty" gorm:"index"`
	Questions    []Question    `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ResultRanges []ResultRange `json:"result_ranges,omitempty" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Responses    []Response    `json:"-" gorm:"foreignKey:SurveyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
