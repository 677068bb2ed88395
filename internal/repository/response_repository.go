package repository

import (
	"github.com/nexori/backend/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(response *model.Response) error
	FindByID(id uint) (*model.Response, error)
	FindAllBySurvey(surveyID uint) ([]model.Response, error)
	FindAll() ([]model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) Create(response *model.Response) error {
	return r.db.Create(response).Error
}

func (r *responseRepository) FindByID(id uint) (*model.Response, error) {
	var response model.Response
	if err := r.db.First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

func (r *responseRepository) FindAllBySurvey(surveyID uint) ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Where("survey_id = ?", surveyID).Order("created_at DESC").Find(&responses).Error
	return responses, err
}

func (r *responseRepository) FindAll() ([]model.Response, error) {
	var responses []model.Response
	err := r.db.Order("created_at DESC").Find(&responses).Error
	return responses, err
}
