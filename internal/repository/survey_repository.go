package repository

import (
	"github.com/nexori/backend/internal/model"
	"gorm.io/gorm"
)

type SurveyRepository interface {
	Create(survey *model.Survey) error
	FindByID(id uint) (*model.Survey, error)
	FindByIDWithDetails(id uint) (*model.Survey, error)
	FindAllWithQuestionCount() ([]struct {
		model.Survey
		QuestionCount int
	}, error)
	Update(survey *model.Survey) error
	ReplaceQuestions(surveyID uint, questions []model.Question) error
	ReplaceResultRanges(surveyID uint, ranges []model.ResultRange) error
	Delete(id uint) error
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(survey *model.Survey) error {
	// GORM creates the associated questions and result ranges in the same
	// insert batch when the slices are populated.
	return r.db.Create(survey).Error
}

func (r *surveyRepository) FindByID(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.First(&survey, id).Error
	return &survey, err
}

func (r *surveyRepository) FindByIDWithDetails(id uint) (*model.Survey, error) {
	var survey model.Survey
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("ResultRanges", func(db *gorm.DB) *gorm.DB {
			return db.Order("result_ranges.position ASC")
		}).
		First(&survey, id).Error
	return &survey, err
}

func (r *surveyRepository) FindAllWithQuestionCount() ([]struct {
	model.Survey
	QuestionCount int
}, error) {
	var results []struct {
		model.Survey
		QuestionCount int
	}
	err := r.db.Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id) as question_count").
		Order("surveys.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *surveyRepository) Update(survey *model.Survey) error {
	return r.db.Save(survey).Error
}

// ReplaceQuestions drops every question of the survey and inserts the given
// set in one transaction. Old question rows are gone afterwards; answer maps
// of already persisted responses keep referencing the dead ids, which is
// acceptable since responses are immutable history.
func (r *surveyRepository) ReplaceQuestions(surveyID uint, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		for i := range questions {
			questions[i].SurveyID = surveyID
			questions[i].Position = i
		}
		return tx.Create(&questions).Error
	})
}

func (r *surveyRepository) ReplaceResultRanges(surveyID uint, ranges []model.ResultRange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_id = ?", surveyID).Delete(&model.ResultRange{}).Error; err != nil {
			return err
		}
		if len(ranges) == 0 {
			return nil
		}
		for i := range ranges {
			ranges[i].SurveyID = surveyID
			ranges[i].Position = i
		}
		return tx.Create(&ranges).Error
	})
}

func (r *surveyRepository) Delete(id uint) error {
	// Questions, result ranges and responses go with the survey via the
	// OnDelete:CASCADE constraints.
	return r.db.Delete(&model.Survey{}, id).Error
}
