package service

import (
	"errors"
	"testing"
)

func TestGetAllSurveysSummaries(t *testing.T) {
	repo := newFakeSurveyRepo()
	repo.surveys[1] = newScoredSurvey()
	svc := NewSurveyQueryService(repo)

	summaries, err := svc.GetAllSurveys()
	if err != nil {
		t.Fatalf("GetAllSurveys() error = %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("GetAllSurveys() returned %d summaries, want 1", len(summaries))
	}
	if summaries[0].Title != "Stress Check" || summaries[0].QuestionCount != 2 {
		t.Errorf("summary = %+v, want title Stress Check with 2 questions", summaries[0])
	}
}

func TestGetSurveyDetails(t *testing.T) {
	repo := newFakeSurveyRepo()
	repo.surveys[1] = newScoredSurvey()
	svc := NewSurveyQueryService(repo)

	details, err := svc.GetSurveyDetails(1)
	if err != nil {
		t.Fatalf("GetSurveyDetails() error = %v", err)
	}
	if len(details.Questions) != 2 || len(details.ResultRanges) != 2 {
		t.Errorf("details carry %d questions / %d ranges, want 2/2",
			len(details.Questions), len(details.ResultRanges))
	}
	if details.Questions[0].Weight != 1 || details.Questions[1].Weight != 2 {
		t.Errorf("question weights = %d/%d, want 1/2",
			details.Questions[0].Weight, details.Questions[1].Weight)
	}

	_, err = svc.GetSurveyDetails(42)
	var notFound *SurveyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("GetSurveyDetails(42) error = %v, want *SurveyNotFoundError", err)
	}
}
