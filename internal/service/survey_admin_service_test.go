package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/nexori/backend/internal/dto"
	"github.com/nexori/backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestCreateSurveyAppliesDefaults(t *testing.T) {
	repo := newFakeSurveyRepo()
	svc := NewSurveyAdminService(repo)

	created, err := svc.CreateSurvey(nil, dto.SurveyCreateDTO{
		Title: "Sleep Check",
		Questions: []dto.QuestionCreateDTO{
			{Prompt: "Hours slept"},
			{Prompt: "Restfulness", MinValue: intPtr(1), MaxValue: intPtr(5), Weight: intPtr(3)},
		},
		ResultRanges: []dto.ResultRangeCreateDTO{
			{MinScore: 0, MaxScore: 20, Message: "ok"},
		},
	})
	if err != nil {
		t.Fatalf("CreateSurvey() error = %v", err)
	}
	if len(created.Questions) != 2 {
		t.Fatalf("created survey has %d questions, want 2", len(created.Questions))
	}

	first := created.Questions[0]
	if first.MinValue != 0 || first.MaxValue != 10 || first.Weight != 1 {
		t.Errorf("defaults not applied: min %d max %d weight %d, want 0/10/1",
			first.MinValue, first.MaxValue, first.Weight)
	}
	second := created.Questions[1]
	if second.MinValue != 1 || second.MaxValue != 5 || second.Weight != 3 {
		t.Errorf("explicit bounds lost: min %d max %d weight %d, want 1/5/3",
			second.MinValue, second.MaxValue, second.Weight)
	}
	if first.Position != 0 || second.Position != 1 {
		t.Errorf("positions %d/%d do not follow declaration order", first.Position, second.Position)
	}
	if len(created.ResultRanges) != 1 || created.ResultRanges[0].Message != "ok" {
		t.Errorf("result ranges = %+v, want the single declared range", created.ResultRanges)
	}
}

func TestCreateSurveyRejectsInvertedBounds(t *testing.T) {
	repo := newFakeSurveyRepo()
	svc := NewSurveyAdminService(repo)

	_, err := svc.CreateSurvey(nil, dto.SurveyCreateDTO{
		Title: "Broken",
		Questions: []dto.QuestionCreateDTO{
			{Prompt: "Inverted", MinValue: intPtr(5), MaxValue: intPtr(2)},
		},
	})
	if err == nil {
		t.Fatal("CreateSurvey() = nil error, want inverted bounds rejection")
	}
	if !strings.Contains(err.Error(), "min_value") {
		t.Errorf("error %q does not name the violated bound", err)
	}
	if len(repo.surveys) != 0 {
		t.Errorf("stored %d surveys after rejected create, want 0", len(repo.surveys))
	}
}

func TestUpdateSurveyReplacesQuestionSet(t *testing.T) {
	repo := newFakeSurveyRepo()
	repo.surveys[1] = newScoredSurvey()
	svc := NewSurveyAdminService(repo)

	newQuestions := []dto.QuestionCreateDTO{
		{Prompt: "Only question", MinValue: intPtr(0), MaxValue: intPtr(3)},
	}
	title := "Renamed"
	updated, err := svc.UpdateSurvey(1, dto.SurveyUpdateDTO{
		Title:     &title,
		Questions: &newQuestions,
	})
	if err != nil {
		t.Fatalf("UpdateSurvey() error = %v", err)
	}
	if updated.Title != "Renamed" {
		t.Errorf("Title = %q, want Renamed", updated.Title)
	}
	if len(updated.Questions) != 1 || updated.Questions[0].Prompt != "Only question" {
		t.Errorf("Questions = %+v, want the replacement set", updated.Questions)
	}
	// Ranges were not part of the patch and must survive untouched.
	if len(updated.ResultRanges) != 2 {
		t.Errorf("ResultRanges = %+v, want the original two ranges", updated.ResultRanges)
	}
}

func TestUpdateSurveyUnknownSurvey(t *testing.T) {
	svc := NewSurveyAdminService(newFakeSurveyRepo())

	title := "whatever"
	_, err := svc.UpdateSurvey(42, dto.SurveyUpdateDTO{Title: &title})
	var notFound *SurveyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("UpdateSurvey() error = %v, want *SurveyNotFoundError", err)
	}
}

func TestDeleteSurvey(t *testing.T) {
	repo := newFakeSurveyRepo()
	repo.surveys[1] = newScoredSurvey()
	svc := NewSurveyAdminService(repo)

	if err := svc.DeleteSurvey(1); err != nil {
		t.Fatalf("DeleteSurvey() error = %v", err)
	}
	if _, ok := repo.surveys[1]; ok {
		t.Error("survey still stored after delete")
	}

	var notFound *SurveyNotFoundError
	if err := svc.DeleteSurvey(1); !errors.As(err, &notFound) {
		t.Errorf("DeleteSurvey() second call error = %v, want *SurveyNotFoundError", err)
	}
}

func TestBuildResultRangesKeepsDeclarationOrder(t *testing.T) {
	ranges := buildResultRanges([]dto.ResultRangeCreateDTO{
		{MinScore: 5, MaxScore: 15, Message: "B"},
		{MinScore: 0, MaxScore: 10, Message: "A"},
	})
	if len(ranges) != 2 {
		t.Fatalf("built %d ranges, want 2", len(ranges))
	}
	for i, r := range ranges {
		if r.Position != i {
			t.Errorf("range %q has position %d, want %d", r.Message, r.Position, i)
		}
	}

	// Overlapping and even inverted intervals pass through; resolution order
	// alone decides the winner.
	inverted := buildResultRanges([]dto.ResultRangeCreateDTO{{MinScore: 10, MaxScore: 0, Message: "never"}})
	if len(inverted) != 1 {
		t.Fatalf("inverted interval was dropped")
	}
	if (&model.ResultRange{MinScore: 10, MaxScore: 0}).Contains(5) {
		t.Error("inverted interval must match no score")
	}
}
