package service

import (
	"math"
	"reflect"
	"testing"

	"github.com/nexori/backend/internal/model"
	"gorm.io/datatypes"
)

func mustEncodeAnswers(t *testing.T, answers map[uint]int) datatypes.JSON {
	t.Helper()
	raw, err := encodeAnswers(answers)
	if err != nil {
		t.Fatalf("encodeAnswers() error = %v", err)
	}
	return raw
}

func TestSurveyAnalytics(t *testing.T) {
	repo := &fakeResponseRepo{}
	repo.responses = []model.Response{
		{ID: 1, SurveyID: 1, Answers: mustEncodeAnswers(t, map[uint]int{10: 5, 11: 3})},
		{ID: 2, SurveyID: 1, Answers: mustEncodeAnswers(t, map[uint]int{10: 7})},
		{ID: 3, SurveyID: 1, Answers: mustEncodeAnswers(t, map[uint]int{10: 5})},
	}
	svc := NewAnalyticsService(repo)

	analytics, err := svc.SurveyAnalytics()
	if err != nil {
		t.Fatalf("SurveyAnalytics() error = %v", err)
	}
	if len(analytics) != 2 {
		t.Fatalf("SurveyAnalytics() covers %d questions, want 2", len(analytics))
	}

	q10 := analytics[10]
	if q10.Count != 3 {
		t.Errorf("question 10 count = %d, want 3", q10.Count)
	}
	if math.Abs(q10.Average-17.0/3.0) > 1e-9 {
		t.Errorf("question 10 average = %f, want %f", q10.Average, 17.0/3.0)
	}
	if q10.Min != 5 || q10.Max != 7 {
		t.Errorf("question 10 min/max = %d/%d, want 5/7", q10.Min, q10.Max)
	}
	if !reflect.DeepEqual(q10.Distribution, map[int]int{5: 2, 7: 1}) {
		t.Errorf("question 10 distribution = %v, want map[5:2 7:1]", q10.Distribution)
	}

	q11 := analytics[11]
	if q11.Count != 1 || q11.Average != 3 || q11.Min != 3 || q11.Max != 3 {
		t.Errorf("question 11 stats = %+v, want count 1 avg/min/max 3", q11)
	}
}

func TestSurveyAnalyticsEmpty(t *testing.T) {
	svc := NewAnalyticsService(&fakeResponseRepo{})

	analytics, err := svc.SurveyAnalytics()
	if err != nil {
		t.Fatalf("SurveyAnalytics() error = %v, want empty result without error", err)
	}
	if len(analytics) != 0 {
		t.Errorf("SurveyAnalytics() = %v, want empty map", analytics)
	}
}

func TestSurveyAnalyticsSkipsUndecodableAnswerMaps(t *testing.T) {
	repo := &fakeResponseRepo{}
	repo.responses = []model.Response{
		{ID: 1, SurveyID: 1, Answers: datatypes.JSON(`not json`)},
		{ID: 2, SurveyID: 1, Answers: mustEncodeAnswers(t, map[uint]int{10: 4})},
	}
	svc := NewAnalyticsService(repo)

	analytics, err := svc.SurveyAnalytics()
	if err != nil {
		t.Fatalf("SurveyAnalytics() error = %v, undecodable rows must be skipped", err)
	}
	if len(analytics) != 1 || analytics[10].Count != 1 {
		t.Errorf("SurveyAnalytics() = %v, want stats of the single decodable response", analytics)
	}
}
