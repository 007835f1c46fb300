package recommend

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"smartcareer/internal/domain"
)

func testCatalog() []domain.Course {
	return []domain.Course{
		{
			Title:     "Python and SQL Basics",
			Provider:  "Coursera",
			SkillTags: []string{"python", "sql"},
			Level:     domain.LevelBeginner,
			Duration:  "3 months",
			Link:      "https://example.com/basics",
		},
		{
			Title:     "Deep Learning Specialization",
			Provider:  "Coursera",
			SkillTags: []string{"deep learning"},
			Level:     domain.LevelAdvanced,
			Duration:  "5 months",
			Link:      "https://example.com/dl",
		},
		{
			Title:     "Data Analysis with Excel",
			Provider:  "Udemy",
			SkillTags: []string{"excel", "statistics"},
			Level:     domain.LevelIntermediate,
			Duration:  "6 weeks",
			Link:      "https://example.com/excel",
		},
	}
}

func newTestService(t *testing.T, courses []domain.Course) *Service {
	t.Helper()
	svc, err := NewService(courses, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestRecommendBeginnerExcludesAdvanced(t *testing.T) {
	svc := newTestService(t, testCatalog())
	recs, err := svc.Recommend(Request{
		EducationLevel:  "B.Tech",
		Major:           "Information Technology",
		TechSkillsInput: "python",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, r := range recs {
		if r.Course.Level == domain.LevelAdvanced {
			t.Errorf("advanced course %q visible to beginner-tier user", r.Course.Title)
		}
	}

	var basics *domain.Recommendation
	for i := range recs {
		if recs[i].Course.Title == "Python and SQL Basics" {
			basics = &recs[i]
		}
	}
	if basics == nil {
		t.Fatal("beginner course missing from results")
	}
	if basics.Timeline != domain.TimelineShortTerm {
		t.Errorf("Timeline = %v, want short-term", basics.Timeline)
	}
	if !strings.Contains(basics.Explanation, "leverages your skills in python") ||
		!strings.Contains(basics.Explanation, "helps you build sql") {
		t.Errorf("Explanation = %q, want mention of leveraging python and building sql", basics.Explanation)
	}
}

func TestRecommendEmptyMajor(t *testing.T) {
	svc := newTestService(t, testCatalog())
	_, err := svc.Recommend(Request{Major: "   ", TechSkillsInput: "python"})
	if !errors.Is(err, ErrEmptyMajor) {
		t.Fatalf("Recommend() error = %v, want ErrEmptyMajor", err)
	}
}

func TestRecommendIdempotent(t *testing.T) {
	svc := newTestService(t, testCatalog())
	req := Request{
		EducationLevel:  "B.Sc",
		Major:           "Statistics",
		TechSkillsInput: "python, excel",
		SoftSkillsInput: "communication",
		TargetDomain:    "data science",
	}
	a, err := svc.Recommend(req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	b, err := svc.Recommend(req)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated identical requests produced different results")
	}
}

func TestRecommendOrderingAndBound(t *testing.T) {
	svc := newTestService(t, testCatalog())
	recs, err := svc.Recommend(Request{
		Major:           "Computer Science",
		TechSkillsInput: "python, sql, excel, statistics, git, docker",
		TopN:            2,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) > 2 {
		t.Fatalf("len(recs) = %d, want <= 2", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].FitScore > recs[i-1].FitScore {
			t.Errorf("FitScore increased at %d: %v after %v", i, recs[i].FitScore, recs[i-1].FitScore)
		}
	}
}

func TestRecommendTieBreaksByCatalogOrder(t *testing.T) {
	// Two courses with identical documents score identically; the
	// earlier catalog row must come first.
	courses := []domain.Course{
		{Title: "Go Basics", Provider: "First", SkillTags: []string{"go"}, Level: domain.LevelBeginner},
		{Title: "Go Basics", Provider: "Second", SkillTags: []string{"go"}, Level: domain.LevelBeginner},
	}
	svc := newTestService(t, courses)
	recs, err := svc.Recommend(Request{Major: "CS", TechSkillsInput: "go"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len(recs) = %d, want 2", len(recs))
	}
	if recs[0].FitScore != recs[1].FitScore {
		t.Fatalf("scores differ for identical documents: %v vs %v", recs[0].FitScore, recs[1].FitScore)
	}
	if recs[0].Course.Provider != "First" || recs[1].Course.Provider != "Second" {
		t.Errorf("tie not broken by catalog order: got %q then %q",
			recs[0].Course.Provider, recs[1].Course.Provider)
	}
}

func TestRecommendNoEligibleCourses(t *testing.T) {
	courses := []domain.Course{
		{Title: "Advanced Systems", SkillTags: []string{"kernels"}, Level: domain.LevelAdvanced},
	}
	svc := newTestService(t, courses)
	recs, err := svc.Recommend(Request{Major: "CS", TechSkillsInput: "python"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("len(recs) = %d, want 0", len(recs))
	}
}

func TestRecommendUnseenVocabulary(t *testing.T) {
	svc := newTestService(t, testCatalog())
	recs, err := svc.Recommend(Request{
		Major:           "Marine Biology",
		TechSkillsInput: "scuba",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, r := range recs {
		if r.FitScore != 0 {
			// "Marine Biology" shares no catalog vocabulary, but the
			// level word in the synthesized text never appears either;
			// any nonzero score would mean leakage.
			t.Errorf("FitScore = %v for unseen-vocabulary profile, want 0", r.FitScore)
		}
	}
}

func TestRecommendFitScoreRange(t *testing.T) {
	svc := newTestService(t, testCatalog())
	recs, err := svc.Recommend(Request{
		Major:           "Information Technology",
		TechSkillsInput: "python, sql",
		TargetDomain:    "data science",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, r := range recs {
		if r.FitScore < 0 || r.FitScore > 100 {
			t.Errorf("FitScore = %v out of [0,100]", r.FitScore)
		}
	}
}
