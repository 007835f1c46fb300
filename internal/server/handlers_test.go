package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"smartcareer/internal/domain"
	"smartcareer/internal/recommend"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	courses := []domain.Course{
		{
			Title:     "Python for Everybody",
			Provider:  "Coursera",
			SkillTags: []string{"python", "programming"},
			Level:     domain.LevelBeginner,
			Duration:  "3 months",
			Link:      "https://example.com/py",
		},
		{
			Title:     "Deep Learning Specialization",
			Provider:  "Coursera",
			SkillTags: []string{"deep learning"},
			Level:     domain.LevelAdvanced,
			Duration:  "5 months",
			Link:      "https://example.com/dl",
		},
	}
	svc, err := recommend.NewService(courses, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return New(":0", svc, recommend.DefaultTopN, zerolog.Nop()).Handler
}

func TestHandleRecommend(t *testing.T) {
	h := newTestServer(t)
	body := `{
		"education_level": "B.Tech",
		"major": "Information Technology",
		"tech_skills": "python",
		"target_domain": "data science"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var resp recommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != len(resp.Recommendations) {
		t.Errorf("Total = %d, len = %d", resp.Total, len(resp.Recommendations))
	}
	for _, r := range resp.Recommendations {
		if r.Level == "advanced" {
			t.Errorf("advanced course %q returned for a beginner-tier profile", r.Title)
		}
		if r.Timeline != "short-term" && r.Timeline != "long-term" {
			t.Errorf("Timeline = %q, want short-term or long-term", r.Timeline)
		}
	}
}

func TestHandleRecommendValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing major", `{"education_level": "B.Sc"}`},
		{"blank major", `{"education_level": "B.Sc", "major": "   "}`},
		{"invalid json", `{`},
		{"top_n out of range", `{"education_level": "B.Sc", "major": "CS", "top_n": -3}`},
	}
	h := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/recommendations", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestHandleCourses(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp struct {
		Courses []courseDTO `json:"courses"`
		Total   int         `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("Total = %d, want 2", resp.Total)
	}
	if resp.Courses[0].Title != "Python for Everybody" {
		t.Errorf("Courses[0].Title = %q, want catalog order preserved", resp.Courses[0].Title)
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
