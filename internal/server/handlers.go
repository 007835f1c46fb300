package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"smartcareer/internal/domain"
	"smartcareer/internal/recommend"
)

type handlers struct {
	svc         *recommend.Service
	defaultTopN int
	validate    *validator.Validate
	logger      zerolog.Logger
}

func newHandlers(svc *recommend.Service, defaultTopN int, logger zerolog.Logger) *handlers {
	return &handlers{
		svc:         svc,
		defaultTopN: defaultTopN,
		validate:    validator.New(),
		logger:      logger,
	}
}

// recommendRequest is the JSON body for POST /api/recommendations. The
// skill fields are raw comma-separated strings, normalized server-side.
type recommendRequest struct {
	EducationLevel    string `json:"education_level" validate:"required"`
	Major             string `json:"major" validate:"required"`
	TechSkills        string `json:"tech_skills"`
	SoftSkills        string `json:"soft_skills"`
	TargetDomain      string `json:"target_domain"`
	PreferredDuration string `json:"preferred_duration"`
	TopN              int    `json:"top_n" validate:"omitempty,min=1,max=50"`
}

type recommendationDTO struct {
	Title       string  `json:"title"`
	Provider    string  `json:"provider"`
	Level       string  `json:"level"`
	Duration    string  `json:"duration"`
	FitScore    float64 `json:"fit_score"`
	Timeline    string  `json:"timeline"`
	Explanation string  `json:"explanation"`
	Link        string  `json:"link"`
}

type recommendResponse struct {
	Recommendations []recommendationDTO `json:"recommendations"`
	Total           int                 `json:"total"`
	Message         string              `json:"message,omitempty"`
}

func (h *handlers) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = h.defaultTopN
	}
	recs, err := h.svc.Recommend(recommend.Request{
		EducationLevel:    req.EducationLevel,
		Major:             req.Major,
		TechSkillsInput:   req.TechSkills,
		SoftSkillsInput:   req.SoftSkills,
		TargetDomain:      req.TargetDomain,
		PreferredDuration: req.PreferredDuration,
		TopN:              topN,
	})
	if errors.Is(err, recommend.ErrEmptyMajor) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "please enter your major/degree"})
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("recommendation failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "recommendation failed"})
		return
	}

	resp := recommendResponse{
		Recommendations: make([]recommendationDTO, 0, len(recs)),
		Total:           len(recs),
	}
	for _, rec := range recs {
		resp.Recommendations = append(resp.Recommendations, toDTO(rec))
	}
	if len(recs) == 0 {
		resp.Message = "No suitable courses found based on your profile."
	}
	writeJSON(w, http.StatusOK, resp)
}

type courseDTO struct {
	Title     string   `json:"title"`
	Provider  string   `json:"provider"`
	SkillTags []string `json:"skill_tags"`
	Level     string   `json:"level"`
	Duration  string   `json:"duration"`
	Link      string   `json:"link"`
}

func (h *handlers) handleCourses(w http.ResponseWriter, r *http.Request) {
	courses := h.svc.Courses()
	out := make([]courseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, courseDTO{
			Title:     c.Title,
			Provider:  c.Provider,
			SkillTags: c.SkillTags,
			Level:     c.Level.String(),
			Duration:  c.Duration,
			Link:      c.Link,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"courses": out, "total": len(out)})
}

func (h *handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"courses": len(h.svc.Courses()),
	})
}

func toDTO(rec domain.Recommendation) recommendationDTO {
	return recommendationDTO{
		Title:       rec.Course.Title,
		Provider:    rec.Course.Provider,
		Level:       rec.Course.Level.String(),
		Duration:    rec.Course.Duration,
		FitScore:    rec.FitScore,
		Timeline:    string(rec.Timeline),
		Explanation: rec.Explanation,
		Link:        rec.Course.Link,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
