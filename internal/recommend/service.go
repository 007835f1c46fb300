package recommend

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"smartcareer/internal/domain"
	"smartcareer/internal/profile"
)

// DefaultTopN is the number of recommendations returned when the
// request does not ask for a specific count.
const DefaultTopN = 7

// ErrEmptyMajor rejects a request whose major field is blank. It is a
// user-input problem, recovered by prompting for a correction; no
// scoring happens.
var ErrEmptyMajor = errors.New("major must not be empty")

// Request carries the six raw profile fields plus the result bound.
// Skill fields are the raw comma-separated strings as entered.
type Request struct {
	EducationLevel    string
	Major             string
	TechSkillsInput   string
	SoftSkillsInput   string
	TargetDomain      string
	PreferredDuration string
	TopN              int
}

// Service matches user profiles against the catalog. The catalog and
// its vector space are fixed at construction; Recommend is safe for
// concurrent use.
type Service struct {
	courses []domain.Course
	space   *Space
	logger  zerolog.Logger
}

// NewService builds the fit-once vector space over courses and returns
// a ready recommender.
func NewService(courses []domain.Course, logger zerolog.Logger) (*Service, error) {
	space, err := BuildSpace(courses)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int("courses", len(courses)).
		Int("vocabulary", space.vectorizer.Dimension()).
		Msg("vector space built")
	return &Service{courses: courses, space: space, logger: logger}, nil
}

// Recommend scores the profile against every catalog course, filters by
// level compatibility, and returns the top courses ordered by
// descending fit score. An empty result is a valid outcome, not an
// error.
func (s *Service) Recommend(req Request) ([]domain.Recommendation, error) {
	if strings.TrimSpace(req.Major) == "" {
		return nil, ErrEmptyMajor
	}
	topN := req.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	tech := profile.NormalizeList(req.TechSkillsInput)
	soft := profile.NormalizeList(req.SoftSkillsInput)
	p := domain.UserProfile{
		EducationLevel:    req.EducationLevel,
		Major:             req.Major,
		TechSkills:        tech,
		SoftSkills:        soft,
		TargetDomain:      strings.TrimSpace(req.TargetDomain),
		PreferredDuration: strings.TrimSpace(req.PreferredDuration),
	}

	scores, err := s.space.Score(profile.Synthesize(p))
	if err != nil {
		return nil, err
	}

	userLevel := EstimateUserLevel(tech)

	// Eligible course indices, catalog order. Catalog order is also
	// the tie-break below, so the sort must be stable.
	eligible := make([]int, 0, len(s.courses))
	for i, c := range s.courses {
		if LevelCompatible(userLevel, c.Level) {
			eligible = append(eligible, i)
		}
	}
	sort.SliceStable(eligible, func(a, b int) bool {
		return scores[eligible[a]] > scores[eligible[b]]
	})
	if len(eligible) > topN {
		eligible = eligible[:topN]
	}

	techSet := profile.ToSet(tech)
	recs := make([]domain.Recommendation, 0, len(eligible))
	for _, idx := range eligible {
		course := s.courses[idx]
		fit := roundScore(scores[idx])
		matched, missing := skillMatch(course.SkillTags, techSet)
		recs = append(recs, domain.Recommendation{
			Course:      course,
			FitScore:    fit,
			Timeline:    timelineFor(course.Level, fit),
			Explanation: explanationFor(matched, missing),
		})
	}

	s.logger.Debug().
		Str("user_level", userLevel.String()).
		Int("eligible", len(eligible)).
		Int("returned", len(recs)).
		Msg("recommendation computed")
	return recs, nil
}

// Courses returns the loaded catalog in source order.
func (s *Service) Courses() []domain.Course { return s.courses }

// roundScore converts a raw cosine similarity to the presentation
// score: percent, two decimals. Ranking happens on the raw value so
// rounding cannot reorder results.
func roundScore(sim float64) float64 {
	return math.Round(sim*100*100) / 100
}
