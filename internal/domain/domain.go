package domain

import (
	"fmt"
	"strings"
)

// Level is the difficulty tier of a course, also used as the coarse
// skill-level estimate for a user.
type Level int

const (
	LevelBeginner Level = iota
	LevelIntermediate
	LevelAdvanced
)

// ParseLevel converts a catalog level string into a Level.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner":
		return LevelBeginner, nil
	case "intermediate":
		return LevelIntermediate, nil
	case "advanced":
		return LevelAdvanced, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "beginner"
	case LevelIntermediate:
		return "intermediate"
	case LevelAdvanced:
		return "advanced"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Timeline is the qualitative study-horizon label for a recommendation.
type Timeline string

const (
	TimelineShortTerm Timeline = "short-term"
	TimelineLongTerm  Timeline = "long-term"
)

// Course is one row of the course catalog. Courses are loaded once at
// startup and never mutated afterwards.
type Course struct {
	Title    string
	Provider string
	// SkillTags holds the normalized (trimmed, lowercased) tags in
	// their original catalog order.
	SkillTags []string
	Level     Level
	Duration  string
	Link      string
}

// Document returns the text used to represent the course in the vector
// space: title, comma-joined skill tags, and level. This exact form is
// part of the scoring contract.
func (c Course) Document() string {
	return c.Title + " " + strings.Join(c.SkillTags, ", ") + " " + c.Level.String()
}

// UserProfile is the per-request profile built from the six raw inputs.
// TechSkills and SoftSkills preserve input order and duplicates; the
// deduplicated view used for tag matching is derived where needed.
type UserProfile struct {
	EducationLevel    string
	Major             string
	TechSkills        []string
	SoftSkills        []string
	TargetDomain      string
	PreferredDuration string
}

// Recommendation pairs a catalog course with the per-request fit data.
type Recommendation struct {
	Course      Course
	FitScore    float64
	Timeline    Timeline
	Explanation string
}

// Vectorizer converts free text into a numeric vector representation.
// Implementations require a fitting phase over the corpus.
type Vectorizer interface {
	Fit(corpus []string) error
	Vector(text string) ([]float64, error)
	Dimension() int
}
