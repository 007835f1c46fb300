package recommend

import (
	"fmt"
	"strings"

	"smartcareer/internal/domain"
)

// skillMatch splits a course's tags into those the user already has and
// those the course would add, both in catalog tag order.
func skillMatch(tags []string, techSet map[string]struct{}) (matched, missing []string) {
	for _, tag := range tags {
		if _, ok := techSet[tag]; ok {
			matched = append(matched, tag)
		} else {
			missing = append(missing, tag)
		}
	}
	return matched, missing
}

// timelineFor labels the expected study horizon. fitScore is the
// rounded presentation score; the 70-point threshold applies to what
// the user sees.
func timelineFor(level domain.Level, fitScore float64) domain.Timeline {
	switch {
	case level == domain.LevelBeginner:
		return domain.TimelineShortTerm
	case level == domain.LevelIntermediate && fitScore > 70:
		return domain.TimelineShortTerm
	case level == domain.LevelIntermediate:
		return domain.TimelineLongTerm
	default:
		return domain.TimelineLongTerm
	}
}

// explanationFor builds the per-course rationale sentence from the
// matched/missing tag split.
func explanationFor(matched, missing []string) string {
	switch {
	case len(matched) > 0 && len(missing) > 0:
		return fmt.Sprintf("This course leverages your skills in %s and helps you build %s.",
			strings.Join(matched, ", "), strings.Join(missing, ", "))
	case len(matched) > 0:
		return fmt.Sprintf("This course strongly matches your current skills (%s) and deepens your expertise.",
			strings.Join(matched, ", "))
	case len(missing) > 0:
		return fmt.Sprintf("This course introduces new skills such as %s, aligned with your target domain.",
			strings.Join(missing, ", "))
	default:
		return "This course is relevant to your profile based on overall similarity."
	}
}
