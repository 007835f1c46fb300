package recommend

import "smartcareer/internal/domain"

// EstimateUserLevel derives a coarse skill tier from the number of
// technical skills listed. Count-based on purpose: the duplicate
// preserving list is counted as given, not deduplicated.
func EstimateUserLevel(techSkills []string) domain.Level {
	switch n := len(techSkills); {
	case n <= 2:
		return domain.LevelBeginner
	case n <= 5:
		return domain.LevelIntermediate
	default:
		return domain.LevelAdvanced
	}
}

// LevelCompatible reports whether a course of the given level is
// visible to a user of the given tier: at most one step above. Note the
// asymmetry this produces at the top of the scale — an intermediate
// user sees advanced courses while a beginner is capped at
// intermediate. Kept as the product defines it.
func LevelCompatible(user, course domain.Level) bool {
	return int(course) <= int(user)+1
}
