// Package profile turns the raw recommendation-request fields into the
// text form scored against the catalog.
package profile

import (
	"strings"

	"smartcareer/internal/domain"
)

// NoPreference is the sentinel duration value meaning the user did not
// pick a preferred study duration.
const NoPreference = "No preference"

// EducationLevels is the closed list offered by the input form.
var EducationLevels = []string{
	"High School", "Diploma", "B.Com", "B.Sc", "BCA", "B.Tech",
	"M.Sc", "MCA", "M.Tech", "Other",
}

// StudyDurations is the closed list of duration preferences.
var StudyDurations = []string{
	NoPreference, "1-3 months", "3-6 months", "6-12 months",
}

// NormalizeList splits a raw comma-separated skill string into
// normalized tokens: trimmed, lowercased, empties dropped. Input order
// is preserved and duplicates are retained; repeated skills carry extra
// term-frequency weight in the synthesized text.
func NormalizeList(raw string) []string {
	var skills []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	return skills
}

// ToSet collapses a normalized skill list into a set for tag matching.
func ToSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[s] = struct{}{}
	}
	return set
}

// Synthesize renders the profile into its fixed sentence sequence. The
// exact text is a scoring contract: required fields always appear in
// the same order, optional fields append without shifting them.
func Synthesize(p domain.UserProfile) string {
	parts := []string{
		"Education level: " + p.EducationLevel,
		"Major: " + p.Major,
		"Technical skills: " + strings.Join(p.TechSkills, ", "),
		"Soft skills: " + strings.Join(p.SoftSkills, ", "),
	}
	if p.TargetDomain != "" {
		parts = append(parts, "Target domain: "+p.TargetDomain)
	}
	if p.PreferredDuration != "" && p.PreferredDuration != NoPreference {
		parts = append(parts, "Preferred study duration: "+p.PreferredDuration)
	}
	return strings.Join(parts, ". ") + "."
}
