// Package catalog loads the course table the recommender scores against.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"smartcareer/internal/domain"
)

// Required catalog columns, in documentation order. The file may list
// them in any order and may carry extra columns, which are ignored.
var requiredColumns = []string{"title", "provider", "skill_tags", "level", "duration", "link"}

// FormatError reports a catalog file that cannot be loaded: a missing
// required column or an invalid level value. Loading never returns a
// partial catalog alongside a FormatError.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "catalog format: " + e.Reason
}

// LoadFile reads and parses the catalog CSV at path.
func LoadFile(path string) ([]domain.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load parses a catalog CSV from r, preserving source row order. Row
// order matters downstream: it is the tie-break for equal fit scores.
func Load(r io.Reader) ([]domain.Course, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{Reason: "empty file"}
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &FormatError{Reason: fmt.Sprintf("missing required column %q", name)}
		}
	}

	var courses []domain.Course
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row %d: %w", row, err)
		}
		level, err := domain.ParseLevel(record[cols["level"]])
		if err != nil {
			return nil, &FormatError{Reason: fmt.Sprintf("row %d: %v", row, err)}
		}
		courses = append(courses, domain.Course{
			Title:     strings.TrimSpace(record[cols["title"]]),
			Provider:  strings.TrimSpace(record[cols["provider"]]),
			SkillTags: splitTags(record[cols["skill_tags"]]),
			Level:     level,
			Duration:  strings.TrimSpace(record[cols["duration"]]),
			Link:      strings.TrimSpace(record[cols["link"]]),
		})
	}
	return courses, nil
}

// splitTags normalizes a comma-separated tag field: trim, lowercase,
// drop empty tokens, keep the original order.
func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
