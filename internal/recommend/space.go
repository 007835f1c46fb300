package recommend

import (
	"fmt"

	"smartcareer/internal/domain"
	"smartcareer/internal/embedding/tfidf"
)

// Space holds the fitted term-weighting model together with one vector
// per catalog course, aligned with catalog order. It is built once per
// catalog load and is immutable afterwards, so it may be shared across
// concurrent requests without locking.
type Space struct {
	vectorizer domain.Vectorizer
	vectors    [][]float64
}

// BuildSpace fits a TF-IDF model over the catalog and projects every
// course into it.
func BuildSpace(courses []domain.Course) (*Space, error) {
	return BuildSpaceWith(tfidf.New(), courses)
}

// BuildSpaceWith builds a Space using the provided vectorizer.
func BuildSpaceWith(v domain.Vectorizer, courses []domain.Course) (*Space, error) {
	corpus := make([]string, len(courses))
	for i, c := range courses {
		corpus[i] = c.Document()
	}
	if err := v.Fit(corpus); err != nil {
		return nil, fmt.Errorf("fit vector space: %w", err)
	}
	vectors := make([][]float64, len(courses))
	for i, doc := range corpus {
		vec, err := v.Vector(doc)
		if err != nil {
			return nil, fmt.Errorf("vectorize course %d: %w", i, err)
		}
		vectors[i] = vec
	}
	return &Space{vectorizer: v, vectors: vectors}, nil
}

// Score projects profileText into the space and returns the cosine
// similarity against every course, aligned by catalog index. A profile
// sharing no vocabulary with the catalog scores zero everywhere.
func (s *Space) Score(profileText string) ([]float64, error) {
	vec, err := s.vectorizer.Vector(profileText)
	if err != nil {
		return nil, fmt.Errorf("vectorize profile: %w", err)
	}
	scores := make([]float64, len(s.vectors))
	for i := range s.vectors {
		scores[i] = dot(s.vectors[i], vec)
	}
	return scores, nil
}

// Size returns the number of course vectors in the space.
func (s *Space) Size() int { return len(s.vectors) }

// dot is cosine similarity here: both operands are L2-normalized by the
// vectorizer.
func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
