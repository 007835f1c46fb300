// Package tfidf implements the term-weighting model used to score user
// profiles against the course catalog.
package tfidf

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer is a TF-IDF model. Fit builds the vocabulary and IDF
// weights over the course corpus once; Vector then projects any text
// into that fixed space. A fitted Vectorizer is read-only and safe for
// concurrent use.
type Vectorizer struct {
	vocabulary   map[string]int
	idf          []float64
	dimension    int
	fitted       bool
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// New returns an unfitted Vectorizer with the default English stop-word
// list.
func New() *Vectorizer {
	return &Vectorizer{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]{2,}`),
		stopwords:    englishStopwords(),
	}
}

// Fit builds the vocabulary and IDF values from the corpus, one entry
// per document. The vocabulary is ordered by sorted term so the fit is
// deterministic for a given corpus; term order does not affect cosine
// values.
func (v *Vectorizer) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("tfidf: empty corpus")
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range v.tokenize(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return errors.New("tfidf: corpus has no usable terms")
	}
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF keeps corpus-wide terms from zeroing out.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	v.dimension = len(terms)
	v.fitted = true
	return nil
}

// Dimension returns the vocabulary size of the fitted model.
func (v *Vectorizer) Dimension() int { return v.dimension }

// Vector projects text into the fitted space and returns an
// L2-normalized TF-IDF vector. Text sharing no vocabulary with the
// corpus yields the zero vector, not an error.
func (v *Vectorizer) Vector(text string) ([]float64, error) {
	if !v.fitted {
		return nil, errors.New("tfidf: vectorizer not fitted")
	}
	vec := make([]float64, v.dimension)
	tf := make(map[int]int)
	total := 0
	for _, tok := range v.tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return vec, nil
	}
	for idx, count := range tf {
		vec[idx] = float64(count) / float64(total) * v.idf[idx]
	}
	norm := 0.0
	for _, w := range vec {
		norm += w * w
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

func (v *Vectorizer) tokenize(text string) []string {
	raw := v.tokenPattern.FindAllString(strings.ToLower(text), -1)
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := v.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func englishStopwords() map[string]struct{} {
	words := []string{
		"an", "the", "and", "or", "but", "if", "then", "else", "for", "to",
		"of", "in", "on", "at", "by", "with", "as", "is", "are", "was",
		"were", "be", "been", "being", "it", "this", "that", "these",
		"those", "from", "up", "down", "over", "under", "again", "further",
		"than", "so", "such", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "out", "off", "own",
		"same", "too", "very", "can", "will", "just", "should", "now",
		"your", "you", "our", "their", "his", "her", "its", "all", "any",
		"both", "each", "few", "more", "most", "other", "some", "no", "nor",
		"not", "only", "what", "which", "who", "whom", "when", "where",
		"why", "how", "do", "does", "did",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
