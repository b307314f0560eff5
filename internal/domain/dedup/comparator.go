package dedup

import (
	"net/url"
	"strings"

	"job-radar/internal/domain/job"
	"job-radar/internal/domain/similarity"
)

// Field weights for the pairwise score. They sum to 1.0.
const (
	weightTitle       = 0.35
	weightCompany     = 0.25
	weightDescription = 0.25
	weightLocation    = 0.15
)

// Confidence tier cutoffs on the overall score.
const (
	highConfidenceMin   = 85
	mediumConfidenceMin = 70
)

// descriptionPrefixLen bounds the cost of description comparison.
const descriptionPrefixLen = 500

// Comparison is the outcome of scoring one job pair.
type Comparison struct {
	Score  job.SimilarityScore
	Method job.DetectionMethod
}

// Compare scores a job pair. Identical normalized URLs short-circuit to
// a synthetic perfect score with method url-exact; otherwise each field
// is scored with the hybrid metric (location with the location
// comparator) and combined with the fixed weights.
func Compare(a, b job.JobRecord) Comparison {
	if ua := NormalizeURL(a.URL); ua != "" && ua == NormalizeURL(b.URL) {
		return Comparison{
			Score: job.SimilarityScore{
				Title:       100,
				Company:     100,
				Location:    100,
				Description: 100,
				Overall:     100,
				Confidence:  job.ConfidenceHigh,
			},
			Method: job.DetectionURLExact,
		}
	}

	score := job.SimilarityScore{
		Title:       similarity.Hybrid(a.Title, b.Title),
		Company:     similarity.Hybrid(a.Company, b.Company),
		Location:    similarity.Location(a.Location, b.Location),
		Description: similarity.Hybrid(truncate(a.Description, descriptionPrefixLen), truncate(b.Description, descriptionPrefixLen)),
	}
	score.Overall = score.Title*weightTitle +
		score.Company*weightCompany +
		score.Description*weightDescription +
		score.Location*weightLocation
	score.Confidence = confidenceFor(score.Overall)

	return Comparison{Score: score, Method: job.DetectionFuzzy}
}

// NormalizeURL reduces a posting URL to lowercase scheme+host+path with
// any trailing slash stripped, so tracking parameters and fragments do
// not defeat exact matching. Unparseable input yields "".
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}

	path := strings.TrimSuffix(u.Path, "/")
	return strings.ToLower(u.Scheme) + "://" + strings.ToLower(u.Host) + strings.ToLower(path)
}

func confidenceFor(overall float64) job.ConfidenceTier {
	switch {
	case overall >= highConfidenceMin:
		return job.ConfidenceHigh
	case overall >= mediumConfidenceMin:
		return job.ConfidenceMedium
	default:
		return job.ConfidenceLow
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
