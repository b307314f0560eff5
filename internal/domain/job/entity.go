package job

import (
	"time"

	"github.com/google/uuid"
)

// DetectionMethod records how a duplicate pair was found.
type DetectionMethod string

const (
	DetectionFuzzy    DetectionMethod = "fuzzy"
	DetectionURLExact DetectionMethod = "url-exact"
	DetectionManual   DetectionMethod = "manual"
)

// ConfidenceTier buckets a numeric similarity score for review workflows.
type ConfidenceTier string

const (
	ConfidenceHigh   ConfidenceTier = "high"
	ConfidenceMedium ConfidenceTier = "medium"
	ConfidenceLow    ConfidenceTier = "low"
)

// JobRecord is an immutable snapshot of a harvested posting. The
// deduplication core never mutates it; decisions are returned to the
// caller for persistence.
type JobRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	URL         string
	Source      string
	Archived    bool
	PostedAt    *time.Time
	CreatedAt   time.Time
}

// SimilarityScore holds per-field similarity values in [0,100] plus the
// weighted overall value and its confidence tier.
type SimilarityScore struct {
	Title       float64
	Company     float64
	Location    float64
	Description float64
	Overall     float64
	Confidence  ConfidenceTier
}

// DuplicatePair is a resolved duplicate decision. CanonicalJobID and
// DuplicateJobID are never equal.
type DuplicatePair struct {
	CanonicalJobID uuid.UUID
	DuplicateJobID uuid.UUID
	Score          SimilarityScore
	Method         DetectionMethod
}

// QualityScore is the composite score used to break ties between
// duplicate candidates. All values are in [0,100].
type QualityScore struct {
	Completeness      float64
	SourceReliability float64
	Freshness         float64
	Overall           float64
}
