package dto

import "job-radar/internal/domain/job"

type DetectRequest struct {
	// Threshold overrides the configured minimum overall similarity;
	// zero or absent keeps the default.
	Threshold float64 `json:"threshold"`
}

type DetectionSummaryResponse struct {
	JobsScanned int `json:"jobs_scanned"`
	Partitions  int `json:"partitions"`
	PairsFound  int `json:"pairs_found"`
}

type SimilarityScoreResponse struct {
	Title       float64 `json:"title"`
	Company     float64 `json:"company"`
	Location    float64 `json:"location"`
	Description float64 `json:"description"`
	Overall     float64 `json:"overall"`
	Confidence  string  `json:"confidence"`
}

type DuplicatePairResponse struct {
	CanonicalJobID  string                  `json:"canonical_job_id"`
	DuplicateJobID  string                  `json:"duplicate_job_id"`
	Score           SimilarityScoreResponse `json:"score"`
	DetectionMethod string                  `json:"detection_method"`
}

type MergeRequest struct {
	CanonicalJobID string `json:"canonical_job_id"`
	DuplicateJobID string `json:"duplicate_job_id"`
}

func NewDuplicatePairResponse(p job.DuplicatePair) DuplicatePairResponse {
	return DuplicatePairResponse{
		CanonicalJobID: p.CanonicalJobID.String(),
		DuplicateJobID: p.DuplicateJobID.String(),
		Score: SimilarityScoreResponse{
			Title:       p.Score.Title,
			Company:     p.Score.Company,
			Location:    p.Score.Location,
			Description: p.Score.Description,
			Overall:     p.Score.Overall,
			Confidence:  string(p.Score.Confidence),
		},
		DetectionMethod: string(p.Method),
	}
}
