package dto

import "job-radar/internal/domain/matchscore"

type MatchBreakdownResponse struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Industry   float64 `json:"industry"`
	Location   float64 `json:"location"`
}

type MatchResultResponse struct {
	Score           int                    `json:"score"`
	Breakdown       MatchBreakdownResponse `json:"breakdown"`
	MissingSkills   []string               `json:"missing_skills"`
	Recommendations []string               `json:"recommendations"`
}

func NewMatchResultResponse(r matchscore.Result) MatchResultResponse {
	missing := r.MissingSkills
	if missing == nil {
		missing = []string{}
	}
	recs := r.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return MatchResultResponse{
		Score: r.Score,
		Breakdown: MatchBreakdownResponse{
			Skill:      r.Breakdown.Skill,
			Experience: r.Breakdown.Experience,
			Industry:   r.Breakdown.Industry,
			Location:   r.Breakdown.Location,
		},
		MissingSkills:   missing,
		Recommendations: recs,
	}
}
