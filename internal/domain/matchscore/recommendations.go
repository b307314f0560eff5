package matchscore

import "strings"

const maxRecommendations = 3

// Thresholds below which a dimension is considered weak enough to
// surface a recommendation.
const (
	weakExperienceScore = 70
	weakIndustryScore   = 70
)

// recommend picks up to three prioritized suggestions from a fixed rule
// set keyed on the weak sub-scores.
func recommend(b Breakdown, missing []string, j Job) []string {
	out := make([]string, 0, maxRecommendations)

	if len(missing) > 0 {
		shown := missing
		if len(shown) > 3 {
			shown = shown[:3]
		}
		out = append(out, "Consider building experience with: "+strings.Join(shown, ", "))
	}

	if b.Experience < weakExperienceScore && len(out) < maxRecommendations {
		out = append(out, "Your experience level differs from what this role typically expects; highlight relevant projects to close the gap")
	}

	if b.Industry < weakIndustryScore && len(out) < maxRecommendations {
		out = append(out, "Emphasize transferable work from related industries in your profile")
	}

	if len(out) < maxRecommendations && !isRemote(j) && b.Location < 100 {
		out = append(out, "This role is on-site; check whether the commute or a relocation works for you")
	}

	return out
}
