package matchscore

import (
	"math"
	"strings"

	"job-radar/internal/domain/profile"
)

// Dimension weights for the overall score. They sum to 1.0.
const (
	weightSkill      = 0.40
	weightExperience = 0.30
	weightIndustry   = 0.20
	weightLocation   = 0.10
)

// neutralSkillScore applies when a posting lists no required skills:
// the absence of requirements is treated as neither a match nor a gap.
// Missing work experience, by contrast, scores 0 in the experience and
// industry dimensions.
const neutralSkillScore = 50

// Job is the posting-side input to the scorer.
type Job struct {
	Title          string
	Company        string
	Location       string
	Description    string
	RequiredSkills []string
}

// Breakdown holds the four dimension sub-scores, each in [0,100].
type Breakdown struct {
	Skill      float64
	Experience float64
	Industry   float64
	Location   float64
}

// Result is a full compatibility assessment for one (profile, job)
// pair. Stateless, recomputed per request.
type Result struct {
	Score           int
	Breakdown       Breakdown
	MissingSkills   []string
	Recommendations []string
}

// Calculate scores candidate/job compatibility across the four weighted
// dimensions and rounds to the nearest integer in [0,100].
func Calculate(p profile.CandidateProfile, j Job) Result {
	skillScore, missing := scoreSkills(p.Skills, j.RequiredSkills)

	breakdown := Breakdown{
		Skill:      skillScore,
		Experience: scoreExperience(p.Experiences, j),
		Industry:   scoreIndustry(p.Experiences, j),
		Location:   scoreLocation(p.Location, j),
	}

	total := breakdown.Skill*weightSkill +
		breakdown.Experience*weightExperience +
		breakdown.Industry*weightIndustry +
		breakdown.Location*weightLocation

	score := int(math.Round(total))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Result{
		Score:           score,
		Breakdown:       breakdown,
		MissingSkills:   missing,
		Recommendations: recommend(breakdown, missing, j),
	}
}

// scoreSkills marks a required skill matched when any candidate skill
// equals, contains, or is contained by it (case-insensitive, trimmed).
func scoreSkills(skills []profile.Skill, required []string) (float64, []string) {
	reqs := make([]string, 0, len(required))
	for _, r := range required {
		if r = strings.TrimSpace(r); r != "" {
			reqs = append(reqs, r)
		}
	}
	if len(reqs) == 0 {
		return neutralSkillScore, nil
	}

	have := make([]string, 0, len(skills))
	for _, s := range skills {
		if name := strings.ToLower(strings.TrimSpace(s.Name)); name != "" {
			have = append(have, name)
		}
	}

	matched := 0
	missing := make([]string, 0)
	for _, r := range reqs {
		if skillMatches(have, strings.ToLower(r)) {
			matched++
		} else {
			missing = append(missing, r)
		}
	}

	return 100 * float64(matched) / float64(len(reqs)), missing
}

func skillMatches(have []string, req string) bool {
	for _, h := range have {
		if h == req || strings.Contains(h, req) || strings.Contains(req, h) {
			return true
		}
	}
	return false
}

// scoreIndustry is a heuristic substring check: any past company,
// position, or leading slice of an experience description appearing in
// the posting text counts as same-industry exposure.
func scoreIndustry(exps []profile.WorkExperience, j Job) float64 {
	if len(exps) == 0 {
		return 0
	}

	haystack := strings.ToLower(j.Title + " " + j.Company + " " + j.Description)
	for _, e := range exps {
		for _, needle := range industryNeedles(e) {
			if needle != "" && strings.Contains(haystack, needle) {
				return 100
			}
		}
	}
	return 60
}

func industryNeedles(e profile.WorkExperience) []string {
	desc := strings.TrimSpace(e.Description)
	if r := []rune(desc); len(r) > 50 {
		desc = string(r[:50])
	}
	return []string{
		strings.ToLower(strings.TrimSpace(e.Company)),
		strings.ToLower(strings.TrimSpace(e.Position)),
		strings.ToLower(desc),
	}
}

// scoreLocation buckets geographic compatibility. Remote postings are a
// perfect match regardless of either location string.
func scoreLocation(candidateLoc string, j Job) float64 {
	if isRemote(j) {
		return 100
	}

	cand := strings.ToLower(strings.TrimSpace(candidateLoc))
	jobLoc := strings.ToLower(strings.TrimSpace(j.Location))
	if cand == "" || jobLoc == "" {
		return 70
	}
	if cand == jobLoc {
		return 100
	}
	if segmentsOverlap(cand, jobLoc) {
		return 85
	}
	if isHybrid(j) {
		return 60
	}
	return 30
}

// segmentsOverlap reports whether any comma-separated city/state
// segment is shared between the two location strings.
func segmentsOverlap(a, b string) bool {
	segsA := locationSegments(a)
	for _, sb := range locationSegments(b) {
		for _, sa := range segsA {
			if sa == sb {
				return true
			}
		}
	}
	return false
}

func locationSegments(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isRemote(j Job) bool {
	return containsWord(j.Location, "remote") || containsWord(j.Title, "remote")
}

func isHybrid(j Job) bool {
	return containsWord(j.Location, "hybrid") || containsWord(j.Description, "hybrid")
}

func containsWord(s, word string) bool {
	return strings.Contains(strings.ToLower(s), word)
}
