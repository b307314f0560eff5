package matchscore

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"job-radar/internal/domain/profile"
)

func pinNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

// spanYears returns a start date `years` before now, measured in exact
// hours so totalYears reproduces the value.
func spanYears(now time.Time, years float64) time.Time {
	return now.Add(-time.Duration(years * 24 * 365.25 * float64(time.Hour)))
}

func approx(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}

func TestCalculateNoRequiredSkillsIsNeutral(t *testing.T) {
	p := profile.CandidateProfile{Skills: []profile.Skill{{Name: "Go"}}}
	res := Calculate(p, Job{Title: "Backend Engineer"})

	if res.Breakdown.Skill != neutralSkillScore {
		t.Fatalf("skill score = %v, want %v", res.Breakdown.Skill, float64(neutralSkillScore))
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("no requirements means no missing skills, got %v", res.MissingSkills)
	}
}

func TestScoreSkillsSubstringMatching(t *testing.T) {
	skills := []profile.Skill{{Name: "Golang"}, {Name: "PostgreSQL"}}

	score, missing := scoreSkills(skills, []string{"Go", "postgresql", "Kafka"})
	if !approx(score, 100*2.0/3.0) {
		t.Fatalf("score = %v, want %v", score, 100*2.0/3.0)
	}
	if len(missing) != 1 || missing[0] != "Kafka" {
		t.Fatalf("missing = %v, want [Kafka]", missing)
	}
}

func TestScoreSkillsIgnoresBlankRequirements(t *testing.T) {
	score, missing := scoreSkills(nil, []string{"  ", ""})
	if score != neutralSkillScore || missing != nil {
		t.Fatalf("blank-only requirements must be neutral, got %v %v", score, missing)
	}
}

func TestScoreLocationBuckets(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		job       Job
		want      float64
	}{
		{"remote overrides everything", "Lisbon", Job{Location: "Remote"}, 100},
		{"remote in title", "Lisbon", Job{Title: "Backend Engineer (Remote)", Location: "NYC"}, 100},
		{"exact", "Berlin", Job{Location: "berlin"}, 100},
		{"segment overlap", "San Francisco, CA", Job{Location: "Oakland, CA"}, 85},
		{"both present no overlap", "Berlin", Job{Location: "Tokyo"}, 30},
		{"hybrid softens mismatch", "Berlin", Job{Location: "Tokyo (Hybrid)"}, 60},
		{"candidate unknown", "", Job{Location: "Tokyo"}, 70},
		{"job unknown", "Berlin", Job{}, 70},
	}
	for _, tt := range tests {
		if got := scoreLocation(tt.candidate, tt.job); got != tt.want {
			t.Errorf("%s: scoreLocation = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestScoreIndustry(t *testing.T) {
	j := Job{Title: "Senior Backend Engineer", Company: "Acme Corp", Description: "Build Go services"}

	if got := scoreIndustry(nil, j); got != 0 {
		t.Fatalf("empty history must score 0, got %v", got)
	}

	related := []profile.WorkExperience{{Company: "Globex", Position: "Backend Engineer"}}
	if got := scoreIndustry(related, j); got != 100 {
		t.Fatalf("position found in posting text must score 100, got %v", got)
	}

	unrelated := []profile.WorkExperience{{Company: "Fresh Bakery", Position: "Pastry Chef"}}
	if got := scoreIndustry(unrelated, j); got != 60 {
		t.Fatalf("unrelated history must score 60, got %v", got)
	}
}

func TestIndustryNeedlesKeepRunesWhole(t *testing.T) {
	e := profile.WorkExperience{Description: strings.Repeat("ü", 60)}
	for _, needle := range industryNeedles(e) {
		if !utf8.ValidString(needle) {
			t.Fatalf("needle is not valid UTF-8: %q", needle)
		}
	}
}

func TestCalculateSeniorRemoteScenario(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pinNow(t, now)

	p := profile.CandidateProfile{
		Location: "Austin, TX",
		Skills:   []profile.Skill{{Name: "Python"}},
		Experiences: []profile.WorkExperience{
			{Company: "Globex", Position: "Backend Engineer", StartDate: spanYears(now, 5), Current: true},
		},
	}
	j := Job{
		Title:          "Senior Backend Engineer",
		Company:        "Acme Corp",
		Location:       "Remote",
		Description:    "We need 5+ years Python experience building APIs",
		RequiredSkills: []string{"Python", "PostgreSQL"},
	}

	res := Calculate(p, j)

	if res.Breakdown.Experience != 100 {
		t.Fatalf("five actual years against a 5+ requirement sit in the fit band, got %v", res.Breakdown.Experience)
	}
	if res.Breakdown.Location != 100 {
		t.Fatalf("remote posting must score 100, got %v", res.Breakdown.Location)
	}
	if res.Breakdown.Industry != 100 {
		t.Fatalf("backend engineer history matches the posting, got %v", res.Breakdown.Industry)
	}
	if res.Breakdown.Skill != 50 {
		t.Fatalf("one of two required skills, got %v", res.Breakdown.Skill)
	}
	// 50*0.4 + 100*0.3 + 100*0.2 + 100*0.1
	if res.Score != 80 {
		t.Fatalf("overall = %d, want 80", res.Score)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "PostgreSQL" {
		t.Fatalf("missing = %v, want [PostgreSQL]", res.MissingSkills)
	}
}

func TestRecommendationsCappedAtThree(t *testing.T) {
	b := Breakdown{Experience: 40, Industry: 60, Location: 30}
	missing := []string{"Kafka", "Terraform", "Rust", "Scala"}

	recs := recommend(b, missing, Job{Location: "Tokyo"})
	if len(recs) != maxRecommendations {
		t.Fatalf("got %d recommendations, want %d", len(recs), maxRecommendations)
	}
	if recs[0] != "Consider building experience with: Kafka, Terraform, Rust" {
		t.Fatalf("skill gap must surface first with at most three skills, got %q", recs[0])
	}
}

func TestRecommendationsSkipLocationForRemote(t *testing.T) {
	recs := recommend(Breakdown{Experience: 100, Industry: 100, Location: 100}, nil, Job{Location: "Remote"})
	if len(recs) != 0 {
		t.Fatalf("strong remote match needs no advice, got %v", recs)
	}
}
