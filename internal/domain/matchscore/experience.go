package matchscore

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"job-radar/internal/domain/profile"
)

// Experience fit band: actual years within [0.8x, 1.5x] of required is
// a perfect score. Below the band scales down to 40; above it takes a
// mild overqualification penalty down to 70.
const (
	fitBandLow         = 0.8
	fitBandHigh        = 1.5
	underFloor         = 40
	overqualifiedFloor = 70
)

const defaultRequiredYears = 3

var yearsPattern = regexp.MustCompile(`(\d+)\s*\+\s*years?`)

// nowFunc is swapped in tests to pin open-ended durations.
var nowFunc = time.Now

// scoreExperience compares total candidate years against the posting's
// estimated requirement. An empty work history scores 0, deliberately
// not neutral.
func scoreExperience(exps []profile.WorkExperience, j Job) float64 {
	if len(exps) == 0 {
		return 0
	}

	actual := totalYears(exps)
	required := requiredYears(j)
	if required <= 0 {
		return 100
	}

	low := fitBandLow * float64(required)
	high := fitBandHigh * float64(required)

	switch {
	case actual >= low && actual <= high:
		return 100
	case actual < low:
		score := 100 * actual / low
		if score < underFloor {
			return underFloor
		}
		return score
	default:
		score := 100 - 30*(actual-high)/high
		if score < overqualifiedFloor {
			return overqualifiedFloor
		}
		return score
	}
}

// totalYears sums work-experience durations; entries with no end date
// are measured to now.
func totalYears(exps []profile.WorkExperience) float64 {
	now := nowFunc()
	var total float64
	for _, e := range exps {
		if e.StartDate.IsZero() {
			continue
		}
		end := now
		if e.EndDate != nil && !e.Current {
			end = *e.EndDate
		}
		if end.Before(e.StartDate) {
			continue
		}
		total += end.Sub(e.StartDate).Hours() / (24 * 365.25)
	}
	return total
}

// requiredYears estimates the posting's requirement: an explicit
// "N+ years" in the description wins, otherwise seniority keywords in
// the title decide, defaulting to mid-level.
func requiredYears(j Job) int {
	if m := yearsPattern.FindStringSubmatch(strings.ToLower(j.Description)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n
		}
	}

	title := strings.ToLower(j.Title)
	switch {
	case containsAny(title, "senior", "lead", "principal"):
		return 5
	case containsAny(title, "staff", "architect"):
		return 7
	case containsAny(title, "junior", "entry"):
		return 1
	case containsAny(title, "intern"):
		return 0
	default:
		return defaultRequiredYears
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
