package dedup

import (
	"job-radar/internal/domain/job"
	"job-radar/internal/domain/similarity"
)

// DefaultThreshold is the minimum overall similarity for a pair to be
// reported as a duplicate.
const DefaultThreshold = 50

// Partition is one blocking partition: every non-archived job sharing a
// normalized company key. Pairwise comparison only happens inside a
// partition, which keeps the run sub-quadratic but means duplicates
// posted under differently-spelled employers are never found. Known
// limitation, traded for runtime.
type Partition struct {
	Key  string
	Jobs []job.JobRecord
}

// PartitionByCompany groups non-archived jobs by company key. Every
// input job lands in exactly one partition; archived jobs are dropped.
func PartitionByCompany(jobs []job.JobRecord) []Partition {
	byKey := make(map[string][]job.JobRecord)
	order := make([]string, 0)

	for _, j := range jobs {
		if j.Archived {
			continue
		}
		key := similarity.CompanyKey(j.Company)
		if _, seen := byKey[key]; !seen {
			order = append(order, key)
		}
		byKey[key] = append(byKey[key], j)
	}

	out := make([]Partition, 0, len(order))
	for _, key := range order {
		out = append(out, Partition{Key: key, Jobs: byKey[key]})
	}
	return out
}

// Candidate is a within-partition pair whose overall similarity met the
// threshold. Canonical selection happens later; First/Second preserve
// input order for the deterministic tie-break.
type Candidate struct {
	First      job.JobRecord
	Second     job.JobRecord
	Comparison Comparison
}

// FindCandidates compares every unordered pair inside a partition and
// returns those at or above the threshold. Partitions smaller than two
// produce nothing.
func FindCandidates(p Partition, threshold float64) []Candidate {
	if len(p.Jobs) < 2 {
		return nil
	}

	var out []Candidate
	for i := 0; i < len(p.Jobs); i++ {
		for k := i + 1; k < len(p.Jobs); k++ {
			cmp := Compare(p.Jobs[i], p.Jobs[k])
			if cmp.Score.Overall >= threshold {
				out = append(out, Candidate{
					First:      p.Jobs[i],
					Second:     p.Jobs[k],
					Comparison: cmp,
				})
			}
		}
	}
	return out
}
