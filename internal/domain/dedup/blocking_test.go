package dedup

import (
	"testing"

	"job-radar/internal/domain/job"

	"github.com/google/uuid"
)

func TestPartitionByCompany(t *testing.T) {
	jobs := []job.JobRecord{
		{ID: uuid.New(), Company: "Acme Corp"},
		{ID: uuid.New(), Company: "acme corp"},
		{ID: uuid.New(), Company: "Globex"},
		{ID: uuid.New(), Company: "Initech", Archived: true},
	}

	parts := PartitionByCompany(jobs)
	if len(parts) != 2 {
		t.Fatalf("expected 2 partitions, got %d", len(parts))
	}

	total := 0
	for _, p := range parts {
		total += len(p.Jobs)
	}
	if total != 3 {
		t.Fatalf("archived jobs must be dropped; expected 3 jobs across partitions, got %d", total)
	}

	if parts[0].Key != "acme corp" || len(parts[0].Jobs) != 2 {
		t.Fatalf("case variants of a company must share a partition, got key=%q size=%d", parts[0].Key, len(parts[0].Jobs))
	}
}

func TestEveryJobInExactlyOnePartition(t *testing.T) {
	jobs := []job.JobRecord{
		{ID: uuid.New(), Company: "A"},
		{ID: uuid.New(), Company: "B"},
		{ID: uuid.New(), Company: "A"},
		{ID: uuid.New(), Company: ""},
	}

	parts := PartitionByCompany(jobs)
	seen := map[uuid.UUID]int{}
	for _, p := range parts {
		for _, j := range p.Jobs {
			seen[j.ID]++
		}
	}
	if len(seen) != len(jobs) {
		t.Fatalf("expected %d distinct jobs, got %d", len(jobs), len(seen))
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("job %s appears in %d partitions", id, n)
		}
	}
}

func TestFindCandidatesSkipsSmallPartitions(t *testing.T) {
	p := Partition{Key: "acme", Jobs: []job.JobRecord{{ID: uuid.New(), Title: "X"}}}
	if got := FindCandidates(p, 50); got != nil {
		t.Fatalf("partitions below two jobs must produce nothing, got %v", got)
	}
}

func TestFindCandidatesThreshold(t *testing.T) {
	a := testJob("Backend Engineer", "Acme", "Berlin", "Go services", "")
	b := testJob("Backend Engineer", "Acme", "Berlin", "Go services", "")
	c := testJob("Totally Unrelated Gardener Role", "Acme", "Lisbon", "prune hedges all day", "")

	p := Partition{Key: "acme", Jobs: []job.JobRecord{a, b, c}}
	got := FindCandidates(p, 90)
	if len(got) != 1 {
		t.Fatalf("expected exactly the identical pair, got %d candidates", len(got))
	}
	if got[0].First.ID != a.ID || got[0].Second.ID != b.ID {
		t.Fatalf("candidate order must follow input order")
	}
}

// Identical titles under different employers are never compared: the
// blocking strategy trades cross-company recall for runtime.
func TestCrossCompanyDuplicatesNeverCompared(t *testing.T) {
	a := testJob("Senior Backend Engineer", "Acme Corp", "Remote", "same text", "")
	b := testJob("Senior Backend Engineer", "Acme Crop", "Remote", "same text", "")

	parts := PartitionByCompany([]job.JobRecord{a, b})
	if len(parts) != 2 {
		t.Fatalf("misspelled employers must land in separate partitions, got %d", len(parts))
	}
	for _, p := range parts {
		if got := FindCandidates(p, 0); got != nil {
			t.Fatalf("no within-partition pairs expected, got %v", got)
		}
	}
}
