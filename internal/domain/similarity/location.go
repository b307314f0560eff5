package similarity

import "strings"

// Location compares two location strings in [0,100]. Normalized-equal
// strings score 100; containment ("san francisco" inside
// "san francisco ca") scores 90; otherwise the hybrid metric decides.
// Either input empty, before or after normalization, scores 0.
func Location(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}

	na := NormalizeLocation(a)
	nb := NormalizeLocation(b)

	// Strings made of dropped tokens only ("St.") normalize to nothing
	// and would otherwise contain-match everything.
	if na == "" || nb == "" {
		return 0
	}

	if na == nb {
		return 100
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 90
	}
	return Hybrid(na, nb)
}
