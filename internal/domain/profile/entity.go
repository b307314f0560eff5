package profile

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a single named skill on a candidate profile.
type Skill struct {
	ID   uuid.UUID
	Name string
}

// WorkExperience is one employment entry. EndDate nil with Current set
// means the entry is open-ended and measured to now.
type WorkExperience struct {
	ID          uuid.UUID
	Company     string
	Position    string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
}

// CandidateProfile is the matching-side view of a user: location plus
// skill and work-history collections.
type CandidateProfile struct {
	UserID      uuid.UUID
	Location    string
	Skills      []Skill
	Experiences []WorkExperience
}
