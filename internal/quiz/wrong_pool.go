package quiz

import (
	"sort"
	"time"
)

// Observation is one graded answer inside an attempt.
type Observation struct {
	QuestionID string
	Correct    bool
}

// AttemptView is the slice of an attempt the wrong pool needs.
type AttemptView struct {
	ID        string
	CreatedAt time.Time
	Answers   []Observation
}

// LatestWrong returns the ids whose most recent observation is incorrect, most recent first.
// Attempts are ordered by CreatedAt descending with ID descending breaking ties, so the
// result does not depend on the order the caller passes them in.
func LatestWrong(attempts []AttemptView) []string {
	ordered := make([]AttemptView, len(attempts))
	copy(ordered, attempts)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.After(ordered[j].CreatedAt)
		}
		return ordered[i].ID > ordered[j].ID
	})

	seen := make(map[string]struct{})
	var wrong []string
	for _, a := range ordered {
		for _, obs := range a.Answers {
			if obs.QuestionID == "" {
				continue
			}
			if _, ok := seen[obs.QuestionID]; ok {
				continue
			}
			seen[obs.QuestionID] = struct{}{}
			if !obs.Correct {
				wrong = append(wrong, obs.QuestionID)
			}
		}
	}
	return wrong
}
