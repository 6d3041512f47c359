package section

import (
	"sort"

	"exam-service/internal/apperror"
	"exam-service/internal/models"
)

// State is the lifecycle position of one section within an attempt. Sections
// only ever move forward: not_yet_reached -> in_progress -> completed, and
// both transitions happen as side effects of the orchestrator's start and
// advance operations, never directly.
type State string

const (
	StateNotYetReached State = "not_yet_reached"
	StateInProgress    State = "in_progress"
	StateCompleted     State = "completed"
)

// StateOf derives a section's state from the attempt's cursor and the set of
// completed indices.
func StateOf(index, currentIndex int, completed map[int]bool) State {
	switch {
	case completed[index]:
		return StateCompleted
	case index > currentIndex:
		return StateNotYetReached
	default:
		return StateInProgress
	}
}

// CompletedSet collects the indices of completed sections for gate checks.
func CompletedSet(sections []models.Section) map[int]bool {
	set := make(map[int]bool, len(sections))
	for _, s := range sections {
		if s.Status == models.SectionCompleted {
			set[s.Index] = true
		}
	}
	return set
}

// CompletedIndices is CompletedSet flattened to a sorted list for responses.
func CompletedIndices(sections []models.Section) []int {
	out := make([]int, 0, len(sections))
	for idx := range CompletedSet(sections) {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// ValidateSubmission is the gate consulted on every answer submission. The
// declared index is caller-supplied and optional: nil means the attempt has
// no section structure and no lock applies. A section that was ever completed
// stays locked regardless of how far the attempt has since advanced.
func ValidateSubmission(declared *int, currentIndex int, completed map[int]bool) error {
	if declared == nil {
		return nil
	}
	if completed[*declared] {
		return apperror.Newf(apperror.KindPolicyViolation,
			"cannot answer question in completed section %d", *declared)
	}
	if *declared > currentIndex {
		return apperror.Newf(apperror.KindPolicyViolation,
			"cannot answer question in future section %d (current %d)", *declared, currentIndex)
	}
	return nil
}

// ValidatePosition bounds a best-effort bookmark update: inside the question
// list and not pointing into a section the attempt has not reached. Position
// is UI state, never an access-control input.
func ValidatePosition(index, totalQuestions int, declared *int, currentIndex int) error {
	if index < 0 || index >= totalQuestions {
		return apperror.Newf(apperror.KindPolicyViolation,
			"position %d out of range [0, %d)", index, totalQuestions)
	}
	if declared != nil && *declared > currentIndex {
		return apperror.Newf(apperror.KindPolicyViolation,
			"position implies future section %d (current %d)", *declared, currentIndex)
	}
	return nil
}
