package scoring

import (
	"math"

	"exam-service/internal/models"
)

// IncorrectPenalty is the deduction for a selected-but-wrong answer. The rule
// is deliberately asymmetric: guessing costs, abstaining does not.
const IncorrectPenalty = 0.25

// Score grades one attempt's answer rows against its frozen question list.
// Correct rows contribute +1, incorrect rows −0.25, blank rows 0. Questions
// with no row at all are inferred as unanswered. The percentage is computed
// from the full question count, clamped at zero and rounded only at the end.
func Score(answers []models.Answer, questionIDs []string) models.ScoreBreakdown {
	byQuestion := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	b := models.ScoreBreakdown{Total: len(questionIDs)}
	for _, qid := range questionIDs {
		a, ok := byQuestion[qid]
		switch {
		case !ok, a.Selected == "":
			b.Unanswered++
		case a.IsCorrect:
			b.Correct++
		default:
			b.Incorrect++
		}
	}

	b.RawScore = float64(b.Correct) - IncorrectPenalty*float64(b.Incorrect)
	b.Percentage = percentage(b.RawScore, b.Total)
	return b
}

// PracticeScore is the friendlier rule for practice sessions: plain
// correct/total with no penalty. Intentionally distinct from Score.
func PracticeScore(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func percentage(raw float64, total int) int {
	if total == 0 {
		return 0
	}
	frac := raw / float64(total)
	if frac < 0 {
		frac = 0
	}
	return int(math.Round(frac * 100))
}
