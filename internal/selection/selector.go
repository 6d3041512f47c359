package selection

import (
	"math/rand"
	"time"

	"exam-service/internal/models"
)

// Filter narrows the question pool for a new attempt. Empty fields are
// wildcards; Count is how many questions to draw.
type Filter struct {
	Subject    string `json:"subject"`
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// Picker draws questions at random without replacement from a filtered pool.
type Picker struct {
	rand *rand.Rand
}

func NewPicker() *Picker {
	return &Picker{rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededPicker pins the shuffle for tests.
func NewSeededPicker(seed int64) *Picker {
	return &Picker{rand: rand.New(rand.NewSource(seed))}
}

// Matches reports whether a question belongs to the filtered pool. Only
// active questions qualify.
func Matches(q models.Question, f Filter) bool {
	if q.Status != models.QuestionActive {
		return false
	}
	if f.Subject != "" && q.Subject != f.Subject {
		return false
	}
	if f.Topic != "" && q.Topic != f.Topic {
		return false
	}
	if f.Difficulty != "" && q.DifficultyLevel != f.Difficulty {
		return false
	}
	return true
}

// Pick filters the pool and draws up to f.Count questions without
// replacement. When the pool is smaller than the request it returns the
// whole pool in random order; an unmatched filter returns nil.
func (p *Picker) Pick(pool []models.Question, f Filter) []models.Question {
	matched := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if Matches(q, f) {
			matched = append(matched, q)
		}
	}
	if len(matched) == 0 {
		return nil
	}

	p.rand.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if f.Count > 0 && f.Count < len(matched) {
		matched = matched[:f.Count]
	}
	return matched
}
