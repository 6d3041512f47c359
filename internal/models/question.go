package models

import (
	"strings"
	"time"
)

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID                   string    `bson:"_id,omitempty" json:"id"`
	Content              string    `bson:"content" json:"content"`
	Type                 string    `bson:"type" json:"type"`
	Options              []Option  `bson:"options" json:"options"`
	CorrectAnswer        string    `bson:"correct_answer" json:"correct_answer"`
	Explanation          string    `bson:"explanation" json:"explanation"`
	Subject              string    `bson:"subject" json:"subject"`
	Topic                string    `bson:"topic" json:"topic"`
	DifficultyLevel      string    `bson:"difficulty_level" json:"difficulty_level"`
	EstimatedTimeSeconds int       `bson:"estimated_time_seconds" json:"estimated_time_seconds"`
	Status               string    `bson:"status" json:"status"`
	CreatedAt            time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time `bson:"updated_at" json:"updated_at"`
}

const QuestionActive = "active"

// NormalizeAnswer reduces raw answer text to its canonical token: trimmed and
// upper-cased. Both the student's selection and the stored correct answer go
// through this before comparison.
func NormalizeAnswer(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Grade normalizes the submitted text and compares it to the question's
// correct answer. An empty or whitespace-only submission grades as incorrect,
// never as a silent match.
func (q *Question) Grade(raw string) (normalized string, correct bool) {
	normalized = NormalizeAnswer(raw)
	if normalized == "" {
		return "", false
	}
	want := NormalizeAnswer(q.CorrectAnswer)
	if want == "" {
		return normalized, false
	}
	return normalized, normalized == want
}
