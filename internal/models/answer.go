package models

import "time"

// Answer is a student's response to one question within one attempt, unique
// per (attempt, question). Selected is the normalized option token; an empty
// Selected means the row exists but carries no answer. A question with no row
// at all is inferred as unanswered at scoring time.
type Answer struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	AttemptID        string    `bson:"attempt_id" json:"attempt_id"`
	QuestionID       string    `bson:"question_id" json:"question_id"`
	Selected         string    `bson:"selected" json:"selected"`
	IsCorrect        bool      `bson:"is_correct" json:"is_correct"`
	TimeSpentSeconds int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	AnsweredAt       time.Time `bson:"answered_at" json:"answered_at"`
}
