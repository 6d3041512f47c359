package models

import "time"

// PracticeSession is the single-section sibling of Attempt: same frozen
// question list and answer discipline, no sections and no timing pressure.
type PracticeSession struct {
	ID                   string        `bson:"_id,omitempty" json:"id"`
	UserID               string        `bson:"user_id" json:"user_id"`
	QuestionIDs          []string      `bson:"question_ids" json:"question_ids"`
	StartedAt            time.Time     `bson:"started_at" json:"started_at"`
	CurrentQuestionIndex int           `bson:"current_question_index" json:"current_question_index"`
	Status               AttemptStatus `bson:"status" json:"status"`
	CorrectCount         int           `bson:"correct_count" json:"correct_count"`
	Percentage           int           `bson:"percentage" json:"percentage"`
	CompletedAt          *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
