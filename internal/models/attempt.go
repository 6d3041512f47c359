package models

import "time"

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
)

// Attempt is one timed exam instance for one user. QuestionIDs is frozen at
// creation and is the scoring denominator; CurrentSectionIndex only ever
// moves forward.
type Attempt struct {
	ID                   string        `bson:"_id,omitempty" json:"id"`
	UserID               string        `bson:"user_id" json:"user_id"`
	QuestionIDs          []string      `bson:"question_ids" json:"question_ids"`
	TimeLimitSeconds     *int          `bson:"time_limit_seconds,omitempty" json:"time_limit_seconds,omitempty"`
	StartedAt            time.Time     `bson:"started_at" json:"started_at"`
	CurrentSectionIndex  int           `bson:"current_section_index" json:"current_section_index"`
	CurrentQuestionIndex int           `bson:"current_question_index" json:"current_question_index"`
	Status               AttemptStatus `bson:"status" json:"status"`
	CorrectCount         int           `bson:"correct_count" json:"correct_count"`
	IncorrectCount       int           `bson:"incorrect_count" json:"incorrect_count"`
	UnansweredCount      int           `bson:"unanswered_count" json:"unanswered_count"`
	RawScore             float64       `bson:"raw_score" json:"raw_score"`
	Percentage           int           `bson:"percentage" json:"percentage"`
	CompletedAt          *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

type SectionStatus string

const (
	SectionInProgress SectionStatus = "in_progress"
	SectionCompleted  SectionStatus = "completed"
)

// Section is the record of one timed sub-block of an attempt, unique per
// (attempt, index). Each section carries its own time budget.
type Section struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	AttemptID        string        `bson:"attempt_id" json:"attempt_id"`
	Index            int           `bson:"section_index" json:"section_index"`
	TimeLimitSeconds *int          `bson:"time_limit_seconds,omitempty" json:"time_limit_seconds,omitempty"`
	StartedAt        time.Time     `bson:"started_at" json:"started_at"`
	CompletedAt      *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	Status           SectionStatus `bson:"status" json:"status"`
}
