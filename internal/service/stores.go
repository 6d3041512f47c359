package service

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/selection"
)

// Storage collaborators, satisfied by the mongo repositories. Every mutation
// is a single-document write; the multi-row operations (advance) are built
// from individually idempotent upserts so a partial failure is safely
// retryable.

type AttemptStore interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	FindByOwner(ctx context.Context, id, userID string) (*models.Attempt, error)
	UpdatePosition(ctx context.Context, id string, questionIndex int) error
	AdvanceSection(ctx context.Context, id string, fromSectionIndex int) error
	Complete(ctx context.Context, id string, b models.ScoreBreakdown, completedAt time.Time) error
}

type SectionStore interface {
	Open(ctx context.Context, s *models.Section) error
	MarkCompleted(ctx context.Context, attemptID string, index int, at time.Time) error
	FindByAttempt(ctx context.Context, attemptID string) ([]models.Section, error)
}

type AnswerStore interface {
	Upsert(ctx context.Context, a *models.Answer) error
	FindByAttempt(ctx context.Context, attemptID string) ([]models.Answer, error)
}

// QuestionFinder resolves single questions; in production it is the redis
// read-through cache over the question collection.
type QuestionFinder interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
}

// QuestionPool lists the active questions matching a selection filter.
type QuestionPool interface {
	FindMatching(ctx context.Context, f selection.Filter) ([]models.Question, error)
}

type PracticeStore interface {
	Create(ctx context.Context, s *models.PracticeSession) error
	FindByOwner(ctx context.Context, id, userID string) (*models.PracticeSession, error)
	UpdatePosition(ctx context.Context, id string, questionIndex int) error
	Complete(ctx context.Context, id string, correct, percentage int, completedAt time.Time) error
}
