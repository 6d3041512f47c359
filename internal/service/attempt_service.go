package service

import (
	"context"
	"log"
	"time"

	"exam-service/internal/apperror"
	"exam-service/internal/models"
	"exam-service/internal/scoring"
	"exam-service/internal/section"
	"exam-service/internal/selection"
	"exam-service/internal/timesync"
)

// AttemptService owns the proctored attempt lifecycle: creation, the answer
// gate, section advancement, resume/sync for disconnected clients, and final
// scoring. It holds no per-client state between requests; everything needed
// to resume lives in storage.
type AttemptService struct {
	attempts  AttemptStore
	sections  SectionStore
	answers   AnswerStore
	questions QuestionFinder
	pool      QuestionPool
	picker    *selection.Picker
	now       func() time.Time
}

func NewAttemptService(
	attempts AttemptStore,
	sections SectionStore,
	answers AnswerStore,
	questions QuestionFinder,
	pool QuestionPool,
) *AttemptService {
	return &AttemptService{
		attempts:  attempts,
		sections:  sections,
		answers:   answers,
		questions: questions,
		pool:      pool,
		picker:    selection.NewPicker(),
		now:       time.Now,
	}
}

type StartResult struct {
	AttemptID   string    `json:"attempt_id"`
	ServerTime  time.Time `json:"server_time"`
	QuestionIDs []string  `json:"question_ids"`
}

type SubmitResult struct {
	ServerTime    time.Time `json:"server_time"`
	IsCorrect     bool      `json:"is_correct"`
	CorrectAnswer string    `json:"correct_answer,omitempty"`
	Explanation   string    `json:"explanation,omitempty"`
}

type AdvanceResult struct {
	ServerTime              time.Time `json:"server_time"`
	NewSectionIndex         int       `json:"new_section_index"`
	CompletedSections       []int     `json:"completed_sections"`
	SectionRemainingSeconds *int      `json:"section_remaining_seconds,omitempty"`
}

type ResumeResult struct {
	Attempt          *models.Attempt  `json:"attempt"`
	Sections         []models.Section `json:"sections"`
	Answers          []models.Answer  `json:"answers"`
	ServerTime       time.Time        `json:"server_time"`
	RemainingSeconds *int             `json:"remaining_seconds,omitempty"`
}

type SyncResult struct {
	ServerTime              time.Time            `json:"server_time"`
	RemainingSeconds        *int                 `json:"remaining_seconds,omitempty"`
	SectionRemainingSeconds *int                 `json:"section_remaining_seconds,omitempty"`
	CurrentSectionIndex     int                  `json:"current_section_index"`
	CurrentQuestionIndex    int                  `json:"current_question_index"`
	Status                  models.AttemptStatus `json:"status"`
	CompletedSections       []int                `json:"completed_sections"`
}

// Start freezes a random, filter-matched question list, creates the attempt
// and implicitly opens section 0.
func (s *AttemptService) Start(ctx context.Context, userID string, f selection.Filter, timeLimitSeconds, sectionLimitSeconds *int) (*StartResult, error) {
	if userID == "" {
		return nil, apperror.New(apperror.KindUnauthorized, "no caller identity")
	}

	pool, err := s.pool.FindMatching(ctx, f)
	if err != nil {
		return nil, err
	}
	picked := s.picker.Pick(pool, f)
	if len(picked) == 0 {
		return nil, apperror.New(apperror.KindNotFound, "no questions match the requested filter")
	}

	ids := make([]string, len(picked))
	for i, q := range picked {
		ids[i] = q.ID
	}

	now := s.now()
	attempt := &models.Attempt{
		UserID:           userID,
		QuestionIDs:      ids,
		TimeLimitSeconds: timeLimitSeconds,
		StartedAt:        now,
		Status:           models.AttemptInProgress,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, err
	}

	if err := s.sections.Open(ctx, &models.Section{
		AttemptID:        attempt.ID,
		Index:            0,
		TimeLimitSeconds: sectionLimitSeconds,
		StartedAt:        now,
		Status:           models.SectionInProgress,
	}); err != nil {
		return nil, err
	}

	return &StartResult{AttemptID: attempt.ID, ServerTime: now, QuestionIDs: ids}, nil
}

// SubmitAnswer grades one question and upserts the answer row keyed by
// (attempt, question); resubmission overwrites, last write wins. The
// proctored response carries correctness only, never the canonical answer.
func (s *AttemptService) SubmitAnswer(ctx context.Context, userID, attemptID, questionID, rawAnswer string, elapsedSeconds int, declaredSection *int) (*SubmitResult, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, apperror.New(apperror.KindInvalidState, "attempt is not in progress")
	}
	if !contains(attempt.QuestionIDs, questionID) {
		return nil, apperror.New(apperror.KindPolicyViolation, "question is not part of this attempt")
	}

	sections, err := s.sections.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if err := section.ValidateSubmission(declaredSection, attempt.CurrentSectionIndex, section.CompletedSet(sections)); err != nil {
		log.Printf("policy violation on attempt %s by user %s: %v", attemptID, userID, err)
		return nil, err
	}

	question, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}

	normalized, correct := question.Grade(rawAnswer)
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}

	now := s.now()
	if err := s.answers.Upsert(ctx, &models.Answer{
		AttemptID:        attemptID,
		QuestionID:       questionID,
		Selected:         normalized,
		IsCorrect:        correct,
		TimeSpentSeconds: elapsedSeconds,
		AnsweredAt:       now,
	}); err != nil {
		return nil, err
	}

	return &SubmitResult{ServerTime: now, IsCorrect: correct}, nil
}

// AdvanceSection locks the current section and opens the next one with its
// own full time budget. The two section writes and the cursor move are each
// idempotent on their keys, so a concurrent double-advance converges.
func (s *AttemptService) AdvanceSection(ctx context.Context, userID, attemptID string, nextSectionLimitSeconds *int) (*AdvanceResult, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, apperror.New(apperror.KindInvalidState, "attempt is not in progress")
	}

	now := s.now()
	current := attempt.CurrentSectionIndex

	if err := s.sections.MarkCompleted(ctx, attemptID, current, now); err != nil {
		return nil, err
	}
	if err := s.attempts.AdvanceSection(ctx, attemptID, current); err != nil {
		return nil, err
	}

	// The cursor move above is the durable result. The new section's record
	// is opened after it; an open failure is logged and tolerated because a
	// later sync or advance retry upserts the same key.
	if err := s.sections.Open(ctx, &models.Section{
		AttemptID:        attemptID,
		Index:            current + 1,
		TimeLimitSeconds: nextSectionLimitSeconds,
		StartedAt:        now,
		Status:           models.SectionInProgress,
	}); err != nil {
		log.Printf("open section %d for attempt %s failed (cursor already advanced): %v", current+1, attemptID, err)
	}

	sections, err := s.sections.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	var sectionRemaining *int
	if nextSectionLimitSeconds != nil {
		full := *nextSectionLimitSeconds
		sectionRemaining = &full
	}

	return &AdvanceResult{
		ServerTime:              now,
		NewSectionIndex:         current + 1,
		CompletedSections:       section.CompletedIndices(sections),
		SectionRemainingSeconds: sectionRemaining,
	}, nil
}

// UpdatePosition stores the client's bookmark. It restores UI state on
// resume and is never consulted for scoring or access control.
func (s *AttemptService) UpdatePosition(ctx context.Context, userID, attemptID string, questionIndex int, declaredSection *int) error {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return err
	}
	if attempt.Status != models.AttemptInProgress {
		return apperror.New(apperror.KindInvalidState, "attempt is not in progress")
	}
	if err := section.ValidatePosition(questionIndex, len(attempt.QuestionIDs), declaredSection, attempt.CurrentSectionIndex); err != nil {
		return err
	}
	return s.attempts.UpdatePosition(ctx, attemptID, questionIndex)
}

// Resume rebuilds the full client state after a reload: the attempt, every
// section and answer row, and a fresh overall remaining time.
func (s *AttemptService) Resume(ctx context.Context, userID, attemptID string) (*ResumeResult, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	sections, err := s.sections.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	answers, err := s.answers.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &ResumeResult{
		Attempt:          attempt,
		Sections:         sections,
		Answers:          answers,
		ServerTime:       now,
		RemainingSeconds: overallRemaining(attempt, now),
	}, nil
}

// Sync is the low-payload poll: server time, remaining budgets, indices and
// completed sections, nothing else.
func (s *AttemptService) Sync(ctx context.Context, userID, attemptID string) (*SyncResult, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	sections, err := s.sections.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var sectionRemaining *int
	for _, sec := range sections {
		if sec.Index == attempt.CurrentSectionIndex && sec.TimeLimitSeconds != nil {
			left := timesync.RemainingSeconds(sec.StartedAt, *sec.TimeLimitSeconds, now)
			sectionRemaining = &left
			break
		}
	}

	return &SyncResult{
		ServerTime:              now,
		RemainingSeconds:        overallRemaining(attempt, now),
		SectionRemainingSeconds: sectionRemaining,
		CurrentSectionIndex:     attempt.CurrentSectionIndex,
		CurrentQuestionIndex:    attempt.CurrentQuestionIndex,
		Status:                  attempt.Status,
		CompletedSections:       section.CompletedIndices(sections),
	}, nil
}

// Complete scores every answer row against the frozen question list, so a
// completion arriving after expiry still scores off the stored data.
func (s *AttemptService) Complete(ctx context.Context, userID, attemptID string) (*models.ScoreBreakdown, error) {
	attempt, err := s.ownedAttempt(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.Status != models.AttemptInProgress {
		return nil, apperror.New(apperror.KindInvalidState, "attempt is already completed")
	}

	answers, err := s.answers.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, err
	}

	breakdown := scoring.Score(answers, attempt.QuestionIDs)
	if err := s.attempts.Complete(ctx, attemptID, breakdown, s.now()); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

func (s *AttemptService) ownedAttempt(ctx context.Context, userID, attemptID string) (*models.Attempt, error) {
	if userID == "" {
		return nil, apperror.New(apperror.KindUnauthorized, "no caller identity")
	}
	return s.attempts.FindByOwner(ctx, attemptID, userID)
}

func overallRemaining(attempt *models.Attempt, now time.Time) *int {
	if attempt.TimeLimitSeconds == nil {
		return nil
	}
	left := timesync.RemainingSeconds(attempt.StartedAt, *attempt.TimeLimitSeconds, now)
	return &left
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
