package service

import (
	"context"
	"time"

	"exam-service/internal/apperror"
	"exam-service/internal/models"
	"exam-service/internal/scoring"
	"exam-service/internal/section"
	"exam-service/internal/selection"
)

// PracticeService is the single-section sibling of AttemptService: same
// answer upsert and ownership discipline, no section gate, immediate
// feedback, and the friendlier correct/total scoring rule.
type PracticeService struct {
	practices PracticeStore
	answers   AnswerStore
	questions QuestionFinder
	pool      QuestionPool
	picker    *selection.Picker
	now       func() time.Time
}

func NewPracticeService(
	practices PracticeStore,
	answers AnswerStore,
	questions QuestionFinder,
	pool QuestionPool,
) *PracticeService {
	return &PracticeService{
		practices: practices,
		answers:   answers,
		questions: questions,
		pool:      pool,
		picker:    selection.NewPicker(),
		now:       time.Now,
	}
}

type PracticeScoreResult struct {
	Correct    int `json:"correct"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

func (s *PracticeService) Start(ctx context.Context, userID string, f selection.Filter) (*StartResult, error) {
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
	session := &models.PracticeSession{
		UserID:      userID,
		QuestionIDs: ids,
		StartedAt:   now,
		Status:      models.AttemptInProgress,
	}
	if err := s.practices.Create(ctx, session); err != nil {
		return nil, err
	}
	return &StartResult{AttemptID: session.ID, ServerTime: now, QuestionIDs: ids}, nil
}

// SubmitAnswer returns the canonical answer and explanation along with
// correctness: there is no proctoring concern in practice, so the client may
// show feedback immediately.
func (s *PracticeService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID, rawAnswer string, elapsedSeconds int) (*SubmitResult, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.AttemptInProgress {
		return nil, apperror.New(apperror.KindInvalidState, "practice session is not in progress")
	}
	if !contains(session.QuestionIDs, questionID) {
		return nil, apperror.New(apperror.KindPolicyViolation, "question is not part of this session")
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
		AttemptID:        sessionID,
		QuestionID:       questionID,
		Selected:         normalized,
		IsCorrect:        correct,
		TimeSpentSeconds: elapsedSeconds,
		AnsweredAt:       now,
	}); err != nil {
		return nil, err
	}

	return &SubmitResult{
		ServerTime:    now,
		IsCorrect:     correct,
		CorrectAnswer: models.NormalizeAnswer(question.CorrectAnswer),
		Explanation:   question.Explanation,
	}, nil
}

func (s *PracticeService) UpdatePosition(ctx context.Context, userID, sessionID string, questionIndex int) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if session.Status != models.AttemptInProgress {
		return apperror.New(apperror.KindInvalidState, "practice session is not in progress")
	}
	if err := section.ValidatePosition(questionIndex, len(session.QuestionIDs), nil, 0); err != nil {
		return err
	}
	return s.practices.UpdatePosition(ctx, sessionID, questionIndex)
}

func (s *PracticeService) Resume(ctx context.Context, userID, sessionID string) (*models.PracticeSession, []models.Answer, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, nil, err
	}
	answers, err := s.answers.FindByAttempt(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, answers, nil
}

// Complete scores correct/total with no penalty; deliberately not the
// proctored rule.
func (s *PracticeService) Complete(ctx context.Context, userID, sessionID string) (*PracticeScoreResult, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != models.AttemptInProgress {
		return nil, apperror.New(apperror.KindInvalidState, "practice session is already completed")
	}

	answers, err := s.answers.FindByAttempt(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	correct := 0
	known := make(map[string]bool, len(session.QuestionIDs))
	for _, id := range session.QuestionIDs {
		known[id] = true
	}
	for _, a := range answers {
		if known[a.QuestionID] && a.IsCorrect {
			correct++
		}
	}

	total := len(session.QuestionIDs)
	percentage := scoring.PracticeScore(correct, total)
	if err := s.practices.Complete(ctx, sessionID, correct, percentage, s.now()); err != nil {
		return nil, err
	}
	return &PracticeScoreResult{Correct: correct, Total: total, Percentage: percentage}, nil
}

func (s *PracticeService) ownedSession(ctx context.Context, userID, sessionID string) (*models.PracticeSession, error) {
	if userID == "" {
		return nil, apperror.New(apperror.KindUnauthorized, "no caller identity")
	}
	return s.practices.FindByOwner(ctx, sessionID, userID)
}
