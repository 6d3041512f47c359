package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"exam-service/internal/apperror"
	"exam-service/internal/models"
	"exam-service/internal/selection"
)

// In-memory stores standing in for the mongo repositories.

type fakeAttemptStore struct {
	byID map[string]*models.Attempt
	seq  int
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{byID: make(map[string]*models.Attempt)}
}

func (f *fakeAttemptStore) Create(_ context.Context, attempt *models.Attempt) error {
	f.seq++
	attempt.ID = fmt.Sprintf("attempt-%d", f.seq)
	cp := *attempt
	f.byID[attempt.ID] = &cp
	return nil
}

func (f *fakeAttemptStore) FindByOwner(_ context.Context, id, userID string) (*models.Attempt, error) {
	a, ok := f.byID[id]
	if !ok || a.UserID != userID {
		return nil, apperror.New(apperror.KindNotFound, "find attempt")
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttemptStore) UpdatePosition(_ context.Context, id string, questionIndex int) error {
	a, ok := f.byID[id]
	if !ok {
		return apperror.New(apperror.KindNotFound, "update attempt position")
	}
	a.CurrentQuestionIndex = questionIndex
	return nil
}

func (f *fakeAttemptStore) AdvanceSection(_ context.Context, id string, fromSectionIndex int) error {
	a, ok := f.byID[id]
	if !ok {
		return apperror.New(apperror.KindNotFound, "advance attempt section")
	}
	if a.Status != models.AttemptInProgress || a.CurrentSectionIndex != fromSectionIndex {
		return apperror.New(apperror.KindInvalidState, "attempt is not at the expected section")
	}
	a.CurrentSectionIndex = fromSectionIndex + 1
	a.CurrentQuestionIndex = 0
	return nil
}

func (f *fakeAttemptStore) Complete(_ context.Context, id string, b models.ScoreBreakdown, completedAt time.Time) error {
	a, ok := f.byID[id]
	if !ok {
		return apperror.New(apperror.KindNotFound, "complete attempt")
	}
	if a.Status != models.AttemptInProgress {
		return apperror.New(apperror.KindInvalidState, "attempt is already completed")
	}
	a.Status = models.AttemptCompleted
	a.CorrectCount = b.Correct
	a.IncorrectCount = b.Incorrect
	a.UnansweredCount = b.Unanswered
	a.RawScore = b.RawScore
	a.Percentage = b.Percentage
	a.CompletedAt = &completedAt
	return nil
}

type sectionKey struct {
	attemptID string
	index     int
}

type fakeSectionStore struct {
	rows map[sectionKey]*models.Section
}

func newFakeSectionStore() *fakeSectionStore {
	return &fakeSectionStore{rows: make(map[sectionKey]*models.Section)}
}

func (f *fakeSectionStore) Open(_ context.Context, s *models.Section) error {
	key := sectionKey{s.AttemptID, s.Index}
	if _, exists := f.rows[key]; exists {
		return nil // upsert on existing key keeps the original row
	}
	cp := *s
	f.rows[key] = &cp
	return nil
}

func (f *fakeSectionStore) MarkCompleted(_ context.Context, attemptID string, index int, at time.Time) error {
	key := sectionKey{attemptID, index}
	row, exists := f.rows[key]
	if !exists {
		row = &models.Section{AttemptID: attemptID, Index: index, StartedAt: at}
		f.rows[key] = row
	}
	row.Status = models.SectionCompleted
	row.CompletedAt = &at
	return nil
}

func (f *fakeSectionStore) FindByAttempt(_ context.Context, attemptID string) ([]models.Section, error) {
	var out []models.Section
	for key, row := range f.rows {
		if key.attemptID == attemptID {
			out = append(out, *row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out, nil
}

type answerKey struct {
	attemptID  string
	questionID string
}

type fakeAnswerStore struct {
	rows map[answerKey]models.Answer
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{rows: make(map[answerKey]models.Answer)}
}

func (f *fakeAnswerStore) Upsert(_ context.Context, a *models.Answer) error {
	f.rows[answerKey{a.AttemptID, a.QuestionID}] = *a
	return nil
}

func (f *fakeAnswerStore) FindByAttempt(_ context.Context, attemptID string) ([]models.Answer, error) {
	var out []models.Answer
	for key, row := range f.rows {
		if key.attemptID == attemptID {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeQuestionStore struct {
	byID map[string]models.Question
}

func newFakeQuestionStore(questions ...models.Question) *fakeQuestionStore {
	f := &fakeQuestionStore{byID: make(map[string]models.Question)}
	for _, q := range questions {
		f.byID[q.ID] = q
	}
	return f
}

func (f *fakeQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	q, ok := f.byID[id]
	if !ok {
		return nil, apperror.New(apperror.KindNotFound, "find question")
	}
	return &q, nil
}

func (f *fakeQuestionStore) FindMatching(_ context.Context, filter selection.Filter) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.byID {
		if selection.Matches(q, filter) {
			out = append(out, q)
		}
	}
	return out, nil
}

func examQuestions(n int) []models.Question {
	out := make([]models.Question, n)
	for i := range out {
		out[i] = models.Question{
			ID:              fmt.Sprintf("q%d", i),
			Content:         fmt.Sprintf("question %d", i),
			CorrectAnswer:   "B",
			Explanation:     "because",
			Subject:         "math",
			DifficultyLevel: "medium",
			Status:          models.QuestionActive,
		}
	}
	return out
}

func intp(v int) *int { return &v }

type fixture struct {
	svc      *AttemptService
	attempts *fakeAttemptStore
	sections *fakeSectionStore
	answers  *fakeAnswerStore
	now      time.Time
}

func newFixture(t *testing.T, questionCount int) *fixture {
	t.Helper()
	attempts := newFakeAttemptStore()
	sections := newFakeSectionStore()
	answers := newFakeAnswerStore()
	questions := newFakeQuestionStore(examQuestions(questionCount)...)

	svc := NewAttemptService(attempts, sections, answers, questions, questions)
	svc.picker = selection.NewSeededPicker(1)

	fix := &fixture{svc: svc, attempts: attempts, sections: sections, answers: answers,
		now: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	svc.now = func() time.Time { return fix.now }
	return fix
}

func TestStartAttempt(t *testing.T) {
	fix := newFixture(t, 8)

	res, err := fix.svc.Start(context.Background(), "user-1",
		selection.Filter{Subject: "math", Count: 5}, intp(600), intp(300))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(res.QuestionIDs) != 5 {
		t.Errorf("expected 5 question ids, got %d", len(res.QuestionIDs))
	}
	if !res.ServerTime.Equal(fix.now) {
		t.Errorf("ServerTime = %v, want %v", res.ServerTime, fix.now)
	}

	attempt, err := fix.svc.attempts.FindByOwner(context.Background(), res.AttemptID, "user-1")
	if err != nil {
		t.Fatalf("attempt not stored: %v", err)
	}
	if attempt.Status != models.AttemptInProgress {
		t.Errorf("status = %q, want in_progress", attempt.Status)
	}
	if attempt.CurrentSectionIndex != 0 {
		t.Errorf("current section = %d, want 0", attempt.CurrentSectionIndex)
	}

	sections, _ := fix.sections.FindByAttempt(context.Background(), res.AttemptID)
	if len(sections) != 1 || sections[0].Index != 0 || sections[0].Status != models.SectionInProgress {
		t.Errorf("expected open section 0, got %+v", sections)
	}
}

func TestStartNoMatchingQuestions(t *testing.T) {
	fix := newFixture(t, 5)

	_, err := fix.svc.Start(context.Background(), "user-1",
		selection.Filter{Subject: "history", Count: 5}, nil, nil)
	if !apperror.IsNotFound(err) {
		t.Errorf("expected NotFound for unmatched filter, got %v", err)
	}
}

func TestStartRequiresIdentity(t *testing.T) {
	fix := newFixture(t, 5)

	_, err := fix.svc.Start(context.Background(), "", selection.Filter{Count: 5}, nil, nil)
	if !apperror.IsUnauthorized(err) {
		t.Errorf("expected Unauthorized, got %v", err)
	}
}

func TestSubmitAnswerDoesNotLeakCanonicalAnswer(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	sub, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID,
		res.QuestionIDs[0], "b", 12, intp(0))
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !sub.IsCorrect {
		t.Error("expected correct answer to grade true")
	}
	if sub.CorrectAnswer != "" || sub.Explanation != "" {
		t.Errorf("proctored response leaked canonical answer: %+v", sub)
	}
	if sub.ServerTime.IsZero() {
		t.Error("expected server time in response")
	}
}

func TestSubmitAnswerIdempotentUpsert(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)
	qid := res.QuestionIDs[0]

	if _, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, qid, "A", 5, nil); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, qid, "B", 9, nil); err != nil {
		t.Fatalf("second submit: %v", err)
	}

	answers, _ := fix.answers.FindByAttempt(context.Background(), res.AttemptID)
	if len(answers) != 1 {
		t.Fatalf("expected exactly one answer row, got %d", len(answers))
	}
	if answers[0].Selected != "B" || !answers[0].IsCorrect {
		t.Errorf("row does not reflect latest submission: %+v", answers[0])
	}
}

func TestSubmitAnswerEmptyNeverCorrect(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	sub, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID,
		res.QuestionIDs[0], "   ", 3, nil)
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if sub.IsCorrect {
		t.Error("blank submission must not grade correct")
	}

	answers, _ := fix.answers.FindByAttempt(context.Background(), res.AttemptID)
	if answers[0].Selected != "" {
		t.Errorf("blank submission stored as %q, want empty", answers[0].Selected)
	}
}

func TestSubmitAnswerOwnershipFailsClosed(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	_, err := fix.svc.SubmitAnswer(context.Background(), "user-2", res.AttemptID,
		res.QuestionIDs[0], "B", 5, nil)
	if !apperror.IsNotFound(err) {
		t.Errorf("foreign attempt must read as NotFound, got %v", err)
	}
}

func TestSubmitAnswerQuestionOutsideAttempt(t *testing.T) {
	fix := newFixture(t, 8)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 2}, nil, nil)

	picked := make(map[string]bool)
	for _, id := range res.QuestionIDs {
		picked[id] = true
	}
	var outside string
	for i := 0; i < 8; i++ {
		if id := fmt.Sprintf("q%d", i); !picked[id] {
			outside = id
			break
		}
	}

	_, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, outside, "B", 5, nil)
	if !apperror.IsPolicyViolation(err) {
		t.Errorf("expected PolicyViolation for question outside attempt, got %v", err)
	}
}

func TestAdvanceSectionLocksAndOpens(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, intp(1800), intp(600))

	fix.now = fix.now.Add(5 * time.Minute)
	adv, err := fix.svc.AdvanceSection(context.Background(), "user-1", res.AttemptID, intp(900))
	if err != nil {
		t.Fatalf("AdvanceSection: %v", err)
	}
	if adv.NewSectionIndex != 1 {
		t.Errorf("NewSectionIndex = %d, want 1", adv.NewSectionIndex)
	}
	if len(adv.CompletedSections) != 1 || adv.CompletedSections[0] != 0 {
		t.Errorf("CompletedSections = %v, want [0]", adv.CompletedSections)
	}
	if adv.SectionRemainingSeconds == nil || *adv.SectionRemainingSeconds != 900 {
		t.Errorf("expected full fresh budget 900, got %v", adv.SectionRemainingSeconds)
	}

	sections, _ := fix.sections.FindByAttempt(context.Background(), res.AttemptID)
	if len(sections) != 2 {
		t.Fatalf("expected 2 section rows, got %d", len(sections))
	}
	if sections[0].Status != models.SectionCompleted || sections[0].CompletedAt == nil {
		t.Errorf("section 0 not completed: %+v", sections[0])
	}
	if sections[1].Status != models.SectionInProgress || !sections[1].StartedAt.Equal(fix.now) {
		t.Errorf("section 1 not freshly opened: %+v", sections[1])
	}

	attempt, _ := fix.attempts.FindByOwner(context.Background(), res.AttemptID, "user-1")
	if attempt.CurrentSectionIndex != 1 || attempt.CurrentQuestionIndex != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", attempt.CurrentSectionIndex, attempt.CurrentQuestionIndex)
	}
}

func TestSectionLockInvariant(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, intp(600))

	if _, err := fix.svc.AdvanceSection(context.Background(), "user-1", res.AttemptID, intp(600)); err != nil {
		t.Fatalf("advance: %v", err)
	}

	// Section 0 stays locked no matter how many advances follow.
	for i := 0; i < 3; i++ {
		_, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID,
			res.QuestionIDs[0], "B", 5, intp(0))
		if !apperror.IsPolicyViolation(err) {
			t.Fatalf("advance %d: expected PolicyViolation for locked section, got %v", i+1, err)
		}
		if _, err := fix.svc.AdvanceSection(context.Background(), "user-1", res.AttemptID, intp(600)); err != nil {
			t.Fatalf("advance %d: %v", i+2, err)
		}
	}
}

func TestFutureSectionRejected(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, intp(600))
	fix.svc.AdvanceSection(context.Background(), "user-1", res.AttemptID, intp(600))

	// current_section_index is now 1; section 2 has no record yet.
	_, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID,
		res.QuestionIDs[1], "B", 5, intp(2))
	if !apperror.IsPolicyViolation(err) {
		t.Errorf("expected PolicyViolation for future section, got %v", err)
	}
}

func TestUpdatePosition(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	if err := fix.svc.UpdatePosition(context.Background(), "user-1", res.AttemptID, 3, intp(0)); err != nil {
		t.Fatalf("UpdatePosition: %v", err)
	}
	attempt, _ := fix.attempts.FindByOwner(context.Background(), res.AttemptID, "user-1")
	if attempt.CurrentQuestionIndex != 3 {
		t.Errorf("bookmark = %d, want 3", attempt.CurrentQuestionIndex)
	}

	if err := fix.svc.UpdatePosition(context.Background(), "user-1", res.AttemptID, 5, nil); !apperror.IsPolicyViolation(err) {
		t.Errorf("expected PolicyViolation for index past range, got %v", err)
	}
	if err := fix.svc.UpdatePosition(context.Background(), "user-1", res.AttemptID, 2, intp(1)); !apperror.IsPolicyViolation(err) {
		t.Errorf("expected PolicyViolation for future section position, got %v", err)
	}
}

func TestResumeRebuildsState(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, intp(600), intp(300))
	fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, res.QuestionIDs[0], "B", 10, intp(0))
	fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, res.QuestionIDs[1], "A", 12, intp(0))

	fix.now = fix.now.Add(200 * time.Second)
	resume, err := fix.svc.Resume(context.Background(), "user-1", res.AttemptID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resume.Attempt.ID != res.AttemptID {
		t.Errorf("wrong attempt resumed")
	}
	if len(resume.Answers) != 2 {
		t.Errorf("expected 2 answers, got %d", len(resume.Answers))
	}
	if len(resume.Sections) != 1 {
		t.Errorf("expected 1 section, got %d", len(resume.Sections))
	}
	if resume.RemainingSeconds == nil || *resume.RemainingSeconds != 400 {
		t.Errorf("RemainingSeconds = %v, want 400", resume.RemainingSeconds)
	}
}

func TestResumeUntimedHasNoRemaining(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	resume, err := fix.svc.Resume(context.Background(), "user-1", res.AttemptID)
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if resume.RemainingSeconds != nil {
		t.Errorf("untimed attempt reported remaining %v", *resume.RemainingSeconds)
	}
}

func TestSyncReportsSectionBudgetIndependently(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, intp(1800), intp(600))

	fix.now = fix.now.Add(100 * time.Second)
	sync, err := fix.svc.Sync(context.Background(), "user-1", res.AttemptID)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if sync.RemainingSeconds == nil || *sync.RemainingSeconds != 1700 {
		t.Errorf("overall remaining = %v, want 1700", sync.RemainingSeconds)
	}
	if sync.SectionRemainingSeconds == nil || *sync.SectionRemainingSeconds != 500 {
		t.Errorf("section remaining = %v, want 500", sync.SectionRemainingSeconds)
	}

	// New section gets its own full budget, not a carry-over.
	adv, _ := fix.svc.AdvanceSection(context.Background(), "user-1", res.AttemptID, intp(600))
	if adv == nil {
		t.Fatal("advance failed")
	}
	fix.now = fix.now.Add(50 * time.Second)
	sync, _ = fix.svc.Sync(context.Background(), "user-1", res.AttemptID)
	if sync.SectionRemainingSeconds == nil || *sync.SectionRemainingSeconds != 550 {
		t.Errorf("fresh section remaining = %v, want 550", sync.SectionRemainingSeconds)
	}
	if sync.CurrentSectionIndex != 1 {
		t.Errorf("CurrentSectionIndex = %d, want 1", sync.CurrentSectionIndex)
	}
	if len(sync.CompletedSections) != 1 || sync.CompletedSections[0] != 0 {
		t.Errorf("CompletedSections = %v, want [0]", sync.CompletedSections)
	}
}

func TestCompleteInfersUnanswered(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	// One correct answer, four questions never answered.
	fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, res.QuestionIDs[0], "B", 10, nil)

	breakdown, err := fix.svc.Complete(context.Background(), "user-1", res.AttemptID)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if breakdown.Correct != 1 || breakdown.Incorrect != 0 || breakdown.Unanswered != 4 {
		t.Errorf("breakdown = %+v, want 1/0/4", breakdown)
	}
	if breakdown.RawScore != 1 || breakdown.Percentage != 20 {
		t.Errorf("raw=%v pct=%d, want 1/20", breakdown.RawScore, breakdown.Percentage)
	}

	attempt, _ := fix.attempts.FindByOwner(context.Background(), res.AttemptID, "user-1")
	if attempt.Status != models.AttemptCompleted || attempt.CompletedAt == nil {
		t.Errorf("attempt not finalized: %+v", attempt)
	}
}

func TestCompleteTwiceFails(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)

	if _, err := fix.svc.Complete(context.Background(), "user-1", res.AttemptID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := fix.svc.Complete(context.Background(), "user-1", res.AttemptID); !apperror.IsInvalidState(err) {
		t.Errorf("expected InvalidState on second complete, got %v", err)
	}
}

func TestSubmitAfterCompleteFails(t *testing.T) {
	fix := newFixture(t, 5)
	res, _ := fix.svc.Start(context.Background(), "user-1", selection.Filter{Count: 5}, nil, nil)
	fix.svc.Complete(context.Background(), "user-1", res.AttemptID)

	_, err := fix.svc.SubmitAnswer(context.Background(), "user-1", res.AttemptID, res.QuestionIDs[0], "B", 5, nil)
	if !apperror.IsInvalidState(err) {
		t.Errorf("expected InvalidState, got %v", err)
	}
}

// The end-to-end walk from the contract: start, answer, advance, hit the
// lock, complete.
func TestEndToEndScenario(t *testing.T) {
	fix := newFixture(t, 10)
	ctx := context.Background()

	res, err := fix.svc.Start(ctx, "user-1", selection.Filter{Subject: "math", Count: 5}, intp(1800), intp(600))
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(res.QuestionIDs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(res.QuestionIDs))
	}

	sub, err := fix.svc.SubmitAnswer(ctx, "user-1", res.AttemptID, res.QuestionIDs[0], "B", 20, intp(0))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !sub.IsCorrect || sub.ServerTime.IsZero() {
		t.Fatalf("submit result = %+v", sub)
	}

	adv, err := fix.svc.AdvanceSection(ctx, "user-1", res.AttemptID, intp(600))
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if adv.NewSectionIndex != 1 {
		t.Fatalf("section index = %d, want 1", adv.NewSectionIndex)
	}

	if _, err := fix.svc.SubmitAnswer(ctx, "user-1", res.AttemptID, res.QuestionIDs[1], "B", 5, intp(0)); !apperror.IsPolicyViolation(err) {
		t.Fatalf("expected PolicyViolation for locked section, got %v", err)
	}

	breakdown, err := fix.svc.Complete(ctx, "user-1", res.AttemptID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	// Exactly one correct answer, four unanswered.
	if breakdown.Correct != 1 || breakdown.Unanswered != 4 || breakdown.Percentage != 20 {
		t.Fatalf("breakdown = %+v, want correct=1 unanswered=4 pct=20", breakdown)
	}
}
