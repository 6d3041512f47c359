package service

import (
	"context"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/selection"

	"go.mongodb.org/mongo-driver/bson"
)

// QuestionService is the management surface used by the admin console.
// Writes invalidate the read-through cache so the answer-grading path never
// sees a stale correct answer.
type QuestionService struct {
	Repo  *repository.QuestionRepository
	Cache *repository.QuestionCache
}

func NewQuestionService(repo *repository.QuestionRepository, cache *repository.QuestionCache) *QuestionService {
	return &QuestionService{Repo: repo, Cache: cache}
}

func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.Cache.FindByID(ctx, id)
}

func (s *QuestionService) ListQuestions(ctx context.Context, f selection.Filter) ([]models.Question, error) {
	return s.Repo.FindMatching(ctx, f)
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	return s.Repo.Create(ctx, question)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id string, update bson.M) error {
	if err := s.Repo.Update(ctx, id, update); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, id)
	return nil
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, id)
	return nil
}
