package repository

import (
	"context"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AnswerRepository keeps exactly one row per (attempt, question).
// Re-submission overwrites; rows are never deleted.
type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

// Upsert writes the whole answer in one atomic call, keyed by
// (attempt, question). Last write wins for duplicate or out-of-order
// submissions of the same question.
func (r *AnswerRepository) Upsert(ctx context.Context, a *models.Answer) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"attempt_id": a.AttemptID, "question_id": a.QuestionID},
		bson.M{"$set": bson.M{
			"attempt_id":         a.AttemptID,
			"question_id":        a.QuestionID,
			"selected":           a.Selected,
			"is_correct":         a.IsCorrect,
			"time_spent_seconds": a.TimeSpentSeconds,
			"answered_at":        a.AnsweredAt,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storageErr("upsert answer", err)
	}
	return nil
}

func (r *AnswerRepository) FindByAttempt(ctx context.Context, attemptID string) ([]models.Answer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"attempt_id": attemptID})
	if err != nil {
		return nil, storageErr("find answers", err)
	}
	defer cur.Close(ctx)
	var answers []models.Answer
	for cur.Next(ctx) {
		var a models.Answer
		if err := cur.Decode(&a); err != nil {
			return nil, storageErr("decode answer", err)
		}
		answers = append(answers, a)
	}
	return answers, nil
}
