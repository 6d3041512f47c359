package repository

import (
	"context"
	"time"

	"exam-service/internal/apperror"
	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PracticeRepository struct {
	Col *mongo.Collection
}

func NewPracticeRepository(db *mongo.Database) *PracticeRepository {
	return &PracticeRepository{Col: db.Collection("practice_sessions")}
}

func (r *PracticeRepository) Create(ctx context.Context, s *models.PracticeSession) error {
	s.ID = primitive.NewObjectID().Hex()
	if _, err := r.Col.InsertOne(ctx, s); err != nil {
		s.ID = ""
		return storageErr("insert practice session", err)
	}
	return nil
}

func (r *PracticeRepository) FindByOwner(ctx context.Context, id, userID string) (*models.PracticeSession, error) {
	var s models.PracticeSession
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&s)
	if err != nil {
		return nil, storageErr("find practice session", err)
	}
	return &s, nil
}

func (r *PracticeRepository) UpdatePosition(ctx context.Context, id string, questionIndex int) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"current_question_index": questionIndex}},
	)
	if err != nil {
		return storageErr("update practice position", err)
	}
	return nil
}

func (r *PracticeRepository) Complete(ctx context.Context, id string, correct, percentage int, completedAt time.Time) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.AttemptInProgress},
		bson.M{"$set": bson.M{
			"status":        models.AttemptCompleted,
			"correct_count": correct,
			"percentage":    percentage,
			"completed_at":  completedAt,
		}},
	)
	if err != nil {
		return storageErr("complete practice session", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindInvalidState, "practice session is already completed")
	}
	return nil
}
