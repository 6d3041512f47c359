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

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	attempt.ID = primitive.NewObjectID().Hex()
	if _, err := r.Col.InsertOne(ctx, attempt); err != nil {
		attempt.ID = ""
		return storageErr("insert attempt", err)
	}
	return nil
}

// FindByOwner fails closed: an attempt that exists but belongs to someone
// else reads the same as one that does not exist.
func (r *AttemptRepository) FindByOwner(ctx context.Context, id, userID string) (*models.Attempt, error) {
	var attempt models.Attempt
	err := r.Col.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&attempt)
	if err != nil {
		return nil, storageErr("find attempt", err)
	}
	return &attempt, nil
}

func (r *AttemptRepository) UpdatePosition(ctx context.Context, id string, questionIndex int) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"current_question_index": questionIndex}},
	)
	if err != nil {
		return storageErr("update attempt position", err)
	}
	return nil
}

// AdvanceSection moves the cursor forward and resets the question bookmark in
// one write. Filtering on the prior index makes a racing double-advance
// converge on a single increment instead of two.
func (r *AttemptRepository) AdvanceSection(ctx context.Context, id string, fromSectionIndex int) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.AttemptInProgress, "current_section_index": fromSectionIndex},
		bson.M{"$set": bson.M{
			"current_section_index":  fromSectionIndex + 1,
			"current_question_index": 0,
		}},
	)
	if err != nil {
		return storageErr("advance attempt section", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindInvalidState, "attempt is not at the expected section")
	}
	return nil
}

// Complete finalizes status, counters and timestamps in a single
// conditional write; a second completion matches nothing.
func (r *AttemptRepository) Complete(ctx context.Context, id string, b models.ScoreBreakdown, completedAt time.Time) error {
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.AttemptInProgress},
		bson.M{"$set": bson.M{
			"status":           models.AttemptCompleted,
			"correct_count":    b.Correct,
			"incorrect_count":  b.Incorrect,
			"unanswered_count": b.Unanswered,
			"raw_score":        b.RawScore,
			"percentage":       b.Percentage,
			"completed_at":     completedAt,
		}},
	)
	if err != nil {
		return storageErr("complete attempt", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.KindInvalidState, "attempt is already completed")
	}
	return nil
}
