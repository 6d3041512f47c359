package repository

import (
	"context"
	"time"

	"exam-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SectionRepository keeps one row per (attempt, section index). Both writes
// are upserts on that key, so a double-advance race collapses to a single
// row instead of duplicating or skipping an index.
type SectionRepository struct {
	Col *mongo.Collection
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{Col: db.Collection("sections")}
}

// Open creates the record for a freshly entered section. Replaying the same
// open leaves the original started_at untouched.
func (r *SectionRepository) Open(ctx context.Context, s *models.Section) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"attempt_id": s.AttemptID, "section_index": s.Index},
		bson.M{"$setOnInsert": bson.M{
			"attempt_id":         s.AttemptID,
			"section_index":      s.Index,
			"time_limit_seconds": s.TimeLimitSeconds,
			"started_at":         s.StartedAt,
			"status":             models.SectionInProgress,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storageErr("open section", err)
	}
	return nil
}

// MarkCompleted locks a section. Safe to replay: the second write sets the
// same terminal status on the same row.
func (r *SectionRepository) MarkCompleted(ctx context.Context, attemptID string, index int, at time.Time) error {
	_, err := r.Col.UpdateOne(ctx,
		bson.M{"attempt_id": attemptID, "section_index": index},
		bson.M{"$set": bson.M{
			"status":       models.SectionCompleted,
			"completed_at": at,
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return storageErr("mark section completed", err)
	}
	return nil
}

func (r *SectionRepository) FindByAttempt(ctx context.Context, attemptID string) ([]models.Section, error) {
	cur, err := r.Col.Find(ctx, bson.M{"attempt_id": attemptID},
		options.Find().SetSort(bson.M{"section_index": 1}))
	if err != nil {
		return nil, storageErr("find sections", err)
	}
	defer cur.Close(ctx)
	var sections []models.Section
	for cur.Next(ctx) {
		var s models.Section
		if err := cur.Decode(&s); err != nil {
			return nil, storageErr("decode section", err)
		}
		sections = append(sections, s)
	}
	return sections, nil
}
