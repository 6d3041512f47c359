package repository

import (
	"context"
	"time"

	"exam-service/internal/models"
	"exam-service/internal/selection"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, storageErr("find question", err)
	}
	return &question, nil
}

// FindMatching returns the active pool for a selection filter; random
// sampling happens in the selection package, not in the query.
func (r *QuestionRepository) FindMatching(ctx context.Context, f selection.Filter) ([]models.Question, error) {
	filter := bson.M{"status": models.QuestionActive}
	if f.Subject != "" {
		filter["subject"] = f.Subject
	}
	if f.Topic != "" {
		filter["topic"] = f.Topic
	}
	if f.Difficulty != "" {
		filter["difficulty_level"] = f.Difficulty
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, storageErr("find questions", err)
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, storageErr("decode question", err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	question.ID = primitive.NewObjectID().Hex()
	question.Status = models.QuestionActive
	question.CreatedAt = time.Now()
	question.UpdatedAt = question.CreatedAt
	if _, err := r.Col.InsertOne(ctx, question); err != nil {
		question.ID = ""
		return storageErr("insert question", err)
	}
	return nil
}

func (r *QuestionRepository) Update(ctx context.Context, id string, update bson.M) error {
	update["updated_at"] = time.Now()
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return storageErr("update question", err)
	}
	return nil
}

// Delete is a soft delete so past attempts keep resolving their questions.
func (r *QuestionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": "deleted", "updated_at": time.Now()}})
	if err != nil {
		return storageErr("delete question", err)
	}
	return nil
}
