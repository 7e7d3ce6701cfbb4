package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pulsecheck/internal/model"
)

// SessionRepo persists conversation sessions. Completion is the only
// mutation: EndedAt, FinalMood and Status are appended once.
type SessionRepo interface {
	Create(ctx context.Context, session *model.Session) error
	GetByID(ctx context.Context, id string) (*model.Session, error)
	GetBySurveyID(ctx context.Context, surveyID string) ([]model.Session, error)
	Complete(ctx context.Context, id string, finalMood *float64, status model.SessionStatus) error
}

type sessionRepo struct {
	collection *mongo.Collection
}

func NewSessionRepo(db *mongo.Database) SessionRepo {
	return &sessionRepo{collection: db.Collection("sessions")}
}

func (r *sessionRepo) Create(ctx context.Context, session *model.Session) error {
	if session.ID == "" {
		session.ID = primitive.NewObjectID().Hex()
	}
	if session.StartedAt.IsZero() {
		session.StartedAt = time.Now()
	}
	if session.Status == "" {
		session.Status = model.SessionActive
	}
	_, err := r.collection.InsertOne(ctx, session)
	return err
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.Session, error) {
	var session model.Session
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]model.Session, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sessions []model.Session
	if err = cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) Complete(ctx context.Context, id string, finalMood *float64, status model.SessionStatus) error {
	update := bson.M{
		"endedAt": time.Now(),
		"status":  status,
	}
	if finalMood != nil {
		update["finalMood"] = *finalMood
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	return err
}
