package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
)

// ReportRepo persists insight snapshots. A snapshot is a frozen analytics
// bundle; the latest one per survey is what dashboards read when they do not
// want a live recompute.
type ReportRepo interface {
	SaveSnapshot(ctx context.Context, snapshot *model.InsightSnapshot) error
	GetLatestSnapshot(ctx context.Context, surveyID string) (*model.InsightSnapshot, error)
}

type reportRepo struct {
	collection *mongo.Collection
}

func NewReportRepo(db *mongo.Database) ReportRepo {
	return &reportRepo{collection: db.Collection("insight_snapshots")}
}

func (r *reportRepo) SaveSnapshot(ctx context.Context, snapshot *model.InsightSnapshot) error {
	if snapshot.ID == "" {
		snapshot.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

func (r *reportRepo) GetLatestSnapshot(ctx context.Context, surveyID string) (*model.InsightSnapshot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "generatedAt", Value: -1}})
	var snapshot model.InsightSnapshot
	err := r.collection.FindOne(ctx, bson.M{"surveyId": surveyID}, opts).Decode(&snapshot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}
