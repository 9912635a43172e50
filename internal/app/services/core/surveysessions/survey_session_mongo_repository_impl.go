package surveysessions

import (
	"context"
	"nutrisurvey-service/internal/app/models"
	"nutrisurvey-service/internal/pkg/constvars"
	"nutrisurvey-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SurveySessionMongoRepository struct {
	Collection *mongo.Collection
}

// NewSurveySessionMongoRepository reads sessions through the read-only
// client. Nothing in this service ever writes to the collector's data.
func NewSurveySessionMongoRepository(db *mongo.Client, dbName string) SurveySessionRepository {
	return &SurveySessionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSurveySessions),
	}
}

func (r *SurveySessionMongoRepository) FindAll(ctx context.Context, search string) ([]models.SurveySession, error) {
	cursor, err := r.Collection.Find(ctx, buildFilter(search), options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessions []models.SurveySession
	err = cursor.All(ctx, &sessions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return sessions, nil
}

func (r *SurveySessionMongoRepository) FindPage(ctx context.Context, search string, page, size int) ([]models.SurveySession, int64, error) {
	filter := buildFilter(search)

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "started_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var sessions []models.SurveySession
	err = cursor.All(ctx, &sessions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return sessions, total, nil
}

func (r *SurveySessionMongoRepository) FindByID(ctx context.Context, sessionID string) (*models.SurveySession, error) {
	var session models.SurveySession
	err := r.Collection.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &session, nil
}

func buildFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	regex := primitive.Regex{Pattern: search, Options: "i"}
	return bson.M{
		"$or": []bson.M{
			{"form_slug": regex},
			{"answers." + constvars.AnswerKeyDepartment: regex},
		},
	}
}
