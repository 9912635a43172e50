package database

import (
	"context"
	"log"
	"nutrisurvey-service/internal/app/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	return connect(driverConfig.SurveyStore.ServiceURI)
}

// NewReadOnlyMongoDB connects with the restricted read-only credentials.
// When no read-only URI is configured it falls back to the service tier.
func NewReadOnlyMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	uri := driverConfig.SurveyStore.ReadOnlyURI
	if uri == "" {
		uri = driverConfig.SurveyStore.ServiceURI
	}
	return connect(uri)
}

func connect(uri string) *mongo.Client {
	dbOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(context.TODO(), nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}
