package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// stubStore saves the db helper variables and restores them when the test
// finishes, mirroring how main_test.go swaps startServer.
func stubStore(t *testing.T) {
	t.Helper()
	origFindOne := findOne
	origCreateOne := createOne
	origFindOneAndUpdate := findOneAndUpdate
	t.Cleanup(func() {
		findOne = origFindOne
		createOne = origCreateOne
		findOneAndUpdate = origFindOneAndUpdate
	})
}

func noDocuments(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
	return mongo.ErrNoDocuments
}

func duplicateKeyErr(message string) error {
	return mongo.WriteException{
		WriteErrors: mongo.WriteErrors{
			{Code: 11000, Message: message},
		},
	}
}
