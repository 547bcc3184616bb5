package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
)

/*
* Read the connection string from the environment (MongoDB Atlas or local)
* Connect with a bounded timeout and ping to verify the deployment is reachable
 */
func Connect() error {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017/meditrack"
	}
	dbName := os.Getenv("MONGODB_DB")
	if dbName == "" {
		dbName = "meditrack"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := c.Ping(ctx, nil); err != nil {
		return err
	}

	client = c
	database = c.Database(dbName)
	log.Println("MongoDB connected:", dbName)
	return nil
}

func Disconnect(ctx context.Context) {
	if client == nil {
		return
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Println("Error disconnecting MongoDB:", err)
	}
}

// OpenCollections returns a handle for the named collection. Returns nil when
// no connection has been established (tests stub the helpers below instead).
func OpenCollections(name string) *mongo.Collection {
	if database == nil {
		return nil
	}
	return database.Collection(name)
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter bson.M, result interface{}) error {
	return coll.FindOne(ctx, filter).Decode(result)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

// FindOneAndUpdate applies update atomically and decodes the post-update
// document into result. Returns mongo.ErrNoDocuments when no document matches.
func FindOneAndUpdate(ctx context.Context, coll *mongo.Collection, filter bson.M, update bson.M, result interface{}) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
}

func CountDocs(ctx context.Context, coll *mongo.Collection, filter bson.M) (int64, error) {
	return coll.CountDocuments(ctx, filter)
}

func DeleteMany(ctx context.Context, coll *mongo.Collection, filter bson.M) error {
	_, err := coll.DeleteMany(ctx, filter)
	return err
}

func DropCollection(ctx context.Context, coll *mongo.Collection) error {
	return coll.Drop(ctx)
}

/*
* Unique indexes back the store-level invariants:
* patientId / doctorId and email are unique per collection
 */
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	patientIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "patientId", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	if _, err := OpenCollections("patients").Indexes().CreateMany(ctx, patientIndexes); err != nil {
		return err
	}

	doctorIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorId", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
	}
	if _, err := OpenCollections("doctors").Indexes().CreateMany(ctx, doctorIndexes); err != nil {
		return err
	}
	return nil
}
