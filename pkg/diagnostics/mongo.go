package diagnostics

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Default names used when the configuration leaves them empty.
const (
	DefaultDatabase   = "ventriglisse"
	DefaultCollection = "failures"
)

// MongoStore inserts one document per artifact, so failures from many
// sessions can be queried together.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	owned      bool
}

// NewMongoStore connects to uri and checks the server answers.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo diagnostics store needs a URI")
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	s := NewMongoStoreFromClient(client, database, collection)
	s.owned = true
	return s, nil
}

// NewMongoStoreFromClient uses an existing client. Close leaves the client
// connected.
func NewMongoStoreFromClient(client *mongo.Client, database, collection string) *MongoStore {
	if database == "" {
		database = DefaultDatabase
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}
}

// Save inserts the artifact and returns "mongo:<collection>/<id>".
func (s *MongoStore) Save(ctx context.Context, a Artifact) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := s.collection.InsertOne(ctx, a); err != nil {
		return "", fmt.Errorf("insert artifact: %w", err)
	}
	return fmt.Sprintf("mongo:%s/%s", s.collection.Name(), a.ID), nil
}

// Recent returns up to limit artifacts, newest first, without their images.
func (s *MongoStore) Recent(ctx context.Context, limit int64) ([]Artifact, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"image": 0})
	cur, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []Artifact
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Close disconnects the client when the store opened it.
func (s *MongoStore) Close(ctx context.Context) error {
	if !s.owned {
		return nil
	}
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
