package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoStore implements Store on top of a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB at the given URL and selects dbName.
// The connection is verified with a ping so that a misconfigured store is
// detected at startup rather than on the first request.
func NewMongoStore(ctx context.Context, url, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort: the client may hold resources even when the ping
		// fails.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (s *MongoStore) GetDocuments(
	ctx context.Context, collection string, filter Filter, limit int,
) ([]Document, error) {
	f := bson.M{}
	for k, v := range filter {
		f[k] = v
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.db.Collection(collection).Find(ctx, f, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying collection %q: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []Document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding documents from %q: %w", collection, err)
	}

	return docs, nil
}

func (s *MongoStore) CreateDocument(
	ctx context.Context, collection string, record any,
) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("error inserting into collection %q: %w", collection, err)
	}

	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error listing collections: %w", err)
	}
	return names, nil
}

func (s *MongoStore) Name() string {
	return s.db.Name()
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
