package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"insightboard/internal/insight/models"
)

// MongoStore keeps one document per record in a collection. Documents are
// stored schemaless; the driver-assigned _id is never exposed.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore wraps an existing collection handle.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) List(ctx context.Context) ([]models.Record, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "$natural", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find records: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	records := make([]models.Record, 0)
	for cursor.Next(ctx) {
		rec, err := recordFromDocument(cursor.Current)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Replace deletes all documents and inserts records. The two steps are not
// atomic: a concurrent reader may observe a partially replaced collection.
func (s *MongoStore) Replace(ctx context.Context, records []models.Record) error {
	docs := make([]interface{}, 0, len(records))
	for i, rec := range records {
		doc, err := documentFromRecord(rec)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		docs = append(docs, doc)
	}

	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert records: %w", err)
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return int(n), nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// recordFromDocument converts a BSON document to a record through relaxed
// extended JSON. Strings, numbers and nulls map to their scalar kinds; any
// other BSON value is kept as its extended JSON form.
func recordFromDocument(raw bson.Raw) (models.Record, error) {
	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	delete(rec, "_id")
	return rec, nil
}

// documentFromRecord converts a record to an ordered BSON document. Missing
// fields are omitted.
func documentFromRecord(rec models.Record) (bson.D, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(data, false, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
