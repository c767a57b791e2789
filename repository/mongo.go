package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one collection per resource. Document ids are the hex of
// a fresh ObjectID stored as a string _id.
type MongoStore struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewMongoStore(db *mongo.Database, timeout time.Duration) *MongoStore {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MongoStore{db: db, timeout: timeout}
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore) Collection(name string) CollectionRef {
	return &mongoCollection{store: s, col: s.db.Collection(name)}
}

func (s *MongoStore) Doc(collection, id string) DocumentRef {
	return &mongoDocument{store: s, col: s.db.Collection(collection), id: id}
}

func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.db.Client().Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

type mongoCollection struct {
	store *MongoStore
	col   *mongo.Collection
}

func (c *mongoCollection) Name() string { return c.col.Name() }

func (c *mongoCollection) Query(ctx context.Context, filters ...Filter) ([]Snapshot, error) {
	ctx, cancel := c.store.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := c.col.Find(ctx, mongoFilter(filters), opts)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.col.Name(), err)
	}
	defer cursor.Close(ctx)

	list := []Snapshot{}
	for cursor.Next(ctx) {
		raw := make(bson.Raw, len(cursor.Current))
		copy(raw, cursor.Current)
		list = append(list, snapshot{id: rawID(raw), raw: raw})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("query %s: %w", c.col.Name(), err)
	}
	return list, nil
}

func (c *mongoCollection) Add(ctx context.Context, doc any) (string, error) {
	ctx, cancel := c.store.withTimeout(ctx)
	defer cancel()

	body, err := encode(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", c.col.Name(), err)
	}
	id := primitive.NewObjectID().Hex()
	if _, err := c.col.InsertOne(ctx, append(bson.D{{Key: "_id", Value: id}}, body...)); err != nil {
		return "", fmt.Errorf("insert into %s: %w", c.col.Name(), err)
	}
	return id, nil
}

type mongoDocument struct {
	store *MongoStore
	col   *mongo.Collection
	id    string
}

func (d *mongoDocument) ID() string { return d.id }

func (d *mongoDocument) filter() bson.M { return bson.M{"_id": d.id} }

func (d *mongoDocument) Get(ctx context.Context) (Snapshot, error) {
	ctx, cancel := d.store.withTimeout(ctx)
	defer cancel()

	raw, err := d.col.FindOne(ctx, d.filter()).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return snapshot{id: d.id}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", d.col.Name(), d.id, err)
	}
	return snapshot{id: d.id, raw: raw}, nil
}

func (d *mongoDocument) Update(ctx context.Context, fields map[string]any) error {
	ctx, cancel := d.store.withTimeout(ctx)
	defer cancel()

	// $set kosong ditolak MongoDB, cukup cek keberadaan dokumen
	if len(fields) == 0 {
		n, err := d.col.CountDocuments(ctx, d.filter(), options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("update %s/%s: %w", d.col.Name(), d.id, err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return nil
	}

	res, err := d.col.UpdateOne(ctx, d.filter(), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", d.col.Name(), d.id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *mongoDocument) Delete(ctx context.Context) error {
	ctx, cancel := d.store.withTimeout(ctx)
	defer cancel()

	res, err := d.col.DeleteOne(ctx, d.filter())
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", d.col.Name(), d.id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// mongoFilter groups predicates by field so that range bounds on the same
// field end up in one operator document.
func mongoFilter(filters []Filter) bson.M {
	out := bson.M{}
	for _, f := range filters {
		op := "$eq"
		switch f.Op {
		case OpGreaterOrEqual:
			op = "$gte"
		case OpLessOrEqual:
			op = "$lte"
		}
		cond, ok := out[f.Field].(bson.M)
		if !ok {
			cond = bson.M{}
			out[f.Field] = cond
		}
		cond[op] = f.Value
	}
	return out
}

func rawID(raw bson.Raw) string {
	v, err := raw.LookupErr("_id")
	if err != nil {
		return ""
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	return v.String()
}
