package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Nama koleksi per resource
const (
	AdminsCollection    = "admins"
	CustomersCollection = "users"
	ProductsCollection  = "products"
	RecipesCollection   = "resep"
	OrdersCollection    = "checkoutHistories"
)

// ErrNotFound is returned by DocumentRef.Update and DocumentRef.Delete when
// no document has the requested id.
var ErrNotFound = errors.New("dokumen tidak ditemukan")

type Operator string

const (
	OpEqual          Operator = "=="
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Filter is one predicate of a collection query. Filters passed together
// are ANDed.
type Filter struct {
	Field string
	Op    Operator
	Value any
}

func Where(field string, op Operator, value any) Filter {
	return Filter{Field: field, Op: op, Value: value}
}

// Snapshot is the result of reading one document.
type Snapshot interface {
	ID() string
	Exists() bool
	// DataTo decodes the document body into v using its bson tags.
	DataTo(v any) error
}

// CollectionRef addresses a whole collection.
type CollectionRef interface {
	Name() string
	Query(ctx context.Context, filters ...Filter) ([]Snapshot, error)
	// Add stores doc under a new store-assigned id and returns that id.
	Add(ctx context.Context, doc any) (string, error)
}

// DocumentRef addresses one document. Constructing it performs no I/O and
// never validates the id.
type DocumentRef interface {
	ID() string
	// Get returns a snapshot whose Exists reports false when the document is
	// absent; the error is reserved for store failures.
	Get(ctx context.Context) (Snapshot, error)
	// Update merges fields into the document in a single store operation.
	// An empty fields map only checks existence.
	Update(ctx context.Context, fields map[string]any) error
	Delete(ctx context.Context) error
}

// Store is a document database.
type Store interface {
	Collection(name string) CollectionRef
	Doc(collection, id string) DocumentRef
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type snapshot struct {
	id  string
	raw bson.Raw
}

func (s snapshot) ID() string   { return s.id }
func (s snapshot) Exists() bool { return s.raw != nil }

func (s snapshot) DataTo(v any) error {
	if s.raw == nil {
		return ErrNotFound
	}
	return bson.Unmarshal(s.raw, v)
}

// encode marshals doc into an ordered document without any _id element.
func encode(doc any) (bson.D, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var d bson.D
	if err := bson.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	out := d[:0]
	for _, e := range d {
		if e.Key != "_id" {
			out = append(out, e)
		}
	}
	return out, nil
}
