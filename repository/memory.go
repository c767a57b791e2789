package repository

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore is an in-process Store. Documents are kept BSON encoded, in
// insertion order, so they decode exactly like documents read from MongoDB.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	newID       func() string
}

type memoryCollection struct {
	order []string
	docs  map[string]bson.Raw
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: map[string]*memoryCollection{},
		newID:       uuid.NewString,
	}
}

func (s *MemoryStore) Collection(name string) CollectionRef {
	return &memoryCollectionRef{store: s, name: name}
}

// Doc keeps its own copy of id. An update stores the reference id as the map
// key, and callers may hand over strings that alias a reused request buffer.
func (s *MemoryStore) Doc(collection, id string) DocumentRef {
	return &memoryDocument{store: s, collection: collection, id: strings.Clone(id)}
}

func (s *MemoryStore) Ping(context.Context) error { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }

// col returns the named collection, creating it when create is set. Callers
// hold s.mu.
func (s *MemoryStore) col(name string, create bool) *memoryCollection {
	c, ok := s.collections[name]
	if !ok && create {
		c = &memoryCollection{docs: map[string]bson.Raw{}}
		s.collections[name] = c
	}
	return c
}

type memoryCollectionRef struct {
	store *MemoryStore
	name  string
}

func (c *memoryCollectionRef) Name() string { return c.name }

func (c *memoryCollectionRef) Query(ctx context.Context, filters ...Filter) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()

	list := []Snapshot{}
	col := c.store.col(c.name, false)
	if col == nil {
		return list, nil
	}
	for _, id := range col.order {
		raw := col.docs[id]
		var m bson.M
		if err := bson.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("query %s: %w", c.name, err)
		}
		if matchAll(m, filters) {
			list = append(list, snapshot{id: id, raw: append(bson.Raw(nil), raw...)})
		}
	}
	return list, nil
}

func (c *memoryCollectionRef) Add(ctx context.Context, doc any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, err := encode(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", c.name, err)
	}
	raw, err := bson.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", c.name, err)
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	col := c.store.col(c.name, true)
	id := c.store.newID()
	col.order = append(col.order, id)
	col.docs[id] = raw
	return id, nil
}

type memoryDocument struct {
	store      *MemoryStore
	collection string
	id         string
}

func (d *memoryDocument) ID() string { return d.id }

func (d *memoryDocument) Get(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.store.mu.RLock()
	defer d.store.mu.RUnlock()

	col := d.store.col(d.collection, false)
	if col == nil {
		return snapshot{id: d.id}, nil
	}
	raw, ok := col.docs[d.id]
	if !ok {
		return snapshot{id: d.id}, nil
	}
	return snapshot{id: d.id, raw: append(bson.Raw(nil), raw...)}, nil
}

func (d *memoryDocument) Update(ctx context.Context, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()

	col := d.store.col(d.collection, false)
	if col == nil {
		return ErrNotFound
	}
	raw, ok := col.docs[d.id]
	if !ok {
		return ErrNotFound
	}
	if len(fields) == 0 {
		return nil
	}

	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("update %s/%s: %w", d.collection, d.id, err)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		doc = setElement(doc, k, fields[k])
	}
	updated, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", d.collection, d.id, err)
	}
	col.docs[d.id] = updated
	return nil
}

func (d *memoryDocument) Delete(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.store.mu.Lock()
	defer d.store.mu.Unlock()

	col := d.store.col(d.collection, false)
	if col == nil {
		return ErrNotFound
	}
	if _, ok := col.docs[d.id]; !ok {
		return ErrNotFound
	}
	delete(col.docs, d.id)
	for i, id := range col.order {
		if id == d.id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	return nil
}

func setElement(doc bson.D, key string, value any) bson.D {
	for i := range doc {
		if doc[i].Key == key {
			doc[i].Value = value
			return doc
		}
	}
	return append(doc, bson.E{Key: key, Value: value})
}

func matchAll(doc bson.M, filters []Filter) bool {
	for _, f := range filters {
		v, ok := doc[f.Field]
		if !ok || !match(v, f.Op, f.Value) {
			return false
		}
	}
	return true
}

func match(have any, op Operator, want any) bool {
	if hn, ok := toFloat(have); ok {
		wn, ok := toFloat(want)
		if !ok {
			return false
		}
		switch op {
		case OpGreaterOrEqual:
			return hn >= wn
		case OpLessOrEqual:
			return hn <= wn
		default:
			return hn == wn
		}
	}
	if hs, ok := toString(have); ok {
		ws, ok := toString(want)
		if !ok {
			return false
		}
		switch op {
		case OpGreaterOrEqual:
			return hs >= ws
		case OpLessOrEqual:
			return hs <= ws
		default:
			return hs == ws
		}
	}
	return op == OpEqual && reflect.DeepEqual(have, want)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
