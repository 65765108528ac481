// Package collectiontest provides an in-memory collection.Store fake for
// repository and service tests.
package collectiontest

import (
	"context"
	"fmt"
	"maps"
	"sync"

	"github.com/heartmarshall/bugtrackr-backend/internal/adapter/collection"
	"github.com/heartmarshall/bugtrackr-backend/internal/domain"
)

// FakeStore is an in-memory Store. Items are stored per collection name;
// ids are assigned sequentially. Error fields, when set, are returned by
// the corresponding method to simulate remote failures.
type FakeStore struct {
	mu   sync.Mutex
	seq  int
	data map[string]map[string]collection.Item

	CreateErr error
	GetAllErr error
	GetErr    error
	UpdateErr error
	DeleteErr error
}

var _ collection.Store = (*FakeStore)(nil)

// NewFakeStore creates an empty fake store.
func NewFakeStore() *FakeStore {
	return &FakeStore{data: make(map[string]map[string]collection.Item)}
}

// Seed inserts a raw item with an explicit id and returns the id.
func (f *FakeStore) Seed(collectionName, id string, fields collection.Item) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	item := maps.Clone(fields)
	item["__auto_id__"] = id
	f.bucket(collectionName)[id] = item
	return id
}

// Len reports how many items a collection holds.
func (f *FakeStore) Len(collectionName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bucket(collectionName))
}

// Has reports whether an item id exists in a collection.
func (f *FakeStore) Has(collectionName, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.bucket(collectionName)[id]
	return ok
}

func (f *FakeStore) Create(_ context.Context, collectionName string, fields collection.Item) (collection.Item, error) {
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	id := fmt.Sprintf("item-%d", f.seq)
	item := maps.Clone(fields)
	item["__auto_id__"] = id
	f.bucket(collectionName)[id] = item
	return maps.Clone(item), nil
}

func (f *FakeStore) GetAll(_ context.Context, collectionName string) ([]collection.Item, error) {
	if f.GetAllErr != nil {
		return nil, f.GetAllErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	bucket := f.bucket(collectionName)
	items := make([]collection.Item, 0, len(bucket))
	for _, item := range bucket {
		items = append(items, maps.Clone(item))
	}
	return items, nil
}

func (f *FakeStore) GetByID(_ context.Context, collectionName, itemID string) (collection.Item, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.bucket(collectionName)[itemID]
	if !ok {
		return nil, nil
	}
	return maps.Clone(item), nil
}

func (f *FakeStore) Update(_ context.Context, collectionName, itemID string, updates collection.Item) (collection.Item, error) {
	if f.UpdateErr != nil {
		return nil, f.UpdateErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.bucket(collectionName)[itemID]
	if !ok {
		return nil, fmt.Errorf("collection.update: item %s: %w", itemID, domain.ErrNotFound)
	}
	maps.Copy(item, updates)
	return maps.Clone(item), nil
}

func (f *FakeStore) Delete(_ context.Context, collectionName, itemID string) (bool, error) {
	if f.DeleteErr != nil {
		return false, f.DeleteErr
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	bucket := f.bucket(collectionName)
	if _, ok := bucket[itemID]; !ok {
		return false, nil
	}
	delete(bucket, itemID)
	return true, nil
}

func (f *FakeStore) bucket(collectionName string) map[string]collection.Item {
	bucket, ok := f.data[collectionName]
	if !ok {
		bucket = make(map[string]collection.Item)
		f.data[collectionName] = bucket
	}
	return bucket
}
