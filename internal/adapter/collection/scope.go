package collection

import "context"

// Scope returns a Store that routes the empty collection name to
// defaultName. Repositories address the base collection with ""; scoping
// lets one deployment point them at a named sub-collection instead
// without threading the name through every repository. An empty
// defaultName returns the store unchanged.
func Scope(store Store, defaultName string) Store {
	if defaultName == "" {
		return store
	}
	return &scopedStore{store: store, defaultName: defaultName}
}

type scopedStore struct {
	store       Store
	defaultName string
}

func (s *scopedStore) name(collectionName string) string {
	if collectionName == "" {
		return s.defaultName
	}
	return collectionName
}

func (s *scopedStore) Create(ctx context.Context, collectionName string, fields Item) (Item, error) {
	return s.store.Create(ctx, s.name(collectionName), fields)
}

func (s *scopedStore) GetAll(ctx context.Context, collectionName string) ([]Item, error) {
	return s.store.GetAll(ctx, s.name(collectionName))
}

func (s *scopedStore) GetByID(ctx context.Context, collectionName, itemID string) (Item, error) {
	return s.store.GetByID(ctx, s.name(collectionName), itemID)
}

func (s *scopedStore) Update(ctx context.Context, collectionName, itemID string, updates Item) (Item, error) {
	return s.store.Update(ctx, s.name(collectionName), itemID, updates)
}

func (s *scopedStore) Delete(ctx context.Context, collectionName, itemID string) (bool, error) {
	return s.store.Delete(ctx, s.name(collectionName), itemID)
}
