package mystore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileStore keeps all entities of a kind in a single JSON file. The full
// map is rewritten synchronously on every mutation, so state read back at
// startup always reflects the last completed operation.
type fileStore[T any] struct {
	sync.Mutex
	filename string
	items    map[string]T
}

func newFileStore[T any](c context.Context, dir string) (*fileStore[T], func(), error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating store-dir %s: %s", dir, err)
	}

	s := &fileStore[T]{
		filename: filepath.Join(dir, kindOf[T]()+".json"),
		items:    make(map[string]T),
	}

	err = s.load()
	if err != nil {
		return nil, nil, err
	}

	return s, func() {}, nil
}

func (s *fileStore[T]) load() error {
	data, err := os.ReadFile(s.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("error reading %s: %s", s.filename, err)
	}

	err = json.Unmarshal(data, &s.items)
	if err != nil {
		return fmt.Errorf("error parsing %s: %s", s.filename, err)
	}

	return nil
}

func (s *fileStore[T]) flush() error {
	data, err := json.MarshalIndent(s.items, "", "\t")
	if err != nil {
		return fmt.Errorf("error marshalling %s: %s", s.filename, err)
	}

	err = os.WriteFile(s.filename, data, 0o644)
	if err != nil {
		return fmt.Errorf("error writing %s: %s", s.filename, err)
	}

	return nil
}

func (s *fileStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	err := f(ctx)
	if err != nil {

		// Rollback
		s.Unlock()

		return err
	}

	// Commit
	err = s.flush()

	s.Unlock()

	return err
}

func (s *fileStore[T]) Put(c context.Context, uid string, value T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	s.items[uid] = value

	if nonTransactional {
		return s.flush()
	}

	return nil
}

func (s *fileStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	result, exists := s.items[uid]

	return result, exists, nil
}

func (s *fileStore[T]) Remove(c context.Context, uid string) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	delete(s.items, uid)

	if nonTransactional {
		return s.flush()
	}

	return nil
}

func (s *fileStore[T]) List(c context.Context) ([]T, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	result := make([]T, 0, len(s.items))
	for _, v := range s.items {
		result = append(result, v)
	}

	return result, nil
}

func (s *fileStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	return s.List(c)
}
