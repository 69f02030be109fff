package mystore

import (
	"context"
	"os"
)

type ctxTransactionKey struct{}

type Filter struct {
	Field   string
	Compare string
	Value   any
}

//go:generate mockgen -source=api.go -package mystore -destination store_mock.go Store
type Store[T any] interface {
	RunInTransaction(c context.Context, f func(c context.Context) error) error
	Put(c context.Context, uid string, value T) error
	Get(c context.Context, uid string) (T, bool, error)
	Remove(c context.Context, uid string) error
	List(c context.Context) ([]T, error)
	Query(c context.Context, filters []Filter, orderByField string) ([]T, error)
}

// New selects a backend based on the environment: Google datastore when
// running on GCP, redis when REDIS_ADDR is set, a file per kind when
// STORE_DIR is set (state survives restarts), in-memory otherwise.
func New[T any](c context.Context) (Store[T], func(), error) {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") != "" {
		return newGcloudStore[T](c)
	}

	if os.Getenv("REDIS_ADDR") != "" {
		return newRedisStore[T](c, os.Getenv("REDIS_ADDR"))
	}

	if os.Getenv("STORE_DIR") != "" {
		return newFileStore[T](c, os.Getenv("STORE_DIR"))
	}

	return NewInMemoryStore[T](c)
}
