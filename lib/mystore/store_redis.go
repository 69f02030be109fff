package mystore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

type redisStore[T any] struct {
	sync.Mutex
	client *redis.Client
	kind   string
}

func newRedisStore[T any](c context.Context, addr string) (*redisStore[T], func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	err := client.Ping(c).Err()
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to redis at %s: %s", addr, err)
	}

	return &redisStore[T]{
			client: client,
			kind:   kindOf[T](),
		}, func() {
			client.Close()
		}, nil
}

func (s *redisStore[T]) key(uid string) string {
	return s.kind + "/" + uid
}

// RunInTransaction serializes writers on this process. Cross-process
// transactionality is not provided by this backend.
func (s *redisStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	s.Lock()

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	err := f(ctx)
	if err != nil {
		s.Unlock()

		return err
	}

	s.Unlock()

	return nil
}

func (s *redisStore[T]) Put(c context.Context, uid string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error marshalling entity %s with uid %s: %s", s.kind, uid, err)
	}

	err = s.client.Set(c, s.key(uid), data, 0).Err()
	if err != nil {
		return fmt.Errorf("error storing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *redisStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	data, err := s.client.Get(c, s.key(uid)).Bytes()
	if err == redis.Nil {
		return *value, false, nil
	}
	if err != nil {
		return *value, false, fmt.Errorf("error fetching entity %s with uid %s: %s", s.kind, uid, err)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return *value, false, fmt.Errorf("error parsing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return *value, true, nil
}

func (s *redisStore[T]) Remove(c context.Context, uid string) error {
	err := s.client.Del(c, s.key(uid)).Err()
	if err != nil {
		return fmt.Errorf("error removing entity %s with uid %s: %s", s.kind, uid, err)
	}

	return nil
}

func (s *redisStore[T]) List(c context.Context) ([]T, error) {
	result := []T{}

	iter := s.client.Scan(c, 0, s.kind+"/*", 0).Iterator()
	for iter.Next(c) {
		data, err := s.client.Get(c, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("error fetching entity %s: %s", iter.Val(), err)
		}

		value := new(T)
		err = json.Unmarshal(data, value)
		if err != nil {
			return nil, fmt.Errorf("error parsing entity %s: %s", iter.Val(), err)
		}

		result = append(result, *value)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("error scanning entities of kind %s: %s", s.kind, err)
	}

	return result, nil
}

func (s *redisStore[T]) Query(c context.Context, filters []Filter, orderByField string) ([]T, error) {
	return s.List(c)
}
