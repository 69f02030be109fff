package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type Visitor struct {
	UID  string
	Name string
}

var (
	visitor = Visitor{UID: "123", Name: "Aoi"}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	vs, cleanup, err := NewInMemoryStore[Visitor](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := vs.Get(c, visitor.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = vs.Put(c, visitor.UID, visitor)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		v, found, err := vs.Get(c, visitor.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, Visitor{UID: "123", Name: "Aoi"}, v)
	})

	t.Run("List", func(t *testing.T) {
		all, err := vs.List(c)
		assert.NoError(t, err)
		assert.Equal(t, all, []Visitor{visitor})
	})

	t.Run("Remove", func(t *testing.T) {
		err := vs.Remove(c, visitor.UID)
		assert.NoError(t, err)
		_, found, err := vs.Get(c, visitor.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})
}
