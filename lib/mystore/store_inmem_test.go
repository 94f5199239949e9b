package mystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type receipt struct {
	UID    string
	Amount int64
	Status string
}

var (
	paid = receipt{UID: "pi_123", Amount: 2450, Status: "paid"}
)

func TestStore(t *testing.T) {
	c := context.TODO()
	rs, cleanup, err := newInMemoryStore[receipt](c)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := rs.Get(c, paid.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put", func(t *testing.T) {
		err = rs.Put(c, paid.UID, paid)
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		r, found, err := rs.Get(c, paid.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, receipt{UID: "pi_123", Amount: 2450, Status: "paid"}, r)
	})

	t.Run("List", func(t *testing.T) {
		all, err := rs.List(c)
		assert.NoError(t, err)
		assert.Equal(t, []receipt{paid}, all)
	})

	t.Run("Put and get within transaction", func(t *testing.T) {
		err := rs.RunInTransaction(c, func(c context.Context) error {
			err := rs.Put(c, "pi_456", receipt{UID: "pi_456", Amount: 1000, Status: "paid"})
			assert.NoError(t, err)

			_, found, err := rs.Get(c, "pi_456")
			assert.NoError(t, err)
			assert.True(t, found)

			return nil
		})
		assert.NoError(t, err)
	})
}
