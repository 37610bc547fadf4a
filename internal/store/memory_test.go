package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "g1")
	assert.ErrorIs(t, err, ErrNotFound)

	e := &Entry{Owner: "p1"}
	require.NoError(t, s.Save(ctx, "g1", e))
	got, err := s.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, e, got)

	require.NoError(t, s.Delete(ctx, "g1"))
	require.NoError(t, s.Delete(ctx, "g1"))
	_, err = s.Get(ctx, "g1")
	assert.ErrorIs(t, err, ErrNotFound)
}
