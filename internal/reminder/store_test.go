package reminder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathakanu/myAssistant/internal/model"
)

func seed(t *testing.T, s Store, titles ...string) {
	t.Helper()
	for _, title := range titles {
		r := &model.Reminder{Title: title, RawText: title, ScheduledAt: time.Now(), CreatedAt: time.Now()}
		require.NoError(t, s.Append(context.Background(), r))
	}
}

func titles(t *testing.T, s Store) []string {
	t.Helper()
	list, err := s.List(context.Background())
	require.NoError(t, err)
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.Title)
	}
	return out
}

func TestMemoryStoreListEmpty(t *testing.T) {
	t.Parallel()
	list, err := NewMemoryStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemoryStoreAppendKeepsOrder(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	want := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		want = append(want, fmt.Sprintf("task %d", i))
	}
	seed(t, s, want...)

	assert.Equal(t, want, titles(t, s))

	list, err := s.List(context.Background())
	require.NoError(t, err)
	for i := 1; i < len(list); i++ {
		assert.Greater(t, list[i].ID, list[i-1].ID)
	}
}

func TestMemoryStoreRemoveAt(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	seed(t, s, "alpha", "beta", "gamma")

	removed, err := s.RemoveAt(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "beta", removed.Title)
	assert.Equal(t, []string{"alpha", "gamma"}, titles(t, s))

	removed, err = s.RemoveAt(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "gamma", removed.Title)
	assert.Equal(t, []string{"alpha"}, titles(t, s))
}

func TestMemoryStoreRemoveAtOutOfRange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	seed(t, s, "alpha", "beta")

	for _, pos := range []int{-1, 0, 3, 5, 1 << 30} {
		_, err := s.RemoveAt(ctx, pos)
		assert.ErrorIs(t, err, ErrNotFound, "position %d", pos)
	}
	assert.Equal(t, []string{"alpha", "beta"}, titles(t, s))
}

func TestMemoryStoreIDsNotReused(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	seed(t, s, "alpha")

	removed, err := s.RemoveAt(ctx, 1)
	require.NoError(t, err)

	seed(t, s, "beta")
	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.NotEqual(t, removed.ID, list[0].ID)
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	t.Parallel()
	s := NewMemoryStore()
	seed(t, s, "alpha")

	list, err := s.List(context.Background())
	require.NoError(t, err)
	list[0].Title = "mutated"
	assert.Equal(t, []string{"alpha"}, titles(t, s))
}

func TestParsePosition(t *testing.T) {
	t.Parallel()
	cases := map[string]int{
		"delete reminder 5":          5,
		"elimina promemoria 12 e 3":  12,
		"delete reminder two":        0,
		"":                           0,
		"remove reminder #2":         2,
		"99999999999999999999999999": 0,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParsePosition(input), input)
	}
}
